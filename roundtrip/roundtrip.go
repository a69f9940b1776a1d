// Package roundtrip feeds compiler-emitted JSON documents through the typed models
// and verifies decode/encode stability: decoding a document, re-encoding it, and
// decoding again must yield an equal value. It is a validation harness layered on
// top of the models, not part of them.
package roundtrip

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/crytic/solc-artifacts/abi"
	"github.com/crytic/solc-artifacts/ast"
	"github.com/crytic/solc-artifacts/logging"
	"github.com/crytic/solc-artifacts/output"
	"github.com/pkg/errors"
)

// DocumentKind identifies which typed model a JSON document decodes through.
type DocumentKind string

const (
	// KindAST marks a document rooted at a SourceUnit node.
	KindAST DocumentKind = "ast"

	// KindABI marks a top-level ABI array.
	KindABI DocumentKind = "abi"

	// KindCombined marks a combined-JSON output document.
	KindCombined DocumentKind = "combined"
)

// Validator checks documents for round-trip stability.
type Validator struct {
	logger *logging.Logger
}

// NewValidator creates a validator logging through the given logger.
func NewValidator(logger *logging.Logger) *Validator {
	return &Validator{
		logger: logger.NewSubLogger("module", "roundtrip"),
	}
}

// Classify inspects a document's top-level shape and reports which model it belongs
// to. Arrays are ABIs; objects are classified by their discriminating keys.
func Classify(data []byte) (DocumentKind, error) {
	trimmed := strings.TrimLeft(string(data), " \t\r\n")
	if strings.HasPrefix(trimmed, "[") {
		return KindABI, nil
	}

	header := struct {
		NodeType  *string         `json:"nodeType"`
		Version   *string         `json:"version"`
		Contracts json.RawMessage `json:"contracts"`
	}{}
	if err := json.Unmarshal(data, &header); err != nil {
		return "", errors.Wrap(err, "could not classify document")
	}
	if header.NodeType != nil {
		return KindAST, nil
	}
	if header.Version != nil && header.Contracts != nil {
		return KindCombined, nil
	}
	return "", errors.New("document matches no artifact shape")
}

// Validate classifies a document and checks it for round-trip stability.
func (v *Validator) Validate(data []byte) (DocumentKind, error) {
	kind, err := Classify(data)
	if err != nil {
		return "", err
	}

	switch kind {
	case KindAST:
		err = v.ValidateAST(data)
	case KindABI:
		err = v.ValidateABI(data)
	case KindCombined:
		err = v.ValidateCombined(data)
	}
	return kind, err
}

// ValidateAST checks an AST document: it must decode, and decoding its re-encoding
// must yield an equal tree.
func (v *Validator) ValidateAST(data []byte) error {
	decoded, err := ast.ParseSourceUnit(data)
	if err != nil {
		return errors.Wrap(err, "ast document failed to decode")
	}
	return v.checkStability(decoded, func(encoded []byte) (any, error) {
		return ast.ParseSourceUnit(encoded)
	})
}

// ValidateABI checks an ABI document for round-trip stability.
func (v *Validator) ValidateABI(data []byte) error {
	decoded, err := abi.Parse(data)
	if err != nil {
		return errors.Wrap(err, "abi document failed to decode")
	}
	return v.checkStability(decoded, func(encoded []byte) (any, error) {
		return abi.Parse(encoded)
	})
}

// ValidateCombined checks a combined-JSON document for round-trip stability.
func (v *Validator) ValidateCombined(data []byte) error {
	decoded, err := output.Parse(data)
	if err != nil {
		return errors.Wrap(err, "combined-json document failed to decode")
	}
	return v.checkStability(decoded, func(encoded []byte) (any, error) {
		return output.Parse(encoded)
	})
}

// checkStability re-encodes a decoded value and decodes the result again, requiring
// value equality with the first decode. Field order and optional-field omission may
// differ from the input bytes; equality is on values, not text.
func (v *Validator) checkStability(decoded any, reparse func([]byte) (any, error)) error {
	encoded, err := json.Marshal(decoded)
	if err != nil {
		return errors.Wrap(err, "document failed to re-encode")
	}
	redecoded, err := reparse(encoded)
	if err != nil {
		return errors.Wrap(err, "re-encoded document failed to decode")
	}
	if !reflect.DeepEqual(decoded, redecoded) {
		return errors.New("document is not round-trip stable")
	}
	return nil
}

// Report summarizes a corpus run.
type Report struct {
	// Documents counts every JSON file inspected.
	Documents int

	// PerKind counts validated documents by model.
	PerKind map[DocumentKind]int

	// Failures maps file paths to their validation errors.
	Failures map[string]error
}

// Ok reports whether every document validated.
func (r *Report) Ok() bool {
	return len(r.Failures) == 0
}

// ValidateDirectory walks a directory tree and validates every .json file in it.
func (v *Validator) ValidateDirectory(root string) (*Report, error) {
	report := &Report{
		PerKind:  make(map[DocumentKind]int),
		Failures: make(map[string]error),
	}

	err := filepath.Walk(root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(strings.ToLower(path), ".json") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "could not read %s", path)
		}

		report.Documents++
		kind, err := v.Validate(data)
		if err != nil {
			v.logger.Error("validation failed for ", path, err)
			report.Failures[path] = err
			return nil
		}
		report.PerKind[kind]++
		v.logger.Debug("validated ", path, " as ", string(kind))
		return nil
	})
	if err != nil {
		return nil, err
	}

	v.logger.Info("validated ", report.Documents, " documents, ", len(report.Failures), " failures")
	return report, nil
}
