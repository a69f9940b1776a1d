// Package output models the compiler's combined-JSON output document: per-source
// ASTs, per-contract ABIs, bytecode, source mappings, and selector tables.
package output

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver"
	"github.com/crytic/solc-artifacts/abi"
	"github.com/crytic/solc-artifacts/ast"
	"github.com/crytic/solc-artifacts/metadata"
	"github.com/crytic/solc-artifacts/srcmaps"
)

// CombinedOutput is a decoded combined-JSON document, as produced by the compiler's
// --combined-json mode with the abi, ast, bin, bin-runtime, srcmap, srcmap-runtime
// and hashes selectors.
type CombinedOutput struct {
	// Sources maps each source path to its compilation result. Keys match the
	// "path:Contract" prefixes used in Contracts.
	Sources map[string]Source `json:"sources"`

	// Contracts maps "path:ContractName" keys to per-contract artifacts.
	Contracts map[string]Contract `json:"contracts"`

	// SourceList orders source paths by source index. Only older compilers emit it;
	// newer ones carry per-source ids instead.
	SourceList []string `json:"sourceList,omitempty"`

	// Version is the compiler's full version string, e.g.
	// "0.8.24+commit.e11b9ed9.Linux.g++".
	Version string `json:"version"`
}

// Source is one compiled source file's entry.
type Source struct {
	// ID is the source index assigned by the compiler, matching AST src fields and
	// source map file ids. Older compilers omit it in favor of SourceList ordering.
	ID *int `json:"id,omitempty"`

	// AST is the file's typed syntax tree.
	AST *ast.SourceUnit `json:"AST,omitempty"`
}

// Contract is one compiled contract's artifacts.
type Contract struct {
	// Abi is the contract's typed interface description.
	Abi abi.Abi `json:"abi"`

	// Bin is the hex-encoded deployment bytecode. It may contain unlinked library
	// placeholders, which are not valid hex.
	Bin string `json:"bin,omitempty"`

	// BinRuntime is the hex-encoded runtime bytecode.
	BinRuntime string `json:"bin-runtime,omitempty"`

	// SrcMap is the compressed source mapping for the deployment bytecode.
	SrcMap string `json:"srcmap,omitempty"`

	// SrcMapRuntime is the compressed source mapping for the runtime bytecode.
	SrcMapRuntime string `json:"srcmap-runtime,omitempty"`

	// Hashes maps function signatures to their 4-byte selectors, as hex strings.
	Hashes map[string]string `json:"hashes,omitempty"`

	// UserDoc and DevDoc carry the NatSpec documentation output verbatim.
	UserDoc json.RawMessage `json:"userdoc,omitempty"`
	DevDoc  json.RawMessage `json:"devdoc,omitempty"`
}

// UnmarshalJSON decodes the contract artifacts, compacting the raw NatSpec payloads
// so the decoded value survives re-encoding unchanged.
func (c *Contract) UnmarshalJSON(data []byte) error {
	type alias Contract
	if err := json.Unmarshal(data, (*alias)(c)); err != nil {
		return err
	}

	var err error
	if c.UserDoc, err = compactRawJSON(c.UserDoc); err != nil {
		return err
	}
	if c.DevDoc, err = compactRawJSON(c.DevDoc); err != nil {
		return err
	}
	return nil
}

// compactRawJSON strips insignificant whitespace from raw JSON carried verbatim.
// Marshaling compacts json.RawMessage fields, so raw fields must be compacted at
// decode time to keep decoded values equal across an encode/decode cycle.
func compactRawJSON(data json.RawMessage) (json.RawMessage, error) {
	if data == nil {
		return nil, nil
	}
	var buffer bytes.Buffer
	if err := json.Compact(&buffer, data); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// Parse decodes a combined-JSON document.
func Parse(data []byte) (*CombinedOutput, error) {
	var out CombinedOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// solcVersionPattern extracts the semantic version from the compiler's full version
// string, which appends commit and platform details.
var solcVersionPattern = regexp.MustCompile(`\d+\.\d+\.\d+`)

// SolcVersion parses the compiler version out of the document's version string.
func (o *CombinedOutput) SolcVersion() (*semver.Version, error) {
	matched := solcVersionPattern.FindString(o.Version)
	if matched == "" {
		return nil, fmt.Errorf("could not parse compiler version from %q", o.Version)
	}
	return semver.NewVersion(matched)
}

// SourcePathByIndex resolves a source index (as used in AST src fields and source
// maps) to its source path. Older documents resolve through sourceList, newer ones
// through per-source ids.
func (o *CombinedOutput) SourcePathByIndex(index int) (string, bool) {
	if index >= 0 && index < len(o.SourceList) {
		return o.SourceList[index], true
	}
	for path, source := range o.Sources {
		if source.ID != nil && *source.ID == index {
			return path, true
		}
	}
	return "", false
}

// InitBytecode decodes the deployment bytecode. Unlinked bytecode with library
// placeholders fails hex decoding.
func (c *Contract) InitBytecode() ([]byte, error) {
	return decodeBytecode(c.Bin)
}

// RuntimeBytecode decodes the runtime bytecode.
func (c *Contract) RuntimeBytecode() ([]byte, error) {
	return decodeBytecode(c.BinRuntime)
}

func decodeBytecode(encoded string) ([]byte, error) {
	if encoded == "" {
		return nil, errors.New("contract carries no bytecode")
	}
	return hex.DecodeString(strings.TrimPrefix(encoded, "0x"))
}

// RuntimeSourceMap decodes the runtime bytecode's source mapping.
func (c *Contract) RuntimeSourceMap() (srcmaps.SourceMap, error) {
	return srcmaps.Parse(c.SrcMapRuntime)
}

// Metadata extracts the CBOR metadata blob from the runtime bytecode, or nil when
// the bytecode is absent, unlinked, or carries no blob.
func (c *Contract) Metadata() metadata.Metadata {
	bytecode, err := c.RuntimeBytecode()
	if err != nil {
		return nil
	}
	return metadata.Extract(bytecode)
}
