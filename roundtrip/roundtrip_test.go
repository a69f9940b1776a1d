package roundtrip

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/crytic/solc-artifacts/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestValidator creates a validator with logging disabled.
func newTestValidator() *Validator {
	return NewValidator(logging.NewLogger(zerolog.Disabled, false))
}

// TestClassify will test document shape classification.
func TestClassify(t *testing.T) {
	kind, err := Classify([]byte(`[{"type": "fallback", "stateMutability": "payable"}]`))
	require.NoError(t, err)
	assert.Equal(t, KindABI, kind)

	kind, err = Classify([]byte(`  {"nodeType": "SourceUnit", "id": 1}`))
	require.NoError(t, err)
	assert.Equal(t, KindAST, kind)

	kind, err = Classify([]byte(`{"contracts": {}, "sources": {}, "version": "0.8.24"}`))
	require.NoError(t, err)
	assert.Equal(t, KindCombined, kind)

	_, err = Classify([]byte(`{"hello": "world"}`))
	assert.Error(t, err)

	_, err = Classify([]byte(`{`))
	assert.Error(t, err)
}

// TestValidateDocuments will test round-trip validation of well-formed and
// malformed documents.
func TestValidateDocuments(t *testing.T) {
	validator := newTestValidator()

	t.Run("abi", func(t *testing.T) {
		kind, err := validator.Validate([]byte(`[
			{"type": "function", "name": "f", "inputs": [], "outputs": [], "stateMutability": "view"},
			{"type": "event", "name": "E", "inputs": [], "anonymous": false}
		]`))
		require.NoError(t, err)
		assert.Equal(t, KindABI, kind)

		_, err = validator.Validate([]byte(`[{"type": "delegate"}]`))
		assert.Error(t, err)
	})

	t.Run("ast", func(t *testing.T) {
		kind, err := validator.Validate([]byte(`{
			"absolutePath": "a.sol",
			"id": 1,
			"nodeType": "SourceUnit",
			"src": "0:10:0",
			"nodes": [
				{"id": 2, "literals": ["solidity", "^", "0.8", ".24"], "nodeType": "PragmaDirective", "src": "0:24:0"}
			]
		}`))
		require.NoError(t, err)
		assert.Equal(t, KindAST, kind)

		// A known node kind missing a required field fails validation.
		_, err = validator.Validate([]byte(`{
			"absolutePath": "a.sol",
			"id": 1,
			"nodeType": "SourceUnit",
			"src": "0:10:0",
			"nodes": [{"id": 2, "nodeType": "PragmaDirective", "src": "0:24:0"}]
		}`))
		assert.Error(t, err)
	})
}

// TestValidateDirectory will test a corpus walk over a temporary directory holding
// both stable and malformed documents.
func TestValidateDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile := func(name string, contents string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0644))
	}

	writeFile("token.abi.json", `[{"type": "receive", "stateMutability": "payable"}]`)
	writeFile("unit.ast.json", `{
		"absolutePath": "a.sol", "id": 1, "nodeType": "SourceUnit", "src": "0:10:0", "nodes": []
	}`)
	writeFile("broken.json", `{"hello": "world"}`)
	writeFile("notes.txt", `not json, not inspected`)

	validator := newTestValidator()
	report, err := validator.ValidateDirectory(dir)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Documents)
	assert.Equal(t, 1, report.PerKind[KindABI])
	assert.Equal(t, 1, report.PerKind[KindAST])
	assert.Len(t, report.Failures, 1)
	assert.False(t, report.Ok())
	assert.Contains(t, report.Failures, filepath.Join(dir, "broken.json"))
}
