package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/crytic/solc-artifacts/abi"
	"github.com/crytic/solc-artifacts/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readTestOutput reads and decodes the checked-in combined-JSON fixture.
func readTestOutput(t *testing.T) *CombinedOutput {
	data, err := os.ReadFile(filepath.Join("testdata", "combined.json"))
	require.NoError(t, err)

	out, err := Parse(data)
	require.NoError(t, err)
	return out
}

// TestParseCombinedOutput will test decoding a combined-JSON document into the typed
// artifact models.
func TestParseCombinedOutput(t *testing.T) {
	out := readTestOutput(t)

	// The per-source AST decodes through the typed node model.
	source, ok := out.Sources["contracts/Counter.sol"]
	require.True(t, ok)
	require.NotNil(t, source.ID)
	assert.Equal(t, 0, *source.ID)
	require.NotNil(t, source.AST)
	require.Len(t, source.AST.Nodes, 2)
	contract, ok := source.AST.Nodes[1].(*ast.ContractDefinition)
	require.True(t, ok)
	assert.Equal(t, "Counter", contract.Name)

	// The per-contract ABI decodes through the typed item model.
	artifacts, ok := out.Contracts["contracts/Counter.sol:Counter"]
	require.True(t, ok)
	require.Len(t, artifacts.Abi, 2)
	increment, ok := artifacts.Abi[0].(*abi.Function)
	require.True(t, ok)
	assert.Equal(t, "increment", increment.Name)

	// The selector table matches the functions' computed selectors.
	selector := increment.Selector()
	assert.Equal(t, "d09de08a", artifacts.Hashes[increment.Signature()])
	assert.Equal(t, []byte{0xd0, 0x9d, 0xe0, 0x8a}, selector[:])
}

// TestSolcVersion will test extraction of the semantic version from the full
// compiler version string.
func TestSolcVersion(t *testing.T) {
	out := readTestOutput(t)

	version, err := out.SolcVersion()
	require.NoError(t, err)
	assert.Equal(t, "0.8.24", version.String())

	malformed := &CombinedOutput{Version: "development build"}
	_, err = malformed.SolcVersion()
	assert.Error(t, err)
}

// TestSourcePathByIndex will test source index resolution through ids and through
// the legacy source list.
func TestSourcePathByIndex(t *testing.T) {
	out := readTestOutput(t)

	path, ok := out.SourcePathByIndex(0)
	require.True(t, ok)
	assert.Equal(t, "contracts/Counter.sol", path)

	_, ok = out.SourcePathByIndex(7)
	assert.False(t, ok)

	legacy := &CombinedOutput{SourceList: []string{"a.sol", "b.sol"}}
	path, ok = legacy.SourcePathByIndex(1)
	require.True(t, ok)
	assert.Equal(t, "b.sol", path)
}

// TestContractBytecode will test bytecode decoding and source map access.
func TestContractBytecode(t *testing.T) {
	out := readTestOutput(t)
	artifacts := out.Contracts["contracts/Counter.sol:Counter"]

	initBytecode, err := artifacts.InitBytecode()
	require.NoError(t, err)
	assert.Equal(t, byte(0x60), initBytecode[0])

	runtimeBytecode, err := artifacts.RuntimeBytecode()
	require.NoError(t, err)
	assert.Len(t, runtimeBytecode, 16)

	sourceMap, err := artifacts.RuntimeSourceMap()
	require.NoError(t, err)
	require.NotEmpty(t, sourceMap)
	assert.Equal(t, 25, sourceMap[0].Offset)
	assert.Equal(t, 0, sourceMap[0].FileID)

	// Unlinked bytecode with library placeholders is not valid hex.
	unlinked := Contract{Bin: "6080__$1234$__6040"}
	_, err = unlinked.InitBytecode()
	assert.Error(t, err)

	empty := Contract{}
	_, err = empty.InitBytecode()
	assert.Error(t, err)

	// Runtime bytecode without a metadata blob yields no metadata.
	assert.Nil(t, artifacts.Metadata())
}

// TestNatSpecRawStability will test that pretty-printed NatSpec payloads decode to a
// value that survives an encode/decode cycle.
func TestNatSpecRawStability(t *testing.T) {
	data := []byte(`{
		"version": "0.8.24+commit.e11b9ed9.Linux.g++",
		"sources": {},
		"contracts": {
			"contracts/Counter.sol:Counter": {
				"abi": [{"type": "receive", "stateMutability": "payable"}],
				"userdoc": {
					"methods": {
						"increment()": {"notice": "Adds one to the count."}
					}
				},
				"devdoc": {"methods": {}}
			}
		}
	}`)

	out, err := Parse(data)
	require.NoError(t, err)
	contract, ok := out.Contracts["contracts/Counter.sol:Counter"]
	require.True(t, ok)
	assert.Equal(t, `{"methods":{"increment()":{"notice":"Adds one to the count."}}}`, string(contract.UserDoc))
	assert.Equal(t, `{"methods":{}}`, string(contract.DevDoc))

	encoded, err := json.Marshal(out)
	require.NoError(t, err)
	redecoded, err := Parse(encoded)
	require.NoError(t, err)
	assert.Equal(t, out, redecoded)
}
