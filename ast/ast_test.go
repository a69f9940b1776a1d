package ast

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readTestAST reads and decodes the checked-in compiler AST fixture.
func readTestAST(t *testing.T) *SourceUnit {
	data, err := os.ReadFile(filepath.Join("testdata", "token_ast.json"))
	require.NoError(t, err)

	unit, err := ParseSourceUnit(data)
	require.NoError(t, err)
	return unit
}

// TestParseSourceUnit will test the decoding of a compiler AST document into typed
// nodes.
func TestParseSourceUnit(t *testing.T) {
	unit := readTestAST(t)

	assert.EqualValues(t, 100, unit.GetID())
	assert.Equal(t, "SourceUnit", unit.GetNodeType())
	assert.Equal(t, "contracts/Token.sol", unit.AbsolutePath)
	require.NotNil(t, unit.License)
	assert.Equal(t, "MIT", *unit.License)
	assert.Equal(t, []int64{90}, unit.ExportedSymbols["Token"])
	require.Len(t, unit.Nodes, 2)

	pragma, ok := unit.Nodes[0].(*PragmaDirective)
	require.True(t, ok)
	assert.Equal(t, []string{"solidity", "^", "0.8", ".24"}, pragma.Literals)

	contract, ok := unit.Nodes[1].(*ContractDefinition)
	require.True(t, ok)
	assert.Equal(t, "Token", contract.Name)
	assert.Equal(t, ContractKindContract, contract.Kind)
	assert.False(t, contract.Abstract)
	require.Len(t, contract.Nodes, 3)

	// The state variable carries a decoded elementary type name.
	variable, ok := contract.Nodes[0].(*VariableDeclaration)
	require.True(t, ok)
	assert.Equal(t, "totalSupply", variable.Name)
	typeName, ok := variable.TypeName.(*ElementaryTypeName)
	require.True(t, ok)
	assert.Equal(t, UintType(256), typeName.Name)

	event, ok := contract.Nodes[1].(*EventDefinition)
	require.True(t, ok)
	assert.Equal(t, "Transfer", event.Name)
	require.Len(t, event.Parameters.Parameters, 2)
	require.NotNil(t, event.Parameters.Parameters[0].Indexed)
	assert.True(t, *event.Parameters.Parameters[0].Indexed)

	function, ok := contract.Nodes[2].(*FunctionDefinition)
	require.True(t, ok)
	assert.Equal(t, FunctionKindFunction, function.Kind)
	assert.Equal(t, StateMutabilityNonpayable, function.StateMutability)
	require.NotNil(t, function.Documentation)
	require.NotNil(t, function.Documentation.Structured)
	assert.Equal(t, "@notice Mints 100 tokens.", function.Documentation.Structured.Text)
	require.NotNil(t, function.Body)
	require.Len(t, function.Body.Statements, 3)

	// The assignment statement dispatches into typed expression nodes, and its
	// identifier keeps the referenced declaration as a bare id.
	statement, ok := function.Body.Statements[0].(*ExpressionStatement)
	require.True(t, ok)
	assignment, ok := statement.Expression.(*Assignment)
	require.True(t, ok)
	assert.Equal(t, "+=", assignment.Operator)
	identifier, ok := assignment.LeftHandSide.(*Identifier)
	require.True(t, ok)
	assert.Equal(t, "totalSupply", identifier.Name)
	require.NotNil(t, identifier.ReferencedDeclaration)
	assert.EqualValues(t, 5, *identifier.ReferencedDeclaration)
	literal, ok := assignment.RightHandSide.(*Literal)
	require.True(t, ok)
	assert.Equal(t, LiteralKindNumber, literal.Kind)
	assert.Equal(t, "100", literal.Value)

	emit, ok := function.Body.Statements[1].(*EmitStatement)
	require.True(t, ok)
	assert.Equal(t, "functionCall", emit.EventCall.Kind)
	require.Len(t, emit.EventCall.Arguments, 2)

	ret, ok := function.Body.Statements[2].(*Return)
	require.True(t, ok)
	assert.EqualValues(t, 21, ret.FunctionReturnParameters)
	assert.Nil(t, ret.Expression)
}

// TestSourceUnitRoundTrip will test that decoding, re-encoding, and decoding again
// yields an equal tree.
func TestSourceUnitRoundTrip(t *testing.T) {
	unit := readTestAST(t)

	encoded, err := json.Marshal(unit)
	require.NoError(t, err)

	decoded, err := ParseSourceUnit(encoded)
	require.NoError(t, err)
	assert.Equal(t, unit, decoded)
}

// TestDecodeNodeErrors will test the decode failure modes: absent discriminants,
// unknown discriminants, and missing required fields.
func TestDecodeNodeErrors(t *testing.T) {
	t.Run("missing node type", func(t *testing.T) {
		_, err := DecodeNode([]byte(`{"id": 7, "src": "0:0:0"}`))
		var fieldErr *MissingFieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "nodeType", fieldErr.Field)
		assert.EqualValues(t, 7, fieldErr.ID)
	})

	t.Run("unknown node type", func(t *testing.T) {
		_, err := DecodeNode([]byte(`{"id": 7, "nodeType": "YulBlock", "src": "0:0:0"}`))
		var typeErr *UnknownNodeTypeError
		require.ErrorAs(t, err, &typeErr)
		assert.Equal(t, "YulBlock", typeErr.NodeType)
	})

	t.Run("missing required field", func(t *testing.T) {
		_, err := DecodeNode([]byte(`{"id": 7, "nodeType": "Literal", "src": "0:0:0", "kind": "number", "typeDescriptions": {}}`))
		var fieldErr *MissingFieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "Literal", fieldErr.NodeType)
		assert.Equal(t, "value", fieldErr.Field)
		assert.EqualValues(t, 7, fieldErr.ID)
	})

	t.Run("missing src", func(t *testing.T) {
		_, err := DecodeNode([]byte(`{"id": 7, "nodeType": "Break"}`))
		var fieldErr *MissingFieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "src", fieldErr.Field)
	})

	t.Run("statement in expression position", func(t *testing.T) {
		_, err := DecodeNode([]byte(`{
			"id": 2, "nodeType": "ExpressionStatement", "src": "0:0:0",
			"expression": {"id": 1, "nodeType": "Break", "src": "0:0:0"}
		}`))
		var typeErr *UnknownNodeTypeError
		require.ErrorAs(t, err, &typeErr)
		assert.Equal(t, "Break", typeErr.NodeType)
		assert.Equal(t, "expression", typeErr.Context)
	})

	t.Run("malformed source location", func(t *testing.T) {
		_, err := DecodeNode([]byte(`{"id": 7, "nodeType": "Break", "src": "0:0"}`))
		var locationErr *InvalidSourceLocationError
		require.ErrorAs(t, err, &locationErr)
	})
}

// TestTupleExpressionOmittedComponents will test that omitted tuple components decode
// to nil entries and re-encode as nulls.
func TestTupleExpressionOmittedComponents(t *testing.T) {
	data := []byte(`{
		"id": 10,
		"nodeType": "TupleExpression",
		"src": "0:10:0",
		"isConstant": false,
		"isInlineArray": false,
		"isLValue": false,
		"isPure": false,
		"lValueRequested": false,
		"components": [
			null,
			{
				"id": 9,
				"isConstant": false,
				"isLValue": true,
				"isPure": false,
				"lValueRequested": true,
				"name": "b",
				"nodeType": "Identifier",
				"referencedDeclaration": 4,
				"src": "3:1:0",
				"typeDescriptions": {"typeIdentifier": "t_uint256", "typeString": "uint256"}
			}
		],
		"typeDescriptions": {}
	}`)

	node, err := DecodeNode(data)
	require.NoError(t, err)
	tuple, ok := node.(*TupleExpression)
	require.True(t, ok)
	require.Len(t, tuple.Components, 2)
	assert.Nil(t, tuple.Components[0])
	assert.NotNil(t, tuple.Components[1])

	encoded, err := json.Marshal(tuple)
	require.NoError(t, err)
	decoded, err := DecodeNode(encoded)
	require.NoError(t, err)
	assert.Equal(t, tuple, decoded)
}

// TestDocumentationForms will test that both the plain string and structured node
// documentation forms decode and re-encode faithfully.
func TestDocumentationForms(t *testing.T) {
	t.Run("string form", func(t *testing.T) {
		var doc Documentation
		require.NoError(t, json.Unmarshal([]byte(`"a plain comment"`), &doc))
		assert.Equal(t, "a plain comment", doc.Text)
		assert.Nil(t, doc.Structured)

		encoded, err := json.Marshal(doc)
		require.NoError(t, err)
		assert.Equal(t, `"a plain comment"`, string(encoded))
	})

	t.Run("structured form", func(t *testing.T) {
		var doc Documentation
		require.NoError(t, json.Unmarshal([]byte(`{"id": 3, "nodeType": "StructuredDocumentation", "src": "0:10:0", "text": "@dev details"}`), &doc))
		require.NotNil(t, doc.Structured)
		assert.Equal(t, "@dev details", doc.Structured.Text)

		encoded, err := json.Marshal(doc)
		require.NoError(t, err)

		var decoded Documentation
		require.NoError(t, json.Unmarshal(encoded, &decoded))
		assert.Equal(t, doc, decoded)
	})
}

// TestUnaryOperationPrefixAlias will test that the alternate "prefix" spelling of the
// prefix flag is accepted and re-encoded under the canonical key.
func TestUnaryOperationPrefixAlias(t *testing.T) {
	data := []byte(`{
		"id": 6,
		"nodeType": "UnaryOperation",
		"src": "0:3:0",
		"operator": "!",
		"prefix": true,
		"isConstant": false,
		"isLValue": false,
		"isPure": false,
		"lValueRequested": false,
		"subExpression": {
			"id": 5,
			"isConstant": false,
			"isLValue": false,
			"isPure": false,
			"lValueRequested": false,
			"name": "ok",
			"nodeType": "Identifier",
			"referencedDeclaration": 2,
			"src": "1:2:0",
			"typeDescriptions": {"typeIdentifier": "t_bool", "typeString": "bool"}
		},
		"typeDescriptions": {"typeIdentifier": "t_bool", "typeString": "bool"}
	}`)

	node, err := DecodeNode(data)
	require.NoError(t, err)
	operation, ok := node.(*UnaryOperation)
	require.True(t, ok)
	assert.True(t, operation.IsPrefix)

	encoded, err := json.Marshal(operation)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"isPrefix":true`)
}

// TestInlineAssemblyRawStability will test that a pretty-printed Yul payload decodes
// to a value that survives an encode/decode cycle.
func TestInlineAssemblyRawStability(t *testing.T) {
	data := []byte(`{
		"id": 7,
		"nodeType": "InlineAssembly",
		"src": "0:10:0",
		"evmVersion": "shanghai",
		"AST": {
			"nodeType": "YulBlock",
			"src": "2:6:0",
			"statements": []
		}
	}`)

	node, err := DecodeNode(data)
	require.NoError(t, err)
	assembly, ok := node.(*InlineAssembly)
	require.True(t, ok)
	assert.Equal(t, `{"nodeType":"YulBlock","src":"2:6:0","statements":[]}`, string(assembly.AST))

	encoded, err := json.Marshal(assembly)
	require.NoError(t, err)
	redecoded, err := DecodeNode(encoded)
	require.NoError(t, err)
	assert.Equal(t, node, redecoded)
}

// TestContractDefinitionIntegerBooleans will test that the integer 0/1 spelling of
// the abstract and fullyImplemented flags decodes like true/false.
func TestContractDefinitionIntegerBooleans(t *testing.T) {
	data := []byte(`{
		"id": 3,
		"nodeType": "ContractDefinition",
		"src": "0:20:0",
		"name": "C",
		"contractKind": "contract",
		"abstract": 1,
		"fullyImplemented": 0,
		"linearizedBaseContracts": [3],
		"nodes": []
	}`)

	node, err := DecodeNode(data)
	require.NoError(t, err)
	contract, ok := node.(*ContractDefinition)
	require.True(t, ok)
	assert.True(t, contract.Abstract)
	assert.False(t, contract.FullyImplemented)

	// The flags re-encode as plain booleans.
	encoded, err := json.Marshal(contract)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"abstract":true`)
	assert.Contains(t, string(encoded), `"fullyImplemented":false`)

	// Integers other than 0 and 1 are rejected.
	_, err = DecodeNode([]byte(`{
		"id": 3,
		"nodeType": "ContractDefinition",
		"src": "0:20:0",
		"name": "C",
		"contractKind": "contract",
		"abstract": 2,
		"fullyImplemented": true,
		"linearizedBaseContracts": [3],
		"nodes": []
	}`))
	assert.Error(t, err)
}

// TestVariableDeclarationImmutable will test that the immutable flag is carried
// through a decode/encode cycle.
func TestVariableDeclarationImmutable(t *testing.T) {
	data := []byte(`{
		"id": 4,
		"nodeType": "VariableDeclaration",
		"src": "0:20:0",
		"name": "owner",
		"visibility": "public",
		"stateVariable": true,
		"immutable": true,
		"typeDescriptions": {"typeIdentifier": "t_address", "typeString": "address"}
	}`)

	node, err := DecodeNode(data)
	require.NoError(t, err)
	declaration, ok := node.(*VariableDeclaration)
	require.True(t, ok)
	require.NotNil(t, declaration.Immutable)
	assert.True(t, *declaration.Immutable)

	encoded, err := json.Marshal(declaration)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"immutable":true`)
}

// TestLiteralFormattedValue will test that the formatted value rendering is carried
// through a decode/encode cycle.
func TestLiteralFormattedValue(t *testing.T) {
	data := []byte(`{
		"id": 8,
		"nodeType": "Literal",
		"src": "0:22:0",
		"kind": "number",
		"value": "100000000000000000000",
		"formattedValue": "1e20",
		"isConstant": false,
		"isLValue": false,
		"isPure": true,
		"lValueRequested": false,
		"typeDescriptions": {}
	}`)

	node, err := DecodeNode(data)
	require.NoError(t, err)
	literal, ok := node.(*Literal)
	require.True(t, ok)
	require.NotNil(t, literal.FormattedValue)
	assert.Equal(t, "1e20", *literal.FormattedValue)

	encoded, err := json.Marshal(literal)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"formattedValue":"1e20"`)
}
