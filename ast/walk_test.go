package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWalk will test the depth-first traversal order and subtree pruning.
func TestWalk(t *testing.T) {
	unit := readTestAST(t)

	// A full traversal visits the root first and reaches every dispatched node,
	// including ones nested in expression position.
	var visited []string
	Walk(unit, func(n Node) bool {
		visited = append(visited, n.GetNodeType())
		return true
	})
	assert.Equal(t, "SourceUnit", visited[0])
	assert.Contains(t, visited, "Assignment")
	assert.Contains(t, visited, "Literal")
	assert.Contains(t, visited, "ElementaryTypeName")
	assert.Contains(t, visited, "StructuredDocumentation")

	// Pruning at the contract definition stops descent into its members.
	var pruned []string
	Walk(unit, func(n Node) bool {
		pruned = append(pruned, n.GetNodeType())
		return n.GetNodeType() != "ContractDefinition"
	})
	assert.Equal(t, []string{"SourceUnit", "PragmaDirective", "ContractDefinition"}, pruned)
}

// TestBuildIndex will test id-based node lookup, including resolution of a back
// reference through the index.
func TestBuildIndex(t *testing.T) {
	unit := readTestAST(t)
	index := BuildIndex(unit)

	// Every walked node is indexed.
	count := 0
	Walk(unit, func(Node) bool {
		count++
		return true
	})
	assert.Equal(t, count, index.Len())

	// The root and a deeply nested node both resolve by id.
	assert.Same(t, unit, index.ByID(100))
	variable, ok := index.ByID(5).(*VariableDeclaration)
	require.True(t, ok)
	assert.Equal(t, "totalSupply", variable.Name)

	// The assignment's identifier references the state variable; its back reference
	// resolves to the same declaration node.
	identifier, ok := index.ByID(27).(*Identifier)
	require.True(t, ok)
	require.NotNil(t, identifier.ReferencedDeclaration)
	assert.Same(t, index.ByID(5), index.ByID(*identifier.ReferencedDeclaration))

	// Ids that do not occur in the tree resolve to nil.
	assert.Nil(t, index.ByID(9999))
}
