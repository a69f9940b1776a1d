package ast

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// numberLiteral builds a number literal with an optional subdenomination for the
// scaling tests.
func numberLiteral(value string, subdenomination string) *Literal {
	literal := &Literal{
		NodeInfo: NodeInfo{ID: 1, NodeType: "Literal"},
		Kind:     LiteralKindNumber,
		Value:    value,
	}
	if subdenomination != "" {
		literal.Subdenomination = &subdenomination
	}
	return literal
}

// TestSubdenominatedValue will test the scaling of number literals into base units.
func TestSubdenominatedValue(t *testing.T) {
	testCases := []struct {
		value           string
		subdenomination string
		expected        string
	}{
		{"100", "", "100"},
		{"1", "wei", "1"},
		{"2", "gwei", "2000000000"},
		{"1", "ether", "1000000000000000000"},
		{"1.5", "ether", "1500000000000000000"},
		{"30", "seconds", "30"},
		{"2", "minutes", "120"},
		{"1", "hours", "3600"},
		{"7", "days", "604800"},
		{"2", "weeks", "1209600"},
		{"1", "years", "31536000"},
	}

	for _, tc := range testCases {
		scaled, err := numberLiteral(tc.value, tc.subdenomination).SubdenominatedValue()
		require.NoError(t, err, "value %q subdenomination %q", tc.value, tc.subdenomination)

		expected, err := decimal.NewFromString(tc.expected)
		require.NoError(t, err)
		assert.True(t, expected.Equal(scaled), "value %q subdenomination %q: got %s, want %s", tc.value, tc.subdenomination, scaled, expected)
	}
}

// TestSubdenominatedValueErrors will test rejection of non-number literals, malformed
// values, and unknown subdenominations.
func TestSubdenominatedValueErrors(t *testing.T) {
	stringLiteral := &Literal{
		NodeInfo: NodeInfo{ID: 2, NodeType: "Literal"},
		Kind:     LiteralKindString,
		Value:    "hello",
	}
	_, err := stringLiteral.SubdenominatedValue()
	assert.Error(t, err)

	_, err = numberLiteral("not-a-number", "").SubdenominatedValue()
	assert.Error(t, err)

	_, err = numberLiteral("1", "fortnights").SubdenominatedValue()
	assert.Error(t, err)
}
