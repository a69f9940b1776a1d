package ast

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseElementaryType will test the parsing of valid elementary type name
// spellings, including shorthand canonicalization.
func TestParseElementaryType(t *testing.T) {
	testCases := []struct {
		input     string
		expected  ElementaryType
		canonical string
	}{
		{"address", ElementaryType{Kind: ElementaryAddress}, "address"},
		{"payable", ElementaryType{Kind: ElementaryAddressPayable}, "payable"},
		{"bool", ElementaryType{Kind: ElementaryBool}, "bool"},
		{"string", ElementaryType{Kind: ElementaryString}, "string"},
		{"bytes", ElementaryType{Kind: ElementaryBytes}, "bytes"},
		{"uint", UintType(256), "uint256"},
		{"uint8", UintType(8), "uint8"},
		{"uint256", UintType(256), "uint256"},
		{"int", IntType(256), "int256"},
		{"int64", IntType(64), "int64"},
		{"bytes1", FixedBytesType(1), "bytes1"},
		{"bytes32", FixedBytesType(32), "bytes32"},
		{"ufixed128x18", ElementaryType{Kind: ElementaryUfixed, Bits: 128, Fractional: 18}, "ufixed128x18"},
		{"fixed8x0", ElementaryType{Kind: ElementaryFixed, Bits: 8, Fractional: 0}, "fixed8x0"},
		{"fixed256x80", ElementaryType{Kind: ElementaryFixed, Bits: 256, Fractional: 80}, "fixed256x80"},
	}

	for _, tc := range testCases {
		parsed, err := ParseElementaryType(tc.input)
		require.NoError(t, err, "ParseElementaryType(%q)", tc.input)
		assert.Equal(t, tc.expected, parsed)
		assert.Equal(t, tc.canonical, parsed.String())
	}
}

// TestParseElementaryTypeErrors will test the rejection of unknown and out-of-range
// type name spellings.
func TestParseElementaryTypeErrors(t *testing.T) {
	testCases := []string{
		"",
		"uint7",
		"uint0",
		"uint264",
		"uint2560",
		"int12",
		"bytes0",
		"bytes33",
		"ufixed",
		"ufixed128",
		"ufixed127x18",
		"fixed128x81",
		"fixed0x18",
		"mapping",
		"Contract",
		"UINT256",
		"uint 256",
	}

	for _, input := range testCases {
		_, err := ParseElementaryType(input)
		assert.Error(t, err, "ParseElementaryType(%q)", input)

		var typeErr *InvalidElementaryTypeError
		assert.ErrorAs(t, err, &typeErr, "ParseElementaryType(%q)", input)
		assert.Equal(t, input, typeErr.Raw)
	}
}

// TestElementaryTypeEquality will test that shorthand and canonical spellings decode
// to values comparable with ==.
func TestElementaryTypeEquality(t *testing.T) {
	shorthand, err := ParseElementaryType("uint")
	require.NoError(t, err)
	canonical, err := ParseElementaryType("uint256")
	require.NoError(t, err)
	assert.True(t, shorthand == canonical)

	// Distinct widths and signedness must not compare equal.
	uint8Type, err := ParseElementaryType("uint8")
	require.NoError(t, err)
	int256Type, err := ParseElementaryType("int256")
	require.NoError(t, err)
	assert.False(t, canonical == uint8Type)
	assert.False(t, canonical == int256Type)
}

// TestElementaryTypeJSON will test the JSON codec for elementary type names,
// including canonicalization of shorthand input.
func TestElementaryTypeJSON(t *testing.T) {
	var parsed ElementaryType
	require.NoError(t, json.Unmarshal([]byte(`"uint"`), &parsed))
	assert.Equal(t, UintType(256), parsed)

	encoded, err := json.Marshal(parsed)
	require.NoError(t, err)
	assert.Equal(t, `"uint256"`, string(encoded))

	assert.Error(t, json.Unmarshal([]byte(`"uint7"`), &parsed))
	assert.Error(t, json.Unmarshal([]byte(`256`), &parsed))
}

// TestElementaryTypeIntegerWidths will test every legal integer width spelling.
func TestElementaryTypeIntegerWidths(t *testing.T) {
	for bits := 8; bits <= 256; bits += 8 {
		unsigned, err := ParseElementaryType(fmt.Sprintf("uint%d", bits))
		require.NoError(t, err)
		assert.Equal(t, UintType(uint16(bits)), unsigned)

		signed, err := ParseElementaryType(fmt.Sprintf("int%d", bits))
		require.NoError(t, err)
		assert.Equal(t, IntType(uint16(bits)), signed)
	}
}
