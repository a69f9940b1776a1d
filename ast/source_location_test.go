package ast

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseSourceLocation will test the parsing of well-formed src strings.
func TestParseSourceLocation(t *testing.T) {
	testCases := []struct {
		input    string
		expected SourceLocation
	}{
		{"0:0:0", SourceLocation{Offset: 0, Length: 0, SourceIndex: 0}},
		{"147:32:0", SourceLocation{Offset: 147, Length: 32, SourceIndex: 0}},
		{"25:1:5", SourceLocation{Offset: 25, Length: 1, SourceIndex: 5}},
		{"4611686018427387903:1:1", SourceLocation{Offset: 4611686018427387903, Length: 1, SourceIndex: 1}},
	}

	for _, tc := range testCases {
		location, err := ParseSourceLocation(tc.input)
		require.NoError(t, err, "ParseSourceLocation(%q)", tc.input)
		assert.Equal(t, tc.expected, location)

		// Rendering must reproduce the canonical string.
		assert.Equal(t, tc.input, location.String())
	}
}

// TestParseSourceLocationErrors will test the rejection of malformed src strings.
func TestParseSourceLocationErrors(t *testing.T) {
	testCases := []string{
		"",
		"147",
		"147:32",
		"147:32:0:9",
		"a:32:0",
		"147:b:0",
		"147:32:c",
		"-1:32:0",
		"147:+32:0",
		"147: 32:0",
		"147:32:",
	}

	for _, input := range testCases {
		_, err := ParseSourceLocation(input)
		assert.Error(t, err, "ParseSourceLocation(%q)", input)

		var locationErr *InvalidSourceLocationError
		assert.ErrorAs(t, err, &locationErr, "ParseSourceLocation(%q)", input)
		assert.Equal(t, input, locationErr.Raw)
	}
}

// TestSourceLocationJSON will test the JSON codec for source locations, including
// round-tripping through a struct field.
func TestSourceLocationJSON(t *testing.T) {
	var location SourceLocation
	err := json.Unmarshal([]byte(`"147:32:0"`), &location)
	require.NoError(t, err)
	assert.Equal(t, SourceLocation{Offset: 147, Length: 32, SourceIndex: 0}, location)

	encoded, err := json.Marshal(location)
	require.NoError(t, err)
	assert.Equal(t, `"147:32:0"`, string(encoded))

	// Non-string and malformed values must be rejected.
	assert.Error(t, json.Unmarshal([]byte(`147`), &location))
	assert.Error(t, json.Unmarshal([]byte(`"147:32"`), &location))
}
