package ast

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// SourceLocation describes the region of a source file an AST node was parsed from.
// The compiler encodes it as the string "offset:length:sourceIndex".
type SourceLocation struct {
	// Offset is the byte offset marking the start of the source range.
	Offset int

	// Length is the byte length of the source range.
	Length int

	// SourceIndex identifies which source file of the compilation houses the range.
	SourceIndex int
}

// sourceLocationFieldNames names the triple components in encoding order, used to
// report which component of a malformed string failed to parse.
var sourceLocationFieldNames = [3]string{"offset", "length", "source index"}

// ParseSourceLocation parses a compiler-emitted "offset:length:sourceIndex" string.
// Each component must be a non-negative base-10 integer with no sign or surrounding
// whitespace. No semantic validation against actual source file sizes is performed.
func ParseSourceLocation(s string) (SourceLocation, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return SourceLocation{}, &InvalidSourceLocationError{Raw: s}
	}

	// Parse each component, reporting the offending field on failure. ParseUint is
	// used so explicit signs are rejected.
	var values [3]int
	for i, part := range parts {
		value, err := strconv.ParseUint(part, 10, 62)
		if err != nil {
			return SourceLocation{}, &InvalidSourceLocationError{Raw: s, Field: sourceLocationFieldNames[i], Value: part}
		}
		values[i] = int(value)
	}

	return SourceLocation{Offset: values[0], Length: values[1], SourceIndex: values[2]}, nil
}

// String returns the compiler's "offset:length:sourceIndex" encoding of the location.
func (s SourceLocation) String() string {
	return fmt.Sprintf("%d:%d:%d", s.Offset, s.Length, s.SourceIndex)
}

// MarshalJSON encodes the location as its positional triple string.
func (s SourceLocation) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a positional triple string into the location.
func (s *SourceLocation) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	loc, err := ParseSourceLocation(raw)
	if err != nil {
		return err
	}
	*s = loc
	return nil
}
