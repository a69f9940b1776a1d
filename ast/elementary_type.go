package ast

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ElementaryTypeKind identifies the family of an elementary Solidity type.
type ElementaryTypeKind uint8

const (
	// ElementaryUint represents the unsigned integer family (uint8..uint256).
	ElementaryUint ElementaryTypeKind = iota
	// ElementaryInt represents the signed integer family (int8..int256).
	ElementaryInt
	// ElementaryAddress represents the address type.
	ElementaryAddress
	// ElementaryAddressPayable represents the payable address type.
	ElementaryAddressPayable
	// ElementaryBool represents the boolean type.
	ElementaryBool
	// ElementaryString represents the UTF-8 string type.
	ElementaryString
	// ElementaryBytes represents the dynamically-sized byte array type.
	ElementaryBytes
	// ElementaryFixedBytes represents the fixed-size byte array family (bytes1..bytes32).
	ElementaryFixedBytes
	// ElementaryUfixed represents the unsigned fixed-point family (ufixedMxN).
	ElementaryUfixed
	// ElementaryFixed represents the signed fixed-point family (fixedMxN).
	ElementaryFixed
)

// ElementaryType describes an elementary Solidity type name as a closed variant.
// Decoding canonicalizes shorthand spellings, so a bare "uint" decodes to the same
// value as "uint256" and re-encodes as "uint256". Values are comparable with ==.
type ElementaryType struct {
	// Kind identifies the type family.
	Kind ElementaryTypeKind

	// Bits holds the integer bit-width, the fixed-bytes size in bytes, or the
	// fixed-point total bit count, depending on Kind. Zero for sizeless kinds.
	Bits uint16

	// Fractional holds the fixed-point fractional digit count for the ufixed/fixed
	// kinds. Zero otherwise.
	Fractional uint8
}

// UintType returns the unsigned integer type of the given bit-width.
func UintType(bits uint16) ElementaryType {
	return ElementaryType{Kind: ElementaryUint, Bits: bits}
}

// IntType returns the signed integer type of the given bit-width.
func IntType(bits uint16) ElementaryType {
	return ElementaryType{Kind: ElementaryInt, Bits: bits}
}

// FixedBytesType returns the fixed-size byte array type of the given size.
func FixedBytesType(size uint16) ElementaryType {
	return ElementaryType{Kind: ElementaryFixedBytes, Bits: size}
}

// ParseElementaryType parses a compiler type name spelling into its canonical variant.
// Shorthand integer spellings ("uint", "int") decode as their 256-bit forms. Spellings
// which match no family, or which carry sizes outside the language's legal ranges,
// fail with an InvalidElementaryTypeError carrying the raw text.
func ParseElementaryType(s string) (ElementaryType, error) {
	// Fast path for the sizeless type names.
	switch s {
	case "address":
		return ElementaryType{Kind: ElementaryAddress}, nil
	case "payable":
		return ElementaryType{Kind: ElementaryAddressPayable}, nil
	case "bool":
		return ElementaryType{Kind: ElementaryBool}, nil
	case "string":
		return ElementaryType{Kind: ElementaryString}, nil
	case "bytes":
		return ElementaryType{Kind: ElementaryBytes}, nil
	}

	// The remaining families carry a size suffix. The bare "bytes" spelling was
	// consumed above, so any remaining "bytes" prefix denotes a fixed-size array.
	switch {
	case strings.HasPrefix(s, "uint"):
		bits, ok := parseIntegerWidth(s[len("uint"):])
		if !ok {
			return ElementaryType{}, &InvalidElementaryTypeError{Raw: s}
		}
		return UintType(bits), nil

	case strings.HasPrefix(s, "ufixed"):
		return parseFixedPoint(s, s[len("ufixed"):], ElementaryUfixed)

	case strings.HasPrefix(s, "int"):
		bits, ok := parseIntegerWidth(s[len("int"):])
		if !ok {
			return ElementaryType{}, &InvalidElementaryTypeError{Raw: s}
		}
		return IntType(bits), nil

	case strings.HasPrefix(s, "fixed"):
		return parseFixedPoint(s, s[len("fixed"):], ElementaryFixed)

	case strings.HasPrefix(s, "bytes"):
		size, err := strconv.ParseUint(s[len("bytes"):], 10, 16)
		if err != nil || size < 1 || size > 32 {
			return ElementaryType{}, &InvalidElementaryTypeError{Raw: s}
		}
		return FixedBytesType(uint16(size)), nil
	}

	return ElementaryType{}, &InvalidElementaryTypeError{Raw: s}
}

// parseIntegerWidth parses the digit suffix of an integer type name. An empty suffix
// means the 256-bit shorthand. Widths must be multiples of 8 in [8, 256].
func parseIntegerWidth(suffix string) (uint16, bool) {
	if suffix == "" {
		return 256, true
	}
	bits, err := strconv.ParseUint(suffix, 10, 16)
	if err != nil || bits < 8 || bits > 256 || bits%8 != 0 {
		return 0, false
	}
	return uint16(bits), true
}

// parseFixedPoint parses the "MxN" suffix of a fixed-point type name. M must be a
// multiple of 8 in [8, 256] and N must be in [0, 80].
func parseFixedPoint(raw string, suffix string, kind ElementaryTypeKind) (ElementaryType, error) {
	totalStr, fractionalStr, found := strings.Cut(suffix, "x")
	if !found {
		return ElementaryType{}, &InvalidElementaryTypeError{Raw: raw}
	}

	total, err := strconv.ParseUint(totalStr, 10, 16)
	if err != nil || total < 8 || total > 256 || total%8 != 0 {
		return ElementaryType{}, &InvalidElementaryTypeError{Raw: raw}
	}

	fractional, err := strconv.ParseUint(fractionalStr, 10, 8)
	if err != nil || fractional > 80 {
		return ElementaryType{}, &InvalidElementaryTypeError{Raw: raw}
	}

	return ElementaryType{Kind: kind, Bits: uint16(total), Fractional: uint8(fractional)}, nil
}

// String returns the canonical spelling of the type name. Shorthand forms are never
// produced, so a value decoded from "uint" renders as "uint256".
func (t ElementaryType) String() string {
	switch t.Kind {
	case ElementaryUint:
		return fmt.Sprintf("uint%d", t.Bits)
	case ElementaryInt:
		return fmt.Sprintf("int%d", t.Bits)
	case ElementaryAddress:
		return "address"
	case ElementaryAddressPayable:
		return "payable"
	case ElementaryBool:
		return "bool"
	case ElementaryString:
		return "string"
	case ElementaryBytes:
		return "bytes"
	case ElementaryFixedBytes:
		return fmt.Sprintf("bytes%d", t.Bits)
	case ElementaryUfixed:
		return fmt.Sprintf("ufixed%dx%d", t.Bits, t.Fractional)
	case ElementaryFixed:
		return fmt.Sprintf("fixed%dx%d", t.Bits, t.Fractional)
	default:
		return fmt.Sprintf("invalid elementary type kind (%d)", t.Kind)
	}
}

// MarshalJSON encodes the type as its canonical spelling.
func (t ElementaryType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a type name spelling, canonicalizing shorthand forms.
func (t *ElementaryType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseElementaryType(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
