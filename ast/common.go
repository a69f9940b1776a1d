package ast

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// looseBool decodes a boolean that some compiler versions spell as the integer
// 0 or 1 instead of true/false.
type looseBool bool

func (b *looseBool) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "true", "1":
		*b = true
	case "false", "0":
		*b = false
	default:
		return fmt.Errorf("invalid boolean value: %s, expected true, false, 0, or 1", string(data))
	}
	return nil
}

// compactRawJSON strips insignificant whitespace from raw JSON carried verbatim.
// Marshaling compacts json.RawMessage fields, so raw fields must be compacted at
// decode time to keep decoded values equal across an encode/decode cycle.
func compactRawJSON(data json.RawMessage) (json.RawMessage, error) {
	var buffer bytes.Buffer
	if err := json.Compact(&buffer, data); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// TypeDescriptions carries the compiler-derived type information attached to most
// expression and declaration nodes. Both fields may be independently absent; the
// compiler emits an empty object when it derived nothing.
type TypeDescriptions struct {
	// TypeIdentifier is the compiler's internal type identifier (e.g. "t_uint256").
	TypeIdentifier *string `json:"typeIdentifier,omitempty"`

	// TypeString is the human-readable type rendering (e.g. "uint256").
	TypeString *string `json:"typeString,omitempty"`
}

// CommonType describes the shared operand type the compiler derived for a binary
// operation. Unlike TypeDescriptions, both fields are always present.
type CommonType struct {
	TypeIdentifier string `json:"typeIdentifier"`
	TypeString     string `json:"typeString"`
}

// ContractKind represents the kind of contract definition represented by an AST node.
type ContractKind string

const (
	// ContractKindContract represents a contract node.
	ContractKindContract ContractKind = "contract"
	// ContractKindLibrary represents a library node.
	ContractKindLibrary ContractKind = "library"
	// ContractKindInterface represents an interface node.
	ContractKindInterface ContractKind = "interface"
)

// FunctionKind represents which role a function definition plays in its contract.
type FunctionKind string

const (
	FunctionKindConstructor  FunctionKind = "constructor"
	FunctionKindFunction     FunctionKind = "function"
	FunctionKindReceive      FunctionKind = "receive"
	FunctionKindFallback     FunctionKind = "fallback"
	FunctionKindFreeFunction FunctionKind = "freeFunction"
)

// Visibility represents the declared visibility of a function or variable.
type Visibility string

const (
	VisibilityExternal Visibility = "external"
	VisibilityPublic   Visibility = "public"
	VisibilityInternal Visibility = "internal"
	VisibilityPrivate  Visibility = "private"
)

// StateMutability represents a function's declared state mutability.
type StateMutability string

const (
	StateMutabilityPure       StateMutability = "pure"
	StateMutabilityView       StateMutability = "view"
	StateMutabilityNonpayable StateMutability = "nonpayable"
	StateMutabilityPayable    StateMutability = "payable"
)

// StorageLocation represents a variable's declared data location.
type StorageLocation string

const (
	StorageLocationDefault  StorageLocation = "default"
	StorageLocationMemory   StorageLocation = "memory"
	StorageLocationStorage  StorageLocation = "storage"
	StorageLocationCalldata StorageLocation = "calldata"
)

// Mutability represents a variable declaration's mutability.
type Mutability string

const (
	MutabilityMutable   Mutability = "mutable"
	MutabilityImmutable Mutability = "immutable"
	MutabilityConstant  Mutability = "constant"
)

// LiteralKind represents the syntactic kind of a literal expression.
type LiteralKind string

const (
	LiteralKindBool          LiteralKind = "bool"
	LiteralKindNumber        LiteralKind = "number"
	LiteralKindString        LiteralKind = "string"
	LiteralKindHexString     LiteralKind = "hexString"
	LiteralKindUnicodeString LiteralKind = "unicodeString"
)

// ModifierInvocationKind distinguishes plain modifier invocations from base
// constructor calls in a function's modifier list.
type ModifierInvocationKind string

const (
	ModifierInvocationKindModifier                 ModifierInvocationKind = "modifier"
	ModifierInvocationKindBaseConstructorSpecifier ModifierInvocationKind = "baseConstructorSpecifier"
)

// Documentation captures a node's documentation. Older compilers emit a plain string
// while newer ones emit a StructuredDocumentation node; exactly one of the two forms
// is populated.
type Documentation struct {
	// Text holds the plain string form.
	Text string

	// Structured holds the structured node form when the compiler emitted one.
	Structured *StructuredDocumentation
}

// UnmarshalJSON accepts either documentation form based on the leading JSON token.
func (d *Documentation) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &d.Text)
	}
	d.Structured = new(StructuredDocumentation)
	return json.Unmarshal(data, d.Structured)
}

// MarshalJSON re-emits whichever documentation form was decoded.
func (d Documentation) MarshalJSON() ([]byte, error) {
	if d.Structured != nil {
		return json.Marshal(d.Structured)
	}
	return json.Marshal(d.Text)
}

// StructuredDocumentation is the structured NatSpec documentation node attached to
// declarations by newer compilers.
type StructuredDocumentation struct {
	NodeInfo
	Text string `json:"text"`
}

// ExternalReference describes a Solidity variable referenced from within an inline
// assembly block. It is an auxiliary structure, not a node: it carries no id.
type ExternalReference struct {
	// Declaration is the id of the referenced declaration node. It is a back
	// reference; resolving it is the caller's concern.
	Declaration int64          `json:"declaration"`
	IsOffset    bool           `json:"isOffset"`
	IsSlot      bool           `json:"isSlot"`
	Src         SourceLocation `json:"src"`
	ValueSize   int64          `json:"valueSize"`
}

// SymbolAlias describes one imported symbol of an import directive, optionally
// renamed with a local alias.
type SymbolAlias struct {
	Foreign      Identifier `json:"foreign"`
	Local        *string    `json:"local,omitempty"`
	NameLocation string     `json:"nameLocation,omitempty"`
}
