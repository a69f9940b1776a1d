package ast

import "fmt"

// InvalidSourceLocationError indicates a source location string did not match the
// compiler's "offset:length:sourceIndex" encoding. Field and Value identify the
// offending component when the overall shape was otherwise correct.
type InvalidSourceLocationError struct {
	// Raw is the full source location string that failed to decode.
	Raw string

	// Field names the triple component that failed to parse (offset, length, or
	// source index). It is empty when the string did not split into three parts.
	Field string

	// Value is the substring which failed to parse as a non-negative integer.
	Value string
}

func (e *InvalidSourceLocationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid source location %q: expected offset:length:sourceIndex", e.Raw)
	}
	return fmt.Sprintf("invalid source location %q: %s %q is not a non-negative integer", e.Raw, e.Field, e.Value)
}

// InvalidElementaryTypeError indicates a type name string did not spell any known
// elementary Solidity type, or spelled one with an out-of-range size.
type InvalidElementaryTypeError struct {
	// Raw is the type name string that failed to decode.
	Raw string
}

func (e *InvalidElementaryTypeError) Error() string {
	return fmt.Sprintf("invalid elementary type name %q", e.Raw)
}

// UnknownNodeTypeError indicates a node object carried a nodeType discriminant this
// model does not define, or one that is not permitted in the position it appeared in.
type UnknownNodeTypeError struct {
	// NodeType is the unrecognized discriminant value.
	NodeType string

	// Context names the structural position being decoded (e.g. "expression") when
	// the discriminant is known but not valid there.
	Context string
}

func (e *UnknownNodeTypeError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("node type %q is not valid in %s position", e.NodeType, e.Context)
	}
	return fmt.Sprintf("unknown AST node type %q", e.NodeType)
}

// MissingFieldError indicates a node object matched a known kind but lacked a field
// that kind requires.
type MissingFieldError struct {
	// NodeType is the discriminant of the node kind that was matched.
	NodeType string

	// Field is the name of the absent field.
	Field string

	// ID is the enclosing node's compiler-assigned identifier, if one was present.
	ID int64
}

func (e *MissingFieldError) Error() string {
	if e.NodeType == "" {
		return fmt.Sprintf("node %d: missing required field %q", e.ID, e.Field)
	}
	return fmt.Sprintf("%s node %d: missing required field %q", e.NodeType, e.ID, e.Field)
}
