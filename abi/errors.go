package abi

import "fmt"

// UnknownItemTypeError indicates an ABI array entry carried a type discriminant
// outside the six item kinds, or no discriminant at all.
type UnknownItemTypeError struct {
	// ItemType is the unrecognized discriminant value. It is empty when the entry
	// carried no type field.
	ItemType string

	// Index is the entry's position in the ABI array, when decoding a full ABI.
	Index int
}

func (e *UnknownItemTypeError) Error() string {
	if e.ItemType == "" {
		return fmt.Sprintf("abi item %d: missing type discriminant", e.Index)
	}
	return fmt.Sprintf("abi item %d: unknown item type %q", e.Index, e.ItemType)
}

// MissingFieldError indicates an ABI item matched a known kind but lacked a field
// that kind requires.
type MissingFieldError struct {
	// ItemType is the discriminant of the item kind that was matched.
	ItemType string

	// Field is the name of the absent field.
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("abi %s item: missing required field %q", e.ItemType, e.Field)
}

// MissingComponentsError indicates a parameter of a tuple-family type lacked its
// components array.
type MissingComponentsError struct {
	// Name is the offending parameter's name. It may be empty, as parameter names
	// are optional in the ABI format.
	Name string

	// Type is the tuple-family type string that requires components.
	Type string
}

func (e *MissingComponentsError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("abi parameter of type %q has no components", e.Type)
	}
	return fmt.Sprintf("abi parameter %q of type %q has no components", e.Name, e.Type)
}

// InvalidStateMutabilityError indicates a stateMutability string outside the closed
// set {pure, view, nonpayable, payable}.
type InvalidStateMutabilityError struct {
	// Value is the rejected mutability string.
	Value string
}

func (e *InvalidStateMutabilityError) Error() string {
	return fmt.Sprintf("invalid state mutability %q", e.Value)
}
