package abi

import (
	"encoding/json"
	"strings"
)

// StateMutability describes a function's declared state mutability. Decoding accepts
// exactly the four spellings the compiler emits.
type StateMutability string

const (
	// StateMutabilityPure marks a function that neither reads nor writes state.
	StateMutabilityPure StateMutability = "pure"
	// StateMutabilityView marks a function that reads but does not write state.
	StateMutabilityView StateMutability = "view"
	// StateMutabilityNonpayable marks a function that may write state but rejects ether.
	StateMutabilityNonpayable StateMutability = "nonpayable"
	// StateMutabilityPayable marks a function that accepts ether.
	StateMutabilityPayable StateMutability = "payable"
)

// UnmarshalJSON decodes a mutability string, rejecting values outside the closed set.
func (m *StateMutability) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch StateMutability(raw) {
	case StateMutabilityPure, StateMutabilityView, StateMutabilityNonpayable, StateMutabilityPayable:
		*m = StateMutability(raw)
		return nil
	}
	return &InvalidStateMutabilityError{Value: raw}
}

// Param describes one parameter of a function, constructor, or error, or one
// component of a tuple type. Tuple components nest recursively through Components.
type Param struct {
	// Name is the parameter name. The compiler emits an empty string for unnamed
	// parameters.
	Name string `json:"name"`

	// Type is the canonical ABI type string (e.g. "uint256", "tuple[]").
	Type string `json:"type"`

	// Components describes the fields of a tuple-family type, in declaration order.
	Components []Param `json:"components,omitempty"`

	// InternalType is the compiler's internal rendering of the Solidity type (e.g.
	// "struct Order"). Older compilers omit it.
	InternalType *string `json:"internalType,omitempty"`
}

// EventParam describes one parameter of an event. It extends Param with the indexed
// flag controlling topic placement.
type EventParam struct {
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Components   []Param `json:"components,omitempty"`
	Indexed      bool    `json:"indexed"`
	InternalType *string `json:"internalType,omitempty"`
}

// isTupleType reports whether an ABI type string denotes the tuple family, including
// array forms like "tuple[]" and "tuple[3][]".
func isTupleType(typeName string) bool {
	return typeName == "tuple" || strings.HasPrefix(typeName, "tuple[")
}

// validateParam checks the tuple invariant on a parameter and its nested components:
// a tuple-family type must carry a components array.
func validateParam(p *Param) error {
	if isTupleType(p.Type) && p.Components == nil {
		return &MissingComponentsError{Name: p.Name, Type: p.Type}
	}
	for i := range p.Components {
		if err := validateParam(&p.Components[i]); err != nil {
			return err
		}
	}
	return nil
}

// validateParams checks the tuple invariant across a parameter list.
func validateParams(params []Param) error {
	for i := range params {
		if err := validateParam(&params[i]); err != nil {
			return err
		}
	}
	return nil
}

// validateEventParams checks the tuple invariant across an event parameter list.
func validateEventParams(params []EventParam) error {
	for i := range params {
		if isTupleType(params[i].Type) && params[i].Components == nil {
			return &MissingComponentsError{Name: params[i].Name, Type: params[i].Type}
		}
		if err := validateParams(params[i].Components); err != nil {
			return err
		}
	}
	return nil
}
