// Package abi models the Contract ABI JSON format describing a contract's external
// interface: its functions, constructor, receive and fallback handlers, events, and
// custom errors. Decoding dispatches on each entry's type discriminant into a closed
// set of item kinds and validates the tuple-component and state-mutability
// invariants; encoding emits only the fields each kind carries.
package abi

import "encoding/json"

// Item type discriminants, as spelled in the JSON format.
const (
	TypeFunction    = "function"
	TypeConstructor = "constructor"
	TypeReceive     = "receive"
	TypeFallback    = "fallback"
	TypeEvent       = "event"
	TypeError       = "error"
)

// Item is implemented by every ABI entry kind.
type Item interface {
	// ItemType returns the entry's type discriminant string.
	ItemType() string
}

// Abi is a complete contract ABI: an ordered sequence of items. Order is preserved
// and duplicate names are permitted, as the format allows overloads.
type Abi []Item

// UnmarshalJSON decodes an ABI document, dispatching each array entry on its type
// discriminant.
func (a *Abi) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}

	items := make(Abi, 0, len(raws))
	for i, raw := range raws {
		item, err := decodeItem(raw, i)
		if err != nil {
			return err
		}
		items = append(items, item)
	}
	*a = items
	return nil
}

// Parse decodes a complete ABI JSON document.
func Parse(data []byte) (Abi, error) {
	var a Abi
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return a, nil
}

// DecodeItem decodes a single ABI entry object, dispatching on its type
// discriminant. Unknown discriminants fail with UnknownItemTypeError, absent required
// fields with MissingFieldError, and tuple parameters without components with
// MissingComponentsError.
func DecodeItem(data json.RawMessage) (Item, error) {
	return decodeItem(data, 0)
}

func decodeItem(data json.RawMessage, index int) (Item, error) {
	header := struct {
		Type *string `json:"type"`
	}{}
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, err
	}
	if header.Type == nil {
		return nil, &UnknownItemTypeError{Index: index}
	}
	itemType := *header.Type

	var item Item
	switch itemType {
	case TypeFunction:
		item = new(Function)
	case TypeConstructor:
		item = new(Constructor)
	case TypeReceive:
		item = new(Receive)
	case TypeFallback:
		item = new(Fallback)
	case TypeEvent:
		item = new(Event)
	case TypeError:
		item = new(Error)
	default:
		return nil, &UnknownItemTypeError{ItemType: itemType, Index: index}
	}

	if err := checkRequiredFields(data, itemType); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, item); err != nil {
		return nil, err
	}
	if err := item.(validator).validate(); err != nil {
		return nil, err
	}
	return item, nil
}

// requiredItemFields lists, per item kind, the fields the format requires for that
// kind. The field-presence table is closed: encoding never emits anything else.
var requiredItemFields = map[string][]string{
	TypeFunction:    {"name", "inputs", "outputs", "stateMutability"},
	TypeConstructor: {"inputs", "stateMutability"},
	TypeReceive:     {"stateMutability"},
	TypeFallback:    {"stateMutability"},
	TypeEvent:       {"name", "inputs", "anonymous"},
	TypeError:       {"name", "inputs"},
}

// checkRequiredFields verifies the presence of every field the matched item kind
// requires.
func checkRequiredFields(data json.RawMessage, itemType string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for _, name := range requiredItemFields[itemType] {
		if _, present := fields[name]; !present {
			return &MissingFieldError{ItemType: itemType, Field: name}
		}
	}
	return nil
}

// validator is implemented by item kinds to check their structural invariants after
// field decoding.
type validator interface {
	validate() error
}

// Function is a regular function entry.
type Function struct {
	Name            string          `json:"name"`
	Inputs          []Param         `json:"inputs"`
	Outputs         []Param         `json:"outputs"`
	StateMutability StateMutability `json:"stateMutability"`
}

// ItemType implements the Item interface.
func (f *Function) ItemType() string { return TypeFunction }

func (f *Function) validate() error {
	if err := validateParams(f.Inputs); err != nil {
		return err
	}
	return validateParams(f.Outputs)
}

// MarshalJSON encodes the function with its type discriminant.
func (f *Function) MarshalJSON() ([]byte, error) {
	type alias Function
	return json.Marshal(&struct {
		Type string `json:"type"`
		*alias
	}{Type: TypeFunction, alias: (*alias)(f)})
}

// Constructor is the constructor entry. It has inputs but no name or outputs.
type Constructor struct {
	Inputs          []Param         `json:"inputs"`
	StateMutability StateMutability `json:"stateMutability"`
}

// ItemType implements the Item interface.
func (c *Constructor) ItemType() string { return TypeConstructor }

func (c *Constructor) validate() error {
	return validateParams(c.Inputs)
}

// MarshalJSON encodes the constructor with its type discriminant.
func (c *Constructor) MarshalJSON() ([]byte, error) {
	type alias Constructor
	return json.Marshal(&struct {
		Type string `json:"type"`
		*alias
	}{Type: TypeConstructor, alias: (*alias)(c)})
}

// Receive is the plain-ether receive handler entry. Its mutability is always payable
// in compiler output, but the model does not enforce that.
type Receive struct {
	StateMutability StateMutability `json:"stateMutability"`
}

// ItemType implements the Item interface.
func (r *Receive) ItemType() string { return TypeReceive }

func (r *Receive) validate() error { return nil }

// MarshalJSON encodes the receive handler with its type discriminant.
func (r *Receive) MarshalJSON() ([]byte, error) {
	type alias Receive
	return json.Marshal(&struct {
		Type string `json:"type"`
		*alias
	}{Type: TypeReceive, alias: (*alias)(r)})
}

// Fallback is the fallback handler entry.
type Fallback struct {
	StateMutability StateMutability `json:"stateMutability"`
}

// ItemType implements the Item interface.
func (f *Fallback) ItemType() string { return TypeFallback }

func (f *Fallback) validate() error { return nil }

// MarshalJSON encodes the fallback handler with its type discriminant.
func (f *Fallback) MarshalJSON() ([]byte, error) {
	type alias Fallback
	return json.Marshal(&struct {
		Type string `json:"type"`
		*alias
	}{Type: TypeFallback, alias: (*alias)(f)})
}

// Event is an event entry. Its parameters carry per-parameter indexed flags.
type Event struct {
	Name      string       `json:"name"`
	Inputs    []EventParam `json:"inputs"`
	Anonymous bool         `json:"anonymous"`
}

// ItemType implements the Item interface.
func (e *Event) ItemType() string { return TypeEvent }

func (e *Event) validate() error {
	return validateEventParams(e.Inputs)
}

// MarshalJSON encodes the event with its type discriminant.
func (e *Event) MarshalJSON() ([]byte, error) {
	type alias Event
	return json.Marshal(&struct {
		Type string `json:"type"`
		*alias
	}{Type: TypeEvent, alias: (*alias)(e)})
}

// Error is a custom error entry.
type Error struct {
	Name   string  `json:"name"`
	Inputs []Param `json:"inputs"`
}

// ItemType implements the Item interface.
func (e *Error) ItemType() string { return TypeError }

func (e *Error) validate() error {
	return validateParams(e.Inputs)
}

// MarshalJSON encodes the error with its type discriminant.
func (e *Error) MarshalJSON() ([]byte, error) {
	type alias Error
	return json.Marshal(&struct {
		Type string `json:"type"`
		*alias
	}{Type: TypeError, alias: (*alias)(e)})
}
