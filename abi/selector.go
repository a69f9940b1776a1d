package abi

import (
	"strings"

	"golang.org/x/crypto/sha3"
)

// canonicalType renders a parameter type for signature hashing. Tuple-family types
// expand to a parenthesized component list with the array suffix preserved, per the
// ABI specification.
func canonicalType(typeName string, components []Param) string {
	if !isTupleType(typeName) {
		return typeName
	}
	rendered := make([]string, len(components))
	for i, component := range components {
		rendered[i] = canonicalType(component.Type, component.Components)
	}
	return "(" + strings.Join(rendered, ",") + ")" + typeName[len("tuple"):]
}

// paramSignature renders a comma-separated canonical type list.
func paramSignature(params []Param) string {
	rendered := make([]string, len(params))
	for i, p := range params {
		rendered[i] = canonicalType(p.Type, p.Components)
	}
	return strings.Join(rendered, ",")
}

// eventParamSignature renders a comma-separated canonical type list for event
// parameters. Indexing does not affect the signature.
func eventParamSignature(params []EventParam) string {
	rendered := make([]string, len(params))
	for i, p := range params {
		rendered[i] = canonicalType(p.Type, p.Components)
	}
	return strings.Join(rendered, ",")
}

// keccak256 hashes data with the legacy Keccak-256 used by the EVM.
func keccak256(data []byte) [32]byte {
	var digest [32]byte
	hash := sha3.NewLegacyKeccak256()
	hash.Write(data)
	hash.Sum(digest[:0])
	return digest
}

// Signature returns the function's canonical signature string, e.g.
// "transfer(address,uint256)".
func (f *Function) Signature() string {
	return f.Name + "(" + paramSignature(f.Inputs) + ")"
}

// Selector returns the 4-byte selector identifying the function in calldata.
func (f *Function) Selector() [4]byte {
	digest := keccak256([]byte(f.Signature()))
	var selector [4]byte
	copy(selector[:], digest[:4])
	return selector
}

// Signature returns the event's canonical signature string, e.g.
// "Transfer(address,address,uint256)".
func (e *Event) Signature() string {
	return e.Name + "(" + eventParamSignature(e.Inputs) + ")"
}

// Topic returns the 32-byte topic hash identifying the event in logs. Anonymous
// events do not emit it, but the hash is still defined.
func (e *Event) Topic() [32]byte {
	return keccak256([]byte(e.Signature()))
}

// Signature returns the error's canonical signature string.
func (e *Error) Signature() string {
	return e.Name + "(" + paramSignature(e.Inputs) + ")"
}

// Selector returns the 4-byte selector identifying the error in revert data.
func (e *Error) Selector() [4]byte {
	digest := keccak256([]byte(e.Signature()))
	var selector [4]byte
	copy(selector[:], digest[:4])
	return selector
}
