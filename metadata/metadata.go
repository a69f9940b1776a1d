// Package metadata extracts the CBOR-encoded metadata blob the Solidity compiler
// appends to runtime bytecode, carrying the source hash and compiler version.
// Reference: https://docs.soliditylang.org/en/latest/metadata.html
package metadata

import (
	"bytes"
	"fmt"

	"github.com/Masterminds/semver"
	"github.com/fxamacker/cbor"
)

// Metadata is the decoded CBOR map appended to runtime bytecode.
type Metadata map[string]any

// hashPrefixes are the byte patterns opening the metadata blob across compiler
// versions. The blob sits at the end of the bytecode, before constructor arguments.
var hashPrefixes = [][]byte{
	{0xa1, 0x65, 'b', 'z', 'z', 'r', '0', 0x58, 0x20},      // a1 65 "bzzr0" (solc <= 0.5.8)
	{0xa2, 0x65, 'b', 'z', 'z', 'r', '0', 0x58, 0x20},      // a2 65 "bzzr0" (solc >= 0.5.9)
	{0xa2, 0x65, 'b', 'z', 'z', 'r', '1', 0x58, 0x20},      // a2 65 "bzzr1" (solc >= 0.5.11)
	{0xa2, 0x64, 'i', 'p', 'f', 's', 0x58, 0x22},           // a2 64 "ipfs" (solc >= 0.6.0)
	{0xa3, 0x64, 'i', 'p', 'f', 's', 0x58, 0x22},           // a3 64 "ipfs" (experimental flag set)
}

// hashKeys are the metadata keys which carry a bytecode hash.
var hashKeys = [...]string{
	"bzzr0",
	"bzzr1",
	"ipfs",
}

// Extract locates and decodes the metadata blob within bytecode. It returns nil if
// no blob is present or none of the candidate blobs decode.
func Extract(bytecode []byte) Metadata {
	for _, prefix := range hashPrefixes {
		offset := bytes.LastIndex(bytecode, prefix)
		if offset == -1 {
			continue
		}
		var decoded Metadata
		if err := cbor.Unmarshal(bytecode[offset:], &decoded); err != nil {
			continue
		}
		return decoded
	}
	return nil
}

// Strip returns the bytecode with the metadata blob and everything after it removed
// (trailing constructor arguments included). Bytecode without a detectable blob is
// returned as-is.
func Strip(bytecode []byte) []byte {
	for _, prefix := range hashPrefixes {
		offset := bytes.LastIndex(bytecode, prefix)
		if offset != -1 {
			return bytecode[:offset]
		}
	}
	return bytecode
}

// BytecodeHash returns the source hash embedded in the metadata, trying each known
// hash key. It returns nil when no hash entry is present.
func (m Metadata) BytecodeHash() []byte {
	for _, key := range hashKeys {
		if value, exists := m[key]; exists {
			if hash, ok := value.([]byte); ok {
				return hash
			}
		}
	}
	return nil
}

// SolcVersion returns the compiler version embedded in the metadata's "solc" entry,
// which newer compilers encode as a three-byte major/minor/patch triple.
func (m Metadata) SolcVersion() (*semver.Version, error) {
	value, exists := m["solc"]
	if !exists {
		return nil, fmt.Errorf("metadata has no solc entry")
	}
	encoded, ok := value.([]byte)
	if !ok || len(encoded) != 3 {
		return nil, fmt.Errorf("metadata solc entry is not a version triple: %v", value)
	}
	return semver.NewVersion(fmt.Sprintf("%d.%d.%d", encoded[0], encoded[1], encoded[2]))
}
