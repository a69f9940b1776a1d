// Package srcmaps decodes the compressed source mappings the Solidity compiler
// emits alongside bytecode, relating instruction indexes to source ranges.
// Reference: https://docs.soliditylang.org/en/latest/internals/source_mappings.html
package srcmaps

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/crytic/solc-artifacts/ast"
	"github.com/ethereum/go-ethereum/core/vm"
)

// JumpType describes the jump classification of a source map element.
type JumpType string

const (
	// JumpTypeNone indicates the instruction performs no jump.
	JumpTypeNone JumpType = ""

	// JumpTypeIn indicates a jump into a function.
	JumpTypeIn JumpType = "i"

	// JumpTypeOut indicates a return from a function.
	JumpTypeOut JumpType = "o"

	// JumpTypeWithin indicates a jump within the same function, e.g. a loop.
	JumpTypeWithin JumpType = "-"
)

// SourceMap is the decoded form of a compiler source mapping. The index of each
// element corresponds to an instruction index in the matching bytecode, not a byte
// offset.
type SourceMap []Element

// Element is one decompressed source map entry, fully populated from the relative
// encoding. Fields the compiler never emitted for the whole map remain -1.
type Element struct {
	// Index is the element's instruction index within its parent source map.
	Index int

	// Offset is the byte offset marking the start of the mapped source range.
	Offset int

	// Length is the byte length of the mapped source range.
	Length int

	// FileID identifies the source file housing the range, matching the source
	// index used in AST src fields. It is -1 for compiler-generated code.
	FileID int

	// JumpType classifies any jump the instruction performs.
	JumpType JumpType

	// ModifierDepth is the modifier execution depth at the instruction.
	ModifierDepth int
}

// SourceLocation returns the element's source range in the AST's location form. The
// second return is false for compiler-generated ranges with no source file.
func (e Element) SourceLocation() (ast.SourceLocation, bool) {
	if e.FileID < 0 || e.Offset < 0 || e.Length < 0 {
		return ast.SourceLocation{}, false
	}
	return ast.SourceLocation{Offset: e.Offset, Length: e.Length, SourceIndex: e.FileID}, true
}

// Parse decodes a compressed source mapping string. Elements are separated by ";"
// and fields within an element by ":"; empty fields repeat the previous element's
// value, per the compiler's relative encoding.
func Parse(sourceMap string) (SourceMap, error) {
	if len(sourceMap) == 0 {
		return nil, nil
	}

	// Empty fields inherit from the previous element, so decoding carries the
	// current element forward across iterations.
	current := Element{
		Index:  -1,
		Offset: -1,
		Length: -1,
		FileID: -1,
	}

	elements := strings.Split(sourceMap, ";")
	decoded := make(SourceMap, 0, len(elements))
	for _, element := range elements {
		current.Index = len(decoded)
		if len(element) == 0 {
			decoded = append(decoded, current)
			continue
		}

		fields := strings.Split(element, ":")
		if len(fields) > 5 {
			return nil, fmt.Errorf("source map element %d has %d fields, expected at most 5", current.Index, len(fields))
		}
		var err error
		if len(fields) > 0 && fields[0] != "" {
			if current.Offset, err = strconv.Atoi(fields[0]); err != nil {
				return nil, fmt.Errorf("source map element %d has invalid offset %q: %v", current.Index, fields[0], err)
			}
		}
		if len(fields) > 1 && fields[1] != "" {
			if current.Length, err = strconv.Atoi(fields[1]); err != nil {
				return nil, fmt.Errorf("source map element %d has invalid length %q: %v", current.Index, fields[1], err)
			}
		}
		if len(fields) > 2 && fields[2] != "" {
			if current.FileID, err = strconv.Atoi(fields[2]); err != nil {
				return nil, fmt.Errorf("source map element %d has invalid file id %q: %v", current.Index, fields[2], err)
			}
		}
		if len(fields) > 3 && fields[3] != "" {
			switch jump := JumpType(fields[3]); jump {
			case JumpTypeIn, JumpTypeOut, JumpTypeWithin:
				current.JumpType = jump
			default:
				return nil, fmt.Errorf("source map element %d has invalid jump type %q", current.Index, fields[3])
			}
		}
		if len(fields) > 4 && fields[4] != "" {
			if current.ModifierDepth, err = strconv.Atoi(fields[4]); err != nil {
				return nil, fmt.Errorf("source map element %d has invalid modifier depth %q: %v", current.Index, fields[4], err)
			}
		}

		decoded = append(decoded, current)
	}
	return decoded, nil
}

// InstructionOffsets walks bytecode and returns the byte offset of each instruction,
// indexed by instruction index. Push operands are skipped using the opcode table, so
// the result aligns with source map element indexes.
func InstructionOffsets(bytecode []byte) []int {
	var offsets []int
	for offset := 0; offset < len(bytecode); {
		offsets = append(offsets, offset)

		op := vm.OpCode(bytecode[offset])
		operandLength := 0
		if op.IsPush() && op != vm.PUSH0 {
			operandLength = int(op) - int(vm.PUSH1) + 1
		}
		offset += operandLength + 1
	}
	return offsets
}

// ElementAt returns the source map element covering the instruction at the given
// bytecode offset. The offsets slice must come from InstructionOffsets over the
// bytecode this map was emitted for.
func (s SourceMap) ElementAt(offsets []int, offset int) (Element, error) {
	for index, instructionOffset := range offsets {
		if instructionOffset == offset {
			if index >= len(s) {
				return Element{}, fmt.Errorf("instruction %d at offset %d is beyond the source map (%d elements)", index, offset, len(s))
			}
			return s[index], nil
		}
		if instructionOffset > offset {
			break
		}
	}
	return Element{}, fmt.Errorf("offset %d does not start an instruction", offset)
}
