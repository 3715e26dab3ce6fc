// Package disassembler prints a human-readable dump of a Chunk, the
// debugging aid spec.md §4.6 describes: one line per instruction, each
// annotated with its byte offset and source line.
//
// Grounded on the teacher's DiassembleInstruction/DiassembleBytecode
// pair (compiler/compiler.go, compiler/ast_compiler.go): same
// "dispatch on opcode, pick instruction width, build a string" shape,
// adapted to spec.md's exact column layout and to the one-byte operand
// width glint's Chunk uses.
package disassembler

import (
	"fmt"
	"io"

	"glint/chunk"
)

// Disassemble writes every instruction in ch to w under a "== name =="
// header, spec.md §4.6's top-level entry point.
func Disassemble(ch *chunk.Chunk, name string, w io.Writer) {
	fmt.Fprintf(w, "== %s ==\n", name)
	for offset := 0; offset < len(ch.Code); {
		offset = DisassembleInstruction(ch, offset, w)
	}
}

// DisassembleInstruction writes the single instruction at offset to w
// and returns the offset of the instruction that follows it.
func DisassembleInstruction(ch *chunk.Chunk, offset int, w io.Writer) int {
	fmt.Fprintf(w, "%04d ", offset)

	if offset > 0 && ch.Lines[offset] == ch.Lines[offset-1] {
		fmt.Fprint(w, "   | ")
	} else {
		fmt.Fprintf(w, "%4d ", ch.Lines[offset])
	}

	op := chunk.Opcode(ch.Code[offset])
	def, err := chunk.GetDefinition(op)
	if err != nil {
		fmt.Fprintf(w, "Unknown opcode %d\n", ch.Code[offset])
		return offset + 1
	}

	switch len(def.OperandWidths) {
	case 0:
		return simpleInstruction(def.Name, offset, w)
	case 1:
		return constantInstruction(def.Name, ch, offset, w)
	default:
		fmt.Fprintf(w, "Unknown opcode %d\n", ch.Code[offset])
		return offset + 1
	}
}

func simpleInstruction(name string, offset int, w io.Writer) int {
	fmt.Fprintf(w, "%s\n", name)
	return offset + 1
}

// constantInstruction formats a one-operand-byte instruction: its index
// into the constant pool, plus the constant's own printed form in
// quotes so string constants are visibly distinguishable from numbers.
func constantInstruction(name string, ch *chunk.Chunk, offset int, w io.Writer) int {
	index := ch.Code[offset+1]
	fmt.Fprintf(w, "%-16s %4d '%s'\n", name, index, ch.Constants[index].String())
	return offset + 2
}
