// Package chunk implements the append-only bytecode container spec.md
// §4.2 describes: a byte buffer, a parallel per-byte source-line buffer,
// and a constant pool addressed by a one-byte operand.
//
// This is the generalisation of the teacher's compiler.Bytecode
// (compiler/code.go) to carry value.Value constants instead of `any`,
// and to carry a line table the teacher's Bytecode never had (nilan has
// no diagnostics-by-offset story; spec.md requires one for runtime
// errors, §4.5/§4.6).
package chunk

import "glint/value"

// maxConstants is the one-byte operand's addressing limit.
const maxConstants = 256

// Chunk is an append-only triple of (code, lines, constants). It is
// written to during compilation and only read from during execution and
// disassembly.
type Chunk struct {
	// Code is the ordered instruction stream: opcodes followed by
	// however many operand bytes their Definition declares.
	Code []byte

	// Lines[i] is the source line that produced Code[i]. len(Lines) ==
	// len(Code) is an invariant maintained by WriteByte.
	Lines []int

	// Constants is addressed by the one-byte operand of OP_CONSTANT.
	Constants []value.Value
}

// New returns an empty Chunk ready for compilation to append to.
func New() *Chunk {
	return &Chunk{}
}

// WriteByte appends a single byte to Code, recording line as its
// originating source line.
func (c *Chunk) WriteByte(b byte, line int) {
	c.Code = append(c.Code, b)
	c.Lines = append(c.Lines, line)
}

// WriteOpcode appends an Opcode's tag byte.
func (c *Chunk) WriteOpcode(op Opcode, line int) {
	c.WriteByte(byte(op), line)
}

// AddConstant appends v to the constant pool and returns its index.
// add_constant never deduplicates, matching spec.md §4.2 exactly; the
// compiler is responsible for rejecting an index that would exceed the
// one-byte operand's range.
func (c *Chunk) AddConstant(v value.Value) int {
	c.Constants = append(c.Constants, v)
	return len(c.Constants) - 1
}

// ConstantsFull reports whether the constant pool has already reached
// the one-byte operand's addressing limit.
func (c *Chunk) ConstantsFull() bool {
	return len(c.Constants) >= maxConstants
}

// Free releases the Chunk's buffers. The Chunk must not be used again
// afterwards.
func (c *Chunk) Free() {
	c.Code = nil
	c.Lines = nil
	c.Constants = nil
}
