package disassembler

import (
	"bytes"
	"strings"
	"testing"

	"glint/chunk"
	"glint/value"
)

func TestDisassembleSimpleInstruction(t *testing.T) {
	ch := chunk.New()
	ch.WriteOpcode(chunk.OP_RETURN, 1)

	var buf bytes.Buffer
	Disassemble(ch, "test", &buf)

	want := "== test ==\n0000    1 OP_RETURN\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestDisassembleConstantInstruction(t *testing.T) {
	ch := chunk.New()
	idx := ch.AddConstant(value.Number(42))
	ch.WriteOpcode(chunk.OP_CONSTANT, 1)
	ch.WriteByte(byte(idx), 1)

	var buf bytes.Buffer
	Disassemble(ch, "test", &buf)

	if !strings.Contains(buf.String(), "OP_CONSTANT") {
		t.Fatalf("expected OP_CONSTANT in output, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "'42'") {
		t.Fatalf("expected quoted constant value, got %q", buf.String())
	}
}

func TestDisassembleRepeatedLineIsElided(t *testing.T) {
	ch := chunk.New()
	ch.WriteOpcode(chunk.OP_NIL, 1)
	ch.WriteOpcode(chunk.OP_NOT, 1)
	ch.WriteOpcode(chunk.OP_RETURN, 2)

	var buf bytes.Buffer
	Disassemble(ch, "test", &buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 instruction lines, got %d: %q", len(lines), lines)
	}
	if !strings.Contains(lines[2], "   | ") {
		t.Errorf("expected second instruction to elide the repeated line, got %q", lines[2])
	}
	if !strings.Contains(lines[3], "   2 ") {
		t.Errorf("expected third instruction to print its new line, got %q", lines[3])
	}
}

func TestDisassembleUnknownOpcode(t *testing.T) {
	ch := chunk.New()
	ch.WriteByte(255, 1)

	var buf bytes.Buffer
	Disassemble(ch, "test", &buf)

	if !strings.Contains(buf.String(), "Unknown opcode 255") {
		t.Fatalf("expected unknown opcode message, got %q", buf.String())
	}
}
