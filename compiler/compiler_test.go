package compiler

import (
	"bytes"
	"testing"

	"glint/chunk"
)

func compileOK(t *testing.T, src string) *chunk.Chunk {
	t.Helper()
	var errBuf bytes.Buffer
	c := New(&errBuf)
	ch := chunk.New()
	if ok := c.Compile(src, ch); !ok {
		t.Fatalf("Compile(%q) failed: %s", src, errBuf.String())
	}
	return ch
}

func TestCompileEndsWithReturn(t *testing.T) {
	ch := compileOK(t, "1 + 2")
	if len(ch.Code) == 0 || chunk.Opcode(ch.Code[len(ch.Code)-1]) != chunk.OP_RETURN {
		t.Fatalf("chunk does not end with OP_RETURN: %v", ch.Code)
	}
}

func TestDisassemblyGolden(t *testing.T) {
	ch := compileOK(t, "1 + 2")
	want := []byte{
		byte(chunk.OP_CONSTANT), 0,
		byte(chunk.OP_CONSTANT), 1,
		byte(chunk.OP_ADD),
		byte(chunk.OP_RETURN),
	}
	if !bytes.Equal(ch.Code, want) {
		t.Fatalf("got %v, want %v", ch.Code, want)
	}
	if len(ch.Constants) != 2 || ch.Constants[0].AsNumber() != 1 || ch.Constants[1].AsNumber() != 2 {
		t.Fatalf("unexpected constants: %v", ch.Constants)
	}
}

func TestLeftAssociativity(t *testing.T) {
	// "1 - 2 - 3" must compile as (1 - 2) - 3: operand order 1,2,SUB,3,SUB.
	ch := compileOK(t, "1 - 2 - 3")
	want := []byte{
		byte(chunk.OP_CONSTANT), 0,
		byte(chunk.OP_CONSTANT), 1,
		byte(chunk.OP_SUBTRACT),
		byte(chunk.OP_CONSTANT), 2,
		byte(chunk.OP_SUBTRACT),
		byte(chunk.OP_RETURN),
	}
	if !bytes.Equal(ch.Code, want) {
		t.Fatalf("got %v, want %v", ch.Code, want)
	}
}

func TestPrecedenceClimbsRight(t *testing.T) {
	// "1 + 2 * 3" binds the * tighter: operands 2,3 multiply before + 1.
	ch := compileOK(t, "1 + 2 * 3")
	want := []byte{
		byte(chunk.OP_CONSTANT), 0,
		byte(chunk.OP_CONSTANT), 1,
		byte(chunk.OP_CONSTANT), 2,
		byte(chunk.OP_MULTIPLY),
		byte(chunk.OP_ADD),
		byte(chunk.OP_RETURN),
	}
	if !bytes.Equal(ch.Code, want) {
		t.Fatalf("got %v, want %v", ch.Code, want)
	}
}

func TestNotEqualEncoding(t *testing.T) {
	ch := compileOK(t, "1 != 2")
	want := []byte{
		byte(chunk.OP_CONSTANT), 0,
		byte(chunk.OP_CONSTANT), 1,
		byte(chunk.OP_EQUAL),
		byte(chunk.OP_NOT),
		byte(chunk.OP_RETURN),
	}
	if !bytes.Equal(ch.Code, want) {
		t.Fatalf("got %v, want %v", ch.Code, want)
	}
}

func TestLessEqualEncoding(t *testing.T) {
	ch := compileOK(t, "1 <= 2")
	want := []byte{
		byte(chunk.OP_CONSTANT), 0,
		byte(chunk.OP_CONSTANT), 1,
		byte(chunk.OP_GREATER),
		byte(chunk.OP_NOT),
		byte(chunk.OP_RETURN),
	}
	if !bytes.Equal(ch.Code, want) {
		t.Fatalf("got %v, want %v", ch.Code, want)
	}
}

func TestGreaterEqualEncoding(t *testing.T) {
	ch := compileOK(t, "1 >= 2")
	want := []byte{
		byte(chunk.OP_CONSTANT), 0,
		byte(chunk.OP_CONSTANT), 1,
		byte(chunk.OP_LESS),
		byte(chunk.OP_NOT),
		byte(chunk.OP_RETURN),
	}
	if !bytes.Equal(ch.Code, want) {
		t.Fatalf("got %v, want %v", ch.Code, want)
	}
}

func TestLiterals(t *testing.T) {
	tests := []struct {
		src  string
		want chunk.Opcode
	}{
		{"true", chunk.OP_TRUE},
		{"false", chunk.OP_FALSE},
		{"nil", chunk.OP_NIL},
	}
	for _, tt := range tests {
		ch := compileOK(t, tt.src)
		if chunk.Opcode(ch.Code[0]) != tt.want {
			t.Errorf("compiling %q: got opcode %v, want %v", tt.src, chunk.Opcode(ch.Code[0]), tt.want)
		}
	}
}

func TestGroupingAndUnary(t *testing.T) {
	ch := compileOK(t, "(-1 + 2) * 3 - -4")
	if len(ch.Code) == 0 {
		t.Fatal("expected non-empty chunk")
	}
	if chunk.Opcode(ch.Code[len(ch.Code)-1]) != chunk.OP_RETURN {
		t.Fatal("expected chunk to end with OP_RETURN")
	}
}

func TestMissingExpressionError(t *testing.T) {
	var errBuf bytes.Buffer
	c := New(&errBuf)
	ch := chunk.New()
	if ok := c.Compile("1 + ", ch); ok {
		t.Fatal("expected compile failure for '1 + '")
	}
	if got := errBuf.String(); got == "" {
		t.Fatal("expected a diagnostic to be written")
	}
}

func TestStringLiteralHasNoExpressionRule(t *testing.T) {
	var errBuf bytes.Buffer
	c := New(&errBuf)
	ch := chunk.New()
	if ok := c.Compile(`"hi"`, ch); ok {
		t.Fatal("expected compile failure for a bare string literal")
	}
}

func TestErrorMessageFormat(t *testing.T) {
	var errBuf bytes.Buffer
	c := New(&errBuf)
	ch := chunk.New()
	c.Compile("1 + ", ch)
	want := "[line 1] Error at end: Expect expression.\n"
	if got := errBuf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestConstantPoolOverflow(t *testing.T) {
	var src string
	for i := 0; i < 257; i++ {
		src += "1 + "
	}
	src += "1"
	var errBuf bytes.Buffer
	c := New(&errBuf)
	ch := chunk.New()
	if ok := c.Compile(src, ch); ok {
		t.Fatal("expected overflow to fail compilation")
	}
	if len(ch.Constants) > 256 {
		t.Fatalf("constants pool grew past 256: %d", len(ch.Constants))
	}
}

func TestCompilerIsReusable(t *testing.T) {
	var errBuf bytes.Buffer
	c := New(&errBuf)

	ch1 := chunk.New()
	if ok := c.Compile("1 + ", ch1); ok {
		t.Fatal("expected first compile to fail")
	}

	errBuf.Reset()
	ch2 := chunk.New()
	if ok := c.Compile("1 + 2", ch2); !ok {
		t.Fatalf("expected second compile on same Compiler to succeed: %s", errBuf.String())
	}
	if ch2.Constants[0].AsNumber() != 1 {
		t.Fatalf("unexpected constant: %v", ch2.Constants[0])
	}
}
