// Package vm implements the stack-based bytecode interpreter spec.md
// §4.5 describes: a fetch-decode-dispatch loop over a Chunk's Code,
// backed by a fixed-size value stack.
//
// Grounded on the teacher's vm.VM (vm/vm.go) and vm.Stack (vm/stack.go):
// the same "owns a stack, drives an ip through compiler-produced
// bytecode" shape, generalised from nilan's single OP_CONSTANT opcode to
// glint's full arithmetic/comparison/equality instruction set, and from
// a growable slice-backed stack to the fixed STACK_MAX array spec.md
// requires.
package vm

import (
	"fmt"
	"io"

	"glint/chunk"
	"glint/value"
)

// Result is the outcome of an interpret pass, matching spec.md §4.5's
// {OK, COMPILE_ERROR, RUNTIME_ERROR} contract. VM itself never produces
// ResultCompileError — that outcome belongs to whatever composes a
// Compiler with a VM (see driver.go at the module root) — but it lives
// in this same enum so callers can map all three results to exit codes
// uniformly.
type Result int

const (
	ResultOK Result = iota
	ResultCompileError
	ResultRuntimeError
)

func (r Result) String() string {
	switch r {
	case ResultOK:
		return "OK"
	case ResultCompileError:
		return "COMPILE_ERROR"
	case ResultRuntimeError:
		return "RUNTIME_ERROR"
	default:
		return "UNKNOWN"
	}
}

// VM owns a fixed-size value stack and an instruction pointer into a
// Chunk. A VM is not reentrant: Run must not be called recursively on
// the same instance, but may be called repeatedly in sequence (e.g. once
// per REPL line) — each call resets the stack and ip, matching the
// teacher's init_vm/free_vm bracket discipline minus the explicit
// free, since Go's GC reclaims the VM's own memory.
type VM struct {
	stack stack
	ip    int
	chunk *chunk.Chunk

	// out is where OP_RETURN prints its popped value, matching the
	// reference's implicit stdout.
	out io.Writer
}

// New creates a VM that prints OP_RETURN's result to out.
func New(out io.Writer) *VM {
	return &VM{out: out}
}

// Run executes ch from its first byte, resetting the stack beforehand.
func (vm *VM) Run(ch *chunk.Chunk) (Result, error) {
	vm.chunk = ch
	vm.ip = 0
	vm.stack.reset()
	return vm.run()
}

func (vm *VM) run() (Result, error) {
	for {
		instruction := vm.chunk.Code[vm.ip]
		vm.ip++
		op := chunk.Opcode(instruction)

		switch op {
		case chunk.OP_CONSTANT:
			index := vm.chunk.Code[vm.ip]
			vm.ip++
			vm.stack.push(vm.chunk.Constants[index])

		case chunk.OP_NIL:
			vm.stack.push(value.Nil)
		case chunk.OP_TRUE:
			vm.stack.push(value.Bool(true))
		case chunk.OP_FALSE:
			vm.stack.push(value.Bool(false))

		case chunk.OP_EQUAL:
			b := vm.stack.pop()
			a := vm.stack.pop()
			vm.stack.push(value.Bool(value.Equal(a, b)))

		case chunk.OP_GREATER:
			if err := vm.numericBinary(func(a, b float64) value.Value { return value.Bool(a > b) }); err != nil {
				return ResultRuntimeError, err
			}
		case chunk.OP_LESS:
			if err := vm.numericBinary(func(a, b float64) value.Value { return value.Bool(a < b) }); err != nil {
				return ResultRuntimeError, err
			}
		case chunk.OP_ADD:
			if err := vm.numericBinary(func(a, b float64) value.Value { return value.Number(a + b) }); err != nil {
				return ResultRuntimeError, err
			}
		case chunk.OP_SUBTRACT:
			if err := vm.numericBinary(func(a, b float64) value.Value { return value.Number(a - b) }); err != nil {
				return ResultRuntimeError, err
			}
		case chunk.OP_MULTIPLY:
			if err := vm.numericBinary(func(a, b float64) value.Value { return value.Number(a * b) }); err != nil {
				return ResultRuntimeError, err
			}
		case chunk.OP_DIVIDE:
			if err := vm.numericBinary(func(a, b float64) value.Value { return value.Number(a / b) }); err != nil {
				return ResultRuntimeError, err
			}

		case chunk.OP_NOT:
			vm.stack.push(value.Bool(value.IsFalsey(vm.stack.pop())))

		case chunk.OP_NEGATE:
			if !vm.stack.peek(0).IsNumber() {
				return ResultRuntimeError, vm.runtimeError("Operand must be a number.")
			}
			vm.stack.push(value.Number(-vm.stack.pop().AsNumber()))

		case chunk.OP_RETURN:
			result := vm.stack.pop()
			fmt.Fprintln(vm.out, result.String())
			return ResultOK, nil

		default:
			return ResultRuntimeError, vm.runtimeError(fmt.Sprintf("Unknown opcode %d.", instruction))
		}
	}
}

// numericBinary pops two operands, requires both to be Numbers, and
// pushes combine(a, b). Operand order matches stack discipline: b was
// pushed last (the right-hand operand), a is underneath it.
func (vm *VM) numericBinary(combine func(a, b float64) value.Value) error {
	if !vm.stack.peek(0).IsNumber() || !vm.stack.peek(1).IsNumber() {
		return vm.runtimeError("Operands must be numbers.")
	}
	b := vm.stack.pop()
	a := vm.stack.pop()
	vm.stack.push(combine(a.AsNumber(), b.AsNumber()))
	return nil
}

// runtimeError builds a RuntimeError pointing at the line of the
// instruction currently being dispatched. vm.ip has already been
// advanced past the opcode byte (and not yet past any operand bytes for
// the single-byte opcodes this is called from), so ip-1 is exactly the
// failing opcode's offset — spec.md §4.5's
// "instruction_offset = ip - chunk.code - 1".
func (vm *VM) runtimeError(msg string) error {
	line := vm.chunk.Lines[vm.ip-1]
	return RuntimeError{Line: line, Message: msg}
}
