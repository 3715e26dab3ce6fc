// glint is a stack-based bytecode interpreter for a small expression
// language: source is scanned, compiled straight to bytecode by a
// single-pass Pratt parser, and executed by a fixed-stack VM — no AST
// is ever built at this layer, and no GC reclaims the strings it
// allocates.
//
// This file is the "lox" driver spec.md §6 describes, grounded on the
// teacher's main.go/cmd_run.go: read-a-file-and-interpret-it, but
// mapping the {OK, COMPILE_ERROR, RUNTIME_ERROR} outcome to the exit
// codes spec.md §6 prescribes instead of subcommands.ExitStatus, since
// this core has no subcommand surface of its own — see cmd/glintdump
// for where this module does use google/subcommands.
package main

import (
	"bytes"
	"fmt"
	"os"

	"glint/chunk"
	"glint/compiler"
	"glint/vm"
)

const (
	exitOK       = 0
	exitDataErr  = 65 // EX_DATAERR family, for a compile-time error
	exitSoftware = 70 // EX_SOFTWARE, for a runtime error
	exitUsage    = 64 // EX_USAGE
)

// interpret compiles and runs source, writing the OP_RETURN result to
// stdout and any diagnostic to stderr, and returns the exit code the
// result maps to.
func interpret(source string) int {
	var errBuf bytes.Buffer
	c := compiler.New(&errBuf)
	ch := chunk.New()

	if ok := c.Compile(source, ch); !ok {
		fmt.Fprint(os.Stderr, errBuf.String())
		return exitDataErr
	}

	machine := vm.New(os.Stdout)
	result, err := machine.Run(ch)
	switch result {
	case vm.ResultOK:
		return exitOK
	case vm.ResultRuntimeError:
		fmt.Fprintln(os.Stderr, err.Error())
		return exitSoftware
	default:
		fmt.Fprint(os.Stderr, errBuf.String())
		return exitDataErr
	}
}

// runFile reads path and interprets its contents as a single source.
func runFile(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read file: %v\n", err)
		return exitDataErr
	}
	return interpret(string(data))
}
