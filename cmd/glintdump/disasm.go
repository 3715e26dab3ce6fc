package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"glint/chunk"
	"glint/compiler"
	"glint/disassembler"
)

type disasmCmd struct{}

func (*disasmCmd) Name() string     { return "disasm" }
func (*disasmCmd) Synopsis() string { return "compile a file and print its disassembled bytecode" }
func (*disasmCmd) Usage() string {
	return `disasm <file>:
  Compile a glint source file and print the disassembled chunk.
`
}
func (*disasmCmd) SetFlags(*flag.FlagSet) {}

func (*disasmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	source, err := readSourceFile(f.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	var errBuf bytes.Buffer
	c := compiler.New(&errBuf)
	ch := chunk.New()
	if ok := c.Compile(source, ch); !ok {
		fmt.Fprint(os.Stderr, errBuf.String())
		return subcommands.ExitFailure
	}

	disassembler.Disassemble(ch, f.Arg(0), os.Stdout)
	return subcommands.ExitSuccess
}
