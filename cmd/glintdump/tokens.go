package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"glint/scanner"
	"glint/token"
)

type tokensCmd struct{}

func (*tokensCmd) Name() string     { return "tokens" }
func (*tokensCmd) Synopsis() string { return "print every token the scanner produces for a file" }
func (*tokensCmd) Usage() string {
	return `tokens <file>:
  Scan a glint source file and print one line per token.
`
}
func (*tokensCmd) SetFlags(*flag.FlagSet) {}

func (*tokensCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	source, err := readSourceFile(f.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	s := scanner.New(source)
	for {
		tok := s.ScanToken()
		fmt.Println(tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return subcommands.ExitSuccess
}
