// Command glintdump is a debug dump tool wired with google/subcommands,
// grounded on the teacher's cmd_emit_bytecode.go: same Name/Synopsis/
// Usage/SetFlags/Execute shape, generalised from a single "emit" verb
// into "tokens" and "disasm", each reading one glint source file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&tokensCmd{}, "")
	subcommands.Register(&disasmCmd{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}

func readSourceFile(args []string) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf("file not provided")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), nil
}
