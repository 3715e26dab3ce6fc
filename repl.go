package main

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"

	"glint/chunk"
	"glint/compiler"
	"glint/vm"
)

// startRepl runs an interactive read-compile-run loop over stdin, using
// readline for line editing and history the way a real terminal session
// expects — the teacher's own REPL commands (cmd_repl.go,
// cmd_repl_compiled.go) read raw lines with bufio.Scanner instead; this
// pulls in the dependency nilan's go.mod already lists but never
// actually imports.
func startRepl() {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "glint> ",
		HistoryFile: historyFilePath(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start REPL: %v\n", err)
		os.Exit(exitSoftware)
	}
	defer rl.Close()

	fmt.Println("glint — a tiny bytecode-compiled expression language")

	c := compiler.New(os.Stderr)
	machine := vm.New(os.Stdout)

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return
		}
		if line == "" {
			continue
		}

		evalLine(c, machine, line)
	}
}

// evalLine compiles and runs a single REPL line. Compile errors have
// already been written to the Compiler's errOut (stderr) by the time
// Compile returns false; runtime errors are reported here.
func evalLine(c *compiler.Compiler, machine *vm.VM, line string) {
	ch := chunk.New()
	if ok := c.Compile(line, ch); !ok {
		return
	}

	if result, err := machine.Run(ch); result == vm.ResultRuntimeError {
		fmt.Fprintln(os.Stderr, err.Error())
	}
}

// historyFilePath returns a best-effort location for REPL history,
// falling back to an empty string (disabling persistence) if the home
// directory cannot be determined.
func historyFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.glint_history"
}
