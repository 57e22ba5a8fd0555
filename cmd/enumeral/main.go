package main

import (
	"fmt"
	"os"

	"github.com/enumeral/enumeral/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Structured diagnostics are already printed by the command;
		// anything else (flag errors and the like) lands here.
		if _, isExit := err.(*cli.ExitError); !isExit {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
