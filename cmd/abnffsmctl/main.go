// Command abnffsmctl is a thin CLI front end over the abnffsm library:
// validate input against a JSON grammar file, stream bytes through it, or
// export its graph as DOT. It does not parse ABNF source text itself
// (spec.md Non-goals) — grammar files name already-built-in character
// classes by name.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "abnffsmctl",
		Short: "Validate, stream, and export ABNF-labeled FSM grammars",
	}

	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newStreamCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newGraphCmd())

	if err := rootCmd.Execute(); err != nil {
		if err != errRejected && err != errInvalidGraph {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
