package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// errRejected signals a non-zero exit for a validation reject without
// cobra printing its own "Error: ..." line on top of ours.
var errRejected = errors.New("input rejected")

func newValidateCmd() *cobra.Command {
	var backtrack bool
	var maxDepth int

	cmd := &cobra.Command{
		Use:           "validate <grammar.json> <input-file|->",
		Short:         "Validate an input against a grammar",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fsm, err := loadGrammar(args[0])
			if err != nil {
				return err
			}

			input, err := readInput(args[1])
			if err != nil {
				return err
			}

			var ok bool
			if backtrack {
				ok, err = fsm.ValidateWithBacktracking(input, maxDepth)
			} else {
				ok, err = fsm.Validate(input)
			}

			if ok {
				fmt.Fprintf(cmd.OutOrStdout(), "accept (run %s)\n", fsm.RunID())
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "reject (run %s)\n", fsm.RunID())
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
			return errRejected
		},
	}

	cmd.Flags().BoolVar(&backtrack, "backtrack", false, "use the backtracking executor instead of greedy")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "bound the backtracking choice stack (0 = unbounded)")

	return cmd
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
