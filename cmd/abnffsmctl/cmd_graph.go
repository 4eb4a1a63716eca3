package main

import (
	"errors"
	"fmt"

	"github.com/felixgeelhaar/abnffsm"
	"github.com/spf13/cobra"
)

// errInvalidGraph signals a non-zero exit for structural issues without
// duplicating cobra's own error line on top of the printed issue list.
var errInvalidGraph = errors.New("graph has structural issues")

func newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Inspect a grammar's graph",
	}
	cmd.AddCommand(newGraphValidateCmd())
	return cmd
}

func newGraphValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "validate <grammar.json>",
		Short:         "Run structural validation (C10) and print any issues",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fsm, err := loadGrammarUnchecked(args[0])
			if err != nil {
				return err
			}

			issues := fsm.ValidateStructure()
			if len(issues) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "valid")
				return nil
			}

			for _, issue := range issues {
				fmt.Fprintln(cmd.OutOrStdout(), formatIssue(issue))
			}
			return errInvalidGraph
		},
	}
	return cmd
}

func formatIssue(issue abnffsm.Issue) string {
	return issue.String()
}
