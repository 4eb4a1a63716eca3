package main

import (
	"fmt"
	"os"

	"github.com/felixgeelhaar/abnffsm/export"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a grammar to an external format",
	}
	cmd.AddCommand(newExportDotCmd())
	return cmd
}

func newExportDotCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "dot <grammar.json>",
		Short: "Write the grammar's graph as Graphviz DOT text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fsm, err := loadGrammar(args[0])
			if err != nil {
				return err
			}

			dot := export.DOT(fsm)

			if outputPath == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), dot)
				return err
			}

			return os.WriteFile(outputPath, []byte(dot), 0o644)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write DOT text to this file instead of stdout")
	return cmd
}
