package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newStreamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "stream <grammar.json>",
		Short:         "Feed stdin byte-by-byte and print the streaming state after each byte",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fsm, err := loadGrammar(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			reader := bufio.NewReader(os.Stdin)
			for {
				b, err := reader.ReadByte()
				if err != nil {
					break
				}
				status := fsm.Feed(b)
				fmt.Fprintf(out, "%q -> %s\n", string(b), status)
				if status.String() == "ERROR" {
					break
				}
			}

			accepted, err := fsm.EndOfStream()
			fmt.Fprintf(out, "end-of-stream -> accepted=%v\n", accepted)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return errRejected
			}
			return nil
		},
	}

	return cmd
}
