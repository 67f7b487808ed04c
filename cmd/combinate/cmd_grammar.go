package main

import (
	"fmt"

	"github.com/dhamidi/combinate/calc"
	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:           "grammar",
		Short:         "Print the EBNF grammar of the calculator language",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verify {
				if err := calc.VerifyGrammar(); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
					return err
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), calc.Grammar)
			return nil
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "verify the grammar is well formed before printing it")

	return cmd
}
