package main

import (
	"fmt"

	"github.com/dhamidi/combinate/calc"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "check <file>",
		Short:         "Report syntax and evaluation errors in a calculator program",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			data, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			diags := calc.Check(filename, string(data))
			printDiagnostics(cmd, diags)
			if len(diags) > 0 {
				return fmt.Errorf("%s: %d problem(s) found", filename, len(diags))
			}
			return nil
		},
	}

	return cmd
}

func printDiagnostics(cmd *cobra.Command, diags []calc.Diagnostic) {
	location := color.New(color.Bold).SprintFunc()
	message := color.New(color.FgRed).SprintFunc()
	for _, d := range diags {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", location(d.Pos), message(d.Message))
	}
}
