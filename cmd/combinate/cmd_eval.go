package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/combinate/calc"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	var expr string

	cmd := &cobra.Command{
		Use:   "eval [file]",
		Short: "Evaluate a calculator program and print the value of each statement",
		Long: `Evaluate a calculator program read from a file, from standard input
when the file is "-" or missing, or from the --expr flag.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			src := expr
			if src == "" {
				data, err := readSource(cmd, args)
				if err != nil {
					return err
				}
				src = string(data)
			}

			outputs, err := calc.Eval(src, calc.Env{})
			for _, out := range outputs {
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			if err != nil {
				return fmt.Errorf("eval: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&expr, "expr", "e", "", "evaluate this program text instead of reading a file")

	return cmd
}

func readSource(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}
