package main

import (
	"github.com/dhamidi/combinate/calc"
	"github.com/spf13/cobra"
)

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server for calculator files",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := calc.NewLSPServer(version)
			return server.RunStdio()
		},
	}
}
