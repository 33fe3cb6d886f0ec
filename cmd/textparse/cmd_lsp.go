package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/textparse/lsp"
	"github.com/dhamidi/textparse/value"
)

func newLSPCmd() *cobra.Command {
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		Long: `Start a language server on stdio that reports parse errors in
.csv, .tsv, .psv and .json documents as diagnostics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server := lsp.NewServer(version, lsp.WithMaxDepth(maxDepth))
			return server.RunStdio()
		},
	}

	cmd.Flags().IntVar(&maxDepth, "max-depth", value.DefaultMaxDepth, "maximum array/object nesting in .json documents")

	return cmd
}
