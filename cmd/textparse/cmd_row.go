package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/textparse/format"
	"github.com/dhamidi/textparse/row"
)

func newRowCmd() *cobra.Command {
	var delimiter string
	var outputFormat string
	var header bool

	cmd := &cobra.Command{
		Use:   "row [file]",
		Short: "Parse delimiter-separated rows",
		Long: `Parse a delimiter-separated document and print its rows.

Blank lines are skipped. Double quotes protect delimiters inside a field,
and a backslash inside quotes escapes the next character.
If no file is provided, reads from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDelimiter(delimiter)
			if err != nil {
				return err
			}

			var encoder format.DocumentEncoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(cmd.OutOrStdout())
			case "table":
				encoder = format.NewTableEncoder(cmd.OutOrStdout(), header)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			text, name, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			doc, err := row.NewParser(d).ParseDocument(text)
			if err != nil {
				return fmt.Errorf("%s:%w", name, err)
			}
			log.Debugf("%s: parsed %d rows", name, len(doc))

			if err := encoder.EncodeDocument(doc); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", ",", `field delimiter (a single character, "tab" or "space")`)
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, table)")
	cmd.Flags().BoolVar(&header, "header", false, "render the first row as a table header")

	return cmd
}
