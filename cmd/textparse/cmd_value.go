package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/textparse/format"
	"github.com/dhamidi/textparse/value"
)

func newValueCmd() *cobra.Command {
	var outputFormat string
	var maxDepth int
	var prefix bool

	cmd := &cobra.Command{
		Use:   "value [file]",
		Short: "Parse a structured value",
		Long: `Parse a JSON-like value and print its structure.

By default the input must hold exactly one value. With --prefix, trailing
input is left unparsed and its length is reported on stderr.
If no file is provided, reads from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var encoder format.ValueEncoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(cmd.OutOrStdout())
			case "tree":
				encoder = format.NewTreeEncoder(cmd.OutOrStdout())
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			text, name, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			opts := []value.Option{value.WithMaxDepth(maxDepth)}

			var v value.Value
			if prefix {
				var rest string
				v, rest, err = value.Parse(text, opts...)
				if err == nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d bytes unparsed\n", name, len(rest))
				}
			} else {
				v, err = value.ParseComplete(text, opts...)
			}
			if err != nil {
				return fmt.Errorf("%s:%w", name, err)
			}
			log.Debugf("%s: parsed %s", name, v.Kind())

			if err := encoder.EncodeValue(v); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (json, tree)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", value.DefaultMaxDepth, "maximum array/object nesting")
	cmd.Flags().BoolVar(&prefix, "prefix", false, "parse a leading value and ignore the rest of the input")

	return cmd
}
