package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/koala/foundation/koala/ast"
)

func newParseCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Print the syntax tree",
		Long: `Parses a file and prints its syntax tree.

Formats:
  text  - canonical source form
  tree  - indented node tree with positions
  yaml  - YAML document
  json  - JSON document

Examples:
  koala parse main.koala
  koala parse --format yaml main.koala`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dumpFormat, err := ast.ParseDumpFormat(format)
			if err != nil {
				return err
			}

			source, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			module, err := a.engine(nil).Parse(source)
			if err != nil {
				return withSource(args[0], source, err)
			}

			return ast.Dump(cmd.OutOrStdout(), module, dumpFormat)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, tree, yaml, json)")
	return cmd
}
