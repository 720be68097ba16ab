package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/koala/foundation/koala/ast"
)

// runAll compiles once with default options, then prints tokens and syntax
// tree before writing the artifact
func (a *app) runAll(cmd *cobra.Command, path string) error {
	source, err := readSource(cmd, path)
	if err != nil {
		return err
	}

	opts := buildOptions{}
	result, err := a.compile(cmd.Context(), a.engine(nil), path, source, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, formatTokens(result.Tokens, false))
	if err := ast.Dump(out, result.Module, ast.DumpSource); err != nil {
		return err
	}

	return a.write(cmd, path, result, opts)
}
