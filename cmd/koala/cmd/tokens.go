package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/koala/foundation/koala/lexer"
)

func newTokensCmd(a *app) *cobra.Command {
	var numeric bool

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream",
		Long: `Prints every token as kind:lexeme, separated by spaces.

Examples:
  koala tokens main.koala
  koala tokens --numeric main.koala
  echo "define f() { return 1; }" | koala tokens -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			tokens, err := a.engine(nil).Tokenize(source)
			if err != nil {
				return withSource(args[0], source, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatTokens(tokens, numeric))
			return nil
		},
	}

	cmd.Flags().BoolVar(&numeric, "numeric", false, "print kinds as numbers")
	return cmd
}

// formatTokens renders tokens as space separated kind:lexeme pairs
func formatTokens(tokens []lexer.Token, numeric bool) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		if numeric {
			parts[i] = fmt.Sprintf("%d:%s", int(tok.Kind), tok.Lexeme)
		} else {
			parts[i] = tok.String()
		}
	}
	return strings.Join(parts, " ")
}
