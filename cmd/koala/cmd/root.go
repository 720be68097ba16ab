package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/koala/foundation/core/config"
	mdwerror "github.com/msto63/koala/foundation/core/error"
	mdwlog "github.com/msto63/koala/foundation/core/log"
	"github.com/msto63/koala/foundation/koala"
	"github.com/msto63/koala/foundation/koala/codegen"
	"github.com/msto63/koala/pkg/core/logging"
)

// app holds the state shared by all subcommands of one invocation
type app struct {
	cfgFile   string
	verbose   bool
	logFormat string

	cfg    *config.Config
	logger *mdwlog.Logger
}

// NewRootCmd builds the koala command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "koala [file]",
		Short: "koala - compiler front end",
		Long: `koala compiles programs made of zero-argument functions that return
an integer constant:

  define main() {
      return 42;
  }

Given a file and no subcommand, koala prints the token stream and the
syntax tree, then writes LLVM IR next to the configured output directory.

Commands:
  tokens   - print the token stream
  parse    - print the syntax tree
  build    - generate LLVM IR
  cache    - inspect or purge the artifact cache
  version  - print version information`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return a.runAll(cmd, args[0])
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $KOALA_CONFIG or ./koala.toml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format (text, json, console, logfmt)")

	rootCmd.AddCommand(newTokensCmd(a))
	rootCmd.AddCommand(newParseCmd(a))
	rootCmd.AddCommand(newBuildCmd(a))
	rootCmd.AddCommand(newCacheCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the command line and returns the process exit status
func Execute() int {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		renderDiagnostic(rootCmd.ErrOrStderr(), err)
		return 1
	}
	return 0
}

func (a *app) setup(stderr io.Writer) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.Discover()
	}
	if err != nil {
		return err
	}

	format := a.cfg.General.LogFormat
	if a.logFormat != "" {
		format = a.logFormat
	}
	a.logger = logging.NewCLILogger(stderr, a.cfg.General.LogLevel, format, a.verbose)
	mdwlog.SetDefault(a.logger)

	a.logger.Debug("Configuration loaded", mdwlog.Fields{
		"path":       a.cfg.Path,
		"lexer_mode": a.cfg.Lexer.Mode,
	})
	return nil
}

func (a *app) backend() *codegen.LLVMBackend {
	return codegen.NewLLVMBackend(codegen.LLVMOptions{
		Logger:       a.logger,
		TargetTriple: a.cfg.Build.TargetTriple,
	})
}

func (a *app) engine(cache koala.ArtifactCache) *koala.Engine {
	return koala.New(koala.Options{
		Logger:  a.logger,
		Lexer:   a.cfg.LexerOptions(),
		Parser:  a.cfg.ParserOptions(),
		Backend: a.backend(),
		Cache:   cache,
	})
}

// readSource reads path, or standard input when path is "-"
func readSource(cmd *cobra.Command, path string) (string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		code := mdwerror.CodeIOError
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return "", mdwerror.Wrap(err, "read source").
			WithCode(code).
			WithOperation("cmd.readSource").
			WithDetail("path", path)
	}
	return string(data), nil
}
