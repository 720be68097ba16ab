package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/koala/foundation/core/error"
	mdwlog "github.com/msto63/koala/foundation/core/log"
	"github.com/msto63/koala/foundation/koala"
	"github.com/msto63/koala/internal/buildcache"
	"github.com/msto63/koala/internal/watch"
	artifactcache "github.com/msto63/koala/pkg/core/cache"
)

type buildOptions struct {
	output     string
	moduleName string
	useCache   bool
	watch      bool
}

func newBuildCmd(a *app) *cobra.Command {
	var opts buildOptions

	cmd := &cobra.Command{
		Use:   "build <file>",
		Short: "Generate LLVM IR",
		Long: `Compiles a file to textual LLVM IR.

The output defaults to <output_dir>/<file>.ll. Use "-o -" to print the IR.

Examples:
  koala build main.koala
  koala build -o main.ll main.koala
  koala build --cache main.koala
  koala build --watch main.koala`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBuild(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, - for stdout")
	cmd.Flags().StringVar(&opts.moduleName, "module-name", "", "module name recorded in the IR (default: file name)")
	cmd.Flags().BoolVar(&opts.useCache, "cache", false, "use the artifact cache even if disabled in the config")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "rebuild whenever the file changes")
	return cmd
}

func (a *app) runBuild(cmd *cobra.Command, path string, opts buildOptions) error {
	var cache koala.ArtifactCache
	if opts.useCache || a.cfg.Build.CacheEnabled {
		store, err := buildcache.Open(buildcache.Config{Path: a.cfg.Build.CachePath, Logger: a.logger})
		if err != nil {
			return err
		}
		defer store.Close()
		cache = store
	}

	if !opts.watch {
		return a.build(cmd.Context(), cmd, a.engine(cache), path, opts)
	}

	if path == "-" {
		return mdwerror.New("cannot watch standard input").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.build")
	}

	w, err := watch.New(path, watch.Options{Logger: a.logger, Debounce: a.cfg.Build.WatchDebounce.Duration})
	if err != nil {
		return err
	}

	// Reverting an edit rebuilds from memory without touching the store
	memory := artifactcache.NewArtifacts(artifactcache.DefaultConfig(), cache)
	engine := a.engine(memory)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = w.Run(ctx, func(ctx context.Context) error {
		err := a.build(ctx, cmd, engine, path, opts)
		if err != nil {
			renderDiagnostic(cmd.ErrOrStderr(), err)
		}
		return err
	})

	hits, misses, _ := memory.Stats()
	a.logger.Debug("Watch stopped", mdwlog.Fields{"hits": hits, "misses": misses})
	return err
}

func (a *app) build(ctx context.Context, cmd *cobra.Command, engine *koala.Engine, path string, opts buildOptions) error {
	source, err := readSource(cmd, path)
	if err != nil {
		return err
	}

	result, err := a.compile(ctx, engine, path, source, opts)
	if err != nil {
		return err
	}
	return a.write(cmd, path, result, opts)
}

// compile runs the engine on source already read from path
func (a *app) compile(ctx context.Context, engine *koala.Engine, path, source string, opts buildOptions) (*koala.Result, error) {
	result, err := engine.Compile(ctx, a.moduleName(path, opts.moduleName), source)
	if err != nil {
		return nil, withSource(path, source, err)
	}
	return result, nil
}

// write stores the artifact of result and reports where it went
func (a *app) write(cmd *cobra.Command, path string, result *koala.Result, opts buildOptions) error {
	out := cmd.OutOrStdout()
	if opts.output == "-" {
		fmt.Fprint(out, result.Artifact.IR)
		return nil
	}

	target := opts.output
	if target == "" {
		target = a.defaultOutput(path)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return mdwerror.Wrap(err, "create output directory").
			WithCode(mdwerror.CodeIOError).
			WithOperation("cmd.build")
	}
	if err := result.Artifact.WriteFile(target); err != nil {
		return err
	}

	note := ""
	if result.Cached {
		note = ", cached"
	}
	fmt.Fprintf(out, "%s %s (%s%s) %s\n",
		SuccessStyle.Render("Wrote"), target,
		plural(len(result.Artifact.Functions), "function"), note,
		MutedStyle.Render(result.CompilationID[:8]))
	return nil
}

func (a *app) moduleName(path, flag string) string {
	switch {
	case flag != "":
		return flag
	case a.cfg.Build.ModuleName != "":
		return a.cfg.Build.ModuleName
	case path == "-":
		return "stdin"
	default:
		return filepath.Base(path)
	}
}

func (a *app) defaultOutput(path string) string {
	base := "a"
	if path != "-" {
		base = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return filepath.Join(a.cfg.Build.OutputDir, base+".ll")
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
