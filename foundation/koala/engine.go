// File: engine.go
// Title: koala Compiler Engine
// Description: Runs the compiler pipeline for one source text and consults
//              the artifact cache before doing any work.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial engine implementation

package koala

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/koala/foundation/core/error"
	mdwlog "github.com/msto63/koala/foundation/core/log"
	"github.com/msto63/koala/foundation/koala/ast"
	"github.com/msto63/koala/foundation/koala/codegen"
	"github.com/msto63/koala/foundation/koala/lexer"
	"github.com/msto63/koala/foundation/koala/parser"
	"github.com/msto63/koala/pkg/core/version"
)

// ArtifactCache stores generated artifacts by cache key
type ArtifactCache interface {
	// Get returns the artifact for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) (*codegen.Artifact, bool, error)

	// Put stores artifact under key
	Put(ctx context.Context, key, compilationID string, artifact *codegen.Artifact) error
}

// Options configures the engine
type Options struct {
	// Logger for engine operations (optional, defaults to default logger)
	Logger *mdwlog.Logger

	Lexer  lexer.Options
	Parser parser.Options

	// Backend generates code; Compile fails without one
	Backend codegen.Backend

	// Cache is consulted before compiling (optional)
	Cache ArtifactCache
}

// Result is the outcome of one compilation. Tokens and Module are nil when
// the artifact came from the cache.
type Result struct {
	CompilationID string
	Tokens        []lexer.Token
	Module        *ast.Module
	Artifact      *codegen.Artifact
	Cached        bool
	Duration      time.Duration
}

// Engine coordinates lexer, parser and backend. It holds no per-compilation
// state and may be used concurrently.
type Engine struct {
	parser      *parser.Parser
	logger      *mdwlog.Logger
	options     Options
	fingerprint string
}

// New creates an engine
func New(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	logger := opts.Logger.WithField("component", "koala-engine")

	parserOpts := opts.Parser
	parserOpts.Lexer = opts.Lexer
	if parserOpts.Logger == nil {
		parserOpts.Logger = opts.Logger
	}

	return &Engine{
		parser:      parser.New(parserOpts),
		logger:      logger,
		options:     opts,
		fingerprint: fingerprint(opts.Backend, parserOpts),
	}
}

// Tokenize scans source with the configured lexer options
func (e *Engine) Tokenize(source string) ([]lexer.Token, error) {
	return lexer.TokenizeWithOptions(source, e.options.Lexer)
}

// Parse tokenizes and parses source
func (e *Engine) Parse(source string) (*ast.Module, error) {
	return e.parser.ParseSource(source)
}

// Compile runs the full pipeline for source. name becomes the module name
// of the generated artifact.
func (e *Engine) Compile(ctx context.Context, name, source string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if e.options.Backend == nil {
		return nil, mdwerror.New("no code generation backend configured").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("koala.Compile")
	}

	start := time.Now()
	result := &Result{CompilationID: uuid.NewString()}
	logger := e.logger.WithCorrelationID(result.CompilationID).WithField("module", name)
	timer := logger.StartTimer("koala_compile").WithField("backend", e.options.Backend.Name())

	key := CacheKey(e.fingerprint, name, source)
	if artifact, ok := e.lookup(ctx, logger, key); ok {
		result.Artifact = artifact
		result.Cached = true
		timer.WithField("cached", true).Stop()
		result.Duration = time.Since(start)
		return result, nil
	}

	tokens, err := e.Tokenize(source)
	if err != nil {
		return nil, e.fail(logger, timer, "tokenize", err)
	}
	result.Tokens = tokens

	module, err := e.parser.Parse(tokens)
	if err != nil {
		return nil, e.fail(logger, timer, "parse", err)
	}
	if err := module.Validate(); err != nil {
		return nil, e.fail(logger, timer, "validate", mdwerror.Wrap(err, "invalid syntax tree").
			WithCode(mdwerror.CodeInternal).
			WithOperation("koala.Compile"))
	}
	result.Module = module

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	artifact, err := e.options.Backend.Generate(name, module)
	if err != nil {
		return nil, e.fail(logger, timer, "generate", err)
	}
	result.Artifact = artifact

	if e.options.Cache != nil {
		if err := e.options.Cache.Put(ctx, key, result.CompilationID, artifact); err != nil {
			logger.WarnWithErr("Artifact cache write failed", err)
		}
	}

	timer.WithField("definitions", len(module.Definitions)).Stop()
	result.Duration = time.Since(start)
	return result, nil
}

func (e *Engine) lookup(ctx context.Context, logger *mdwlog.Logger, key string) (*codegen.Artifact, bool) {
	if e.options.Cache == nil {
		return nil, false
	}

	artifact, ok, err := e.options.Cache.Get(ctx, key)
	if err != nil {
		logger.WarnWithErr("Artifact cache read failed", err)
		return nil, false
	}
	if ok {
		logger.Debug("Artifact cache hit", mdwlog.Fields{"key": key[:12]})
	}
	return artifact, ok
}

// fail logs a failed phase. Errors in the user's source are expected and
// only traced; anything else is reported as a failed operation.
func (e *Engine) fail(logger *mdwlog.Logger, timer *mdwlog.Timer, phase string, err error) error {
	if mdwerror.GetCode(err).IsSourceError() {
		logger.Debug("Compilation rejected", mdwlog.Fields{
			"phase": phase,
			"error": err.Error(),
		})
		return err
	}
	timer.WithField("phase", phase).StopWithError(err)
	return err
}

// CacheKey derives the artifact cache key from the pipeline fingerprint,
// the module name and the source text
func CacheKey(fingerprint, name, source string) string {
	h := sha256.New()
	for _, part := range []string{fingerprint, name, source} {
		fmt.Fprintf(h, "%d:%s;", len(part), part)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// fingerprint covers everything besides the source that changes the output
func fingerprint(backend codegen.Backend, opts parser.Options) string {
	fp := version.Fingerprint("none")
	if backend != nil {
		fp = version.Fingerprint(backend.Name())
		if d, ok := backend.(codegen.Describer); ok {
			fp += " " + d.Describe()
		}
	}
	return fmt.Sprintf("%s mode=%s any_name=%t require_end=%t",
		fp, opts.Lexer.Mode, opts.AllowAnyName, opts.RequireEnd)
}
