// File: codegen.go
// Title: koala Code Generation Backend
// Description: Lowers a parsed module to textual LLVM IR. Every definition
//              becomes an externally visible zero-argument function returning
//              a 32-bit constant.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial LLVM IR backend

package codegen

import (
	"fmt"
	"os"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"

	mdwerror "github.com/msto63/koala/foundation/core/error"
	mdwlog "github.com/msto63/koala/foundation/core/log"
	"github.com/msto63/koala/foundation/koala/ast"
)

// Backend lowers a module into a build artifact
type Backend interface {
	// Name identifies the backend in cache keys and logs
	Name() string

	// Generate lowers module. moduleName is recorded as the source file name.
	Generate(moduleName string, module *ast.Module) (*Artifact, error)
}

// Describer is implemented by backends whose output depends on settings
// beyond their name. The description becomes part of cache keys.
type Describer interface {
	Describe() string
}

// Artifact is the output of a backend
type Artifact struct {
	ModuleName string   `json:"module_name"`
	Backend    string   `json:"backend"`
	IR         string   `json:"ir"`
	Functions  []string `json:"functions"`
}

// WriteFile writes the IR text to path
func (a *Artifact) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(a.IR), 0o644); err != nil {
		return mdwerror.Wrap(err, "write artifact").
			WithCode(mdwerror.CodeIOError).
			WithOperation("codegen.WriteFile").
			WithDetail("path", path)
	}
	return nil
}

// LLVMOptions configures the LLVM backend
type LLVMOptions struct {
	Logger *mdwlog.Logger

	// TargetTriple is emitted as the module's target triple when set
	TargetTriple string
}

// LLVMBackend generates LLVM IR with github.com/llir/llvm
type LLVMBackend struct {
	logger  *mdwlog.Logger
	options LLVMOptions
}

// NewLLVMBackend creates an LLVM IR backend
func NewLLVMBackend(opts LLVMOptions) *LLVMBackend {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	return &LLVMBackend{
		logger:  opts.Logger.WithField("component", "koala-codegen"),
		options: opts,
	}
}

// Name returns "llvm"
func (b *LLVMBackend) Name() string {
	return "llvm"
}

// Describe returns the backend name and target triple
func (b *LLVMBackend) Describe() string {
	return fmt.Sprintf("%s target=%s", b.Name(), b.options.TargetTriple)
}

// Generate emits one function per definition. A definition without a return
// statement or a name used twice is rejected; statements after the first
// return are unreachable and dropped.
func (b *LLVMBackend) Generate(moduleName string, module *ast.Module) (*Artifact, error) {
	if module == nil {
		return nil, mdwerror.New("module is nil").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("codegen.Generate")
	}

	m := ir.NewModule()
	m.SourceFilename = moduleName
	if b.options.TargetTriple != "" {
		m.TargetTriple = b.options.TargetTriple
	}

	for _, def := range module.Definitions {
		if first, _ := module.Lookup(def.Name); first != def {
			return nil, mdwerror.Newf("function %q is already defined at %s", def.Name, first.Pos).
				WithCode(mdwerror.CodeDuplicateSymbol).
				WithOperation("codegen.Generate").
				WithDetail("name", def.Name).
				WithDetail("position", def.Pos.String())
		}

		if err := b.buildFunction(m, def); err != nil {
			return nil, err
		}
	}
	functions := module.Names()

	b.logger.Debug("LLVM module generated", mdwlog.Fields{
		"module":    moduleName,
		"functions": len(functions),
	})

	return &Artifact{
		ModuleName: moduleName,
		Backend:    b.Name(),
		IR:         m.String(),
		Functions:  functions,
	}, nil
}

func (b *LLVMBackend) buildFunction(m *ir.Module, def *ast.Define) error {
	ret, index := def.FirstReturn()
	if ret == nil {
		return mdwerror.Newf("function %q has no return statement", def.Name).
			WithCode(mdwerror.CodeCodegen).
			WithOperation("codegen.buildFunction").
			WithDetail("name", def.Name).
			WithDetail("position", def.Pos.String())
	}

	value, err := b.buildExpression(ret.Value)
	if err != nil {
		return err
	}

	f := m.NewFunc(def.Name, types.I32)
	f.NewBlock("entry").NewRet(value)

	if dropped := len(def.Stmts) - index - 1; dropped > 0 {
		b.logger.Warn("Unreachable statements dropped", mdwlog.Fields{
			"define":  def.Name,
			"dropped": dropped,
			"line":    def.Stmts[index+1].Position().Line,
		})
	}
	return nil
}

func (b *LLVMBackend) buildExpression(expr ast.Expression) (constant.Constant, error) {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return constant.NewInt(types.I32, int64(e.Value)), nil
	default:
		return nil, mdwerror.New(fmt.Sprintf("unsupported expression %T", expr)).
			WithCode(mdwerror.CodeInternal).
			WithOperation("codegen.buildExpression")
	}
}
