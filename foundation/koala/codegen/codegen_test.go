// File: codegen_test.go
// Title: koala Code Generation Tests
// Description: Tests for LLVM IR emission and backend error cases.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test suite

package codegen

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/llir/llvm/asm"
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"

	mdwerror "github.com/msto63/koala/foundation/core/error"
	mdwlog "github.com/msto63/koala/foundation/core/log"
	"github.com/msto63/koala/foundation/koala/ast"
	"github.com/msto63/koala/foundation/koala/parser"
)

func mustParse(t *testing.T, source string) *ast.Module {
	t.Helper()
	m, err := parser.ParseSource(source)
	if err != nil {
		t.Fatalf("ParseSource(%q) error = %v", source, err)
	}
	return m
}

func TestLLVMBackend_Generate(t *testing.T) {
	backend := NewLLVMBackend(LLVMOptions{Logger: mdwlog.Discard(), TargetTriple: "x86_64-pc-linux-gnu"})

	artifact, err := backend.Generate("main.koala", mustParse(t, "define main() { return 42; } define two() { return 2; }"))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if artifact.Backend != "llvm" || artifact.ModuleName != "main.koala" {
		t.Errorf("artifact metadata = %+v", artifact)
	}
	if !reflect.DeepEqual(artifact.Functions, []string{"main", "two"}) {
		t.Errorf("Functions = %v", artifact.Functions)
	}

	for _, want := range []string{
		`source_filename = "main.koala"`,
		`target triple = "x86_64-pc-linux-gnu"`,
		"define i32 @main() {",
		"ret i32 42",
		"define i32 @two() {",
		"ret i32 2",
		"entry:",
	} {
		if !strings.Contains(artifact.IR, want) {
			t.Errorf("IR missing %q:\n%s", want, artifact.IR)
		}
	}

	if got := returnValues(t, artifact.IR); !reflect.DeepEqual(got, map[string]int64{"main": 42, "two": 2}) {
		t.Errorf("returned constants = %v", got)
	}

	if strings.Index(artifact.IR, "@main") > strings.Index(artifact.IR, "@two") {
		t.Error("functions should be emitted in declaration order")
	}
}

func TestLLVMBackend_NegativeAndBounds(t *testing.T) {
	backend := NewLLVMBackend(LLVMOptions{Logger: mdwlog.Discard()})
	module := &ast.Module{Definitions: []*ast.Define{
		{Name: "lo", Stmts: []ast.Statement{&ast.ReturnStatement{Value: &ast.IntegerLiteral{Value: -2147483648}}}},
		{Name: "hi", Stmts: []ast.Statement{&ast.ReturnStatement{Value: &ast.IntegerLiteral{Value: 2147483647}}}},
	}}

	artifact, err := backend.Generate("bounds", module)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	// llir may print large constants in hex, so compare parsed values
	got := returnValues(t, artifact.IR)
	want := map[string]int64{"lo": -2147483648, "hi": 2147483647}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("returned constants = %v, want %v\n%s", got, want, artifact.IR)
	}
	if strings.Contains(artifact.IR, "target triple") {
		t.Error("target triple should be omitted when not configured")
	}
}

// returnValues parses IR and maps each function to its returned constant
func returnValues(t *testing.T, text string) map[string]int64 {
	t.Helper()
	m, err := asm.ParseString("out.ll", text)
	if err != nil {
		t.Fatalf("generated IR does not parse: %v\n%s", err, text)
	}

	values := make(map[string]int64, len(m.Funcs))
	for _, f := range m.Funcs {
		if len(f.Blocks) != 1 {
			t.Fatalf("@%s has %d blocks, want 1", f.Name(), len(f.Blocks))
		}
		ret, ok := f.Blocks[0].Term.(*ir.TermRet)
		if !ok {
			t.Fatalf("@%s terminator = %T, want ret", f.Name(), f.Blocks[0].Term)
		}
		c, ok := ret.X.(*constant.Int)
		if !ok {
			t.Fatalf("@%s returns %T, want integer constant", f.Name(), ret.X)
		}
		values[f.Name()] = c.X.Int64()
	}
	return values
}

func TestLLVMBackend_Errors(t *testing.T) {
	backend := NewLLVMBackend(LLVMOptions{Logger: mdwlog.Discard()})

	tests := []struct {
		name   string
		module *ast.Module
		code   mdwerror.Code
	}{
		{"nil module", nil, mdwerror.CodeInvalidInput},
		{"empty body", mustParse(t, "define f() { }"), mdwerror.CodeCodegen},
		{"duplicate name", mustParse(t, "define f() { return 1; } define f() { return 2; }"), mdwerror.CodeDuplicateSymbol},
		{"nil expression", &ast.Module{Definitions: []*ast.Define{
			{Name: "f", Stmts: []ast.Statement{&ast.ReturnStatement{}}},
		}}, mdwerror.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			artifact, err := backend.Generate("test", tt.module)
			if err == nil {
				t.Fatalf("Generate() = %v, want error", artifact)
			}
			if got := mdwerror.GetCode(err); got != tt.code {
				t.Errorf("code = %v, want %v (%v)", got, tt.code, err)
			}
		})
	}
}

func TestLLVMBackend_DropsUnreachable(t *testing.T) {
	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelWarn, Format: mdwlog.FormatText, Output: &buf})
	backend := NewLLVMBackend(LLVMOptions{Logger: logger})

	artifact, err := backend.Generate("m", mustParse(t, "define f() {\n return 1;\n return 2;\n return 3;\n}"))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if strings.Count(artifact.IR, "ret i32") != 1 || !strings.Contains(artifact.IR, "ret i32 1") {
		t.Errorf("only the first return should be emitted:\n%s", artifact.IR)
	}
	if out := buf.String(); !strings.Contains(out, "Unreachable statements dropped") || !strings.Contains(out, "dropped=2") {
		t.Errorf("warning missing: %q", out)
	}
}

func TestArtifact_WriteFile(t *testing.T) {
	artifact := &Artifact{IR: "; empty\n"}
	path := filepath.Join(t.TempDir(), "out.ll")

	if err := artifact.WriteFile(path); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "; empty\n" {
		t.Errorf("file contents = %q, %v", data, err)
	}

	err = artifact.WriteFile(filepath.Join(t.TempDir(), "missing", "out.ll"))
	if !mdwerror.HasCode(err, mdwerror.CodeIOError) {
		t.Errorf("WriteFile() into missing dir error = %v, want IO_ERROR", err)
	}
}
