// File: doc.go
// Title: koala Compiler Package Documentation
// Description: Package level documentation for the koala compiler engine.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial documentation

// Package koala coordinates the compiler pipeline: tokenize, parse,
// validate and generate code, with an optional artifact cache in front of
// the pipeline.
//
// The language accepted is
//
//	Module     := Define*
//	Define     := "define" Identifier "(" ")" "{" Statement* "}"
//	Statement  := "return" Expression ";"
//	Expression := Integer
//
// Usage:
//
//	engine := koala.New(koala.Options{
//		Backend: codegen.NewLLVMBackend(codegen.LLVMOptions{}),
//	})
//	result, err := engine.Compile(ctx, "main.koala", "define main() { return 42; }")
//	if err != nil {
//		return err
//	}
//	fmt.Print(result.Artifact.IR)
//
// Lexical and syntax failures are returned unchanged as *lexer.LexError,
// *parser.SyntaxError or *parser.LiteralError.
package koala
