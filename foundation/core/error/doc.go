// Package error provides coded, structured errors for the koala toolchain.
//
// Package: error
// Title: koala Structured Errors
// Description: An Error type carrying a Code, a Severity, the failing
//              operation, free-form details and an optional cause. Lexical,
//              syntax and codegen failures of the compiler all unwrap to one
//              of these so that logging and the CLI can classify them
//              uniformly.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors
// - 2026-10-19 v0.2.0: Compiler error codes, errors.As based inspection
//
// Usage:
//
//	import mdwerror "github.com/msto63/koala/foundation/core/error"
//
//	err := mdwerror.New("expected token of type Identifier, but got End").
//		WithCode(mdwerror.CodeSyntax).
//		WithOperation("parser.parseDefine").
//		WithDetail("expected", "Identifier")
//
//	if mdwerror.HasCode(err, mdwerror.CodeSyntax) {
//		// report to the user
//	}
package error
