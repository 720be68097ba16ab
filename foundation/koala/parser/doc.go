// File: doc.go
// Title: koala Parser Package Documentation
// Description: Recursive descent parser for koala token streams.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial parser implementation

/*
Package parser builds an ast.Module from a token slice produced by the lexer
package. The grammar is

	Module     := Define*
	Define     := "define" Identifier "(" ")" "{" Statement* "}"
	Statement  := "return" Expression ";"
	Expression := Integer

Parsing stops at the first mismatch. The returned *SyntaxError names the
expected and the actual token kind, for example

	expected token of type CloseBrace, but got End

Reading past the last token yields lexer.EndToken, so truncated input always
fails with an End mismatch instead of running off the slice. Integer
literals must fit in an int32; larger values fail with a *LiteralError.

A Parser holds only configuration. Every Parse call owns its own cursor, so
one Parser may be shared between goroutines.
*/
package parser
