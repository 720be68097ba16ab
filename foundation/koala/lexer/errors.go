// File: errors.go
// Title: koala Lexical Errors
// Description: The failure value returned by a strict scan.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package lexer

import (
	"fmt"

	mdwerror "github.com/msto63/koala/foundation/core/error"
)

// LexError reports an unrecognized character. Tokens holds every token
// scanned before it, in order; Token is the offending Unknown token.
type LexError struct {
	Tokens []Token
	Token  Token

	cause *mdwerror.Error
}

func newLexError(tokens []Token, offending Token) *LexError {
	e := &LexError{Tokens: tokens, Token: offending}
	e.cause = mdwerror.New(e.Error()).
		WithCode(mdwerror.CodeLexical).
		WithOperation("lexer.Tokenize").
		WithDetails(map[string]interface{}{
			"character": offending.Lexeme,
			"line":      offending.Line,
			"column":    offending.Column,
			"scanned":   len(tokens),
		})
	return e
}

// Error implements the error interface
func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character %q at line %d, column %d",
		e.Token.Lexeme, e.Token.Line, e.Token.Column)
}

// Unwrap exposes the coded error for errors.As and mdwerror.HasCode
func (e *LexError) Unwrap() error {
	return e.cause
}
