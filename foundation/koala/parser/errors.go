// File: errors.go
// Title: koala Parser Errors
// Description: Failure values for token mismatches and invalid integer
//              literals. Both unwrap to a coded foundation error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package parser

import (
	"errors"
	"fmt"
	"strconv"

	mdwerror "github.com/msto63/koala/foundation/core/error"
	"github.com/msto63/koala/foundation/koala/lexer"
)

// SyntaxError reports the first token whose kind did not match the grammar
type SyntaxError struct {
	Expected lexer.Kind
	Actual   lexer.Token

	cause *mdwerror.Error
}

func newSyntaxError(expected lexer.Kind, actual lexer.Token, operation string) *SyntaxError {
	e := &SyntaxError{Expected: expected, Actual: actual}
	e.cause = mdwerror.New(e.Error()).
		WithCode(mdwerror.CodeSyntax).
		WithOperation(operation).
		WithDetails(map[string]interface{}{
			"expected": expected.String(),
			"actual":   actual.Kind.String(),
		})
	if actual.Line > 0 {
		e.cause.WithDetail("line", actual.Line).WithDetail("column", actual.Column)
	}
	return e
}

// Message returns the kind mismatch alone, without lexeme or position
func (e *SyntaxError) Message() string {
	return fmt.Sprintf("expected token of type %s, but got %s", e.Expected, e.Actual.Kind)
}

// Error implements the error interface
func (e *SyntaxError) Error() string {
	msg := e.Message()
	switch {
	case e.Actual.Kind == lexer.KindEnd:
		return msg
	case e.Actual.Line > 0:
		return fmt.Sprintf("%s (%q at line %d, column %d)", msg, e.Actual.Lexeme, e.Actual.Line, e.Actual.Column)
	default:
		return fmt.Sprintf("%s (%q)", msg, e.Actual.Lexeme)
	}
}

// Unwrap exposes the coded error for errors.As and mdwerror.HasCode
func (e *SyntaxError) Unwrap() error {
	return e.cause
}

// LiteralError reports an Integer token whose lexeme does not convert to an
// int32. Out-of-range values carry CodeIntegerRange; anything else means the
// lexer handed over a malformed lexeme and carries CodeInternal.
type LiteralError struct {
	Token lexer.Token
	Err   error

	cause *mdwerror.Error
}

func newLiteralError(tok lexer.Token, err error) *LiteralError {
	e := &LiteralError{Token: tok, Err: err}

	code := mdwerror.CodeInternal
	if errors.Is(err, strconv.ErrRange) {
		code = mdwerror.CodeIntegerRange
	}
	e.cause = mdwerror.New(e.Error()).
		WithCode(code).
		WithOperation("parser.parseExpression").
		WithDetail("lexeme", tok.Lexeme).
		WithCause(err)
	return e
}

// OutOfRange reports whether the literal was well formed but too large
func (e *LiteralError) OutOfRange() bool {
	return errors.Is(e.Err, strconv.ErrRange)
}

// Error implements the error interface
func (e *LiteralError) Error() string {
	reason := "is not a valid integer"
	if e.OutOfRange() {
		reason = "is out of range for a 32-bit integer"
	}
	if e.Token.Line > 0 {
		return fmt.Sprintf("integer literal %q %s (line %d, column %d)", e.Token.Lexeme, reason, e.Token.Line, e.Token.Column)
	}
	return fmt.Sprintf("integer literal %q %s", e.Token.Lexeme, reason)
}

// Unwrap exposes the coded error, whose own cause is the conversion error
func (e *LiteralError) Unwrap() error {
	return e.cause
}
