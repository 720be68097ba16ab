// File: lexer.go
// Title: koala Lexical Analyzer
// Description: Single-pass scanner converting koala source text into tokens
//              with byte offset, line and column information.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial lexer implementation with strict and permissive modes

package lexer

import (
	"strings"
	"unicode/utf8"

	mdwerror "github.com/msto63/koala/foundation/core/error"
)

// Mode selects how the lexer treats unrecognized characters
type Mode int

const (
	// ModeStrict stops at the first unrecognized character
	ModeStrict Mode = iota

	// ModePermissive emits Unknown tokens and keeps scanning
	ModePermissive
)

// String returns the configuration name of the mode
func (m Mode) String() string {
	switch m {
	case ModeStrict:
		return "strict"
	case ModePermissive:
		return "permissive"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode name as used in configuration files
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return ModeStrict, nil
	case "permissive":
		return ModePermissive, nil
	default:
		return ModeStrict, mdwerror.New("invalid lexer mode: "+s).
			WithCode(mdwerror.CodeInvalidConfig).
			WithDetail("mode", s)
	}
}

// Options configures a Lexer
type Options struct {
	Mode Mode
}

// Lexer scans one source text. A Lexer is not safe for concurrent use; the
// package-level Tokenize functions create one per call.
type Lexer struct {
	input   string
	options Options

	start   int // offset of the token being scanned
	current int // scan offset
	line    int // line of current
	column  int // column of current
}

// NewLexer creates a lexer over input. At most one Options value is used.
func NewLexer(input string, opts ...Options) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 1,
	}
	if len(opts) > 0 {
		l.options = opts[0]
	}
	return l
}

// Next scans and returns the next token. Once the input is exhausted it
// returns an End token positioned at the end of input, on every call.
func (l *Lexer) Next() Token {
	l.skipWhitespace()

	if l.current >= len(l.input) {
		return Token{Kind: KindEnd, Position: l.current, Line: l.line, Column: l.column}
	}

	l.start = l.current
	line, column := l.line, l.column
	c := l.input[l.current]

	var kind Kind
	switch {
	case c == '(':
		l.advance()
		kind = KindOpenParen
	case c == ')':
		l.advance()
		kind = KindCloseParen
	case c == '{':
		l.advance()
		kind = KindOpenBrace
	case c == '}':
		l.advance()
		kind = KindCloseBrace
	case c == ';':
		l.advance()
		kind = KindSemiColon
	case isDigit(c):
		for l.current < len(l.input) && isDigit(l.input[l.current]) {
			l.advance()
		}
		kind = KindInteger
	case isLetter(c):
		for l.current < len(l.input) && isAlphanumeric(l.input[l.current]) {
			l.advance()
		}
		kind = LookupIdent(l.input[l.start:l.current])
	default:
		// One whole rune, or one byte if the input is not valid UTF-8
		_, size := utf8.DecodeRuneInString(l.input[l.current:])
		for i := 0; i < size; i++ {
			l.advance()
		}
		kind = KindUnknown
	}

	return Token{
		Kind:     kind,
		Lexeme:   l.input[l.start:l.current],
		Position: l.start,
		Line:     line,
		Column:   column,
	}
}

// Tokenize scans the remaining input. In strict mode the first Unknown
// token ends the scan with a *LexError carrying the tokens before it.
func (l *Lexer) Tokenize() ([]Token, error) {
	tokens := make([]Token, 0, len(l.input)/4+1)

	for {
		tok := l.Next()
		switch {
		case tok.Kind == KindEnd:
			return tokens, nil
		case tok.Kind == KindUnknown && l.options.Mode == ModeStrict:
			return nil, newLexError(tokens, tok)
		}
		tokens = append(tokens, tok)
	}
}

func (l *Lexer) advance() {
	if l.input[l.current] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.current++
}

func (l *Lexer) skipWhitespace() {
	for l.current < len(l.input) && isSpace(l.input[l.current]) {
		l.advance()
	}
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isAlphanumeric(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}

// Tokenize scans input in strict mode
func Tokenize(input string) ([]Token, error) {
	return NewLexer(input).Tokenize()
}

// TokenizeWithOptions scans input with the given options
func TokenizeWithOptions(input string, opts Options) ([]Token, error) {
	return NewLexer(input, opts).Tokenize()
}

// HasUnknown reports whether a permissive scan produced Unknown tokens
func HasUnknown(tokens []Token) bool {
	for _, tok := range tokens {
		if tok.Kind == KindUnknown {
			return true
		}
	}
	return false
}
