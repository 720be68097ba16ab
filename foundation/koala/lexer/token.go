// File: token.go
// Title: koala Token Definitions
// Description: Token kinds and the Token value produced by the lexer and
//              consumed by the parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial token set

package lexer

import (
	"fmt"
)

// Kind represents the kind of a lexical token
type Kind int

const (
	KindIdentifier Kind = iota // main, f1
	KindInteger                // 42
	KindDefine                 // define
	KindReturn                 // return
	KindOpenParen              // (
	KindCloseParen             // )
	KindOpenBrace              // {
	KindCloseBrace             // }
	KindSemiColon              // ;
	KindUnknown                // any unrecognized character
	KindEnd                    // end of input, never stored in a token slice
)

var kindNames = [...]string{
	KindIdentifier: "Identifier",
	KindInteger:    "Integer",
	KindDefine:     "Define",
	KindReturn:     "Return",
	KindOpenParen:  "OpenParen",
	KindCloseParen: "CloseParen",
	KindOpenBrace:  "OpenBrace",
	KindCloseBrace: "CloseBrace",
	KindSemiColon:  "SemiColon",
	KindUnknown:    "Unknown",
	KindEnd:        "End",
}

// String returns the kind name used in diagnostics
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds returns every token kind in declaration order
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Token represents a lexical token with position information
type Token struct {
	Kind     Kind   // Token kind
	Lexeme   string // Exact source text
	Position int    // Byte offset in input
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based, in bytes)
}

// EndToken is the synthetic token returned when reading past the last token
var EndToken = Token{Kind: KindEnd}

// IsEnd reports whether t marks the end of input
func (t Token) IsEnd() bool {
	return t.Kind == KindEnd
}

// String renders the token as kind:lexeme
func (t Token) String() string {
	return t.Kind.String() + ":" + t.Lexeme
}

// Describe renders the token for diagnostics, including its position when known
func (t Token) Describe() string {
	if t.Kind == KindEnd {
		return "End"
	}
	if t.Line == 0 {
		return fmt.Sprintf("%s %q", t.Kind, t.Lexeme)
	}
	return fmt.Sprintf("%s %q at line %d, column %d", t.Kind, t.Lexeme, t.Line, t.Column)
}

var keywords = map[string]Kind{
	"define": KindDefine,
	"return": KindReturn,
}

// LookupIdent returns the keyword kind for an exact keyword lexeme and
// KindIdentifier otherwise
func LookupIdent(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return KindIdentifier
}

// IsKeyword reports whether s is a reserved word
func IsKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}
