// File: lexer_test.go
// Title: koala Lexer Unit Tests
// Description: Tests for token kinds, position tracking, maximal munch,
//              keyword matching and strict/permissive failure handling.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test suite

package lexer

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	mdwerror "github.com/msto63/koala/foundation/core/error"
)

func kindsOf(tokens []Token) []Kind {
	kinds := make([]Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	return kinds
}

func TestLexer_Next(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "Single definition",
			input: "define f() { return 42; }",
			expected: []Token{
				{Kind: KindDefine, Lexeme: "define", Position: 0, Line: 1, Column: 1},
				{Kind: KindIdentifier, Lexeme: "f", Position: 7, Line: 1, Column: 8},
				{Kind: KindOpenParen, Lexeme: "(", Position: 8, Line: 1, Column: 9},
				{Kind: KindCloseParen, Lexeme: ")", Position: 9, Line: 1, Column: 10},
				{Kind: KindOpenBrace, Lexeme: "{", Position: 11, Line: 1, Column: 12},
				{Kind: KindReturn, Lexeme: "return", Position: 13, Line: 1, Column: 14},
				{Kind: KindInteger, Lexeme: "42", Position: 20, Line: 1, Column: 21},
				{Kind: KindSemiColon, Lexeme: ";", Position: 22, Line: 1, Column: 23},
				{Kind: KindCloseBrace, Lexeme: "}", Position: 24, Line: 1, Column: 25},
				{Kind: KindEnd, Lexeme: "", Position: 25, Line: 1, Column: 26},
			},
		},
		{
			name:  "Multiple lines",
			input: "define main() {\n\treturn 7;\n}\n",
			expected: []Token{
				{Kind: KindDefine, Lexeme: "define", Position: 0, Line: 1, Column: 1},
				{Kind: KindIdentifier, Lexeme: "main", Position: 7, Line: 1, Column: 8},
				{Kind: KindOpenParen, Lexeme: "(", Position: 11, Line: 1, Column: 12},
				{Kind: KindCloseParen, Lexeme: ")", Position: 12, Line: 1, Column: 13},
				{Kind: KindOpenBrace, Lexeme: "{", Position: 14, Line: 1, Column: 15},
				{Kind: KindReturn, Lexeme: "return", Position: 17, Line: 2, Column: 2},
				{Kind: KindInteger, Lexeme: "7", Position: 24, Line: 2, Column: 9},
				{Kind: KindSemiColon, Lexeme: ";", Position: 25, Line: 2, Column: 10},
				{Kind: KindCloseBrace, Lexeme: "}", Position: 27, Line: 3, Column: 1},
				{Kind: KindEnd, Lexeme: "", Position: 29, Line: 4, Column: 1},
			},
		},
		{
			name:  "Empty input",
			input: "",
			expected: []Token{
				{Kind: KindEnd, Lexeme: "", Position: 0, Line: 1, Column: 1},
			},
		},
		{
			name:  "Whitespace only",
			input: " \t\r\v\f",
			expected: []Token{
				{Kind: KindEnd, Lexeme: "", Position: 5, Line: 1, Column: 6},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLexer(tt.input)
			for i, want := range tt.expected {
				got := l.Next()
				if got != want {
					t.Fatalf("token[%d] = %+v, want %+v", i, got, want)
				}
			}
		})
	}
}

func TestLexer_NextAfterEnd(t *testing.T) {
	l := NewLexer("x")
	l.Next()
	for i := 0; i < 3; i++ {
		if tok := l.Next(); tok.Kind != KindEnd {
			t.Fatalf("call %d after end returned %v", i, tok)
		}
	}
}

func TestTokenize_MaximalMunch(t *testing.T) {
	tokens, err := Tokenize("123abc")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}

	want := []Token{
		{Kind: KindInteger, Lexeme: "123", Position: 0, Line: 1, Column: 1},
		{Kind: KindIdentifier, Lexeme: "abc", Position: 3, Line: 1, Column: 4},
	}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Tokenize(\"123abc\") = %v, want %v", tokens, want)
	}
}

func TestTokenize_Keywords(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"define", KindDefine},
		{"return", KindReturn},
		{"defined", KindIdentifier},
		{"definex", KindIdentifier},
		{"def", KindIdentifier},
		{"Define", KindIdentifier},
		{"returns", KindIdentifier},
		{"return1", KindIdentifier},
		{"x1y2", KindIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize(%q) error = %v", tt.input, err)
			}
			if len(tokens) != 1 {
				t.Fatalf("Tokenize(%q) produced %d tokens, want 1", tt.input, len(tokens))
			}
			if tokens[0].Kind != tt.want || tokens[0].Lexeme != tt.input {
				t.Errorf("Tokenize(%q) = %v, want %v:%s", tt.input, tokens[0], tt.want, tt.input)
			}
		})
	}
}

func TestTokenize_Symbols(t *testing.T) {
	tokens, err := Tokenize("(){};")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}

	want := []Kind{KindOpenParen, KindCloseParen, KindOpenBrace, KindCloseBrace, KindSemiColon}
	if got := kindsOf(tokens); !reflect.DeepEqual(got, want) {
		t.Errorf("kinds = %v, want %v", got, want)
	}
}

func TestTokenize_Deterministic(t *testing.T) {
	inputs := []string{
		"",
		"define a() { return 1; } define b() { return 2; }",
		"123abc ((( }}} ;;",
		"define f() {\n  return 0042;\n}",
	}

	for _, input := range inputs {
		first, err1 := Tokenize(input)
		second, err2 := Tokenize(input)
		if (err1 == nil) != (err2 == nil) {
			t.Fatalf("Tokenize(%q) errors differ: %v vs %v", input, err1, err2)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Tokenize(%q) not deterministic: %v vs %v", input, first, second)
		}
	}
}

func TestTokenize_UnknownCharacterStrict(t *testing.T) {
	tokens, err := Tokenize("define f() { return #; }")
	if err == nil {
		t.Fatal("Tokenize() should fail on '#'")
	}
	if tokens != nil {
		t.Errorf("Tokenize() returned tokens %v alongside the error", tokens)
	}

	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("error %T is not a *LexError", err)
	}

	wantKinds := []Kind{KindDefine, KindIdentifier, KindOpenParen, KindCloseParen, KindOpenBrace, KindReturn}
	if got := kindsOf(lexErr.Tokens); !reflect.DeepEqual(got, wantKinds) {
		t.Errorf("LexError.Tokens kinds = %v, want %v", got, wantKinds)
	}
	if lexErr.Tokens[1].Lexeme != "f" {
		t.Errorf("identifier lexeme = %q, want f", lexErr.Tokens[1].Lexeme)
	}

	if lexErr.Token.Kind != KindUnknown || lexErr.Token.Lexeme != "#" {
		t.Errorf("offending token = %v, want Unknown:#", lexErr.Token)
	}
	if lexErr.Token.Column != 21 {
		t.Errorf("offending column = %d, want 21", lexErr.Token.Column)
	}

	if !strings.Contains(err.Error(), `"#"`) || !strings.Contains(err.Error(), "column 21") {
		t.Errorf("message %q lacks character or position", err.Error())
	}
	if !mdwerror.HasCode(err, mdwerror.CodeLexical) {
		t.Error("LexError should carry CodeLexical")
	}
}

func TestTokenize_UnknownCharacters(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		lexeme string
		before int
	}{
		{"plus", "1 + 2", "+", 1},
		{"leading", "#", "#", 0},
		{"non-ascii letter", "define ä", "ä", 1},
		{"emoji", "return 😀", "😀", 1},
		{"invalid utf8", "f \xff", "\xff", 1},
		{"underscore", "my_name", "_", 1},
		{"minus", "return -1;", "-", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.input)
			var lexErr *LexError
			if !errors.As(err, &lexErr) {
				t.Fatalf("Tokenize(%q) error = %v, want *LexError", tt.input, err)
			}
			if lexErr.Token.Lexeme != tt.lexeme {
				t.Errorf("offending lexeme = %q, want %q", lexErr.Token.Lexeme, tt.lexeme)
			}
			if len(lexErr.Tokens) != tt.before {
				t.Errorf("tokens before failure = %d, want %d", len(lexErr.Tokens), tt.before)
			}
		})
	}
}

func TestTokenize_Permissive(t *testing.T) {
	tokens, err := TokenizeWithOptions("return 1 + 2;", Options{Mode: ModePermissive})
	if err != nil {
		t.Fatalf("permissive Tokenize() error = %v", err)
	}

	want := []Kind{KindReturn, KindInteger, KindUnknown, KindInteger, KindSemiColon}
	if got := kindsOf(tokens); !reflect.DeepEqual(got, want) {
		t.Errorf("kinds = %v, want %v", got, want)
	}
	if !HasUnknown(tokens) {
		t.Error("HasUnknown() = false, want true")
	}

	clean, _ := TokenizeWithOptions("return 1;", Options{Mode: ModePermissive})
	if HasUnknown(clean) {
		t.Error("HasUnknown() = true for clean input")
	}
}

func TestKindString(t *testing.T) {
	want := []string{
		"Identifier", "Integer", "Define", "Return", "OpenParen", "CloseParen",
		"OpenBrace", "CloseBrace", "SemiColon", "Unknown", "End",
	}

	kinds := Kinds()
	if len(kinds) != len(want) {
		t.Fatalf("Kinds() returned %d kinds, want %d", len(kinds), len(want))
	}
	for i, k := range kinds {
		if k.String() != want[i] {
			t.Errorf("Kind(%d).String() = %q, want %q", i, k.String(), want[i])
		}
	}

	if got := Kind(99).String(); got != "Kind(99)" {
		t.Errorf("out-of-range String() = %q", got)
	}
}

func TestTokenDescribe(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{EndToken, "End"},
		{Token{Kind: KindReturn, Lexeme: "return", Line: 2, Column: 5}, `Return "return" at line 2, column 5`},
		{Token{Kind: KindInteger, Lexeme: "1"}, `Integer "1"`},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.tok.Describe(); got != tt.want {
				t.Errorf("Describe() = %q, want %q", got, tt.want)
			}
		})
	}

	if got := (Token{Kind: KindIdentifier, Lexeme: "f"}).String(); got != "Identifier:f" {
		t.Errorf("String() = %q, want Identifier:f", got)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"strict", ModeStrict, false},
		{"", ModeStrict, false},
		{"Permissive", ModePermissive, false},
		{"lenient", ModeStrict, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if tt.wantErr && !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
				t.Errorf("error %v should carry CodeInvalidConfig", err)
			}
		})
	}
}
