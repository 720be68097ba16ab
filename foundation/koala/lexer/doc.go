// File: doc.go
// Title: koala Lexer Package Documentation
// Description: Lexical analysis for koala source text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial lexer implementation

/*
Package lexer turns koala source text into a sequence of tokens.

The scanner is a single left-to-right pass over ASCII character classes:

  - whitespace is skipped
  - ( ) { } ; are single-character tokens
  - a digit starts a maximal digit run (Integer)
  - a letter starts a maximal alphanumeric run, which is Define or Return
    when it spells exactly "define" or "return" and Identifier otherwise
  - any other character is Unknown

In strict mode (the default) the first Unknown character stops the scan and
Tokenize returns a *LexError holding the tokens produced before it. In
permissive mode Unknown tokens are emitted and scanning continues.

The end of input is never materialized as a token in the returned slice;
EndToken stands in for it wherever a consumer reads past the last token.
*/
package lexer
