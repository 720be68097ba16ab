// File: parser.go
// Title: koala Recursive Descent Parser
// Description: Converts a token slice into an ast.Module. One method per
//              grammar production; the first mismatch aborts the parse.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial parser implementation

package parser

import (
	"strconv"

	mdwlog "github.com/msto63/koala/foundation/core/log"
	"github.com/msto63/koala/foundation/koala/ast"
	"github.com/msto63/koala/foundation/koala/lexer"
)

// Parser implements recursive descent parsing for koala
type Parser struct {
	logger  *mdwlog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger *mdwlog.Logger

	// Lexer configures the scan done by ParseSource
	Lexer lexer.Options

	// AllowAnyName accepts any token as a definition name instead of
	// requiring an Identifier
	AllowAnyName bool

	// RequireEnd rejects tokens left over after the last definition
	RequireEnd bool
}

// New creates a new koala parser with the given options
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "koala-parser"),
		options: opts,
	}
}

// Parse builds a module from tokens. The token slice is only read.
func (p *Parser) Parse(tokens []lexer.Token) (*ast.Module, error) {
	p.logger.Debug("Starting koala parsing", mdwlog.Fields{
		"tokens": len(tokens),
	})

	c := &cursor{tokens: tokens, options: &p.options}

	module, err := c.parseModule()
	if err == nil && p.options.RequireEnd {
		_, err = c.expect(lexer.KindEnd, "parser.parseModule")
	}
	if err != nil {
		p.logger.Debug("koala parsing failed", mdwlog.Fields{
			"consumed": c.index,
			"error":    err.Error(),
		})
		return nil, err
	}

	if c.index < len(tokens) {
		p.logger.Debug("Trailing tokens ignored", mdwlog.Fields{
			"next":      tokens[c.index].String(),
			"remaining": len(tokens) - c.index,
		})
	}

	p.logger.Debug("koala parsing completed successfully", mdwlog.Fields{
		"definitions": len(module.Definitions),
	})
	return module, nil
}

// ParseSource tokenizes source with the configured lexer options and parses
// the result. Lexical failures are returned unchanged as *lexer.LexError.
func (p *Parser) ParseSource(source string) (*ast.Module, error) {
	tokens, err := lexer.TokenizeWithOptions(source, p.options.Lexer)
	if err != nil {
		return nil, err
	}
	return p.Parse(tokens)
}

// Parse parses tokens with default options
func Parse(tokens []lexer.Token) (*ast.Module, error) {
	return New(Options{}).Parse(tokens)
}

// ParseSource tokenizes and parses source with default options
func ParseSource(source string) (*ast.Module, error) {
	return New(Options{}).ParseSource(source)
}

// cursor is the state of one parse: a forward index into the token slice.
// Reads past the end yield lexer.EndToken and never move the index beyond
// len(tokens).
type cursor struct {
	tokens  []lexer.Token
	index   int
	options *Options
}

func (c *cursor) peek() lexer.Token {
	if c.index >= len(c.tokens) {
		return lexer.EndToken
	}
	return c.tokens[c.index]
}

func (c *cursor) next() lexer.Token {
	tok := c.peek()
	if c.index < len(c.tokens) {
		c.index++
	}
	return tok
}

// expect consumes one token and fails if it is not of the given kind
func (c *cursor) expect(kind lexer.Kind, operation string) (lexer.Token, error) {
	tok := c.next()
	if tok.Kind != kind {
		return tok, newSyntaxError(kind, tok, operation)
	}
	return tok, nil
}

// parseModule parses Define* and stops, without consuming, at the first
// token that does not start a definition
func (c *cursor) parseModule() (*ast.Module, error) {
	module := &ast.Module{
		Definitions: make([]*ast.Define, 0),
		Pos:         position(c.peek()),
	}

	for c.peek().Kind == lexer.KindDefine {
		def, err := c.parseDefine()
		if err != nil {
			return nil, err
		}
		module.Definitions = append(module.Definitions, def)
	}

	return module, nil
}

// parseDefine parses "define" Identifier "(" ")" "{" Statement* "}"
func (c *cursor) parseDefine() (*ast.Define, error) {
	const op = "parser.parseDefine"

	keyword, err := c.expect(lexer.KindDefine, op)
	if err != nil {
		return nil, err
	}

	var name lexer.Token
	if c.options.AllowAnyName {
		name = c.next()
	} else if name, err = c.expect(lexer.KindIdentifier, op); err != nil {
		return nil, err
	}

	for _, kind := range []lexer.Kind{lexer.KindOpenParen, lexer.KindCloseParen, lexer.KindOpenBrace} {
		if _, err := c.expect(kind, op); err != nil {
			return nil, err
		}
	}

	def := &ast.Define{
		Name:  name.Lexeme,
		Stmts: make([]ast.Statement, 0),
		Pos:   position(keyword),
	}

	// An unterminated body leaves the loop on End so that the closing
	// expect reports the missing CloseBrace
	for k := c.peek().Kind; k != lexer.KindCloseBrace && k != lexer.KindEnd; k = c.peek().Kind {
		stmt, err := c.parseStatement()
		if err != nil {
			return nil, err
		}
		def.Stmts = append(def.Stmts, stmt)
	}

	if _, err := c.expect(lexer.KindCloseBrace, op); err != nil {
		return nil, err
	}
	return def, nil
}

// parseStatement parses "return" Expression ";"
func (c *cursor) parseStatement() (ast.Statement, error) {
	const op = "parser.parseStatement"

	keyword, err := c.expect(lexer.KindReturn, op)
	if err != nil {
		return nil, err
	}

	value, err := c.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := c.expect(lexer.KindSemiColon, op); err != nil {
		return nil, err
	}

	return &ast.ReturnStatement{Value: value, Pos: position(keyword)}, nil
}

// parseExpression parses an Integer literal
func (c *cursor) parseExpression() (ast.Expression, error) {
	tok, err := c.expect(lexer.KindInteger, "parser.parseExpression")
	if err != nil {
		return nil, err
	}

	value, convErr := strconv.ParseInt(tok.Lexeme, 10, 32)
	if convErr != nil {
		return nil, newLiteralError(tok, convErr)
	}

	return &ast.IntegerLiteral{
		Value: int32(value),
		Raw:   tok.Lexeme,
		Pos:   position(tok),
	}, nil
}

func position(tok lexer.Token) ast.Position {
	return ast.Position{Line: tok.Line, Column: tok.Column, Offset: tok.Position}
}
