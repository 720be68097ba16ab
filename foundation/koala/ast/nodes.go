// File: nodes.go
// Title: koala AST Node Definitions
// Description: Node types for modules, definitions, statements and
//              expressions, with string forms and structural validation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
	"strconv"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns the node in koala source form
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node
	Position() Position

	// Validate checks structural invariants of the node and its children
	Validate() error
}

// Position represents a position in the source code
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
	Offset int // Byte offset (0-based)
}

// String renders the position as line:column
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Module is the root of a parsed program
type Module struct {
	Definitions []*Define `yaml:"definitions" json:"definitions"`
	Pos         Position  `yaml:"-" json:"-"`
}

// Define is one top-level function definition
type Define struct {
	Name  string      `yaml:"name" json:"name"`
	Stmts []Statement `yaml:"stmts" json:"stmts"`
	Pos   Position    `yaml:"-" json:"-"`
}

// Statement is implemented by every statement node
type Statement interface {
	Node
	stmtNode() // marker method
}

// Expression is implemented by every expression node
type Expression interface {
	Node
	exprNode() // marker method
}

// ReturnStatement returns the value of an expression
type ReturnStatement struct {
	Value Expression `yaml:"return" json:"return"`
	Pos   Position   `yaml:"-" json:"-"`
}

// IntegerLiteral is a decimal integer constant
type IntegerLiteral struct {
	Value int32    `yaml:"integer" json:"integer"`
	Raw   string   `yaml:"-" json:"-"` // lexeme as written, e.g. "007"
	Pos   Position `yaml:"-" json:"-"`
}

func (m *Module) String() string {
	return NewPrinter().Print(m)
}

func (m *Module) Accept(visitor Visitor) interface{} {
	return visitor.VisitModule(m)
}

func (m *Module) Position() Position {
	return m.Pos
}

func (m *Module) Validate() error {
	for i, def := range m.Definitions {
		if def == nil {
			return fmt.Errorf("definition %d is nil", i)
		}
		if err := def.Validate(); err != nil {
			return fmt.Errorf("definition %d: %w", i, err)
		}
	}
	return nil
}

// Lookup returns the first definition with the given name
func (m *Module) Lookup(name string) (*Define, bool) {
	for _, def := range m.Definitions {
		if def.Name == name {
			return def, true
		}
	}
	return nil, false
}

// Names returns the definition names in declaration order
func (m *Module) Names() []string {
	names := make([]string, len(m.Definitions))
	for i, def := range m.Definitions {
		names[i] = def.Name
	}
	return names
}

func (d *Define) String() string {
	return NewPrinter().Print(d)
}

func (d *Define) Accept(visitor Visitor) interface{} {
	return visitor.VisitDefine(d)
}

func (d *Define) Position() Position {
	return d.Pos
}

func (d *Define) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("definition name is required")
	}
	for i, stmt := range d.Stmts {
		if stmt == nil {
			return fmt.Errorf("%s: statement %d is nil", d.Name, i)
		}
		if err := stmt.Validate(); err != nil {
			return fmt.Errorf("%s: statement %d: %w", d.Name, i, err)
		}
	}
	return nil
}

// FirstReturn returns the first return statement of the body and its index
// in Stmts, or nil and -1 when the body has none
func (d *Define) FirstReturn() (*ReturnStatement, int) {
	for i, stmt := range d.Stmts {
		if ret, ok := stmt.(*ReturnStatement); ok {
			return ret, i
		}
	}
	return nil, -1
}

func (rs *ReturnStatement) String() string {
	if rs.Value == nil {
		return "return <nil>;"
	}
	return "return " + rs.Value.String() + ";"
}

func (rs *ReturnStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitReturn(rs)
}

func (rs *ReturnStatement) Position() Position {
	return rs.Pos
}

func (rs *ReturnStatement) Validate() error {
	if rs.Value == nil {
		return fmt.Errorf("return value is required")
	}
	return rs.Value.Validate()
}

func (rs *ReturnStatement) stmtNode() {}

func (il *IntegerLiteral) String() string {
	return strconv.FormatInt(int64(il.Value), 10)
}

func (il *IntegerLiteral) Accept(visitor Visitor) interface{} {
	return visitor.VisitInteger(il)
}

func (il *IntegerLiteral) Position() Position {
	return il.Pos
}

func (il *IntegerLiteral) Validate() error {
	if il.Raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(il.Raw, 10, 32)
	if err != nil {
		return fmt.Errorf("integer literal %q: %w", il.Raw, err)
	}
	if int32(v) != il.Value {
		return fmt.Errorf("integer literal %q does not match value %d", il.Raw, il.Value)
	}
	return nil
}

func (il *IntegerLiteral) exprNode() {}
