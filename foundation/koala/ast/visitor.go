// File: visitor.go
// Title: koala AST Visitor Pattern Implementation
// Description: Visitor interface, a source printer and a debug tree dumper,
//              plus Inspect for generic depth-first traversal.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial visitor pattern implementation

package ast

import (
	"fmt"
	"strings"
)

// Visitor interface for traversing AST nodes using the visitor pattern
type Visitor interface {
	VisitModule(module *Module) interface{}
	VisitDefine(define *Define) interface{}
	VisitReturn(stmt *ReturnStatement) interface{}
	VisitInteger(expr *IntegerLiteral) interface{}
}

// BaseVisitor provides no-op implementations for all visitor methods.
// Embed it in concrete visitors to only override needed methods.
type BaseVisitor struct{}

func (BaseVisitor) VisitModule(*Module) interface{}          { return nil }
func (BaseVisitor) VisitDefine(*Define) interface{}          { return nil }
func (BaseVisitor) VisitReturn(*ReturnStatement) interface{} { return nil }
func (BaseVisitor) VisitInteger(*IntegerLiteral) interface{} { return nil }

// Inspect traverses the tree rooted at node depth-first, calling fn for each
// node. Children are skipped when fn returns false.
func Inspect(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	switch n := node.(type) {
	case *Module:
		for _, def := range n.Definitions {
			Inspect(def, fn)
		}
	case *Define:
		for _, stmt := range n.Stmts {
			Inspect(stmt, fn)
		}
	case *ReturnStatement:
		if n.Value != nil {
			Inspect(n.Value, fn)
		}
	case *IntegerLiteral:
	}
}

// Printer renders a tree back to koala source, one statement per line with
// four spaces of indentation per block level
type Printer struct {
	buffer strings.Builder
	indent int
}

// NewPrinter creates a new printer
func NewPrinter() *Printer {
	return &Printer{}
}

// Print resets the printer and returns the source form of node
func (p *Printer) Print(node Node) string {
	p.Reset()
	node.Accept(p)
	return p.String()
}

// String returns the text rendered so far
func (p *Printer) String() string {
	return p.buffer.String()
}

// Reset clears the internal buffer
func (p *Printer) Reset() {
	p.buffer.Reset()
	p.indent = 0
}

func (p *Printer) writeIndent() {
	p.buffer.WriteString(strings.Repeat(" ", 4*p.indent))
}

func (p *Printer) VisitModule(module *Module) interface{} {
	for _, def := range module.Definitions {
		def.Accept(p)
	}
	return nil
}

func (p *Printer) VisitDefine(define *Define) interface{} {
	p.writeIndent()
	fmt.Fprintf(&p.buffer, "define %s() {\n", define.Name)

	p.indent++
	for _, stmt := range define.Stmts {
		stmt.Accept(p)
	}
	p.indent--

	p.writeIndent()
	p.buffer.WriteString("}\n")
	return nil
}

func (p *Printer) VisitReturn(stmt *ReturnStatement) interface{} {
	p.writeIndent()
	p.buffer.WriteString("return ")
	if stmt.Value != nil {
		stmt.Value.Accept(p)
	}
	p.buffer.WriteString(";\n")
	return nil
}

func (p *Printer) VisitInteger(expr *IntegerLiteral) interface{} {
	p.buffer.WriteString(expr.String())
	return nil
}

// TreeVisitor renders the node structure with source positions, for
// debugging the parser
type TreeVisitor struct {
	buffer strings.Builder
	depth  int
}

// NewTreeVisitor creates a new tree visitor
func NewTreeVisitor() *TreeVisitor {
	return &TreeVisitor{}
}

// String returns the built tree representation
func (tv *TreeVisitor) String() string {
	return tv.buffer.String()
}

func (tv *TreeVisitor) line(format string, args ...interface{}) {
	tv.buffer.WriteString(strings.Repeat("  ", tv.depth))
	fmt.Fprintf(&tv.buffer, format, args...)
	tv.buffer.WriteByte('\n')
}

func (tv *TreeVisitor) VisitModule(module *Module) interface{} {
	tv.line("Module (%d definitions)", len(module.Definitions))
	tv.depth++
	for _, def := range module.Definitions {
		def.Accept(tv)
	}
	tv.depth--
	return nil
}

func (tv *TreeVisitor) VisitDefine(define *Define) interface{} {
	tv.line("Define %s @%s", define.Name, define.Pos)
	tv.depth++
	for _, stmt := range define.Stmts {
		stmt.Accept(tv)
	}
	tv.depth--
	return nil
}

func (tv *TreeVisitor) VisitReturn(stmt *ReturnStatement) interface{} {
	tv.line("Return @%s", stmt.Pos)
	tv.depth++
	if stmt.Value != nil {
		stmt.Value.Accept(tv)
	}
	tv.depth--
	return nil
}

func (tv *TreeVisitor) VisitInteger(expr *IntegerLiteral) interface{} {
	tv.line("Integer %d @%s", expr.Value, expr.Pos)
	return nil
}
