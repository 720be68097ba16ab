// File: doc.go
// Title: koala AST Package Documentation
// Description: Abstract syntax tree for koala programs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial AST definitions

/*
Package ast defines the abstract syntax tree produced by the koala parser.

A Module holds Define nodes in declaration order. A Define holds a name and
a list of Statement values. Statement and Expression are closed sum types:
each is a sealed interface whose only implementations live in this package
(ReturnStatement and IntegerLiteral today). Consumers match them with a type
switch or through a Visitor.

Trees are built bottom-up in one parse pass and are not modified afterwards.
Nodes reference their children only.
*/
package ast
