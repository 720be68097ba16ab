// File: dump.go
// Title: koala AST Dump Formats
// Description: Serializes a module as koala source, a debug tree, YAML or
//              JSON.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package ast

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// DumpFormat selects the output of Dump
type DumpFormat string

const (
	DumpSource DumpFormat = "text"
	DumpTree   DumpFormat = "tree"
	DumpYAML   DumpFormat = "yaml"
	DumpJSON   DumpFormat = "json"
)

// ParseDumpFormat parses a format name
func ParseDumpFormat(s string) (DumpFormat, error) {
	switch f := DumpFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case DumpSource, DumpTree, DumpYAML, DumpJSON:
		return f, nil
	case "", "source":
		return DumpSource, nil
	default:
		return "", fmt.Errorf("unsupported dump format %q (want text, tree, yaml or json)", s)
	}
}

// Dump writes module to w in the given format
func Dump(w io.Writer, module *Module, format DumpFormat) error {
	switch format {
	case DumpSource:
		_, err := io.WriteString(w, NewPrinter().Print(module))
		return err
	case DumpTree:
		tv := NewTreeVisitor()
		module.Accept(tv)
		_, err := io.WriteString(w, tv.String())
		return err
	case DumpYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(module); err != nil {
			return err
		}
		return enc.Close()
	case DumpJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(module)
	default:
		return fmt.Errorf("unsupported dump format %q", format)
	}
}
