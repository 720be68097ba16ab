// ============================================================================
// koala - Compiler Front End
// ============================================================================
//
// Package:     version
// Description: Central version information for the compiler and its caches
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the koala toolchain
const (
	// Compiler release
	Compiler = "0.1.0"

	// Component versions. Bump one whenever its output for the same input
	// changes so cached artifacts are invalidated.
	Lexer   = "1.0.0"
	Parser  = "1.0.0"
	Codegen = "1.0.0"
)

// Set by the linker at release time
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "lexer":
		return Lexer
	case "parser":
		return Parser
	case "codegen":
		return Codegen
	default:
		return Compiler
	}
}

// Fingerprint identifies the pipeline that produced an artifact
func Fingerprint(backend string) string {
	return fmt.Sprintf("koala/%s lexer/%s parser/%s codegen/%s backend/%s",
		Compiler, Lexer, Parser, Codegen, backend)
}

// Info describes the running binary
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns version information for the running binary
func Get() Info {
	return Info{
		Version:   Compiler,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}
