// File: codes.go
// Title: Error Code Definitions
// Description: Error codes classifying compiler, configuration and storage
//              failures.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Replaced service codes with compiler codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Front end
	CodeLexical      Code = "LEXICAL"
	CodeSyntax       Code = "SYNTAX"
	CodeIntegerRange Code = "INTEGER_RANGE"

	// Back end
	CodeCodegen         Code = "CODEGEN"
	CodeDuplicateSymbol Code = "DUPLICATE_SYMBOL"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Storage
	CodeIOError    Code = "IO_ERROR"
	CodeCacheError Code = "CACHE_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeLexical, CodeSyntax, CodeIntegerRange,
		CodeCodegen, CodeDuplicateSymbol,
		CodeConfigError, CodeInvalidConfig,
		CodeIOError, CodeCacheError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLexical, CodeSyntax, CodeIntegerRange:
		return "frontend"
	case CodeCodegen, CodeDuplicateSymbol:
		return "backend"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeIOError, CodeCacheError:
		return "storage"
	default:
		return "generic"
	}
}

// IsSourceError reports whether the code describes a defect in the user's
// program rather than in the toolchain or its environment
func (c Code) IsSourceError() bool {
	switch c {
	case CodeLexical, CodeSyntax, CodeIntegerRange, CodeCodegen, CodeDuplicateSymbol:
		return true
	default:
		return false
	}
}
