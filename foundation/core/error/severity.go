// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels and the default severity of each error code.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Compiler code mapping

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow is used for failures the toolchain recovers from on its own,
	// e.g. an unavailable build cache
	SeverityLow Severity = iota

	// SeverityMedium is used for defects in the compiled program
	SeverityMedium

	// SeverityHigh is used for environment failures: unreadable files,
	// broken configuration
	SeverityHigh

	// SeverityCritical is used for broken toolchain invariants
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode returns the default severity for a code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeInvalidConfig, CodeIOError:
		return SeverityHigh
	case CodeCacheError, CodeNotFound, CodeInvalidInput:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
