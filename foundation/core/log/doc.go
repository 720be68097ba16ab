// Package log provides structured logging for the koala toolchain.
//
// Package: log
// Title: koala Structured Logging
// Description: Leveled, structured logging with immutable context (component
//              name, compilation ID, custom fields), pluggable output formats and
//              timers for measuring compiler phases. Coded errors from the
//              foundation error package are logged with their code, severity
//              and details.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Compilation IDs replace request/user context, deterministic field order
//
// Usage:
//
//	import mdwlog "github.com/msto63/koala/foundation/core/log"
//
//	logger := mdwlog.NewWithConfig(mdwlog.Config{
//		Level:  mdwlog.LevelDebug,
//		Format: mdwlog.FormatText,
//		Output: os.Stderr,
//	}).WithField("component", "koala-parser")
//
//	logger.Debug("parsing", mdwlog.Fields{"tokens": 12})
//
//	timer := logger.StartTimer("codegen")
//	// ... generate
//	timer.Stop()
package log
