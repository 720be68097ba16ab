// File: doc.go
// Title: Configuration Package Documentation
// Description: Typed koala configuration loaded from TOML or YAML files.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial map based configuration
// - 2026-10-19 v0.2.0: Replaced with typed compiler configuration

// Package config loads the koala configuration.
//
// A configuration file has four sections:
//
//	[general]
//	log_level = "warn"
//	log_format = "text"
//
//	[lexer]
//	mode = "strict"          # strict | permissive
//
//	[parser]
//	allow_any_name = false
//	require_end = false
//
//	[build]
//	output_dir = "."
//	module_name = ""
//	target_triple = ""
//	cache_enabled = false
//	cache_path = "./.koala/cache.db"
//	watch_debounce = "200ms"
//
// The same keys are accepted in YAML. Missing values are filled by
// applyDefaults; Validate rejects values the compiler cannot use.
package config
