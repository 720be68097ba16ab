// File: validation.go
// Title: Configuration Validation
// Description: Checks loaded values before any component consumes them.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Rule based validation of map values
// - 2026-10-19 v0.2.0: Validation of typed compiler sections

package config

import (
	"strings"

	mdwerror "github.com/msto63/koala/foundation/core/error"
	mdwlog "github.com/msto63/koala/foundation/core/log"
	"github.com/msto63/koala/foundation/koala/lexer"
)

// Validate reports the first invalid value as an INVALID_CONFIG error
func (c *Config) Validate() error {
	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, err)
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, err)
	}
	if _, err := lexer.ParseMode(c.Lexer.Mode); err != nil {
		return invalid("lexer.mode", c.Lexer.Mode, err)
	}
	if strings.ContainsAny(c.Build.ModuleName, "\"\n") {
		return invalid("build.module_name", c.Build.ModuleName, nil)
	}
	if strings.ContainsAny(c.Build.TargetTriple, " \"\n") {
		return invalid("build.target_triple", c.Build.TargetTriple, nil)
	}
	if c.Build.CacheEnabled && strings.TrimSpace(c.Build.CachePath) == "" {
		return invalid("build.cache_path", c.Build.CachePath, nil)
	}
	if c.Build.WatchDebounce.Duration < 0 {
		return invalid("build.watch_debounce", c.Build.WatchDebounce.String(), nil)
	}
	return nil
}

func invalid(key, value string, cause error) error {
	err := mdwerror.Newf("invalid value %q for %s", value, key).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("key", key)
	if cause != nil {
		err = err.WithCause(cause)
	}
	return err
}
