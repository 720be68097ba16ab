// File: config_test.go
// Title: Configuration Tests
// Description: Tests for loading, defaults, validation and discovery.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test suite
// - 2026-10-19 v0.2.0: Tests for typed compiler configuration

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	mdwerror "github.com/msto63/koala/foundation/core/error"
	"github.com/msto63/koala/foundation/koala/lexer"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.General.LogLevel != "warn" || cfg.General.LogFormat != "text" {
		t.Errorf("General = %+v", cfg.General)
	}
	if cfg.Lexer.Mode != "strict" {
		t.Errorf("Lexer.Mode = %q, want strict", cfg.Lexer.Mode)
	}
	if cfg.Build.OutputDir != "." || cfg.Build.CachePath != filepath.Join(".koala", "cache.db") {
		t.Errorf("Build = %+v", cfg.Build)
	}
	if cfg.Build.WatchDebounce.Duration != 200*time.Millisecond {
		t.Errorf("WatchDebounce = %v", cfg.Build.WatchDebounce)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadFromString(t *testing.T) {
	tests := []struct {
		name    string
		content string
		format  Format
	}{
		{
			name: "toml",
			content: `
[general]
log_level = "debug"

[lexer]
mode = "permissive"

[parser]
allow_any_name = true
require_end = true

[build]
module_name = "demo"
target_triple = "x86_64-pc-linux-gnu"
cache_enabled = true
watch_debounce = "1s"
`,
			format: FormatTOML,
		},
		{
			name: "yaml",
			content: `
general:
  log_level: debug
lexer:
  mode: permissive
parser:
  allow_any_name: true
  require_end: true
build:
  module_name: demo
  target_triple: x86_64-pc-linux-gnu
  cache_enabled: true
  watch_debounce: 1s
`,
			format: FormatYAML,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFromString(tt.content, tt.format)
			if err != nil {
				t.Fatalf("LoadFromString() error = %v", err)
			}

			if cfg.General.LogLevel != "debug" || cfg.General.LogFormat != "text" {
				t.Errorf("General = %+v", cfg.General)
			}
			if cfg.Build.ModuleName != "demo" || !cfg.Build.CacheEnabled || cfg.Build.WatchDebounce.Duration != time.Second {
				t.Errorf("Build = %+v", cfg.Build)
			}

			lexOpts := cfg.LexerOptions()
			if lexOpts.Mode != lexer.ModePermissive {
				t.Errorf("LexerOptions().Mode = %v", lexOpts.Mode)
			}
			parseOpts := cfg.ParserOptions()
			if !parseOpts.AllowAnyName || !parseOpts.RequireEnd || parseOpts.Lexer.Mode != lexer.ModePermissive {
				t.Errorf("ParserOptions() = %+v", parseOpts)
			}
		})
	}
}

func TestLoadFromString_Empty(t *testing.T) {
	for _, format := range []Format{FormatTOML, FormatYAML} {
		t.Run(format.String(), func(t *testing.T) {
			cfg, err := LoadFromString("", format)
			if err != nil {
				t.Fatalf("LoadFromString(\"\") error = %v", err)
			}
			if cfg.Lexer.Mode != "strict" {
				t.Errorf("defaults not applied: %+v", cfg)
			}
		})
	}
}

func TestLoadFromString_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		format  Format
		code    mdwerror.Code
	}{
		{"toml syntax", "[general\nlog_level = 1", FormatTOML, mdwerror.CodeConfigError},
		{"toml unknown key", "[lexer]\nstyle = \"strict\"", FormatTOML, mdwerror.CodeConfigError},
		{"yaml unknown key", "lexer:\n  style: strict\n", FormatYAML, mdwerror.CodeConfigError},
		{"bad duration", "[build]\nwatch_debounce = \"soon\"", FormatTOML, mdwerror.CodeConfigError},
		{"bad mode", "[lexer]\nmode = \"lenient\"", FormatTOML, mdwerror.CodeInvalidConfig},
		{"bad level", "[general]\nlog_level = \"loud\"", FormatTOML, mdwerror.CodeInvalidConfig},
		{"bad format", "[general]\nlog_format = \"xml\"", FormatTOML, mdwerror.CodeInvalidConfig},
		{"quoted triple", "[build]\ntarget_triple = \"x86 64\"", FormatTOML, mdwerror.CodeInvalidConfig},
		{"negative debounce", "[build]\nwatch_debounce = \"-1s\"", FormatTOML, mdwerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromString(tt.content, tt.format)
			if err == nil {
				t.Fatal("LoadFromString() should fail")
			}
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("error = %v (code %v), want code %v", err, mdwerror.GetCode(err), tt.code)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("KOALA_TEST_OUT", filepath.Join(dir, "out"))

	path := writeFile(t, dir, "koala.toml", "[build]\noutput_dir = \"$KOALA_TEST_OUT\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Path != path {
		t.Errorf("Path = %q, want %q", cfg.Path, path)
	}
	if cfg.Build.OutputDir != filepath.Join(dir, "out") {
		t.Errorf("OutputDir = %q, env not expanded", cfg.Build.OutputDir)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
		code mdwerror.Code
	}{
		{"missing file", filepath.Join(dir, "absent.toml"), mdwerror.CodeNotFound},
		{"unknown extension", writeFile(t, dir, "koala.ini", ""), mdwerror.CodeInvalidInput},
		{"invalid content", writeFile(t, dir, "bad.yaml", "lexer: [\n"), mdwerror.CodeConfigError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("Load() error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"koala.toml", FormatTOML, false},
		{"koala.YAML", FormatYAML, false},
		{"dir/koala.yml", FormatYAML, false},
		{"koala.json", FormatTOML, true},
		{"koala", FormatTOML, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if (err != nil) != tt.wantErr || got != tt.want {
				t.Errorf("FormatFromPath(%q) = %v, %v", tt.path, got, err)
			}
		})
	}
}

func TestDiscoverWithOptions(t *testing.T) {
	t.Run("no file yields defaults", func(t *testing.T) {
		opts := DefaultDiscoveryOptions()
		opts.Paths = []string{t.TempDir()}

		cfg, err := DiscoverWithOptions(opts)
		if err != nil {
			t.Fatalf("DiscoverWithOptions() error = %v", err)
		}
		if cfg.Path != "" || cfg.Lexer.Mode != "strict" {
			t.Errorf("cfg = %+v", cfg)
		}
	})

	t.Run("toml preferred over yaml", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "koala.yaml", "lexer:\n  mode: strict\n")
		want := writeFile(t, dir, "koala.toml", "[lexer]\nmode = \"permissive\"\n")

		opts := DefaultDiscoveryOptions()
		opts.Paths = []string{dir}

		cfg, err := DiscoverWithOptions(opts)
		if err != nil {
			t.Fatalf("DiscoverWithOptions() error = %v", err)
		}
		if cfg.Path != want || cfg.Lexer.Mode != "permissive" {
			t.Errorf("cfg = %+v", cfg)
		}
	})

	t.Run("broken file is an error", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "koala.yml", "lexer:\n  mode: shouting\n")

		opts := DefaultDiscoveryOptions()
		opts.Paths = []string{dir}

		if _, err := DiscoverWithOptions(opts); !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
			t.Errorf("DiscoverWithOptions() error = %v, want INVALID_CONFIG", err)
		}
	})
}

func TestDiscover_Env(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.yaml", "parser:\n  require_end: true\n")
	t.Setenv(EnvConfigPath, path)

	cfg, err := Discover()
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if !cfg.Parser.RequireEnd || cfg.Path != path {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestDuration_Text(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("1h30m")); err != nil || d.Duration != 90*time.Minute {
		t.Errorf("UnmarshalText() = %v, %v", d.Duration, err)
	}
	if err := d.UnmarshalText([]byte("")); err == nil {
		t.Error("UnmarshalText(\"\") should fail")
	}

	out, err := Duration{5 * time.Second}.MarshalText()
	if err != nil || string(out) != "5s" {
		t.Errorf("MarshalText() = %q, %v", out, err)
	}
}
