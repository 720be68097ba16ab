// File: config.go
// Title: Configuration Loading
// Description: Typed configuration with TOML and YAML decoding, defaults
//              and conversion into lexer and parser options.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Typed sections for the koala compiler

package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/koala/foundation/core/error"
	"github.com/msto63/koala/foundation/koala/lexer"
	"github.com/msto63/koala/foundation/koala/parser"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatFromPath detects the format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatTOML, mdwerror.Newf("unsupported config file extension %q", filepath.Ext(path)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.FormatFromPath").
			WithDetail("path", path)
	}
}

// Config holds the complete compiler configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Lexer   LexerConfig   `toml:"lexer" yaml:"lexer"`
	Parser  ParserConfig  `toml:"parser" yaml:"parser"`
	Build   BuildConfig   `toml:"build" yaml:"build"`

	// Path is the file the configuration was loaded from, empty for defaults
	Path string `toml:"-" yaml:"-"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// LexerConfig holds tokenizer settings
type LexerConfig struct {
	Mode string `toml:"mode" yaml:"mode"`
}

// ParserConfig holds parser settings
type ParserConfig struct {
	AllowAnyName bool `toml:"allow_any_name" yaml:"allow_any_name"`
	RequireEnd   bool `toml:"require_end" yaml:"require_end"`
}

// BuildConfig holds code generation and cache settings
type BuildConfig struct {
	OutputDir     string   `toml:"output_dir" yaml:"output_dir"`
	ModuleName    string   `toml:"module_name" yaml:"module_name"`
	TargetTriple  string   `toml:"target_triple" yaml:"target_triple"`
	CacheEnabled  bool     `toml:"cache_enabled" yaml:"cache_enabled"`
	CachePath     string   `toml:"cache_path" yaml:"cache_path"`
	WatchDebounce Duration `toml:"watch_debounce" yaml:"watch_debounce"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		code := mdwerror.CodeIOError
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return nil, mdwerror.Wrap(err, "read config file").
			WithCode(code).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg, err := LoadFromString(string(data), format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "load "+path).WithDetail("path", path)
	}
	cfg.Path = path
	return cfg, nil
}

// LoadFromString decodes configuration content, applies defaults and
// validates the result
func LoadFromString(content string, format Format) (*Config, error) {
	var cfg Config

	var err error
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewBufferString(content))
		dec.KnownFields(true)
		if err = dec.Decode(&cfg); errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		var meta toml.MetaData
		meta, err = toml.Decode(content, &cfg)
		if err == nil {
			if undecoded := meta.Undecoded(); len(undecoded) > 0 {
				err = mdwerror.Newf("unknown key %q", undecoded[0].String())
			}
		}
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "parse "+format.String()+" config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.LoadFromString")
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Lexer
	if c.Lexer.Mode == "" {
		c.Lexer.Mode = lexer.ModeStrict.String()
	}

	// Build
	if c.Build.OutputDir == "" {
		c.Build.OutputDir = "."
	}
	if c.Build.CachePath == "" {
		c.Build.CachePath = filepath.Join(".koala", "cache.db")
	}
	if c.Build.WatchDebounce.Duration == 0 {
		c.Build.WatchDebounce.Duration = 200 * time.Millisecond
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.Build.OutputDir = os.ExpandEnv(c.Build.OutputDir)
	c.Build.CachePath = os.ExpandEnv(c.Build.CachePath)
}

// LexerOptions converts the lexer section. The mode has been validated.
func (c *Config) LexerOptions() lexer.Options {
	mode, _ := lexer.ParseMode(c.Lexer.Mode)
	return lexer.Options{Mode: mode}
}

// ParserOptions converts the parser section. The logger is left for the
// caller to set.
func (c *Config) ParserOptions() parser.Options {
	return parser.Options{
		Lexer:        c.LexerOptions(),
		AllowAnyName: c.Parser.AllowAnyName,
		RequireEnd:   c.Parser.RequireEnd,
	}
}
