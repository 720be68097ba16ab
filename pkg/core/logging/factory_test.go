package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	mdwlog "github.com/msto63/koala/foundation/core/log"
)

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("koala")

	if cfg.Name != "koala" || cfg.Level != "warn" || cfg.Format != "text" {
		t.Errorf("DefaultLoggerConfig() = %+v", cfg)
	}
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level    string
		expected mdwlog.Level
	}{
		{"trace", mdwlog.LevelTrace},
		{"debug", mdwlog.LevelDebug},
		{"info", mdwlog.LevelInfo},
		{"warn", mdwlog.LevelWarn},
		{"error", mdwlog.LevelError},
		{"bogus", mdwlog.LevelInfo},
		{"", mdwlog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := NewLogger(LoggerConfig{Level: tt.level, Output: &bytes.Buffer{}})
			if got := logger.GetLevel(); got != tt.expected {
				t.Errorf("level = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNewLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Name: "test", Level: "info", Format: "json", Output: &buf})

	logger.Info("hello", mdwlog.Fields{"key": "value"})

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if decoded["message"] != "hello" {
		t.Errorf("message = %v", decoded["message"])
	}
}

func TestNewLogger_AdditionalOutputs(t *testing.T) {
	var primary, extra bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:             "info",
		Format:            "text",
		Output:            &primary,
		AdditionalOutputs: []io.Writer{&extra},
	})

	logger.Warn("shared line")

	if !strings.Contains(primary.String(), "shared line") || primary.String() != extra.String() {
		t.Errorf("outputs differ: %q vs %q", primary.String(), extra.String())
	}
}

func TestNewCLILogger(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		verbose  bool
		expected mdwlog.Level
	}{
		{"default", "", false, mdwlog.LevelWarn},
		{"configured", "error", false, mdwlog.LevelError},
		{"verbose wins", "error", true, mdwlog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewCLILogger(&bytes.Buffer{}, tt.level, "", tt.verbose).GetLevel(); got != tt.expected {
				t.Errorf("level = %v, want %v", got, tt.expected)
			}
		})
	}
}
