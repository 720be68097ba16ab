// File: discovery.go
// Title: Configuration File Discovery
// Description: Locates the configuration file from the environment or the
//              working directory.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-19 v0.2.0: koala file names and KOALA_CONFIG override

package config

import (
	"os"
	"path/filepath"

	mdwerror "github.com/msto63/koala/foundation/core/error"
)

// EnvConfigPath names the variable that overrides discovery
const EnvConfigPath = "KOALA_CONFIG"

// DiscoveryOptions defines where Discover looks for a configuration file
type DiscoveryOptions struct {
	Paths      []string // Directories to search
	Filenames  []string // Base filenames without extension
	Extensions []string // Extensions to try in order
}

// DefaultDiscoveryOptions returns the standard search locations
func DefaultDiscoveryOptions() DiscoveryOptions {
	return DiscoveryOptions{
		Paths:      []string{"."},
		Filenames:  []string{"koala"},
		Extensions: []string{".toml", ".yaml", ".yml"},
	}
}

// Discover loads the file named by $KOALA_CONFIG, else the first file
// found with the default options, else the defaults
func Discover() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}
	return DiscoverWithOptions(DefaultDiscoveryOptions())
}

// DiscoverWithOptions searches the given locations. Finding no file is not
// an error; a file that exists but fails to load is.
func DiscoverWithOptions(options DiscoveryOptions) (*Config, error) {
	path, found := Find(options)
	if !found {
		return Default(), nil
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, mdwerror.Wrap(err, "found config file "+path+" but failed to load").
			WithOperation("config.Discover").
			WithDetail("configPath", path)
	}
	return cfg, nil
}

// Find returns the first existing configuration file
func Find(options DiscoveryOptions) (string, bool) {
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				candidate := filepath.Join(dir, name+ext)
				if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
					return candidate, true
				}
			}
		}
	}
	return "", false
}
