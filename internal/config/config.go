// SPDX-FileCopyrightText: 2025 The Peek Authors
// SPDX-License-Identifier: EUPL-1.2

// Package config loads peek's optional TOML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/janderssonse/peek/internal/domain"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the structure of config.toml.
type Config struct {
	// Verbose enables progress messages on stderr.
	Verbose bool `toml:"verbose"`

	Syntax SyntaxConfig `toml:"syntax"`
}

// SyntaxConfig holds grammar selection overrides.
type SyntaxConfig struct {
	// Aliases maps a file extension to a lexer name, e.g. tmpl = "go-html-template".
	Aliases map[string]string `toml:"aliases"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Syntax: SyntaxConfig{Aliases: map[string]string{}},
	}
}

// Load reads the config file at path. A missing file yields the defaults unless
// required is set, which is the case for a path given explicitly on the command line.
func Load(path string, required bool) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // config path chosen by the user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return Default(), nil
		}

		return nil, fmt.Errorf("%w: failed to read config: %w", domain.ErrConfig, err)
	}

	return Parse(data)
}

// Parse decodes TOML data on top of the defaults. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %w", domain.ErrConfig, err)
	}

	if cfg.Syntax.Aliases == nil {
		cfg.Syntax.Aliases = map[string]string{}
	}

	return cfg, nil
}
