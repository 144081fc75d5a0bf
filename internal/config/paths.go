// SPDX-FileCopyrightText: 2025 The Peek Authors
// SPDX-License-Identifier: EUPL-1.2

package config

import (
	"os"
	"path/filepath"
	"strings"
)

// AppName names peek's directory under the XDG config home.
const AppName = "peek"

// GetXDGConfigHome returns XDG config directory.
func GetXDGConfigHome() string {
	return GetXDGConfigHomeWithEnv(os.Getenv("XDG_CONFIG_HOME"))
}

// GetXDGConfigHomeWithEnv returns XDG config directory with custom environment override for testing.
func GetXDGConfigHomeWithEnv(xdgConfigHome string) string {
	if xdgConfigHome != "" {
		return xdgConfigHome
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config")
	}

	return ""
}

// GetConfigPath returns the default config file path, honouring PEEK_CONFIG.
func GetConfigPath() string {
	return GetConfigPathWithEnv(os.Getenv("PEEK_CONFIG"), os.Getenv("XDG_CONFIG_HOME"))
}

// GetConfigPathWithEnv is GetConfigPath with explicit environment values for testing.
func GetConfigPathWithEnv(peekConfig, xdgConfigHome string) string {
	if peekConfig != "" {
		return ExpandPathWithEnv(peekConfig, xdgConfigHome)
	}

	configHome := GetXDGConfigHomeWithEnv(xdgConfigHome)
	if configHome == "" {
		return ""
	}

	return filepath.Join(configHome, AppName, "config.toml")
}

// ExpandPath expands a leading ~ and $XDG_CONFIG_HOME.
func ExpandPath(path string) string {
	return ExpandPathWithEnv(path, os.Getenv("XDG_CONFIG_HOME"))
}

// ExpandPathWithEnv expands paths with a custom XDG_CONFIG_HOME for testing.
func ExpandPathWithEnv(path, xdgConfigHome string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}

	if after, found := strings.CutPrefix(path, "$XDG_CONFIG_HOME"); found {
		return GetXDGConfigHomeWithEnv(xdgConfigHome) + after
	}

	return path
}
