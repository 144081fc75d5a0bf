// SPDX-FileCopyrightText: 2025 The Peek Authors
// SPDX-License-Identifier: EUPL-1.2

// Package system adapts the host operating system to domain ports.
package system

import (
	"io"
	"io/fs"
	"os"

	"github.com/janderssonse/peek/internal/domain"
)

// FileSystem implements domain.FileSystem on top of package os.
type FileSystem struct{}

var _ domain.FileSystem = FileSystem{}

// NewFileSystem returns the OS-backed filesystem adapter.
func NewFileSystem() FileSystem {
	return FileSystem{}
}

// Stat returns metadata for path, following symlinks.
func (FileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// Open opens path read-only.
func (FileSystem) Open(path string) (io.ReadCloser, error) {
	return os.Open(path) //nolint:gosec // path is the user's explicit argument
}
