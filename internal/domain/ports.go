// SPDX-FileCopyrightText: 2025 The Peek Authors
// SPDX-License-Identifier: EUPL-1.2

// Package domain holds the error taxonomy and the ports shared by peek's packages.
package domain

import (
	"io"
	"io/fs"
)

// FileSystem defines the filesystem operations an inspection needs.
// Implemented by adapters/system for the real OS and by fakes in tests.
type FileSystem interface {
	// Stat returns metadata for path, following symlinks.
	Stat(path string) (fs.FileInfo, error)

	// Open opens path for reading.
	Open(path string) (io.ReadCloser, error)
}
