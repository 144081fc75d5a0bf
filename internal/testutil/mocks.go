// SPDX-FileCopyrightText: 2025 The Peek Authors
// SPDX-License-Identifier: EUPL-1.2

// Package testutil provides test doubles for the domain ports.
package testutil

import (
	"io"
	"io/fs"
	"strings"

	"github.com/janderssonse/peek/internal/domain"
	"github.com/stretchr/testify/mock"
)

var _ domain.FileSystem = (*MockFileSystem)(nil)

// MockFileSystem mocks the FileSystem port for testing.
type MockFileSystem struct {
	mock.Mock
}

// Stat mocks metadata lookup.
func (m *MockFileSystem) Stat(path string) (fs.FileInfo, error) {
	args := m.Called(path)
	if result := args.Get(0); result != nil {
		info, ok := result.(fs.FileInfo)
		if !ok {
			return nil, args.Error(1)
		}

		return info, args.Error(1)
	}

	return nil, args.Error(1)
}

// Open mocks opening a file for reading.
func (m *MockFileSystem) Open(path string) (io.ReadCloser, error) {
	args := m.Called(path)
	if result := args.Get(0); result != nil {
		file, ok := result.(io.ReadCloser)
		if !ok {
			return nil, args.Error(1)
		}

		return file, args.Error(1)
	}

	return nil, args.Error(1)
}

// Contents returns a ReadCloser over s for use as an Open result.
func Contents(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}
