// SPDX-FileCopyrightText: 2025 The Peek Authors
// SPDX-License-Identifier: EUPL-1.2

// Package inspect builds the metadata summary printed above a file's contents.
package inspect

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/janderssonse/peek/internal/domain"
	"github.com/janderssonse/peek/internal/format"
)

// TimeLayout renders modification times as MM/DD/YY HH:MM.
const TimeLayout = "01/02/06 15:04"

const footer = "################################"

// Report is a read-only snapshot of one file's metadata.
type Report struct {
	name        string
	size        string
	permissions string
	modified    time.Time
}

// Build stats path through files and summarises the result.
func Build(files domain.FileSystem, path string) (*Report, error) {
	info, err := files.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMetadata, err)
	}

	return FromFileInfo(filepath.Base(path), info), nil
}

// FromFileInfo summarises info under the given display name.
func FromFileInfo(name string, info fs.FileInfo) *Report {
	size := info.Size()
	if size < 0 {
		size = 0
	}

	return &Report{
		name:        name,
		size:        format.FormatSize(uint64(size)),
		permissions: format.PermissionsOf(info.Mode()),
		modified:    info.ModTime(),
	}
}

// Name returns the file's base name.
func (r *Report) Name() string {
	return r.name
}

// Size returns the SI size label, e.g. "2.0K".
func (r *Report) Size() string {
	return r.size
}

// Permissions returns the 9-character permission string.
func (r *Report) Permissions() string {
	return r.permissions
}

// Modified returns the modification time.
func (r *Report) Modified() time.Time {
	return r.modified
}

// String renders the fixed report block. The trailing blank line after the footer
// is part of the block and separates it from the file contents.
func (r *Report) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "########## File: %s ##########\n", r.name)
	fmt.Fprintf(&b, "Size: %s\n", r.size)
	fmt.Fprintf(&b, "Permissions: %s\n", r.permissions)
	fmt.Fprintf(&b, "Date Modified: %s\n", r.modified.Local().Format(TimeLayout))
	b.WriteString(footer + "\n\n")

	return b.String()
}
