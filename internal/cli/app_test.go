// SPDX-FileCopyrightText: 2025 The Peek Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/janderssonse/peek/internal/adapters/system"
	"github.com/janderssonse/peek/internal/console"
	"github.com/janderssonse/peek/internal/domain"
	"github.com/janderssonse/peek/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var escapePattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

type testRun struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func (r *testRun) run(t *testing.T, files domain.FileSystem, args ...string) error {
	t.Helper()

	// An empty config keeps the user's own config out of the run.
	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configPath, nil, 0o600))

	output := console.NewOutputState(&r.stdout, &r.stderr)
	app := NewCLIWithOutput(output, files)

	return app.Run(context.Background(), append([]string{"peek", "--config", configPath}, args...))
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestNewCLI(t *testing.T) {
	t.Parallel()

	app := NewCLI()
	require.NotNil(t, app)
	require.NotNil(t, app.app)
	assert.Equal(t, "peek", app.app.Name)
	assert.Equal(t, "<file>", app.app.ArgsUsage)
	assert.NotEmpty(t, app.app.Usage)
	assert.NotEmpty(t, app.app.Description)
	assert.Equal(t, Version, app.app.Version)
	assert.Same(t, app.app.Writer, console.DefaultOutput.Out)
}

func TestRun_Success(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "main.go", "package main\n\nfunc main() {}\n")

	var r testRun
	require.NoError(t, r.run(t, system.NewFileSystem(), path))

	out := r.stdout.String()
	assert.True(t, strings.HasPrefix(out, "########## File: main.go ##########\n"), out)
	assert.Contains(t, out, "Size: 29B\n")
	assert.Contains(t, out, "Permissions: rw-------\n")
	assert.Contains(t, out, "################################\n\n")

	body := out[strings.Index(out, "\n\n")+2:]
	lines := strings.Split(strings.TrimSuffix(body, "\n"), "\n")
	require.Len(t, lines, 3)

	for _, line := range lines {
		assert.True(t, strings.HasSuffix(line, "\x1b[0m"), "line %q must end with a reset", line)
	}

	assert.Equal(t, "package main\n\nfunc main() {}\n", escapePattern.ReplaceAllString(body, ""))
	assert.Empty(t, r.stderr.String())
}

func TestRun_Failures(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantMsg  string
		silent   bool
	}{
		{
			name:     "no arguments",
			wantCode: domain.ExitUsageError,
			wantMsg:  "not enough arguments",
			silent:   true,
		},
		{
			name:     "missing file",
			args:     []string{filepath.Join(dir, "absent.txt")},
			wantCode: domain.ExitNotFoundError,
			wantMsg:  "error reading file",
			silent:   true,
		},
		{
			name:     "directory target",
			args:     []string{dir},
			wantCode: domain.ExitSystemError,
			wantMsg:  "error reading file",
			silent:   true,
		},
		{
			name:     "unknown flag",
			args:     []string{"--bogus", "file"},
			wantCode: domain.ExitUsageError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var r testRun
			err := r.run(t, system.NewFileSystem(), tt.args...)
			require.Error(t, err)

			exitErr := domain.Fail(err)
			assert.Equal(t, tt.wantCode, exitErr.Code)
			assert.Contains(t, exitErr.Message, tt.wantMsg)
			assert.NotContains(t, r.stdout.String(), "File:")

			if tt.silent {
				// The run's only diagnostic is the one main prints from the returned error.
				assert.Empty(t, r.stdout.String())
			}
		})
	}
}

func TestRun_MetadataFailureSkipsReport(t *testing.T) {
	t.Parallel()

	files := &testutil.MockFileSystem{}
	files.On("Stat", "/data/notes.txt").Return(nil, errors.New("stat unsupported"))
	files.On("Open", "/data/notes.txt").Return(testutil.Contents("hello\n"), nil)

	var r testRun
	require.NoError(t, r.run(t, files, "/data/notes.txt"))
	files.AssertExpectations(t)

	lines := strings.Split(r.stdout.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "error getting file metadata: stat unsupported", lines[0])
	assert.Equal(t, "hello", escapePattern.ReplaceAllString(lines[1], ""))
	assert.NotContains(t, r.stdout.String(), "File:")
}

func TestRun_MetadataAndReadFailure(t *testing.T) {
	t.Parallel()

	files := &testutil.MockFileSystem{}
	files.On("Stat", "/locked/notes.txt").Return(nil, fs.ErrPermission)
	files.On("Open", "/locked/notes.txt").Return(nil, fs.ErrPermission)

	var r testRun
	err := r.run(t, files, "/locked/notes.txt")
	require.ErrorIs(t, err, domain.ErrFileRead)
	files.AssertExpectations(t)

	assert.Equal(t, domain.ExitPermissionError, domain.Fail(err).Code)
	assert.Empty(t, r.stdout.String())
}

func TestRun_Config(t *testing.T) {
	t.Parallel()

	target := writeFile(t, "page.tmpl", "{{ .Title }}\n")

	tests := []struct {
		name     string
		config   string
		wantCode int
		wantErr  error
	}{
		{
			name:     "malformed config",
			config:   "verbose = ",
			wantCode: domain.ExitConfigError,
			wantErr:  domain.ErrConfig,
		},
		{
			name:     "unknown alias target",
			config:   "[syntax.aliases]\ntmpl = \"no-such-syntax\"\n",
			wantCode: domain.ExitHighlighterError,
			wantErr:  domain.ErrHighlighterInit,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			configPath := writeFile(t, "config.toml", tt.config)

			var stdout bytes.Buffer
			app := NewCLIWithOutput(console.NewOutputState(&stdout, io.Discard), system.NewFileSystem())

			err := app.Run(context.Background(), []string{"peek", "--config", configPath, target})
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCode, domain.Fail(err).Code)
			assert.Empty(t, stdout.String())
		})
	}
}

func TestRun_ExplicitConfigMustExist(t *testing.T) {
	t.Parallel()

	target := writeFile(t, "a.txt", "a\n")

	app := NewCLIWithOutput(console.NewOutputState(io.Discard, io.Discard), system.NewFileSystem())
	err := app.Run(context.Background(), []string{"peek", "--config", filepath.Join(t.TempDir(), "none.toml"), target})
	require.ErrorIs(t, err, domain.ErrConfig)
	assert.Equal(t, domain.ExitConfigError, domain.Fail(err).Code)
}

func TestRun_AliasSelectsSyntax(t *testing.T) {
	t.Parallel()

	target := writeFile(t, "build.recipe", "package main\n")
	configPath := writeFile(t, "config.toml", "verbose = true\n\n[syntax.aliases]\nrecipe = \"go\"\n")

	var stdout, stderr bytes.Buffer
	app := NewCLIWithOutput(console.NewOutputState(&stdout, &stderr), system.NewFileSystem())

	require.NoError(t, app.Run(context.Background(), []string{"peek", "--config", configPath, target}))
	assert.Contains(t, stderr.String(), "with Go syntax")
	assert.Contains(t, stdout.String(), "File: build.recipe")
}

func TestRun_Verbose(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "script.sh", "#!/bin/sh\necho hi\n")

	var r testRun
	require.NoError(t, r.run(t, system.NewFileSystem(), "--verbose", path))

	progress := r.stderr.String()
	assert.Contains(t, progress, "config: ")
	assert.Contains(t, progress, "rendered 2 lines of "+path)
	assert.Contains(t, progress, "base16-ocean.dark theme")
	assert.NotContains(t, r.stdout.String(), "rendered")
}
