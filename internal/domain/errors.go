// SPDX-FileCopyrightText: 2025 The Peek Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// Error taxonomy for a single inspection run.
var (
	// ErrArgument is returned when no file path was given.
	ErrArgument = errors.New("not enough arguments")
	// ErrFileRead is returned when the target file cannot be opened or read.
	ErrFileRead = errors.New("error reading file")
	// ErrMetadata is returned when filesystem metadata for the target is unavailable.
	ErrMetadata = errors.New("error getting file metadata")
	// ErrHighlighterInit is returned when a grammar or theme cannot be resolved.
	ErrHighlighterInit = errors.New("error initializing highlighter")
	// ErrConfig is returned when the configuration file is unreadable or malformed.
	ErrConfig = errors.New("invalid configuration")
)

// Exit codes follow the Unix conventions used by the rest of the tool chain.
const (
	ExitSuccess          = 0  // Completed successfully
	ExitGeneralError     = 1  // Catch-all failure
	ExitUsageError       = 2  // Invalid arguments/usage
	ExitConfigError      = 3  // Configuration issues
	ExitPermissionError  = 4  // Permission denied
	ExitNotFoundError    = 5  // File not found
	ExitSystemError      = 12 // Other filesystem failures
	ExitHighlighterError = 20 // Grammar or theme lookup failed
)

// ExitError carries the exit code and one-line diagnostic for a failed run.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// NewExitError creates an ExitError with the specified code and message.
func NewExitError(code int, message string, err error) *ExitError {
	return &ExitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error from the taxonomy onto a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrArgument):
		return ExitUsageError
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, ErrHighlighterInit):
		return ExitHighlighterError
	case errors.Is(err, fs.ErrPermission):
		return ExitPermissionError
	case errors.Is(err, fs.ErrNotExist):
		return ExitNotFoundError
	case errors.Is(err, ErrFileRead), errors.Is(err, ErrMetadata):
		return ExitSystemError
	default:
		return ExitGeneralError
	}
}

// Fail wraps err into an ExitError whose message is a single diagnostic line.
func Fail(err error) *ExitError {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	return NewExitError(ExitCode(err), FormatDiagnostic(err), err)
}

// FormatDiagnostic renders err as one human-readable line.
func FormatDiagnostic(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	if i := strings.IndexAny(msg, "\r\n"); i >= 0 {
		return msg[:i]
	}

	return msg
}
