// SPDX-FileCopyrightText: 2025 The Peek Authors
// SPDX-License-Identifier: EUPL-1.2

// Package console writes peek's report, content and diagnostics to the terminal.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// errorColor matches the red used across the project's styles.
const errorColor = lipgloss.Color("#f7768e")

// OutputState holds output configuration and destinations.
type OutputState struct {
	Verbose bool

	// Out receives the report, the rendered content and diagnostics.
	Out io.Writer
	// Err receives verbose progress messages.
	Err io.Writer
}

// DefaultOutput writes to the process's stdout and stderr.
var DefaultOutput = NewOutputState(os.Stdout, os.Stderr) //nolint:gochecknoglobals

// NewOutputState creates an OutputState writing to out and errOut.
func NewOutputState(out, errOut io.Writer) *OutputState {
	return &OutputState{
		Out: out,
		Err: errOut,
	}
}

// SetMode configures output mode.
func (o *OutputState) SetMode(verbose bool) {
	o.Verbose = verbose
}

// IsTTY checks if w is a terminal (not piped/redirected).
func (o *OutputState) IsTTY(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })

	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}

// ColorEnabled reports whether styled diagnostics may be written to Out.
func (o *OutputState) ColorEnabled() bool {
	// Check no-color.org standards
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}

	return o.IsTTY(o.Out)
}

// Progressf writes progress messages to Err (only if verbose).
func (o *OutputState) Progressf(format string, args ...any) {
	if o.Verbose {
		_, _ = fmt.Fprintf(o.Err, format+"\n", args...)
	}
}

// Diagnosticf writes a single-line diagnostic to Out. Anything after the first
// line break is dropped.
func (o *OutputState) Diagnosticf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if i := strings.IndexAny(msg, "\r\n"); i >= 0 {
		msg = msg[:i]
	}

	if o.ColorEnabled() {
		msg = lipgloss.NewRenderer(o.Out).NewStyle().Foreground(errorColor).Render(msg)
	}

	_, _ = fmt.Fprintln(o.Out, msg)
}

// Print writes s to Out unchanged.
func (o *OutputState) Print(s string) error {
	_, err := io.WriteString(o.Out, s)

	return err
}
