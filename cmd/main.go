// SPDX-FileCopyrightText: 2025 The Peek Authors
// SPDX-License-Identifier: EUPL-1.2

// Package main provides the CLI entry point for peek.
package main

import (
	"context"
	"os"

	"github.com/janderssonse/peek/internal/cli"
	"github.com/janderssonse/peek/internal/console"
	"github.com/janderssonse/peek/internal/domain"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	app := cli.NewCLI()

	if err := app.Run(context.Background(), args); err != nil {
		exitErr := domain.Fail(err)
		console.DefaultOutput.Diagnosticf("%s", exitErr.Message)

		return exitErr.Code
	}

	return domain.ExitSuccess
}
