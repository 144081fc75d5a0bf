// SPDX-FileCopyrightText: 2025 The Peek Authors
// SPDX-License-Identifier: EUPL-1.2

// Package cli provides the command-line interface for peek.
package cli

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/janderssonse/peek/internal/adapters/system"
	"github.com/janderssonse/peek/internal/config"
	"github.com/janderssonse/peek/internal/console"
	"github.com/janderssonse/peek/internal/domain"
	"github.com/janderssonse/peek/internal/highlight"
	"github.com/janderssonse/peek/internal/inspect"
	"github.com/urfave/cli/v3"
)

// Version is set at build time with -ldflags "-X github.com/janderssonse/peek/internal/cli.Version=...".
var Version = "dev" //nolint:gochecknoglobals

// CLI wires configuration, the highlighter and the report into one command.
type CLI struct {
	app        *cli.Command
	verbose    bool
	configPath string

	output *console.OutputState
	files  domain.FileSystem
	cfg    *config.Config
}

// NewCLI creates the CLI writing to the process's stdout and stderr.
func NewCLI() *CLI {
	return NewCLIWithOutput(console.DefaultOutput, system.NewFileSystem())
}

// NewCLIWithOutput creates the CLI with custom output and filesystem for testing.
func NewCLIWithOutput(output *console.OutputState, files domain.FileSystem) *CLI {
	app := &CLI{
		output: output,
		files:  files,
		cfg:    config.Default(),
	}

	app.app = &cli.Command{
		Name:      "peek",
		Usage:     "Show a file's metadata and its syntax-highlighted contents",
		ArgsUsage: "<file>",
		Version:   Version,
		Description: `Prints size, permissions and modification time of a file, followed by
its contents highlighted with 24-bit terminal colours.

Examples:
  peek main.go                       # Inspect a Go source file
  peek --config ./peek.toml page.tmpl  # Use extra extension aliases`,
		Writer:    output.Out,
		ErrWriter: output.Err,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "verbose",
				Usage:       "show progress messages to stderr",
				Destination: &app.verbose,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config.toml (default: $XDG_CONFIG_HOME/peek/config.toml)",
				Destination: &app.configPath,
			},
		},
		Before:       app.initConfig,
		Action:       app.inspect,
		OnUsageError: app.usageError,
	}

	return app
}

// Run executes the CLI application.
func (app *CLI) Run(ctx context.Context, args []string) error {
	return app.app.Run(ctx, args)
}

// initConfig loads the config file and applies it under the command-line flags.
func (app *CLI) initConfig(ctx context.Context, _ *cli.Command) (context.Context, error) {
	path, required := config.GetConfigPath(), false
	if app.configPath != "" {
		path, required = config.ExpandPath(app.configPath), true
	}

	cfg, err := config.Load(path, required)
	if err != nil {
		return ctx, domain.Fail(err)
	}

	app.cfg = cfg
	app.output.SetMode(app.verbose || cfg.Verbose)
	app.output.Progressf("config: %s", path)

	return ctx, nil
}

func (app *CLI) usageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return domain.NewExitError(domain.ExitUsageError, domain.FormatDiagnostic(err), err)
}

// inspect prints the metadata block and the highlighted contents of one file.
// The metadata pass finishes before rendering starts, and nothing is printed
// until rendering has succeeded.
func (app *CLI) inspect(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return domain.Fail(fmt.Errorf("%w: usage: peek <file>", domain.ErrArgument))
	}

	path := cmd.Args().First()

	catalog, err := highlight.NewCatalog(highlight.WithAliases(app.cfg.Syntax.Aliases))
	if err != nil {
		return domain.Fail(err)
	}

	// Missing metadata only costs the report section.
	report, metaErr := inspect.Build(app.files, path)

	renderer := highlight.NewRenderer(catalog, app.files)

	lines, err := renderer.Render(path)
	if err != nil {
		return domain.Fail(err)
	}

	app.output.Progressf("rendered %s lines of %s with %s syntax and %s theme",
		humanize.Comma(int64(len(lines))), path, renderer.Syntax(), catalog.Style().Name)

	if metaErr != nil {
		app.output.Diagnosticf("%s", domain.FormatDiagnostic(metaErr))
	} else if err := app.output.Print(report.String()); err != nil {
		return domain.NewExitError(domain.ExitGeneralError, "failed to write output", err)
	}

	if err := highlight.Write(app.output.Out, lines); err != nil {
		return domain.NewExitError(domain.ExitGeneralError, "failed to write output", err)
	}

	return nil
}
