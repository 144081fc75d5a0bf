// SPDX-FileCopyrightText: 2025 The Peek Authors
// SPDX-License-Identifier: EUPL-1.2

// Package highlight renders source files as 24-bit colour terminal lines.
package highlight

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/janderssonse/peek/internal/domain"
)

// Catalog is the syntax and theme database a Renderer works from.
// It is built once by the caller and never consults mutable global state after construction.
type Catalog struct {
	registry *chroma.LexerRegistry
	style    *chroma.Style
	aliases  map[string]string
}

type catalogOptions struct {
	theme    string
	registry *chroma.LexerRegistry
	styles   map[string]*chroma.Style
	aliases  map[string]string
}

// Option configures a Catalog.
type Option func(*catalogOptions)

// WithTheme selects the theme by name. Defaults to DefaultTheme.
func WithTheme(name string) Option {
	return func(o *catalogOptions) {
		o.theme = name
	}
}

// WithRegistry replaces chroma's global lexer registry.
func WithRegistry(registry *chroma.LexerRegistry) Option {
	return func(o *catalogOptions) {
		o.registry = registry
	}
}

// WithStyles makes additional themes available to WithTheme.
func WithStyles(extra ...*chroma.Style) Option {
	return func(o *catalogOptions) {
		for _, style := range extra {
			o.styles[style.Name] = style
		}
	}
}

// WithAliases maps file extensions (with or without the leading dot) to lexer names.
func WithAliases(aliases map[string]string) Option {
	return func(o *catalogOptions) {
		for ext, name := range aliases {
			o.aliases[normalizeExt(ext)] = name
		}
	}
}

// NewCatalog resolves the theme and validates every alias up front, so a bad
// environment fails before any file is touched.
func NewCatalog(opts ...Option) (*Catalog, error) {
	options := &catalogOptions{
		theme:    DefaultTheme,
		registry: lexers.GlobalLexerRegistry,
		styles:   map[string]*chroma.Style{DefaultTheme: newOceanDark()},
		aliases:  map[string]string{},
	}

	for _, opt := range opts {
		opt(options)
	}

	style, err := lookupTheme(options.theme, options.styles)
	if err != nil {
		return nil, err
	}

	// Sorted so the reported unknown alias is deterministic.
	exts := make([]string, 0, len(options.aliases))
	for ext := range options.aliases {
		exts = append(exts, ext)
	}

	sort.Strings(exts)

	for _, ext := range exts {
		if options.registry.Get(options.aliases[ext]) == nil {
			return nil, fmt.Errorf("%w: unknown syntax %q for extension %q",
				domain.ErrHighlighterInit, options.aliases[ext], ext)
		}
	}

	return &Catalog{
		registry: options.registry,
		style:    style,
		aliases:  options.aliases,
	}, nil
}

func lookupTheme(name string, local map[string]*chroma.Style) (*chroma.Style, error) {
	if style, ok := local[name]; ok {
		return style, nil
	}

	// styles.Get falls back silently, so consult the registry map directly.
	if style, ok := styles.Registry[name]; ok {
		return style, nil
	}

	return nil, fmt.Errorf("%w: unknown theme %q", domain.ErrHighlighterInit, name)
}

// Style returns the catalog's theme.
func (c *Catalog) Style() *chroma.Style {
	return c.style
}

// LexerForPath resolves a grammar from the file name alone: configured aliases
// first, then the registry's filename patterns. It returns nil when neither matches.
func (c *Catalog) LexerForPath(path string) chroma.Lexer {
	if name, ok := c.aliases[normalizeExt(filepath.Ext(path))]; ok {
		if lexer := c.registry.Get(name); lexer != nil {
			return chroma.Coalesce(lexer)
		}
	}

	if lexer := c.registry.Match(filepath.Base(path)); lexer != nil {
		return chroma.Coalesce(lexer)
	}

	return nil
}

// LexerForContent sniffs source for a grammar, falling back to plain text.
func (c *Catalog) LexerForContent(source string) chroma.Lexer {
	if lexer := c.registry.Analyse(source); lexer != nil {
		return chroma.Coalesce(lexer)
	}

	return chroma.Coalesce(lexers.Fallback)
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
