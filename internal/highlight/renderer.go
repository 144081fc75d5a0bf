// SPDX-FileCopyrightText: 2025 The Peek Authors
// SPDX-License-Identifier: EUPL-1.2

package highlight

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/janderssonse/peek/internal/domain"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// State is the renderer's position in a Render call.
type State int

// Render moves through these states in order. A failed Render stays in the
// state where it failed.
const (
	Uninitialized State = iota
	LoadingGrammars
	StreamingLines
	Done
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case LoadingGrammars:
		return "loading-grammars"
	case StreamingLines:
		return "streaming-lines"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Renderer turns a file into escape-coded lines, one per source line, in file order.
type Renderer struct {
	catalog *Catalog
	files   domain.FileSystem
	state   State
	syntax  string
}

// NewRenderer creates a renderer reading through files with the grammars and theme of catalog.
func NewRenderer(catalog *Catalog, files domain.FileSystem) *Renderer {
	return &Renderer{
		catalog: catalog,
		files:   files,
	}
}

// State reports where the last Render call got to.
func (r *Renderer) State() State {
	return r.state
}

// Syntax returns the name of the grammar chosen by the last Render call.
func (r *Renderer) Syntax() string {
	return r.syntax
}

// Render reads path and returns its highlighted lines. Nothing is written to the
// terminal; on error no lines are returned.
func (r *Renderer) Render(path string) ([]string, error) {
	r.state = LoadingGrammars
	r.syntax = ""

	style := r.catalog.Style()

	file, err := r.files.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrFileRead, err)
	}
	defer func() { _ = file.Close() }()

	lexer := r.catalog.LexerForPath(path)

	r.state = StreamingLines

	source, err := readLines(newDecoder(file))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrFileRead, err)
	}

	if len(source) == 0 {
		r.state = Done

		return []string{}, nil
	}

	if lexer == nil {
		lexer = r.catalog.LexerForContent(strings.Join(source, ""))
	}

	r.syntax = lexer.Config().Name

	regions, err := Highlight(lexer, style, source)
	if err != nil {
		return nil, err
	}

	rendered := make([]string, 0, len(regions))
	for _, line := range regions {
		rendered = append(rendered, Escape24(line))
	}

	r.state = Done

	return rendered, nil
}

// newDecoder strips a UTF-8 BOM, decodes UTF-16 input that starts with a BOM,
// and replaces invalid UTF-8 with U+FFFD.
func newDecoder(src io.Reader) io.Reader {
	return transform.NewReader(src, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}

// readLines reads src into newline-inclusive lines. The last line keeps whatever
// terminator the file had, including none.
func readLines(src io.Reader) ([]string, error) {
	reader := bufio.NewReader(src)

	var lines []string

	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			lines = append(lines, line)
		}

		if errors.Is(err, io.EOF) {
			return lines, nil
		}

		if err != nil {
			return nil, err
		}
	}
}

// Highlight tokenises the lines as one document and splits the tokens back onto
// the original lines by byte length, so there is exactly one region list per line.
func Highlight(lexer chroma.Lexer, style *chroma.Style, lines []string) ([][]Region, error) {
	iterator, err := lexer.Tokenise(&chroma.TokeniseOptions{State: "root"}, strings.Join(lines, ""))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrHighlighterInit, lexer.Config().Name, err)
	}

	return splitRegions(iterator.Tokens(), lines, style), nil
}

func splitRegions(tokens []chroma.Token, lines []string, style *chroma.Style) [][]Region {
	out := make([][]Region, len(lines))
	if len(lines) == 0 {
		return out
	}

	index, offset := 0, 0

	for _, token := range tokens {
		value := token.Value

		for value != "" && index < len(lines) {
			n := min(len(value), len(lines[index])-offset)
			out[index] = append(out[index], Region{Style: style.Get(token.Type), Text: value[:n]})
			value = value[n:]
			offset += n

			if offset == len(lines[index]) {
				index++
				offset = 0
			}
		}
	}

	// Anything the lexer did not emit is kept unstyled.
	for ; index < len(lines); index++ {
		if rest := lines[index][offset:]; rest != "" {
			out[index] = append(out[index], Region{Text: rest})
		}

		offset = 0
	}

	return out
}

// Write emits rendered lines to w in order.
func Write(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}

	return nil
}
