// SPDX-FileCopyrightText: 2025 The Peek Authors
// SPDX-License-Identifier: EUPL-1.2

package highlight

import (
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
)

// Reset returns the terminal to its unstyled state.
const Reset = "\x1b[0m"

// Region is one styled span of a source line.
type Region struct {
	Style chroma.StyleEntry
	Text  string
}

// sgr returns the SGR parameters for entry, or "" when it carries no styling.
// Only the foreground is used; the terminal keeps its own background.
func sgr(entry chroma.StyleEntry) string {
	params := make([]string, 0, 4)

	if entry.Colour.IsSet() {
		params = append(params, "38;2;"+
			strconv.Itoa(int(entry.Colour.Red()))+";"+
			strconv.Itoa(int(entry.Colour.Green()))+";"+
			strconv.Itoa(int(entry.Colour.Blue())))
	}

	if entry.Bold == chroma.Yes {
		params = append(params, "1")
	}

	if entry.Italic == chroma.Yes {
		params = append(params, "3")
	}

	if entry.Underline == chroma.Yes {
		params = append(params, "4")
	}

	return strings.Join(params, ";")
}

func lineTerminator(line string) string {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return "\r\n"
	case strings.HasSuffix(line, "\n"):
		return "\n"
	default:
		return ""
	}
}

// Escape24 serializes the regions of one line into 24-bit colour escape codes.
// Escapes are only emitted when the style changes between regions, and the line
// always ends unstyled, with the reset placed before the line terminator.
func Escape24(regions []Region) string {
	var full strings.Builder
	for _, region := range regions {
		full.WriteString(region.Text)
	}

	terminator := lineTerminator(full.String())
	body := full.Len() - len(terminator)

	var out strings.Builder

	active := ""

	for _, region := range regions {
		if body == 0 {
			break
		}

		text := region.Text
		if len(text) > body {
			text = text[:body]
		}

		body -= len(text)

		if text == "" {
			continue
		}

		if params := sgr(region.Style); params != active {
			if active != "" {
				out.WriteString(Reset)
			}

			if params != "" {
				out.WriteString("\x1b[" + params + "m")
			}

			active = params
		}

		out.WriteString(text)
	}

	out.WriteString(Reset)
	out.WriteString(terminator)

	return out.String()
}
