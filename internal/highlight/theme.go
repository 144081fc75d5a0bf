// SPDX-FileCopyrightText: 2025 The Peek Authors
// SPDX-License-Identifier: EUPL-1.2

package highlight

import (
	"github.com/alecthomas/chroma/v2"
)

// DefaultTheme is the builtin dark theme every catalog starts with.
const DefaultTheme = "base16-ocean.dark"

// base16 "ocean" palette.
const (
	ocean00 = "#2b303b" // background
	ocean01 = "#343d46"
	ocean02 = "#4f5b66"
	ocean03 = "#65737e" // comments
	ocean04 = "#a7adba"
	ocean05 = "#c0c5ce" // foreground
	ocean06 = "#dfe1e8"
	ocean07 = "#eff1f5"
	ocean08 = "#bf616a" // red
	ocean09 = "#d08770" // orange
	ocean0A = "#ebcb8b" // yellow
	ocean0B = "#a3be8c" // green
	ocean0C = "#96b5b4" // cyan
	ocean0D = "#8fa1b3" // blue
	ocean0E = "#b48ead" // magenta
	ocean0F = "#ab7967" // brown
)

// newOceanDark builds the base16-ocean.dark theme, which chroma does not ship.
func newOceanDark() *chroma.Style {
	return chroma.MustNewStyle(DefaultTheme, chroma.StyleEntries{
		chroma.Background:          "bg:" + ocean00 + " " + ocean05,
		chroma.Text:                ocean05,
		chroma.Error:               ocean08,
		chroma.Comment:             ocean03 + " italic",
		chroma.CommentPreproc:      ocean0D,
		chroma.Keyword:             ocean0E,
		chroma.KeywordConstant:     ocean09,
		chroma.KeywordType:         ocean0A,
		chroma.KeywordNamespace:    ocean0E,
		chroma.Operator:            ocean05,
		chroma.OperatorWord:        ocean0E,
		chroma.Punctuation:         ocean05,
		chroma.Name:                ocean05,
		chroma.NameAttribute:       ocean0A,
		chroma.NameBuiltin:         ocean0C,
		chroma.NameClass:           ocean0A,
		chroma.NameConstant:        ocean09,
		chroma.NameDecorator:       ocean0C,
		chroma.NameException:       ocean08,
		chroma.NameFunction:        ocean0D,
		chroma.NameNamespace:       ocean0A,
		chroma.NameTag:             ocean08,
		chroma.NameVariable:        ocean08,
		chroma.LiteralString:       ocean0B,
		chroma.LiteralStringEscape: ocean0C,
		chroma.LiteralStringRegex:  ocean0C,
		chroma.LiteralNumber:       ocean09,
		chroma.GenericDeleted:      ocean08,
		chroma.GenericInserted:     ocean0B,
		chroma.GenericHeading:      ocean0D + " bold",
		chroma.GenericSubheading:   ocean0C + " bold",
		chroma.GenericEmph:         "italic",
		chroma.GenericStrong:       ocean07 + " bold",
		chroma.GenericPrompt:       ocean04,
		chroma.GenericOutput:       ocean06,
		chroma.GenericUnderline:    "underline",
		chroma.LineHighlight:       "bg:" + ocean01,
		chroma.LineNumbers:         ocean02,
		chroma.NameEntity:          ocean0F,
	})
}
