package glyphgrid

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"
)

// Result is a rendered glyph grid.
//
// Create instances with [Converter.Convert].
type Result struct {
	lines  []string
	colors [][]color.NRGBA
	glyph  string
	width  int
	height int
}

// Lines returns the rendered rows, one string per text row.
func (r *Result) Lines() []string {
	return r.lines
}

// Width returns the grid width in cells.
func (r *Result) Width() int {
	return r.width
}

// Height returns the grid height in rows.
func (r *Result) Height() int {
	return r.height
}

// Text returns the full output document: rows joined by newlines, with a
// trailing newline.
func (r *Result) Text() string {
	return strings.Join(r.lines, "\n") + "\n"
}

// CharCount returns the character count of the output document.
func (r *Result) CharCount() int {
	return utf8.RuneCountInString(r.Text())
}

// ANSI renders the sampled grid as truecolor ANSI escape sequences for
// terminal preview. Each cell sets the foreground color and emits the
// glyph; each row ends with a reset and a newline.
func (r *Result) ANSI() string {
	var sb strings.Builder

	for _, row := range r.colors {
		for _, px := range row {
			fmt.Fprintf(&sb, "\033[38;2;%d;%d;%dm%s", px.R, px.G, px.B, r.glyph)
		}

		sb.WriteString("\033[0m\n")
	}

	return sb.String()
}
