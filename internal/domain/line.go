package domain

import "strings"

// Line is one line of puzzle input with its 1-based position in the source.
type Line struct {
	Number int
	Text   string
}

// Blank reports whether the line holds nothing but whitespace.
func (l Line) Blank() bool {
	return strings.TrimSpace(l.Text) == ""
}

// NonBlank returns the lines that carry content, preserving order.
func NonBlank(lines []Line) []Line {
	out := make([]Line, 0, len(lines))
	for _, line := range lines {
		if !line.Blank() {
			out = append(out, line)
		}
	}
	return out
}
