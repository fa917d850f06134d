package engine

import "strings"

// Line is one physical line of the analyzed source.
type Line struct {
	Index   int
	Raw     string
	Trimmed string
}

// Number returns the 1-based line number.
func (l Line) Number() int {
	return l.Index + 1
}

// SplitLines breaks source on '\n' without dropping blank lines.
// An empty source yields a single blank line.
func SplitLines(source string) []Line {
	raw := strings.Split(source, "\n")
	lines := make([]Line, len(raw))
	for i, r := range raw {
		lines[i] = Line{Index: i, Raw: r, Trimmed: strings.TrimSpace(r)}
	}
	return lines
}
