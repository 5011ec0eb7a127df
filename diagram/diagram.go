// Package diagram compares wire-diagram renderings line by line and reports
// mismatches with the differing characters highlighted in place.
package diagram

import (
	"strings"

	"github.com/zaqqwerty/Cirq/circuit"
	"github.com/zaqqwerty/Cirq/verr"
)

const highlightGlyph = '█'

// Diff reports whether two diagrams differ after normalization, and if so the
// 1-indexed first differing row and a copy of the actual diagram with every
// differing character replaced by a highlight glyph. Normalization strips one
// leading newline (so raw-string literals can open on their own line) and
// trailing whitespace per row.
func Diff(actual, desired string) (differs bool, firstRow int, highlighted string) {
	al := normalize(actual)
	dl := normalize(desired)

	rows := len(al)
	if len(dl) > rows {
		rows = len(dl)
	}
	out := make([]string, rows)
	for i := 0; i < rows; i++ {
		var a, d string
		if i < len(al) {
			a = al[i]
		}
		if i < len(dl) {
			d = dl[i]
		}
		hl, rowDiffers := highlightRow(a, d)
		out[i] = hl
		if rowDiffers && firstRow == 0 {
			firstRow = i + 1
		}
	}
	return firstRow != 0, firstRow, strings.Join(out, "\n")
}

// AssertDiagramsEqual checks two rendered diagrams for equality up to
// normalization. The failure message shows both diagrams and the actual
// diagram with differing characters highlighted.
func AssertDiagramsEqual(actual, desired string) error {
	differs, firstRow, highlighted := Diff(actual, desired)
	if !differs {
		return nil
	}
	return verr.Comparisonf(
		"Circuit's text diagram differs from the desired diagram.\n\nDiagram of actual circuit:\n%s\n\nDesired text diagram:\n%s\n\nHighlighted differences:\n%s\n\nfirst differing row: %d\n",
		strings.Join(normalize(actual), "\n"),
		strings.Join(normalize(desired), "\n"),
		highlighted, firstRow)
}

// AssertHasDiagram renders the circuit and checks the rendering against the
// desired diagram.
func AssertHasDiagram(c *circuit.Circuit, desired string) error {
	return AssertDiagramsEqual(circuit.Render(c), desired)
}

// normalize splits a diagram into rows, dropping a single leading newline,
// trailing whitespace on each row, and trailing blank rows.
func normalize(s string) []string {
	s = strings.TrimPrefix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// highlightRow overlays the desired row on the actual row, replacing each
// differing character of the actual row with the highlight glyph. Positions
// past the end of the shorter row count as differing.
func highlightRow(actual, desired string) (string, bool) {
	ar := []rune(actual)
	dr := []rune(desired)
	width := len(ar)
	if len(dr) > width {
		width = len(dr)
	}
	out := make([]rune, 0, width)
	differs := false
	for i := 0; i < width; i++ {
		switch {
		case i < len(ar) && i < len(dr) && ar[i] == dr[i]:
			out = append(out, ar[i])
		default:
			out = append(out, highlightGlyph)
			differs = true
		}
	}
	return string(out), differs
}

// Render is a convenience re-export so callers diffing circuits directly do
// not need the circuit package just for rendering.
func Render(c *circuit.Circuit) string {
	return circuit.Render(c)
}
