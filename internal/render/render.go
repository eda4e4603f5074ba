// Package render draws 9x9 grids as bordered text tables: double-line
// borders around the board, single-line separators between the 3x3 boxes.
// Pure formatting, no mutation of inputs.
package render

import (
	"strings"

	"svw.info/sudoku-csp/internal/domain"
)

const (
	top    = "┌───────┬───────┬───────┐"
	mid    = "├───────┼───────┼───────┤"
	bottom = "└───────┴───────┴───────┘"

	gap = "   " // between two boards in side-by-side output

	blank = "_" // placeholder glyph for value 0
)

func glyph(v uint8) string {
	if v == 0 {
		return blank
	}
	return string(rune('0' + v))
}

func writeRow(b *strings.Builder, g *domain.Grid, r int) {
	b.WriteString("│ ")
	for c := 0; c < 9; c++ {
		b.WriteString(glyph(g[r][c]))
		if c%3 == 2 && c != 8 {
			b.WriteString(" │ ")
		} else {
			b.WriteString(" ")
		}
	}
	b.WriteString("│")
}

// Grid renders one board. Blank cells show as the placeholder glyph.
func Grid(g domain.Grid) string {
	var b strings.Builder
	b.WriteString(top + "\n")
	for r := 0; r < 9; r++ {
		writeRow(&b, &g, r)
		b.WriteString("\n")
		if r%3 == 2 && r != 8 {
			b.WriteString(mid + "\n")
		}
	}
	b.WriteString(bottom + "\n")
	return b.String()
}

// SideBySide renders two boards left and right of each other, with an
// arrow from the left board to the right one on the middle board row.
func SideBySide(left, right domain.Grid) string {
	var b strings.Builder
	b.WriteString(top + gap + top + "\n")
	for r := 0; r < 9; r++ {
		writeRow(&b, &left, r)
		if r == 4 {
			b.WriteString(" → ")
		} else {
			b.WriteString(gap)
		}
		writeRow(&b, &right, r)
		b.WriteString("\n")
		if r%3 == 2 && r != 8 {
			b.WriteString(mid + gap + mid + "\n")
		}
	}
	b.WriteString(bottom + gap + bottom + "\n")
	return b.String()
}
