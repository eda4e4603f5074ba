package domain

import (
	"fmt"
	"strings"
)

// DefaultPuzzle returns the built-in example instance. It is well posed:
// the clue set admits exactly one completion.
func DefaultPuzzle() *Puzzle {
	return &Puzzle{Givens: Grid{
		{0, 0, 9, 0, 0, 8, 0, 0, 0},
		{1, 0, 6, 0, 9, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 0, 3, 0, 2},
		{0, 0, 0, 5, 7, 0, 0, 0, 0},
		{4, 3, 0, 0, 0, 0, 0, 0, 9},
		{0, 9, 8, 0, 0, 3, 0, 0, 0},
		{0, 0, 2, 0, 0, 0, 0, 7, 4},
		{6, 0, 0, 0, 0, 0, 8, 0, 0},
		{5, 4, 0, 0, 0, 0, 0, 0, 3},
	}}
}

// Parse reads an 81-character row-major puzzle string. Digits 1-9 are
// givens; '0', '.' and '_' all mean blank. Whitespace is ignored, so
// grids laid out over multiple lines parse as-is.
func Parse(s string) (*Puzzle, error) {
	s = strings.Join(strings.Fields(s), "")
	if len(s) != 81 {
		return nil, fmt.Errorf("puzzle needs 81 cells, got %d", len(s))
	}
	var g Grid
	for i := 0; i < 81; i++ {
		ch := s[i]
		switch {
		case ch >= '1' && ch <= '9':
			g[i/9][i%9] = ch - '0'
		case ch == '0' || ch == '.' || ch == '_':
			// blank
		default:
			return nil, fmt.Errorf("cell %d: invalid character %q", i, ch)
		}
	}
	return &Puzzle{Givens: g}, nil
}
