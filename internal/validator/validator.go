// Package validator performs fast row/col/box duplicate checks with
// bitmasks. It is the cross-check the tests and the CLI apply to engine
// output; it does no solving of its own.
package validator

import "svw.info/sudoku-csp/internal/domain"

// Conflicts returns every cell whose value repeats an earlier value in its
// row, column or box. Blank cells are ignored. An empty result means the
// grid violates no uniqueness constraint.
func Conflicts(g domain.Grid) []domain.CellCoord {
	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// boxes
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r := br*3 + dr
					c := bc*3 + dc
					val := g[r][c]
					if val == 0 {
						continue
					}
					bit := 1 << val
					if m&bit != 0 {
						conf = append(conf, domain.CellCoord{Row: r, Col: c})
					}
					m |= bit
				}
			}
		}
	}
	return conf
}

// IsSolved reports whether g is complete (no blanks) and conflict-free.
func IsSolved(g domain.Grid) bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return false
			}
		}
	}
	return len(Conflicts(g)) == 0
}

// Agrees reports whether s honors every given of p.
func Agrees(p *domain.Puzzle, s domain.Grid) bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := p.Givens[r][c]; v != 0 && s[r][c] != v {
				return false
			}
		}
	}
	return true
}
