// Package model holds the formulation artifacts shared by the engine
// adapters: the (row, col, value) indexing of the 9x9x9 boolean decision
// tensor, the 27 uniqueness units, and solution extraction.
package model

import (
	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/ports"
)

const (
	Size  = 9
	Box   = 3
	Cells = Size * Size  // 81
	Vars  = Cells * Size // 729 booleans, one per (r,c,v)
)

// Index maps (row, col, value) to a variable index in [0, Vars).
// value is zero-based: index v stands for digit v+1.
func Index(r, c, v int) int { return (r*Size+c)*Size + v }

// Unit is a set of nine cells that must contain each digit exactly once.
type Unit [Size]domain.CellCoord

// Units returns the 27 uniqueness units: 9 rows, 9 columns, then the 9
// non-overlapping boxes with origins at multiples of 3.
func Units() []Unit {
	units := make([]Unit, 0, 3*Size)
	for r := 0; r < Size; r++ {
		var u Unit
		for c := 0; c < Size; c++ {
			u[c] = domain.CellCoord{Row: r, Col: c}
		}
		units = append(units, u)
	}
	for c := 0; c < Size; c++ {
		var u Unit
		for r := 0; r < Size; r++ {
			u[r] = domain.CellCoord{Row: r, Col: c}
		}
		units = append(units, u)
	}
	for br := 0; br < Size; br += Box {
		for bc := 0; bc < Size; bc += Box {
			var u Unit
			i := 0
			for dr := 0; dr < Box; dr++ {
				for dc := 0; dc < Box; dc++ {
					u[i] = domain.CellCoord{Row: br + dr, Col: bc + dc}
					i++
				}
			}
			units = append(units, u)
		}
	}
	return units
}

// Clues calls fn for every given cell of p, with v zero-based.
func Clues(p *domain.Puzzle, fn func(r, c, v int)) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if d := p.Givens[r][c]; d != 0 {
				fn(r, c, int(d)-1)
			}
		}
	}
}

// Extract converts a solved assignment back into a grid. assigned reports
// whether the engine asserted "cell (r,c) holds digit v+1". The cell-fill
// constraints make more than one asserted digit per cell impossible, but a
// violation would mean a modeling or tolerance defect, so zero or several
// asserted digits yields an ExtractionError instead of a silent pick.
func Extract(assigned func(r, c, v int) bool) (domain.Grid, error) {
	var g domain.Grid
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			n := 0
			for v := 0; v < Size; v++ {
				if assigned(r, c, v) {
					g[r][c] = uint8(v + 1)
					n++
				}
			}
			if n != 1 {
				return domain.Grid{}, &ports.ExtractionError{Cell: domain.CellCoord{Row: r, Col: c}, Count: n}
			}
		}
	}
	return g, nil
}
