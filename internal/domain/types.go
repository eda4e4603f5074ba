package domain

import "fmt"

// Grid is a 9x9 Sudoku board in row-major order. Value 0 means blank.
type Grid [9][9]uint8

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int
	Col int
}

// Puzzle holds the given clues of one Sudoku instance. Cells with value 0
// are unknowns to be filled by an engine; 1..9 are fixed givens.
// A Puzzle is never mutated after construction.
type Puzzle struct {
	Givens Grid
}

// Solution is a completed board: every cell holds a value in 1..9.
type Solution struct {
	Values Grid
}

// Validate checks the shape invariant: every cell value in [0,9].
func (p *Puzzle) Validate() error {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if p.Givens[r][c] > 9 {
				return fmt.Errorf("cell (%d,%d): value %d out of range [0,9]", r, c, p.Givens[r][c])
			}
		}
	}
	return nil
}

// NumGivens counts the nonzero cells.
func (p *Puzzle) NumGivens() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if p.Givens[r][c] != 0 {
				n++
			}
		}
	}
	return n
}
