package ports

import (
	"errors"
	"fmt"

	"svw.info/sudoku-csp/internal/domain"
)

// Failure states of a solve attempt. None of them is ever downgraded to a
// zero-filled grid; callers must branch on them with errors.Is/errors.As.
var (
	// ErrInfeasible means the clue set admits no valid completion.
	ErrInfeasible = errors.New("puzzle admits no valid completion")
	// ErrTimeLimit means the engine exhausted its budget without a verdict.
	ErrTimeLimit = errors.New("time limit reached before a verdict")
)

// ExtractionError reports a cell with zero or several asserted values after
// an engine claimed a solved status. Signals a modeling defect, not bad input.
type ExtractionError struct {
	Cell  domain.CellCoord
	Count int
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction: cell (%d,%d) has %d asserted values, want exactly 1",
		e.Cell.Row, e.Cell.Col, e.Count)
}

// EngineError wraps a failure inside the external engine itself.
type EngineError struct {
	Engine string
	Err    error
}

func (e *EngineError) Error() string { return fmt.Sprintf("engine %s: %v", e.Engine, e.Err) }

func (e *EngineError) Unwrap() error { return e.Err }
