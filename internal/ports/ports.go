package ports

import (
	"context"
	"time"

	"svw.info/sudoku-csp/internal/domain"
)

// Stats captures the size of a formulation and how long the engine ran.
type Stats struct {
	Vars        int
	Constraints int
	Duration    time.Duration
}

// Options is engine configuration, passed through to the external solver
// invocation unmodified. Fields a given engine has no knob for are ignored.
type Options struct {
	TimeLimit time.Duration // wall-clock budget for one solve; zero means no limit
	Verbose   bool          // engine log output during search, where supported
}

// Engine builds decision variables and constraints for one external solver
// and runs its search once, synchronously, to completion. It is a pure
// feasibility search: no objective function is involved. The decision
// variables live only for the duration of the call.
type Engine interface {
	Name() string
	Solve(ctx context.Context, p *domain.Puzzle, opts Options) (*domain.Solution, Stats, error)
}
