package engine

import (
	"context"
	"time"

	"github.com/gitrdm/gokanlogic/pkg/minikanren"

	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/model"
	"svw.info/sudoku-csp/internal/ports"
)

// FiniteDomain formulates the puzzle over gokanlogic's constraint model:
// one 1..9 variable per cell and the library's native all-different
// (Regin propagation) over each of the 27 units. Clues are fixed by
// giving their cells singleton domains, so root propagation alone
// rejects contradictory givens before any search.
type FiniteDomain struct{}

func NewFiniteDomain() *FiniteDomain { return &FiniteDomain{} }

func (e *FiniteDomain) Name() string { return "fd" }

func (e *FiniteDomain) Solve(ctx context.Context, p *domain.Puzzle, opts ports.Options) (*domain.Solution, ports.Stats, error) {
	start := time.Now()
	if err := p.Validate(); err != nil {
		return nil, ports.Stats{}, err
	}
	ctx, cancel := withLimit(ctx, opts)
	defer cancel()

	m := minikanren.NewModel()
	cells := make([]*minikanren.FDVariable, model.Cells) // row-major creation order
	for r := 0; r < model.Size; r++ {
		for c := 0; c < model.Size; c++ {
			var dom *minikanren.BitSetDomain
			if d := p.Givens[r][c]; d != 0 {
				dom = minikanren.NewBitSetDomainFromValues(model.Size, []int{int(d)})
			} else {
				dom = minikanren.NewBitSetDomain(model.Size)
			}
			cells[r*model.Size+c] = m.NewVariable(dom)
		}
	}

	units := model.Units()
	for _, u := range units {
		group := make([]*minikanren.FDVariable, len(u))
		for i, cell := range u {
			group[i] = cells[cell.Row*model.Size+cell.Col]
		}
		ad, err := minikanren.NewAllDifferent(group)
		if err != nil {
			return nil, ports.Stats{}, &ports.EngineError{Engine: e.Name(), Err: err}
		}
		m.AddConstraint(ad)
	}
	stats := ports.Stats{Vars: model.Cells, Constraints: len(units) + p.NumGivens()}

	if ctx.Err() != nil {
		stats.Duration = time.Since(start)
		return nil, stats, ports.ErrTimeLimit
	}
	sols, err := minikanren.NewSolver(m).Solve(ctx, 1)
	stats.Duration = time.Since(start)
	if err != nil {
		if ctx.Err() != nil {
			return nil, stats, ports.ErrTimeLimit
		}
		return nil, stats, &ports.EngineError{Engine: e.Name(), Err: err}
	}
	if len(sols) == 0 {
		// Root propagation failed or the search exhausted all candidates.
		return nil, stats, ports.ErrInfeasible
	}

	assigned := sols[0] // one value per variable, in creation order
	grid, err := model.Extract(func(r, c, v int) bool { return assigned[r*model.Size+c] == v+1 })
	if err != nil {
		return nil, stats, err
	}
	return &domain.Solution{Values: grid}, stats, nil
}
