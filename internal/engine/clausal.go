package engine

import (
	"context"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/model"
	"svw.info/sudoku-csp/internal/ports"
)

// Clausal formulates the puzzle over gini as plain propositional clauses.
// gini has no counting primitive, so exactly-one is emulated per family:
// one at-least-one clause plus pairwise at-most-one binary clauses.
type Clausal struct{}

func NewClausal() *Clausal { return &Clausal{} }

func (e *Clausal) Name() string { return "cnf" }

func (e *Clausal) Solve(ctx context.Context, p *domain.Puzzle, opts ports.Options) (*domain.Solution, ports.Stats, error) {
	start := time.Now()
	if err := p.Validate(); err != nil {
		return nil, ports.Stats{}, err
	}
	ctx, cancel := withLimit(ctx, opts)
	defer cancel()

	g := gini.New()
	lit := func(r, c, v int) z.Lit { return z.Var(model.Index(r, c, v) + 1).Pos() }

	clauses := 0
	addExactlyOne := func(lits []z.Lit) {
		for _, m := range lits {
			g.Add(m)
		}
		g.Add(z.LitNull)
		clauses++
		for i := 0; i < len(lits); i++ {
			for j := i + 1; j < len(lits); j++ {
				g.Add(lits[i].Not())
				g.Add(lits[j].Not())
				g.Add(z.LitNull)
				clauses++
			}
		}
	}

	group := make([]z.Lit, model.Size)
	for r := 0; r < model.Size; r++ { // cell-fill
		for c := 0; c < model.Size; c++ {
			for v := 0; v < model.Size; v++ {
				group[v] = lit(r, c, v)
			}
			addExactlyOne(group)
		}
	}
	for _, u := range model.Units() { // row, column and box uniqueness
		for v := 0; v < model.Size; v++ {
			for i, cell := range u {
				group[i] = lit(cell.Row, cell.Col, v)
			}
			addExactlyOne(group)
		}
	}
	model.Clues(p, func(r, c, v int) { // clue fixing: unit clause
		g.Add(lit(r, c, v))
		g.Add(z.LitNull)
		clauses++
	})
	stats := ports.Stats{Vars: model.Vars, Constraints: clauses}

	if ctx.Err() != nil {
		stats.Duration = time.Since(start)
		return nil, stats, ports.ErrTimeLimit
	}
	res := 0
	if dl, ok := ctx.Deadline(); ok {
		res = g.GoSolve().Try(time.Until(dl))
	} else {
		res = g.Solve()
	}
	stats.Duration = time.Since(start)

	switch res {
	case 1: // sat
	case -1:
		return nil, stats, ports.ErrInfeasible
	default: // 0: undetermined within the budget
		return nil, stats, ports.ErrTimeLimit
	}

	grid, err := model.Extract(func(r, c, v int) bool { return g.Value(lit(r, c, v)) })
	if err != nil {
		return nil, stats, err
	}
	return &domain.Solution{Values: grid}, stats, nil
}
