package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/crillab/gophersat/solver"

	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/model"
	"svw.info/sudoku-csp/internal/ports"
)

// Cardinality formulates the puzzle over gophersat: one boolean per
// (r,c,v) and an exactly-one constraint family per cell, unit and value.
// This is the 0/1 linear view of Sudoku, written as one at-least-one
// clause plus pairwise at-most-one clauses per family.
type Cardinality struct{}

func NewCardinality() *Cardinality { return &Cardinality{} }

func (e *Cardinality) Name() string { return "cardinality" }

// exactlyOne builds one at-least-one clause over lits plus a binary
// clause of negations per pair, so any two true lits falsify a clause.
func exactlyOne(lits []int) []solver.CardConstr {
	constrs := make([]solver.CardConstr, 0, 1+len(lits)*(len(lits)-1)/2)
	constrs = append(constrs, solver.AtLeast1(lits...))
	for i := 0; i < len(lits); i++ {
		for j := i + 1; j < len(lits); j++ {
			constrs = append(constrs, solver.AtLeast1(-lits[i], -lits[j]))
		}
	}
	return constrs
}

func (e *Cardinality) Solve(ctx context.Context, p *domain.Puzzle, opts ports.Options) (*domain.Solution, ports.Stats, error) {
	start := time.Now()
	if err := p.Validate(); err != nil {
		return nil, ports.Stats{}, err
	}
	ctx, cancel := withLimit(ctx, opts)
	defer cancel()

	// CNF variables are 1-based: variable model.Index(r,c,v)+1 asserts
	// "cell (r,c) holds digit v+1".
	lit := func(r, c, v int) int { return model.Index(r, c, v) + 1 }

	// 4 exactly-one families per cell, 1 + 36 clauses each, plus clues.
	perFamily := 1 + model.Size*(model.Size-1)/2
	constrs := make([]solver.CardConstr, 0, 4*model.Cells*perFamily+p.NumGivens())
	for r := 0; r < model.Size; r++ { // cell-fill
		for c := 0; c < model.Size; c++ {
			lits := make([]int, model.Size)
			for v := 0; v < model.Size; v++ {
				lits[v] = lit(r, c, v)
			}
			constrs = append(constrs, exactlyOne(lits)...)
		}
	}
	for _, u := range model.Units() { // row, column and box uniqueness
		for v := 0; v < model.Size; v++ {
			lits := make([]int, len(u))
			for i, cell := range u {
				lits[i] = lit(cell.Row, cell.Col, v)
			}
			constrs = append(constrs, exactlyOne(lits)...)
		}
	}
	model.Clues(p, func(r, c, v int) { // clue fixing: unit constraint
		constrs = append(constrs, solver.AtLeast1(lit(r, c, v)))
	})

	s := solver.New(solver.ParseCardConstrs(constrs))
	s.Verbose = opts.Verbose
	stats := ports.Stats{Vars: model.Vars, Constraints: len(constrs)}

	if ctx.Err() != nil {
		stats.Duration = time.Since(start)
		return nil, stats, ports.ErrTimeLimit
	}
	// gophersat exposes no cancellation hook, so the search runs on its
	// own goroutine and is abandoned if the context expires first.
	done := make(chan solver.Status, 1)
	go func() { done <- s.Solve() }()
	var status solver.Status
	select {
	case <-ctx.Done():
		stats.Duration = time.Since(start)
		return nil, stats, ports.ErrTimeLimit
	case status = <-done:
	}
	stats.Duration = time.Since(start)

	switch status {
	case solver.Sat:
	case solver.Unsat:
		return nil, stats, ports.ErrInfeasible
	default:
		return nil, stats, &ports.EngineError{Engine: e.Name(), Err: fmt.Errorf("unexpected solver status %v", status)}
	}

	m := s.Model() // m[i] is the binding of CNF variable i+1
	grid, err := model.Extract(func(r, c, v int) bool { return m[model.Index(r, c, v)] })
	if err != nil {
		return nil, stats, err
	}
	return &domain.Solution{Values: grid}, stats, nil
}
