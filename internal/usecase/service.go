package usecase

import (
	"context"
	"fmt"

	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/ports"
)

// Service fronts the registered solver engines behind one façade.
type Service struct {
	engines map[string]ports.Engine
	order   []string
}

// NewService registers engines under their Name(). A duplicate name keeps
// the first registration.
func NewService(engines ...ports.Engine) *Service {
	s := &Service{engines: make(map[string]ports.Engine, len(engines))}
	for _, e := range engines {
		if _, dup := s.engines[e.Name()]; dup {
			continue
		}
		s.engines[e.Name()] = e
		s.order = append(s.order, e.Name())
	}
	return s
}

// Names lists the registered engines in registration order.
func (s *Service) Names() []string { return append([]string(nil), s.order...) }

// Solve runs the named engine once on p.
func (s *Service) Solve(ctx context.Context, name string, p *domain.Puzzle, opts ports.Options) (*domain.Solution, ports.Stats, error) {
	e, ok := s.engines[name]
	if !ok {
		return nil, ports.Stats{}, fmt.Errorf("unknown engine %q (have %v)", name, s.order)
	}
	return e.Solve(ctx, p, opts)
}

// Result pairs one engine's outcome with its stats.
type Result struct {
	Engine   string
	Solution *domain.Solution
	Stats    ports.Stats
	Err      error
}

// SolveAll runs every registered engine on p in registration order. Each
// engine gets the full options budget; one engine failing does not stop
// the others.
func (s *Service) SolveAll(ctx context.Context, p *domain.Puzzle, opts ports.Options) []Result {
	out := make([]Result, 0, len(s.order))
	for _, name := range s.order {
		sol, st, err := s.engines[name].Solve(ctx, p, opts)
		out = append(out, Result{Engine: name, Solution: sol, Stats: st, Err: err})
	}
	return out
}
