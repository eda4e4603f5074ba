// Package engine adapts three external constraint solvers to the common
// ports.Engine contract. Each adapter builds the same five constraint
// families — cell-fill, row-, column- and box-uniqueness, clue-fixing —
// in the idiom its backend understands, runs one synchronous search, and
// reads the assignment back through model.Extract.
//
// No adapter implements any search or propagation of its own; the
// combinatorial work happens entirely inside the backend library.
package engine

import (
	"context"

	"svw.info/sudoku-csp/internal/ports"
)

// withLimit derives the solve context from opts. The returned cancel func
// must always be called.
func withLimit(ctx context.Context, opts ports.Options) (context.Context, context.CancelFunc) {
	if opts.TimeLimit > 0 {
		return context.WithTimeout(ctx, opts.TimeLimit)
	}
	return context.WithCancel(ctx)
}
