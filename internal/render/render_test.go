package render

import (
	"strings"
	"testing"

	"svw.info/sudoku-csp/internal/domain"
)

const wantEmpty = `┌───────┬───────┬───────┐
│ _ _ _ │ _ _ _ │ _ _ _ │
│ _ _ _ │ _ _ _ │ _ _ _ │
│ _ _ _ │ _ _ _ │ _ _ _ │
├───────┼───────┼───────┤
│ _ _ _ │ _ _ _ │ _ _ _ │
│ _ _ _ │ _ _ _ │ _ _ _ │
│ _ _ _ │ _ _ _ │ _ _ _ │
├───────┼───────┼───────┤
│ _ _ _ │ _ _ _ │ _ _ _ │
│ _ _ _ │ _ _ _ │ _ _ _ │
│ _ _ _ │ _ _ _ │ _ _ _ │
└───────┴───────┴───────┘
`

func TestGridRendersAllBlanksAsPlaceholders(t *testing.T) {
	got := Grid(domain.Grid{})
	if got != wantEmpty {
		t.Fatalf("wrong rendering:\ngot:\n%s\nwant:\n%s", got, wantEmpty)
	}
}

const wantDefault = `┌───────┬───────┬───────┐
│ _ _ 9 │ _ _ 8 │ _ _ _ │
│ 1 _ 6 │ _ 9 _ │ _ _ _ │
│ _ _ _ │ _ 1 _ │ 3 _ 2 │
├───────┼───────┼───────┤
│ _ _ _ │ 5 7 _ │ _ _ _ │
│ 4 3 _ │ _ _ _ │ _ _ 9 │
│ _ 9 8 │ _ _ 3 │ _ _ _ │
├───────┼───────┼───────┤
│ _ _ 2 │ _ _ _ │ _ 7 4 │
│ 6 _ _ │ _ _ _ │ 8 _ _ │
│ 5 4 _ │ _ _ _ │ _ _ 3 │
└───────┴───────┴───────┘
`

func TestGridRendersGivens(t *testing.T) {
	got := Grid(domain.DefaultPuzzle().Givens)
	if got != wantDefault {
		t.Fatalf("wrong rendering:\ngot:\n%s\nwant:\n%s", got, wantDefault)
	}
}

const wantSideBySide = `┌───────┬───────┬───────┐   ┌───────┬───────┬───────┐
│ _ _ _ │ _ _ _ │ _ _ _ │   │ _ _ _ │ _ _ _ │ _ _ _ │
│ _ _ _ │ _ _ _ │ _ _ _ │   │ _ _ _ │ _ _ _ │ _ _ _ │
│ _ _ _ │ _ _ _ │ _ _ _ │   │ _ _ _ │ _ _ _ │ _ _ _ │
├───────┼───────┼───────┤   ├───────┼───────┼───────┤
│ _ _ _ │ _ _ _ │ _ _ _ │   │ _ _ _ │ _ _ _ │ _ _ _ │
│ _ _ _ │ _ _ _ │ _ _ _ │ → │ _ _ _ │ _ _ _ │ _ _ _ │
│ _ _ _ │ _ _ _ │ _ _ _ │   │ _ _ _ │ _ _ _ │ _ _ _ │
├───────┼───────┼───────┤   ├───────┼───────┼───────┤
│ _ _ _ │ _ _ _ │ _ _ _ │   │ _ _ _ │ _ _ _ │ _ _ _ │
│ _ _ _ │ _ _ _ │ _ _ _ │   │ _ _ _ │ _ _ _ │ _ _ _ │
│ _ _ _ │ _ _ _ │ _ _ _ │   │ _ _ _ │ _ _ _ │ _ _ _ │
└───────┴───────┴───────┘   └───────┴───────┴───────┘
`

func TestSideBySideJoinsBoardsWithArrowOnMiddleRow(t *testing.T) {
	got := SideBySide(domain.Grid{}, domain.Grid{})
	if got != wantSideBySide {
		t.Fatalf("wrong rendering:\ngot:\n%s\nwant:\n%s", got, wantSideBySide)
	}
}

func TestRenderDoesNotMutateInput(t *testing.T) {
	g := domain.DefaultPuzzle().Givens
	before := g
	_ = Grid(g)
	_ = SideBySide(g, g)
	if g != before {
		t.Fatalf("renderer mutated its input")
	}
}

func TestGridLinesHaveUniformWidth(t *testing.T) {
	lines := strings.Split(strings.TrimRight(Grid(domain.Grid{}), "\n"), "\n")
	if len(lines) != 13 {
		t.Fatalf("got %d lines, want 13", len(lines))
	}
	width := len([]rune(lines[0]))
	for i, ln := range lines {
		if len([]rune(ln)) != width {
			t.Fatalf("line %d width %d, want %d", i, len([]rune(ln)), width)
		}
	}
}
