package domain

import (
	"strings"
	"testing"
)

func TestParseAcceptsDotsZerosAndUnderscores(t *testing.T) {
	s := strings.Join([]string{
		"009008000",
		"1.609....",
		"0000103_2",
		"...57....",
		"43______9",
		"098003000",
		"002000074",
		"600000800",
		"540000003",
	}, "\n")

	p, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if p.Givens != DefaultPuzzle().Givens {
		t.Fatalf("parsed grid differs from the built-in instance:\n%v", p.Givens)
	}
}

func TestParseRejectsWrongLength(t *testing.T) {
	if _, err := Parse(strings.Repeat("0", 80)); err == nil {
		t.Fatalf("80 cells accepted")
	}
	if _, err := Parse(strings.Repeat("0", 82)); err == nil {
		t.Fatalf("82 cells accepted")
	}
}

func TestParseRejectsInvalidCharacter(t *testing.T) {
	s := strings.Repeat("0", 40) + "x" + strings.Repeat("0", 40)
	if _, err := Parse(s); err == nil {
		t.Fatalf("invalid character accepted")
	}
}

func TestValidateRejectsOutOfRangeCell(t *testing.T) {
	p := &Puzzle{}
	p.Givens[4][4] = 10
	if err := p.Validate(); err == nil {
		t.Fatalf("value 10 accepted")
	}
	if err := DefaultPuzzle().Validate(); err != nil {
		t.Fatalf("built-in instance rejected: %v", err)
	}
}

func TestNumGivens(t *testing.T) {
	if got := DefaultPuzzle().NumGivens(); got != 24 {
		t.Fatalf("NumGivens = %d, want 24", got)
	}
	if got := (&Puzzle{}).NumGivens(); got != 0 {
		t.Fatalf("empty puzzle NumGivens = %d, want 0", got)
	}
}
