package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/engine"
	"svw.info/sudoku-csp/internal/ports"
	"svw.info/sudoku-csp/internal/render"
	"svw.info/sudoku-csp/internal/usecase"
	"svw.info/sudoku-csp/internal/validator"
)

func main() {
	engineName := flag.String("engine", "all", "engine to use: cardinality|fd|cnf|all")
	puzzleStr := flag.String("puzzle", "", "81-char puzzle, row-major, 0/./_ for blanks (default: built-in instance)")
	timeLimit := flag.Duration("time-limit", 0, "wall-clock limit per engine (0 = none)")
	verbose := flag.Bool("verbose", false, "engine log output during search, where supported")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	flag.Parse()

	lvl := slog.LevelInfo
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	// Logs go to stderr; stdout carries only the rendered grids.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	p := domain.DefaultPuzzle()
	if *puzzleStr != "" {
		var err error
		p, err = domain.Parse(*puzzleStr)
		if err != nil {
			logger.Error("bad puzzle", "err", err)
			os.Exit(2)
		}
	}
	if err := p.Validate(); err != nil {
		logger.Error("bad puzzle", "err", err)
		os.Exit(2)
	}

	uc := usecase.NewService(
		engine.NewCardinality(),
		engine.NewFiniteDomain(),
		engine.NewClausal(),
	)
	opts := ports.Options{TimeLimit: *timeLimit, Verbose: *verbose}
	ctx := context.Background()

	var results []usecase.Result
	if *engineName == "all" {
		results = uc.SolveAll(ctx, p, opts)
	} else {
		sol, st, err := uc.Solve(ctx, *engineName, p, opts)
		results = []usecase.Result{{Engine: *engineName, Solution: sol, Stats: st, Err: err}}
	}

	exit := 0
	for _, res := range results {
		if res.Err != nil {
			switch {
			case errors.Is(res.Err, ports.ErrInfeasible):
				logger.Error("infeasible: the givens admit no completion", "engine", res.Engine, "dur", res.Stats.Duration)
			case errors.Is(res.Err, ports.ErrTimeLimit):
				logger.Error("no verdict within the time limit", "engine", res.Engine, "limit", *timeLimit)
			default:
				logger.Error("engine failure", "engine", res.Engine, "err", res.Err)
			}
			exit = 1
			continue
		}
		if !validator.IsSolved(res.Solution.Values) || !validator.Agrees(p, res.Solution.Values) {
			logger.Error("engine returned an invalid grid", "engine", res.Engine)
			exit = 1
			continue
		}
		logger.Info("solved",
			"engine", res.Engine,
			"givens", p.NumGivens(),
			"vars", res.Stats.Vars,
			"constraints", res.Stats.Constraints,
			"dur", res.Stats.Duration.Round(time.Microsecond),
		)
		fmt.Printf("%s:\n%s", res.Engine, render.SideBySide(p.Givens, res.Solution.Values))
	}
	os.Exit(exit)
}
