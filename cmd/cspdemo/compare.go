package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gocsp/csp/pkg/csp"
)

// strategyRun names a single solver/heuristic combination to time.
type strategyRun struct {
	solver    string
	heuristic string
}

var compareRuns = []strategyRun{
	{"backtracking", "first"},
	{"backtracking", "mrv"},
	{"backtracking", "mrv-degree"},
	{"backtracking", "lcv"},
	{"fc", "first"},
	{"ac3", "first"},
}

func newCompareCmd() *cobra.Command {
	var problem string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Time every solver/heuristic combination against one problem",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch problem {
			case "map-coloring", "":
				return compareProblem(buildMapColoring)
			case "n-queens":
				return compareProblem(func() *csp.Csp[int] { return buildNQueens(8) })
			case "sudoku":
				return compareProblem(func() *csp.Csp[int] { return buildSudoku(defaultSudoku) })
			default:
				return fmt.Errorf("unknown problem %q", problem)
			}
		},
	}

	cmd.Flags().StringVar(&problem, "problem", "map-coloring", "problem to time: map-coloring, n-queens, sudoku")
	return cmd
}

// compareProblem times every entry in compareRuns against a freshly built
// Csp per run, since each solver mutates its own domain snapshots.
func compareProblem[T any](build func() *csp.Csp[T]) error {
	for _, run := range compareRuns {
		c := build()
		log := newLogger()

		start := time.Now()
		_, ok, err := runOne(c, run.solver, run.heuristic, log)
		elapsed := time.Since(start)

		if err != nil {
			fmt.Printf("%-12s %-12s  error: %v\n", run.solver, run.heuristic, err)
			continue
		}
		fmt.Printf("%-12s %-12s  solved=%-5v  %v\n", run.solver, run.heuristic, ok, elapsed)
	}
	return nil
}
