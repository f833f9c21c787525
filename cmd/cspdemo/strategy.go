package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/gocsp/csp/pkg/csp"
	"github.com/gocsp/csp/pkg/heuristics"
	"github.com/gocsp/csp/pkg/solver"
)

// resolveStrategy maps a --heuristic flag value to a select/order pair.
func resolveStrategy[T any](name string) (heuristics.SelectFunc[T], heuristics.OrderFunc[T], error) {
	switch name {
	case "first", "":
		return heuristics.FirstUnassigned[T], heuristics.DomainOrder[T], nil
	case "mrv":
		return heuristics.MRV[T], heuristics.DomainOrder[T], nil
	case "degree":
		return heuristics.Degree[T], heuristics.DomainOrder[T], nil
	case "mrv-degree":
		return heuristics.MRVDegree[T], heuristics.DomainOrder[T], nil
	case "lcv":
		return heuristics.FirstUnassigned[T], heuristics.LCV[T], nil
	case "mrv-lcv":
		return heuristics.MRV[T], heuristics.LCV[T], nil
	default:
		return nil, nil, fmt.Errorf("unknown heuristic %q", name)
	}
}

// runOne solves c with the given solver/heuristic names and returns a
// single solution (or its absence); log is handed to the solver.
func runOne[T any](c *csp.Csp[T], solverName, heuristicName string, log *logrus.Logger) (*csp.Assignment[T], bool, error) {
	sel, ord, err := resolveStrategy[T](heuristicName)
	if err != nil {
		return nil, false, err
	}

	switch solverName {
	case "backtracking", "":
		bt := &solver.Backtracking[T]{Logger: log}
		a, ok := bt.FindSolution(c, sel, ord)
		return a, ok, nil
	case "fc":
		fc := &solver.ForwardChecking[T]{Logger: log}
		a, ok := fc.Solve(c)
		return a, ok, nil
	case "ac3":
		ac := &solver.ArcConsistency[T]{Logger: log}
		a, ok := ac.Solve(c)
		return a, ok, nil
	default:
		return nil, false, fmt.Errorf("unknown solver %q", solverName)
	}
}

// runAll returns every solution, or up to limit if limit > 0. Only the
// Backtracking engine supports multi-solution search; fc/ac3 are
// single-solution engines in this library and are rejected here. The
// subcommands call runAll only when --all is set.
func runAll[T any](c *csp.Csp[T], solverName, heuristicName string, limit int, log *logrus.Logger) ([]*csp.Assignment[T], error) {
	if solverName != "backtracking" && solverName != "" {
		return nil, fmt.Errorf("solver %q does not support --all/--limit, use backtracking", solverName)
	}
	sel, ord, err := resolveStrategy[T](heuristicName)
	if err != nil {
		return nil, err
	}
	bt := &solver.Backtracking[T]{Logger: log}
	if limit > 0 {
		return bt.FindLimitedSolutions(c, sel, ord, limit), nil
	}
	return bt.FindAllSolutions(c, sel, ord), nil
}
