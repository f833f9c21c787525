package solver

import (
	"github.com/sirupsen/logrus"

	"github.com/gocsp/csp/pkg/csp"
	"github.com/gocsp/csp/pkg/heuristics"
)

// Backtracking is the chronological-backtracking search engine: one
// recursive procedure that maintains a single mutable Assignment
// (trial/rollback), parameterized by a SelectFunc and an OrderFunc.
// A nil Logger is treated as disabled.
type Backtracking[T any] struct {
	Logger *logrus.Logger
}

// NewBacktracking returns a Backtracking engine with logging disabled.
func NewBacktracking[T any]() *Backtracking[T] {
	return &Backtracking[T]{}
}

// FindSolution returns the first complete consistent assignment found, or
// false if the search space is exhausted.
func (b *Backtracking[T]) FindSolution(c *csp.Csp[T], sel heuristics.SelectFunc[T], ord heuristics.OrderFunc[T]) (*csp.Assignment[T], bool) {
	log := logger(b.Logger)
	assignment := csp.NewAssignment[T]()
	var found *csp.Assignment[T]

	b.backtrack(c, sel, ord, assignment, log, func(solution *csp.Assignment[T]) bool {
		found = solution
		return true // stop after first
	})
	if found == nil {
		return nil, false
	}
	return found, true
}

// FindAllSolutions returns every distinct complete consistent assignment,
// in the deterministic left-to-right preorder of the search tree fixed by
// sel/ord and the Csp's own variable/domain iteration order.
func (b *Backtracking[T]) FindAllSolutions(c *csp.Csp[T], sel heuristics.SelectFunc[T], ord heuristics.OrderFunc[T]) []*csp.Assignment[T] {
	log := logger(b.Logger)
	assignment := csp.NewAssignment[T]()
	var solutions []*csp.Assignment[T]

	b.backtrack(c, sel, ord, assignment, log, func(solution *csp.Assignment[T]) bool {
		solutions = append(solutions, solution)
		return false // keep searching
	})
	return solutions
}

// FindLimitedSolutions returns at most limit solutions, in discovery
// order. limit == 0 returns an empty slice without invoking any
// predicate.
func (b *Backtracking[T]) FindLimitedSolutions(c *csp.Csp[T], sel heuristics.SelectFunc[T], ord heuristics.OrderFunc[T], limit int) []*csp.Assignment[T] {
	if limit == 0 {
		return nil
	}
	log := logger(b.Logger)
	assignment := csp.NewAssignment[T]()
	solutions := make([]*csp.Assignment[T], 0, limit)

	b.backtrack(c, sel, ord, assignment, log, func(solution *csp.Assignment[T]) bool {
		solutions = append(solutions, solution)
		return len(solutions) >= limit
	})
	return solutions
}

// backtrack runs the shared recursive core. onSolution is called with a
// clone of a freshly-completed assignment; its return value says whether
// the search should stop entirely (true) or keep exploring (false).
func (b *Backtracking[T]) backtrack(
	c *csp.Csp[T],
	sel heuristics.SelectFunc[T],
	ord heuristics.OrderFunc[T],
	assignment *csp.Assignment[T],
	log *logrus.Logger,
	onSolution func(*csp.Assignment[T]) bool,
) bool {
	if assignment.IsComplete(c.NumVariables()) {
		log.WithField("assignment", assignment.String()).Debug("solver: complete assignment found")
		return onSolution(assignment.Clone())
	}

	v, ok := sel(assignment, c)
	if !ok {
		return false // dead end: no candidate variable but not complete
	}

	domain, ok := c.GetDomain(v)
	if !ok {
		return false
	}

	for _, x := range ord(v, domain, assignment, c) {
		assignment.Assign(v, x)
		if c.IsConsistent(assignment) {
			log.WithFields(logrus.Fields{"variable": v.Name(), "value": x}).Debug("solver: consistent assignment, recursing")
			if b.backtrack(c, sel, ord, assignment, log, onSolution) {
				return true
			}
		}
		assignment.Unassign(v)
	}
	return false
}

// Convenience wrappers, each a single-solution or all-solutions search
// under a named heuristic combination.

// BacktrackSearch finds one solution using first-unassigned selection and
// domain-order values.
func BacktrackSearch[T any](c *csp.Csp[T]) (*csp.Assignment[T], bool) {
	return NewBacktracking[T]().FindSolution(c, heuristics.FirstUnassigned[T], heuristics.DomainOrder[T])
}

// MRVSearch finds one solution using MRV selection and domain-order
// values.
func MRVSearch[T any](c *csp.Csp[T]) (*csp.Assignment[T], bool) {
	return NewBacktracking[T]().FindSolution(c, heuristics.MRV[T], heuristics.DomainOrder[T])
}

// LCVSearch finds one solution using first-unassigned selection and LCV
// values.
func LCVSearch[T any](c *csp.Csp[T]) (*csp.Assignment[T], bool) {
	return NewBacktracking[T]().FindSolution(c, heuristics.FirstUnassigned[T], heuristics.LCV[T])
}

// MRVLCVSearch finds one solution using MRV selection and LCV values.
func MRVLCVSearch[T any](c *csp.Csp[T]) (*csp.Assignment[T], bool) {
	return NewBacktracking[T]().FindSolution(c, heuristics.MRV[T], heuristics.LCV[T])
}

// MRVDegreeSearch finds one solution using the MRV+degree selection and
// domain-order values.
func MRVDegreeSearch[T any](c *csp.Csp[T]) (*csp.Assignment[T], bool) {
	return NewBacktracking[T]().FindSolution(c, heuristics.MRVDegree[T], heuristics.DomainOrder[T])
}

// FindAllBacktracking finds every solution using first-unassigned
// selection and domain-order values.
func FindAllBacktracking[T any](c *csp.Csp[T]) []*csp.Assignment[T] {
	return NewBacktracking[T]().FindAllSolutions(c, heuristics.FirstUnassigned[T], heuristics.DomainOrder[T])
}

// FindAllMRV finds every solution using MRV selection and domain-order
// values.
func FindAllMRV[T any](c *csp.Csp[T]) []*csp.Assignment[T] {
	return NewBacktracking[T]().FindAllSolutions(c, heuristics.MRV[T], heuristics.DomainOrder[T])
}

// FindAllLCV finds every solution using first-unassigned selection and
// LCV values.
func FindAllLCV[T any](c *csp.Csp[T]) []*csp.Assignment[T] {
	return NewBacktracking[T]().FindAllSolutions(c, heuristics.FirstUnassigned[T], heuristics.LCV[T])
}

// FindAllMRVLCV finds every solution using MRV selection and LCV values.
func FindAllMRVLCV[T any](c *csp.Csp[T]) []*csp.Assignment[T] {
	return NewBacktracking[T]().FindAllSolutions(c, heuristics.MRV[T], heuristics.LCV[T])
}
