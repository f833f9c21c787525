package solver

import (
	"github.com/sirupsen/logrus"

	"github.com/gocsp/csp/pkg/csp"
)

// ArcConsistency solves a Csp by first running AC-3 preprocessing over
// binary constraints, then backtracking while maintaining arc consistency
// (MAC) after each tentative assignment. A nil Logger is treated as
// disabled.
type ArcConsistency[T any] struct {
	Logger *logrus.Logger
}

// NewArcConsistency returns an ArcConsistency solver with logging
// disabled.
func NewArcConsistency[T any]() *ArcConsistency[T] {
	return &ArcConsistency[T]{}
}

type arc[T any] struct {
	xi, xj     csp.Variable[T]
	constraint *csp.Constraint[T]
}

// Solve returns the first complete consistent assignment found, or false
// if AC-3 preprocessing proves the problem inconsistent or backtracking
// exhausts the (arc-consistent) search space.
func (ac *ArcConsistency[T]) Solve(c *csp.Csp[T]) (*csp.Assignment[T], bool) {
	log := logger(ac.Logger)

	domains := make(map[csp.Variable[T]]csp.Domain[T], c.NumVariables())
	for _, v := range c.GetVariables() {
		if d, ok := c.GetDomain(v); ok {
			domains[v] = d
		}
	}

	if !ac3(c, domains, log) {
		log.Debug("arc consistency: AC-3 preprocessing found the problem unsolvable")
		return nil, false
	}

	assignment := csp.NewAssignment[T]()
	if ac.backtrack(c, assignment, domains, log) {
		return assignment, true
	}
	return nil, false
}

// binaryConstraints returns every registered constraint whose scope has
// exactly two variables. AC-3 propagates only these; non-binary
// constraints (all_different over >2 vars, sum) are left to the final
// Csp.IsConsistent check at each leaf.
func binaryConstraints[T any](c *csp.Csp[T]) []*csp.Constraint[T] {
	var out []*csp.Constraint[T]
	for _, constraint := range c.GetConstraints() {
		if len(constraint.Scope()) == 2 {
			out = append(out, constraint)
		}
	}
	return out
}

// ac3 runs the AC-3 worklist algorithm in place over domains, seeded with
// both directed arcs for every binary constraint. It reports false as
// soon as a domain is driven empty.
func ac3[T any](c *csp.Csp[T], domains map[csp.Variable[T]]csp.Domain[T], log *logrus.Logger) bool {
	var queue []arc[T]
	for _, constraint := range binaryConstraints(c) {
		scope := constraint.Scope()
		xi, xj := scope[0], scope[1]
		queue = append(queue, arc[T]{xi, xj, constraint}, arc[T]{xj, xi, constraint})
	}

	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]

		revised, ok := revise(domains, a.xi, a.xj, a.constraint)
		if !revised {
			continue
		}
		if !ok {
			log.WithField("variable", a.xi.Name()).Debug("arc consistency: domain wipeout")
			return false
		}

		for _, other := range c.GetConstraintsForVariable(a.xi) {
			if len(other.Scope()) != 2 {
				continue
			}
			for _, xk := range other.Scope() {
				if xk != a.xi && xk != a.xj {
					queue = append(queue, arc[T]{xk, a.xi, other})
				}
			}
		}
	}
	return true
}

// revise filters domains[xi] to values that have at least one supporting
// value in domains[xj] under constraint. It returns (revised, stillValid)
// where stillValid is false iff the revision emptied xi's domain.
func revise[T any](domains map[csp.Variable[T]]csp.Domain[T], xi, xj csp.Variable[T], constraint *csp.Constraint[T]) (bool, bool) {
	xiDomain := domains[xi]
	xjDomain := domains[xj]

	var keep []T
	revised := false
	for _, a := range xiDomain.Values() {
		supported := false
		for _, b := range xjDomain.Values() {
			trial := csp.NewAssignment[T]()
			trial.Assign(xi, a)
			trial.Assign(xj, b)
			if constraint.IsSatisfied(trial) {
				supported = true
				break
			}
		}
		if supported {
			keep = append(keep, a)
		} else {
			revised = true
		}
	}

	if !revised {
		return false, true
	}
	domains[xi] = xiDomain.RestrictTo(keep)
	return true, !domains[xi].IsEmpty()
}

func (ac *ArcConsistency[T]) backtrack(c *csp.Csp[T], assignment *csp.Assignment[T], domains map[csp.Variable[T]]csp.Domain[T], log *logrus.Logger) bool {
	if assignment.IsComplete(c.NumVariables()) {
		return true
	}

	v, ok := selectSmallestDomain(c, assignment, domains)
	if !ok {
		return false
	}
	domain := domains[v]

	for _, x := range domain.Values() {
		assignment.Assign(v, x)

		if c.IsConsistent(assignment) {
			saved := cloneDomains(domains)
			domains[v] = domains[v].RestrictTo([]T{x})

			if ac3(c, domains, log) {
				if ac.backtrack(c, assignment, domains, log) {
					return true
				}
			}

			domains = saved
		}

		assignment.Unassign(v)
	}
	return false
}
