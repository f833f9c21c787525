package solver

import (
	"github.com/sirupsen/logrus"

	"github.com/gocsp/csp/pkg/csp"
)

// ForwardChecking solves a Csp with MRV-by-current-domain-size selection
// and domain-order values, pruning neighbor domains one step ahead along
// the current search branch. A nil Logger is treated as disabled.
type ForwardChecking[T any] struct {
	Logger *logrus.Logger
}

// NewForwardChecking returns a ForwardChecking solver with logging
// disabled.
func NewForwardChecking[T any]() *ForwardChecking[T] {
	return &ForwardChecking[T]{}
}

// Solve returns the first complete consistent assignment found, or false
// if none exists.
func (fc *ForwardChecking[T]) Solve(c *csp.Csp[T]) (*csp.Assignment[T], bool) {
	log := logger(fc.Logger)
	assignment := csp.NewAssignment[T]()

	domains := make(map[csp.Variable[T]]csp.Domain[T], c.NumVariables())
	for _, v := range c.GetVariables() {
		if d, ok := c.GetDomain(v); ok {
			domains[v] = d
		}
	}

	if fc.backtrack(c, assignment, domains, log) {
		return assignment, true
	}
	return nil, false
}

func (fc *ForwardChecking[T]) backtrack(c *csp.Csp[T], assignment *csp.Assignment[T], domains map[csp.Variable[T]]csp.Domain[T], log *logrus.Logger) bool {
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

			if forwardCheck(c, v, assignment, domains, log) {
				if fc.backtrack(c, assignment, domains, log) {
					return true
				}
			} else {
				log.WithField("variable", v.Name()).Debug("forward checking: domain wipeout, backtracking")
			}

			domains = saved
		}

		assignment.Unassign(v)
	}
	return false
}

// selectSmallestDomain picks the unassigned variable whose current domain
// is smallest, stable by Csp.GetVariables order.
func selectSmallestDomain[T any](c *csp.Csp[T], assignment *csp.Assignment[T], domains map[csp.Variable[T]]csp.Domain[T]) (csp.Variable[T], bool) {
	var best csp.Variable[T]
	bestSize := -1
	found := false

	for _, v := range c.GetVariables() {
		if assignment.IsAssigned(v) {
			continue
		}
		size := domains[v].Size()
		if !found || size < bestSize {
			best, bestSize, found = v, size, true
		}
	}
	return best, found
}

// forwardCheck filters the domains of every unassigned neighbor of v (via
// constraints touching v) to values consistent with the current partial
// assignment. It reports false (wipeout) if any neighbor domain becomes
// empty.
func forwardCheck[T any](c *csp.Csp[T], v csp.Variable[T], assignment *csp.Assignment[T], domains map[csp.Variable[T]]csp.Domain[T], log *logrus.Logger) bool {
	for _, constraint := range c.GetConstraintsForVariable(v) {
		for _, u := range constraint.Scope() {
			if u == v || assignment.IsAssigned(u) {
				continue
			}

			current := domains[u]
			var valid []T
			for _, y := range current.Values() {
				trial := assignment.Clone()
				trial.Assign(u, y)
				if constraint.IsSatisfied(trial) {
					valid = append(valid, y)
				}
			}

			if len(valid) == 0 {
				return false
			}
			domains[u] = current.RestrictTo(valid)
		}
	}
	return true
}

func cloneDomains[T any](domains map[csp.Variable[T]]csp.Domain[T]) map[csp.Variable[T]]csp.Domain[T] {
	cp := make(map[csp.Variable[T]]csp.Domain[T], len(domains))
	for k, v := range domains {
		cp[k] = v
	}
	return cp
}
