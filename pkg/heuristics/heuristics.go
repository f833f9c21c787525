// Package heuristics implements the standard variable-selection and
// value-ordering strategies used by pkg/solver: first-unassigned,
// domain-order, MRV, degree, MRV+degree, and LCV. Every function here is a
// pure function of (assignment, csp) — none mutate their arguments.
package heuristics

import (
	"sort"

	"github.com/gocsp/csp/pkg/csp"
)

// SelectFunc chooses the next unassigned variable to branch on, or false
// if every variable is already assigned.
type SelectFunc[T any] func(a *csp.Assignment[T], c *csp.Csp[T]) (csp.Variable[T], bool)

// OrderFunc returns the order in which to try v's candidate values.
type OrderFunc[T any] func(v csp.Variable[T], domain csp.Domain[T], a *csp.Assignment[T], c *csp.Csp[T]) []T

// FirstUnassigned selects the first variable in Csp.GetVariables order
// that is not yet bound.
func FirstUnassigned[T any](a *csp.Assignment[T], c *csp.Csp[T]) (csp.Variable[T], bool) {
	for _, v := range c.GetVariables() {
		if !a.IsAssigned(v) {
			return v, true
		}
	}
	var zero csp.Variable[T]
	return zero, false
}

// DomainOrder returns domain.Values() unchanged.
func DomainOrder[T any](_ csp.Variable[T], domain csp.Domain[T], _ *csp.Assignment[T], _ *csp.Csp[T]) []T {
	return domain.Values()
}

// consistentValueCount counts, among domain's values, how many x make
// a∪{v:x} consistent with every constraint in c. This is the "global
// consistency probe" form of the count: spec.md documents a faster
// constraints-involving-v-only variant as behavior-preserving only under
// an invariant that holds during plain backtracking (only v is newly
// assigned since the last consistent check); this implementation always
// uses the global probe, which is correct unconditionally.
func consistentValueCount[T any](v csp.Variable[T], domain csp.Domain[T], a *csp.Assignment[T], c *csp.Csp[T]) int {
	count := 0
	for _, x := range domain.Values() {
		trial := a.Clone()
		trial.Assign(v, x)
		if c.IsConsistent(trial) {
			count++
		}
	}
	return count
}

// MRV (Minimum Remaining Values) selects the unassigned variable
// minimizing the count of currently-consistent values. Ties are broken by
// Csp.GetVariables order. A variable with no registered domain scores as
// maxInt (+infinity), so it is selected only when no other unassigned
// variable has a lower count.
func MRV[T any](a *csp.Assignment[T], c *csp.Csp[T]) (csp.Variable[T], bool) {
	var best csp.Variable[T]
	bestCount := -1
	found := false

	for _, v := range c.GetVariables() {
		if a.IsAssigned(v) {
			continue
		}
		count := maxInt
		if domain, ok := c.GetDomain(v); ok {
			count = consistentValueCount(v, domain, a, c)
		}
		if !found || count < bestCount {
			best, bestCount, found = v, count, true
		}
	}
	return best, found
}

const maxInt = int(^uint(0) >> 1)

// Degree selects the unassigned variable maximizing the sum, over
// constraints it participates in, of the count of still-unassigned scope
// members (itself included).
func Degree[T any](a *csp.Assignment[T], c *csp.Csp[T]) (csp.Variable[T], bool) {
	var best csp.Variable[T]
	bestScore := -1
	found := false

	for _, v := range c.GetVariables() {
		if a.IsAssigned(v) {
			continue
		}
		score := degreeScore(v, a, c)
		if !found || score > bestScore {
			best, bestScore, found = v, score, true
		}
	}
	return best, found
}

func degreeScore[T any](v csp.Variable[T], a *csp.Assignment[T], c *csp.Csp[T]) int {
	score := 0
	for _, constraint := range c.GetConstraintsForVariable(v) {
		for _, scopeVar := range constraint.Scope() {
			if !a.IsAssigned(scopeVar) {
				score++
			}
		}
	}
	return score
}

// MRVDegree first computes MRV's minimum consistent-value count m, then
// among all unassigned variables tied at m, chooses the one maximizing
// the degree score. Ties after that are broken by Csp.GetVariables order.
func MRVDegree[T any](a *csp.Assignment[T], c *csp.Csp[T]) (csp.Variable[T], bool) {
	unassigned := make([]csp.Variable[T], 0)
	for _, v := range c.GetVariables() {
		if !a.IsAssigned(v) {
			unassigned = append(unassigned, v)
		}
	}
	if len(unassigned) == 0 {
		var zero csp.Variable[T]
		return zero, false
	}

	min := maxInt
	counts := make(map[csp.Variable[T]]int, len(unassigned))
	for _, v := range unassigned {
		count := maxInt
		if domain, ok := c.GetDomain(v); ok {
			count = consistentValueCount(v, domain, a, c)
		}
		counts[v] = count
		if count < min {
			min = count
		}
	}

	var best csp.Variable[T]
	bestScore := -1
	found := false
	for _, v := range unassigned {
		if counts[v] != min {
			continue
		}
		score := degreeScore(v, a, c)
		if !found || score > bestScore {
			best, bestScore, found = v, score, true
		}
	}
	return best, found
}

// LCV (Least Constraining Value) orders v's candidate values ascending by
// the number of (neighbor, value) pairs that would become inconsistent if
// the candidate were assigned. Ties are broken stably, preserving
// domain.Values() order.
func LCV[T any](v csp.Variable[T], domain csp.Domain[T], a *csp.Assignment[T], c *csp.Csp[T]) []T {
	values := domain.Values()
	scores := make([]int, len(values))

	neighbors := make([]csp.Variable[T], 0)
	for _, u := range c.GetVariables() {
		if u != v && !a.IsAssigned(u) {
			neighbors = append(neighbors, u)
		}
	}

	for i, x := range values {
		extended := a.Clone()
		extended.Assign(v, x)

		ruledOut := 0
		for _, u := range neighbors {
			uDomain, ok := c.GetDomain(u)
			if !ok {
				continue
			}
			for _, y := range uDomain.Values() {
				trial := extended.Clone()
				trial.Assign(u, y)
				if !c.IsConsistent(trial) {
					ruledOut++
				}
			}
		}
		scores[i] = ruledOut
	}

	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return scores[order[i]] < scores[order[j]] })

	out := make([]T, len(values))
	for i, idx := range order {
		out[i] = values[idx]
	}
	return out
}
