package csp

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Csp is the problem container: a mapping from Variable to Domain plus an
// ordered list of constraints. It is built once via AddVariable/
// AddConstraint and then treated as immutable during solving — nothing
// about search mutates a Csp.
type Csp[T any] struct {
	domains     map[Variable[T]]Domain[T]
	order       []Variable[T]
	constraints []*Constraint[T]
}

// New returns an empty Csp.
func New[T any]() *Csp[T] {
	return &Csp[T]{domains: make(map[Variable[T]]Domain[T])}
}

// AddVariable registers v with the given domain. It fails with
// ErrDuplicateVariable if a variable of the same name is already
// registered.
func (c *Csp[T]) AddVariable(v Variable[T], domain Domain[T]) error {
	if _, exists := c.domains[v]; exists {
		return errors.Wrapf(ErrDuplicateVariable, "variable %q", v.Name())
	}
	c.domains[v] = domain
	c.order = append(c.order, v)
	return nil
}

// AddConstraint registers constraint. It fails with ErrUnknownVariable if
// any variable in the constraint's scope has not already been registered
// via AddVariable.
func (c *Csp[T]) AddConstraint(constraint *Constraint[T]) error {
	for _, v := range constraint.Scope() {
		if _, ok := c.domains[v]; !ok {
			return errors.Wrapf(ErrUnknownVariable, "variable %q in constraint %q", v.Name(), constraint.Name())
		}
	}
	c.constraints = append(c.constraints, constraint)
	return nil
}

// GetDomain returns v's domain and whether v is registered.
func (c *Csp[T]) GetDomain(v Variable[T]) (Domain[T], bool) {
	d, ok := c.domains[v]
	return d, ok
}

// GetVariables returns all registered variables, in registration order.
// This order, together with each domain's Values() order, fixes the
// traversal order of every solver.
func (c *Csp[T]) GetVariables() []Variable[T] {
	out := make([]Variable[T], len(c.order))
	copy(out, c.order)
	return out
}

// GetConstraints returns all registered constraints, in registration
// order.
func (c *Csp[T]) GetConstraints() []*Constraint[T] {
	out := make([]*Constraint[T], len(c.constraints))
	copy(out, c.constraints)
	return out
}

// GetConstraintsForVariable returns the constraints whose scope includes
// v.
func (c *Csp[T]) GetConstraintsForVariable(v Variable[T]) []*Constraint[T] {
	var out []*Constraint[T]
	for _, constraint := range c.constraints {
		if constraint.Involves(v) {
			out = append(out, constraint)
		}
	}
	return out
}

// NumVariables returns the number of registered variables.
func (c *Csp[T]) NumVariables() int { return len(c.order) }

// NumConstraints returns the number of registered constraints.
func (c *Csp[T]) NumConstraints() int { return len(c.constraints) }

// IsConsistent reports whether assignment violates no registered
// constraint.
func (c *Csp[T]) IsConsistent(assignment *Assignment[T]) bool {
	return assignment.IsConsistent(c.constraints)
}

// IsSolution reports whether assignment is both complete and consistent.
func (c *Csp[T]) IsSolution(assignment *Assignment[T]) bool {
	return assignment.IsComplete(c.NumVariables()) && c.IsConsistent(assignment)
}

func (c *Csp[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CSP with %d variables and %d constraints:\n", c.NumVariables(), c.NumConstraints())
	b.WriteString("Variables:\n")
	for _, v := range c.order {
		d := c.domains[v]
		fmt.Fprintf(&b, "  %s with domain of size %d: {", v, d.Size())
		for i, val := range d.Values() {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%v", val)
		}
		b.WriteString("}\n")
	}
	b.WriteString("Constraints:\n")
	for i, constraint := range c.constraints {
		fmt.Fprintf(&b, "  %d: %s\n", i+1, constraint)
	}
	return b.String()
}
