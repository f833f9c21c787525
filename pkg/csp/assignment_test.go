package csp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocsp/csp/pkg/csp"
)

func TestAssignment_AssignAndGet(t *testing.T) {
	a := csp.NewAssignment[int]()
	x := csp.NewVariable[int]("x")

	_, ok := a.Get(x)
	assert.False(t, ok)
	assert.False(t, a.IsAssigned(x))

	a.Assign(x, 7)
	val, ok := a.Get(x)
	require.True(t, ok)
	assert.Equal(t, 7, val)
	assert.True(t, a.IsAssigned(x))
	assert.Equal(t, 1, a.Size())
}

func TestAssignment_AssignOverwrites(t *testing.T) {
	a := csp.NewAssignment[int]()
	x := csp.NewVariable[int]("x")

	a.Assign(x, 1)
	a.Assign(x, 2)

	val, ok := a.Get(x)
	require.True(t, ok)
	assert.Equal(t, 2, val)
	assert.Equal(t, 1, a.Size(), "reassigning an already-bound variable must not grow the assignment")
}

func TestAssignment_Unassign(t *testing.T) {
	a := csp.NewAssignment[int]()
	x := csp.NewVariable[int]("x")

	a.Assign(x, 1)
	a.Unassign(x)

	assert.False(t, a.IsAssigned(x))
	assert.Equal(t, 0, a.Size())
}

func TestAssignment_UnassignUnboundIsNoop(t *testing.T) {
	a := csp.NewAssignment[int]()
	x := csp.NewVariable[int]("x")
	a.Unassign(x)
	assert.Equal(t, 0, a.Size())
}

func TestAssignment_IsComplete(t *testing.T) {
	a := csp.NewAssignment[int]()
	assert.True(t, a.IsComplete(0))
	assert.False(t, a.IsComplete(1))

	a.Assign(csp.NewVariable[int]("x"), 1)
	assert.True(t, a.IsComplete(1))
	assert.False(t, a.IsComplete(2))
}

func TestAssignment_CloneIsIndependent(t *testing.T) {
	a := csp.NewAssignment[int]()
	x := csp.NewVariable[int]("x")
	a.Assign(x, 1)

	clone := a.Clone()
	clone.Assign(x, 2)
	clone.Assign(csp.NewVariable[int]("y"), 3)

	val, _ := a.Get(x)
	assert.Equal(t, 1, val, "mutating a clone must not affect the original")
	assert.Equal(t, 1, a.Size())
	assert.Equal(t, 2, clone.Size())
}

func TestAssignment_PairsPreservesAssignmentOrder(t *testing.T) {
	a := csp.NewAssignment[int]()
	z := csp.NewVariable[int]("z")
	y := csp.NewVariable[int]("y")
	x := csp.NewVariable[int]("x")

	a.Assign(z, 1)
	a.Assign(y, 2)
	a.Assign(x, 3)

	pairs := a.Pairs()
	require.Len(t, pairs, 3)
	assert.Equal(t, "z", pairs[0].Variable.Name())
	assert.Equal(t, "y", pairs[1].Variable.Name())
	assert.Equal(t, "x", pairs[2].Variable.Name())
}

func TestAssignment_IsConsistent(t *testing.T) {
	x := csp.NewVariable[int]("x")
	y := csp.NewVariable[int]("y")
	diff := csp.Diff("x!=y", x, y)

	a := csp.NewAssignment[int]()
	assert.True(t, a.IsConsistent([]*csp.Constraint[int]{diff}), "unassigned constraint is vacuously consistent")

	a.Assign(x, 1)
	a.Assign(y, 1)
	assert.False(t, a.IsConsistent([]*csp.Constraint[int]{diff}))

	a.Assign(y, 2)
	assert.True(t, a.IsConsistent([]*csp.Constraint[int]{diff}))
}
