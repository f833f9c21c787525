package main

import (
	"fmt"

	"github.com/gocsp/csp/pkg/csp"
)

// australiaBorders lists the adjacent-region pairs used by the Australia
// map-coloring scenario from spec.md §8. T (Tasmania) is deliberately
// left unconstrained: it is an island.
var australiaBorders = [][2]string{
	{"WA", "NT"}, {"WA", "SA"}, {"NT", "SA"}, {"NT", "Q"}, {"SA", "Q"},
	{"SA", "NSW"}, {"SA", "V"}, {"Q", "NSW"}, {"NSW", "V"},
}

var australiaRegions = []string{"WA", "NT", "SA", "Q", "NSW", "V", "T"}

// buildMapColoring constructs the Australia 3-coloring CSP.
func buildMapColoring() *csp.Csp[string] {
	c := csp.New[string]()
	colors := []string{"red", "green", "blue"}

	for _, region := range australiaRegions {
		v := csp.NewVariable[string](region)
		if err := c.AddVariable(v, csp.NewListDomain(colors)); err != nil {
			panic(err) // construction-time invariant violation, not a search failure
		}
	}

	for _, pair := range australiaBorders {
		a := csp.NewVariable[string](pair[0])
		b := csp.NewVariable[string](pair[1])
		name := fmt.Sprintf("%s-%s", pair[0], pair[1])
		if err := c.AddConstraint(csp.Diff(name, a, b)); err != nil {
			panic(err)
		}
	}

	return c
}

// queenName returns the name of the variable representing the queen in
// column col.
func queenName(col int) string { return fmt.Sprintf("Q%d", col) }

// buildNQueens constructs the n-Queens CSP: one variable per column,
// holding the row the queen in that column occupies, with a pairwise
// constraint forbidding same-row and same-diagonal placements.
func buildNQueens(n int) *csp.Csp[int] {
	c := csp.New[int]()

	for col := 0; col < n; col++ {
		v := csp.NewVariable[int](queenName(col))
		if err := c.AddVariable(v, csp.NewListDomain(intRange(0, n-1))); err != nil {
			panic(err)
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			qi := csp.NewVariable[int](queenName(i))
			qj := csp.NewVariable[int](queenName(j))
			colDiff := j - i
			name := fmt.Sprintf("NonAttacking-%d-%d", i, j)
			constraint := csp.NewConstraint(name, []csp.Variable[int]{qi, qj}, func(a *csp.Assignment[int]) bool {
				rowI, _ := a.Get(qi)
				rowJ, _ := a.Get(qj)
				if rowI == rowJ {
					return false
				}
				rowDiff := rowJ - rowI
				if rowDiff < 0 {
					rowDiff = -rowDiff
				}
				return rowDiff != colDiff
			})
			if err := c.AddConstraint(constraint); err != nil {
				panic(err)
			}
		}
	}

	return c
}

func intRange(lo, hi int) []int {
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	return out
}

// cellName returns the name of the variable for Sudoku cell (row, col).
func cellName(row, col int) string { return fmt.Sprintf("C%d%d", row, col) }

// buildSudoku constructs the 4x4 Sudoku CSP from spec.md §8's fixed cells:
// given[r][c] == 0 means "unconstrained", any other value pins the cell's
// domain to that singleton.
func buildSudoku(given [4][4]int) *csp.Csp[int] {
	c := csp.New[int]()

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			v := csp.NewVariable[int](cellName(row, col))
			values := []int{1, 2, 3, 4}
			if fixed := given[row][col]; fixed != 0 {
				values = []int{fixed}
			}
			if err := c.AddVariable(v, csp.NewListDomain(values)); err != nil {
				panic(err)
			}
		}
	}

	for row := 0; row < 4; row++ {
		vars := make([]csp.Variable[int], 4)
		for col := 0; col < 4; col++ {
			vars[col] = csp.NewVariable[int](cellName(row, col))
		}
		if err := c.AddConstraint(csp.AllDifferent(fmt.Sprintf("Row%d", row), vars)); err != nil {
			panic(err)
		}
	}

	for col := 0; col < 4; col++ {
		vars := make([]csp.Variable[int], 4)
		for row := 0; row < 4; row++ {
			vars[row] = csp.NewVariable[int](cellName(row, col))
		}
		if err := c.AddConstraint(csp.AllDifferent(fmt.Sprintf("Col%d", col), vars)); err != nil {
			panic(err)
		}
	}

	for boxRow := 0; boxRow < 2; boxRow++ {
		for boxCol := 0; boxCol < 2; boxCol++ {
			var vars []csp.Variable[int]
			for row := 0; row < 2; row++ {
				for col := 0; col < 2; col++ {
					vars = append(vars, csp.NewVariable[int](cellName(boxRow*2+row, boxCol*2+col)))
				}
			}
			name := fmt.Sprintf("Box%d%d", boxRow, boxCol)
			if err := c.AddConstraint(csp.AllDifferent(name, vars)); err != nil {
				panic(err)
			}
		}
	}

	return c
}

// defaultSudoku is the fixed-cell scenario from spec.md §8.
var defaultSudoku = [4][4]int{
	{1, 0, 0, 4},
	{0, 0, 4, 0},
	{0, 1, 0, 0},
	{4, 0, 0, 2},
}
