package solver_test

import (
	"fmt"

	"github.com/gocsp/csp/pkg/csp"
)

// buildAustralia returns the classic Australia map-coloring CSP: seven
// regions, three colors, Diff constraints along each shared border.
// Tasmania (T) is unconstrained.
func buildAustralia() *csp.Csp[string] {
	c := csp.New[string]()
	colors := []string{"red", "green", "blue"}
	regions := []string{"WA", "NT", "SA", "Q", "NSW", "V", "T"}
	borders := [][2]string{
		{"WA", "NT"}, {"WA", "SA"}, {"NT", "SA"}, {"NT", "Q"}, {"SA", "Q"},
		{"SA", "NSW"}, {"SA", "V"}, {"Q", "NSW"}, {"NSW", "V"},
	}

	for _, r := range regions {
		if err := c.AddVariable(csp.NewVariable[string](r), csp.NewListDomain(colors)); err != nil {
			panic(err)
		}
	}
	for _, b := range borders {
		x := csp.NewVariable[string](b[0])
		y := csp.NewVariable[string](b[1])
		if err := c.AddConstraint(csp.Diff(fmt.Sprintf("%s-%s", b[0], b[1]), x, y)); err != nil {
			panic(err)
		}
	}
	return c
}

func queenVar(col int) csp.Variable[int] {
	return csp.NewVariable[int](fmt.Sprintf("Q%d", col))
}

// buildNQueens returns the n-Queens CSP: one variable per column holding
// the occupied row, with pairwise non-attacking constraints.
func buildNQueens(n int) *csp.Csp[int] {
	c := csp.New[int]()
	for col := 0; col < n; col++ {
		rows := make([]int, n)
		for i := range rows {
			rows[i] = i
		}
		if err := c.AddVariable(queenVar(col), csp.NewListDomain(rows)); err != nil {
			panic(err)
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			qi, qj := queenVar(i), queenVar(j)
			colDiff := j - i
			constraint := csp.NewConstraint(
				fmt.Sprintf("NonAttacking-%d-%d", i, j),
				[]csp.Variable[int]{qi, qj},
				func(a *csp.Assignment[int]) bool {
					ri, _ := a.Get(qi)
					rj, _ := a.Get(qj)
					if ri == rj {
						return false
					}
					d := rj - ri
					if d < 0 {
						d = -d
					}
					return d != colDiff
				},
			)
			if err := c.AddConstraint(constraint); err != nil {
				panic(err)
			}
		}
	}
	return c
}

func sudokuCell(row, col int) csp.Variable[int] {
	return csp.NewVariable[int](fmt.Sprintf("C%d%d", row, col))
}

// buildSudoku returns the 4x4 Sudoku CSP with given[r][c] == 0 meaning
// "unconstrained" and any other value pinning that cell's domain to a
// singleton.
func buildSudoku(given [4][4]int) *csp.Csp[int] {
	c := csp.New[int]()

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			values := []int{1, 2, 3, 4}
			if fixed := given[row][col]; fixed != 0 {
				values = []int{fixed}
			}
			if err := c.AddVariable(sudokuCell(row, col), csp.NewListDomain(values)); err != nil {
				panic(err)
			}
		}
	}

	for row := 0; row < 4; row++ {
		vars := make([]csp.Variable[int], 4)
		for col := 0; col < 4; col++ {
			vars[col] = sudokuCell(row, col)
		}
		if err := c.AddConstraint(csp.AllDifferent(fmt.Sprintf("Row%d", row), vars)); err != nil {
			panic(err)
		}
	}
	for col := 0; col < 4; col++ {
		vars := make([]csp.Variable[int], 4)
		for row := 0; row < 4; row++ {
			vars[row] = sudokuCell(row, col)
		}
		if err := c.AddConstraint(csp.AllDifferent(fmt.Sprintf("Col%d", col), vars)); err != nil {
			panic(err)
		}
	}
	for br := 0; br < 2; br++ {
		for bc := 0; bc < 2; bc++ {
			var vars []csp.Variable[int]
			for row := 0; row < 2; row++ {
				for col := 0; col < 2; col++ {
					vars = append(vars, sudokuCell(br*2+row, bc*2+col))
				}
			}
			if err := c.AddConstraint(csp.AllDifferent(fmt.Sprintf("Box%d%d", br, bc), vars)); err != nil {
				panic(err)
			}
		}
	}
	return c
}

var defaultSudoku = [4][4]int{
	{1, 0, 0, 4},
	{0, 0, 4, 0},
	{0, 1, 0, 0},
	{4, 0, 0, 2},
}

// buildEmptyCsp returns a Csp with no variables and no constraints.
func buildEmptyCsp() *csp.Csp[int] {
	return csp.New[int]()
}

// buildOddCycle returns an unsolvable CSP: a cycle of odd length where
// adjacent variables must differ but only two colors are available.
func buildOddCycle(n int) *csp.Csp[int] {
	c := csp.New[int]()
	colors := []int{0, 1}
	nodeVar := func(i int) csp.Variable[int] { return csp.NewVariable[int](fmt.Sprintf("N%d", i)) }

	for i := 0; i < n; i++ {
		if err := c.AddVariable(nodeVar(i), csp.NewListDomain(colors)); err != nil {
			panic(err)
		}
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if err := c.AddConstraint(csp.Diff(fmt.Sprintf("edge-%d-%d", i, j), nodeVar(i), nodeVar(j))); err != nil {
			panic(err)
		}
	}
	return c
}
