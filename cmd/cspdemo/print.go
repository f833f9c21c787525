package main

import (
	"fmt"
	"sort"

	"github.com/gocsp/csp/pkg/csp"
)

// printAssignment renders an assignment's variable/value pairs sorted by
// variable name, so output is deterministic regardless of map iteration.
func printAssignment[T any](a *csp.Assignment[T]) {
	pairs := a.Pairs()
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Variable.Name() < pairs[j].Variable.Name()
	})
	for _, p := range pairs {
		fmt.Printf("  %s = %v\n", p.Variable.Name(), p.Value)
	}
}
