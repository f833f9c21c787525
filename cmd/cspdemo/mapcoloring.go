package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMapColoringCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "map-coloring",
		Short: "Color the Australian states/territories so no bordering pair shares a color",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := buildMapColoring()
			log := newLogger()

			if allFlag {
				solutions, err := runAll(c, solverFlag, heuristicFlag, limitFlag, log)
				if err != nil {
					return err
				}
				fmt.Printf("found %d solution(s)\n", len(solutions))
				for i, s := range solutions {
					fmt.Printf("solution %d:\n", i+1)
					printAssignment(s)
				}
				return nil
			}

			solution, ok, err := runOne(c, solverFlag, heuristicFlag, log)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("no solution found")
				return nil
			}
			printAssignment(solution)
			return nil
		},
	}
}
