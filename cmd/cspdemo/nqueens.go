package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNQueensCmd() *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "n-queens",
		Short: "Place n non-attacking queens on an n x n board",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := buildNQueens(n)
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

	cmd.Flags().IntVar(&n, "n", 8, "board size")
	return cmd
}
