// Command cspdemo exercises the csp solver library against a handful of
// classic constraint satisfaction problems: Australia map coloring,
// n-Queens, and 4x4 Sudoku.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gocsp/csp/pkg/csp"
)

var (
	solverFlag    string
	heuristicFlag string
	limitFlag     int
	allFlag       bool
	verboseFlag   bool
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	if verboseFlag {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.WarnLevel)
	}
	return l
}

func main() {
	rootCmd := &cobra.Command{
		Use:     "cspdemo",
		Short:   "Solve classic constraint satisfaction problems",
		Version: csp.Version.String(),
	}

	rootCmd.PersistentFlags().StringVar(&solverFlag, "solver", "backtracking", "solver to use: backtracking, fc, ac3")
	rootCmd.PersistentFlags().StringVar(&heuristicFlag, "heuristic", "first", "heuristic to use: first, mrv, degree, mrv-degree, lcv, mrv-lcv")
	rootCmd.PersistentFlags().IntVar(&limitFlag, "limit", 0, "with --all, stop after this many solutions (0 = unlimited)")
	rootCmd.PersistentFlags().BoolVar(&allFlag, "all", false, "find every solution instead of just the first")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newMapColoringCmd())
	rootCmd.AddCommand(newNQueensCmd())
	rootCmd.AddCommand(newSudokuCmd())
	rootCmd.AddCommand(newCompareCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
