// Package solver implements the search engines built on top of pkg/csp
// and pkg/heuristics: chronological backtracking (parameterized by a
// variable-selection and value-ordering strategy), Forward Checking, and
// AC-3 preprocessing + Maintain Arc Consistency (MAC) during search.
package solver

import (
	"io"

	"github.com/sirupsen/logrus"
)

// discardLogger is shared by every solver whose Logger field is left nil,
// so a zero-value solver costs nothing beyond the log call itself.
var discardLogger = newDiscardLogger()

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func logger(l *logrus.Logger) *logrus.Logger {
	if l == nil {
		return discardLogger
	}
	return l
}
