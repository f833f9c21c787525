package csp

import "github.com/pkg/errors"

// Sentinel construction errors. Csp.AddVariable and Csp.AddConstraint wrap
// these with the offending variable name via errors.Wrapf, so callers can
// errors.Is down to the sentinel while still getting a formatted message.
var (
	// ErrDuplicateVariable is returned by AddVariable when a variable of
	// the same name is already registered in the Csp.
	ErrDuplicateVariable = errors.New("csp: duplicate variable name")

	// ErrUnknownVariable is returned by AddConstraint when the
	// constraint's scope references a variable not yet registered.
	ErrUnknownVariable = errors.New("csp: constraint references unknown variable")
)
