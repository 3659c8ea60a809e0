package service

import "errors"

// Sentinel errors for the calculation failure modes. Solver failures
// (non-convergence, singular derivative) are wrapped and propagated
// from the solver package untouched, so errors.Is works against
// solver.ErrNonConvergence and solver.ErrSingularDerivative.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrLengthMismatch  = errors.New("amounts and frequencies must have the same length")
	ErrDomain          = errors.New("value outside the function domain")
)
