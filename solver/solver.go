package solver

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultTolerance is how close to zero (in x-step or f-value) an
	// iterate must get before the solve is considered converged.
	DefaultTolerance = 1e-7
	// DefaultMaxIterations caps the number of Newton steps before the
	// solve fails.
	DefaultMaxIterations = 100
	// DefaultStep is the half-width used for the symmetric finite
	// difference when no derivative is supplied.
	DefaultStep = 1e-6

	derivativeEpsilon = 1e-12
)

var (
	// ErrNonConvergence is returned when the iteration cap is reached
	// before any iterate satisfies the tolerance.
	ErrNonConvergence = errors.New("solution did not converge")
	// ErrSingularDerivative is returned when the derivative at the
	// current iterate is too close to zero to take a Newton step.
	ErrSingularDerivative = errors.New("derivative too close to zero")
)

// Func is a scalar function of one real variable.
type Func func(float64) float64

// Solver holds the iteration policy for Newton-Raphson root finding.
// The zero value is not usable; construct with New or fill every field.
type Solver struct {
	Tolerance     float64
	MaxIterations int
	Step          float64
}

// New returns a Solver with the default iteration policy.
func New() Solver {
	return Solver{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		Step:          DefaultStep,
	}
}

// Solve finds x such that f(x) ≈ 0 starting from guess, using Newton
// steps x' = x - f(x)/f'(x).
//
// df is the exact derivative of f. If df is nil the derivative is
// approximated by the symmetric finite difference
// (f(x+h) - f(x-h)) / 2h with h = s.Step, which degrades each step to
// secant-like accuracy but needs nothing beyond f itself.
//
// Solve never returns a stale estimate: on failure the returned value
// is zero and the error wraps ErrNonConvergence or
// ErrSingularDerivative.
func (s Solver) Solve(f, df Func, guess float64) (float64, error) {
	if df == nil {
		df = func(x float64) float64 {
			return (f(x+s.Step) - f(x-s.Step)) / (2 * s.Step)
		}
	}

	x := guess
	for iter := 0; iter < s.MaxIterations; iter++ {
		slope := df(x)
		if math.Abs(slope) < derivativeEpsilon {
			return 0, fmt.Errorf("solve: %w at x=%g (iteration %d)", ErrSingularDerivative, x, iter)
		}

		next := x - f(x)/slope
		if math.Abs(next-x) < s.Tolerance || math.Abs(f(next)) < s.Tolerance {
			return next, nil
		}
		x = next
	}

	return 0, fmt.Errorf("solve: %w after %d iterations", ErrNonConvergence, s.MaxIterations)
}

// Root solves f with the default policy. See Solver.Solve.
func Root(f, df Func, guess float64) (float64, error) {
	return New().Solve(f, df, guess)
}
