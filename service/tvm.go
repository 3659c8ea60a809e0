package service

import (
	"fmt"
	"math"

	"finance-engine/domain"
)

// SolveTVM solves the TVM equation for the variable named by in.Find.
// pv, pmt, fv and n have closed forms; ir is found iteratively with
// the root solver. The ir = 0 degenerate equation pv + pmt·n + fv = 0
// is branched explicitly everywhere, never left to float behavior at
// the singularity.
func (s *FinanceService) SolveTVM(in domain.TVMInput) (float64, error) {
	if in.Find != domain.VarRate && in.Rate <= -1 {
		return 0, fmt.Errorf("%w: interest rate must be greater than -1", ErrDomain)
	}
	if in.Find != domain.VarPeriods && math.Abs(in.Periods) > MaxPeriods {
		return 0, fmt.Errorf("%w: periods exceed the maximum of %d", ErrInvalidArgument, MaxPeriods)
	}

	var (
		value float64
		err   error
	)
	switch in.Find {
	case domain.VarPresentValue:
		value, err = solvePresentValue(in.Periods, in.Rate, in.Payment, in.FutureValue)
	case domain.VarPayment:
		value, err = solvePayment(in.Periods, in.Rate, in.PresentValue, in.FutureValue)
	case domain.VarFutureValue:
		value, err = solveFutureValue(in.Periods, in.Rate, in.PresentValue, in.Payment)
	case domain.VarPeriods:
		value, err = solvePeriods(in.Rate, in.PresentValue, in.Payment, in.FutureValue)
	case domain.VarRate:
		value, err = s.solveRate(in.Periods, in.PresentValue, in.Payment, in.FutureValue)
	default:
		return 0, fmt.Errorf("%w: unknown tvm variable %q", ErrInvalidArgument, in.Find)
	}
	if err != nil {
		return 0, err
	}

	s.record("tvm:"+string(in.Find), value)
	return value, nil
}

func solvePresentValue(n, ir, pmt, fv float64) (float64, error) {
	if ir == 0 {
		return -(pmt*n + fv), nil
	}
	compound := math.Pow(1+ir, n)
	return -(pmt*(compound-1)/ir + fv) / compound, nil
}

func solveFutureValue(n, ir, pv, pmt float64) (float64, error) {
	if ir == 0 {
		return -(pv + pmt*n), nil
	}
	compound := math.Pow(1+ir, n)
	return -(pv*compound + pmt*(compound-1)/ir), nil
}

func solvePayment(n, ir, pv, fv float64) (float64, error) {
	if ir == 0 {
		if n == 0 {
			return 0, fmt.Errorf("%w: payment is undefined for zero periods at zero rate", ErrDomain)
		}
		return -(pv + fv) / n, nil
	}
	compound := math.Pow(1+ir, n)
	annuity := (compound - 1) / ir
	if annuity == 0 {
		return 0, fmt.Errorf("%w: payment is undefined for zero periods", ErrDomain)
	}
	return -(pv*compound + fv) / annuity, nil
}

// solvePeriods inverts the TVM equation with logarithms:
//
//	n = ln((pmt/ir − fv)/(pmt/ir + pv)) / ln(1+ir)
func solvePeriods(ir, pv, pmt, fv float64) (float64, error) {
	if ir == 0 {
		if pmt == 0 {
			return 0, fmt.Errorf("%w: periods are undefined at zero rate without payments", ErrDomain)
		}
		return -(pv + fv) / pmt, nil
	}

	num := pmt/ir - fv
	den := pmt/ir + pv
	if den == 0 || num/den <= 0 {
		return 0, fmt.Errorf("%w: logarithm argument is not positive", ErrDomain)
	}
	return math.Log(num/den) / math.Log1p(ir), nil
}

// solveRate finds the periodic rate iteratively: the TVM equation has
// no closed form in ir. Converged rates are memoized.
func (s *FinanceService) solveRate(n, pv, pmt, fv float64) (float64, error) {
	key := tvmKey(n, pv, pmt, fv)
	if rate, ok := s.cachedRate(key); ok {
		return rate, nil
	}

	f := func(r float64) float64 { return tvmValue(n, r, pv, pmt, fv) }
	df := func(r float64) float64 { return tvmDerivative(n, r, pv, pmt) }

	rate, err := s.solver.Solve(f, df, s.guess)
	if err != nil {
		return 0, fmt.Errorf("tvm rate: %w", err)
	}

	s.storeRate(key, rate)
	return rate, nil
}

// tvmValue is the left-hand side of the TVM equation as a function of
// the rate, with the r = 0 limit branched explicitly.
func tvmValue(n, r, pv, pmt, fv float64) float64 {
	if r == 0 {
		return pv + pmt*n + fv
	}
	compound := math.Pow(1+r, n)
	return pv*compound + pmt*(compound-1)/r + fv
}

// tvmDerivative is d(tvmValue)/dr. The r = 0 limit follows from the
// annuity expansion pmt·((1+r)^n − 1)/r = pmt·Σ(1+r)^k, whose
// derivative at zero is pmt·n(n−1)/2.
func tvmDerivative(n, r, pv, pmt float64) float64 {
	if r == 0 {
		return pv*n + pmt*n*(n-1)/2
	}
	c1 := math.Pow(1+r, n-1)
	compound := c1 * (1 + r)
	return pv*n*c1 + pmt*(n*r*c1-(compound-1))/(r*r)
}
