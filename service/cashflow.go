package service

import (
	"fmt"
	"math"

	"finance-engine/domain"
)

// NetPresentValue discounts the stream at rate. Each (amount,
// frequency) pair is a level annuity over its own frequency periods,
// discounted back from the cumulative offset of the pairs before it.
func (s *FinanceService) NetPresentValue(stream domain.CashFlowStream, rate float64) (float64, error) {
	if err := validateStream(stream); err != nil {
		return 0, err
	}
	if rate <= -1 {
		return 0, fmt.Errorf("%w: discount rate must be greater than -1", ErrDomain)
	}

	value := npvValue(stream, rate)
	s.record("npv", value)
	return value, nil
}

// InternalRateOfReturn finds the rate at which the stream's net
// present value is zero. There is no closed form; the solve runs
// Newton-Raphson on npvValue with its exact derivative and memoizes
// the converged rate.
func (s *FinanceService) InternalRateOfReturn(stream domain.CashFlowStream) (float64, error) {
	if err := validateStream(stream); err != nil {
		return 0, err
	}

	key := streamKey("irr", stream)
	if rate, ok := s.cachedRate(key); ok {
		return rate, nil
	}

	f := func(r float64) float64 { return npvValue(stream, r) }
	df := func(r float64) float64 { return npvDerivative(stream, r) }

	rate, err := s.solver.Solve(f, df, s.guess)
	if err != nil {
		return 0, fmt.Errorf("irr: %w", err)
	}

	s.storeRate(key, rate)
	s.record("irr", rate)
	return rate, nil
}

// npvValue sums the discounted annuity groups. With v = 1+r, a pair
// (a, q) at cumulative offset s contributes
//
//	a/r · (1 − v^−q) · v^−s
//
// which is the annuity identity a·Σ v^−k over k = s+1 … s+q. The
// r = 0 branch is the limit a·q of that sum.
func npvValue(stream domain.CashFlowStream, r float64) float64 {
	total := stream.Initial

	if r == 0 {
		for i, amt := range stream.Amounts {
			total += amt * float64(stream.Frequencies[i])
		}
		return total
	}

	v := 1 + r
	offset := 0
	for i, amt := range stream.Amounts {
		q := float64(stream.Frequencies[i])
		total += amt / r * (1 - math.Pow(v, -q)) * math.Pow(v, -float64(offset))
		offset += stream.Frequencies[i]
	}
	return total
}

// npvDerivative is d(npvValue)/dr, derived from the same annuity
// grouping:
//
//	d/dr [a/r·(v^−s − v^−s−q)]
//	  = −a/r²·(v^−s − v^−s−q) + a/r·(−s·v^−s−1 + (s+q)·v^−s−q−1)
//
// The r = 0 limit comes from the sum form a·Σ(−k)·v^−k−1 over
// k = s+1 … s+q, which collapses to −a·(s·q + q(q+1)/2).
func npvDerivative(stream domain.CashFlowStream, r float64) float64 {
	var deriv float64
	offset := 0

	if r == 0 {
		for i, amt := range stream.Amounts {
			q := float64(stream.Frequencies[i])
			sum := float64(offset)*q + q*(q+1)/2
			deriv -= amt * sum
			offset += stream.Frequencies[i]
		}
		return deriv
	}

	v := 1 + r
	for i, amt := range stream.Amounts {
		q := float64(stream.Frequencies[i])
		off := float64(offset)
		deriv += -amt/(r*r)*(math.Pow(v, -off)-math.Pow(v, -off-q)) +
			amt/r*(-off*math.Pow(v, -off-1)+(off+q)*math.Pow(v, -off-q-1))
		offset += stream.Frequencies[i]
	}
	return deriv
}
