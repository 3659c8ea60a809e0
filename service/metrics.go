package service

import (
	"fmt"
	"math"

	"finance-engine/domain"
)

// expandFlows unrolls the grouped stream into one flow per period,
// excluding the initial flow at period zero.
func expandFlows(stream domain.CashFlowStream) []float64 {
	flows := make([]float64, 0, stream.TotalPeriods())
	for i, amt := range stream.Amounts {
		for k := 0; k < stream.Frequencies[i]; k++ {
			flows = append(flows, amt)
		}
	}
	return flows
}

// ModifiedIRR computes the modified internal rate of return over the
// stream's N periods: negative flows are financed at financeRate and
// discounted to period zero, positive flows are reinvested at
// reinvestRate and compounded to period N, and
//
//	MIRR = (FV(positive)/−PV(negative))^(1/N) − 1.
//
// A positive initial flow joins the reinvested side at period zero.
func (s *FinanceService) ModifiedIRR(stream domain.CashFlowStream, financeRate, reinvestRate float64) (float64, error) {
	if err := validateStream(stream); err != nil {
		return 0, err
	}
	if financeRate <= -1 || reinvestRate <= -1 {
		return 0, fmt.Errorf("%w: finance and reinvestment rates must be greater than -1", ErrDomain)
	}

	flows := expandFlows(stream)
	n := len(flows)
	if n == 0 {
		return 0, fmt.Errorf("%w: modified irr requires at least one period", ErrDomain)
	}

	var pvNegative, fvPositive float64
	if stream.Initial < 0 {
		pvNegative += stream.Initial
	} else {
		fvPositive += stream.Initial * math.Pow(1+reinvestRate, float64(n))
	}
	for t, flow := range flows {
		period := t + 1
		switch {
		case flow > 0:
			fvPositive += flow * math.Pow(1+reinvestRate, float64(n-period))
		case flow < 0:
			pvNegative += flow * math.Pow(1+financeRate, -float64(period))
		}
	}

	if pvNegative == 0 || fvPositive == 0 {
		return 0, fmt.Errorf("%w: modified irr requires both positive and negative flows", ErrDomain)
	}

	rate := math.Pow(fvPositive/-pvNegative, 1/float64(n)) - 1
	s.record("mirr", rate)
	return rate, nil
}

// Payback returns the number of periods until the cumulative flows
// recover the initial outlay. A recovery that lands mid-period is
// interpolated linearly inside the recovering period's flow. An
// initial flow of zero or better needs no recovery and pays back at 0.
func (s *FinanceService) Payback(stream domain.CashFlowStream) (float64, error) {
	if err := validateStream(stream); err != nil {
		return 0, err
	}

	periods, err := paybackPeriods(stream, 0)
	if err != nil {
		return 0, err
	}
	s.record("payback", periods)
	return periods, nil
}

// DiscountedPayback is Payback over flows discounted at rate. A zero
// rate reduces it to the simple payback.
func (s *FinanceService) DiscountedPayback(stream domain.CashFlowStream, rate float64) (float64, error) {
	if err := validateStream(stream); err != nil {
		return 0, err
	}
	if rate <= -1 {
		return 0, fmt.Errorf("%w: discount rate must be greater than -1", ErrDomain)
	}

	periods, err := paybackPeriods(stream, rate)
	if err != nil {
		return 0, err
	}
	s.record("discounted_payback", periods)
	return periods, nil
}

func paybackPeriods(stream domain.CashFlowStream, rate float64) (float64, error) {
	cumulative := stream.Initial
	if cumulative >= 0 {
		return 0, nil
	}

	for t, flow := range expandFlows(stream) {
		period := t + 1
		if rate != 0 {
			flow *= math.Pow(1+rate, -float64(period))
		}

		previous := cumulative
		cumulative += flow
		if cumulative >= 0 {
			// flow must be positive here: it moved the cumulative
			// balance from below zero to zero or above.
			return float64(t) + -previous/flow, nil
		}
	}

	return 0, fmt.Errorf("%w: cash flows never recover the initial outlay", ErrDomain)
}
