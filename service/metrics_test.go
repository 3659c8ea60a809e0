package service

import (
	"errors"
	"testing"

	"finance-engine/domain"
)

func TestModifiedIRR_ReinvestedAnnuity(t *testing.T) {

	service := newTestService()

	// -1000 then 600 for 2 periods at 10%/10%:
	// FV of positives = 600·1.1 + 600 = 1260, MIRR = sqrt(1.26) - 1.
	stream := domain.CashFlowStream{Initial: -1000, Amounts: []float64{600}, Frequencies: []int{2}}

	rate, err := service.ModifiedIRR(stream, 0.1, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(rate, 0.1224972, 1e-6) {
		t.Errorf("expected ~0.1224972, got %f", rate)
	}
}

func TestModifiedIRR_SeparateRates(t *testing.T) {

	service := newTestService()

	// -1000, then -200, then 800 for 2 periods, financed at 8% and
	// reinvested at 5%:
	//   PV(neg) = -1000 - 200/1.08          = -1185.185185
	//   FV(pos) = 800·1.05 + 800            = 1640
	//   MIRR    = (1640/1185.185185)^(1/3) - 1
	stream := domain.CashFlowStream{Initial: -1000, Amounts: []float64{-200, 800}, Frequencies: []int{1, 2}}

	rate, err := service.ModifiedIRR(stream, 0.08, 0.05)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(rate, 0.1143438, 1e-6) {
		t.Errorf("expected ~0.1143438, got %f", rate)
	}
}

func TestModifiedIRR_RequiresBothSigns(t *testing.T) {

	service := newTestService()

	stream := domain.CashFlowStream{Initial: 1000, Amounts: []float64{100}, Frequencies: []int{2}}

	_, err := service.ModifiedIRR(stream, 0.1, 0.1)
	if !errors.Is(err, ErrDomain) {
		t.Errorf("expected domain error for all-positive stream, got %v", err)
	}

	empty := domain.CashFlowStream{Initial: -1000}
	_, err = service.ModifiedIRR(empty, 0.1, 0.1)
	if !errors.Is(err, ErrDomain) {
		t.Errorf("expected domain error for stream without periods, got %v", err)
	}
}

func TestPayback_WholeAndFractionalPeriods(t *testing.T) {

	service := newTestService()

	whole := domain.CashFlowStream{Initial: -1000, Amounts: []float64{500}, Frequencies: []int{3}}
	periods, err := service.Payback(whole)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if periods != 2 {
		t.Errorf("expected payback in exactly 2 periods, got %f", periods)
	}

	fractional := domain.CashFlowStream{Initial: -750, Amounts: []float64{500}, Frequencies: []int{2}}
	periods, err = service.Payback(fractional)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(periods, 1.5, 1e-9) {
		t.Errorf("expected payback at 1.5 periods, got %f", periods)
	}
}

func TestPayback_NoOutlay(t *testing.T) {

	service := newTestService()

	stream := domain.CashFlowStream{Initial: 100, Amounts: []float64{50}, Frequencies: []int{1}}

	periods, err := service.Payback(stream)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if periods != 0 {
		t.Errorf("expected 0 periods without an outlay, got %f", periods)
	}
}

func TestPayback_NeverRecovered(t *testing.T) {

	service := newTestService()

	stream := domain.CashFlowStream{Initial: -1000, Amounts: []float64{100}, Frequencies: []int{2}}

	_, err := service.Payback(stream)
	if !errors.Is(err, ErrDomain) {
		t.Errorf("expected domain error for unrecovered outlay, got %v", err)
	}
}

func TestDiscountedPayback(t *testing.T) {

	service := newTestService()

	// -1000 then 600 for 2 periods at 10%: 600/1.1 leaves -454.55,
	// the second discounted flow 600/1.21 recovers it 11/12 through.
	stream := domain.CashFlowStream{Initial: -1000, Amounts: []float64{600}, Frequencies: []int{2}}

	periods, err := service.DiscountedPayback(stream, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(periods, 1.0+11.0/12.0, 1e-9) {
		t.Errorf("expected ~1.9167 periods, got %f", periods)
	}

	// Discounting pushes an on-the-edge recovery over the horizon.
	tight := domain.CashFlowStream{Initial: -1200, Amounts: []float64{600}, Frequencies: []int{2}}
	if _, err := service.DiscountedPayback(tight, 0.1); !errors.Is(err, ErrDomain) {
		t.Errorf("expected domain error once discounting eats the margin, got %v", err)
	}
}

func TestDiscountedPayback_ZeroRateMatchesSimple(t *testing.T) {

	service := newTestService()

	stream := domain.CashFlowStream{Initial: -750, Amounts: []float64{200, 500}, Frequencies: []int{2, 1}}

	simple, err := service.Payback(stream)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	discounted, err := service.DiscountedPayback(stream, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if simple != discounted {
		t.Errorf("zero-rate discounted payback %f differs from simple %f", discounted, simple)
	}
}
