package domain

import "testing"

func TestRoundCurrency(t *testing.T) {

	cases := []struct {
		in   float64
		want float64
	}{
		{90.9090909, 90.91},
		{2.675, 2.68}, // math.Round on 2.675*100 would give 2.67
		{-1257.789, -1257.79},
		{100, 100},
		{0, 0},
	}

	for _, c := range cases {
		if got := RoundCurrency(c.in); got != c.want {
			t.Errorf("RoundCurrency(%v) = %v, expected %v", c.in, got, c.want)
		}
	}
}

func TestTotalPeriods(t *testing.T) {

	s := CashFlowStream{Initial: -1000, Amounts: []float64{100, 200}, Frequencies: []int{3, 2}}
	if got := s.TotalPeriods(); got != 5 {
		t.Errorf("expected 5 periods, got %d", got)
	}

	if got := (CashFlowStream{}).TotalPeriods(); got != 0 {
		t.Errorf("expected 0 periods for empty stream, got %d", got)
	}
}
