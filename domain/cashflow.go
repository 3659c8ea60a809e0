package domain

// CashFlowStream is an initial flow followed by grouped recurring
// flows: Amounts[i] repeats for Frequencies[i] consecutive periods,
// starting immediately after the periods covered by the earlier pairs.
// Amounts and Frequencies must have the same length and frequencies
// must be non-negative; the service layer rejects streams that do not.
type CashFlowStream struct {
	Initial     float64   `json:"initial"`
	Amounts     []float64 `json:"amounts"`
	Frequencies []int     `json:"frequencies"`
}

// TotalPeriods is the number of periods the stream spans.
func (s CashFlowStream) TotalPeriods() int {
	total := 0
	for _, f := range s.Frequencies {
		total += f
	}
	return total
}

// Calculation is one computed result, kept for the calculation history.
type Calculation struct {
	Kind  string  `json:"kind"`
	Value float64 `json:"value"`
}
