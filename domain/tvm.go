package domain

// TVMVariable selects which quantity of the time-value-of-money
// equation a solve request is asking for.
type TVMVariable string

const (
	VarPeriods      TVMVariable = "n"
	VarRate         TVMVariable = "ir"
	VarPresentValue TVMVariable = "pv"
	VarPayment      TVMVariable = "pmt"
	VarFutureValue  TVMVariable = "fv"
)

// TVMInput carries the five TVM quantities plus the selector naming
// the unknown one. The field matching Find is ignored; the other four
// must be supplied. The quantities are related by
//
//	pv·(1+ir)^n + pmt·((1+ir)^n − 1)/ir + fv = 0
//
// with the ir = 0 case degenerating to pv + pmt·n + fv = 0.
type TVMInput struct {
	Find         TVMVariable `json:"find"`
	Periods      float64     `json:"n"`
	Rate         float64     `json:"ir"`
	PresentValue float64     `json:"pv"`
	Payment      float64     `json:"pmt"`
	FutureValue  float64     `json:"fv"`
}

// TVMResult is the solved value for the requested variable.
type TVMResult struct {
	Find  TVMVariable `json:"find"`
	Value float64     `json:"value"`
}
