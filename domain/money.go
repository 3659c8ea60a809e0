package domain

import "github.com/shopspring/decimal"

// RoundCurrency rounds a monetary amount to 2 decimals, half away
// from zero. Rounding goes through decimal arithmetic so that values
// like 2.675 round to 2.68 instead of picking up binary float
// artifacts on the way.
func RoundCurrency(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
