package salary

import "github.com/shopspring/decimal"

// Round2 rounds a monetary amount to two decimal places, half away from
// zero. Both scheme branches round through here so earnings never differ by
// rounding mode.
func Round2(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}
