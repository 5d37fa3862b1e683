package service

import (
	"math"

	"github.com/shopspring/decimal"
)

// roundCents rounds half away from zero to two places, using the shortest
// decimal form of value so 1.005 becomes 1.01. Non-finite values pass through.
func roundCents(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

// invested is principal plus every monthly contribution over years.
func invested(principal, monthly, years float64) decimal.Decimal {
	months := decimal.NewFromFloat(years).Mul(decimal.NewFromInt(12))
	return decimal.NewFromFloat(principal).Add(decimal.NewFromFloat(monthly).Mul(months))
}

// splitCents rounds total and part to cents and returns them with the
// remainder total-part, so the three always add up exactly.
func splitCents(total float64, part decimal.Decimal) (float64, float64, float64) {
	t := decimal.NewFromFloat(total).Round(2)
	p := part.Round(2)
	return t.InexactFloat64(), p.InexactFloat64(), t.Sub(p).InexactFloat64()
}
