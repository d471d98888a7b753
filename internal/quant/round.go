// Package quant converts real-valued loop quantities into whole work items.
//
// Conversion is always two explicit steps: [RoundHalfUp] to a decimal
// precision, then [Truncate] toward zero. Both operate on the shortest decimal
// representation of the float so results do not depend on binary rounding
// artefacts (2.45 rounds to 2.5, not 2.4).
package quant

import (
	"math"

	"github.com/shopspring/decimal"
)

// RoundHalfUp rounds x to the given number of decimal places, rounding exact
// halves away from zero. Non-finite values are returned unchanged.
func RoundHalfUp(x float64, places int32) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	return decimal.NewFromFloat(x).Round(places).InexactFloat64()
}

// Truncate drops the fractional part of x, rounding toward zero.
// NaN maps to 0 and infinities saturate at the int range.
func Truncate(x float64) int {
	switch {
	case math.IsNaN(x):
		return 0
	case x >= math.MaxInt64:
		return math.MaxInt
	case x <= math.MinInt64:
		return math.MinInt
	}
	return int(decimal.NewFromFloat(x).IntPart())
}

// Quantize rounds x half-up to one decimal place and truncates the result.
func Quantize(x float64) int {
	return Truncate(RoundHalfUp(x, 1))
}
