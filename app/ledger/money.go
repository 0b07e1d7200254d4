package ledger

import (
	"fmt"
	"math"
	"strconv"
)

// RoundHalfUp rounds to the nearest integer, halves away from zero upward.
// It is the single rounding rule for monthly amounts and percentages.
func RoundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// Percent returns round-half-up(100 * part / whole) as an integer percentage.
// A zero or negative whole yields 0, never NaN.
func Percent(part, whole float64) int {
	if whole <= 0 {
		return 0
	}
	return int(RoundHalfUp(100 * part / whole))
}

// ClampNonNegative floors a derived total at zero.
func ClampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// FormatAmount renders a money value for exports: no decimals for whole
// amounts, two otherwise.
func FormatAmount(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatRate renders an integer percentage as "67%".
func FormatRate(rate int) string {
	return fmt.Sprintf("%d%%", rate)
}
