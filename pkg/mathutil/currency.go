// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/automobile-sales/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// Clamp bounds val to the closed interval [lo, hi].
func Clamp(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}

// Floor returns val, or minimum when val is below it.
func Floor(val, minimum float64) float64 {
	return math.Max(minimum, val)
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// SeasonalFactor returns 1 + amplitude*sin(2π·month/12) for a calendar
// month in 1..12.
func SeasonalFactor(month int, amplitude float64) float64 {
	return 1 + amplitude*math.Sin(2*math.Pi*float64(month)/constants.MonthsPerYear)
}

// CalculatePercentage calculates what percentage value is of total
func CalculatePercentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return (value / total) * constants.PercentageMultiplier
}
