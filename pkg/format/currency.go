// Package format renders figures for display.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	d := decimal.NewFromFloat(amount)
	formatted := groupThousands(d.Abs().StringFixed(2))
	if d.IsNegative() && formatted != "0.00" {
		return "-$" + formatted
	}
	return "$" + formatted
}

// Number returns amount rounded to places decimals with thousands separators (e.g., "12,345.7").
func Number(amount float64, places int32) string {
	d := decimal.NewFromFloat(amount)
	formatted := groupThousands(d.Abs().StringFixed(places))
	if d.IsNegative() && strings.Trim(formatted, "0.,") != "" {
		return "-" + formatted
	}
	return formatted
}

// Percent returns a percentage with one decimal place (e.g., "23.4%").
func Percent(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(1) + "%"
}

func groupThousands(formatted string) string {
	intPart, decPart, hasDec := strings.Cut(formatted, ".")

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	if !hasDec {
		return intPart
	}
	return intPart + "." + decPart
}
