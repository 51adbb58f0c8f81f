package output

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as currency with thousands separators and
// 2 decimals, e.g. "-$1,234.57".
func FormatCurrency(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	intPart, decPart, _ := strings.Cut(rounded.Abs().StringFixed(2), ".")

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

	if rounded.IsNegative() {
		return "-$" + intPart + "." + decPart
	}
	return "$" + intPart + "." + decPart
}

// FormatPercentage formats a fractional rate as a percentage with 2 decimals.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

func intToString(n int) string { return strconv.Itoa(n) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
