package decimal

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// ErrNotFinite is returned when a growth factor overflows float64.
var ErrNotFinite = errors.New("growth factor is not finite")

// MonthlyFactor converts an annual fractional rate into its monthly compounded
// growth multiplier, (1+rate)^(1/12).
//
// decimal.Decimal only raises to integer powers, so roots go through float64.
func MonthlyFactor(annualRate decimal.Decimal) float64 {
	return math.Pow(1+annualRate.InexactFloat64(), 1.0/12)
}

// AnnualFactor returns the yearly growth multiplier 1+rate.
func AnnualFactor(annualRate decimal.Decimal) float64 {
	return 1 + annualRate.InexactFloat64()
}

// Compound returns factor^periods as a decimal, or ErrNotFinite when the power
// overflows.
func Compound(factor float64, periods int) (decimal.Decimal, error) {
	return Factor(math.Pow(factor, float64(periods)))
}

// Factor converts a float growth multiplier into a decimal. Inf and NaN yield
// ErrNotFinite.
func Factor(factor float64) (decimal.Decimal, error) {
	if math.IsInf(factor, 0) || math.IsNaN(factor) {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrNotFinite, factor)
	}
	return decimal.NewFromFloat(factor), nil
}
