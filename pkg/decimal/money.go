package decimal

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

var monthsPerYear = decimal.NewFromInt(12)

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Round rounds the money amount to cents, half away from zero
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Monthly converts an annual amount to monthly
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(monthsPerYear)}
}

// Grow multiplies by a growth factor. The result is not rounded.
func (m Money) Grow(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// Discount divides by a growth factor. The result is not rounded.
func (m Money) Discount(factor decimal.Decimal) Money {
	return Money{m.Decimal.Div(factor)}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// String returns the string representation with proper formatting
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}
