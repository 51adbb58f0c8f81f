package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidHorizon means retirement falls after life expectancy plus buffer.
	ErrInvalidHorizon = errors.New("invalid horizon")
	// ErrDegenerateHorizon means there are no months left to contribute in.
	ErrDegenerateHorizon = errors.New("degenerate horizon")
	// ErrInvalidRange means an age or rate violates its ordering or sign precondition.
	ErrInvalidRange = errors.New("invalid range")
)

// ValidationError describes which precondition failed and with what value.
type ValidationError struct {
	Field      string
	Value      string
	Constraint string
	Kind       error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s = %s %s", e.Kind, e.Field, e.Value, e.Constraint)
}

func (e *ValidationError) Unwrap() error { return e.Kind }

// KindName returns a stable snake_case identifier for the error kind.
func KindName(err error) string {
	switch {
	case errors.Is(err, ErrInvalidHorizon):
		return "invalid_horizon"
	case errors.Is(err, ErrDegenerateHorizon):
		return "degenerate_horizon"
	case errors.Is(err, ErrInvalidRange):
		return "invalid_range"
	default:
		return ""
	}
}

// NewValidationError builds a ValidationError of the given kind.
func NewValidationError(kind error, field string, value any, constraint string) *ValidationError {
	return &ValidationError{Field: field, Value: fmt.Sprint(value), Constraint: constraint, Kind: kind}
}

// MaxAge bounds every age and the end of the drawdown horizon, so a schedule
// never exceeds MaxAge*12 months.
const MaxAge = 150

// ValidateAge reports an age outside [0, MaxAge] as an InvalidRange error.
func ValidateAge(field string, age int) error {
	if age < 0 {
		return rangeError(field, age, "must be non-negative")
	}
	if age > MaxAge {
		return rangeError(field, age, fmt.Sprintf("must not exceed %d", MaxAge))
	}
	return nil
}

func rangeError(field string, value any, constraint string) error {
	return NewValidationError(ErrInvalidRange, field, value, constraint)
}

// NamedAmount pairs a field name with its value for validation messages.
type NamedAmount struct {
	Field string
	Value decimal.Decimal
}

// ValidateNonNegative reports the first negative amount as an InvalidRange error.
func ValidateNonNegative(amounts ...NamedAmount) error {
	for _, a := range amounts {
		if a.Value.IsNegative() {
			return rangeError(a.Field, a.Value.String(), "must be non-negative")
		}
	}
	return nil
}
