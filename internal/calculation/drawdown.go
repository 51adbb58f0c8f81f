package calculation

import (
	"fmt"

	"github.com/rpgo/savings-planner/internal/domain"
	"github.com/rpgo/savings-planner/pkg/dateutil"
	money "github.com/rpgo/savings-planner/pkg/decimal"
	"github.com/shopspring/decimal"
)

// ProjectDrawdown computes the month-by-month retirement schedule and the minimum
// balance needed on the first day of retirement.
//
// Monthly COL is inflated from today, not from retirement, so month i of the
// drawdown uses the exponent i + months-to-retirement. Balances are filled
// backwards from a terminal month that withdraws everything that is left.
func ProjectDrawdown(in domain.DrawdownInputs) (*domain.DrawdownSchedule, error) {
	if err := validateDrawdown(in); err != nil {
		return nil, err
	}

	n := dateutil.MonthsBetweenAges(in.RetirementAge, in.LifeExpectancy+in.BufferYears)
	offset := dateutil.MonthsBetweenAges(in.CurrentAge, in.RetirementAge)
	inflation := money.MonthlyFactor(in.InflationRate)
	roi, err := money.Factor(money.MonthlyFactor(in.PostRetirementROI))
	if err != nil {
		return nil, growthError("post_retirement_roi", in.PostRetirementROI, err)
	}
	baseCOL := money.NewMoneyFromDecimal(in.CurrentAnnualCOL).Monthly()

	entries := make([]domain.DrawdownEntry, n+1)
	for i := n; i >= 0; i-- {
		growth, err := money.Compound(inflation, i+offset)
		if err != nil {
			return nil, growthError("inflation_rate", in.InflationRate, err)
		}
		col := baseCOL.Grow(growth).Round()

		var balance money.Money
		if i == n {
			balance = col
		} else {
			next := money.NewMoneyFromDecimal(entries[i+1].Balance)
			balance = next.Discount(roi).Add(col).Round()
		}

		month := domain.MonthIndex(i)
		entries[i] = domain.DrawdownEntry{
			Month:      month,
			Age:        month.Label(in.RetirementAge),
			MonthlyCOL: col.Decimal,
			Balance:    balance.Decimal,
		}
	}

	return &domain.DrawdownSchedule{
		RequiredBalance: entries[0].Balance,
		Entries:         entries,
	}, nil
}

func validateDrawdown(in domain.DrawdownInputs) error {
	ages := []struct {
		field string
		value int
	}{
		{"current_age", in.CurrentAge},
		{"retirement_age", in.RetirementAge},
		{"life_expectancy", in.LifeExpectancy},
		{"buffer_years", in.BufferYears},
	}
	for _, a := range ages {
		if err := domain.ValidateAge(a.field, a.value); err != nil {
			return err
		}
	}
	if err := domain.ValidateNonNegative(
		domain.NamedAmount{Field: "inflation_rate", Value: in.InflationRate},
		domain.NamedAmount{Field: "post_retirement_roi", Value: in.PostRetirementROI},
		domain.NamedAmount{Field: "current_annual_col", Value: in.CurrentAnnualCOL},
	); err != nil {
		return err
	}

	ceiling := in.LifeExpectancy + in.BufferYears
	if ceiling > domain.MaxAge {
		return domain.NewValidationError(domain.ErrInvalidRange, "buffer_years", in.BufferYears,
			fmt.Sprintf("puts the horizon end at %d, past %d", ceiling, domain.MaxAge))
	}
	if in.RetirementAge > ceiling {
		return domain.NewValidationError(domain.ErrInvalidHorizon, "retirement_age", in.RetirementAge,
			fmt.Sprintf("exceeds life_expectancy + buffer_years (%d + %d = %d)", in.LifeExpectancy, in.BufferYears, ceiling))
	}
	if in.RetirementAge > in.LifeExpectancy {
		return domain.NewValidationError(domain.ErrInvalidRange, "retirement_age", in.RetirementAge,
			fmt.Sprintf("exceeds life_expectancy (%d)", in.LifeExpectancy))
	}
	if in.CurrentAge > in.RetirementAge {
		return domain.NewValidationError(domain.ErrInvalidRange, "current_age", in.CurrentAge,
			fmt.Sprintf("exceeds retirement_age (%d)", in.RetirementAge))
	}
	return nil
}

// growthError reports a rate whose compounded growth overflows the projection.
func growthError(field string, rate decimal.Decimal, err error) error {
	return domain.NewValidationError(domain.ErrInvalidRange, field, rate.String(),
		fmt.Sprintf("is too large to project (%v)", err))
}
