package domain

import (
	"fmt"
	"time"

	"github.com/rpgo/savings-planner/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// InputParameters holds the scalar inputs of a single savings plan.
// Rates are annual fractions (0.03 = 3%), amounts are in today's currency units.
type InputParameters struct {
	CurrentAge        int             `json:"current_age" yaml:"current_age" toml:"current_age"`
	RetirementAge     int             `json:"retirement_age" yaml:"retirement_age" toml:"retirement_age"`
	LifeExpectancy    int             `json:"life_expectancy" yaml:"life_expectancy" toml:"life_expectancy"`
	BufferYears       int             `json:"buffer_years" yaml:"buffer_years" toml:"buffer_years"`
	InflationRate     decimal.Decimal `json:"inflation_rate" yaml:"inflation_rate" toml:"inflation_rate"`
	PostRetirementROI decimal.Decimal `json:"post_retirement_roi" yaml:"post_retirement_roi" toml:"post_retirement_roi"`
	PreRetirementROI  decimal.Decimal `json:"pre_retirement_roi" yaml:"pre_retirement_roi" toml:"pre_retirement_roi"`
	CurrentAnnualCOL  decimal.Decimal `json:"current_annual_col" yaml:"current_annual_col" toml:"current_annual_col"`
	CurrentSavings    decimal.Decimal `json:"current_savings" yaml:"current_savings" toml:"current_savings"`

	// BirthDate, when set and CurrentAge is zero, determines the current age.
	BirthDate *time.Time `json:"birth_date,omitempty" yaml:"birth_date,omitempty" toml:"birth_date,omitempty"`
}

// Validate checks ordering, bounds and non-negativity of every field.
func (p InputParameters) Validate() error {
	ages := []struct {
		field string
		value int
	}{
		{"current_age", p.CurrentAge},
		{"retirement_age", p.RetirementAge},
		{"life_expectancy", p.LifeExpectancy},
		{"buffer_years", p.BufferYears},
	}
	for _, a := range ages {
		if err := ValidateAge(a.field, a.value); err != nil {
			return err
		}
	}
	if end := p.LifeExpectancy + p.BufferYears; end > MaxAge {
		return rangeError("buffer_years", p.BufferYears,
			fmt.Sprintf("puts the horizon end at %d, past %d", end, MaxAge))
	}
	if err := ValidateNonNegative(p.amountFields()...); err != nil {
		return err
	}
	if ceiling := p.LifeExpectancy + p.BufferYears; p.RetirementAge > ceiling {
		return NewValidationError(ErrInvalidHorizon, "retirement_age", p.RetirementAge,
			fmt.Sprintf("exceeds life_expectancy + buffer_years (%d)", ceiling))
	}
	if p.CurrentAge > p.RetirementAge {
		return rangeError("retirement_age", p.RetirementAge,
			fmt.Sprintf("must be at least current_age (%d)", p.CurrentAge))
	}
	if p.RetirementAge > p.LifeExpectancy {
		return rangeError("life_expectancy", p.LifeExpectancy,
			fmt.Sprintf("must be at least retirement_age (%d)", p.RetirementAge))
	}
	return nil
}

// ResolveAge returns a copy whose CurrentAge is derived from BirthDate as of at.
// Parameters without a birth date, or with an explicit current age, are returned unchanged.
func (p InputParameters) ResolveAge(at time.Time) InputParameters {
	if p.BirthDate == nil || p.CurrentAge != 0 {
		return p
	}
	p.CurrentAge = dateutil.Age(*p.BirthDate, at)
	return p
}

// YearsToRetirement returns the whole years between now and retirement.
func (p InputParameters) YearsToRetirement() int { return p.RetirementAge - p.CurrentAge }

// MonthsToRetirement returns the length of the accumulation horizon in months.
func (p InputParameters) MonthsToRetirement() int { return p.YearsToRetirement() * 12 }

// DrawdownMonths returns the final month index of the drawdown horizon.
func (p InputParameters) DrawdownMonths() int {
	return (p.LifeExpectancy + p.BufferYears - p.RetirementAge) * 12
}

// Drawdown extracts the inputs consumed by the drawdown projection.
func (p InputParameters) Drawdown() DrawdownInputs {
	return DrawdownInputs{
		CurrentAge:        p.CurrentAge,
		RetirementAge:     p.RetirementAge,
		LifeExpectancy:    p.LifeExpectancy,
		BufferYears:       p.BufferYears,
		InflationRate:     p.InflationRate,
		PostRetirementROI: p.PostRetirementROI,
		CurrentAnnualCOL:  p.CurrentAnnualCOL,
	}
}

// Accumulation extracts the inputs consumed by the contribution solver.
func (p InputParameters) Accumulation(required decimal.Decimal) AccumulationInputs {
	return AccumulationInputs{
		RequiredBalance:  required,
		CurrentSavings:   p.CurrentSavings,
		CurrentAge:       p.CurrentAge,
		RetirementAge:    p.RetirementAge,
		InflationRate:    p.InflationRate,
		PreRetirementROI: p.PreRetirementROI,
	}
}

func (p InputParameters) amountFields() []NamedAmount {
	return []NamedAmount{
		{"inflation_rate", p.InflationRate},
		{"post_retirement_roi", p.PostRetirementROI},
		{"pre_retirement_roi", p.PreRetirementROI},
		{"current_annual_col", p.CurrentAnnualCOL},
		{"current_savings", p.CurrentSavings},
	}
}

// DrawdownInputs are the parameters of a drawdown projection.
type DrawdownInputs struct {
	CurrentAge        int
	RetirementAge     int
	LifeExpectancy    int
	BufferYears       int
	InflationRate     decimal.Decimal
	PostRetirementROI decimal.Decimal
	CurrentAnnualCOL  decimal.Decimal
}

// AccumulationInputs are the parameters of a contribution solve.
type AccumulationInputs struct {
	RequiredBalance  decimal.Decimal
	CurrentSavings   decimal.Decimal
	CurrentAge       int
	RetirementAge    int
	InflationRate    decimal.Decimal
	PreRetirementROI decimal.Decimal
}

// DrawdownEntry is one month of the post-retirement schedule.
type DrawdownEntry struct {
	Month      MonthIndex      `json:"month_index"`
	Age        string          `json:"age"`
	MonthlyCOL decimal.Decimal `json:"monthly_col"`
	Balance    decimal.Decimal `json:"balance_at_month_start"`
}

// AccumulationEntry is one month of the pre-retirement schedule.
type AccumulationEntry struct {
	Month        MonthIndex      `json:"month_index"`
	Age          string          `json:"age"`
	Contribution decimal.Decimal `json:"contribution_at_month_start"`
	Balance      decimal.Decimal `json:"balance_at_month_start"`
}

// DrawdownSchedule is the full drawdown series and the balance it requires at retirement.
type DrawdownSchedule struct {
	RequiredBalance decimal.Decimal `json:"required_balance_at_retirement"`
	Entries         []DrawdownEntry `json:"entries"`
}

// Final returns the last month of the schedule.
func (s *DrawdownSchedule) Final() DrawdownEntry { return s.Entries[len(s.Entries)-1] }

// AccumulationSchedule is the full accumulation series and its base contribution.
type AccumulationSchedule struct {
	// BaseMonthlyContribution is unrounded, in today's currency. Negative means the
	// current savings alone already exceed the requirement.
	BaseMonthlyContribution decimal.Decimal     `json:"base_monthly_contribution"`
	SavingsFutureValue      decimal.Decimal     `json:"savings_future_value"`
	Entries                 []AccumulationEntry `json:"entries"`
}

// Final returns the last month of the schedule.
func (s *AccumulationSchedule) Final() AccumulationEntry { return s.Entries[len(s.Entries)-1] }

// TotalContributed sums every contribution in the schedule.
func (s *AccumulationSchedule) TotalContributed() decimal.Decimal {
	total := decimal.Zero
	for _, e := range s.Entries {
		total = total.Add(e.Contribution)
	}
	return total
}

// PlanResult is the outcome of one calculation pass.
type PlanResult struct {
	Name         string                `json:"name"`
	Inputs       InputParameters       `json:"inputs"`
	Drawdown     *DrawdownSchedule     `json:"drawdown"`
	Accumulation *AccumulationSchedule `json:"accumulation"`
	Overfunded   bool                  `json:"overfunded"`
}
