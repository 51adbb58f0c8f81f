package calculation

import (
	"fmt"
	"math"

	"github.com/rpgo/savings-planner/internal/domain"
	"github.com/rpgo/savings-planner/pkg/dateutil"
	money "github.com/rpgo/savings-planner/pkg/decimal"
	"github.com/shopspring/decimal"
)

// SolveAccumulation finds the base monthly contribution, in today's currency and
// escalating with inflation, that grows current savings into the required
// balance by retirement, and builds the month-by-month accumulation schedule.
//
// A negative base contribution is a valid result: current savings alone already
// outgrow the requirement.
func SolveAccumulation(in domain.AccumulationInputs) (*domain.AccumulationSchedule, error) {
	if err := validateAccumulation(in); err != nil {
		return nil, err
	}

	m := dateutil.MonthsBetweenAges(in.CurrentAge, in.RetirementAge)
	inflation := money.MonthlyFactor(in.InflationRate)
	roiFactor := money.MonthlyFactor(in.PreRetirementROI)

	savingsGrowth, err := money.Compound(money.AnnualFactor(in.PreRetirementROI), in.RetirementAge-in.CurrentAge)
	if err != nil {
		return nil, growthError("pre_retirement_roi", in.PreRetirementROI, err)
	}
	futureValue := in.CurrentSavings.Mul(savingsGrowth)
	shortfall := in.RequiredBalance.Sub(futureValue)

	factor, err := money.Factor(annuityFactor(inflation, roiFactor, m))
	if err != nil {
		if _, inflErr := money.Compound(inflation, m-1); inflErr != nil {
			return nil, growthError("inflation_rate", in.InflationRate, err)
		}
		return nil, growthError("pre_retirement_roi", in.PreRetirementROI, err)
	}
	base := shortfall.Div(factor)

	roi, err := money.Factor(roiFactor)
	if err != nil {
		return nil, growthError("pre_retirement_roi", in.PreRetirementROI, err)
	}

	entries := make([]domain.AccumulationEntry, m+1)
	entries[0] = domain.AccumulationEntry{
		Month:        0,
		Age:          domain.MonthIndex(0).Label(in.CurrentAge),
		Contribution: decimal.Zero,
		Balance:      money.NewMoneyFromDecimal(in.CurrentSavings).Round().Decimal,
	}
	for i := 1; i <= m; i++ {
		growth, err := money.Compound(inflation, i-1)
		if err != nil {
			return nil, growthError("inflation_rate", in.InflationRate, err)
		}
		contribution := money.NewMoneyFromDecimal(base).Grow(growth).Round()
		prev := money.NewMoneyFromDecimal(entries[i-1].Balance)
		balance := prev.Grow(roi).Add(contribution).Round()

		month := domain.MonthIndex(i)
		entries[i] = domain.AccumulationEntry{
			Month:        month,
			Age:          month.Label(in.CurrentAge),
			Contribution: contribution.Decimal,
			Balance:      balance.Decimal,
		}
	}

	return &domain.AccumulationSchedule{
		BaseMonthlyContribution: base,
		SavingsFutureValue:      futureValue,
		Entries:                 entries,
	}, nil
}

// annuityFactor is the retirement-day value of a unit contribution stream that
// escalates by inflation each month and compounds by roi until month m:
// sum over i in [0, m) of inflation^i * roi^(m-i-1).
func annuityFactor(inflation, roi float64, m int) float64 {
	sum := 0.0
	for i := 0; i < m; i++ {
		sum += math.Pow(inflation, float64(i)) * math.Pow(roi, float64(m-i-1))
	}
	return sum
}

func validateAccumulation(in domain.AccumulationInputs) error {
	if err := domain.ValidateAge("current_age", in.CurrentAge); err != nil {
		return err
	}
	if in.RetirementAge > domain.MaxAge {
		return domain.NewValidationError(domain.ErrInvalidRange, "retirement_age", in.RetirementAge,
			fmt.Sprintf("must not exceed %d", domain.MaxAge))
	}
	if err := domain.ValidateNonNegative(
		domain.NamedAmount{Field: "current_savings", Value: in.CurrentSavings},
		domain.NamedAmount{Field: "inflation_rate", Value: in.InflationRate},
		domain.NamedAmount{Field: "pre_retirement_roi", Value: in.PreRetirementROI},
	); err != nil {
		return err
	}

	switch months := dateutil.MonthsBetweenAges(in.CurrentAge, in.RetirementAge); {
	case months < 0:
		return domain.NewValidationError(domain.ErrInvalidRange, "retirement_age", in.RetirementAge,
			fmt.Sprintf("is before current_age (%d)", in.CurrentAge))
	case months == 0:
		return domain.NewValidationError(domain.ErrDegenerateHorizon, "retirement_age", in.RetirementAge,
			fmt.Sprintf("equals current_age (%d), leaving no months to contribute", in.CurrentAge))
	}
	return nil
}
