package calculation

import (
	"fmt"

	"github.com/rpgo/savings-planner/internal/domain"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// Recommend selects the scenario with the lowest base monthly contribution.
// Ties keep the earlier scenario.
func Recommend(scenarios []domain.ScenarioSummary) domain.Recommendation {
	if len(scenarios) == 0 {
		return domain.Recommendation{}
	}

	best := 0
	for i := 1; i < len(scenarios); i++ {
		if scenarios[i].BaseMonthlyContribution.LessThan(scenarios[best].BaseMonthlyContribution) {
			best = i
		}
	}

	rec := domain.Recommendation{
		ScenarioName:            scenarios[best].Name,
		BaseMonthlyContribution: scenarios[best].BaseMonthlyContribution,
	}

	runnerUp := -1
	for i := range scenarios {
		if i == best {
			continue
		}
		if runnerUp < 0 || scenarios[i].BaseMonthlyContribution.LessThan(scenarios[runnerUp].BaseMonthlyContribution) {
			runnerUp = i
		}
	}

	switch {
	case scenarios[best].Overfunded:
		rec.Reason = "current savings already cover this plan; no further contributions required"
	case runnerUp < 0:
		rec.Reason = "only scenario"
	default:
		rec.SavingsVersusNext = scenarios[runnerUp].BaseMonthlyContribution.Sub(scenarios[best].BaseMonthlyContribution)
		rec.Reason = fmt.Sprintf("lowest base monthly contribution, %s less than %q",
			rec.SavingsVersusNext.StringFixed(2), scenarios[runnerUp].Name)
	}
	return rec
}

// GenerateAssumptions lists the modeling assumptions behind a set of inputs.
func GenerateAssumptions(in domain.InputParameters) []string {
	return []string{
		fmt.Sprintf("Inflation: %s%% annually, compounded monthly", percent(in.InflationRate)),
		fmt.Sprintf("Return before retirement: %s%% annually", percent(in.PreRetirementROI)),
		fmt.Sprintf("Return after retirement: %s%% annually", percent(in.PostRetirementROI)),
		"Contributions rise with inflation each month",
		"Savings are fully spent by the end of the buffer period",
		"No taxes, pensions or social security income are modeled",
	}
}

func percent(rate decimal.Decimal) string {
	return rate.Mul(decimalHundred).StringFixed(1)
}
