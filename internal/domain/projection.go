package domain

import (
	"github.com/shopspring/decimal"
)

// ScenarioSummary provides the headline figures of one scenario's plan
type ScenarioSummary struct {
	Name                    string          `json:"name"`
	RequiredBalance         decimal.Decimal `json:"required_balance_at_retirement"`
	BaseMonthlyContribution decimal.Decimal `json:"base_monthly_contribution"`
	FirstContribution       decimal.Decimal `json:"first_contribution"`
	FinalContribution       decimal.Decimal `json:"final_contribution"`
	TotalContributed        decimal.Decimal `json:"total_contributed"`
	FinalBalance            decimal.Decimal `json:"final_accumulated_balance"`
	FirstMonthlyCOL         decimal.Decimal `json:"first_retirement_monthly_col"`
	MonthsToRetirement      int             `json:"months_to_retirement"`
	DrawdownMonths          int             `json:"drawdown_months"`
	Overfunded              bool            `json:"overfunded"`

	Plan *PlanResult `json:"plan"`
}

// ScenarioComparison provides a comparison of all scenarios
type ScenarioComparison struct {
	Scenarios      []ScenarioSummary `json:"scenarios"`
	Recommendation Recommendation    `json:"recommendation"`
	Assumptions    []string          `json:"assumptions"`
}

// Recommendation names the scenario with the lowest base monthly contribution.
type Recommendation struct {
	ScenarioName            string          `json:"scenario_name"`
	BaseMonthlyContribution decimal.Decimal `json:"base_monthly_contribution"`
	SavingsVersusNext       decimal.Decimal `json:"savings_versus_next"`
	Reason                  string          `json:"reason"`
}

// NewScenarioSummary derives the headline figures from a plan result.
func NewScenarioSummary(plan *PlanResult) ScenarioSummary {
	acc := plan.Accumulation
	summary := ScenarioSummary{
		Name:                    plan.Name,
		RequiredBalance:         plan.Drawdown.RequiredBalance,
		BaseMonthlyContribution: acc.BaseMonthlyContribution,
		TotalContributed:        acc.TotalContributed(),
		FinalBalance:            acc.Final().Balance,
		FirstMonthlyCOL:         plan.Drawdown.Entries[0].MonthlyCOL,
		MonthsToRetirement:      len(acc.Entries) - 1,
		DrawdownMonths:          len(plan.Drawdown.Entries),
		Overfunded:              plan.Overfunded,
		Plan:                    plan,
	}
	if len(acc.Entries) > 1 {
		summary.FirstContribution = acc.Entries[1].Contribution
		summary.FinalContribution = acc.Final().Contribution
	}
	return summary
}
