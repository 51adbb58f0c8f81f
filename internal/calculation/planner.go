package calculation

import (
	"fmt"

	"github.com/rpgo/savings-planner/internal/domain"
)

// Planner runs the drawdown projection and the contribution solve for a set of
// inputs. It holds no per-calculation state and is safe for concurrent use.
type Planner struct {
	Logger Logger
}

// NewPlanner creates a planner with a no-op logger.
func NewPlanner() *Planner {
	return &Planner{Logger: NopLogger{}}
}

// SetLogger sets the planner's logger. If nil is provided, a no-op logger is used.
func (p *Planner) SetLogger(l Logger) {
	if l == nil {
		p.Logger = NopLogger{}
		return
	}
	p.Logger = l
}

// RunPlan validates the inputs and produces both schedules. No partial result is
// returned on failure.
func (p *Planner) RunPlan(name string, in domain.InputParameters) (*domain.PlanResult, error) {
	in = in.ResolveAge(nowFunc())
	if err := in.Validate(); err != nil {
		return nil, err
	}

	drawdown, err := ProjectDrawdown(in.Drawdown())
	if err != nil {
		return nil, fmt.Errorf("drawdown projection failed: %w", err)
	}
	p.Logger.Debugf("plan %q: %d drawdown months, required balance %s",
		name, len(drawdown.Entries), drawdown.RequiredBalance.StringFixed(2))

	accumulation, err := SolveAccumulation(in.Accumulation(drawdown.RequiredBalance))
	if err != nil {
		return nil, fmt.Errorf("contribution solve failed: %w", err)
	}
	p.Logger.Debugf("plan %q: base monthly contribution %s, savings future value %s",
		name, accumulation.BaseMonthlyContribution.StringFixed(2), accumulation.SavingsFutureValue.StringFixed(2))

	overfunded := accumulation.BaseMonthlyContribution.IsNegative()
	if overfunded {
		p.Logger.Infof("plan %q: current savings already exceed the requirement", name)
	}

	return &domain.PlanResult{
		Name:         name,
		Inputs:       in,
		Drawdown:     drawdown,
		Accumulation: accumulation,
		Overfunded:   overfunded,
	}, nil
}

// RunScenarios runs every scenario in the configuration and returns a comparison
func (p *Planner) RunScenarios(config *domain.Configuration) (*domain.ScenarioComparison, error) {
	if len(config.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios provided")
	}

	summaries := make([]domain.ScenarioSummary, 0, len(config.Scenarios))
	for _, scenario := range config.Scenarios {
		plan, err := p.RunPlan(scenario.Name, scenario.Apply(config.Defaults))
		if err != nil {
			return nil, fmt.Errorf("scenario %q failed: %w", scenario.Name, err)
		}
		summaries = append(summaries, domain.NewScenarioSummary(plan))
	}

	comparison := &domain.ScenarioComparison{
		Scenarios:      summaries,
		Recommendation: Recommend(summaries),
		Assumptions:    GenerateAssumptions(config.Defaults),
	}
	p.Logger.Infof("compared %d scenarios, recommended %q", len(summaries), comparison.Recommendation.ScenarioName)
	return comparison, nil
}
