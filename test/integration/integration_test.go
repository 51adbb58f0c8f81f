package integration

import (
	"testing"

	"github.com/rpgo/savings-planner/internal/calculation"
	"github.com/rpgo/savings-planner/internal/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndToEndCalculation(t *testing.T) {
	parser := config.NewInputParser()
	config, err := parser.LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)
	require.Len(t, config.Scenarios, 2)

	planner := calculation.NewPlanner()
	results, err := planner.RunScenarios(config)
	require.NoError(t, err)
	require.Len(t, results.Scenarios, 2)

	at65 := results.Scenarios[0]
	assert.Equal(t, "Retire at 65", at65.Name)
	assert.Equal(t, 360, at65.MonthsToRetirement)
	assert.Equal(t, 361, at65.DrawdownMonths)
	assert.Equal(t, "14159.03", at65.FirstMonthlyCOL.StringFixed(2))
	assert.Equal(t, "2674.61", at65.BaseMonthlyContribution.StringFixed(2))
	assert.False(t, at65.Overfunded)

	// Rounding each month leaves the final balance within a few dollars of the target.
	drift := at65.FinalBalance.Sub(at65.RequiredBalance).Abs()
	assert.True(t, drift.LessThan(decimal.NewFromInt(5)), "drift %s", drift)

	assert.Equal(t, "Retire at 65", results.Recommendation.ScenarioName)
	assert.True(t, results.Recommendation.SavingsVersusNext.IsPositive())
	assert.NotEmpty(t, results.Assumptions)
}

func TestZeroGrowthConfiguration(t *testing.T) {
	config, err := config.NewInputParser().LoadFromFile("../testdata/example_config.toml")
	require.NoError(t, err)

	results, err := calculation.NewPlanner().RunScenarios(config)
	require.NoError(t, err)

	flat := results.Scenarios[0]
	assert.Equal(t, "61000.00", flat.RequiredBalance.StringFixed(2))
	assert.Equal(t, "1016.67", flat.BaseMonthlyContribution.StringFixed(2))
	assert.False(t, flat.Overfunded)

	saved := results.Scenarios[1]
	assert.True(t, saved.Overfunded)
	assert.True(t, saved.BaseMonthlyContribution.IsNegative())

	assert.Equal(t, "Already saved", results.Recommendation.ScenarioName)
	assert.Equal(t, "csv", config.Output.Format)
}

func TestConfigurationValidation(t *testing.T) {
	parser := config.NewInputParser()

	for _, path := range []string{"../testdata/example_config.yaml", "../testdata/example_config.toml"} {
		config, err := parser.LoadFromFile(path)
		require.NoError(t, err, path)
		assert.NoError(t, parser.ValidateConfiguration(config), path)
	}
}
