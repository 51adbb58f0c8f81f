package calculation

import (
	"math"
	"testing"

	"github.com/rpgo/savings-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveAccumulation_Baseline(t *testing.T) {
	in := baselineInputs()
	drawdown, err := ProjectDrawdown(in.Drawdown())
	require.NoError(t, err)

	schedule, err := SolveAccumulation(in.Accumulation(drawdown.RequiredBalance))
	require.NoError(t, err)
	require.Len(t, schedule.Entries, 361)

	first := schedule.Entries[0]
	assert.True(t, first.Balance.Equal(decimal.NewFromInt(100000)), "entry 0 balance = %s", first.Balance)
	assert.True(t, first.Contribution.IsZero())
	assert.Equal(t, "35 Y, 0 M", first.Age)

	// 100000 * 1.07^30
	assert.InDelta(t, 761225.50, schedule.SavingsFutureValue.InexactFloat64(), 0.01)
	assert.InDelta(t, 2674.61, schedule.BaseMonthlyContribution.InexactFloat64(), 0.01)
	assert.InDelta(t, 2674.61, schedule.Entries[1].Contribution.InexactFloat64(), 0.001)

	tolerance := 0.01 * float64(len(schedule.Entries)-1)
	diff := schedule.Final().Balance.Sub(drawdown.RequiredBalance).Abs().InexactFloat64()
	assert.LessOrEqual(t, diff, tolerance, "final balance %s vs required %s", schedule.Final().Balance, drawdown.RequiredBalance)
	assert.Equal(t, "65 Y, 0 M", schedule.Final().Age)
}

func TestSolveAccumulation_ContributionsEscalate(t *testing.T) {
	in := baselineInputs()
	schedule, err := SolveAccumulation(in.Accumulation(decimal.NewFromInt(2000000)))
	require.NoError(t, err)

	for i := 2; i < len(schedule.Entries); i++ {
		assert.True(t, schedule.Entries[i].Contribution.GreaterThanOrEqual(schedule.Entries[i-1].Contribution),
			"contribution fell at month %d", i)
	}
	assert.True(t, schedule.TotalContributed().IsPositive())
}

func TestSolveAccumulation_ZeroRates(t *testing.T) {
	in := domain.AccumulationInputs{
		RequiredBalance:  decimal.NewFromInt(61000),
		CurrentSavings:   decimal.Zero,
		CurrentAge:       60,
		RetirementAge:    65,
		InflationRate:    decimal.Zero,
		PreRetirementROI: decimal.Zero,
	}

	schedule, err := SolveAccumulation(in)
	require.NoError(t, err)
	require.Len(t, schedule.Entries, 61)
	assert.InDelta(t, 1016.67, schedule.BaseMonthlyContribution.InexactFloat64(), 0.01)
	assert.InDelta(t, 61000.0, schedule.Final().Balance.InexactFloat64(), 0.6)
}

func TestSolveAccumulation_Overfunded(t *testing.T) {
	in := baselineInputs()
	in.CurrentSavings = decimal.NewFromInt(1000000)

	schedule, err := SolveAccumulation(in.Accumulation(decimal.NewFromInt(100000)))
	require.NoError(t, err)
	assert.True(t, schedule.BaseMonthlyContribution.IsNegative())
	assert.InDelta(t, -4618.74, schedule.BaseMonthlyContribution.InexactFloat64(), 0.01)
	assert.True(t, schedule.Entries[1].Contribution.IsNegative())
}

func TestSolveAccumulation_DegenerateHorizon(t *testing.T) {
	in := baselineInputs()
	in.RetirementAge = in.CurrentAge

	schedule, err := SolveAccumulation(in.Accumulation(decimal.NewFromInt(500000)))
	assert.Nil(t, schedule)
	require.ErrorIs(t, err, domain.ErrDegenerateHorizon)
	assert.Equal(t, "degenerate_horizon", domain.KindName(err))
}

func TestSolveAccumulation_InvalidRange(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *domain.AccumulationInputs)
		field  string
	}{
		{"retirement before current", func(in *domain.AccumulationInputs) { in.RetirementAge = 30 }, "retirement_age"},
		{"negative savings", func(in *domain.AccumulationInputs) { in.CurrentSavings = decimal.NewFromInt(-1) }, "current_savings"},
		{"negative inflation", func(in *domain.AccumulationInputs) { in.InflationRate = decimal.NewFromFloat(-0.01) }, "inflation_rate"},
		{"negative roi", func(in *domain.AccumulationInputs) { in.PreRetirementROI = decimal.NewFromFloat(-0.01) }, "pre_retirement_roi"},
		{"negative age", func(in *domain.AccumulationInputs) { in.CurrentAge = -1 }, "current_age"},
		{"retirement above age bound", func(in *domain.AccumulationInputs) { in.RetirementAge = 200 }, "retirement_age"},
		{"savings growth overflows", func(in *domain.AccumulationInputs) {
			in.CurrentAge = 0
			in.PreRetirementROI = decimal.NewFromInt(1000000)
		}, "pre_retirement_roi"},
		{"inflation overflows", func(in *domain.AccumulationInputs) { in.InflationRate = decimal.NewFromFloat(1e30) }, "inflation_rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baselineInputs().Accumulation(decimal.NewFromInt(1000000))
			tt.mutate(&in)

			_, err := SolveAccumulation(in)
			require.ErrorIs(t, err, domain.ErrInvalidRange)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestAnnuityFactor(t *testing.T) {
	assert.Equal(t, 0.0, annuityFactor(1.01, 1.02, 0))
	assert.InDelta(t, 12.0, annuityFactor(1, 1, 12), 1e-12)

	// equal growth factors collapse to m * g^(m-1)
	g := 1.005
	assert.InDelta(t, 24*math.Pow(g, 23), annuityFactor(g, g, 24), 1e-9)
}

func TestSchedules_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *domain.InputParameters)
	}{
		{"baseline", func(in *domain.InputParameters) {}},
		{"high rates", func(in *domain.InputParameters) {
			in.CurrentAge, in.RetirementAge, in.LifeExpectancy, in.BufferYears = 40, 60, 85, 0
			in.InflationRate = decimal.NewFromFloat(0.06)
			in.PostRetirementROI = decimal.NewFromFloat(0.10)
			in.PreRetirementROI = decimal.NewFromFloat(0.15)
			in.CurrentAnnualCOL = decimal.NewFromInt(50000)
			in.CurrentSavings = decimal.Zero
		}},
		{"low rates", func(in *domain.InputParameters) {
			in.CurrentAge, in.RetirementAge, in.LifeExpectancy, in.BufferYears = 50, 55, 80, 10
			in.InflationRate = decimal.NewFromFloat(0.005)
			in.PostRetirementROI = decimal.NewFromFloat(0.01)
			in.PreRetirementROI = decimal.NewFromFloat(0.01)
			in.CurrentAnnualCOL = decimal.NewFromInt(30000)
			in.CurrentSavings = decimal.NewFromInt(20000)
		}},
		{"overfunded", func(in *domain.InputParameters) { in.CurrentSavings = decimal.NewFromInt(5000000) }},
		{"one month of drawdown", func(in *domain.InputParameters) {
			in.CurrentAge, in.RetirementAge, in.LifeExpectancy, in.BufferYears = 64, 65, 65, 0
		}},
		{"long drawdown", func(in *domain.InputParameters) {
			in.CurrentAge, in.RetirementAge, in.LifeExpectancy, in.BufferYears = 30, 31, 100, 20
			in.PostRetirementROI = decimal.NewFromFloat(0.12)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baselineInputs()
			tt.mutate(&in)
			n := (in.LifeExpectancy + in.BufferYears - in.RetirementAge) * 12
			m := (in.RetirementAge - in.CurrentAge) * 12

			drawdown, err := ProjectDrawdown(in.Drawdown())
			require.NoError(t, err)
			require.Len(t, drawdown.Entries, n+1)
			last := drawdown.Final()
			assert.True(t, last.Balance.Equal(last.MonthlyCOL), "terminal balance %s, COL %s", last.Balance, last.MonthlyCOL)
			for i, e := range drawdown.Entries {
				assert.True(t, e.Balance.Equal(e.Balance.Round(2)), "drawdown balance at month %d not cent-rounded", i)
				assert.True(t, e.MonthlyCOL.Equal(e.MonthlyCOL.Round(2)), "COL at month %d not cent-rounded", i)
			}

			schedule, err := SolveAccumulation(in.Accumulation(drawdown.RequiredBalance))
			require.NoError(t, err)
			require.Len(t, schedule.Entries, m+1)
			assert.True(t, schedule.Entries[0].Balance.Equal(in.CurrentSavings.Round(2)))
			for i, e := range schedule.Entries {
				assert.True(t, e.Balance.Equal(e.Balance.Round(2)), "balance at month %d not cent-rounded", i)
				assert.True(t, e.Contribution.Equal(e.Contribution.Round(2)), "contribution at month %d not cent-rounded", i)
			}

			diff := schedule.Final().Balance.Sub(drawdown.RequiredBalance).Abs().InexactFloat64()
			assert.LessOrEqual(t, diff, 0.01*float64(m), "final %s vs required %s", schedule.Final().Balance, drawdown.RequiredBalance)
		})
	}
}
