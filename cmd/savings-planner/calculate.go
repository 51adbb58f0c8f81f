package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rpgo/savings-planner/internal/calculation"
	"github.com/rpgo/savings-planner/internal/config"
	"github.com/rpgo/savings-planner/internal/domain"
	"github.com/rpgo/savings-planner/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// inputFlags holds the calculate command's inputs. Rates are percentages.
type inputFlags struct {
	name           string
	scenario       string
	currentAge     int
	retirementAge  int
	lifeExpectancy int
	bufferYears    int
	inflation      float64
	postROI        float64
	preROI         float64
	annualCOL      float64
	savings        float64
	birthDate      string
}

func newCalculateCmd(a *app) *cobra.Command {
	defaults := config.DefaultInputs()
	in := &inputFlags{}
	var format, outPath string

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate the required balance and monthly contributions for one plan",
		Example: `  savings-planner calculate --current-age 40 --retirement-age 62 --col 55000
  savings-planner calculate --config plan.yaml --scenario "Retire at 60" --format csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, name, err := in.resolve(a.config, cmd.Flags())
			if err != nil {
				return err
			}

			result, err := a.planner.RunPlan(name, params)
			if err != nil {
				return err
			}

			summary := domain.NewScenarioSummary(result)
			comparison := &domain.ScenarioComparison{
				Scenarios:      []domain.ScenarioSummary{summary},
				Recommendation: calculation.Recommend([]domain.ScenarioSummary{summary}),
				Assumptions:    calculation.GenerateAssumptions(result.Inputs),
			}
			if format == "" {
				format = a.defaultFormat()
			}
			return writeOutput(cmd.OutOrStdout(), comparison, format, outPath)
		},
	}

	f := cmd.Flags()
	f.StringVar(&in.name, "name", "plan", "Name shown in the report")
	f.StringVar(&in.scenario, "scenario", "", "Scenario from --config to start from")
	f.IntVar(&in.currentAge, "current-age", defaults.CurrentAge, "Current age in years")
	f.IntVar(&in.retirementAge, "retirement-age", defaults.RetirementAge, "Retirement age in years")
	f.IntVar(&in.lifeExpectancy, "life-expectancy", defaults.LifeExpectancy, "Life expectancy in years")
	f.IntVar(&in.bufferYears, "buffer-years", defaults.BufferYears, "Years of savings beyond life expectancy")
	f.Float64Var(&in.inflation, "inflation", percentOf(defaults.InflationRate), "Annual inflation, percent")
	f.Float64Var(&in.postROI, "post-roi", percentOf(defaults.PostRetirementROI), "Annual return after retirement, percent")
	f.Float64Var(&in.preROI, "pre-roi", percentOf(defaults.PreRetirementROI), "Annual return before retirement, percent")
	f.Float64Var(&in.annualCOL, "col", defaults.CurrentAnnualCOL.InexactFloat64(), "Current annual cost of living")
	f.Float64Var(&in.savings, "savings", defaults.CurrentSavings.InexactFloat64(), "Current savings")
	f.StringVar(&in.birthDate, "birth-date", "", "Birth date (YYYY-MM-DD); derives the current age when --current-age is not given")
	f.StringVarP(&format, "format", "f", "", "Output format (see `formats`)")
	f.StringVarP(&outPath, "output", "o", "-", "Output file, - for stdout")
	return cmd
}

// resolve builds the plan inputs. Without a plan file every flag applies; with
// one, only flags set explicitly override the file's values.
func (in *inputFlags) resolve(cfg *domain.Configuration, flags *pflag.FlagSet) (domain.InputParameters, string, error) {
	name := in.name
	params := config.DefaultInputs()
	explicitOnly := false

	if cfg != nil {
		explicitOnly = true
		params = cfg.Defaults
		if in.scenario != "" {
			merged, ok := cfg.ScenarioInputs(in.scenario)
			if !ok {
				return params, "", fmt.Errorf("scenario %q not found in %v", in.scenario, cfg.ScenarioNames())
			}
			params = merged
			if !flags.Changed("name") {
				name = in.scenario
			}
		}
	} else if in.scenario != "" {
		return params, "", fmt.Errorf("--scenario requires --config")
	}

	use := func(flag string) bool { return !explicitOnly || flags.Changed(flag) }
	if use("current-age") {
		params.CurrentAge = in.currentAge
	}
	if use("retirement-age") {
		params.RetirementAge = in.retirementAge
	}
	if use("life-expectancy") {
		params.LifeExpectancy = in.lifeExpectancy
	}
	if use("buffer-years") {
		params.BufferYears = in.bufferYears
	}
	if use("inflation") {
		params.InflationRate = fromPercent(in.inflation)
	}
	if use("post-roi") {
		params.PostRetirementROI = fromPercent(in.postROI)
	}
	if use("pre-roi") {
		params.PreRetirementROI = fromPercent(in.preROI)
	}
	if use("col") {
		params.CurrentAnnualCOL = decimal.NewFromFloat(in.annualCOL)
	}
	if use("savings") {
		params.CurrentSavings = decimal.NewFromFloat(in.savings)
	}

	if in.birthDate != "" {
		birth, err := time.Parse("2006-01-02", in.birthDate)
		if err != nil {
			return params, "", fmt.Errorf("invalid --birth-date %q: %w", in.birthDate, err)
		}
		params.BirthDate = &birth
		if !flags.Changed("current-age") {
			params.CurrentAge = 0
		}
	}

	return params, name, nil
}

func fromPercent(p float64) decimal.Decimal {
	return decimal.NewFromFloat(p).Div(decimal.NewFromInt(100))
}

func percentOf(rate decimal.Decimal) float64 {
	return rate.Mul(decimal.NewFromInt(100)).InexactFloat64()
}

// writeOutput renders comparison to stdout or to path.
func writeOutput(stdout io.Writer, comparison *domain.ScenarioComparison, format, path string) error {
	if path == "" || path == "-" {
		return output.Render(stdout, comparison, format)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := output.Render(file, comparison, format); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Report written to %s\n", path)
	return nil
}
