package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Configuration is a plan file: shared defaults plus named scenarios that override them.
type Configuration struct {
	Defaults  InputParameters `json:"defaults" yaml:"defaults" toml:"defaults"`
	Scenarios []Scenario      `json:"scenarios" yaml:"scenarios" toml:"scenarios"`
	Logging   LoggingConfig   `json:"logging,omitempty" yaml:"logging,omitempty" toml:"logging,omitempty"`
	Output    OutputConfig    `json:"output,omitempty" yaml:"output,omitempty" toml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options. Level is one of debug, info,
// warn or error; Format is json or console.
type LoggingConfig struct {
	Level      string `json:"level,omitempty" yaml:"level,omitempty" toml:"level,omitempty"`
	Format     string `json:"format,omitempty" yaml:"format,omitempty" toml:"format,omitempty"`
	OutputFile string `json:"output_file,omitempty" yaml:"output_file,omitempty" toml:"output_file,omitempty"`
}

// OutputConfig holds the default report format.
type OutputConfig struct {
	Format string `json:"format,omitempty" yaml:"format,omitempty" toml:"format,omitempty"`
}

// Scenario names a variation of the defaults. Nil fields inherit the default value.
type Scenario struct {
	Name              string           `json:"name" yaml:"name" toml:"name"`
	CurrentAge        *int             `json:"current_age,omitempty" yaml:"current_age,omitempty" toml:"current_age,omitempty"`
	RetirementAge     *int             `json:"retirement_age,omitempty" yaml:"retirement_age,omitempty" toml:"retirement_age,omitempty"`
	LifeExpectancy    *int             `json:"life_expectancy,omitempty" yaml:"life_expectancy,omitempty" toml:"life_expectancy,omitempty"`
	BufferYears       *int             `json:"buffer_years,omitempty" yaml:"buffer_years,omitempty" toml:"buffer_years,omitempty"`
	InflationRate     *decimal.Decimal `json:"inflation_rate,omitempty" yaml:"inflation_rate,omitempty" toml:"inflation_rate,omitempty"`
	PostRetirementROI *decimal.Decimal `json:"post_retirement_roi,omitempty" yaml:"post_retirement_roi,omitempty" toml:"post_retirement_roi,omitempty"`
	PreRetirementROI  *decimal.Decimal `json:"pre_retirement_roi,omitempty" yaml:"pre_retirement_roi,omitempty" toml:"pre_retirement_roi,omitempty"`
	CurrentAnnualCOL  *decimal.Decimal `json:"current_annual_col,omitempty" yaml:"current_annual_col,omitempty" toml:"current_annual_col,omitempty"`
	CurrentSavings    *decimal.Decimal `json:"current_savings,omitempty" yaml:"current_savings,omitempty" toml:"current_savings,omitempty"`
	BirthDate         *time.Time       `json:"birth_date,omitempty" yaml:"birth_date,omitempty" toml:"birth_date,omitempty"`
}

// Apply overlays the scenario's set fields onto base and returns the result.
// A birth date without an explicit age replaces the inherited age.
func (s Scenario) Apply(base InputParameters) InputParameters {
	out := base
	setInt(&out.CurrentAge, s.CurrentAge)
	setInt(&out.RetirementAge, s.RetirementAge)
	setInt(&out.LifeExpectancy, s.LifeExpectancy)
	setInt(&out.BufferYears, s.BufferYears)
	setDecimal(&out.InflationRate, s.InflationRate)
	setDecimal(&out.PostRetirementROI, s.PostRetirementROI)
	setDecimal(&out.PreRetirementROI, s.PreRetirementROI)
	setDecimal(&out.CurrentAnnualCOL, s.CurrentAnnualCOL)
	setDecimal(&out.CurrentSavings, s.CurrentSavings)
	if s.BirthDate != nil {
		bd := *s.BirthDate
		out.BirthDate = &bd
		if s.CurrentAge == nil {
			out.CurrentAge = 0
		}
	}
	return out
}

// ScenarioInputs returns the merged inputs for the named scenario.
func (c *Configuration) ScenarioInputs(name string) (InputParameters, bool) {
	for _, s := range c.Scenarios {
		if s.Name == name {
			return s.Apply(c.Defaults), true
		}
	}
	return InputParameters{}, false
}

// ScenarioNames lists scenario names in file order.
func (c *Configuration) ScenarioNames() []string {
	names := make([]string, 0, len(c.Scenarios))
	for _, s := range c.Scenarios {
		names = append(names, s.Name)
	}
	return names
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setDecimal(dst *decimal.Decimal, src *decimal.Decimal) {
	if src != nil {
		*dst = *src
	}
}
