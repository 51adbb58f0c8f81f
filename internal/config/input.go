package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rpgo/savings-planner/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of plan configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML, JSON or TOML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config, err := ip.Parse(data, filepath.Ext(filename))
	if err != nil {
		return nil, err
	}

	// Validate the configuration
	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Parse decodes configuration data. A ".toml" extension selects TOML; anything
// else is read as YAML, which also accepts JSON.
func (ip *InputParser) Parse(data []byte, ext string) (*domain.Configuration, error) {
	var config domain.Configuration
	if strings.EqualFold(ext, ".toml") {
		if err := toml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
		return &config, nil
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if strings.TrimSpace(scenario.Name) == "" {
			return fmt.Errorf("scenario %d validation failed: name is required", i)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("scenario %d validation failed: duplicate name %q", i, scenario.Name)
		}
		seen[scenario.Name] = true

		if err := scenario.Apply(config.Defaults).Validate(); err != nil {
			return fmt.Errorf("scenario %q validation failed: %w", scenario.Name, err)
		}
	}

	if err := ip.validateLogging(&config.Logging); err != nil {
		return fmt.Errorf("logging validation failed: %w", err)
	}

	return nil
}

func (ip *InputParser) validateLogging(logging *domain.LoggingConfig) error {
	switch strings.ToLower(logging.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("level must be one of debug, info, warn or error, got %q", logging.Level)
	}
	switch strings.ToLower(logging.Format) {
	case "", "json", "console":
	default:
		return fmt.Errorf("format must be 'json' or 'console', got %q", logging.Format)
	}
	return nil
}

// DefaultInputs returns the inputs a new plan starts from.
func DefaultInputs() domain.InputParameters {
	return domain.InputParameters{
		CurrentAge:        35,
		RetirementAge:     65,
		LifeExpectancy:    90,
		BufferYears:       5,
		InflationRate:     decimal.NewFromFloat(0.03),
		PostRetirementROI: decimal.NewFromFloat(0.03),
		PreRetirementROI:  decimal.NewFromFloat(0.07),
		CurrentAnnualCOL:  decimal.NewFromInt(70000),
		CurrentSavings:    decimal.NewFromInt(100000),
	}
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	early := 60

	return &domain.Configuration{
		Defaults: DefaultInputs(),
		Scenarios: []domain.Scenario{
			{Name: "Retire at 65"},
			{Name: "Retire at 60", RetirementAge: &early},
		},
		Logging: domain.LoggingConfig{Level: "info", Format: "console"},
		Output:  domain.OutputConfig{Format: "console"},
	}
}
