package output_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/savings-planner/internal/config"
	"github.com/rpgo/savings-planner/internal/domain"
	"github.com/rpgo/savings-planner/internal/output"
	stddec "github.com/shopspring/decimal"
)

func sampleComparison() *domain.ScenarioComparison {
	return &domain.ScenarioComparison{
		Scenarios: []domain.ScenarioSummary{
			{
				Name:                    "Baseline",
				RequiredBalance:         stddec.NewFromInt(1000000),
				BaseMonthlyContribution: stddec.NewFromFloat(812.5),
				MonthsToRetirement:      360,
				DrawdownMonths:          361,
			},
		},
		Recommendation: domain.Recommendation{ScenarioName: "Baseline", BaseMonthlyContribution: stddec.NewFromFloat(812.5)},
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	if err := output.Render(&buf, sampleComparison(), "csv-summary"); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(buf.String(), "Baseline,1000000.00,812.50") {
		t.Fatalf("unexpected csv: %s", buf.String())
	}

	err := output.Render(&buf, sampleComparison(), "xml")
	if !errors.Is(err, output.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestGenerateReport_WritesTimestampedFiles(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	files, err := output.GenerateReport(sampleComparison(), "json")
	if err != nil {
		t.Fatalf("GenerateReport json error: %v", err)
	}
	if len(files) != 1 || !strings.HasPrefix(files[0], "savings_plan_") || filepath.Ext(files[0]) != ".json" {
		t.Fatalf("unexpected report files %v", files)
	}

	files, err = output.GenerateReport(sampleComparison(), "all")
	if err != nil {
		t.Fatalf("GenerateReport all error: %v", err)
	}
	if len(files) != len(output.AvailableFormatterNames()) {
		t.Fatalf("expected one file per formatter, got %v", files)
	}

	if _, err := output.GenerateReport(sampleComparison(), "nope"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestSaveConfiguration(t *testing.T) {
	cfg := config.NewInputParser().CreateExampleConfiguration()
	dir := t.TempDir()

	for _, name := range []string{"plan.yaml", "plan.toml"} {
		path := filepath.Join(dir, name)
		if err := output.SaveConfiguration(cfg, path); err != nil {
			t.Fatalf("SaveConfiguration(%s) error: %v", name, err)
		}
		loaded, err := config.NewInputParser().LoadFromFile(path)
		if err != nil {
			t.Fatalf("reload %s: %v", name, err)
		}
		if len(loaded.Scenarios) != len(cfg.Scenarios) {
			t.Fatalf("%s: scenarios = %d, want %d", name, len(loaded.Scenarios), len(cfg.Scenarios))
		}
		if !loaded.Defaults.InflationRate.Equal(cfg.Defaults.InflationRate) {
			t.Fatalf("%s: inflation rate = %s", name, loaded.Defaults.InflationRate)
		}
		if got := *loaded.Scenarios[1].RetirementAge; got != 60 {
			t.Fatalf("%s: retirement age override = %d", name, got)
		}
	}
}
