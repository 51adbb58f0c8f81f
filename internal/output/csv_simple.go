package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/savings-planner/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "RequiredBalance", "BaseMonthlyContribution", "FirstContribution", "FinalContribution", "TotalContributed", "FinalBalance", "FirstMonthlyCOL", "MonthsToRetirement", "DrawdownMonths", "Overfunded", "Recommended"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		row := []string{
			sc.Name,
			sc.RequiredBalance.StringFixed(2),
			sc.BaseMonthlyContribution.StringFixed(2),
			sc.FirstContribution.StringFixed(2),
			sc.FinalContribution.StringFixed(2),
			sc.TotalContributed.StringFixed(2),
			sc.FinalBalance.StringFixed(2),
			sc.FirstMonthlyCOL.StringFixed(2),
			intToString(sc.MonthsToRetirement),
			intToString(sc.DrawdownMonths),
			boolToString(sc.Overfunded),
			boolToString(sc.Name == results.Recommendation.ScenarioName),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
