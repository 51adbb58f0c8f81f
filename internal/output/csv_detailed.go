package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/savings-planner/internal/domain"
)

// CSVDetailedExporter writes every month of both schedules for every scenario.
// Accumulation rows leave MonthlyCOL empty; drawdown rows leave Contribution empty.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Phase", "Month", "Age", "Contribution", "MonthlyCOL", "Balance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		if sc.Plan == nil {
			continue
		}
		for _, e := range sc.Plan.Accumulation.Entries {
			row := []string{sc.Name, "accumulation", intToString(int(e.Month)), e.Age, e.Contribution.StringFixed(2), "", e.Balance.StringFixed(2)}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
		for _, e := range sc.Plan.Drawdown.Entries {
			row := []string{sc.Name, "drawdown", intToString(int(e.Month)), e.Age, "", e.MonthlyCOL.StringFixed(2), e.Balance.StringFixed(2)}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
