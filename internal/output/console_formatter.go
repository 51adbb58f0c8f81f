package output

import (
	"fmt"
	"strings"

	"github.com/rpgo/savings-planner/internal/domain"
	"github.com/rpgo/savings-planner/pkg/dateutil"
)

// ConsoleFormatter renders scenario summaries, yearly schedule samples and the
// recommendation as terminal tables.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var b strings.Builder
	b.WriteString(RenderTitle("RETIREMENT SAVINGS PLAN"))
	b.WriteString("\n\n")

	for _, sc := range results.Scenarios {
		b.WriteString(RenderTable(summaryTable(sc)))
		if sc.Overfunded {
			b.WriteString(warnStyle.Render("  Current savings already exceed the required balance."))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if sc.Plan == nil {
			continue
		}
		b.WriteString(RenderTable(accumulationTable(sc.Plan)))
		b.WriteString("\n")
		b.WriteString(RenderTable(drawdownTable(sc.Plan)))
		b.WriteString("\n")
	}

	rec := results.Recommendation
	if rec.ScenarioName != "" {
		fmt.Fprintf(&b, "%s %s, base contribution %s/month\n",
			headerStyle.Render("Recommended:"), goodStyle.Render(rec.ScenarioName),
			FormatCurrency(rec.BaseMonthlyContribution))
		if rec.Reason != "" {
			fmt.Fprintf(&b, "  %s\n", rec.Reason)
		}
		b.WriteString("\n")
	}

	if len(results.Assumptions) > 0 {
		b.WriteString(headerStyle.Render("Assumptions"))
		b.WriteString("\n")
		for _, a := range results.Assumptions {
			fmt.Fprintf(&b, "  • %s\n", a)
		}
	}

	return []byte(b.String()), nil
}

func summaryTable(sc domain.ScenarioSummary) Table {
	base := FormatCurrency(sc.BaseMonthlyContribution)
	if sc.Overfunded {
		base += " (overfunded)"
	}
	t := Table{
		Title:   sc.Name,
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Required balance at retirement", FormatCurrency(sc.RequiredBalance)},
			{"Base monthly contribution", base},
			{"First contribution", FormatCurrency(sc.FirstContribution)},
			{"Final contribution", FormatCurrency(sc.FinalContribution)},
			{"Total contributed", FormatCurrency(sc.TotalContributed)},
			{"Balance at retirement", FormatCurrency(sc.FinalBalance)},
			{"First retirement month COL", FormatCurrency(sc.FirstMonthlyCOL)},
			{"Time to retirement", dateutil.DurationLabel(sc.MonthsToRetirement)},
			{"Drawdown months", intToString(sc.DrawdownMonths)},
		},
	}
	if sc.Plan != nil {
		in := sc.Plan.Inputs
		t.Rows = append(t.Rows,
			[]string{"Inflation", FormatPercentage(in.InflationRate)},
			[]string{"Return before retirement", FormatPercentage(in.PreRetirementROI)},
			[]string{"Return after retirement", FormatPercentage(in.PostRetirementROI)},
		)
	}
	return t
}

func accumulationTable(plan *domain.PlanResult) Table {
	t := Table{
		Title:   "Accumulation (yearly)",
		Headers: []string{"Age", "Contribution", "Balance"},
	}
	for _, e := range plan.Accumulation.Entries {
		if !e.Month.IsYearBoundary() {
			continue
		}
		t.Rows = append(t.Rows, []string{e.Age, FormatCurrency(e.Contribution), FormatCurrency(e.Balance)})
	}
	return t
}

func drawdownTable(plan *domain.PlanResult) Table {
	t := Table{
		Title:   "Drawdown (yearly)",
		Headers: []string{"Age", "Monthly COL", "Balance"},
	}
	for _, e := range plan.Drawdown.Entries {
		if !e.Month.IsYearBoundary() {
			continue
		}
		t.Rows = append(t.Rows, []string{e.Age, FormatCurrency(e.MonthlyCOL), FormatCurrency(e.Balance)})
	}
	return t
}
