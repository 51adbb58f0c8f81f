package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rpgo/savings-planner/internal/calculation"
	"github.com/rpgo/savings-planner/internal/config"
	"github.com/rpgo/savings-planner/internal/domain"
)

// print_schedule dumps the yearly rows of both schedules for one plan and the
// gap left between the final accumulated balance and the required balance.
func main() {
	path := flag.String("config", "", "plan file; the built-in defaults are used when empty")
	scenario := flag.String("scenario", "", "scenario name from -config")
	flag.Parse()

	in := config.DefaultInputs()
	name := "defaults"
	if *path != "" {
		cfg, err := config.NewInputParser().LoadFromFile(*path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		in = cfg.Defaults
		if *scenario != "" {
			merged, ok := cfg.ScenarioInputs(*scenario)
			if !ok {
				fmt.Fprintf(os.Stderr, "scenario %q not found in %v\n", *scenario, cfg.ScenarioNames())
				os.Exit(1)
			}
			in, name = merged, *scenario
		}
	}

	plan, err := calculation.NewPlanner().RunPlan(name, in)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("%s: required %s, base contribution %s\n", name,
		plan.Drawdown.RequiredBalance.StringFixed(2), plan.Accumulation.BaseMonthlyContribution.StringFixed(4))

	fmt.Println("accumulation:")
	for _, e := range plan.Accumulation.Entries {
		if e.Month.IsYearBoundary() {
			fmt.Printf("  %4d %-10s %12s %14s\n", e.Month, e.Age, e.Contribution.StringFixed(2), e.Balance.StringFixed(2))
		}
	}
	fmt.Println("drawdown:")
	for _, e := range plan.Drawdown.Entries {
		if e.Month.IsYearBoundary() {
			fmt.Printf("  %4d %-10s %12s %14s\n", e.Month, e.Age, e.MonthlyCOL.StringFixed(2), e.Balance.StringFixed(2))
		}
	}

	printDrift(plan)
}

func printDrift(plan *domain.PlanResult) {
	final := plan.Accumulation.Final().Balance
	drift := final.Sub(plan.Drawdown.RequiredBalance)
	fmt.Printf("final balance %s, drift %s\n", final.StringFixed(2), drift.StringFixed(2))
}
