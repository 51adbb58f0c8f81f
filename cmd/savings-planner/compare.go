package main

import (
	"fmt"

	"github.com/rpgo/savings-planner/internal/output"
	"github.com/spf13/cobra"
)

func newCompareCmd(a *app) *cobra.Command {
	var format, outPath string
	var report bool

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every scenario in the plan file and recommend one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.config == nil {
				return fmt.Errorf("compare requires --config")
			}

			comparison, err := a.planner.RunScenarios(a.config)
			if err != nil {
				return err
			}

			if format == "" {
				format = a.defaultFormat()
			}
			if report {
				files, err := output.GenerateReport(comparison, format)
				if err != nil {
					return err
				}
				for _, f := range files {
					fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", f)
				}
				return nil
			}
			return writeOutput(cmd.OutOrStdout(), comparison, format, outPath)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (see `formats`), or all with --report")
	cmd.Flags().StringVarP(&outPath, "output", "o", "-", "Output file, - for stdout")
	cmd.Flags().BoolVar(&report, "report", false, "Write timestamped report files to the working directory")
	return cmd
}
