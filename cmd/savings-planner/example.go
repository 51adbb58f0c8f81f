package main

import (
	"fmt"

	"github.com/rpgo/savings-planner/internal/config"
	"github.com/rpgo/savings-planner/internal/output"
	"github.com/spf13/cobra"
)

func newExampleCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "example [path]",
		Short: "Write an example plan file (YAML, or TOML for a .toml path)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "savings_plan.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			cfg := config.NewInputParser().CreateExampleConfiguration()
			if err := output.SaveConfiguration(cfg, path); err != nil {
				return fmt.Errorf("failed to write example configuration: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", path)
			return nil
		},
	}
}
