package main

import (
	"fmt"
	"strings"

	"github.com/rpgo/savings-planner/internal/output"
	"github.com/spf13/cobra"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "formats",
		Short:             "List output formats and their aliases",
		Args:              cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Formats: %s\n", strings.Join(output.AvailableFormatterNames(), ", "))
			aliases := output.AvailableFormatAliases()
			pairs := make([]string, 0, len(aliases))
			for _, alias := range aliases {
				pairs = append(pairs, alias+" -> "+output.NormalizeFormatName(alias))
			}
			fmt.Fprintf(out, "Aliases: %s\n", strings.Join(pairs, ", "))
		},
	}
}
