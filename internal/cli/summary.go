package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/playoracle/internal/harness"
)

// NewSummaryCommand creates the summary command.
func NewSummaryCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print counts for the outcome matrix",
		Long: `Print totals, valid and invalid counts, breakdowns by outcome category
and base state, and the number of run-scoring, inning-ending, and sac fly
cases. Same as generate --summary.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			return outputSummary(formatter, harness.Summarize(harness.Enumerate()))
		},
	}

	return cmd
}
