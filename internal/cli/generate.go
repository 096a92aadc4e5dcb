package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/playoracle/internal/harness"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	Summary bool   // print summary instead of the full report
	Out     string // write the report to a file instead of stdout
}

// GenerateResult is reported after writing a report to a file.
type GenerateResult struct {
	Path         string `json:"path"`
	TotalCases   int    `json:"total_cases"`
	ValidCases   int    `json:"valid_cases"`
	InvalidCases int    `json:"invalid_cases"`
	Digest       string `json:"digest"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the full outcome matrix",
		Long: `Resolve every base state, out count, and outcome combination and
print the report as JSON.

The report holds valid combinations under test_cases and illegal ones
under invalid_cases, with metadata describing the enumeration.

Examples:
  playoracle generate > report.json
  playoracle generate --out report.json
  playoracle generate --summary`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Summary, "summary", false, "print summary counts instead of the report")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "write report to file")

	return cmd
}

func runGenerate(opts *GenerateOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr())

	results := harness.Enumerate()
	logger.Debug("enumerated cases", "total", len(results))

	if opts.Summary {
		return outputSummary(formatter, harness.Summarize(results))
	}

	report, err := harness.BuildReport(results)
	if err != nil {
		return fail(formatter, ExitFailure, ErrCodeGeneric, "failed to build report", err)
	}

	if opts.Out == "" {
		if err := report.WriteJSON(cmd.OutOrStdout()); err != nil {
			return fail(formatter, ExitCommandError, ErrCodeGeneric, "failed to write report", err)
		}
		return nil
	}

	var buf bytes.Buffer
	if err := report.WriteJSON(&buf); err != nil {
		return fail(formatter, ExitCommandError, ErrCodeGeneric, "failed to encode report", err)
	}
	if err := os.WriteFile(opts.Out, buf.Bytes(), 0644); err != nil {
		return fail(formatter, ExitCommandError, ErrCodeGeneric, "failed to write report file", err)
	}
	logger.Info("report written", "path", opts.Out, "digest", report.Metadata.Digest)

	result := GenerateResult{
		Path:         opts.Out,
		TotalCases:   report.Metadata.TotalCases,
		ValidCases:   report.Metadata.ValidCases,
		InvalidCases: report.Metadata.InvalidCases,
		Digest:       report.Metadata.Digest,
	}
	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintf(formatter.Writer, "✓ Wrote %d cases (%d valid, %d invalid) to %s\n",
		result.TotalCases, result.ValidCases, result.InvalidCases, result.Path)
	return nil
}

// outputSummary prints the summary in the configured format.
func outputSummary(formatter *OutputFormatter, s harness.Summary) error {
	if formatter.Format == "json" {
		return formatter.Success(s)
	}
	return s.WriteText(formatter.Writer)
}
