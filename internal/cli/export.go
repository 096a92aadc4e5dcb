package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/playoracle/internal/harness"
	"github.com/roach88/playoracle/internal/store"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	Database string
}

// ExportResult is reported after an export.
type ExportResult struct {
	Database string `json:"database"`
	Digest   string `json:"digest"`
	Inserted int    `json:"inserted"`
	Updated  int    `json:"updated"`
	Skipped  int    `json:"skipped"`
	Valid    int    `json:"valid_cases"`
	Invalid  int    `json:"invalid_cases"`
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the outcome matrix to SQLite",
		Long: `Resolve every combination and write it to a SQLite database,
creating the database if it doesn't exist.

Exporting is idempotent: cases already present are skipped. Cases whose
stored record differs from the current engine output are overwritten.

Examples:
  playoracle export --db ./oracle.db
  PLAYORACLE_DB=./oracle.db playoracle export`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (default $PLAYORACLE_DB)")

	return cmd
}

func runExport(ctx context.Context, opts *ExportOptions, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := newFormatter(opts.RootOptions, cmd)
	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr())

	if opts.Database == "" {
		opts.Database = opts.DefaultDatabase
	}
	if opts.Database == "" {
		return fail(formatter, ExitCommandError, ErrCodeInput, "--db is required (or set PLAYORACLE_DB)", nil)
	}

	logger.Info("opening database", "path", opts.Database)
	st, err := store.Open(opts.Database)
	if err != nil {
		return fail(formatter, ExitCommandError, ErrCodeStore, "failed to open database", err)
	}
	defer st.Close()

	results := harness.Enumerate()
	logger.Debug("enumerated cases", "total", len(results))

	stats, err := st.WriteResults(ctx, results)
	if err != nil {
		return fail(formatter, ExitCommandError, ErrCodeStore, "failed to export results", err)
	}

	valid, invalid, err := st.CountValid(ctx)
	if err != nil {
		return fail(formatter, ExitCommandError, ErrCodeStore, "failed to count exported cases", err)
	}
	logger.Info("export complete", "inserted", stats.Inserted, "updated", stats.Updated, "skipped", stats.Skipped, "digest", stats.Digest)

	result := ExportResult{
		Database: opts.Database,
		Digest:   stats.Digest,
		Inserted: stats.Inserted,
		Updated:  stats.Updated,
		Skipped:  stats.Skipped,
		Valid:    valid,
		Invalid:  invalid,
	}
	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintf(formatter.Writer, "✓ Exported to %s: %d inserted, %d updated, %d already present\n",
		result.Database, result.Inserted, result.Updated, result.Skipped)
	return nil
}
