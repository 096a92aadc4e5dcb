package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/playoracle/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// DefaultDatabase is PLAYORACLE_DB, used when --db is not given.
	DefaultDatabase string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the playoracle CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "playoracle",
		Short: "playoracle - baseball play-outcome oracle",
		Long: `Deterministic reference oracle for baseball play outcomes.

Given the runners on base, the outs, and a play outcome, playoracle computes
runs scored, outs after the play, the new base occupancy, and notes for
situations a scorekeeper must confirm by hand. The full matrix of
situations can be generated as JSON, checked against YAML expectations,
and exported to SQLite.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := applyEnv(opts, cmd); err != nil {
				return WrapExitError(ExitCommandError, "invalid environment", err)
			}

			// Validate format flag
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	// Add subcommands
	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewSummaryCommand(opts))
	cmd.AddCommand(NewResolveCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))

	return cmd
}

// applyEnv fills flags the user did not set from PLAYORACLE_* variables.
func applyEnv(opts *RootOptions, cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("format") && cfg.Format != "" {
		opts.Format = cfg.Format
	}
	if !cmd.Flags().Changed("verbose") && cfg.Verbose {
		opts.Verbose = true
	}
	opts.DefaultDatabase = cfg.Database
	return nil
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
