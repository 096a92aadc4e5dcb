package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/playoracle/internal/schema"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool                     `json:"valid"`
	Errors []schema.ValidationError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <report.json>",
		Short: "Validate a report against the report schema",
		Long: `Validate a JSON report against the embedded CUE schema.

Checks field types and names, the base state and outcome vocabularies,
and per-record invariants such as the inning ending exactly when three
outs are recorded.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fail(formatter, ExitCommandError, ErrCodeNotFound, fmt.Sprintf("report not found: %s", path), nil)
		}
		return fail(formatter, ExitCommandError, ErrCodeGeneric, "failed to read report", err)
	}
	formatter.VerboseLog("Validating %s (%d bytes)", path, len(data))

	if errs := schema.ValidateReport(path, data); len(errs) > 0 {
		return outputValidationErrors(formatter, errs)
	}

	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true})
	}
	fmt.Fprintln(formatter.Writer, "✓ Report valid")
	return nil
}

// outputValidationErrors outputs multiple validation errors.
func outputValidationErrors(formatter *OutputFormatter, errs []schema.ValidationError) error {
	if formatter.Format == "json" {
		response := CLIResponse{
			Status: "error",
			Data: ValidationResult{
				Valid:  false,
				Errors: errs,
			},
			Error: &CLIError{
				Code:    errs[0].Code,
				Message: errs[0].Message,
			},
		}

		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return err
		}

		// Validation failures = exit code 1 (test/validation failure)
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
	}

	// Text format
	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)

	for _, err := range errs {
		if err.Line > 0 {
			fmt.Fprintf(formatter.Writer, "line %d\n", err.Line)
		}
		fmt.Fprintf(formatter.Writer, "  %s: %s: %s\n\n", err.Code, err.Field, err.Message)
	}

	// Validation failures = exit code 1 (test/validation failure)
	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
}
