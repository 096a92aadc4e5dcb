package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/playoracle/internal/harness"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Filter string // scenario filter (glob pattern)
}

// ScenarioResult holds the result of a single scenario file.
type ScenarioResult struct {
	Name   string   `json:"name"`
	File   string   `json:"file"`
	Pass   bool     `json:"pass"`
	Cases  int      `json:"cases"`
	Errors []string `json:"errors,omitempty"`
}

// CheckSummary holds the overall check result.
type CheckSummary struct {
	Scenarios []ScenarioResult `json:"scenarios"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
	Total     int              `json:"total"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <scenarios-dir>",
		Short: "Check expectation scenarios against the engine",
		Long: `Resolve every case in the YAML scenario files under a directory and
compare the results with the expected fields and notes.

Exit codes:
  0 - All scenarios passed
  1 - One or more scenarios failed
  2 - Command error (invalid paths, etc.)

Examples:
  playoracle check ./scenarios
  playoracle check ./scenarios --filter "walk*"
  playoracle check ./scenarios --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter scenarios by glob pattern")

	return cmd
}

func runCheck(opts *CheckOptions, scenariosDir string, cmd *cobra.Command) error {
	if _, err := os.Stat(scenariosDir); os.IsNotExist(err) {
		return NewExitError(ExitCommandError, fmt.Sprintf("scenarios directory not found: %s", scenariosDir))
	}

	// Find scenario files
	scenarioFiles, err := findScenarioFiles(scenariosDir, opts.Filter)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to find scenarios", err)
	}

	if len(scenarioFiles) == 0 {
		if opts.Format == "json" {
			return outputCheckJSON(cmd, CheckSummary{Scenarios: []ScenarioResult{}})
		}
		fmt.Fprintln(cmd.OutOrStdout(), "No scenarios found.")
		return nil
	}

	result := CheckSummary{
		Scenarios: make([]ScenarioResult, 0, len(scenarioFiles)),
		Total:     len(scenarioFiles),
	}

	for _, scenarioFile := range scenarioFiles {
		scenResult := checkScenario(scenarioFile, opts, cmd)
		result.Scenarios = append(result.Scenarios, scenResult)

		if scenResult.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
	}

	if opts.Format == "json" {
		if err := outputCheckJSON(cmd, result); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d scenario(s) failed", result.Failed))
	}
	return nil
}

// findScenarioFiles finds all YAML scenario files in a directory.
func findScenarioFiles(dir string, filter string) ([]string, error) {
	var files []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		// Only process .yaml and .yml files
		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		// Apply filter if specified
		if filter != "" {
			name := strings.TrimSuffix(filepath.Base(path), ext)
			matched, err := filepath.Match(filter, name)
			if err != nil {
				return fmt.Errorf("invalid filter pattern: %w", err)
			}
			if !matched {
				return nil
			}
		}

		files = append(files, path)
		return nil
	})

	return files, err
}

// checkScenario loads and checks a single scenario file.
func checkScenario(scenarioFile string, opts *CheckOptions, cmd *cobra.Command) ScenarioResult {
	w := cmd.OutOrStdout()
	base := filepath.Base(scenarioFile)

	scenario, err := harness.LoadScenario(scenarioFile)
	if err != nil {
		if opts.Format != "json" {
			fmt.Fprintf(w, "✗ %s\n", base)
			fmt.Fprintf(w, "  Load error: %v\n", err)
		}
		return ScenarioResult{
			Name:   base,
			File:   scenarioFile,
			Errors: []string{fmt.Sprintf("failed to load scenario: %v", err)},
		}
	}

	checked := harness.Check(scenario)
	result := ScenarioResult{
		Name:  scenario.Name,
		File:  scenarioFile,
		Pass:  checked.Pass,
		Cases: len(checked.Cases),
	}
	for _, c := range checked.Failed() {
		for _, f := range c.Failures {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", c.Name, f))
		}
	}

	if opts.Format != "json" {
		if result.Pass {
			fmt.Fprintf(w, "✓ %s (%d cases)\n", scenario.Name, result.Cases)
		} else {
			fmt.Fprintf(w, "✗ %s\n", scenario.Name)
			for _, e := range result.Errors {
				fmt.Fprintf(w, "  %s\n", e)
			}
		}
	}
	return result
}

// outputCheckJSON writes the check result as a JSON envelope.
func outputCheckJSON(cmd *cobra.Command, result CheckSummary) error {
	status := "ok"
	if result.Failed > 0 {
		status = "error"
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(CLIResponse{
		Status: status,
		Data:   result,
	})
}
