package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/playoracle/internal/engine"
	"github.com/roach88/playoracle/internal/play"
)

// NewResolveCommand creates the resolve command.
func NewResolveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <base-state> <outs> <outcome>",
		Short: "Resolve a single play",
		Long: `Resolve one play and print the result.

Base states: ` + strings.Join(play.PresetNames(), ", ") + `
Outs: 0, 1, 2
Outcomes: ` + strings.Join(play.OutcomeNames(), ", ") + `

Examples:
  playoracle resolve loaded 1 double_play
  playoracle resolve 3rd 0 fly_out --format json`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runResolve(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	outs, err := strconv.Atoi(args[1])
	if err != nil {
		return fail(formatter, ExitCommandError, ErrCodeInput,
			fmt.Sprintf("outs must be an integer, got %q", args[1]), nil)
	}

	result, err := engine.ResolveNamed(args[0], outs, args[2])
	if err != nil {
		code := ErrCodeInput
		var inputErr *engine.InputError
		if errors.As(err, &inputErr) {
			code = string(inputErr.Code)
		}
		return fail(formatter, ExitCommandError, code, err.Error(), nil)
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	writeResultText(formatter, result)
	return nil
}

// writeResultText prints a result as aligned key/value lines.
func writeResultText(f *OutputFormatter, r play.Result) {
	w := f.Writer
	outWord := "outs"
	if r.OutsBefore == 1 {
		outWord = "out"
	}
	fmt.Fprintf(w, "%s, %d %s, %s\n", r.BaseState, r.OutsBefore, outWord, r.Outcome)

	if !r.Valid {
		fmt.Fprintln(w, "  ✗ invalid")
	}
	fmt.Fprintf(w, "  runs scored:    %d\n", r.RunsScored)
	fmt.Fprintf(w, "  outs after:     %d\n", r.OutsAfter)
	fmt.Fprintf(w, "  bases after:    %s\n", play.PresetOf(r.NewBases))
	fmt.Fprintf(w, "  batter reaches: %t\n", r.BatterReaches)
	fmt.Fprintf(w, "  inning ends:    %t\n", r.InningEnds)
	if r.SacFly {
		fmt.Fprintln(w, "  sac fly:        true")
	}
	fmt.Fprintf(w, "  rbi credited:   %t\n", r.RBICredited)

	for _, n := range r.Notes {
		marker := "-"
		if n.Code.Advisory() {
			marker = "!"
		}
		fmt.Fprintf(w, "  %s %s\n", marker, n.Message)
	}
	f.VerboseLog("case_id=%s", r.CaseID)
}
