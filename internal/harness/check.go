package harness

import (
	"fmt"

	"github.com/roach88/playoracle/internal/engine"
	"github.com/roach88/playoracle/internal/play"
)

// CaseResult is the outcome of checking one case.
type CaseResult struct {
	Name     string      `json:"name"`
	Pass     bool        `json:"pass"`
	Failures []string    `json:"failures,omitempty"`
	Result   play.Result `json:"result"`
}

// CheckResult is the outcome of checking a scenario.
type CheckResult struct {
	Scenario string       `json:"scenario"`
	Pass     bool         `json:"pass"`
	Cases    []CaseResult `json:"cases"`
}

// Failed returns the cases that did not match.
func (r *CheckResult) Failed() []CaseResult {
	var out []CaseResult
	for _, c := range r.Cases {
		if !c.Pass {
			out = append(out, c)
		}
	}
	return out
}

// Check resolves every case in the scenario and compares it with its
// expectation.
func Check(s *Scenario) *CheckResult {
	result := &CheckResult{Scenario: s.Name, Pass: true}
	for _, c := range s.Cases {
		cr := CaseResult{Name: c.Label(), Pass: true}

		resolved, err := engine.ResolveNamed(c.Base, c.Outs, c.Outcome)
		if err != nil {
			cr.Pass = false
			cr.Failures = []string{err.Error()}
		} else {
			cr.Result = resolved
			cr.Failures = c.Expect.Compare(resolved)
			cr.Pass = len(cr.Failures) == 0
		}

		if !cr.Pass {
			result.Pass = false
		}
		result.Cases = append(result.Cases, cr)
	}
	return result
}

// Compare returns one message per expected field that differs from r.
func (e Expect) Compare(r play.Result) []string {
	var failures []string
	mismatch := func(field string, expected, actual any) {
		failures = append(failures, fmt.Sprintf("%s: expected %v, got %v", field, expected, actual))
	}

	if e.Valid != nil && *e.Valid != r.Valid {
		mismatch("is_valid", *e.Valid, r.Valid)
	}
	if e.RunsScored != nil && *e.RunsScored != r.RunsScored {
		mismatch("runs_scored", *e.RunsScored, r.RunsScored)
	}
	if e.OutsAfter != nil && *e.OutsAfter != r.OutsAfter {
		mismatch("outs_after", *e.OutsAfter, r.OutsAfter)
	}
	if e.NewBases != nil && *e.NewBases != r.NewBases {
		mismatch("new_bases", formatBases(*e.NewBases), formatBases(r.NewBases))
	}
	if e.BatterReaches != nil && *e.BatterReaches != r.BatterReaches {
		mismatch("batter_reaches", *e.BatterReaches, r.BatterReaches)
	}
	if e.InningEnds != nil && *e.InningEnds != r.InningEnds {
		mismatch("inning_ends", *e.InningEnds, r.InningEnds)
	}
	if e.SacFly != nil && *e.SacFly != r.SacFly {
		mismatch("sac_fly", *e.SacFly, r.SacFly)
	}
	if e.RBICredited != nil && *e.RBICredited != r.RBICredited {
		mismatch("rbi_credited", *e.RBICredited, r.RBICredited)
	}
	for _, code := range e.Notes {
		if !r.HasNote(code) {
			failures = append(failures, fmt.Sprintf("notes: expected code %s, got %v", code, r.NoteCodes()))
		}
	}
	return failures
}

func formatBases(b play.BaseState) string {
	return fmt.Sprintf("{1B:%t 2B:%t 3B:%t}", b.First, b.Second, b.Third)
}
