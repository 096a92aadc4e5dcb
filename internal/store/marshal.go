package store

import (
	"fmt"

	"github.com/roach88/playoracle/internal/play"
)

// marshalRecord converts a result to canonical JSON TEXT for storage.
// Uses RFC 8785 canonical JSON for deterministic serialization.
func marshalRecord(r play.Result) (string, error) {
	data, err := play.MarshalCanonical(r.CanonicalMap())
	if err != nil {
		return "", fmt.Errorf("marshal record %s: %w", r.CaseID, err)
	}
	return string(data), nil
}

// boolToInt maps a flag to the INTEGER 0/1 stored in STRICT tables.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// caseRow is the scanned form of a cases row before notes are attached.
type caseRow struct {
	caseID        string
	baseState     string
	outsBefore    int
	outcome       string
	runsScored    int
	outsAfter     int
	newFirst      int
	newSecond     int
	newThird      int
	batterReaches int
	inningEnds    int
	isValid       int
	sacFly        int
	rbiCredited   int
}

// result converts a scanned row back into a play.Result without notes.
func (c caseRow) result() (play.Result, error) {
	preset, ok := play.ParsePreset(c.baseState)
	if !ok {
		return play.Result{}, fmt.Errorf("case %s: unknown base state %q", c.caseID, c.baseState)
	}
	outcome, ok := play.ParseOutcome(c.outcome)
	if !ok {
		return play.Result{}, fmt.Errorf("case %s: unknown outcome %q", c.caseID, c.outcome)
	}

	return play.Result{
		CaseID:     c.caseID,
		BaseState:  preset,
		OutsBefore: c.outsBefore,
		Outcome:    outcome,
		RunsScored: c.runsScored,
		OutsAfter:  c.outsAfter,
		NewBases: play.BaseState{
			First:  c.newFirst != 0,
			Second: c.newSecond != 0,
			Third:  c.newThird != 0,
		},
		BatterReaches: c.batterReaches != 0,
		InningEnds:    c.inningEnds != 0,
		Valid:         c.isValid != 0,
		Notes:         []play.Note{},
		SacFly:        c.sacFly != 0,
		RBICredited:   c.rbiCredited != 0,
	}, nil
}
