package engine

import (
	"fmt"
	"strconv"

	"github.com/roach88/playoracle/internal/play"
)

// Resolve computes the result of outcome id from preset with outs already
// recorded. outs must satisfy play.ValidOuts; ResolveNamed enforces that
// for untyped callers.
func Resolve(preset play.Preset, outs int, id play.OutcomeID) play.Result {
	bases := preset.Bases()
	r := play.Result{
		CaseID:     play.CaseID(preset, outs, id),
		BaseState:  preset,
		OutsBefore: outs,
		Outcome:    id,
		OutsAfter:  outs,
		NewBases:   bases,
		Valid:      true,
		Notes:      []play.Note{},
	}

	switch o := id.Outcome().(type) {
	case play.Hit:
		resolveHit(&r, bases, o)
	case play.Out:
		resolveOut(&r, bases, o)
	case play.NoOut:
		resolveNoOut(&r, bases, o)
	case play.Special:
		resolveSpecial(&r, bases, o)
	}
	return r
}

// ResolveNamed resolves a play given by preset and catalog names.
func ResolveNamed(base string, outs int, outcome string) (play.Result, error) {
	preset, ok := play.ParsePreset(base)
	if !ok {
		return play.Result{}, newInputError(ErrCodeUnknownBase, "unknown base state", base)
	}
	if !play.ValidOuts(outs) {
		return play.Result{}, newInputError(ErrCodeOutsOutOfRange, "outs before the play must be 0, 1 or 2", strconv.Itoa(outs))
	}
	id, ok := play.ParseOutcome(outcome)
	if !ok {
		return play.Result{}, newInputError(ErrCodeUnknownOutcome, "unknown outcome", outcome)
	}
	return Resolve(preset, outs, id), nil
}

func addNote(r *play.Result, code play.NoteCode, format string, args ...any) {
	r.Notes = append(r.Notes, play.Note{Code: code, Message: fmt.Sprintf(format, args...)})
}

// invalidate marks r as an impossible combination. Bases stay as they were.
func invalidate(r *play.Result, code play.NoteCode, message string) {
	r.Valid = false
	r.BatterReaches = false
	addNote(r, code, "%s", message)
}

func resolveHit(r *play.Result, bases play.BaseState, h play.Hit) {
	r.BatterReaches = true

	switch h.BasesGained {
	case 4:
		runs := bases.Occupied() + 1
		r.RunsScored = runs
		r.NewBases = play.BaseState{}
		addNote(r, play.NoteHomeRun, "HR: %d runs score (all runners + batter)", runs)

	case 3:
		runs := bases.Occupied()
		r.RunsScored = runs
		r.NewBases = play.BaseState{Third: true}
		addNote(r, play.NoteTriple, "Triple: %d runners score, batter to 3rd", runs)

	case 2:
		runs := 0
		if bases.Second {
			runs++
		}
		if bases.Third {
			runs++
		}
		if bases.First {
			addNote(r, play.NoteRunnerSpeed, "Runner from 1st to 3rd (default) or home (speed-dependent)")
		}
		r.RunsScored = runs
		r.NewBases = play.BaseState{Second: true, Third: bases.First}

	case 1:
		runs := 0
		next := play.BaseState{First: true}
		if bases.Third {
			runs++
		}
		if bases.Second {
			next = next.With(play.Third)
			addNote(r, play.NoteRunnerSpeed, "Runner from 2nd to 3rd (default, may score on speed)")
		}
		if bases.First {
			next = next.With(play.Second)
			addNote(r, play.NoteRunnerFirstSecond, "Runner from 1st to 2nd (default)")
		}
		r.RunsScored = runs
		r.NewBases = next
	}

	r.RBICredited = r.RunsScored > 0
}

func resolveOut(r *play.Result, bases play.BaseState, o play.Out) {
	switch o.Kind {
	case play.OutDoublePlay:
		if r.OutsBefore == 2 {
			invalidate(r, play.NoteDoublePlayTwoOuts, "DP impossible with 2 outs (only need 1 more)")
			return
		}
		if !bases.Any() {
			invalidate(r, play.NoteDoublePlayNoRunners, "DP impossible with no runners on base")
			return
		}
	case play.OutBunt:
		if !bases.Any() {
			invalidate(r, play.NoteSacBuntNoRunners, "Sac bunt with no runners is just a bunt out")
			return
		}
	}

	after := r.OutsBefore + o.OutsAdded
	if after >= play.MaxOuts {
		r.OutsAfter = play.MaxOuts
		r.InningEnds = true
		r.NewBases = play.BaseState{}
		resolveThirdOut(r, bases, o)
		return
	}
	r.OutsAfter = after

	switch o.Kind {
	case play.OutFly:
		if bases.Third && r.OutsBefore < 2 {
			r.RunsScored = 1
			r.SacFly = true
			r.RBICredited = true
			r.NewBases = bases.Without(play.Third)
			addNote(r, play.NoteSacFly, "Sac fly: runner from 3rd scores")
		}

	case play.OutGround:
		if bases.Third && !play.IsForce(play.Home, bases) {
			r.RunsScored = 1
			r.RBICredited = true
			r.NewBases = bases.Without(play.Third)
			addNote(r, play.NoteGroundOutRun, "Runner from 3rd scores on ground out (not in force)")
		}

	case play.OutFieldersChoice:
		r.BatterReaches = true
		r.NewBases = play.BaseState{First: true}
		addNote(r, play.NoteRunnerIdentity, "Fielder's choice: batter reaches, runner retired (verify which runner)")

	case play.OutBunt:
		next := play.BaseState{Second: bases.First, Third: bases.Second}
		if bases.Third {
			r.RunsScored = 1
			r.RBICredited = true
		}
		r.NewBases = next
		addNote(r, play.NoteSacBunt, "Sac bunt: runners advance")

	case play.OutDoublePlay:
		r.NewBases = play.BaseState{}
		if bases.Third && !play.IsForce(play.Home, bases) {
			r.RunsScored = 1
			addNote(r, play.NoteDoublePlayRun, "Runner from 3rd may score on DP (not forced)")
		}
		addNote(r, play.NoteDoublePlay, "Double play: 2 outs recorded")
	}
}

// resolveThirdOut decides run scoring when the play ends the half-inning.
// Runs never score here; notes record why, or flag the tag-play question.
func resolveThirdOut(r *play.Result, bases play.BaseState, o play.Out) {
	switch o.Kind {
	case play.OutGround, play.OutDoublePlay:
		if play.IsForce(play.Home, bases) {
			addNote(r, play.NoteForceAtHome, "Force at home on ground ball: run does NOT score")
		} else if bases.Third {
			addNote(r, play.NoteTagPlayTiming, "CHECK: did runner from 3rd cross before the tag? Tag play timing matters")
		}
	case play.OutFly:
		if bases.Third {
			addNote(r, play.NoteFlyThirdOut, "3rd out on fly: runner on 3rd does NOT score")
		}
	case play.OutStrikeout:
		addNote(r, play.NoteStrikeoutThirdOut, "Strikeout for 3rd out: no runs score")
	}
}

func resolveNoOut(r *play.Result, bases play.BaseState, o play.NoOut) {
	switch o.Kind {
	case play.NoOutWalk, play.NoOutIntentionalWalk, play.NoOutHitByPitch:
		// Only forced runners move; everyone else holds.
		next := bases.With(play.First)
		if bases.First {
			next = next.With(play.Second)
			if bases.Second {
				next = next.With(play.Third)
				if bases.Third {
					r.RunsScored = 1
					r.RBICredited = true
					addNote(r, play.NoteBasesLoadedWalk, "Bases loaded walk: run scores")
				}
			}
		}
		r.NewBases = next

	case play.NoOutError:
		r.NewBases = bases.With(play.First)
		addNote(r, play.NoteErrorRunnersHold, "Error: batter reaches 1st, existing runners NOT wiped")

	case play.NoOutDroppedThird:
		if bases.First && r.OutsBefore < 2 {
			invalidate(r, play.NoteDroppedThirdBlocked, "D3K invalid: 1st occupied with <2 outs")
			return
		}
		r.NewBases = bases.With(play.First)
		addNote(r, play.NoteDroppedThird, "D3K: batter reaches 1st")
		if bases.First {
			addNote(r, play.NoteRunnerIdentity, "D3K with 1st occupied: verify forced runners advanced")
		}
	}

	r.BatterReaches = true
}

func resolveSpecial(r *play.Result, bases play.BaseState, o play.Special) {
	switch o.Kind {
	case play.SpecialStolenBase:
		if !bases.Any() {
			invalidate(r, play.NoteStealNoRunners, "Stolen base impossible with no runners")
			return
		}
		addNote(r, play.NoteRunnerIdentity, "SB: verify which runner advances and to where")

	case play.SpecialCaughtStealing:
		if !bases.Any() {
			invalidate(r, play.NoteCaughtNoRunners, "CS impossible with no runners")
			return
		}
		r.OutsAfter = min(r.OutsBefore+1, play.MaxOuts)
		if r.OutsAfter == play.MaxOuts {
			r.InningEnds = true
			r.NewBases = play.BaseState{}
		}
		addNote(r, play.NoteRunnerIdentity, "CS: runner out, verify correct runner removed")

	case play.SpecialWildPitch, play.SpecialPassedBall:
		if !bases.Any() {
			addNote(r, play.NoteNoRunners, "WP/PB with no runners: just a ball/passed ball")
			return
		}
		next := play.BaseState{Second: bases.First, Third: bases.Second}
		if bases.Third {
			r.RunsScored = 1
			addNote(r, play.NoteScoreboardUpdate, "WP/PB: runner from 3rd scores (verify scoreboard line update)")
		}
		r.NewBases = next
	}
}
