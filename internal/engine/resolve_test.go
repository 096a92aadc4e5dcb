package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/playoracle/internal/play"
)

// forEachCase runs fn for every preset x outs x outcome combination.
func forEachCase(fn func(preset play.Preset, outs int, id play.OutcomeID, r play.Result)) {
	for _, preset := range play.Presets() {
		for _, outs := range play.OutStates {
			for _, id := range play.Outcomes() {
				fn(preset, outs, id, Resolve(preset, outs, id))
			}
		}
	}
}

func TestResolve_EchoesInputs(t *testing.T) {
	forEachCase(func(preset play.Preset, outs int, id play.OutcomeID, r play.Result) {
		assert.Equal(t, preset, r.BaseState)
		assert.Equal(t, outs, r.OutsBefore)
		assert.Equal(t, id, r.Outcome)
		assert.Equal(t, play.CaseID(preset, outs, id), r.CaseID)
		assert.NotNil(t, r.Notes)
	})
}

func TestResolve_OutBounds(t *testing.T) {
	forEachCase(func(preset play.Preset, outs int, id play.OutcomeID, r play.Result) {
		assert.GreaterOrEqual(t, r.OutsAfter, r.OutsBefore, "%s/%d/%s", preset, outs, id)
		assert.LessOrEqual(t, r.OutsAfter, play.MaxOuts, "%s/%d/%s", preset, outs, id)
		assert.Equal(t, r.OutsAfter == play.MaxOuts, r.InningEnds, "%s/%d/%s", preset, outs, id)
	})
}

func TestResolve_RunBounds(t *testing.T) {
	forEachCase(func(preset play.Preset, outs int, id play.OutcomeID, r play.Result) {
		limit := preset.Bases().Occupied()
		if h, ok := id.Outcome().(play.Hit); ok && h.BasesGained == 4 {
			limit++
		}
		assert.GreaterOrEqual(t, r.RunsScored, 0)
		assert.LessOrEqual(t, r.RunsScored, limit, "%s/%d/%s", preset, outs, id)
	})
}

func TestResolve_InvalidHasReason(t *testing.T) {
	forEachCase(func(preset play.Preset, outs int, id play.OutcomeID, r play.Result) {
		if r.Valid {
			return
		}
		require.Len(t, r.Notes, 1, "%s/%d/%s", preset, outs, id)
		assert.True(t, r.Notes[0].Code.Invalidity())
		assert.Zero(t, r.RunsScored)
		assert.Equal(t, outs, r.OutsAfter)
		assert.Equal(t, preset.Bases(), r.NewBases)
		assert.False(t, r.BatterReaches)
		assert.False(t, r.RBICredited)
	})
}

func TestResolve_HomeRun(t *testing.T) {
	for _, id := range []play.OutcomeID{play.HomeRun, play.InsideParkHR} {
		for _, preset := range play.Presets() {
			for _, outs := range play.OutStates {
				r := Resolve(preset, outs, id)
				assert.True(t, r.Valid)
				assert.Equal(t, preset.Bases().Occupied()+1, r.RunsScored)
				assert.Equal(t, play.BaseState{}, r.NewBases)
				assert.True(t, r.RBICredited)
				assert.True(t, r.BatterReaches)
			}
		}
	}
}

func TestResolve_Triple(t *testing.T) {
	r := Resolve(play.FirstThird, 0, play.Triple)
	assert.Equal(t, 2, r.RunsScored)
	assert.Equal(t, play.BaseState{Third: true}, r.NewBases)
	assert.True(t, r.RBICredited)

	r = Resolve(play.Empty, 0, play.Triple)
	assert.Zero(t, r.RunsScored)
	assert.False(t, r.RBICredited)
}

func TestResolve_Double(t *testing.T) {
	r := Resolve(play.Loaded, 1, play.Double)
	assert.Equal(t, 2, r.RunsScored)
	assert.Equal(t, play.BaseState{Second: true, Third: true}, r.NewBases)
	assert.True(t, r.HasNote(play.NoteRunnerSpeed))

	r = Resolve(play.OnSecond, 0, play.Double)
	assert.Equal(t, 1, r.RunsScored)
	assert.Equal(t, play.BaseState{Second: true}, r.NewBases)
	assert.False(t, r.HasNote(play.NoteRunnerSpeed))
}

func TestResolve_Single(t *testing.T) {
	r := Resolve(play.FirstSecond, 0, play.Single)
	assert.Zero(t, r.RunsScored)
	assert.False(t, r.RBICredited)
	assert.Equal(t, play.Loaded.Bases(), r.NewBases)
	assert.Equal(t, []play.NoteCode{play.NoteRunnerSpeed, play.NoteRunnerFirstSecond}, r.NoteCodes())
}

func TestResolve_DoublePlayLegality(t *testing.T) {
	for _, preset := range play.Presets() {
		r := Resolve(preset, 2, play.DoublePlay)
		assert.False(t, r.Valid, preset.String())
		assert.True(t, r.HasNote(play.NoteDoublePlayTwoOuts))
	}
	for _, outs := range []int{0, 1} {
		r := Resolve(play.Empty, outs, play.DoublePlay)
		assert.False(t, r.Valid)
		assert.True(t, r.HasNote(play.NoteDoublePlayNoRunners))
	}
}

func TestResolve_DoublePlay(t *testing.T) {
	r := Resolve(play.FirstThird, 0, play.DoublePlay)
	assert.True(t, r.Valid)
	assert.Equal(t, 2, r.OutsAfter)
	assert.Equal(t, 1, r.RunsScored)
	assert.False(t, r.RBICredited)
	assert.Equal(t, play.BaseState{}, r.NewBases)

	r = Resolve(play.Loaded, 0, play.DoublePlay)
	assert.Zero(t, r.RunsScored, "forced runner at home does not score")

	r = Resolve(play.FirstThird, 1, play.DoublePlay)
	assert.True(t, r.InningEnds)
	assert.Zero(t, r.RunsScored)
	assert.True(t, r.HasNote(play.NoteTagPlayTiming))

	r = Resolve(play.Loaded, 1, play.DoublePlay)
	assert.True(t, r.HasNote(play.NoteForceAtHome))
}

func TestResolve_DroppedThirdStrike(t *testing.T) {
	forEachCase(func(preset play.Preset, outs int, id play.OutcomeID, r play.Result) {
		if id != play.DroppedThirdStrike {
			return
		}
		blocked := preset.Bases().First && outs < 2
		assert.Equal(t, !blocked, r.Valid, "%s/%d", preset, outs)
		if r.Valid {
			assert.True(t, r.NewBases.First)
			assert.True(t, r.BatterReaches)
		}
	})
}

func TestResolve_ErrorKeepsRunners(t *testing.T) {
	for _, preset := range play.Presets() {
		for _, outs := range play.OutStates {
			r := Resolve(preset, outs, play.ReachedOnError)
			assert.Equal(t, preset.Bases().With(play.First), r.NewBases, preset.String())
			assert.Zero(t, r.RunsScored)
			assert.True(t, r.HasNote(play.NoteErrorRunnersHold))
		}
	}
}

func TestResolve_Walks(t *testing.T) {
	tests := []struct {
		preset   play.Preset
		expected play.BaseState
		runs     int
	}{
		{play.Empty, play.BaseState{First: true}, 0},
		{play.OnFirst, play.BaseState{First: true, Second: true}, 0},
		{play.OnSecond, play.BaseState{First: true, Second: true}, 0},
		{play.OnThird, play.BaseState{First: true, Third: true}, 0},
		{play.FirstSecond, play.Loaded.Bases(), 0},
		{play.FirstThird, play.Loaded.Bases(), 0},
		{play.SecondThird, play.Loaded.Bases(), 0},
		{play.Loaded, play.Loaded.Bases(), 1},
	}

	for _, id := range []play.OutcomeID{play.Walk, play.IntentionalWalk, play.HitByPitch} {
		for _, tt := range tests {
			t.Run(id.String()+"/"+tt.preset.String(), func(t *testing.T) {
				r := Resolve(tt.preset, 0, id)
				assert.Equal(t, tt.expected, r.NewBases)
				assert.Equal(t, tt.runs, r.RunsScored)
				assert.Equal(t, tt.runs > 0, r.RBICredited)
				assert.True(t, r.BatterReaches)
			})
		}
	}
}

func TestResolve_GroundOut(t *testing.T) {
	r := Resolve(play.OnThird, 0, play.GroundOut)
	assert.Equal(t, 1, r.RunsScored)
	assert.True(t, r.RBICredited)
	assert.Equal(t, play.BaseState{}, r.NewBases)
	assert.False(t, r.BatterReaches)

	r = Resolve(play.OnFirst, 0, play.GroundOut)
	assert.Zero(t, r.RunsScored)
	assert.Equal(t, play.OnFirst.Bases(), r.NewBases)

	r = Resolve(play.Loaded, 2, play.GroundOut)
	assert.True(t, r.InningEnds)
	assert.True(t, r.HasNote(play.NoteForceAtHome))
}

func TestResolve_SacFly(t *testing.T) {
	for _, outs := range []int{0, 1} {
		r := Resolve(play.SecondThird, outs, play.FlyOut)
		assert.True(t, r.SacFly)
		assert.True(t, r.RBICredited)
		assert.Equal(t, 1, r.RunsScored)
		assert.Equal(t, play.BaseState{Second: true}, r.NewBases)
	}

	r := Resolve(play.OnThird, 0, play.LineOut)
	assert.False(t, r.SacFly, "line outs are not sacrifice flies")
	assert.Equal(t, play.OnThird.Bases(), r.NewBases)
}

func TestResolve_StrikeoutThirdOut(t *testing.T) {
	for _, id := range []play.OutcomeID{play.StrikeoutSwinging, play.StrikeoutLooking} {
		r := Resolve(play.Loaded, 2, id)
		assert.True(t, r.InningEnds)
		assert.Zero(t, r.RunsScored)
		assert.True(t, r.HasNote(play.NoteStrikeoutThirdOut))
	}
}

func TestResolve_SacBunt(t *testing.T) {
	r := Resolve(play.FirstSecond, 0, play.SacBunt)
	assert.Equal(t, play.BaseState{Second: true, Third: true}, r.NewBases)
	assert.Zero(t, r.RunsScored)
	assert.False(t, r.BatterReaches)

	r = Resolve(play.Empty, 1, play.SacBunt)
	assert.False(t, r.Valid)
	assert.True(t, r.HasNote(play.NoteSacBuntNoRunners))
}

func TestResolve_Steals(t *testing.T) {
	for _, outs := range play.OutStates {
		assert.False(t, Resolve(play.Empty, outs, play.StolenBase).Valid)
		assert.False(t, Resolve(play.Empty, outs, play.CaughtStealing).Valid)
	}

	r := Resolve(play.FirstThird, 0, play.StolenBase)
	assert.True(t, r.Valid)
	assert.Equal(t, play.FirstThird.Bases(), r.NewBases)
	assert.True(t, r.HasNote(play.NoteRunnerIdentity))

	r = Resolve(play.OnFirst, 1, play.CaughtStealing)
	assert.Equal(t, 2, r.OutsAfter)
	assert.False(t, r.InningEnds)
	assert.True(t, r.HasNote(play.NoteRunnerIdentity))

	r = Resolve(play.OnFirst, 2, play.CaughtStealing)
	assert.Equal(t, 3, r.OutsAfter)
	assert.True(t, r.InningEnds)
	assert.Equal(t, play.BaseState{}, r.NewBases)
}

func TestResolve_WildPitch(t *testing.T) {
	for _, id := range []play.OutcomeID{play.WildPitch, play.PassedBall} {
		r := Resolve(play.Empty, 0, id)
		assert.True(t, r.Valid)
		assert.True(t, r.HasNote(play.NoteNoRunners))

		r = Resolve(play.Loaded, 0, id)
		assert.Equal(t, 1, r.RunsScored)
		assert.False(t, r.RBICredited)
		assert.Equal(t, play.BaseState{Second: true, Third: true}, r.NewBases)
		assert.True(t, r.HasNote(play.NoteScoreboardUpdate))
	}
}

func TestResolve_ConcreteScenarios(t *testing.T) {
	t.Run("solo home run", func(t *testing.T) {
		r := Resolve(play.Empty, 0, play.HomeRun)
		assert.Equal(t, 1, r.RunsScored)
		assert.Equal(t, play.BaseState{}, r.NewBases)
		assert.True(t, r.BatterReaches)
		assert.True(t, r.RBICredited)
		assert.True(t, r.Valid)
	})

	t.Run("bases loaded single", func(t *testing.T) {
		r := Resolve(play.Loaded, 1, play.Single)
		assert.Equal(t, 1, r.RunsScored)
		assert.Equal(t, play.BaseState{First: true, Second: true, Third: true}, r.NewBases)
		assert.True(t, r.RBICredited)
	})

	t.Run("two-out double play", func(t *testing.T) {
		assert.False(t, Resolve(play.FirstSecond, 2, play.DoublePlay).Valid)
	})

	t.Run("squeeze", func(t *testing.T) {
		r := Resolve(play.OnThird, 1, play.SacBunt)
		assert.Equal(t, 1, r.RunsScored)
		assert.Equal(t, 2, r.OutsAfter)
		assert.False(t, r.InningEnds)
		assert.False(t, r.SacFly)
		assert.True(t, r.RBICredited)
		assert.Equal(t, play.BaseState{}, r.NewBases)
	})

	t.Run("empty steal", func(t *testing.T) {
		assert.False(t, Resolve(play.Empty, 2, play.StolenBase).Valid)
	})

	t.Run("third out fly", func(t *testing.T) {
		r := Resolve(play.OnThird, 2, play.FlyOut)
		assert.Equal(t, 3, r.OutsAfter)
		assert.True(t, r.InningEnds)
		assert.Zero(t, r.RunsScored)
	})
}

func TestResolve_Deterministic(t *testing.T) {
	forEachCase(func(preset play.Preset, outs int, id play.OutcomeID, r play.Result) {
		assert.Equal(t, r, Resolve(preset, outs, id))
	})
}

func TestResolveNamed(t *testing.T) {
	r, err := ResolveNamed("loaded", 1, "single")
	require.NoError(t, err)
	assert.Equal(t, play.Loaded, r.BaseState)
	assert.Equal(t, play.Single, r.Outcome)

	tests := []struct {
		name    string
		base    string
		outs    int
		outcome string
		code    InputErrorCode
	}{
		{"unknown base", "full", 0, "single", ErrCodeUnknownBase},
		{"three outs", "empty", 3, "single", ErrCodeOutsOutOfRange},
		{"negative outs", "empty", -1, "single", ErrCodeOutsOutOfRange},
		{"unknown outcome", "empty", 0, "balk", ErrCodeUnknownOutcome},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveNamed(tt.base, tt.outs, tt.outcome)
			require.Error(t, err)
			assert.True(t, IsInputError(err))

			var ie *InputError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, tt.code, ie.Code)
		})
	}
}

func TestInputErrorMessage(t *testing.T) {
	err := newInputError(ErrCodeUnknownOutcome, "unknown outcome", "balk")
	assert.Equal(t, "UNKNOWN_OUTCOME: unknown outcome (balk)", err.Error())

	err = newInputError(ErrCodeUnknownBase, "unknown base state", "")
	assert.Equal(t, "UNKNOWN_BASE_STATE: unknown base state", err.Error())
}
