package play

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseIDStable(t *testing.T) {
	a := CaseID(Loaded, 1, Single)
	b := CaseID(Loaded, 1, Single)
	assert.Equal(t, a, b)

	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(5), parsed.Version())

	assert.NotEqual(t, a, CaseID(Loaded, 2, Single))
	assert.NotEqual(t, a, CaseID(Loaded, 1, Double))
	assert.NotEqual(t, a, CaseID(FirstSecond, 1, Single))
}

func TestResultJSONShape(t *testing.T) {
	r := Result{
		CaseID:     CaseID(OnThird, 1, FlyOut),
		BaseState:  OnThird,
		OutsBefore: 1,
		Outcome:    FlyOut,
		RunsScored: 1,
		OutsAfter:  2,
		Valid:      true,
		Notes:      []Note{{Code: NoteSacFly, Message: "Sac fly: runner from 3rd scores"}},
		SacFly:     true,
	}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "3rd", decoded["base_state"])
	assert.Equal(t, "fly_out", decoded["outcome"])
	assert.Equal(t, true, decoded["is_valid"])
	assert.Equal(t, map[string]any{"1B": false, "2B": false, "3B": false}, decoded["new_bases"])

	var back Result
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, r, back)
}

func TestResultNotes(t *testing.T) {
	r := Result{Notes: []Note{
		{Code: NoteRunnerSpeed, Message: "x"},
		{Code: NoteRunnerFirstSecond, Message: "y"},
	}}
	assert.True(t, r.HasNote(NoteRunnerSpeed))
	assert.False(t, r.HasNote(NoteSacFly))
	assert.True(t, r.Advisory())
	assert.Equal(t, []NoteCode{NoteRunnerSpeed, NoteRunnerFirstSecond}, r.NoteCodes())
}

func TestDigestDetectsChange(t *testing.T) {
	results := []Result{{
		CaseID:    CaseID(Empty, 0, HomeRun),
		BaseState: Empty,
		Outcome:   HomeRun,
		Notes:     []Note{},
	}}
	d1, err := Digest(results)
	require.NoError(t, err)
	d2, err := Digest(results)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
	assert.Len(t, d1, 64)

	results[0].RunsScored = 1
	d3, err := Digest(results)
	require.NoError(t, err)
	assert.NotEqual(t, d1, d3)
}
