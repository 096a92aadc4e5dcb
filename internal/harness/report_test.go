package harness

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/playoracle/internal/play"
)

func TestBuildReport_Metadata(t *testing.T) {
	rep, err := BuildReport(Enumerate())
	require.NoError(t, err)

	md := rep.Metadata
	assert.Equal(t, 528, md.TotalCases)
	assert.Equal(t, 501, md.ValidCases)
	assert.Equal(t, 27, md.InvalidCases)
	assert.Equal(t, play.PresetNames(), md.BaseStates)
	assert.Equal(t, []int{0, 1, 2}, md.OutStates)
	assert.Equal(t, play.OutcomeNames(), md.Outcomes)
	assert.Equal(t, play.EngineVersion, md.EngineVersion)
	assert.Len(t, md.Digest, 64)

	assert.Len(t, rep.TestCases, md.ValidCases)
	assert.Len(t, rep.InvalidCases, md.InvalidCases)
}

func TestBuildReport_DigestStable(t *testing.T) {
	a, err := BuildReport(Enumerate())
	require.NoError(t, err)
	b, err := BuildReport(Enumerate())
	require.NoError(t, err)
	assert.Equal(t, a.Metadata.Digest, b.Metadata.Digest)
}

func TestReport_JSONShape(t *testing.T) {
	rep, err := BuildReport(Enumerate())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rep.WriteJSON(&buf))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Contains(t, doc, "metadata")
	assert.Contains(t, doc, "test_cases")
	assert.Contains(t, doc, "invalid_cases")

	cases := doc["test_cases"].([]any)
	first := cases[0].(map[string]any)
	for _, key := range []string{
		"case_id", "base_state", "outs_before", "outcome", "runs_scored", "outs_after",
		"new_bases", "batter_reaches", "inning_ends", "is_valid", "notes", "sac_fly", "rbi_credited",
	} {
		assert.Contains(t, first, key)
	}
	assert.Equal(t, "empty", first["base_state"])
	assert.Equal(t, "single", first["outcome"])
}

func TestReport_RoundTrip(t *testing.T) {
	rep, err := BuildReport(Enumerate())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rep.WriteJSON(&buf))

	back, err := ReadReport(&buf)
	require.NoError(t, err)
	assert.Equal(t, rep, back)
}

func TestReadReport_RejectsUnknownFields(t *testing.T) {
	_, err := ReadReport(bytes.NewBufferString(`{"metadata":{},"extra":1}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse report")
}

func TestReport_InvalidRecordShape(t *testing.T) {
	rep, err := BuildReport(Enumerate())
	require.NoError(t, err)

	for _, r := range rep.InvalidCases {
		label := r.BaseState.String() + "/" + r.Outcome.String()
		assert.Equal(t, r.BaseState.Bases(), r.NewBases, label)
		assert.Equal(t, r.OutsBefore, r.OutsAfter, label)
		assert.Zero(t, r.RunsScored, label)
		assert.False(t, r.BatterReaches, label)
		assert.False(t, r.InningEnds, label)
		require.Len(t, r.Notes, 1, label)
		assert.True(t, r.Notes[0].Code.Invalidity(), label)
	}
}
