package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/playoracle/internal/engine"
	"github.com/roach88/playoracle/internal/play"
)

func TestMarshalResults_Deterministic(t *testing.T) {
	a, err := MarshalResults(Enumerate())
	require.NoError(t, err)
	b, err := MarshalResults(Enumerate())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestAssertResultsGolden_Rerun(t *testing.T) {
	// Record one enumeration, then compare a fresh one against it.
	dir := t.TempDir()
	data, err := MarshalResults(Enumerate())
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir(dir),
		goldie.WithNameSuffix(".golden"),
	)
	require.NoError(t, g.Update(t, "matrix", data))

	require.NoError(t, AssertResultsGolden(t, dir, "matrix", Enumerate()))
}

func TestMatrix_Golden(t *testing.T) {
	AssertTableGolden(t, "matrix", Enumerate())
}

func TestMarshalTable_Line(t *testing.T) {
	r := engine.Resolve(play.FirstThird, 1, play.DoublePlay)
	assert.Equal(t,
		"1st_3rd/1/double_play valid=true runs=0 outs=3 bases=empty reaches=false ends=true sac_fly=false rbi=false notes=tag_play_timing\n",
		string(MarshalTable([]play.Result{r})))
}
