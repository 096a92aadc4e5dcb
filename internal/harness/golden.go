package harness

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/playoracle/internal/play"
)

// DefaultGoldenDir is where golden files live relative to a package's tests.
const DefaultGoldenDir = "testdata/golden"

// MarshalResults serializes results as a canonical JSON array.
// Canonical form makes golden comparison independent of map ordering.
func MarshalResults(results []play.Result) ([]byte, error) {
	list := make([]any, len(results))
	for i, r := range results {
		list[i] = r.CanonicalMap()
	}
	return play.MarshalCanonical(list)
}

// AssertResultsGolden compares results against {dir}/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func AssertResultsGolden(t *testing.T, dir, name string, results []play.Result) error {
	t.Helper()

	data, err := MarshalResults(results)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir(dir),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
	return nil
}

// AssertSummaryGolden compares the text form of s against
// testdata/golden/{name}.golden.
func AssertSummaryGolden(t *testing.T, name string, s Summary) error {
	t.Helper()

	var buf bytes.Buffer
	if err := s.WriteText(&buf); err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir(DefaultGoldenDir),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, buf.Bytes())
	return nil
}

// MarshalTable renders one line per result with its resolved fields and
// note codes. Note messages and case IDs are left out so the table pins
// play semantics only.
func MarshalTable(results []play.Result) []byte {
	var buf bytes.Buffer
	for _, r := range results {
		notes := "-"
		if len(r.Notes) > 0 {
			codes := make([]string, len(r.Notes))
			for i, n := range r.Notes {
				codes[i] = string(n.Code)
			}
			notes = strings.Join(codes, ",")
		}
		fmt.Fprintf(&buf, "%s/%d/%s valid=%t runs=%d outs=%d bases=%s reaches=%t ends=%t sac_fly=%t rbi=%t notes=%s\n",
			r.BaseState, r.OutsBefore, r.Outcome, r.Valid, r.RunsScored, r.OutsAfter,
			play.PresetOf(r.NewBases), r.BatterReaches, r.InningEnds, r.SacFly, r.RBICredited, notes)
	}
	return buf.Bytes()
}

// AssertTableGolden compares the table form of results against
// testdata/golden/{name}.golden.
func AssertTableGolden(t *testing.T, name string, results []play.Result) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir(DefaultGoldenDir),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, MarshalTable(results))
}
