package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/playoracle/internal/engine"
	"github.com/roach88/playoracle/internal/play"
)

// createTestStore creates a new store in a temp directory for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// situationResults resolves every outcome for one base/outs situation.
func situationResults(preset play.Preset, outs int) []play.Result {
	var results []play.Result
	for _, id := range play.Outcomes() {
		results = append(results, engine.Resolve(preset, outs, id))
	}
	return results
}
