package harness

import (
	"iter"
	"slices"

	"github.com/roach88/playoracle/internal/engine"
	"github.com/roach88/playoracle/internal/play"
)

// All yields the result of every preset x outs x outcome combination.
//
// The sequence is finite and restartable: ranging over it twice produces
// the same results in the same order.
func All() iter.Seq[play.Result] {
	return func(yield func(play.Result) bool) {
		for _, preset := range play.Presets() {
			for _, outs := range play.OutStates {
				for _, id := range play.Outcomes() {
					if !yield(engine.Resolve(preset, outs, id)) {
						return
					}
				}
			}
		}
	}
}

// Enumerate collects All into a slice.
func Enumerate() []play.Result {
	return slices.Collect(All())
}

// CaseCount returns the number of combinations All yields.
func CaseCount() int {
	return len(play.Presets()) * len(play.OutStates) * len(play.Outcomes())
}

// Partition splits results by validity, preserving order within each half.
func Partition(results []play.Result) (valid, invalid []play.Result) {
	valid = make([]play.Result, 0, len(results))
	invalid = make([]play.Result, 0)
	for _, r := range results {
		if r.Valid {
			valid = append(valid, r)
		} else {
			invalid = append(invalid, r)
		}
	}
	return valid, invalid
}
