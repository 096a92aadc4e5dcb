package harness

import (
	"fmt"
	"io"

	"github.com/roach88/playoracle/internal/play"
)

// CategoryCount is the number of valid cases in one outcome category.
type CategoryCount struct {
	Category play.Category `json:"category"`
	Count    int           `json:"count"`
}

// BaseCount is the number of valid cases starting from one base preset.
type BaseCount struct {
	BaseState play.Preset `json:"base_state"`
	Count     int         `json:"count"`
}

// Summary aggregates an enumeration. Breakdowns cover valid cases only.
type Summary struct {
	Total        int             `json:"total_cases"`
	Valid        int             `json:"valid_cases"`
	Invalid      int             `json:"invalid_cases"`
	ByCategory   []CategoryCount `json:"by_category"`
	ByBase       []BaseCount     `json:"by_base_state"`
	RunsScoring  int             `json:"runs_scoring_cases"`
	InningEnding int             `json:"inning_ending_cases"`
	SacFly       int             `json:"sac_fly_cases"`
}

// Summarize counts results. Breakdowns are listed in canonical order.
func Summarize(results []play.Result) Summary {
	s := Summary{Total: len(results)}

	byCategory := make(map[play.Category]int)
	byBase := make(map[play.Preset]int)
	for _, r := range results {
		if !r.Valid {
			s.Invalid++
			continue
		}
		s.Valid++
		byCategory[r.Category()]++
		byBase[r.BaseState]++
		if r.RunsScored > 0 {
			s.RunsScoring++
		}
		if r.InningEnds {
			s.InningEnding++
		}
		if r.SacFly {
			s.SacFly++
		}
	}

	for _, c := range play.Categories {
		s.ByCategory = append(s.ByCategory, CategoryCount{Category: c, Count: byCategory[c]})
	}
	for _, p := range play.Presets() {
		s.ByBase = append(s.ByBase, BaseCount{BaseState: p, Count: byBase[p]})
	}
	return s
}

// WriteText prints the summary in its human-readable form.
func (s Summary) WriteText(w io.Writer) error {
	var err error
	printf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	printf("Total test cases: %d\n", s.Total)
	printf("Valid combinations: %d\n", s.Valid)
	printf("Invalid combinations: %d\n", s.Invalid)

	printf("\nBy outcome type:\n")
	for _, c := range s.ByCategory {
		printf("  %s: %d\n", c.Category, c.Count)
	}

	printf("\nBy base state:\n")
	for _, b := range s.ByBase {
		printf("  %s: %d\n", b.BaseState, b.Count)
	}

	printf("\nCases with runs scoring: %d\n", s.RunsScoring)
	printf("Cases with inning ending: %d\n", s.InningEnding)
	printf("Sac fly cases: %d\n", s.SacFly)
	return err
}
