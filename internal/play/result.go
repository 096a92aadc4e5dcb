package play

import (
	"strconv"

	"github.com/google/uuid"
)

// caseNamespace scopes the name-based UUIDs used for case IDs.
var caseNamespace = uuid.MustParse("6f1c3f5e-2b7a-4f4e-9a35-0d7c1b8e5a42")

// CaseID returns a stable identifier for a (base, outs, outcome) triple.
//
// IDs are UUIDv5 over "base/outs/outcome", so re-running the enumeration
// always yields the same ID for the same combination.
func CaseID(base Preset, outs int, id OutcomeID) string {
	key := base.String() + "/" + strconv.Itoa(outs) + "/" + id.String()
	return uuid.NewSHA1(caseNamespace, []byte(key)).String()
}

// Result is the resolved outcome of one play.
type Result struct {
	CaseID        string    `json:"case_id"`
	BaseState     Preset    `json:"base_state"`
	OutsBefore    int       `json:"outs_before"`
	Outcome       OutcomeID `json:"outcome"`
	RunsScored    int       `json:"runs_scored"`
	OutsAfter     int       `json:"outs_after"`
	NewBases      BaseState `json:"new_bases"`
	BatterReaches bool      `json:"batter_reaches"`
	InningEnds    bool      `json:"inning_ends"`
	Valid         bool      `json:"is_valid"`
	Notes         []Note    `json:"notes"`
	SacFly        bool      `json:"sac_fly"`
	RBICredited   bool      `json:"rbi_credited"`
}

// Category returns the category of the resolved outcome.
func (r Result) Category() Category {
	return r.Outcome.Category()
}

// HasNote reports whether a note with code is attached.
func (r Result) HasNote(code NoteCode) bool {
	for _, n := range r.Notes {
		if n.Code == code {
			return true
		}
	}
	return false
}

// NoteCodes returns the attached note codes in order.
func (r Result) NoteCodes() []NoteCode {
	codes := make([]NoteCode, len(r.Notes))
	for i, n := range r.Notes {
		codes[i] = n.Code
	}
	return codes
}

// Advisory reports whether any attached note needs human confirmation.
func (r Result) Advisory() bool {
	for _, n := range r.Notes {
		if n.Code.Advisory() {
			return true
		}
	}
	return false
}

// CanonicalMap converts the result to a map for canonical JSON serialization.
func (r Result) CanonicalMap() map[string]any {
	notes := make([]any, len(r.Notes))
	for i, n := range r.Notes {
		notes[i] = map[string]any{
			"code":    string(n.Code),
			"message": n.Message,
		}
	}
	return map[string]any{
		"case_id":     r.CaseID,
		"base_state":  r.BaseState.String(),
		"outs_before": r.OutsBefore,
		"outcome":     r.Outcome.String(),
		"runs_scored": r.RunsScored,
		"outs_after":  r.OutsAfter,
		"new_bases": map[string]any{
			"1B": r.NewBases.First,
			"2B": r.NewBases.Second,
			"3B": r.NewBases.Third,
		},
		"batter_reaches": r.BatterReaches,
		"inning_ends":    r.InningEnds,
		"is_valid":       r.Valid,
		"notes":          notes,
		"sac_fly":        r.SacFly,
		"rbi_credited":   r.RBICredited,
	}
}
