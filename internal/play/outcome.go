package play

import "fmt"

// Category groups outcomes by how the resolver dispatches them.
type Category string

const (
	CategoryHit     Category = "hit"
	CategoryOut     Category = "out"
	CategoryNoOut   Category = "no_out"
	CategorySpecial Category = "special"
)

// Categories lists the categories in report order.
var Categories = []Category{CategoryHit, CategoryOut, CategoryNoOut, CategorySpecial}

// OutKind is the subtype of an out-recording outcome.
type OutKind string

const (
	OutGround         OutKind = "ground"
	OutFly            OutKind = "fly"
	OutLine           OutKind = "line"
	OutStrikeout      OutKind = "strikeout"
	OutFieldersChoice OutKind = "fc"
	OutBunt           OutKind = "bunt"
	OutDoublePlay     OutKind = "dp"
)

// NoOutKind is the subtype of an outcome where the batter reaches without an out.
type NoOutKind string

const (
	NoOutWalk            NoOutKind = "bb"
	NoOutIntentionalWalk NoOutKind = "ibb"
	NoOutHitByPitch      NoOutKind = "hbp"
	NoOutError           NoOutKind = "error"
	NoOutDroppedThird    NoOutKind = "d3k"
)

// SpecialKind is the subtype of a between-pitch baserunning event.
type SpecialKind string

const (
	SpecialStolenBase     SpecialKind = "sb"
	SpecialCaughtStealing SpecialKind = "cs"
	SpecialWildPitch      SpecialKind = "wp"
	SpecialPassedBall     SpecialKind = "pb"
)

// Outcome is a closed tagged union: Hit, Out, NoOut or Special.
type Outcome interface {
	Category() Category
	outcome()
}

// Hit is a batted ball where the batter reaches by advancing BasesGained.
type Hit struct {
	BasesGained int
}

// Out records OutsAdded outs.
type Out struct {
	OutsAdded int
	Kind      OutKind
}

// NoOut puts the batter on base without recording an out.
type NoOut struct {
	Kind NoOutKind
}

// Special is a runner event that does not involve the batter.
type Special struct {
	Kind SpecialKind
}

func (Hit) Category() Category     { return CategoryHit }
func (Out) Category() Category     { return CategoryOut }
func (NoOut) Category() Category   { return CategoryNoOut }
func (Special) Category() Category { return CategorySpecial }

func (Hit) outcome()     {}
func (Out) outcome()     {}
func (NoOut) outcome()   {}
func (Special) outcome() {}

// OutcomeID identifies an entry in the outcome catalog.
type OutcomeID int

const (
	Single OutcomeID = iota
	Double
	Triple
	HomeRun
	InsideParkHR
	GroundOut
	FlyOut
	LineOut
	StrikeoutSwinging
	StrikeoutLooking
	FieldersChoice
	SacBunt
	DoublePlay
	Walk
	IntentionalWalk
	HitByPitch
	ReachedOnError
	DroppedThirdStrike
	StolenBase
	CaughtStealing
	WildPitch
	PassedBall
)

type catalogEntry struct {
	name    string
	outcome Outcome
}

var catalog = [...]catalogEntry{
	Single:       {"single", Hit{BasesGained: 1}},
	Double:       {"double", Hit{BasesGained: 2}},
	Triple:       {"triple", Hit{BasesGained: 3}},
	HomeRun:      {"home_run", Hit{BasesGained: 4}},
	InsideParkHR: {"inside_park_hr", Hit{BasesGained: 4}},

	GroundOut:         {"ground_out", Out{OutsAdded: 1, Kind: OutGround}},
	FlyOut:            {"fly_out", Out{OutsAdded: 1, Kind: OutFly}},
	LineOut:           {"line_out", Out{OutsAdded: 1, Kind: OutLine}},
	StrikeoutSwinging: {"strikeout_swinging", Out{OutsAdded: 1, Kind: OutStrikeout}},
	StrikeoutLooking:  {"strikeout_looking", Out{OutsAdded: 1, Kind: OutStrikeout}},
	FieldersChoice:    {"fielders_choice", Out{OutsAdded: 1, Kind: OutFieldersChoice}},
	SacBunt:           {"sac_bunt", Out{OutsAdded: 1, Kind: OutBunt}},
	DoublePlay:        {"double_play", Out{OutsAdded: 2, Kind: OutDoublePlay}},

	Walk:               {"walk", NoOut{Kind: NoOutWalk}},
	IntentionalWalk:    {"intentional_walk", NoOut{Kind: NoOutIntentionalWalk}},
	HitByPitch:         {"hit_by_pitch", NoOut{Kind: NoOutHitByPitch}},
	ReachedOnError:     {"error", NoOut{Kind: NoOutError}},
	DroppedThirdStrike: {"dropped_3rd_strike", NoOut{Kind: NoOutDroppedThird}},

	StolenBase:     {"stolen_base", Special{Kind: SpecialStolenBase}},
	CaughtStealing: {"caught_stealing", Special{Kind: SpecialCaughtStealing}},
	WildPitch:      {"wild_pitch", Special{Kind: SpecialWildPitch}},
	PassedBall:     {"passed_ball", Special{Kind: SpecialPassedBall}},
}

// Outcomes returns every catalog entry in canonical enumeration order.
func Outcomes() []OutcomeID {
	out := make([]OutcomeID, len(catalog))
	for i := range catalog {
		out[i] = OutcomeID(i)
	}
	return out
}

// OutcomeNames returns the catalog names in canonical order.
func OutcomeNames() []string {
	names := make([]string, len(catalog))
	for i, e := range catalog {
		names[i] = e.name
	}
	return names
}

// Valid reports whether id is in the catalog.
func (id OutcomeID) Valid() bool {
	return id >= 0 && int(id) < len(catalog)
}

// Outcome returns the tagged payload for id, or nil if id is unknown.
func (id OutcomeID) Outcome() Outcome {
	if !id.Valid() {
		return nil
	}
	return catalog[id].outcome
}

// Category returns the category of id.
func (id OutcomeID) Category() Category {
	if !id.Valid() {
		return ""
	}
	return catalog[id].outcome.Category()
}

func (id OutcomeID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("OutcomeID(%d)", int(id))
	}
	return catalog[id].name
}

// MarshalText encodes the outcome by catalog name.
func (id OutcomeID) MarshalText() ([]byte, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("unknown outcome %d", int(id))
	}
	return []byte(catalog[id].name), nil
}

// UnmarshalText decodes a catalog name.
func (id *OutcomeID) UnmarshalText(text []byte) error {
	v, ok := ParseOutcome(string(text))
	if !ok {
		return fmt.Errorf("unknown outcome %q", string(text))
	}
	*id = v
	return nil
}

// ParseOutcome looks up an outcome by catalog name.
func ParseOutcome(name string) (OutcomeID, bool) {
	for i, e := range catalog {
		if e.name == name {
			return OutcomeID(i), true
		}
	}
	return 0, false
}
