package play

import "fmt"

// MaxOuts is the out count that ends a half-inning.
const MaxOuts = 3

// OutStates lists the legal pre-play out counts in canonical order.
var OutStates = []int{0, 1, 2}

// ValidOuts reports whether n is a legal pre-play out count.
func ValidOuts(n int) bool {
	return n >= 0 && n < MaxOuts
}

// Base identifies a base a runner can be forced to.
type Base int

const (
	First Base = iota + 1
	Second
	Third
	Home
)

func (b Base) String() string {
	switch b {
	case First:
		return "1B"
	case Second:
		return "2B"
	case Third:
		return "3B"
	case Home:
		return "home"
	}
	return fmt.Sprintf("Base(%d)", int(b))
}

// BaseState is the occupancy of first, second and third base.
// It is a value type: methods never mutate the receiver.
type BaseState struct {
	First  bool `json:"1B" yaml:"1B"`
	Second bool `json:"2B" yaml:"2B"`
	Third  bool `json:"3B" yaml:"3B"`
}

// Occupied returns the number of runners on base.
func (s BaseState) Occupied() int {
	n := 0
	for _, on := range []bool{s.First, s.Second, s.Third} {
		if on {
			n++
		}
	}
	return n
}

// Any reports whether at least one base is occupied.
func (s BaseState) Any() bool {
	return s.First || s.Second || s.Third
}

// Has reports whether base b is occupied. Home is never occupied.
func (s BaseState) Has(b Base) bool {
	switch b {
	case First:
		return s.First
	case Second:
		return s.Second
	case Third:
		return s.Third
	}
	return false
}

// With returns a copy of s with base b occupied.
func (s BaseState) With(b Base) BaseState {
	return s.set(b, true)
}

// Without returns a copy of s with base b empty.
func (s BaseState) Without(b Base) BaseState {
	return s.set(b, false)
}

func (s BaseState) set(b Base, on bool) BaseState {
	switch b {
	case First:
		s.First = on
	case Second:
		s.Second = on
	case Third:
		s.Third = on
	}
	return s
}

// IsForce reports whether a runner moving to base is forced to advance.
//
// The batter always forces the trail runner at first. Every other base is
// forced only when all bases behind it are occupied.
func IsForce(base Base, occupancy BaseState) bool {
	switch base {
	case First:
		return true
	case Second:
		return occupancy.First
	case Third:
		return occupancy.First && occupancy.Second
	case Home:
		return occupancy.First && occupancy.Second && occupancy.Third
	}
	return false
}

// Preset names one of the eight pre-play base states.
type Preset int

const (
	Empty Preset = iota
	OnFirst
	OnSecond
	OnThird
	FirstSecond
	FirstThird
	SecondThird
	Loaded
)

var presetNames = [...]string{
	Empty:       "empty",
	OnFirst:     "1st",
	OnSecond:    "2nd",
	OnThird:     "3rd",
	FirstSecond: "1st_2nd",
	FirstThird:  "1st_3rd",
	SecondThird: "2nd_3rd",
	Loaded:      "loaded",
}

var presetBases = [...]BaseState{
	Empty:       {},
	OnFirst:     {First: true},
	OnSecond:    {Second: true},
	OnThird:     {Third: true},
	FirstSecond: {First: true, Second: true},
	FirstThird:  {First: true, Third: true},
	SecondThird: {Second: true, Third: true},
	Loaded:      {First: true, Second: true, Third: true},
}

// Presets returns every preset in canonical enumeration order.
func Presets() []Preset {
	out := make([]Preset, len(presetNames))
	for i := range presetNames {
		out[i] = Preset(i)
	}
	return out
}

// PresetNames returns the preset names in canonical order.
func PresetNames() []string {
	return append([]string(nil), presetNames[:]...)
}

// Valid reports whether p is a known preset.
func (p Preset) Valid() bool {
	return p >= 0 && int(p) < len(presetNames)
}

// Bases returns a fresh BaseState for the preset.
func (p Preset) Bases() BaseState {
	if !p.Valid() {
		return BaseState{}
	}
	return presetBases[p]
}

func (p Preset) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Preset(%d)", int(p))
	}
	return presetNames[p]
}

// MarshalText encodes the preset by name.
func (p Preset) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("unknown preset %d", int(p))
	}
	return []byte(presetNames[p]), nil
}

// UnmarshalText decodes a preset name.
func (p *Preset) UnmarshalText(text []byte) error {
	v, ok := ParsePreset(string(text))
	if !ok {
		return fmt.Errorf("unknown base state %q", string(text))
	}
	*p = v
	return nil
}

// ParsePreset looks up a preset by name.
func ParsePreset(name string) (Preset, bool) {
	for i, n := range presetNames {
		if n == name {
			return Preset(i), true
		}
	}
	return 0, false
}

// PresetOf returns the preset naming occupancy s.
func PresetOf(s BaseState) Preset {
	for i, b := range presetBases {
		if b == s {
			return Preset(i)
		}
	}
	return Empty
}
