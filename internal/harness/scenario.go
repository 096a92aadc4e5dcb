package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/playoracle/internal/play"
)

// Scenario pins expected results for a set of plays.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Cases are resolved and compared in order.
	Cases []Case `yaml:"cases"`
}

// Case is a single (base, outs, outcome) query with its expectation.
type Case struct {
	Name    string `yaml:"name"`
	Base    string `yaml:"base"`
	Outs    int    `yaml:"outs"`
	Outcome string `yaml:"outcome"`
	Expect  Expect `yaml:"expect"`
}

// Expect is a subset match against play.Result.
// Nil fields are not compared. Notes must all be present, in any order.
type Expect struct {
	Valid         *bool           `yaml:"is_valid,omitempty"`
	RunsScored    *int            `yaml:"runs_scored,omitempty"`
	OutsAfter     *int            `yaml:"outs_after,omitempty"`
	NewBases      *play.BaseState `yaml:"new_bases,omitempty"`
	BatterReaches *bool           `yaml:"batter_reaches,omitempty"`
	InningEnds    *bool           `yaml:"inning_ends,omitempty"`
	SacFly        *bool           `yaml:"sac_fly,omitempty"`
	RBICredited   *bool           `yaml:"rbi_credited,omitempty"`
	Notes         []play.NoteCode `yaml:"notes,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or names an unknown base or outcome.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML from memory.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	for i, c := range s.Cases {
		if _, ok := play.ParsePreset(c.Base); !ok {
			return fmt.Errorf("cases[%d]: unknown base state %q", i, c.Base)
		}
		if !play.ValidOuts(c.Outs) {
			return fmt.Errorf("cases[%d]: outs must be 0, 1 or 2, got %d", i, c.Outs)
		}
		if _, ok := play.ParseOutcome(c.Outcome); !ok {
			return fmt.Errorf("cases[%d]: unknown outcome %q", i, c.Outcome)
		}
	}
	return nil
}

// Label returns the case name, or its triple when unnamed.
func (c Case) Label() string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("%s/%d/%s", c.Base, c.Outs, c.Outcome)
}
