package harness

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/roach88/playoracle/internal/play"
)

// Metadata describes the enumeration that produced a report.
type Metadata struct {
	TotalCases    int      `json:"total_cases"`
	ValidCases    int      `json:"valid_cases"`
	InvalidCases  int      `json:"invalid_cases"`
	BaseStates    []string `json:"base_states"`
	OutStates     []int    `json:"out_states"`
	Outcomes      []string `json:"outcomes"`
	EngineVersion string   `json:"engine_version"`
	ReportVersion string   `json:"report_version"`
	Digest        string   `json:"digest"`
}

// Report is the full-matrix document consumed by the scorekeeping app.
//
// Records in InvalidCases describe a play that cannot happen, not a play
// that was undone: new_bases repeats the pre-play occupancy, outs_after
// equals outs_before, runs_scored is 0, and batter_reaches is false for
// every outcome (including an illegal dropped third strike). The reason
// is the record's single invalidity note.
type Report struct {
	Metadata     Metadata      `json:"metadata"`
	TestCases    []play.Result `json:"test_cases"`
	InvalidCases []play.Result `json:"invalid_cases"`
}

// BuildReport partitions results and computes the report metadata.
// The digest covers results in the order given.
func BuildReport(results []play.Result) (*Report, error) {
	digest, err := play.Digest(results)
	if err != nil {
		return nil, fmt.Errorf("build report: %w", err)
	}

	valid, invalid := Partition(results)
	return &Report{
		Metadata: Metadata{
			TotalCases:    len(results),
			ValidCases:    len(valid),
			InvalidCases:  len(invalid),
			BaseStates:    play.PresetNames(),
			OutStates:     append([]int(nil), play.OutStates...),
			Outcomes:      play.OutcomeNames(),
			EngineVersion: play.EngineVersion,
			ReportVersion: play.ReportVersion,
			Digest:        digest,
		},
		TestCases:    valid,
		InvalidCases: invalid,
	}, nil
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// ReadReport decodes a report previously written by WriteJSON.
func ReadReport(rd io.Reader) (*Report, error) {
	var rep Report
	dec := json.NewDecoder(rd)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&rep); err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}
	return &rep, nil
}
