// Package harness enumerates and checks every play the engine can resolve.
//
// # Enumeration
//
// All yields one play.Result per (base preset, outs, outcome) triple in a
// fixed order: preset-major, then outs 0..2, then catalog order. The order
// comes from the play package's canonical lists, never from map iteration,
// so two runs produce identical sequences and identical report digests.
//
// # Reports
//
// BuildReport partitions results into valid and invalid cases and stamps
// metadata (counts, the canonical name lists, a content digest). Summarize
// aggregates valid cases by category and by base preset.
//
// # Expectation Scenarios
//
// Scenarios are YAML files that pin expected results for chosen cases:
//
//	name: walks
//	description: "Force-only advancement on walks"
//	cases:
//	  - name: bases loaded walk
//	    base: loaded
//	    outs: 1
//	    outcome: walk
//	    expect:
//	      runs_scored: 1
//	      rbi_credited: true
//	      new_bases: {1B: true, 2B: true, 3B: true}
//	      notes: [bases_loaded_walk]
//
// Expectations are subset matches: only the fields present are compared.
// Notes are matched by code, never by message text.
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/walks.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result := harness.Check(scenario)
//	if !result.Pass {
//	    for _, f := range result.Failures {
//	        log.Println(f)
//	    }
//	}
package harness
