package play

// Version constants for the report format and engine.
const (
	// ReportVersion is the report document schema version.
	ReportVersion = "1"

	// EngineVersion is the resolver version stamped into reports.
	EngineVersion = "0.1.0"
)
