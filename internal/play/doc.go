// Package play provides the value types for a single baseball play.
//
// This package contains type definitions only. All other internal packages
// import play; play imports nothing internal. This keeps the state model
// the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Every value is immutable once built; transformations return new values
//   - The outcome catalog is closed and indexed by OutcomeID
//   - All JSON tags use snake_case (base occupancy keeps "1B"/"2B"/"3B")
//   - Notes carry a NoteCode so callers never match on message text
package play
