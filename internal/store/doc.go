// Package store exports resolved plays to SQLite.
//
// The export mirrors the JSON report in relational form so the
// scorekeeping application can look up a situation with a query instead
// of loading the whole matrix:
//   - exports: one row per written matrix, keyed by its report digest and
//     ordered by seq; the highest seq is the matrix currently stored
//   - cases: one row per (base, outs, outcome) combination, keyed by case_id
//   - notes: the ordered notes attached to each case
//
// Writes are idempotent on case_id and digest, so exporting the same
// matrix twice leaves the database unchanged. A case whose canonical
// record changed is overwritten along with its notes.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Every case row also carries its canonical JSON record (see
// play.MarshalCanonical) so a stored case can be compared byte for byte
// with a freshly resolved one.
package store
