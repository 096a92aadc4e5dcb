// Package engine resolves a single baseball play.
//
// The resolver is a pure function of (base preset, outs before, outcome).
// It never fails: every combination yields exactly one play.Result.
//
// Two in-band markers replace error returns:
//
// Modeled illegality:
// A combination that cannot happen on a real field (a double play with two
// outs already recorded, a steal with the bases empty) resolves to a Result
// with Valid=false and an invalidity note.
//
// Advisory ambiguity:
// A legal result whose exact resolution needs information the engine does
// not model (runner speed, tag timing, which runner was retired) carries a
// note whose code reports Advisory() == true.
//
// DETERMINISM:
// No randomness, no shared state, no I/O. Resolving the same triple twice
// yields identical results.
//
// ResolveNamed is the boundary form used by the CLI and scenario files.
// Unknown names there are caller mistakes and return an *InputError.
package engine
