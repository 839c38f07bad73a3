// Package diag defines the diagnostic value type shared by all pipeline
// phases.
//
// # Purpose
//
//   - Provide the immutable, identity-bearing record that lexer / parser /
//     semantic passes produce and that reporting layers consume: an ID, a
//     category, a severity, a primary location, optional related locations,
//     and a message that can be rendered for any locale.
//   - Guarantee that every construction path (descriptor factory, low-level
//     factory, built-in message table) converges on the same observable
//     shape, so equality, hashing and rendering never depend on how a
//     diagnostic was made.
//
// # Scope
//
// Package diag performs no IO, no aggregation and no filtering. Rendering
// responsibilities live in internal/diagfmt; the concrete source model
// (files, spans, locations) lives in internal/source.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - ID – stable identifier string (e.g. "LEX1001"), never empty.
//   - Category – classification string (e.g. "Lexical"), never empty.
//   - Severity – enum defined in severity.go. Hidden, Info, Warning and
//     Error are the public levels; Unknown and Void exist for pipeline
//     internals (deferred resolution, suppressed placeholders).
//   - WarningLevel – 0 for non-warnings, 1..4 for warnings.
//   - Location – primary source.Location; NoLocation when the finding has
//     no position. Never "absent".
//   - Additional – related locations, order significant and preserved.
//   - MessageFormat / Args – either a precomputed message (Args nil) or a
//     deferred template with positional {0} placeholders.
//
// Diagnostics are values: "mutation" means deriving a new value via
// WithLocation or WithWarningAsError while the original stays untouched.
// Once constructed a Diagnostic is safe for unsynchronized concurrent reads.
//
// # Construction
//
// Use New / NewWithRelated with a Descriptor for ordinary findings, NewRaw
// when every field is already known, and ForCode for codes in the built-in
// message table. Factory errors (ArgumentError, FormatError) surface
// immediately; a Diagnostic is never returned in a partially valid state.
package diag
