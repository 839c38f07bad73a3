// Package diagfmt renders diag.Diagnostic values for humans.
//
// Pretty produces the multi-line form with source context and colors;
// Short produces a deterministic one-line-per-entry form used by the CLI
// and by golden comparisons in tests. Neither mutates the diagnostics or
// the file set.
package diagfmt
