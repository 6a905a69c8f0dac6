// Package diagnostic provides structured warnings and errors for
// specification loading and impl generation.
//
// Key capabilities:
//   - Unknown key reports with did-you-mean suggestions
//   - Source positions for YAML-backed diagnostics
//   - Per-declaration grouping so one bad declaration does not hide the rest
//   - Stable codes for tests and tooling
package diagnostic
