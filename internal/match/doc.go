// Package match provides name normalization, edit distance,
// value-shape compatibility scoring, and candidate ranking for "did you mean"
// suggestions on misspelled declaration keys and keywords.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Distance: edit distance counting adjacent transpositions as one edit
//   - ScoreShapeCompatibility: scores whether a YAML value fits a known key
//   - RankCandidates: ranks known names against a misspelled one
//   - Suggest: returns the confident suggestions for an unknown name
package match
