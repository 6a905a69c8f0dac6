package match

import (
	"sort"
)

// Known is a valid name together with the value shape it expects.
type Known struct {
	Name  string
	Shape ValueShape
}

// KnownNames returns Known entries that accept any value shape.
func KnownNames(names ...string) []Known {
	out := make([]Known, len(names))
	for i, n := range names {
		out[i] = Known{Name: n, Shape: ShapeAny}
	}

	return out
}

// Candidate is a known name considered as the intended spelling of an unknown one.
type Candidate struct {
	Name string

	// Scoring components
	NameScore   float64                  // Similarity of the normalized names (0-1)
	ShapeCompat ShapeCompatibilityResult // Value shape compatibility

	// Combined score for ranking (higher is better)
	CombinedScore float64

	// Metadata for debugging/explanation
	NormalizedInput string
	NormalizedName  string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores every known name against input.
// Returns candidates sorted by combined score (descending).
func RankCandidates(input string, shape ValueShape, known []Known) CandidateList {
	candidates := make(CandidateList, 0, len(known))

	inputNorm := NormalizeIdent(input)

	for _, k := range known {
		nameNorm := NormalizeIdent(k.Name)

		// Keep the best of the raw, normalized and singular comparisons so
		// case, separator and plural differences all score high.
		nameScore := max(
			Similarity(input, k.Name),
			Similarity(inputNorm, nameNorm),
			SingularSimilarity(input, k.Name),
		)

		compat := ScoreShapeCompatibility(shape, k.Shape)

		candidates = append(candidates, Candidate{
			Name:            k.Name,
			NameScore:       nameScore,
			ShapeCompat:     compat,
			CombinedScore:   calculateCombinedScore(nameScore, compat.Compatibility),
			NormalizedInput: inputNorm,
			NormalizedName:  nameNorm,
		})
	}

	// Sort by combined score (descending), then by name for determinism
	sort.Sort(candidates)

	return candidates
}

// Suggest returns the names worth proposing for input: the best candidate if
// it clears DefaultMinScore, plus the runner-up when the two are ambiguous.
func Suggest(input string, shape ValueShape, known []Known) []string {
	ranked := RankCandidates(input, shape, known).AboveThreshold(DefaultMinScore)
	if len(ranked) == 0 {
		return nil
	}

	if ranked.IsAmbiguous(DefaultAmbiguityThreshold) {
		return []string{ranked[0].Name, ranked[1].Name}
	}

	return []string{ranked[0].Name}
}

// calculateCombinedScore computes a combined score from name similarity and shape compatibility.
// Weights:
//   - Name similarity: 60% (0.0-0.6)
//   - Shape compatibility: 40% (0.0-0.4)
func calculateCombinedScore(nameScore float64, compat ShapeCompatibility) float64 {
	const (
		nameWeight  = 0.6
		shapeWeight = 0.4
	)

	var shapeScore float64
	switch compat {
	case ShapeIdentical:
		shapeScore = 1.0
	case ShapeCoercible:
		shapeScore = 0.7
	case ShapeIncompatible:
		shapeScore = 0.0
	}

	return nameScore*nameWeight + shapeScore*shapeWeight
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by combined score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	// Higher score comes first
	if c[i].CombinedScore != c[j].CombinedScore {
		return c[i].CombinedScore > c[j].CombinedScore
	}
	// Tie-breaker: alphabetical by name
	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}
	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}
	return &c[0]
}

// IsAmbiguous returns true if the top two candidates are within the threshold.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	if len(c) < 2 {
		return false
	}
	diff := c[0].CombinedScore - c[1].CombinedScore
	return diff < threshold
}

// AboveThreshold returns candidates with combined score above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList
	for _, cand := range c {
		if cand.CombinedScore >= threshold {
			result = append(result, cand)
		}
	}
	return result
}

// Suggestion thresholds.
const (
	// DefaultMinScore is the minimum combined score for a suggestion.
	DefaultMinScore = 0.6
	// DefaultAmbiguityThreshold is the score difference under which the runner-up is also suggested.
	DefaultAmbiguityThreshold = 0.05
)
