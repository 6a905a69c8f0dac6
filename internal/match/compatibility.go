package match

// ValueShape is the YAML node shape a key carries or expects.
type ValueShape int

const (
	// ShapeAny matches every shape; used when the value is absent or unconstrained.
	ShapeAny ValueShape = iota
	ShapeScalar
	ShapeSequence
	ShapeMapping
)

// String returns a human-readable shape name.
func (s ValueShape) String() string {
	switch s {
	case ShapeAny:
		return "any"
	case ShapeScalar:
		return "scalar"
	case ShapeSequence:
		return "sequence"
	case ShapeMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// ShapeCompatibility represents the level of compatibility between a value and a key.
type ShapeCompatibility int

const (
	// ShapeIncompatible means the value could not be decoded for the key.
	ShapeIncompatible ShapeCompatibility = iota
	// ShapeCoercible means the value decodes after a shorthand expansion
	// (a scalar where a list is expected, or a scalar where a mapping has a scalar form).
	ShapeCoercible
	// ShapeIdentical means the value has exactly the expected shape.
	ShapeIdentical
)

// String returns a human-readable compatibility level.
func (c ShapeCompatibility) String() string {
	switch c {
	case ShapeIncompatible:
		return "incompatible"
	case ShapeCoercible:
		return "coercible"
	case ShapeIdentical:
		return "identical"
	default:
		return "unknown"
	}
}

// ShapeCompatibilityResult holds the compatibility level and a short reason.
type ShapeCompatibilityResult struct {
	Compatibility ShapeCompatibility
	Reason        string
}

// ScoreShapeCompatibility scores how well a value of shape have fits a key expecting want.
func ScoreShapeCompatibility(have, want ValueShape) ShapeCompatibilityResult {
	switch {
	case have == ShapeAny || want == ShapeAny:
		return ShapeCompatibilityResult{Compatibility: ShapeIdentical, Reason: "unconstrained"}
	case have == want:
		return ShapeCompatibilityResult{Compatibility: ShapeIdentical, Reason: "same shape"}
	case have == ShapeScalar:
		return ShapeCompatibilityResult{
			Compatibility: ShapeCoercible,
			Reason:        "scalar shorthand for " + want.String(),
		}
	default:
		return ShapeCompatibilityResult{
			Compatibility: ShapeIncompatible,
			Reason:        have.String() + " where " + want.String() + " is expected",
		}
	}
}
