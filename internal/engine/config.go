package engine

// Config holds configuration for descriptor generation.
type Config struct {
	// SumType is the name of the binary sum type inside the runtime crate.
	SumType string
	// MaxArity caps the tuple arity range a Specification may request.
	MaxArity int
}

// DefaultConfig returns the default generation configuration.
func DefaultConfig() Config {
	return Config{
		SumType:  "Either",
		MaxArity: 16,
	}
}
