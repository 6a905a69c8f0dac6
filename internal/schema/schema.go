package schema

import (
	"gopkg.in/yaml.v3"

	"itemize-generator/internal/ir"
)

// CurrentVersion is the only declaration file version understood.
const CurrentVersion = "1"

// File is the top-level structure of a declaration file.
type File struct {
	// Version is the schema version (currently "1").
	Version string `yaml:"version,omitempty"`
	// Crate is the path of the runtime crate holding the conversion traits.
	Crate string `yaml:"crate,omitempty"`
	// Declarations lists one entry per target.
	Declarations []Declaration `yaml:"declarations"`

	node *yaml.Node
}

// Declaration describes the conversions generated for one target.
type Declaration struct {
	// Target is the name of the type the conversions produce.
	Target string `yaml:"target"`
	// Generics are the target's own generic parameters, e.g. "'a", "T: Clone", "const N: usize".
	Generics StringOrArray `yaml:"generics,omitempty"`
	// Where are the target's own where-predicates, copied into every impl.
	Where StringOrArray `yaml:"where,omitempty"`
	// Data is the target's declaration kind: struct (default), enum or union.
	Data string `yaml:"data,omitempty"`
	// Derive selects the generated conversions; empty means all four.
	Derive StringOrArray `yaml:"derive,omitempty"`
	// SelfImpl also implements the conversions for the target itself.
	SelfImpl bool `yaml:"self_impl,omitempty"`
	// ItemsFrom lists the accepted source shapes.
	ItemsFrom *ItemsFrom `yaml:"items_from,omitempty"`

	// Line and Column locate the declaration in the source file.
	Line   int `yaml:"-"`
	Column int `yaml:"-"`

	node      *yaml.Node
	decodeErr error
}

// ItemsFrom lists the accepted source shapes of a declaration.
type ItemsFrom struct {
	// Types are the accepted single-value source types.
	Types StringOrArray `yaml:"types,omitempty"`
	// Tuples is the accepted tuple arity range; nil means no tuples.
	Tuples *TupleArity `yaml:"tuples,omitempty"`
	// Collections are the accepted collection keywords: vec, slice, array.
	Collections StringOrArray `yaml:"collections,omitempty"`
	// ErrorType fixes the error type of fallible conversions.
	ErrorType string `yaml:"error_type,omitempty"`
}

// StringOrArray represents a field that can be either a single string or an array of strings.
type StringOrArray []string

// TupleArity is the decoded tuples directive. Decoding never fails; a
// malformed value is kept in Err and reported when the declaration compiles.
type TupleArity struct {
	// Range is the accepted inclusive range; nil when Disabled.
	Range *ir.ArityRange
	// Disabled is set by "tuples: false".
	Disabled bool
	// Implied is set when a bare or "true" directive selected the default range.
	Implied bool
	// Raw is the directive as written.
	Raw string
	// Err describes a malformed directive.
	Err error

	Line   int
	Column int
}
