package ir

import (
	"fmt"

	"itemize-generator/internal/common"
	"itemize-generator/internal/diagnostic"
)

// DefaultCratePath is the path of the runtime crate holding the conversion traits.
const DefaultCratePath = "itemize"

// DefaultMaxArity is the upper bound of a bare tuples directive.
const DefaultMaxArity = 6

// ArityRange is an inclusive tuple arity range.
type ArityRange struct {
	Start int
	End   int
}

// DefaultArityRange is the range implied by a bare tuples directive.
func DefaultArityRange() *ArityRange {
	return &ArityRange{Start: 1, End: DefaultMaxArity}
}

// UpTo returns the range 1..=n.
func UpTo(n int) *ArityRange {
	return &ArityRange{Start: 1, End: n}
}

// Exact returns the singleton range n..=n.
func Exact(n int) *ArityRange {
	return &ArityRange{Start: n, End: n}
}

// Arities lists every arity in the range, ascending.
func (r *ArityRange) Arities() []int {
	if r == nil || r.End < r.Start {
		return nil
	}

	out := make([]int, 0, r.End-r.Start+1)
	for n := r.Start; n <= r.End; n++ {
		out = append(out, n)
	}

	return out
}

// Contains reports whether n is inside the range.
func (r *ArityRange) Contains(n int) bool {
	return r != nil && common.InRange(r.Start, n, r.End)
}

func (r *ArityRange) String() string {
	if r == nil {
		return "none"
	}

	return fmt.Sprintf("%d..=%d", r.Start, r.End)
}

// Specification is the validated input for one annotated declaration.
type Specification struct {
	// Target is the name of the declaration the conversions produce.
	Target string
	// Generics are the target's own generic parameters.
	Generics []GenericParam
	// Bounds are the target's own where-predicates, copied verbatim into every descriptor.
	Bounds []Predicate
	// DeclaredTypes are the accepted single-value source types.
	DeclaredTypes []TypeExpr
	// TupleArity is nil when tuples are not accepted.
	TupleArity *ArityRange
	// Collections is the accepted collection kinds.
	Collections CollectionSet
	// ErrorType fixes the error type of fallible descriptors; nil means generic.
	ErrorType TypeExpr
	// Data is the target's declaration kind.
	Data DataShape
	// Axes selects the generated (Kind, Variant) pairs.
	Axes AxisSet
	// SelfImpl adds the identity shape.
	SelfImpl bool
	// CratePath prefixes the conversion traits and the sum type.
	CratePath string
}

// NewSpecification returns a struct specification for target with every axis
// enabled and the default crate path.
func NewSpecification(target string) *Specification {
	return &Specification{
		Target:    target,
		Data:      DataStruct,
		Axes:      AxesAll,
		CratePath: DefaultCratePath,
	}
}

// TargetType returns the target applied to its own generic parameters, e.g. Foo<'a, T>.
func (s *Specification) TargetType() *Path {
	args := make([]TypeExpr, 0, len(s.Generics))
	for _, g := range s.Generics {
		args = append(args, g.Ref())
	}

	return &Path{Name: s.Target, Args: args}
}

// Crate returns the crate path, falling back to DefaultCratePath.
func (s *Specification) Crate() string {
	if s.CratePath == "" {
		return DefaultCratePath
	}

	return s.CratePath
}

// UniqueTypes returns the declared types with later duplicates removed.
func (s *Specification) UniqueTypes() []TypeExpr {
	kept, _ := common.Dedupe(s.DeclaredTypes, TypeExpr.String)
	return kept
}

// HasShapes reports whether any non-identity shape is accepted.
func (s *Specification) HasShapes() bool {
	return len(s.DeclaredTypes) > 0 || s.TupleArity != nil || s.Collections != CollectionsNone
}

// Validate checks the structural invariants of the specification.
func (s *Specification) Validate() *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}

	if s.Target == "" {
		diags.AddError(diagnostic.CodeMissingField, "target name is required", "", "target")
		return diags
	}

	if s.Data == DataUnion {
		diags.AddError(diagnostic.CodeUnionTarget,
			"Items cannot be derived for unions", s.Target, "data")
	}

	s.validateGenerics(diags)

	if s.TupleArity != nil {
		r := s.TupleArity
		if r.Start < 1 {
			diags.AddError(diagnostic.CodeInvalidRange,
				fmt.Sprintf("tuple arity range %s must start at 1 or more", r), s.Target, "items_from.tuples")
		} else if r.End < r.Start {
			diags.AddError(diagnostic.CodeInvalidRange,
				fmt.Sprintf("tuple arity range %s ends before it starts", r), s.Target, "items_from.tuples")
		}
	}

	if !s.Collections.IsValid() {
		diags.AddError(diagnostic.CodeUnknownKind,
			fmt.Sprintf("collection set %#x holds kinds other than vec, slice, array", uint8(s.Collections)),
			s.Target, "items_from.collections")
	}

	if s.Axes&^AxesAll != 0 {
		diags.AddError(diagnostic.CodeUnknownTrait,
			fmt.Sprintf("axis set %#x holds unknown axes", uint8(s.Axes)), s.Target, "derive")
	}

	if _, dropped := common.Dedupe(s.DeclaredTypes, TypeExpr.String); len(dropped) > 0 {
		for _, t := range dropped {
			diags.AddWarning(diagnostic.CodeDuplicateType,
				fmt.Sprintf("type %s is declared more than once", t), s.Target, "items_from.types")
		}
	}

	if !s.HasShapes() {
		diags.AddWarning(diagnostic.CodeNoShapes,
			"no types, tuples or collections declared", s.Target, "items_from")
	}

	return diags
}

func (s *Specification) validateGenerics(diags *diagnostic.Diagnostics) {
	seen := map[string]struct{}{}

	for _, g := range s.Generics {
		if _, ok := seen[g.Name]; ok {
			diags.AddError(diagnostic.CodeInvalidType,
				fmt.Sprintf("generic parameter %s is declared more than once", g.Name), s.Target, "generics")
		}

		seen[g.Name] = struct{}{}

		if g.Kind == ParamConst && g.ConstType == nil {
			diags.AddError(diagnostic.CodeInvalidType,
				fmt.Sprintf("const parameter %s has no type", g.Name), s.Target, "generics")
		}
	}
}
