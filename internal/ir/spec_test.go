package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemize-generator/internal/diagnostic"
)

func codes(diags []diagnostic.Diagnostic) []string {
	out := make([]string, len(diags))
	for i, d := range diags {
		out[i] = d.Code
	}

	return out
}

func TestSpecification_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(s *Specification)
		errors   []string
		warnings []string
	}{
		{
			name: "valid",
			mutate: func(s *Specification) {
				s.DeclaredTypes = []TypeExpr{Named("String")}
				s.TupleArity = UpTo(3)
				s.Collections = CollectionsAll
			},
		},
		{
			name:   "missing target",
			mutate: func(s *Specification) { s.Target = "" },
			errors: []string{diagnostic.CodeMissingField},
		},
		{
			name: "union target",
			mutate: func(s *Specification) {
				s.Data = DataUnion
				s.TupleArity = UpTo(2)
			},
			errors: []string{diagnostic.CodeUnionTarget},
		},
		{
			name:   "end before start",
			mutate: func(s *Specification) { s.TupleArity = &ArityRange{Start: 3, End: 2} },
			errors: []string{diagnostic.CodeInvalidRange},
		},
		{
			name:   "zero start",
			mutate: func(s *Specification) { s.TupleArity = &ArityRange{Start: 0, End: 2} },
			errors: []string{diagnostic.CodeInvalidRange},
		},
		{
			name:   "unknown collection bit",
			mutate: func(s *Specification) { s.Collections = 1 << 5 },
			errors: []string{diagnostic.CodeUnknownKind},
		},
		{
			name: "duplicate declared types",
			mutate: func(s *Specification) {
				s.DeclaredTypes = []TypeExpr{Named("String"), Named("char"), Named("String")}
			},
			warnings: []string{diagnostic.CodeDuplicateType},
		},
		{
			name:     "no shapes",
			mutate:   func(s *Specification) {},
			warnings: []string{diagnostic.CodeNoShapes},
		},
		{
			name: "duplicate generic",
			mutate: func(s *Specification) {
				s.Generics = []GenericParam{TypeParam("T"), TypeParam("T")}
				s.TupleArity = UpTo(1)
			},
			errors: []string{diagnostic.CodeInvalidType},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSpecification("Foo")
			tt.mutate(s)

			diags := s.Validate()
			require.NotNil(t, diags)
			assert.ElementsMatch(t, tt.errors, codes(diags.Errors))
			assert.ElementsMatch(t, tt.warnings, codes(diags.Warnings))
		})
	}
}

func TestSpecification_TargetType(t *testing.T) {
	s := NewSpecification("Foo")
	s.Generics = []GenericParam{LifetimeParam("'a"), TypeParam("T", Named("Clone")), ConstParam("N", Named("usize"))}

	assert.Equal(t, "Foo<'a, T, N>", s.TargetType().String())
	assert.Equal(t, "<'a, T: Clone, const N: usize>", FormatGenerics(s.Generics))
}

func TestSpecification_UniqueTypes(t *testing.T) {
	s := NewSpecification("Foo")
	s.DeclaredTypes = []TypeExpr{Named("String"), MustParseType("&'a str"), Named("String")}

	got := s.UniqueTypes()
	require.Len(t, got, 2)
	assert.Equal(t, "String", got[0].String())
	assert.Equal(t, "&'a str", got[1].String())
}

func TestArityRange(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, DefaultArityRange().Arities())
	assert.Equal(t, []int{4}, Exact(4).Arities())
	assert.Equal(t, []int{2, 3}, (&ArityRange{Start: 2, End: 3}).Arities())
	assert.Nil(t, (&ArityRange{Start: 3, End: 2}).Arities())

	var none *ArityRange
	assert.Nil(t, none.Arities())
	assert.False(t, none.Contains(1))
	assert.True(t, UpTo(3).Contains(3))
	assert.False(t, UpTo(3).Contains(4))
	assert.Equal(t, "1..=3", UpTo(3).String())
}
