package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemize-generator/internal/diagnostic"
	"itemize-generator/internal/ir"
)

func compileString(t *testing.T, yaml string) *Result {
	t.Helper()

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)

	return Compile(f)
}

func errorCodes(d diagnostic.Diagnostics) []string {
	var out []string
	for _, e := range d.Errors {
		out = append(out, e.Code)
	}

	return out
}

func TestCompile_Wrapped(t *testing.T) {
	res := compileString(t, `
declarations:
  - target: Wrapped
    items_from:
      types: [String, char]
      tuples: "1..=2"
      collections: [vec]
`)

	require.True(t, res.Diagnostics.IsValid(), res.Diagnostics.Error())
	require.Len(t, res.Specifications, 1)

	spec := res.Lookup("Wrapped")
	require.NotNil(t, spec)
	assert.Equal(t, ir.DefaultCratePath, spec.CratePath)
	assert.Equal(t, ir.AxesAll, spec.Axes)
	assert.Equal(t, ir.DataStruct, spec.Data)
	assert.Equal(t, &ir.ArityRange{Start: 1, End: 2}, spec.TupleArity)
	assert.Equal(t, ir.NewCollectionSet(ir.CollectionVec), spec.Collections)
	require.Len(t, spec.DeclaredTypes, 2)
	assert.Equal(t, "String", spec.DeclaredTypes[0].String())
	assert.Equal(t, "char", spec.DeclaredTypes[1].String())
	assert.Nil(t, spec.ErrorType)
}

func TestCompile_FullDeclaration(t *testing.T) {
	res := compileString(t, `
version: 1
crate: "::itemize"
declarations:
  - target: Foo
    generics: ["'a", "T: Clone", "const N: usize"]
    where: "T: Default"
    data: enum
    derive: [IntoItems, TryIntoRows]
    self_impl: true
    items_from:
      types: ["&'a str", "[T; N]"]
      tuples: {exact: 3}
      collections: [slice, array]
      error_type: "::std::io::Error"
`)

	require.True(t, res.Diagnostics.IsValid(), res.Diagnostics.Error())

	spec := res.Lookup("Foo")
	require.NotNil(t, spec)
	assert.Equal(t, "::itemize", spec.CratePath)
	assert.Equal(t, "Foo<'a, T, N>", spec.TargetType().String())
	require.Len(t, spec.Bounds, 1)
	assert.Equal(t, "T: Default", spec.Bounds[0].String())
	assert.Equal(t, ir.DataEnum, spec.Data)
	assert.True(t, spec.SelfImpl)
	assert.Equal(t, []ir.Axis{ir.AllAxes[0], ir.AllAxes[3]}, spec.Axes.Axes())
	assert.Equal(t, ir.Exact(3), spec.TupleArity)
	assert.True(t, spec.Collections.Has(ir.CollectionSlice))
	assert.True(t, spec.Collections.Has(ir.CollectionArray))
	assert.False(t, spec.Collections.Has(ir.CollectionVec))
	require.NotNil(t, spec.ErrorType)
	assert.Equal(t, "::std::io::Error", spec.ErrorType.String())
}

func TestCompile_TuplesDisabled(t *testing.T) {
	res := compileString(t, `
declarations:
  - target: Foo
    items_from:
      types: u8
      tuples: false
`)

	require.True(t, res.Diagnostics.IsValid())
	assert.Nil(t, res.Lookup("Foo").TupleArity)
}

func TestCompile_DeclarationErrors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		code        string
		path        string
		suggestions []string
	}{
		{
			name: "union",
			body: "data: union\n    items_from: {types: u8}",
			code: diagnostic.CodeUnionTarget,
			path: "data",
		},
		{
			name:        "unknown data shape",
			body:        "data: strct\n    items_from: {types: u8}",
			code:        diagnostic.CodeInvalidValue,
			path:        "data",
			suggestions: []string{"struct"},
		},
		{
			name:        "unknown key",
			body:        "itemsfrom: {types: u8}",
			code:        diagnostic.CodeUnknownKey,
			path:        "itemsfrom",
			suggestions: []string{"items_from"},
		},
		{
			name:        "unknown nested key",
			body:        "items_from: {tuple: 3}",
			code:        diagnostic.CodeUnknownKey,
			path:        "items_from.tuple",
			suggestions: []string{"tuples"},
		},
		{
			name: "end before start",
			body: `items_from: {tuples: "3..=2"}`,
			code: diagnostic.CodeInvalidRange,
			path: "items_from.tuples",
		},
		{
			name: "zero start",
			body: `items_from: {tuples: "0..=2"}`,
			code: diagnostic.CodeInvalidRange,
			path: "items_from.tuples",
		},
		{
			name: "malformed integer",
			body: `items_from: {tuples: "two"}`,
			code: diagnostic.CodeInvalidRange,
			path: "items_from.tuples",
		},
		{
			name:        "unknown collection",
			body:        "items_from: {collections: [vec, vector]}",
			code:        diagnostic.CodeUnknownKind,
			path:        "items_from.collections[1]",
			suggestions: []string{"vec"},
		},
		{
			name:        "unknown trait",
			body:        "derive: IntoRow\n    items_from: {types: u8}",
			code:        diagnostic.CodeUnknownTrait,
			path:        "derive[0]",
			suggestions: []string{"IntoRows"},
		},
		{
			name: "bad type",
			body: `items_from: {types: ["Vec<u8"]}`,
			code: diagnostic.CodeInvalidType,
			path: "items_from.types[0]",
		},
		{
			name: "bad generic",
			body: "generics: [\"T = u8\"]\n    items_from: {types: u8}",
			code: diagnostic.CodeInvalidType,
			path: "generics[0]",
		},
		{
			name: "undecodable declaration",
			body: "items_from: {types: {a: 1}}",
			code: diagnostic.CodeParseError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := compileString(t, "declarations:\n  - target: Foo\n    "+tt.body+"\n")

			assert.Empty(t, res.Specifications)
			require.NotEmpty(t, res.Diagnostics.Errors)

			got := res.Diagnostics.Errors[0]
			assert.Equal(t, tt.code, got.Code)
			assert.Equal(t, tt.path, got.Path)
			assert.Equal(t, "Foo", got.Declaration)
			assert.Equal(t, tt.suggestions, got.Suggestions)
			assert.Positive(t, got.Line)
		})
	}
}

func TestCompile_IsolatesDeclarations(t *testing.T) {
	res := compileString(t, `
declarations:
  - target: Bad
    items_from:
      tuples: "5..=1"
  - target: Good
    items_from:
      types: u8
`)

	assert.Equal(t, []string{diagnostic.CodeInvalidRange}, errorCodes(res.Diagnostics))
	assert.Equal(t, "Bad", res.Diagnostics.Errors[0].Declaration)

	require.Len(t, res.Specifications, 1)
	assert.Equal(t, "Good", res.Specifications[0].Target)
}

func TestCompile_DuplicateTarget(t *testing.T) {
	res := compileString(t, `
declarations:
  - target: Foo
    items_from: {types: u8}
  - target: Foo
    items_from: {types: u16}
`)

	require.Len(t, res.Specifications, 1)
	assert.Equal(t, "u8", res.Specifications[0].DeclaredTypes[0].String())

	require.Len(t, res.Diagnostics.Errors, 1)
	assert.Equal(t, diagnostic.CodeDuplicateTarget, res.Diagnostics.Errors[0].Code)
	assert.Contains(t, res.Diagnostics.Errors[0].Message, "line 3")
}

func TestCompile_Warnings(t *testing.T) {
	res := compileString(t, `
declarations:
  - target: Foo
    items_from:
      types: [u8, u8]
      collections: [vec, vec]
  - target: Empty
`)

	require.True(t, res.Diagnostics.IsValid())
	require.Len(t, res.Specifications, 2)

	var got []string
	for _, w := range res.Diagnostics.Warnings {
		got = append(got, w.Declaration+":"+w.Code)
	}

	assert.ElementsMatch(t, []string{
		"Foo:" + diagnostic.CodeDuplicateKind,
		"Foo:" + diagnostic.CodeDuplicateType,
		"Empty:" + diagnostic.CodeNoShapes,
	}, got)
}

func TestCompile_FileLevelErrors(t *testing.T) {
	t.Run("unsupported version", func(t *testing.T) {
		res := compileString(t, "version: \"2\"\ndeclarations:\n  - target: Foo\n")

		assert.Empty(t, res.Specifications)
		assert.Equal(t, []string{diagnostic.CodeUnsupportedVer}, errorCodes(res.Diagnostics))
		assert.Equal(t, 1, res.Diagnostics.Errors[0].Line)
	})

	t.Run("unknown top-level key", func(t *testing.T) {
		res := compileString(t, "declaration:\n  - target: Foo\n")

		assert.Empty(t, res.Specifications)
		require.Len(t, res.Diagnostics.Errors, 1)
		assert.Equal(t, []string{"declarations"}, res.Diagnostics.Errors[0].Suggestions)
	})
}

func TestCompile_MissingTarget(t *testing.T) {
	res := compileString(t, "declarations:\n  - items_from: {types: u8}\n")

	require.Len(t, res.Diagnostics.Errors, 1)
	assert.Equal(t, diagnostic.CodeMissingField, res.Diagnostics.Errors[0].Code)
	assert.Equal(t, "declarations[0]", res.Diagnostics.Errors[0].Declaration)
}

func TestCompile_TargetMustBeBareName(t *testing.T) {
	res := compileString(t, "declarations:\n  - target: Foo<T>\n    items_from: {types: u8}\n")

	require.Len(t, res.Diagnostics.Errors, 1)
	assert.Equal(t, diagnostic.CodeInvalidType, res.Diagnostics.Errors[0].Code)
	assert.Contains(t, res.Diagnostics.Errors[0].Message, "declare its parameters under generics")
}

func TestCompile_DefaultArityInfo(t *testing.T) {
	res := compileString(t, `
declarations:
  - target: Bare
    items_from:
      tuples:
  - target: Flag
    items_from:
      tuples: true
  - target: Counted
    items_from:
      tuples: 6
`)

	require.True(t, res.Diagnostics.IsValid(), res.Diagnostics.Error())
	require.Len(t, res.Diagnostics.Infos, 2)

	for i, target := range []string{"Bare", "Flag"} {
		info := res.Diagnostics.Infos[i]
		assert.Equal(t, diagnostic.CodeDefaultArity, info.Code)
		assert.Equal(t, target, info.Declaration)
		assert.Equal(t, "items_from.tuples", info.Path)
		assert.Equal(t, "tuples defaults to arity 1..=6", info.Message)
	}

	assert.Equal(t, ir.DefaultArityRange(), res.Lookup("Counted").TupleArity)
}
