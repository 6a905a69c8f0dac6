package eval

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemize-generator/internal/engine"
	"itemize-generator/internal/ir"
)

var errBadInt = errors.New("BadInt")

func generate(t *testing.T, s *ir.Specification) *ir.DescriptorSet {
	t.Helper()

	set, err := engine.New(engine.DefaultConfig()).Generate(s)
	require.NoError(t, err)

	return set
}

// wrapped: types=[String, char], tuples=1..=2, collections={vec}.
func wrapped(t *testing.T, mutate ...func(*ir.Specification)) *Evaluator {
	t.Helper()

	s := ir.NewSpecification("Wrapped")
	s.DeclaredTypes = []ir.TypeExpr{ir.Named("String"), ir.Named("char")}
	s.TupleArity = ir.UpTo(2)
	s.Collections = ir.NewCollectionSet(ir.CollectionVec)

	for _, m := range mutate {
		m(s)
	}

	return New(generate(t, s), Conversions{
		"String": func(v any) (any, error) { return v, nil },
		"char":   func(v any) (any, error) { return string(v.(rune)), nil },
	})
}

// integer: TryFrom<String> with a parse error, error_type fixed to ParseError.
func integer(t *testing.T, mutate ...func(*ir.Specification)) *Evaluator {
	t.Helper()

	s := ir.NewSpecification("Int")
	s.DeclaredTypes = []ir.TypeExpr{ir.Named("String")}
	s.TupleArity = ir.UpTo(5)
	s.Collections = ir.CollectionsAll
	s.ErrorType = ir.Named("ParseError")

	for _, m := range mutate {
		m(s)
	}

	return New(generate(t, s), Conversions{
		"String": func(v any) (any, error) {
			n, err := strconv.Atoi(v.(string))
			if err != nil {
				return nil, fmt.Errorf("%w: %q", errBadInt, v)
			}

			return n, nil
		},
	})
}

func str(s string) Scalar { return Of("String", s) }
func chr(r rune) Scalar   { return Of("char", r) }
func w(s string) Value    { return Of("Wrapped", s) }
func num(n int) Value     { return Of("Int", n) }

func TestItems_WrappedScenario(t *testing.T) {
	e := wrapped(t)

	tests := []struct {
		name  string
		input Value
		want  []Value
	}{
		{name: "string", input: str("hi"), want: []Value{w("hi")}},
		{name: "char", input: chr('a'), want: []Value{w("a")}},
		{name: "tuple", input: Tuple{str("x"), chr('y')}, want: []Value{w("x"), w("y")}},
		{name: "vec", input: Vec{chr('a'), chr('b'), chr('c')}, want: []Value{w("a"), w("b"), w("c")}},
		{name: "one-tuple", input: Tuple{str("solo")}, want: []Value{w("solo")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Items(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTryItems_FallibleScenario(t *testing.T) {
	e := integer(t)

	got, err := e.TryItems(str("42"))
	require.NoError(t, err)
	assert.Equal(t, []Value{num(42)}, got)

	got, err = e.TryItems(str("abc"))
	require.ErrorIs(t, err, errBadInt)
	assert.Empty(t, got)
}

func TestItems_ArityCoverage(t *testing.T) {
	e := wrapped(t, func(s *ir.Specification) { s.TupleArity = ir.UpTo(3) })

	for n := 1; n <= 3; n++ {
		tuple := make(Tuple, n)
		for i := range tuple {
			tuple[i] = chr(rune('a' + i))
		}

		got, err := e.Items(tuple)
		require.NoError(t, err, "arity %d", n)
		assert.Len(t, got, n)
	}

	_, err := e.Items(Tuple{chr('a'), chr('b'), chr('c'), chr('d')})
	require.ErrorIs(t, err, ErrNoImpl)
	assert.Contains(t, err.Error(), "a tuple of arity 4")
}

func TestItems_OrderPreservation(t *testing.T) {
	e := integer(t)

	got, err := e.TryItems(Tuple{str("3"), str("1"), str("2")})
	require.NoError(t, err)
	assert.Equal(t, []Value{num(3), num(1), num(2)}, got)
	assert.Equal(t, []string{`String("3")`, `String("1")`, `String("2")`}, e.Log())
}

func TestItems_EmptyCollections(t *testing.T) {
	inputs := map[string]Value{"vec": Vec{}, "slice": Slice{}, "array": Array{}}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			e := integer(t)

			got, err := e.TryItems(input)
			require.NoError(t, err)
			assert.Empty(t, got)

			d := integer(t, func(s *ir.Specification) { s.ErrorType = nil })

			got, err = d.TryItems(input)
			require.NoError(t, err)
			assert.Empty(t, got)

			got, err = d.Items(input)
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}

	e := wrapped(t, func(s *ir.Specification) { s.Collections = ir.CollectionsAll })
	for name, input := range inputs {
		got, err := e.Items(input)
		require.NoError(t, err, name)
		assert.Empty(t, got, name)
	}

	assert.Empty(t, e.Log())
}

func TestTryItems_ShortCircuit(t *testing.T) {
	for name, input := range map[string]Value{
		"vec":   Vec{str("1"), str("2"), str("x"), str("y"), str("z")},
		"slice": Slice{str("1"), str("2"), str("x"), str("y"), str("z")},
		"array": Array{str("1"), str("2"), str("x"), str("y"), str("z")},
		"tuple": Tuple{str("1"), str("2"), str("x"), str("y"), str("z")},
	} {
		t.Run(name, func(t *testing.T) {
			e := integer(t)

			got, err := e.TryItems(input)
			require.ErrorIs(t, err, errBadInt)
			assert.Contains(t, err.Error(), `"x"`)
			assert.Equal(t, []Value{num(1), num(2)}, got)

			// The fourth and fifth elements are never converted.
			assert.Equal(t, []string{`String("1")`, `String("2")`, `String("x")`}, e.Log())
		})
	}
}

func TestSelect(t *testing.T) {
	e := wrapped(t)

	d, err := e.Select(ir.AllAxes[0], Tuple{str("a"), chr('b')})
	require.NoError(t, err)
	assert.Equal(t, "IntoItems/tuple(2)", d.ID())

	_, err = e.Items(Tuple{str("a"), chr('b')})
	require.NoError(t, err)
	assert.Equal(t, []string{`String("a")`, `char(98)`}, e.Log())
}

func TestRows_ShapePreservation(t *testing.T) {
	e := wrapped(t)

	rows, err := e.Rows(Tuple{Vec{chr('a'), chr('b')}, Vec{chr('c'), chr('d'), chr('e')}})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, Row{Branch: "Left", Items: []Value{w("a"), w("b")}}, rows[0])
	assert.Equal(t, Row{Branch: "Right", Items: []Value{w("c"), w("d"), w("e")}}, rows[1])
}

func TestRows_EitherTagging(t *testing.T) {
	e := wrapped(t, func(s *ir.Specification) { s.TupleArity = ir.UpTo(3) })

	rows, err := e.Rows(Tuple{chr('a'), Vec{chr('b'), chr('c')}, Tuple{str("d"), chr('e')}})
	require.NoError(t, err)

	var branches []string
	for _, r := range rows {
		branches = append(branches, r.Branch)
	}

	assert.Equal(t, []string{"Left", "Right/Left", "Right/Right"}, branches)
	assert.Equal(t, []Value{w("d"), w("e")}, rows[2].Items)

	single, err := e.Rows(Tuple{chr('z')})
	require.NoError(t, err)
	assert.Equal(t, []Row{{Items: []Value{w("z")}}}, single)
}

func TestRows_Collection(t *testing.T) {
	e := wrapped(t)

	rows, err := e.Rows(Vec{Tuple{chr('a'), chr('b')}, str("c"), Vec{}})
	require.NoError(t, err)

	assert.Equal(t, []Row{
		{Items: []Value{w("a"), w("b")}},
		{Items: []Value{w("c")}},
		{},
	}, rows)
}

func TestTryRows_StopsAtFirstFailure(t *testing.T) {
	e := integer(t)

	rows, err := e.TryRows(Tuple{Vec{str("1"), str("2")}, Vec{str("3"), str("bad"), str("worse")}})
	require.ErrorIs(t, err, errBadInt)
	assert.Contains(t, err.Error(), `"bad"`)

	assert.Equal(t, []Row{
		{Branch: "Left", Items: []Value{num(1), num(2)}},
		{Branch: "Right", Items: []Value{num(3)}},
	}, rows)
	assert.Len(t, e.Log(), 4)
}

func TestIdentity(t *testing.T) {
	e := wrapped(t, func(s *ir.Specification) { s.SelfImpl = true })

	got, err := e.Items(w("z"))
	require.NoError(t, err)
	assert.Equal(t, []Value{w("z")}, got)
	assert.Empty(t, e.Log())

	rows, err := e.Rows(Tuple{w("a"), Vec{w("b"), chr('c')}})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []Value{w("a")}, rows[0].Items)
	assert.Equal(t, []Value{w("b"), w("c")}, rows[1].Items)

	items, err := e.TryItems(w("y"))
	require.NoError(t, err)
	assert.Equal(t, []Value{w("y")}, items)
}

func TestEvaluationFailures(t *testing.T) {
	t.Run("bare type has no rows", func(t *testing.T) {
		_, err := wrapped(t).Rows(str("x"))
		require.ErrorIs(t, err, ErrNoImpl)
	})

	t.Run("undeclared collection", func(t *testing.T) {
		_, err := wrapped(t).Items(Slice{chr('a')})
		require.ErrorIs(t, err, ErrNoImpl)
		assert.Contains(t, err.Error(), "a slice")
	})

	t.Run("missing conversion", func(t *testing.T) {
		e := New(wrapped(t).set, Conversions{})

		_, err := e.Items(str("x"))
		require.ErrorIs(t, err, ErrNoImpl)
		assert.Contains(t, err.Error(), "no conversion from String into Wrapped")
	})

	t.Run("infallible conversion failing", func(t *testing.T) {
		e := New(wrapped(t).set, Conversions{
			"String": func(any) (any, error) { return nil, errors.New("boom") },
		})

		_, err := e.Items(str("x"))
		require.ErrorIs(t, err, ErrEvaluation)
		assert.Contains(t, err.Error(), "boom")
	})
}

func TestResetLog(t *testing.T) {
	e := wrapped(t)

	_, err := e.Items(str("a"))
	require.NoError(t, err)
	require.Len(t, e.Log(), 1)

	e.ResetLog()
	assert.Empty(t, e.Log())
}

func TestBranch(t *testing.T) {
	assert.Equal(t, "", Branch(Vec{}))
	assert.Equal(t, "Right/Right/Left", Branch(Either{Right: true, V: Either{Right: true, V: Either{V: seqOf()}}}))
}
