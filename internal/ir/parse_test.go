package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType_RoundTrip(t *testing.T) {
	tests := []struct {
		input string
		want  string
		node  TypeNode
	}{
		{"String", "String", TypeNodePath},
		{"  char ", "char", TypeNodePath},
		{"&'a str", "&'a str", TypeNodeRef},
		{"&str", "&str", TypeNodeRef},
		{"&'a mut Vec<T>", "&'a mut Vec<T>", TypeNodeRef},
		{"::std::vec::Vec<u8>", "::std::vec::Vec<u8>", TypeNodePath},
		{"HashMap<K,V>", "HashMap<K, V>", TypeNodePath},
		{"(A, B)", "(A, B)", TypeNodeTuple},
		{"(A,)", "(A,)", TypeNodeTuple},
		{"(A)", "A", TypeNodePath},
		{"()", "()", TypeNodeTuple},
		{"[u8; 4]", "[u8; 4]", TypeNodeArray},
		{"[T; N]", "[T; N]", TypeNodeArray},
		{"[T]", "[T]", TypeNodeSlice},
		{"&'a [T]", "&'a [T]", TypeNodeRef},
		{"<T as IntoItems<Foo>>::IntoIter", "<T as IntoItems<Foo>>::IntoIter", TypeNodeProjection},
		{"Self::RowIter", "Self::RowIter", TypeNodeSelfAssoc},
		{"fn(A) -> B", "fn(A) -> B", TypeNodeFnPtr},
		{"fn()", "fn()", TypeNodeFnPtr},
		{"Cow<'a, str>", "Cow<'a, str>", TypeNodePath},
		{"Option<Option<T>>", "Option<Option<T>>", TypeNodePath},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseType(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, tt.node, got.Node())

			again, err := ParseType(got.String())
			require.NoError(t, err)
			assert.Equal(t, got.String(), again.String())
		})
	}
}

func TestParseType_Errors(t *testing.T) {
	tests := []string{
		"",
		"Vec<",
		"&'",
		"[T; &U]",
		"(A, B",
		"A B",
		"<T as Trait>",
		"Foo$",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := ParseType(input)
			require.Error(t, err)

			var pe *ParseError
			assert.ErrorAs(t, err, &pe)
		})
	}
}

func TestParsePredicate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"T: Clone", "T: Clone"},
		{"T: Clone + 'a", "T: Clone + 'a"},
		{"'a: 'b", "'a: 'b"},
		{"T: ?Sized", "T: ?Sized"},
		{"Vec<T>: ::std::fmt::Debug", "Vec<T>: ::std::fmt::Debug"},
		{"<T as Iterator>::Item: Into<U>", "<T as Iterator>::Item: Into<U>"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePredicate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}

	_, err := ParsePredicate("T")
	require.Error(t, err)

	_, err = ParsePredicate("T:")
	require.Error(t, err)
}

func TestParseGenericParam(t *testing.T) {
	tests := []struct {
		input string
		kind  ParamKind
		name  string
		want  string
	}{
		{"'a", ParamLifetime, "'a", "'a"},
		{"'a: 'b", ParamLifetime, "'a", "'a: 'b"},
		{"T", ParamType, "T", "T"},
		{"T: Clone + Send", ParamType, "T", "T: Clone + Send"},
		{"const N: usize", ParamConst, "N", "const N: usize"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseGenericParam(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, got.Kind)
			assert.Equal(t, tt.name, got.Name)
			assert.Equal(t, tt.want, got.String())
		})
	}

	for _, bad := range []string{"T = u8", "const N", "1", ""} {
		_, err := ParseGenericParam(bad)
		assert.Error(t, err, bad)
	}
}
