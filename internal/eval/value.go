package eval

import (
	"fmt"
	"iter"
	"strings"
)

// Value is a run-time value flowing through a descriptor body.
type Value any

// Scalar is a single value of a named type, source or target.
type Scalar struct {
	Type string
	V    any
}

// Of returns a Scalar of the named type.
func Of(typ string, v any) Scalar {
	return Scalar{Type: typ, V: v}
}

func (s Scalar) String() string {
	return fmt.Sprintf("%s(%#v)", s.Type, s.V)
}

// Tuple is a fixed-arity heterogeneous value.
type Tuple []Value

// Vec is an owned growable collection.
type Vec []Value

// Slice is a borrowed view of a collection; its elements are yielded by reference.
type Slice []Value

// Array is a fixed-length collection.
type Array []Value

// Result is the item type of fallible iterators.
type Result struct {
	Val Value
	Err error
}

// Either tags a row iterator with the branch it came from.
type Either struct {
	Right bool
	V     Value
}

// Branch returns the tag path down to the wrapped iterator, e.g. "Right/Left".
// An untagged value has an empty path.
func Branch(v Value) string {
	var parts []string

	for {
		e, ok := v.(Either)
		if !ok {
			return strings.Join(parts, "/")
		}

		if e.Right {
			parts = append(parts, "Right")
		} else {
			parts = append(parts, "Left")
		}

		v = e.V
	}
}

// unwrapEither strips every Either tag from v.
func unwrapEither(v Value) Value {
	for {
		e, ok := v.(Either)
		if !ok {
			return v
		}

		v = e.V
	}
}

// Func is a callable value: a conversion, constructor or closure.
type Func func(args ...Value) Value

// seq is a lazy iterator value.
type seq = iter.Seq[Value]

func seqOf(vs ...Value) seq {
	return func(yield func(Value) bool) {
		for _, v := range vs {
			if !yield(v) {
				return
			}
		}
	}
}

func mapSeq(s seq, f Func) seq {
	return func(yield func(Value) bool) {
		for v := range s {
			if !yield(f(v)) {
				return
			}
		}
	}
}

func chainSeq(a, b seq) seq {
	return func(yield func(Value) bool) {
		for v := range a {
			if !yield(v) {
				return
			}
		}

		for v := range b {
			if !yield(v) {
				return
			}
		}
	}
}

// Row is one collected row.
type Row struct {
	// Branch is the sum-type tag path of the row, empty when untagged.
	Branch string
	Items  []Value
}
