// Package eval executes descriptor bodies over Go values.
//
// The engine produces impls as expression trees. This package interprets
// those trees directly so the run-time contract of the generated code can be
// checked without compiling it: items come out one per leaf in source order,
// fallible iteration stops at the first failing conversion, and tuple rows
// are tagged into the nested sum type by position.
//
// Values model the source shapes: Scalar for a single value of a named type,
// Tuple, and Vec, Slice and Array for the collection kinds. Conversions are
// plain Go functions keyed by source type name. Trait dispatch picks the
// descriptor of the requested axis whose shape matches the run-time value,
// the way the host compiler would select an impl.
//
// Iteration is lazy: a conversion inside a mapped or chained iterator runs
// only when the consumer reaches it. Every conversion is logged, so tests can
// assert which conversions were, and were not, performed.
package eval
