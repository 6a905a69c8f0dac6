// Package ir defines the intermediate representation shared by the generation
// engine and the emission sinks.
//
// A Specification is the validated input for one annotated declaration. The
// engine turns it into a DescriptorSet: one Descriptor per (Kind, Variant, Shape)
// combination, each fully resolved into generic parameters, where-predicates,
// associated types and a body expression.
//
// Key types:
//   - TypeExpr: type trees (paths, references, tuples, arrays, slices,
//     projections, fn pointers)
//   - Expr: body expression trees (paths, calls, method chains, casts,
//     closures, destructuring blocks)
//   - GenericParam / Predicate: impl generics and where-clause entries
//   - Shape / Axis: what a descriptor accepts and which conversion it realizes
//
// ParseType, ParsePredicate and ParseGenericParam read the textual forms used by
// declaration files ("&'a str", "T: Clone + 'a", "const N: usize").
package ir
