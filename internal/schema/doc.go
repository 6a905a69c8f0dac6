// Package schema provides the YAML declaration file format, its loader, and
// the compiler that turns each declaration into a validated ir.Specification.
//
// # Key capabilities
//
//   - Declare accepted single types, tuple arities, collection kinds and an
//     optional fixed error type per target
//   - Choose which of the four conversions to derive
//   - Strict key checking with "did you mean" suggestions and line numbers
//   - Per-declaration failure: one bad declaration does not stop the others
//
// # Schema Overview
//
// The declaration file has the following structure:
//
//	version: "1"
//	crate: itemize
//	declarations:
//	  - target: Wrapped
//	    generics: ["'a", "T: Clone"]
//	    where: ["T: Send"]
//	    data: struct
//	    derive: [IntoItems, TryIntoItems, IntoRows, TryIntoRows]
//	    self_impl: false
//	    items_from:
//	      types: [String, char, "&'a str"]
//	      tuples: 1..=3
//	      collections: [vec, slice, array]
//	      error_type: ParseError
//
// # Tuple arity forms
//
//	tuples:             # bare: 1..=6
//	tuples: true        # same as bare
//	tuples: 4           # 1..=4
//	tuples: 2..=5       # explicit inclusive range
//	tuples: exact(3)    # exactly 3
//	tuples: {exact: 3}  # exactly 3
//	tuples: false       # no tuples
package schema
