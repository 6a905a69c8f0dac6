// Package engine turns a Specification into the full set of implementation
// descriptors for one target.
//
// For every enabled axis (IntoItems, TryIntoItems, IntoRows, TryIntoRows) the
// engine enumerates the accepted shapes (declared types, each tuple arity in
// range, each collection kind, and optionally the target itself) and resolves,
// per shape:
//   - the impl generic parameters, ordered lifetimes, then the error
//     parameter, then type and const parameters
//   - the where-clause, the target's own bounds followed by shape bounds
//   - the associated types, including the nested Either sum type that unifies
//     heterogeneous tuple rows
//   - the body expression
//
// Generation is a single deterministic pass with no I/O and no shared state.
// A Specification that fails validation is rejected before any descriptor is
// produced.
package engine
