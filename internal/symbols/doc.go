// Package symbols allocates fresh identifiers for generated implementations.
//
// A Table is created per descriptor and seeded with every name the user can
// see in that descriptor's scope (target generics, identifiers inside declared
// types and bounds, the error type). Fresh names are derived from a reserved
// double-underscore base and suffixed until they are unused, so synthesized
// parameters and bindings never shadow or collide with user-chosen names.
package symbols
