package ir

import (
	"strings"
)

// TypeNode tags the concrete form of a TypeExpr.
type TypeNode int

const (
	TypeNodePath TypeNode = iota
	TypeNodeLifetime
	TypeNodeConst
	TypeNodeRef
	TypeNodeTuple
	TypeNodeArray
	TypeNodeSlice
	TypeNodeProjection
	TypeNodeSelfAssoc
	TypeNodeFnPtr
)

// TypeExpr is a node of a type tree.
type TypeExpr interface {
	Node() TypeNode
	String() string
}

// Path is a (possibly qualified) named type with generic arguments,
// e.g. "Wrapped", "::std::iter::Once<T>".
// Generic parameters are also represented as single-segment paths.
type Path struct {
	Name string
	Args []TypeExpr
}

// Lifetime is a lifetime argument such as "'a". Name includes the quote.
type Lifetime struct {
	Name string
}

// Const is a literal const argument such as "3".
type Const struct {
	Value string
}

// Ref is a borrowed reference "&'a mut T".
type Ref struct {
	Lifetime string
	Mut      bool
	Elem     TypeExpr
}

// Tuple is a tuple type. A zero-length tuple is the unit type.
type Tuple struct {
	Elems []TypeExpr
}

// Array is a fixed-length array "[T; N]".
type Array struct {
	Elem TypeExpr
	Len  TypeExpr
}

// Slice is an unsized slice "[T]".
type Slice struct {
	Elem TypeExpr
}

// Projection is an associated type projection "<Self as Trait>::Assoc".
type Projection struct {
	Self  TypeExpr
	Trait *Path
	Assoc string
}

// SelfAssoc names an associated type of the implementation itself, "Self::Assoc".
type SelfAssoc struct {
	Assoc string
}

// FnPtr is a function pointer type "fn(A, B) -> R".
type FnPtr struct {
	Params []TypeExpr
	Result TypeExpr
}

func (*Path) Node() TypeNode       { return TypeNodePath }
func (*Lifetime) Node() TypeNode   { return TypeNodeLifetime }
func (*Const) Node() TypeNode      { return TypeNodeConst }
func (*Ref) Node() TypeNode        { return TypeNodeRef }
func (*Tuple) Node() TypeNode      { return TypeNodeTuple }
func (*Array) Node() TypeNode      { return TypeNodeArray }
func (*Slice) Node() TypeNode      { return TypeNodeSlice }
func (*Projection) Node() TypeNode { return TypeNodeProjection }
func (*SelfAssoc) Node() TypeNode  { return TypeNodeSelfAssoc }
func (*FnPtr) Node() TypeNode      { return TypeNodeFnPtr }

// Named builds a path type with the given arguments.
func Named(name string, args ...TypeExpr) *Path {
	return &Path{Name: name, Args: args}
}

func (p *Path) String() string {
	if len(p.Args) == 0 {
		return p.Name
	}

	return p.Name + "<" + joinTypes(p.Args) + ">"
}

func (l *Lifetime) String() string { return l.Name }

func (c *Const) String() string { return c.Value }

func (r *Ref) String() string {
	var sb strings.Builder

	sb.WriteString("&")

	if r.Lifetime != "" {
		sb.WriteString(r.Lifetime)
		sb.WriteString(" ")
	}

	if r.Mut {
		sb.WriteString("mut ")
	}

	sb.WriteString(r.Elem.String())

	return sb.String()
}

func (t *Tuple) String() string {
	if len(t.Elems) == 1 {
		return "(" + t.Elems[0].String() + ",)"
	}

	return "(" + joinTypes(t.Elems) + ")"
}

func (a *Array) String() string {
	return "[" + a.Elem.String() + "; " + a.Len.String() + "]"
}

func (s *Slice) String() string {
	return "[" + s.Elem.String() + "]"
}

func (p *Projection) String() string {
	return "<" + p.Self.String() + " as " + p.Trait.String() + ">::" + p.Assoc
}

func (s *SelfAssoc) String() string {
	return "Self::" + s.Assoc
}

func (f *FnPtr) String() string {
	s := "fn(" + joinTypes(f.Params) + ")"
	if f.Result != nil {
		s += " -> " + f.Result.String()
	}

	return s
}

func joinTypes(ts []TypeExpr) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}

	return strings.Join(parts, ", ")
}

// Lifetimes returns the lifetimes mentioned in t, in order of first appearance
// and deduplicated by name.
func Lifetimes(t TypeExpr) []string {
	var (
		out  []string
		seen = map[string]struct{}{}
	)

	Walk(t, func(n TypeExpr) {
		var name string

		switch n := n.(type) {
		case *Lifetime:
			name = n.Name
		case *Ref:
			name = n.Lifetime
		}

		if name == "" || name == "'static" || name == "'_" {
			return
		}

		if _, ok := seen[name]; ok {
			return
		}

		seen[name] = struct{}{}
		out = append(out, name)
	})

	return out
}

// Walk calls fn for t and every type nested in it, parents before children.
func Walk(t TypeExpr, fn func(TypeExpr)) {
	if t == nil {
		return
	}

	fn(t)

	switch n := t.(type) {
	case *Path:
		for _, a := range n.Args {
			Walk(a, fn)
		}
	case *Ref:
		Walk(n.Elem, fn)
	case *Tuple:
		for _, e := range n.Elems {
			Walk(e, fn)
		}
	case *Array:
		Walk(n.Elem, fn)
		Walk(n.Len, fn)
	case *Slice:
		Walk(n.Elem, fn)
	case *Projection:
		Walk(n.Self, fn)
		Walk(n.Trait, fn)
	case *FnPtr:
		for _, p := range n.Params {
			Walk(p, fn)
		}

		Walk(n.Result, fn)
	}
}

// Idents returns the single-segment names and lifetimes mentioned in t.
// Qualified paths contribute nothing; they cannot collide with generic parameters.
func Idents(t TypeExpr) []string {
	var out []string

	Walk(t, func(n TypeExpr) {
		switch n := n.(type) {
		case *Path:
			if !strings.Contains(n.Name, "::") {
				out = append(out, n.Name)
			}
		case *Lifetime:
			out = append(out, n.Name)
		case *Ref:
			if n.Lifetime != "" {
				out = append(out, n.Lifetime)
			}
		}
	})

	return out
}

// Equal reports whether a and b print identically.
func Equal(a, b TypeExpr) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.String() == b.String()
}
