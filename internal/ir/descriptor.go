package ir

import (
	"fmt"
)

// Shape is the kind of input value a descriptor accepts.
type Shape struct {
	Kind ShapeKind
	// Type is the declared source type (ShapeType only).
	Type TypeExpr
	// Arity is the tuple length (ShapeTuple only).
	Arity int
	// Collection is the collection kind (ShapeCollection only).
	Collection CollectionKind
}

// TypeShape returns the single-value shape for t.
func TypeShape(t TypeExpr) Shape {
	return Shape{Kind: ShapeType, Type: t}
}

// TupleShape returns the tuple shape of the given arity.
func TupleShape(arity int) Shape {
	return Shape{Kind: ShapeTuple, Arity: arity}
}

// CollectionShape returns the collection shape of the given kind.
func CollectionShape(kind CollectionKind) Shape {
	return Shape{Kind: ShapeCollection, Collection: kind}
}

// IdentityShape returns the shape of the target itself.
func IdentityShape() Shape {
	return Shape{Kind: ShapeIdentity}
}

// String returns a compact label such as "tuple(3)" or "type(&'a str)".
func (s Shape) String() string {
	switch s.Kind {
	case ShapeType:
		return fmt.Sprintf("type(%s)", s.Type)
	case ShapeTuple:
		return fmt.Sprintf("tuple(%d)", s.Arity)
	case ShapeCollection:
		return fmt.Sprintf("collection(%s)", s.Collection)
	default:
		return s.Kind.String()
	}
}

// AssocType is one associated type binding, "type Name = Type;".
type AssocType struct {
	Name string
	Type TypeExpr
}

// Associated type names.
const (
	AssocIntoIter = "IntoIter"
	AssocRowIter  = "RowIter"
	AssocRows     = "Rows"
)

// Descriptor is one fully resolved implementation for a (Kind, Variant, Shape)
// combination. Descriptors are immutable once produced.
type Descriptor struct {
	Axis  Axis
	Shape Shape
	// Trait is the implemented trait, e.g. itemize::TryIntoItems<Foo, __E>.
	Trait *Path
	// SelfType is the implementing type, e.g. (__T0, __T1) or Vec<__Item>.
	SelfType TypeExpr
	// Generics is ordered lifetimes, then the error parameter, then type and const parameters.
	Generics []GenericParam
	Where    []Predicate
	// Assoc holds IntoIter for Items, or RowIter then Rows for Rows.
	Assoc []AssocType
	// Method is the conversion method name; it takes self by value.
	Method string
	// Returns is Self::IntoIter or Self::Rows.
	Returns TypeExpr
	Body    Expr
}

// ID identifies the descriptor within its set, e.g. "TryIntoRows/tuple(2)".
func (d *Descriptor) ID() string {
	return d.Axis.TraitName() + "/" + d.Shape.String()
}

// AssocNamed returns the associated type binding with the given name.
func (d *Descriptor) AssocNamed(name string) (TypeExpr, bool) {
	for _, a := range d.Assoc {
		if a.Name == name {
			return a.Type, true
		}
	}

	return nil, false
}

// Header renders "impl<...> Trait for Self".
func (d *Descriptor) Header() string {
	return "impl" + FormatGenerics(d.Generics) + " " + d.Trait.String() + " for " + d.SelfType.String()
}

// DescriptorSet is the output of one generation pass for one Specification.
type DescriptorSet struct {
	Target      string
	Descriptors []*Descriptor
}

// Len returns the number of descriptors.
func (s *DescriptorSet) Len() int {
	return len(s.Descriptors)
}

// ForAxis returns the descriptors generated on axis a, in generation order.
func (s *DescriptorSet) ForAxis(a Axis) []*Descriptor {
	var out []*Descriptor

	for _, d := range s.Descriptors {
		if d.Axis == a {
			out = append(out, d)
		}
	}

	return out
}

// Lookup returns the descriptor with the given ID.
func (s *DescriptorSet) Lookup(id string) (*Descriptor, bool) {
	for _, d := range s.Descriptors {
		if d.ID() == id {
			return d, true
		}
	}

	return nil, false
}

// IDs lists descriptor IDs in generation order.
func (s *DescriptorSet) IDs() []string {
	out := make([]string, len(s.Descriptors))
	for i, d := range s.Descriptors {
		out[i] = d.ID()
	}

	return out
}
