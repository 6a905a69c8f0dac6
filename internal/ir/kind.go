package ir

//go:generate go tool stringer -type=Kind,Variant,ShapeKind,CollectionKind,DataShape,ParamKind -linecomment -output=kind_string.go

// Kind selects between a flat sequence of items and a sequence of rows.
type Kind int

const (
	KindItems Kind = iota // items
	KindRows              // rows
)

// Variant selects between infallible and error-propagating conversion.
type Variant int

const (
	VariantDirect   Variant = iota // direct
	VariantFallible                // fallible
)

// ShapeKind tags the accepted input shape of a descriptor.
type ShapeKind int

const (
	ShapeType       ShapeKind = iota // type
	ShapeTuple                       // tuple
	ShapeCollection                  // collection
	ShapeIdentity                    // identity
)

// CollectionKind is one of the recognized collection keywords.
type CollectionKind int

const (
	CollectionVec   CollectionKind = iota // vec
	CollectionSlice                       // slice
	CollectionArray                       // array
)

// DataShape is the kind of declaration the conversions are generated for.
type DataShape int

const (
	DataStruct DataShape = iota // struct
	DataEnum                    // enum
	DataUnion                   // union
)

// AllCollectionKinds lists the collection kinds in canonical generation order.
var AllCollectionKinds = []CollectionKind{CollectionVec, CollectionSlice, CollectionArray}

// ParseCollectionKind maps a collection keyword to its kind.
func ParseCollectionKind(s string) (CollectionKind, bool) {
	for _, k := range AllCollectionKinds {
		if k.String() == s {
			return k, true
		}
	}

	return 0, false
}

// ParseDataShape maps a data keyword to its shape.
func ParseDataShape(s string) (DataShape, bool) {
	for _, d := range []DataShape{DataStruct, DataEnum, DataUnion} {
		if d.String() == s {
			return d, true
		}
	}

	return 0, false
}

// CollectionSet is a bit set of collection kinds.
type CollectionSet uint8

const (
	CollectionsNone CollectionSet = 0
	CollectionsAll  CollectionSet = 1<<CollectionVec | 1<<CollectionSlice | 1<<CollectionArray
)

// NewCollectionSet returns a set holding the given kinds.
func NewCollectionSet(kinds ...CollectionKind) CollectionSet {
	var s CollectionSet
	for _, k := range kinds {
		s = s.With(k)
	}

	return s
}

// With returns s with k added.
func (s CollectionSet) With(k CollectionKind) CollectionSet {
	return s | 1<<k
}

// Has reports whether k is in the set.
func (s CollectionSet) Has(k CollectionKind) bool {
	return s&(1<<k) != 0
}

// Kinds returns the members in canonical order (vec, slice, array).
func (s CollectionSet) Kinds() []CollectionKind {
	var out []CollectionKind

	for _, k := range AllCollectionKinds {
		if s.Has(k) {
			out = append(out, k)
		}
	}

	return out
}

// IsValid reports whether the set holds only recognized kinds.
func (s CollectionSet) IsValid() bool {
	return s&^CollectionsAll == 0
}

// Axis is a (Kind, Variant) pair.
type Axis struct {
	Kind    Kind
	Variant Variant
}

// AllAxes lists the axes in canonical generation order.
var AllAxes = []Axis{
	{KindItems, VariantDirect},
	{KindItems, VariantFallible},
	{KindRows, VariantDirect},
	{KindRows, VariantFallible},
}

// TraitName returns the name of the conversion abstraction realized on this axis.
func (a Axis) TraitName() string {
	switch {
	case a.Kind == KindItems && a.Variant == VariantDirect:
		return "IntoItems"
	case a.Kind == KindItems:
		return "TryIntoItems"
	case a.Variant == VariantDirect:
		return "IntoRows"
	default:
		return "TryIntoRows"
	}
}

// MethodName returns the conversion method name for this axis.
func (a Axis) MethodName() string {
	switch {
	case a.Kind == KindItems && a.Variant == VariantDirect:
		return "into_items"
	case a.Kind == KindItems:
		return "try_into_items"
	case a.Variant == VariantDirect:
		return "into_rows"
	default:
		return "try_into_rows"
	}
}

// IsFallible reports whether the axis propagates conversion errors.
func (a Axis) IsFallible() bool {
	return a.Variant == VariantFallible
}

// String returns the trait name.
func (a Axis) String() string {
	return a.TraitName()
}

// AxisSet is a bit set of axes, indexed by position in AllAxes.
type AxisSet uint8

// AxesAll selects every axis.
const AxesAll AxisSet = 1<<4 - 1

func axisIndex(a Axis) int {
	return int(a.Kind)*2 + int(a.Variant)
}

// With returns s with a added.
func (s AxisSet) With(a Axis) AxisSet {
	return s | 1<<axisIndex(a)
}

// Has reports whether a is in the set.
func (s AxisSet) Has(a Axis) bool {
	return s&(1<<axisIndex(a)) != 0
}

// Axes returns the members in canonical order.
func (s AxisSet) Axes() []Axis {
	var out []Axis

	for _, a := range AllAxes {
		if s.Has(a) {
			out = append(out, a)
		}
	}

	return out
}

// ParseAxis maps a trait name (IntoItems, TryIntoItems, IntoRows, TryIntoRows) to its axis.
func ParseAxis(name string) (Axis, bool) {
	for _, a := range AllAxes {
		if a.TraitName() == name {
			return a, true
		}
	}

	return Axis{}, false
}
