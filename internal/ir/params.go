package ir

import "strings"

// ParamKind distinguishes the three kinds of generic parameter.
type ParamKind int

const (
	ParamLifetime ParamKind = iota // lifetime
	ParamType                      // type
	ParamConst                     // const
)

// GenericParam is one entry of an impl or type generic parameter list.
type GenericParam struct {
	Kind ParamKind
	// Name includes the leading quote for lifetimes.
	Name string
	// Bounds are inline bounds: lifetimes for lifetime params, trait paths
	// or lifetimes for type params.
	Bounds []TypeExpr
	// ConstType is the type of a const parameter.
	ConstType TypeExpr
}

// LifetimeParam returns a bound-free lifetime parameter.
func LifetimeParam(name string) GenericParam {
	return GenericParam{Kind: ParamLifetime, Name: name}
}

// TypeParam returns a type parameter with optional inline bounds.
func TypeParam(name string, bounds ...TypeExpr) GenericParam {
	return GenericParam{Kind: ParamType, Name: name, Bounds: bounds}
}

// ConstParam returns a const parameter of the given type.
func ConstParam(name string, typ TypeExpr) GenericParam {
	return GenericParam{Kind: ParamConst, Name: name, ConstType: typ}
}

// Ref returns the type (or lifetime, or const) expression naming this parameter.
func (p GenericParam) Ref() TypeExpr {
	if p.Kind == ParamLifetime {
		return &Lifetime{Name: p.Name}
	}

	return &Path{Name: p.Name}
}

func (p GenericParam) String() string {
	switch p.Kind {
	case ParamConst:
		return "const " + p.Name + ": " + p.ConstType.String()
	default:
		if len(p.Bounds) == 0 {
			return p.Name
		}

		return p.Name + ": " + joinBounds(p.Bounds)
	}
}

// Predicate is one where-clause entry, "Subject: B1 + B2".
type Predicate struct {
	Subject TypeExpr
	Bounds  []TypeExpr
}

// Bound returns the predicate "subject: bounds...".
func Bound(subject TypeExpr, bounds ...TypeExpr) Predicate {
	return Predicate{Subject: subject, Bounds: bounds}
}

func (p Predicate) String() string {
	return p.Subject.String() + ": " + joinBounds(p.Bounds)
}

func joinBounds(bounds []TypeExpr) string {
	parts := make([]string, len(bounds))
	for i, b := range bounds {
		parts[i] = b.String()
	}

	return strings.Join(parts, " + ")
}

// FormatGenerics renders a parameter list as "<'a, E, T>", or "" when empty.
func FormatGenerics(params []GenericParam) string {
	if len(params) == 0 {
		return ""
	}

	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.String()
	}

	return "<" + strings.Join(parts, ", ") + ">"
}
