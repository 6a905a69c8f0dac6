package engine

import (
	"itemize-generator/internal/ir"
)

// shapeParams are the parameters a shape introduces on its own.
type shapeParams struct {
	lifetimes []ir.GenericParam
	params    []ir.GenericParam
}

// lifetimesOf returns bound-free lifetime parameters for every lifetime in t.
func lifetimesOf(t ir.TypeExpr) []ir.GenericParam {
	names := ir.Lifetimes(t)
	out := make([]ir.GenericParam, len(names))

	for i, n := range names {
		out[i] = ir.LifetimeParam(n)
	}

	return out
}

// composeGenerics orders impl parameters: lifetimes (shape, then target,
// then those of a fixed error type, deduplicated by name), then the error
// parameter if any, then the shape's type and const parameters, then the
// target's.
func composeGenerics(shape shapeParams, errParam *ir.GenericParam, errLifetimes, target []ir.GenericParam) []ir.GenericParam {
	var (
		lifetimes []ir.GenericParam
		rest      []ir.GenericParam
		index     = map[string]int{}
	)

	addLifetime := func(p ir.GenericParam) {
		if i, ok := index[p.Name]; ok {
			lifetimes[i].Bounds = mergeBounds(lifetimes[i].Bounds, p.Bounds)
			return
		}

		index[p.Name] = len(lifetimes)
		lifetimes = append(lifetimes, p)
	}

	for _, p := range shape.lifetimes {
		addLifetime(p)
	}

	for _, p := range target {
		if p.Kind == ir.ParamLifetime {
			addLifetime(p)
		}
	}

	for _, p := range errLifetimes {
		addLifetime(p)
	}

	seen := map[string]struct{}{}
	addRest := func(p ir.GenericParam) {
		if _, ok := seen[p.Name]; ok {
			return
		}

		seen[p.Name] = struct{}{}
		rest = append(rest, p)
	}

	for _, p := range shape.params {
		addRest(p)
	}

	for _, p := range target {
		if p.Kind != ir.ParamLifetime {
			addRest(p)
		}
	}

	out := make([]ir.GenericParam, 0, len(lifetimes)+len(rest)+1)
	out = append(out, lifetimes...)

	if errParam != nil {
		out = append(out, *errParam)
	}

	return append(out, rest...)
}

func mergeBounds(have, more []ir.TypeExpr) []ir.TypeExpr {
	out := append([]ir.TypeExpr(nil), have...)

	for _, b := range more {
		dup := false

		for _, h := range out {
			if ir.Equal(h, b) {
				dup = true
				break
			}
		}

		if !dup {
			out = append(out, b)
		}
	}

	return out
}

// generics composes the impl parameters for this scope.
func (sc *scope) generics(shape shapeParams) []ir.GenericParam {
	return composeGenerics(shape, sc.errParam, sc.errLifetimes, sc.spec.Generics)
}
