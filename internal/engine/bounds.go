package engine

import (
	"itemize-generator/internal/ir"
)

// composeWhere merges the target's own predicates, copied verbatim, with the
// predicates a shape requires. The result is a conjunction.
func composeWhere(target []ir.Predicate, shape ...[]ir.Predicate) []ir.Predicate {
	out := append([]ir.Predicate(nil), target...)

	seen := make(map[string]struct{}, len(out))
	for _, p := range out {
		seen[p.String()] = struct{}{}
	}

	for _, group := range shape {
		for _, p := range group {
			key := p.String()
			if _, ok := seen[key]; ok {
				continue
			}

			seen[key] = struct{}{}
			out = append(out, p)
		}
	}

	return out
}

// where merges the target's predicates with the given shape predicates.
func (sc *scope) where(shape ...[]ir.Predicate) []ir.Predicate {
	return composeWhere(sc.spec.Bounds, shape...)
}

// convertible requires the target to be constructible from src: From for
// direct descriptors, TryFrom with an error convertible into the scope's
// error type for fallible ones.
func (sc *scope) convertible(src ir.TypeExpr) []ir.Predicate {
	if sc.errType == nil {
		return []ir.Predicate{ir.Bound(sc.target, fromTrait(src))}
	}

	return []ir.Predicate{
		ir.Bound(sc.target, tryFromTrait(src)),
		ir.Bound(tryFromError(sc.target, src), intoTrait(sc.errType)),
	}
}

// flattenable requires src to implement the items trait of the scope's variant.
func (sc *scope) flattenable(src ir.TypeExpr) []ir.Predicate {
	return []ir.Predicate{ir.Bound(src, sc.itemsTrait())}
}
