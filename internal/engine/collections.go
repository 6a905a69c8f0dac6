package engine

import (
	"fmt"

	"itemize-generator/internal/ir"
	"itemize-generator/internal/symbols"
)

// collectionVars describes one collection kind in terms of fresh names.
type collectionVars struct {
	params shapeParams
	// self is the implementing type: Vec<__Item>, &'__a [__Item] or [__Item; __N].
	self ir.TypeExpr
	// elem is the type each element is yielded as: owned, or borrowed for slices.
	elem ir.TypeExpr
	// iter is the native iterator type over elem.
	iter ir.TypeExpr
	// iterate produces iter from self.
	iterate ir.Expr
}

func (sc *scope) collectionVars(kind ir.CollectionKind) (collectionVars, error) {
	item := ir.TypeParam(sc.names.Fresh(symbols.ElementParam))
	itemRef := item.Ref()

	switch kind {
	case ir.CollectionVec:
		return collectionVars{
			params:  shapeParams{params: []ir.GenericParam{item}},
			self:    ir.Named(pathVec, itemRef),
			elem:    itemRef,
			iter:    ir.Named(pathVecIter, itemRef),
			iterate: ir.Method(ir.SelfExpr, "into_iter"),
		}, nil
	case ir.CollectionSlice:
		lt := ir.LifetimeParam(sc.names.FreshLifetime(symbols.SliceLifetime))
		elem := &ir.Ref{Lifetime: lt.Name, Elem: itemRef}

		return collectionVars{
			params: shapeParams{
				lifetimes: []ir.GenericParam{lt},
				params:    []ir.GenericParam{item},
			},
			self:    &ir.Ref{Lifetime: lt.Name, Elem: &ir.Slice{Elem: itemRef}},
			elem:    elem,
			iter:    ir.Named(pathSliceIter, lt.Ref(), itemRef),
			iterate: ir.Method(ir.SelfExpr, "iter"),
		}, nil
	case ir.CollectionArray:
		n := ir.ConstParam(sc.names.Fresh(symbols.LengthParam), ir.Named(typeUsize))

		return collectionVars{
			params:  shapeParams{params: []ir.GenericParam{item, n}},
			self:    &ir.Array{Elem: itemRef, Len: n.Ref()},
			elem:    itemRef,
			iter:    arrayIterOf(itemRef, n.Ref()),
			iterate: ir.Method(ir.SelfExpr, "into_iter"),
		}, nil
	default:
		return collectionVars{}, fmt.Errorf("unknown collection kind %d", int(kind))
	}
}

// collection builds the descriptor for one collection kind. Items map each
// element through the target conversion; rows map each element through its
// own items conversion.
func (sc *scope) collection(kind ir.CollectionKind) (*ir.Descriptor, error) {
	cv, err := sc.collectionVars(kind)
	if err != nil {
		return nil, err
	}

	d := sc.descriptor(ir.CollectionShape(kind), cv.self)
	d.Generics = sc.generics(cv.params)

	if sc.axis.Kind == ir.KindItems {
		d.Where = sc.where(sc.convertible(cv.elem))
		d.Assoc = []ir.AssocType{{
			Name: ir.AssocIntoIter,
			Type: mapOf(cv.iter, fnPtr(cv.elem, sc.itemType())),
		}}
		d.Body = ir.Method(cv.iterate, "map", sc.convertFn(cv.elem))

		return d, nil
	}

	d.Where = sc.where(sc.flattenable(cv.elem))
	d.Assoc = []ir.AssocType{
		{Name: ir.AssocRowIter, Type: sc.intoIterOf(cv.elem)},
		{Name: ir.AssocRows, Type: mapOf(cv.iter, fnPtr(cv.elem, &ir.SelfAssoc{Assoc: ir.AssocRowIter}))},
	}
	d.Body = ir.Method(cv.iterate, "map", sc.flattenFn(cv.elem))

	return d, nil
}
