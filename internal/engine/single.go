package engine

import (
	"itemize-generator/internal/ir"
)

// single builds the items descriptor for one declared source type. Its
// lifetimes become impl lifetimes so borrowed sources like &'a str work.
func (sc *scope) single(src ir.TypeExpr) *ir.Descriptor {
	d := sc.descriptor(ir.TypeShape(src), src)

	d.Generics = sc.generics(shapeParams{lifetimes: lifetimesOf(src)})
	d.Where = sc.where(sc.convertible(src))
	d.Assoc = []ir.AssocType{{Name: ir.AssocIntoIter, Type: onceOf(sc.itemType())}}
	d.Body = onceCall(sc.convertCall(src, ir.SelfExpr))

	return d
}

// identity builds the descriptor for the target itself: one item, or one
// row holding one item.
func (sc *scope) identity() *ir.Descriptor {
	d := sc.descriptor(ir.IdentityShape(), sc.target)

	d.Generics = sc.generics(shapeParams{})
	d.Where = sc.where()

	var item ir.Expr = ir.SelfExpr
	if sc.errType != nil {
		item = okCall(item)
	}

	row := onceOf(sc.itemType())

	if sc.axis.Kind == ir.KindItems {
		d.Assoc = []ir.AssocType{{Name: ir.AssocIntoIter, Type: row}}
		d.Body = onceCall(item)

		return d
	}

	d.Assoc = []ir.AssocType{
		{Name: ir.AssocRowIter, Type: row},
		{Name: ir.AssocRows, Type: onceOf(&ir.SelfAssoc{Assoc: ir.AssocRowIter})},
	}
	d.Body = onceCall(onceCall(item))

	return d
}
