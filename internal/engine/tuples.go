package engine

import (
	"itemize-generator/internal/ir"
	"itemize-generator/internal/symbols"
)

// tupleVars allocates one type parameter and one value binding per position.
type tupleVars struct {
	types  []ir.TypeExpr
	params []ir.GenericParam
	values []string
}

func (sc *scope) tupleVars(n int) tupleVars {
	tv := tupleVars{values: sc.names.FreshN(symbols.ValueBinding, n)}

	for _, name := range sc.names.FreshN(symbols.TupleParam, n) {
		p := ir.TypeParam(name)
		tv.params = append(tv.params, p)
		tv.types = append(tv.types, p.Ref())
	}

	return tv
}

// tuple builds the descriptor for tuples of arity n.
func (sc *scope) tuple(n int) *ir.Descriptor {
	tv := sc.tupleVars(n)
	d := sc.descriptor(ir.TupleShape(n), &ir.Tuple{Elems: tv.types})
	d.Generics = sc.generics(shapeParams{params: tv.params})

	switch {
	case sc.axis.Kind == ir.KindRows:
		sc.tupleRows(d, tv)
	case sc.errType == nil:
		sc.tupleItems(d, tv)
	default:
		sc.tupleTryItems(d, tv)
	}

	return d
}

// tupleItems converts every position eagerly into a fixed-length array.
func (sc *scope) tupleItems(d *ir.Descriptor, tv tupleVars) {
	var (
		preds []ir.Predicate
		elems []ir.Expr
	)

	for i, t := range tv.types {
		preds = append(preds, sc.convertible(t)...)
		elems = append(elems, sc.convertCall(t, ir.Var(tv.values[i])))
	}

	d.Where = sc.where(preds)
	d.Assoc = []ir.AssocType{{Name: ir.AssocIntoIter, Type: arrayIterOf(sc.itemType(), constLen(len(tv.types)))}}
	d.Body = destructure(tv.values, ir.Method(&ir.ArrayLit{Elems: elems}, "into_iter"))
}

// tupleTryItems chains one deferred link per position, so a position is only
// converted when iteration reaches it and the first failure is the first
// error observed.
func (sc *scope) tupleTryItems(d *ir.Descriptor, tv tupleVars) {
	var (
		preds     []ir.Predicate
		chainType ir.TypeExpr
		chainExpr ir.Expr
	)

	for i, t := range tv.types {
		preds = append(preds, sc.convertible(t)...)

		linkType := mapOf(onceOf(t), fnPtr(t, sc.itemType()))
		linkExpr := ir.Method(onceCall(ir.Var(tv.values[i])), "map", sc.convertFn(t))

		if chainType == nil {
			chainType, chainExpr = linkType, linkExpr
			continue
		}

		chainType = chainOf(chainType, linkType)
		chainExpr = ir.Method(chainExpr, "chain", linkExpr)
	}

	d.Where = sc.where(preds)
	d.Assoc = []ir.AssocType{{Name: ir.AssocIntoIter, Type: chainType}}
	d.Body = destructure(tv.values, chainExpr)
}

// tupleRows yields one row per position, each the position's own items
// iterator tagged into the right-nested sum type.
func (sc *scope) tupleRows(d *ir.Descriptor, tv tupleVars) {
	var (
		preds     []ir.Predicate
		rowTypes  []ir.TypeExpr
		rowValues []ir.Expr
	)

	n := len(tv.types)

	for i, t := range tv.types {
		preds = append(preds, sc.flattenable(t)...)
		rowTypes = append(rowTypes, sc.intoIterOf(t))
		rowValues = append(rowValues, sc.wrapSum(i, n, sc.flattenCall(t, ir.Var(tv.values[i]))))
	}

	d.Where = sc.where(preds)
	d.Assoc = []ir.AssocType{
		{Name: ir.AssocRowIter, Type: sc.sumOf(rowTypes)},
		{Name: ir.AssocRows, Type: arrayIterOf(&ir.SelfAssoc{Assoc: ir.AssocRowIter}, constLen(n))},
	}
	d.Body = destructure(tv.values, ir.Method(&ir.ArrayLit{Elems: rowValues}, "into_iter"))
}
