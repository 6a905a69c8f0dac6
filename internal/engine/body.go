package engine

import (
	"itemize-generator/internal/ir"
)

// convertCall applies the conversion from src to the item type to arg:
// <T as From<S>>::from(arg), or the TryFrom form with its error mapped into
// the scope's error type.
func (sc *scope) convertCall(src ir.TypeExpr, arg ir.Expr) ir.Expr {
	if sc.errType == nil {
		return ir.Apply(&ir.QualifiedPath{Self: sc.target, Trait: fromTrait(src), Member: "from"}, arg)
	}

	try := ir.Apply(&ir.QualifiedPath{Self: sc.target, Trait: tryFromTrait(src), Member: "try_from"}, arg)

	return ir.Method(try, "map_err", sc.errInto())
}

// errInto is ::std::convert::Into::<E>::into.
func (sc *scope) errInto() ir.Expr {
	return &ir.ValuePath{Path: pathInto, Turbofish: []ir.TypeExpr{sc.errType}, Member: "into"}
}

// convertFn is the conversion from src coerced to a fn pointer, so the
// mapped iterator type stays nameable.
func (sc *scope) convertFn(src ir.TypeExpr) ir.Expr {
	ptr := fnPtr(src, sc.itemType())

	if sc.errType == nil {
		return &ir.Cast{
			Expr: &ir.QualifiedPath{Self: sc.target, Trait: fromTrait(src), Member: "from"},
			Type: ptr,
		}
	}

	param := sc.closureVar()

	return &ir.Cast{
		Expr: &ir.Closure{Params: []string{param}, Body: sc.convertCall(src, ir.Var(param))},
		Type: ptr,
	}
}

// flattenFn is the nested items conversion of src coerced to a fn pointer
// returning Self::RowIter.
func (sc *scope) flattenFn(src ir.TypeExpr) ir.Expr {
	return &ir.Cast{
		Expr: &ir.QualifiedPath{Self: src, Trait: sc.itemsTrait(), Member: sc.itemsAxis().MethodName()},
		Type: fnPtr(src, &ir.SelfAssoc{Assoc: ir.AssocRowIter}),
	}
}

// flattenCall applies the nested items conversion of src to arg.
func (sc *scope) flattenCall(src ir.TypeExpr, arg ir.Expr) ir.Expr {
	return ir.Apply(&ir.QualifiedPath{Self: src, Trait: sc.itemsTrait(), Member: sc.itemsAxis().MethodName()}, arg)
}

// onceCall is ::std::iter::once(arg).
func onceCall(arg ir.Expr) ir.Expr {
	return ir.Apply(ir.Fn(pathOnceFn), arg)
}

// okCall is ::std::result::Result::Ok(arg).
func okCall(arg ir.Expr) ir.Expr {
	return ir.Apply(ir.Fn(pathOk), arg)
}

// destructure binds each tuple position of self and evaluates result.
func destructure(names []string, result ir.Expr) ir.Expr {
	return &ir.Block{
		Stmts:  []ir.Let{{Names: names, Value: ir.SelfExpr}},
		Result: result,
	}
}

// wrapSum tags expr for position i of an n-way right-nested sum:
// position 0 is Left, position i>0 is Right of position i-1 in the n-1 tail,
// and the last position ends without a Left.
func (sc *scope) wrapSum(i, n int, expr ir.Expr) ir.Expr {
	if n == 1 {
		return expr
	}

	if i == 0 {
		return ir.Apply(ir.Fn(sc.cratePath(sc.config.SumType).Name+"::Left"), expr)
	}

	return ir.Apply(ir.Fn(sc.cratePath(sc.config.SumType).Name+"::Right"), sc.wrapSum(i-1, n-1, expr))
}
