package engine

import (
	"strconv"

	"itemize-generator/internal/ir"
)

// Standard library paths referenced by generated code. They are absolute so
// a user type named Result or Once cannot shadow them.
const (
	pathFrom      = "::std::convert::From"
	pathTryFrom   = "::std::convert::TryFrom"
	pathInto      = "::std::convert::Into"
	pathResult    = "::std::result::Result"
	pathOk        = "::std::result::Result::Ok"
	pathOnce      = "::std::iter::Once"
	pathOnceFn    = "::std::iter::once"
	pathMap       = "::std::iter::Map"
	pathChain     = "::std::iter::Chain"
	pathArrayIter = "::std::array::IntoIter"
	pathVec       = "::std::vec::Vec"
	pathVecIter   = "::std::vec::IntoIter"
	pathSliceIter = "::std::slice::Iter"
	typeUsize     = "usize"
)

func fromTrait(src ir.TypeExpr) *ir.Path {
	return ir.Named(pathFrom, src)
}

func tryFromTrait(src ir.TypeExpr) *ir.Path {
	return ir.Named(pathTryFrom, src)
}

func intoTrait(dst ir.TypeExpr) *ir.Path {
	return ir.Named(pathInto, dst)
}

// tryFromError is <target as TryFrom<src>>::Error.
func tryFromError(target, src ir.TypeExpr) ir.TypeExpr {
	return &ir.Projection{Self: target, Trait: tryFromTrait(src), Assoc: "Error"}
}

func resultOf(ok, err ir.TypeExpr) ir.TypeExpr {
	return ir.Named(pathResult, ok, err)
}

func onceOf(item ir.TypeExpr) ir.TypeExpr {
	return ir.Named(pathOnce, item)
}

func mapOf(iter ir.TypeExpr, fn *ir.FnPtr) ir.TypeExpr {
	return ir.Named(pathMap, iter, fn)
}

func chainOf(a, b ir.TypeExpr) ir.TypeExpr {
	return ir.Named(pathChain, a, b)
}

// arrayIterOf is ::std::array::IntoIter<item, n>.
func arrayIterOf(item ir.TypeExpr, n ir.TypeExpr) ir.TypeExpr {
	return ir.Named(pathArrayIter, item, n)
}

func constLen(n int) ir.TypeExpr {
	return &ir.Const{Value: strconv.Itoa(n)}
}

func fnPtr(param, result ir.TypeExpr) *ir.FnPtr {
	return &ir.FnPtr{Params: []ir.TypeExpr{param}, Result: result}
}

// intoIterOf is <src as items trait>::IntoIter.
func (sc *scope) intoIterOf(src ir.TypeExpr) ir.TypeExpr {
	return &ir.Projection{Self: src, Trait: sc.itemsTrait(), Assoc: ir.AssocIntoIter}
}

// sumOf nests the sum type to the right: Either<T0, Either<T1, T2>>. A single
// type is returned as is.
func (sc *scope) sumOf(types []ir.TypeExpr) ir.TypeExpr {
	if len(types) == 1 {
		return types[0]
	}

	return sc.cratePath(sc.config.SumType, types[0], sc.sumOf(types[1:]))
}
