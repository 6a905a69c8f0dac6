package eval

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"itemize-generator/internal/common"
	"itemize-generator/internal/ir"
)

var (
	// ErrEvaluation is returned (wrapped) when a body cannot be interpreted.
	ErrEvaluation = errors.New("evaluation failed")
	// ErrNoImpl is returned (wrapped) when no descriptor or conversion accepts a value.
	ErrNoImpl = errors.New("not implemented")
)

// Conversion converts the payload of a source Scalar into the payload of
// the target. Infallible impls treat a returned error as a fault.
type Conversion func(v any) (any, error)

// Conversions maps source type names to their conversion into the target.
type Conversions map[string]Conversion

// Evaluator runs the bodies of one descriptor set. It records every
// conversion it performs and is not safe for concurrent use.
type Evaluator struct {
	set   *ir.DescriptorSet
	convs Conversions
	log   []string
}

// New creates an Evaluator over set.
func New(set *ir.DescriptorSet, convs Conversions) *Evaluator {
	return &Evaluator{set: set, convs: convs}
}

// Log returns the source values converted so far, in conversion order.
func (e *Evaluator) Log() []string {
	return slices.Clone(e.log)
}

// ResetLog clears the conversion log.
func (e *Evaluator) ResetLog() {
	e.log = nil
}

// Select returns the descriptor that handles v on axis.
func (e *Evaluator) Select(axis ir.Axis, v Value) (d *ir.Descriptor, err error) {
	defer e.recover(&err)

	return e.lookup(axis, v), nil
}

// Items runs the IntoItems conversion of v and collects every item.
func (e *Evaluator) Items(v Value) (items []Value, err error) {
	defer e.recover(&err)

	for it := range e.iterate(ir.AllAxes[0], v) {
		items = append(items, it)
	}

	return items, nil
}

// TryItems runs the TryIntoItems conversion of v and collects items until
// the first failed conversion, whose error is returned with the items
// collected before it.
func (e *Evaluator) TryItems(v Value) (items []Value, err error) {
	defer e.recover(&err)

	for it := range e.iterate(ir.AllAxes[1], v) {
		val, convErr := e.result(it)
		if convErr != nil {
			return items, convErr
		}

		items = append(items, val)
	}

	return items, nil
}

// Rows runs the IntoRows conversion of v and collects every row.
func (e *Evaluator) Rows(v Value) (rows []Row, err error) {
	defer e.recover(&err)

	for r := range e.iterate(ir.AllAxes[2], v) {
		row := Row{Branch: Branch(r)}

		for it := range e.asSeq(unwrapEither(r)) {
			row.Items = append(row.Items, it)
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// TryRows runs the TryIntoRows conversion of v. It stops at the first
// failed conversion; the row it occurred in is returned partially filled.
func (e *Evaluator) TryRows(v Value) (rows []Row, err error) {
	defer e.recover(&err)

	for r := range e.iterate(ir.AllAxes[3], v) {
		row := Row{Branch: Branch(r)}

		for it := range e.asSeq(unwrapEither(r)) {
			val, convErr := e.result(it)
			if convErr != nil {
				return append(rows, row), convErr
			}

			row.Items = append(row.Items, val)
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// fault carries an evaluation error up to the public entry point.
type fault struct {
	err error
}

func (e *Evaluator) fail(sentinel error, format string, args ...any) {
	panic(fault{err: fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))})
}

func (e *Evaluator) recover(err *error) {
	r := recover()
	if r == nil {
		return
	}

	f, ok := r.(fault)
	if !ok {
		panic(r)
	}

	*err = f.err
}

// iterate selects the impl for v on axis and evaluates its body to an iterator.
func (e *Evaluator) iterate(axis ir.Axis, v Value) seq {
	return e.asSeq(e.dispatch(axis, v))
}

func (e *Evaluator) dispatch(axis ir.Axis, v Value) Value {
	d := e.lookup(axis, v)

	return e.eval(d.Body, bindings{"self": v})
}

func (e *Evaluator) lookup(axis ir.Axis, v Value) *ir.Descriptor {
	for _, d := range e.set.ForAxis(axis) {
		if matches(d, v) {
			return d
		}
	}

	e.fail(ErrNoImpl, "%s<%s> is not implemented for %s", axis, e.set.Target, describe(v))

	return nil
}

func matches(d *ir.Descriptor, v Value) bool {
	switch v := v.(type) {
	case Scalar:
		return (d.Shape.Kind == ir.ShapeType || d.Shape.Kind == ir.ShapeIdentity) && d.SelfType.String() == v.Type
	case Tuple:
		return d.Shape.Kind == ir.ShapeTuple && d.Shape.Arity == len(v)
	case Vec:
		return d.Shape.Kind == ir.ShapeCollection && d.Shape.Collection == ir.CollectionVec
	case Slice:
		return d.Shape.Kind == ir.ShapeCollection && d.Shape.Collection == ir.CollectionSlice
	case Array:
		return d.Shape.Kind == ir.ShapeCollection && d.Shape.Collection == ir.CollectionArray
	default:
		return false
	}
}

func describe(v Value) string {
	switch v := v.(type) {
	case Scalar:
		return v.Type
	case Tuple:
		return fmt.Sprintf("a tuple of arity %d", len(v))
	case Vec:
		return "a vec"
	case Slice:
		return "a slice"
	case Array:
		return fmt.Sprintf("an array of length %d", len(v))
	default:
		return fmt.Sprintf("%T", v)
	}
}

type bindings map[string]Value

func (e *Evaluator) eval(x ir.Expr, env bindings) Value {
	switch n := x.(type) {
	case *ir.Ident:
		v, ok := env[n.Name]
		if !ok {
			e.fail(ErrEvaluation, "unbound name %s", n.Name)
		}

		return v
	case *ir.ValuePath:
		return e.path(n)
	case *ir.QualifiedPath:
		return e.qualified(n)
	case *ir.Call:
		fn := e.asFunc(e.eval(n.Func, env))
		return fn(e.evalAll(n.Args, env)...)
	case *ir.MethodCall:
		return e.method(e.eval(n.Recv, env), n.Method, e.evalAll(n.Args, env))
	case *ir.ArrayLit:
		return Array(e.evalAll(n.Elems, env))
	case *ir.Cast:
		return e.eval(n.Expr, env)
	case *ir.Closure:
		return Func(func(args ...Value) Value {
			if len(args) != len(n.Params) {
				e.fail(ErrEvaluation, "closure takes %d arguments, got %d", len(n.Params), len(args))
			}

			inner := maps.Clone(env)
			for i, p := range n.Params {
				inner[p] = args[i]
			}

			return e.eval(n.Body, inner)
		})
	case *ir.Block:
		inner := maps.Clone(env)
		for _, s := range n.Stmts {
			e.bind(s, inner)
		}

		return e.eval(n.Result, inner)
	default:
		e.fail(ErrEvaluation, "unsupported expression %T", x)
		return nil
	}
}

// evalAll evaluates es left to right.
func (e *Evaluator) evalAll(es []ir.Expr, env bindings) []Value {
	out := make([]Value, len(es))
	for i, x := range es {
		out[i] = e.eval(x, env)
	}

	return out
}

func (e *Evaluator) bind(s ir.Let, env bindings) {
	v := e.eval(s.Value, env)

	t, ok := v.(Tuple)
	if !ok || len(t) != len(s.Names) {
		e.fail(ErrEvaluation, "cannot destructure %s into %d names", describe(v), len(s.Names))
	}

	for i, name := range s.Names {
		env[name] = t[i]
	}
}

func (e *Evaluator) unary(f func(Value) Value) Func {
	return func(args ...Value) Value {
		if len(args) != 1 {
			e.fail(ErrEvaluation, "expected one argument, got %d", len(args))
		}

		return f(args[0])
	}
}

func (e *Evaluator) path(vp *ir.ValuePath) Value {
	switch {
	case vp.Path == "::std::iter::once":
		return e.unary(func(v Value) Value { return seqOf(v) })
	case vp.Path == "::std::result::Result::Ok":
		return e.unary(func(v Value) Value { return Result{Val: v} })
	case vp.Path == "::std::convert::Into" && vp.Member == "into":
		return e.unary(func(v Value) Value { return v })
	case strings.HasSuffix(vp.Path, "::Left"):
		return e.unary(func(v Value) Value { return Either{V: v} })
	case strings.HasSuffix(vp.Path, "::Right"):
		return e.unary(func(v Value) Value { return Either{Right: true, V: v} })
	}

	e.fail(ErrEvaluation, "unsupported path %s", vp)

	return nil
}

func (e *Evaluator) qualified(qp *ir.QualifiedPath) Value {
	target := qp.Self.String()

	switch qp.Member {
	case "from":
		return e.unary(func(v Value) Value {
			out, err := e.convert(v, target)
			if err != nil {
				e.fail(ErrEvaluation, "infallible conversion into %s failed: %v", target, err)
			}

			return out
		})
	case "try_from":
		return e.unary(func(v Value) Value {
			out, err := e.convert(v, target)
			return Result{Val: out, Err: err}
		})
	}

	if axis, ok := ir.ParseAxis(common.LastSegment(qp.Trait.Name)); ok && axis.MethodName() == qp.Member {
		return e.unary(func(v Value) Value { return e.dispatch(axis, v) })
	}

	e.fail(ErrEvaluation, "unsupported qualified path %s", qp)

	return nil
}

// convert applies the registered conversion for v's type and logs it.
func (e *Evaluator) convert(v Value, target string) (Value, error) {
	s, ok := v.(Scalar)
	if !ok {
		e.fail(ErrNoImpl, "%s cannot be converted into %s", describe(v), target)
	}

	// Every type converts into itself.
	if s.Type == target {
		return s, nil
	}

	conv, ok := e.convs[s.Type]
	if !ok {
		e.fail(ErrNoImpl, "no conversion from %s into %s", s.Type, target)
	}

	e.log = append(e.log, s.String())

	out, err := conv(s.V)
	if err != nil {
		return nil, err
	}

	return Scalar{Type: target, V: out}, nil
}

func (e *Evaluator) method(recv Value, name string, args []Value) Value {
	switch name {
	case "into_iter":
		switch r := recv.(type) {
		case Array:
			return seqOf(r...)
		case Vec:
			return seqOf(r...)
		}
	case "iter":
		if r, ok := recv.(Slice); ok {
			return seqOf(r...)
		}
	case "map":
		if len(args) == 1 {
			return mapSeq(e.asSeq(recv), e.asFunc(args[0]))
		}
	case "chain":
		if len(args) == 1 {
			return chainSeq(e.asSeq(recv), e.asSeq(args[0]))
		}
	case "map_err":
		r, ok := recv.(Result)
		if ok && len(args) == 1 {
			if r.Err == nil {
				return r
			}

			mapped, ok := e.asFunc(args[0])(r.Err).(error)
			if !ok {
				e.fail(ErrEvaluation, "error mapping of %v did not produce an error", r.Err)
			}

			return Result{Err: mapped}
		}
	}

	e.fail(ErrEvaluation, "unsupported method %s on %s", name, describe(recv))

	return nil
}

func (e *Evaluator) asSeq(v Value) seq {
	s, ok := v.(seq)
	if !ok {
		e.fail(ErrEvaluation, "%s is not an iterator", describe(v))
	}

	return s
}

func (e *Evaluator) asFunc(v Value) Func {
	f, ok := v.(Func)
	if !ok {
		e.fail(ErrEvaluation, "%s is not callable", describe(v))
	}

	return f
}

func (e *Evaluator) result(v Value) (Value, error) {
	r, ok := v.(Result)
	if !ok {
		e.fail(ErrEvaluation, "fallible iterator yielded %s", describe(v))
	}

	return r.Val, r.Err
}
