package ir

import "strings"

// Expr is a node of a body expression tree.
type Expr interface {
	exprNode()
	String() string
}

// Ident is a local binding or `self`.
type Ident struct {
	Name string
}

// ValuePath names a function or constructor by path, with an optional
// turbofish and trailing member: "::std::convert::Into::<E>::into".
type ValuePath struct {
	Path      string
	Turbofish []TypeExpr
	Member    string
}

// QualifiedPath names a trait item through a fully qualified self type:
// "<Wrapped as ::std::convert::From<__T0>>::from".
type QualifiedPath struct {
	Self   TypeExpr
	Trait  *Path
	Member string
}

// Call applies Func to Args.
type Call struct {
	Func Expr
	Args []Expr
}

// MethodCall is "recv.method(args...)".
type MethodCall struct {
	Recv   Expr
	Method string
	Args   []Expr
}

// ArrayLit is "[e0, e1, ...]".
type ArrayLit struct {
	Elems []Expr
}

// Cast is "expr as Type". It is used to coerce closures and paths to fn pointers.
type Cast struct {
	Expr Expr
	Type TypeExpr
}

// Closure is "|p0, p1| body".
type Closure struct {
	Params []string
	Body   Expr
}

// Let destructures a tuple value: "let (a, b) = value;".
type Let struct {
	Names []string
	Value Expr
}

// Block is "{ stmts; result }".
type Block struct {
	Stmts  []Let
	Result Expr
}

func (*Ident) exprNode()         {}
func (*ValuePath) exprNode()     {}
func (*QualifiedPath) exprNode() {}
func (*Call) exprNode()          {}
func (*MethodCall) exprNode()    {}
func (*ArrayLit) exprNode()      {}
func (*Cast) exprNode()          {}
func (*Closure) exprNode()       {}
func (*Block) exprNode()         {}

// SelfExpr is the receiver binding.
var SelfExpr = &Ident{Name: "self"}

// Var returns an identifier expression.
func Var(name string) *Ident {
	return &Ident{Name: name}
}

// Fn returns a value path with no turbofish.
func Fn(path string) *ValuePath {
	return &ValuePath{Path: path}
}

// Apply calls fn with args.
func Apply(fn Expr, args ...Expr) *Call {
	return &Call{Func: fn, Args: args}
}

// Method calls method on recv.
func Method(recv Expr, method string, args ...Expr) *MethodCall {
	return &MethodCall{Recv: recv, Method: method, Args: args}
}

func (e *Ident) String() string { return e.Name }

func (e *ValuePath) String() string {
	var sb strings.Builder

	sb.WriteString(e.Path)

	if len(e.Turbofish) > 0 {
		sb.WriteString("::<")
		sb.WriteString(joinTypes(e.Turbofish))
		sb.WriteString(">")
	}

	if e.Member != "" {
		sb.WriteString("::")
		sb.WriteString(e.Member)
	}

	return sb.String()
}

func (e *QualifiedPath) String() string {
	return "<" + e.Self.String() + " as " + e.Trait.String() + ">::" + e.Member
}

func (e *Call) String() string {
	return operand(e.Func) + "(" + joinExprs(e.Args) + ")"
}

func (e *MethodCall) String() string {
	return operand(e.Recv) + "." + e.Method + "(" + joinExprs(e.Args) + ")"
}

func (e *ArrayLit) String() string {
	return "[" + joinExprs(e.Elems) + "]"
}

func (e *Cast) String() string {
	inner := e.Expr.String()
	if _, ok := e.Expr.(*Closure); ok {
		inner = "(" + inner + ")"
	}

	return inner + " as " + e.Type.String()
}

func (e *Closure) String() string {
	return "|" + strings.Join(e.Params, ", ") + "| " + e.Body.String()
}

func (s *Let) String() string {
	return "let " + tuplePattern(s.Names) + " = " + s.Value.String() + ";"
}

// String renders the block on one line; emit prints blocks across lines.
func (e *Block) String() string {
	var sb strings.Builder

	sb.WriteString("{ ")

	for _, s := range e.Stmts {
		sb.WriteString(s.String())
		sb.WriteString(" ")
	}

	sb.WriteString(e.Result.String())
	sb.WriteString(" }")

	return sb.String()
}

func tuplePattern(names []string) string {
	if len(names) == 1 {
		return "(" + names[0] + ",)"
	}

	return "(" + strings.Join(names, ", ") + ")"
}

// operand parenthesizes expressions that bind looser than a call or field access.
func operand(e Expr) string {
	switch e.(type) {
	case *Cast, *Closure:
		return "(" + e.String() + ")"
	default:
		return e.String()
	}
}

func joinExprs(es []Expr) string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = e.String()
	}

	return strings.Join(parts, ", ")
}

// WalkExpr calls fn for e and every expression nested in it, parents first.
func WalkExpr(e Expr, fn func(Expr)) {
	if e == nil {
		return
	}

	fn(e)

	switch n := e.(type) {
	case *Call:
		WalkExpr(n.Func, fn)

		for _, a := range n.Args {
			WalkExpr(a, fn)
		}
	case *MethodCall:
		WalkExpr(n.Recv, fn)

		for _, a := range n.Args {
			WalkExpr(a, fn)
		}
	case *ArrayLit:
		for _, el := range n.Elems {
			WalkExpr(el, fn)
		}
	case *Cast:
		WalkExpr(n.Expr, fn)
	case *Closure:
		WalkExpr(n.Body, fn)
	case *Block:
		for _, s := range n.Stmts {
			WalkExpr(s.Value, fn)
		}

		WalkExpr(n.Result, fn)
	}
}
