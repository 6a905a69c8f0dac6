package ir

import (
	"fmt"
	"strings"
	"unicode"
)

// ParseError reports a malformed type, predicate or parameter string.
type ParseError struct {
	Input  string
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q at offset %d: %s", e.Input, e.Offset, e.Msg)
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokLifetime
	tokInt
	tokPunct
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

var puncts = []string{"::", "->", "<", ">", ",", "(", ")", "[", "]", ";", "&", ":", "+", "?", "=", "*"}

func lex(input string) ([]token, error) {
	var toks []token

	i := 0
	for i < len(input) {
		r := rune(input[i])

		switch {
		case unicode.IsSpace(r):
			i++
		case r == '\'':
			j := i + 1
			for j < len(input) && isIdentByte(input[j]) {
				j++
			}

			if j == i+1 {
				return nil, &ParseError{Input: input, Offset: i, Msg: "empty lifetime"}
			}

			toks = append(toks, token{kind: tokLifetime, text: input[i:j], pos: i})
			i = j
		case isIdentStart(input[i]):
			j := i
			for j < len(input) && isIdentByte(input[j]) {
				j++
			}

			toks = append(toks, token{kind: tokIdent, text: input[i:j], pos: i})
			i = j
		case r >= '0' && r <= '9':
			j := i
			for j < len(input) && (input[j] >= '0' && input[j] <= '9' || input[j] == '_') {
				j++
			}

			toks = append(toks, token{kind: tokInt, text: input[i:j], pos: i})
			i = j
		default:
			matched := false

			for _, p := range puncts {
				if strings.HasPrefix(input[i:], p) {
					toks = append(toks, token{kind: tokPunct, text: p, pos: i})
					i += len(p)
					matched = true

					break
				}
			}

			if !matched {
				return nil, &ParseError{Input: input, Offset: i, Msg: fmt.Sprintf("unexpected character %q", r)}
			}
		}
	}

	return append(toks, token{kind: tokEOF, pos: len(input)}), nil
}

func isIdentStart(b byte) bool {
	return b == '_' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func isIdentByte(b byte) bool {
	return isIdentStart(b) || b >= '0' && b <= '9'
}

type parser struct {
	input string
	toks  []token
	pos   int
}

func newParser(input string) (*parser, error) {
	toks, err := lex(input)
	if err != nil {
		return nil, err
	}

	return &parser{input: input, toks: toks}, nil
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}

	return t
}

func (p *parser) is(text string) bool {
	t := p.peek()
	return (t.kind == tokPunct || t.kind == tokIdent) && t.text == text
}

func (p *parser) accept(text string) bool {
	if p.is(text) {
		p.next()
		return true
	}

	return false
}

func (p *parser) expect(text string) error {
	if !p.accept(text) {
		return p.errorf("expected %q, found %s", text, describe(p.peek()))
	}

	return nil
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Input: p.input, Offset: p.peek().pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) done() error {
	if p.peek().kind != tokEOF {
		return p.errorf("unexpected trailing %s", describe(p.peek()))
	}

	return nil
}

func describe(t token) string {
	if t.kind == tokEOF {
		return "end of input"
	}

	return fmt.Sprintf("%q", t.text)
}

// ParseType parses a type expression such as "&'a str", "Vec<T>", "(A, B)",
// "[u8; 4]" or "<T as Trait>::Assoc".
func ParseType(s string) (TypeExpr, error) {
	p, err := newParser(s)
	if err != nil {
		return nil, err
	}

	t, err := p.parseType()
	if err != nil {
		return nil, err
	}

	if err := p.done(); err != nil {
		return nil, err
	}

	return t, nil
}

// MustParseType is ParseType that panics on error. For tests and constants.
func MustParseType(s string) TypeExpr {
	t, err := ParseType(s)
	if err != nil {
		panic(err)
	}

	return t
}

// ParsePredicate parses a where-predicate such as "T: Clone + 'a" or "'a: 'b".
func ParsePredicate(s string) (Predicate, error) {
	p, err := newParser(s)
	if err != nil {
		return Predicate{}, err
	}

	var subject TypeExpr

	if t := p.peek(); t.kind == tokLifetime {
		p.next()
		subject = &Lifetime{Name: t.text}
	} else {
		subject, err = p.parseType()
		if err != nil {
			return Predicate{}, err
		}
	}

	if err := p.expect(":"); err != nil {
		return Predicate{}, err
	}

	bounds, err := p.parseBounds()
	if err != nil {
		return Predicate{}, err
	}

	if len(bounds) == 0 {
		return Predicate{}, p.errorf("predicate has no bounds")
	}

	if err := p.done(); err != nil {
		return Predicate{}, err
	}

	return Predicate{Subject: subject, Bounds: bounds}, nil
}

// ParseGenericParam parses a generic parameter such as "'a", "T: Clone" or "const N: usize".
func ParseGenericParam(s string) (GenericParam, error) {
	p, err := newParser(s)
	if err != nil {
		return GenericParam{}, err
	}

	var param GenericParam

	switch t := p.peek(); {
	case t.kind == tokLifetime:
		p.next()

		param = GenericParam{Kind: ParamLifetime, Name: t.text}

		if p.accept(":") {
			if param.Bounds, err = p.parseBounds(); err != nil {
				return GenericParam{}, err
			}
		}
	case p.accept("const"):
		name := p.next()
		if name.kind != tokIdent {
			return GenericParam{}, p.errorf("expected const parameter name")
		}

		if err := p.expect(":"); err != nil {
			return GenericParam{}, err
		}

		typ, err := p.parseType()
		if err != nil {
			return GenericParam{}, err
		}

		param = ConstParam(name.text, typ)
	case t.kind == tokIdent:
		p.next()

		param = GenericParam{Kind: ParamType, Name: t.text}

		if p.accept(":") {
			if param.Bounds, err = p.parseBounds(); err != nil {
				return GenericParam{}, err
			}
		}
	default:
		return GenericParam{}, p.errorf("expected generic parameter, found %s", describe(t))
	}

	if p.is("=") {
		return GenericParam{}, p.errorf("parameter defaults are not allowed on impl generics")
	}

	if err := p.done(); err != nil {
		return GenericParam{}, err
	}

	return param, nil
}

func (p *parser) parseBounds() ([]TypeExpr, error) {
	var bounds []TypeExpr

	for {
		switch t := p.peek(); {
		case t.kind == tokLifetime:
			p.next()
			bounds = append(bounds, &Lifetime{Name: t.text})
		case p.is("?"):
			p.next()

			path, err := p.parsePath()
			if err != nil {
				return nil, err
			}

			path.Name = "?" + path.Name
			bounds = append(bounds, path)
		case t.kind == tokIdent || p.is("::"):
			path, err := p.parsePath()
			if err != nil {
				return nil, err
			}

			bounds = append(bounds, path)
		default:
			return bounds, nil
		}

		if !p.accept("+") {
			return bounds, nil
		}
	}
}

func (p *parser) parseType() (TypeExpr, error) {
	t := p.peek()

	switch {
	case p.is("&"):
		return p.parseRef()
	case p.is("("):
		return p.parseTuple()
	case p.is("["):
		return p.parseArrayOrSlice()
	case p.is("<"):
		return p.parseProjection()
	case p.is("fn"):
		return p.parseFnPtr()
	case t.kind == tokLifetime:
		p.next()
		return &Lifetime{Name: t.text}, nil
	case t.kind == tokInt:
		p.next()
		return &Const{Value: t.text}, nil
	case t.kind == tokIdent || p.is("::"):
		path, err := p.parsePath()
		if err != nil {
			return nil, err
		}

		if rest, ok := strings.CutPrefix(path.Name, "Self::"); ok && len(path.Args) == 0 && !strings.Contains(rest, "::") {
			return &SelfAssoc{Assoc: rest}, nil
		}

		return path, nil
	default:
		return nil, p.errorf("expected type, found %s", describe(t))
	}
}

func (p *parser) parseRef() (TypeExpr, error) {
	p.next()

	ref := &Ref{}

	if t := p.peek(); t.kind == tokLifetime {
		p.next()
		ref.Lifetime = t.text
	}

	ref.Mut = p.accept("mut")

	elem, err := p.parseType()
	if err != nil {
		return nil, err
	}

	ref.Elem = elem

	return ref, nil
}

func (p *parser) parseTuple() (TypeExpr, error) {
	p.next()

	var (
		elems    []TypeExpr
		trailing bool
	)

	for !p.is(")") {
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}

		elems = append(elems, elem)
		trailing = p.accept(",")

		if !trailing {
			break
		}
	}

	if err := p.expect(")"); err != nil {
		return nil, err
	}

	// "(T)" is a parenthesized type, "(T,)" a 1-tuple.
	if len(elems) == 1 && !trailing {
		return elems[0], nil
	}

	return &Tuple{Elems: elems}, nil
}

func (p *parser) parseArrayOrSlice() (TypeExpr, error) {
	p.next()

	elem, err := p.parseType()
	if err != nil {
		return nil, err
	}

	if p.accept("]") {
		return &Slice{Elem: elem}, nil
	}

	if err := p.expect(";"); err != nil {
		return nil, err
	}

	n, err := p.parseType()
	if err != nil {
		return nil, err
	}

	switch n.(type) {
	case *Const, *Path:
	default:
		return nil, p.errorf("array length must be an integer or a const parameter")
	}

	if err := p.expect("]"); err != nil {
		return nil, err
	}

	return &Array{Elem: elem, Len: n}, nil
}

func (p *parser) parseProjection() (TypeExpr, error) {
	p.next()

	self, err := p.parseType()
	if err != nil {
		return nil, err
	}

	if err := p.expect("as"); err != nil {
		return nil, err
	}

	trait, err := p.parsePath()
	if err != nil {
		return nil, err
	}

	if err := p.expect(">"); err != nil {
		return nil, err
	}

	if err := p.expect("::"); err != nil {
		return nil, err
	}

	assoc := p.next()
	if assoc.kind != tokIdent {
		return nil, p.errorf("expected associated type name")
	}

	return &Projection{Self: self, Trait: trait, Assoc: assoc.text}, nil
}

func (p *parser) parseFnPtr() (TypeExpr, error) {
	p.next()

	if err := p.expect("("); err != nil {
		return nil, err
	}

	fn := &FnPtr{}

	for !p.is(")") {
		param, err := p.parseType()
		if err != nil {
			return nil, err
		}

		fn.Params = append(fn.Params, param)

		if !p.accept(",") {
			break
		}
	}

	if err := p.expect(")"); err != nil {
		return nil, err
	}

	if p.accept("->") {
		result, err := p.parseType()
		if err != nil {
			return nil, err
		}

		fn.Result = result
	}

	return fn, nil
}

// parsePath reads "::a::b::C<Args>". Generic arguments are only accepted on
// the final segment.
func (p *parser) parsePath() (*Path, error) {
	var sb strings.Builder

	if p.accept("::") {
		sb.WriteString("::")
	}

	for {
		seg := p.next()
		if seg.kind != tokIdent {
			return nil, &ParseError{Input: p.input, Offset: seg.pos, Msg: fmt.Sprintf("expected path segment, found %s", describe(seg))}
		}

		sb.WriteString(seg.text)

		if !p.is("::") {
			break
		}

		p.next()
		sb.WriteString("::")
	}

	path := &Path{Name: sb.String()}

	if p.accept("<") {
		for !p.is(">") {
			arg, err := p.parseType()
			if err != nil {
				return nil, err
			}

			path.Args = append(path.Args, arg)

			if !p.accept(",") {
				break
			}
		}

		if err := p.expect(">"); err != nil {
			return nil, err
		}
	}

	return path, nil
}
