package engine

import (
	"itemize-generator/internal/common"
	"itemize-generator/internal/ir"
	"itemize-generator/internal/symbols"
)

// scope is the naming context of one descriptor. Every descriptor gets its
// own symbol table, so synthesized names are local to a single impl.
type scope struct {
	spec   *ir.Specification
	config Config
	axis   ir.Axis
	names  *symbols.Table

	target *ir.Path
	// errType is the error type of fallible descriptors, nil for direct ones.
	errType ir.TypeExpr
	// errParam is set when errType is a synthesized generic parameter.
	errParam *ir.GenericParam
	// errLifetimes are the lifetimes named by a fixed errType.
	errLifetimes []ir.GenericParam
	// closureParam is allocated on first use.
	closureParam string
}

func newScope(spec *ir.Specification, config Config, axis ir.Axis, reserved []string) *scope {
	sc := &scope{
		spec:   spec,
		config: config,
		axis:   axis,
		names:  symbols.NewTable(reserved...),
		target: spec.TargetType(),
	}

	if axis.IsFallible() {
		if spec.ErrorType != nil {
			sc.errType = spec.ErrorType
			sc.errLifetimes = lifetimesOf(spec.ErrorType)
		} else {
			p := ir.TypeParam(sc.names.Fresh(symbols.ErrorParam))
			sc.errParam = &p
			sc.errType = p.Ref()
		}
	}

	return sc
}

// reservedNames collects every identifier visible to the user in spec.
func reservedNames(spec *ir.Specification) []string {
	names := []string{"self", "Self", spec.Target}

	for _, g := range spec.Generics {
		names = append(names, g.Name)
		for _, b := range g.Bounds {
			names = append(names, ir.Idents(b)...)
		}
	}

	for _, p := range spec.Bounds {
		names = append(names, ir.Idents(p.Subject)...)
		for _, b := range p.Bounds {
			names = append(names, ir.Idents(b)...)
		}
	}

	for _, t := range spec.DeclaredTypes {
		names = append(names, ir.Idents(t)...)
	}

	if spec.ErrorType != nil {
		names = append(names, ir.Idents(spec.ErrorType)...)
	}

	return names
}

// cratePath names an item of the runtime crate.
func (sc *scope) cratePath(name string, args ...ir.TypeExpr) *ir.Path {
	return ir.Named(common.JoinPath(sc.spec.Crate(), name), args...)
}

// traitArgs returns the conversion trait arguments: target, plus the error type when fallible.
func (sc *scope) traitArgs() []ir.TypeExpr {
	if sc.errType != nil {
		return []ir.TypeExpr{sc.target, sc.errType}
	}

	return []ir.TypeExpr{sc.target}
}

// axisTrait is the trait implemented by descriptors of this scope.
func (sc *scope) axisTrait() *ir.Path {
	return sc.cratePath(sc.axis.TraitName(), sc.traitArgs()...)
}

// itemsAxis is the flat-items axis of the same variant.
func (sc *scope) itemsAxis() ir.Axis {
	return ir.Axis{Kind: ir.KindItems, Variant: sc.axis.Variant}
}

// itemsTrait is the flat-items trait of the same variant, used by row shapes.
func (sc *scope) itemsTrait() *ir.Path {
	return sc.cratePath(sc.itemsAxis().TraitName(), sc.traitArgs()...)
}

// itemType is the element type yielded by an items iterator of this scope.
func (sc *scope) itemType() ir.TypeExpr {
	if sc.errType != nil {
		return resultOf(sc.target, sc.errType)
	}

	return sc.target
}

// descriptor starts a descriptor on this scope's axis.
func (sc *scope) descriptor(shape ir.Shape, self ir.TypeExpr) *ir.Descriptor {
	returns := ir.AssocIntoIter
	if sc.axis.Kind == ir.KindRows {
		returns = ir.AssocRows
	}

	return &ir.Descriptor{
		Axis:     sc.axis,
		Shape:    shape,
		Trait:    sc.axisTrait(),
		SelfType: self,
		Method:   sc.axis.MethodName(),
		Returns:  &ir.SelfAssoc{Assoc: returns},
	}
}

// closureVar returns the parameter name shared by every conversion closure in this scope.
func (sc *scope) closureVar() string {
	if sc.closureParam == "" {
		sc.closureParam = sc.names.Fresh(symbols.ClosureParam)
	}

	return sc.closureParam
}
