package engine

import (
	"errors"
	"fmt"

	"itemize-generator/internal/diagnostic"
	"itemize-generator/internal/ir"
)

// ErrInvalidSpecification is returned (wrapped) when a Specification fails validation.
var ErrInvalidSpecification = errors.New("invalid specification")

// Engine generates descriptor sets. It holds no per-run state and is safe
// for concurrent use.
type Engine struct {
	config Config
}

// New creates an Engine with the given configuration.
func New(config Config) *Engine {
	def := DefaultConfig()
	if config.SumType == "" {
		config.SumType = def.SumType
	}

	if config.MaxArity <= 0 {
		config.MaxArity = def.MaxArity
	}

	return &Engine{config: config}
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.config
}

// Check validates spec and returns every diagnostic, including warnings.
func (e *Engine) Check(spec *ir.Specification) *diagnostic.Diagnostics {
	diags := spec.Validate()

	if r := spec.TupleArity; r != nil && r.End > e.config.MaxArity {
		diags.AddError(diagnostic.CodeInvalidRange,
			fmt.Sprintf("tuple arity range %s exceeds the maximum arity %d", r, e.config.MaxArity),
			spec.Target, "items_from.tuples")
	}

	return diags
}

// Generate produces the descriptor set for spec. Descriptors are ordered by
// axis (IntoItems, TryIntoItems, IntoRows, TryIntoRows), then shape: identity,
// declared types in declaration order, tuple arities ascending, collections
// in the order vec, slice, array.
func (e *Engine) Generate(spec *ir.Specification) (*ir.DescriptorSet, error) {
	if spec == nil {
		return nil, fmt.Errorf("%w: nil specification", ErrInvalidSpecification)
	}

	if diags := e.Check(spec); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSpecification, diags.Error())
	}

	reserved := reservedNames(spec)
	set := &ir.DescriptorSet{Target: spec.Target}

	for _, axis := range spec.Axes.Axes() {
		for _, shape := range shapesFor(spec, axis) {
			sc := newScope(spec, e.config, axis, reserved)

			d, err := sc.build(shape)
			if err != nil {
				return nil, fmt.Errorf("generating %s for %s: %w", axis, spec.Target, err)
			}

			set.Descriptors = append(set.Descriptors, d)
		}
	}

	return set, nil
}

// shapesFor enumerates the shapes generated on axis, in canonical order.
func shapesFor(spec *ir.Specification, axis ir.Axis) []ir.Shape {
	var shapes []ir.Shape

	if spec.SelfImpl {
		shapes = append(shapes, ir.IdentityShape())
	}

	// A single value is not decomposed into rows.
	if axis.Kind == ir.KindItems {
		for _, t := range spec.UniqueTypes() {
			shapes = append(shapes, ir.TypeShape(t))
		}
	}

	for _, n := range spec.TupleArity.Arities() {
		shapes = append(shapes, ir.TupleShape(n))
	}

	for _, k := range spec.Collections.Kinds() {
		shapes = append(shapes, ir.CollectionShape(k))
	}

	return shapes
}

func (sc *scope) build(shape ir.Shape) (*ir.Descriptor, error) {
	switch shape.Kind {
	case ir.ShapeIdentity:
		return sc.identity(), nil
	case ir.ShapeType:
		return sc.single(shape.Type), nil
	case ir.ShapeTuple:
		if shape.Arity < 1 {
			return nil, fmt.Errorf("tuple arity %d", shape.Arity)
		}

		return sc.tuple(shape.Arity), nil
	case ir.ShapeCollection:
		return sc.collection(shape.Collection)
	default:
		return nil, fmt.Errorf("unsupported shape %s", shape.Kind)
	}
}
