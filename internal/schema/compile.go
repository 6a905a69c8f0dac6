package schema

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"itemize-generator/internal/diagnostic"
	"itemize-generator/internal/ir"
	"itemize-generator/internal/match"
)

// Result is the outcome of compiling a declaration file.
type Result struct {
	// Specifications holds one entry per declaration that compiled cleanly, in file order.
	Specifications []*ir.Specification
	// Diagnostics collects the problems found across all declarations.
	Diagnostics diagnostic.Diagnostics
}

// Lookup returns the specification compiled for target, or nil.
func (r *Result) Lookup(target string) *ir.Specification {
	for _, s := range r.Specifications {
		if s.Target == target {
			return s
		}
	}

	return nil
}

// CompileFile loads the declaration file at path and compiles it.
func CompileFile(path string) (*Result, error) {
	f, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	return Compile(f), nil
}

// Compile turns every declaration of f into a validated specification.
// A declaration with errors is skipped and does not affect the others; an
// unsupported version or an unknown top-level key rejects the whole file.
func Compile(f *File) *Result {
	res := &Result{}
	top := &reporter{diags: &res.Diagnostics}

	if f.Version != CurrentVersion {
		_, v := mappingValue(f.node, "version")
		top.errorAt(v, diagnostic.CodeUnsupportedVer, "version",
			fmt.Sprintf("unsupported version %q, expected %q", f.Version, CurrentVersion))

		return res
	}

	if !top.checkKeys(f.node, fileKeys, "") {
		return res
	}

	crate := f.Crate
	if crate == "" {
		crate = ir.DefaultCratePath
	}

	seen := map[string]int{}

	for i := range f.Declarations {
		d := &f.Declarations[i]

		if line, dup := seen[d.Target]; dup && d.Target != "" {
			r := &reporter{diags: &res.Diagnostics, decl: d.Target}
			r.errorAt(d.node, diagnostic.CodeDuplicateTarget, "target",
				fmt.Sprintf("target %s is already declared at line %d", d.Target, line))

			continue
		}

		seen[d.Target] = d.Line

		spec, diags := compileDeclaration(d, crate, i)
		res.Diagnostics.Merge(diags)

		if spec != nil {
			res.Specifications = append(res.Specifications, spec)
		}
	}

	return res
}

// compileDeclaration builds the specification for one declaration. It
// returns nil when the declaration has errors.
func compileDeclaration(d *Declaration, crate string, index int) (*ir.Specification, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	label := d.Target
	if label == "" {
		label = fmt.Sprintf("declarations[%d]", index)
	}

	r := &reporter{diags: &diags, decl: label}

	if d.decodeErr != nil {
		r.errorAt(d.node, diagnostic.CodeParseError, "", d.decodeErr.Error())
		return nil, diags
	}

	_, itemsNode := mappingValue(d.node, "items_from")
	_, tuplesNode := mappingValue(itemsNode, "tuples")

	r.checkKeys(d.node, declarationKeys, "")
	r.checkKeys(itemsNode, itemsFromKeys, "items_from")
	r.checkKeys(tuplesNode, tupleKeys, "items_from.tuples")

	if d.Target == "" {
		r.errorAt(d.node, diagnostic.CodeMissingField, "target", "target name is required")
		return nil, diags
	}

	if !isIdent(d.Target) {
		_, v := mappingValue(d.node, "target")
		r.errorAt(v, diagnostic.CodeInvalidType, "target",
			fmt.Sprintf("target %q must be a bare type name; declare its parameters under generics", d.Target))
	}

	spec := ir.NewSpecification(d.Target)
	spec.CratePath = crate
	spec.SelfImpl = d.SelfImpl

	compileGenerics(r, d, spec)
	compileData(r, d, spec)
	compileDerive(r, d, spec)

	if d.ItemsFrom != nil {
		compileItemsFrom(r, d.ItemsFrom, itemsNode, spec)
	}

	if diags.HasErrors() {
		return nil, diags
	}

	v := spec.Validate()
	for _, diag := range v.All() {
		if n := locate(d.node, diag.Path); n != nil && diag.Line == 0 {
			diag.Line, diag.Column = n.Line, n.Column
		}

		diag.Declaration = label
		diags.Add(diag)
	}

	if diags.HasErrors() {
		return nil, diags
	}

	return spec, diags
}

func compileGenerics(r *reporter, d *Declaration, spec *ir.Specification) {
	for i, g := range d.Generics {
		p, err := ir.ParseGenericParam(g)
		if err != nil {
			r.errorAt(entryNode(d.node, "generics", i), diagnostic.CodeInvalidType,
				fmt.Sprintf("generics[%d]", i), err.Error())

			continue
		}

		spec.Generics = append(spec.Generics, p)
	}

	for i, w := range d.Where {
		p, err := ir.ParsePredicate(w)
		if err != nil {
			r.errorAt(entryNode(d.node, "where", i), diagnostic.CodeInvalidType,
				fmt.Sprintf("where[%d]", i), err.Error())

			continue
		}

		spec.Bounds = append(spec.Bounds, p)
	}
}

func compileData(r *reporter, d *Declaration, spec *ir.Specification) {
	if d.Data == "" {
		return
	}

	shape, ok := ir.ParseDataShape(d.Data)
	if !ok {
		_, v := mappingValue(d.node, "data")
		r.errorAt(v, diagnostic.CodeInvalidValue, "data",
			fmt.Sprintf("unknown data shape %q, expected struct, enum or union", d.Data),
			match.Suggest(d.Data, match.ShapeScalar, match.KnownNames("struct", "enum", "union"))...)

		return
	}

	spec.Data = shape
}

func compileDerive(r *reporter, d *Declaration, spec *ir.Specification) {
	if d.Derive.IsEmpty() {
		return
	}

	traits := make([]string, 0, len(ir.AllAxes))
	for _, a := range ir.AllAxes {
		traits = append(traits, a.TraitName())
	}

	var axes ir.AxisSet

	for i, name := range d.Derive {
		a, ok := ir.ParseAxis(name)
		if !ok {
			r.errorAt(entryNode(d.node, "derive", i), diagnostic.CodeUnknownTrait,
				fmt.Sprintf("derive[%d]", i), fmt.Sprintf("unknown conversion trait %q", name),
				match.Suggest(name, match.ShapeScalar, match.KnownNames(traits...))...)

			continue
		}

		axes = axes.With(a)
	}

	spec.Axes = axes
}

func compileItemsFrom(r *reporter, from *ItemsFrom, node *yaml.Node, spec *ir.Specification) {
	for i, t := range from.Types {
		typ, err := ir.ParseType(t)
		if err != nil {
			r.errorAt(entryNode(node, "types", i), diagnostic.CodeInvalidType,
				fmt.Sprintf("items_from.types[%d]", i), err.Error())

			continue
		}

		spec.DeclaredTypes = append(spec.DeclaredTypes, typ)
	}

	if t := from.Tuples; t != nil {
		switch {
		case t.Err != nil:
			_, v := mappingValue(node, "tuples")
			r.errorAt(v, diagnostic.CodeInvalidRange, "items_from.tuples", t.Err.Error())
		case !t.Disabled:
			spec.TupleArity = t.Range

			if t.Implied {
				r.diags.AddInfo(diagnostic.CodeDefaultArity,
					fmt.Sprintf("tuples defaults to arity %s", t.Range), r.decl, "items_from.tuples")
			}
		}
	}

	keywords := make([]string, 0, len(ir.AllCollectionKinds))
	for _, k := range ir.AllCollectionKinds {
		keywords = append(keywords, k.String())
	}

	for i, c := range from.Collections {
		path := fmt.Sprintf("items_from.collections[%d]", i)

		kind, ok := ir.ParseCollectionKind(c)
		if !ok {
			r.errorAt(entryNode(node, "collections", i), diagnostic.CodeUnknownKind, path,
				fmt.Sprintf("unknown collection kind %q, expected vec, slice or array", c),
				match.Suggest(c, match.ShapeScalar, match.KnownNames(keywords...))...)

			continue
		}

		if spec.Collections.Has(kind) {
			r.warnAt(entryNode(node, "collections", i), diagnostic.CodeDuplicateKind, path,
				fmt.Sprintf("collection kind %s is listed more than once", kind))
		}

		spec.Collections = spec.Collections.With(kind)
	}

	if from.ErrorType != "" {
		typ, err := ir.ParseType(from.ErrorType)
		if err != nil {
			_, v := mappingValue(node, "error_type")
			r.errorAt(v, diagnostic.CodeInvalidType, "items_from.error_type", err.Error())

			return
		}

		spec.ErrorType = typ
	}
}

// locate follows a dotted key path from node and returns the deepest node
// reached. Index suffixes such as "types[2]" are ignored.
func locate(node *yaml.Node, path string) *yaml.Node {
	if node == nil || path == "" {
		return node
	}

	cur := node

	for _, seg := range strings.Split(path, ".") {
		key, _, _ := strings.Cut(seg, "[")

		_, v := mappingValue(cur, key)
		if v == nil {
			return cur
		}

		cur = v
	}

	return cur
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}

	return true
}
