package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"itemize-generator/internal/diagnostic"
	"itemize-generator/internal/match"
)

// Known keys per mapping level, with the value shape each expects.
var (
	fileKeys = []match.Known{
		{Name: "version", Shape: match.ShapeScalar},
		{Name: "crate", Shape: match.ShapeScalar},
		{Name: "declarations", Shape: match.ShapeSequence},
	}
	declarationKeys = []match.Known{
		{Name: "target", Shape: match.ShapeScalar},
		{Name: "generics", Shape: match.ShapeSequence},
		{Name: "where", Shape: match.ShapeSequence},
		{Name: "data", Shape: match.ShapeScalar},
		{Name: "derive", Shape: match.ShapeSequence},
		{Name: "self_impl", Shape: match.ShapeScalar},
		{Name: "items_from", Shape: match.ShapeMapping},
	}
	itemsFromKeys = []match.Known{
		{Name: "types", Shape: match.ShapeSequence},
		{Name: "tuples", Shape: match.ShapeAny},
		{Name: "collections", Shape: match.ShapeSequence},
		{Name: "error_type", Shape: match.ShapeScalar},
	}
	tupleKeys = []match.Known{
		{Name: "exact", Shape: match.ShapeScalar},
	}
)

// reporter files diagnostics for one declaration with source positions.
type reporter struct {
	diags *diagnostic.Diagnostics
	decl  string
}

func (r *reporter) errorAt(node *yaml.Node, code, path, msg string, suggestions ...string) {
	r.add(diagnostic.DiagnosticError, node, code, path, msg, suggestions)
}

func (r *reporter) warnAt(node *yaml.Node, code, path, msg string, suggestions ...string) {
	r.add(diagnostic.DiagnosticWarning, node, code, path, msg, suggestions)
}

func (r *reporter) add(sev diagnostic.DiagnosticSeverity, node *yaml.Node, code, path, msg string, suggestions []string) {
	d := diagnostic.Diagnostic{
		Severity:    sev,
		Code:        code,
		Message:     msg,
		Declaration: r.decl,
		Path:        path,
		Suggestions: suggestions,
	}

	if node != nil {
		d.Line, d.Column = node.Line, node.Column
	}

	r.diags.Add(d)
}

// checkKeys reports every key of a mapping node that is not in known.
// It returns false when at least one unknown key was found.
func (r *reporter) checkKeys(node *yaml.Node, known []match.Known, prefix string) bool {
	if node == nil || node.Kind != yaml.MappingNode {
		return true
	}

	ok := true

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if isKnown(key.Value, known) {
			continue
		}

		ok = false
		r.errorAt(key, diagnostic.CodeUnknownKey, joinKey(prefix, key.Value),
			fmt.Sprintf("unknown key %q", key.Value),
			match.Suggest(key.Value, valueShape(value), known)...)
	}

	return ok
}

func isKnown(name string, known []match.Known) bool {
	for _, k := range known {
		if k.Name == name {
			return true
		}
	}

	return false
}

func valueShape(node *yaml.Node) match.ValueShape {
	switch node.Kind {
	case yaml.ScalarNode:
		if isNull(node) {
			return match.ShapeAny
		}

		return match.ShapeScalar
	case yaml.SequenceNode:
		return match.ShapeSequence
	case yaml.MappingNode:
		return match.ShapeMapping
	default:
		return match.ShapeAny
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + "." + key
}
