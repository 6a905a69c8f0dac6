package schema

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"itemize-generator/internal/common"
	"itemize-generator/internal/ir"
)

// --- StringOrArray YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
// Accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		// Single string value
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		// Array of strings
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected string or array, got %s", node.Line, kindName(node.Kind))
	}
}

// MarshalYAML implements custom YAML marshaling for StringOrArray.
// Outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if common.IsSingle(s) {
		return s[0], nil
	}

	return []string(s), nil
}

// First returns the first element or empty string if empty.
func (s StringOrArray) First() string {
	if v, ok := common.First(s); ok {
		return v
	}

	return ""
}

// IsEmpty returns true if the array is empty.
func (s StringOrArray) IsEmpty() bool {
	return common.IsEmpty(s)
}

// Contains returns true if the array contains the given string.
func (s StringOrArray) Contains(str string) bool {
	return slices.Contains(s, str)
}

// --- TupleArity YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for TupleArity.
// Accepts:
//   - Boolean: true (1..=6), false (no tuples)
//   - Integer: 4 (1..=4)
//   - String: "2..=5", "exact(3)"
//   - Map: {exact: 3}
//
// A null value never reaches this method; ItemsFrom turns a bare
// "tuples:" key into the default range.
func (t *TupleArity) UnmarshalYAML(node *yaml.Node) error {
	*t = TupleArity{Line: node.Line, Column: node.Column}

	switch node.Kind {
	case yaml.ScalarNode:
		t.Raw = node.Value
		t.Range, t.Disabled, t.Err = parseTupleArity(node.Value)
		t.Implied = t.Err == nil && (node.Value == "" || node.Value == "true")

	case yaml.MappingNode:
		_, exact := mappingValue(node, "exact")
		if exact == nil || exact.Kind != yaml.ScalarNode {
			t.Err = errors.New(`expected {exact: N}`)
			return nil
		}

		t.Raw = "exact(" + exact.Value + ")"

		n, err := parseArity(exact.Value)
		if err != nil {
			t.Err = err
			return nil
		}

		t.Range = ir.Exact(n)

	default:
		t.Err = fmt.Errorf("expected a number, range or exact(N), got %s", kindName(node.Kind))
	}

	return nil
}

// MarshalYAML writes the directive back in its canonical string form.
func (t TupleArity) MarshalYAML() (any, error) {
	switch {
	case t.Disabled:
		return false, nil
	case t.Range == nil:
		return t.Raw, nil
	case t.Range.Start == t.Range.End:
		return fmt.Sprintf("exact(%d)", t.Range.Start), nil
	default:
		return t.Range.String(), nil
	}
}

// parseTupleArity parses the scalar forms of the tuples directive.
func parseTupleArity(s string) (*ir.ArityRange, bool, error) {
	s = strings.TrimSpace(s)

	switch {
	case s == "" || s == "true":
		return ir.DefaultArityRange(), false, nil
	case s == "false":
		return nil, true, nil
	case strings.HasPrefix(s, "exact(") && strings.HasSuffix(s, ")"):
		n, err := parseArity(s[len("exact(") : len(s)-1])
		if err != nil {
			return nil, false, err
		}

		return ir.Exact(n), false, nil
	case strings.Contains(s, "..="):
		lo, hi, _ := strings.Cut(s, "..=")

		start, err := parseArity(lo)
		if err != nil {
			return nil, false, err
		}

		end, err := parseArity(hi)
		if err != nil {
			return nil, false, err
		}

		return &ir.ArityRange{Start: start, End: end}, false, nil
	case strings.Contains(s, ".."):
		return nil, false, fmt.Errorf("range %q must be inclusive, write A..=B", s)
	default:
		n, err := parseArity(s)
		if err != nil {
			return nil, false, err
		}

		return ir.UpTo(n), false, nil
	}
}

func parseArity(s string) (int, error) {
	s = strings.TrimSpace(s)

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("malformed arity %q: expected a non-negative integer", s)
	}

	return n, nil
}

// --- ItemsFrom YAML methods ---

type rawItemsFrom ItemsFrom

// UnmarshalYAML decodes items_from and gives a bare "tuples:" key its
// default range, which plain decoding would lose as a nil pointer.
func (i *ItemsFrom) UnmarshalYAML(node *yaml.Node) error {
	var raw rawItemsFrom

	if err := node.Decode(&raw); err != nil {
		return err
	}

	*i = ItemsFrom(raw)

	if i.Tuples == nil {
		if _, v := mappingValue(node, "tuples"); v != nil && isNull(v) {
			i.Tuples = &TupleArity{Range: ir.DefaultArityRange(), Implied: true, Line: v.Line, Column: v.Column}
		}
	}

	return nil
}

// --- Declaration YAML methods ---

type rawDeclaration Declaration

// UnmarshalYAML decodes a declaration. A declaration that cannot be decoded
// keeps the error for the compiler instead of failing the whole file.
func (d *Declaration) UnmarshalYAML(node *yaml.Node) error {
	var raw rawDeclaration

	if err := node.Decode(&raw); err != nil {
		*d = Declaration{decodeErr: err}

		if _, v := mappingValue(node, "target"); v != nil && v.Kind == yaml.ScalarNode {
			d.Target = v.Value
		}
	} else {
		*d = Declaration(raw)
	}

	d.Line, d.Column, d.node = node.Line, node.Column, node

	return nil
}

// --- File YAML methods ---

type rawFile File

// UnmarshalYAML decodes the file and keeps its node for key checking.
func (f *File) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: declaration file must be a mapping, got %s", node.Line, kindName(node.Kind))
	}

	var raw rawFile

	if err := node.Decode(&raw); err != nil {
		return err
	}

	*f = File(raw)
	f.node = node

	return nil
}

// --- node helpers ---

// mappingValue returns the key and value nodes for key in a mapping node.
func mappingValue(node *yaml.Node, key string) (*yaml.Node, *yaml.Node) {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil, nil
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i], node.Content[i+1]
		}
	}

	return nil, nil
}

// entryNode returns the node of the i-th entry of a StringOrArray field, or
// the field's own node when it is a scalar.
func entryNode(parent *yaml.Node, key string, i int) *yaml.Node {
	_, v := mappingValue(parent, key)
	if v == nil {
		return parent
	}

	if v.Kind == yaml.SequenceNode && i < len(v.Content) {
		return v.Content[i]
	}

	return v
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return common.UnknownStr
	}
}
