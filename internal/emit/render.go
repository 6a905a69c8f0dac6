package emit

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"itemize-generator/internal/ir"
)

// GeneratedFile represents a generated source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "wrapped_items.rs").
	Filename string
	// Content is the rendered source.
	Content []byte
}

// Renderer turns descriptor sets into source files. It holds no per-run
// state and is safe for concurrent use.
type Renderer struct {
	config Config
}

// NewRenderer creates a Renderer, filling unset fields from DefaultConfig.
func NewRenderer(config Config) *Renderer {
	def := DefaultConfig()
	if config.Indent == "" {
		config.Indent = def.Indent
	}

	if config.FileSuffix == "" {
		config.FileSuffix = def.FileSuffix
	}

	return &Renderer{config: config}
}

// Config returns the renderer configuration.
func (r *Renderer) Config() Config {
	return r.config
}

// Filename returns the output filename for target.
func (r *Renderer) Filename(target string) string {
	return strings.ToLower(target) + r.config.FileSuffix
}

// Render renders every descriptor of set into one file.
func (r *Renderer) Render(set *ir.DescriptorSet) (*GeneratedFile, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by %s. DO NOT EDIT.\n", Generator)
	fmt.Fprintf(&buf, "// Target: %s\n", set.Target)

	for _, d := range set.Descriptors {
		impl, err := r.RenderDescriptor(d)
		if err != nil {
			return nil, fmt.Errorf("rendering %s for %s: %w", d.ID(), set.Target, err)
		}

		buf.WriteString("\n")
		buf.WriteString(impl)
	}

	return &GeneratedFile{Filename: r.Filename(set.Target), Content: buf.Bytes()}, nil
}

// RenderAll renders one file per set, in the order given.
func (r *Renderer) RenderAll(sets []*ir.DescriptorSet) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, 0, len(sets))

	for _, set := range sets {
		f, err := r.Render(set)
		if err != nil {
			return nil, err
		}

		files = append(files, *f)
	}

	return files, nil
}

// implData holds the data needed for the impl template.
type implData struct {
	Comment string
	Header  string
	Where   []string
	Assoc   []ir.AssocType
	Method  string
	Returns string
	Stmts   []string
	Result  string
	Indent  string
}

// RenderDescriptor renders a single impl block, ending in a newline.
func (r *Renderer) RenderDescriptor(d *ir.Descriptor) (string, error) {
	data := implData{
		Header:  d.Header(),
		Assoc:   d.Assoc,
		Method:  d.Method,
		Returns: d.Returns.String(),
		Indent:  r.config.Indent,
	}

	if r.config.GenerateComments {
		data.Comment = fmt.Sprintf("%s for %s.", d.Axis.TraitName(), describeShape(d.Shape))
	}

	for _, p := range d.Where {
		data.Where = append(data.Where, p.String())
	}

	// Blocks print one statement per line; everything else is a single expression.
	if b, ok := d.Body.(*ir.Block); ok {
		for _, s := range b.Stmts {
			data.Stmts = append(data.Stmts, s.String())
		}

		data.Result = b.Result.String()
	} else {
		data.Result = d.Body.String()
	}

	var buf bytes.Buffer
	if err := implTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}

func describeShape(s ir.Shape) string {
	switch s.Kind {
	case ir.ShapeType:
		return "a single " + s.Type.String()
	case ir.ShapeTuple:
		return fmt.Sprintf("tuples of arity %d", s.Arity)
	case ir.ShapeCollection:
		return s.Collection.String() + " collections"
	default:
		return "the target itself"
	}
}

var implTemplate = template.Must(template.New("impl").Parse(`
{{- if .Comment}}// {{.Comment}}
{{end -}}
{{.Header}}{{if .Where}}
where
{{- range .Where}}
{{$.Indent}}{{.}},
{{- end}}
{{else}} {{end}}{
{{- range .Assoc}}
{{$.Indent}}type {{.Name}} = {{.Type}};
{{- end}}

{{.Indent}}fn {{.Method}}(self) -> {{.Returns}} {
{{- range .Stmts}}
{{$.Indent}}{{$.Indent}}{{.}}
{{- end}}
{{.Indent}}{{.Indent}}{{.Result}}
{{.Indent}}}
}
`))
