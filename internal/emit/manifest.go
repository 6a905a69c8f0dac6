package emit

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"itemize-generator/internal/ir"
)

// Manifest records what one generation run produced.
type Manifest struct {
	Generator string        `yaml:"generator"`
	Targets   []TargetEntry `yaml:"targets"`
}

// TargetEntry lists the impls generated for one target.
type TargetEntry struct {
	Target string      `yaml:"target"`
	File   string      `yaml:"file,omitempty"`
	Impls  []ImplEntry `yaml:"impls"`
}

// ImplEntry describes one impl without its body.
type ImplEntry struct {
	ID       string   `yaml:"id"`
	Trait    string   `yaml:"trait"`
	Self     string   `yaml:"self"`
	Generics []string `yaml:"generics,omitempty,flow"`
	Where    []string `yaml:"where,omitempty"`
	Assoc    []string `yaml:"assoc"`
	Body     string   `yaml:"body,omitempty"`
}

// NewManifest builds a manifest for sets. Bodies are included when withBodies is set.
func (r *Renderer) NewManifest(sets []*ir.DescriptorSet, withBodies bool) *Manifest {
	m := &Manifest{Generator: Generator}

	for _, set := range sets {
		m.Targets = append(m.Targets, r.targetEntry(set, withBodies))
	}

	return m
}

func (r *Renderer) targetEntry(set *ir.DescriptorSet, withBodies bool) TargetEntry {
	entry := TargetEntry{Target: set.Target, File: r.Filename(set.Target)}

	for _, d := range set.Descriptors {
		impl := ImplEntry{
			ID:    d.ID(),
			Trait: d.Trait.String(),
			Self:  d.SelfType.String(),
		}

		for _, g := range d.Generics {
			impl.Generics = append(impl.Generics, g.String())
		}

		for _, p := range d.Where {
			impl.Where = append(impl.Where, p.String())
		}

		for _, a := range d.Assoc {
			impl.Assoc = append(impl.Assoc, a.Name+" = "+a.Type.String())
		}

		if withBodies {
			impl.Body = d.Body.String()
		}

		entry.Impls = append(entry.Impls, impl)
	}

	return entry
}

// Marshal serializes the manifest to YAML.
func (m *Manifest) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshaling manifest: %w", err)
	}

	return data, nil
}

// ParseManifest parses a manifest written by Marshal.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest

	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	return &m, nil
}
