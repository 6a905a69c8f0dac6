package emit

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory, creating it
// if needed. A file whose content is already on disk is left untouched so
// unchanged outputs keep their modification time. Each file is written to a
// temporary sibling first and renamed into place.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		if old, err := os.ReadFile(outputPath); err == nil && bytes.Equal(old, file.Content) {
			continue
		}

		if err := writeAtomic(outputPath, file.Content); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

func writeAtomic(path string, content []byte) error {
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, content, filePerm); err != nil {
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	return nil
}

// WriteManifest writes m next to the generated files. It does nothing when
// the renderer has no manifest name configured.
func (r *Renderer) WriteManifest(m *Manifest, outputDir string) error {
	if r.config.ManifestName == "" {
		return nil
	}

	data, err := m.Marshal()
	if err != nil {
		return err
	}

	return WriteFiles([]GeneratedFile{{Filename: r.config.ManifestName, Content: data}}, outputDir)
}

// PruneStale removes the files a previous run listed in the manifest in
// outputDir that current no longer lists. Files the old manifest never named
// are left alone. It returns the removed filenames and does nothing when no
// manifest is configured or none exists yet.
func (r *Renderer) PruneStale(current *Manifest, outputDir string) ([]string, error) {
	if r.config.ManifestName == "" {
		return nil, nil
	}

	data, err := os.ReadFile(filepath.Join(outputDir, r.config.ManifestName))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("reading previous manifest: %w", err)
	}

	previous, err := ParseManifest(data)
	if err != nil {
		return nil, err
	}

	keep := make(map[string]struct{}, len(current.Targets))
	for _, t := range current.Targets {
		keep[t.File] = struct{}{}
	}

	var removed []string

	for _, t := range previous.Targets {
		if _, ok := keep[t.File]; ok || t.File == "" || filepath.Base(t.File) != t.File {
			continue
		}

		err := os.Remove(filepath.Join(outputDir, t.File))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return removed, fmt.Errorf("removing stale file %s: %w", t.File, err)
		}

		if err == nil {
			removed = append(removed, t.File)
		}
	}

	return removed, nil
}
