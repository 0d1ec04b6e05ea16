package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Manifest names a set of documents to index together.
type Manifest struct {
	Name  string   `json:"name"`
	Files []string `json:"files"`
}

// Read loads a manifest. Relative file paths are resolved against the
// directory holding the manifest.
func Read(filename string) (*Manifest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, "manifest: %s", filename)
	}

	dir := filepath.Dir(filename)
	for i, file := range m.Files {
		if !filepath.IsAbs(file) {
			m.Files[i] = filepath.Join(dir, file)
		}
	}

	if m.Name == "" {
		base := filepath.Base(filename)
		m.Name = base[:len(base)-len(filepath.Ext(base))]
	}

	return &m, nil
}
