// Package dataset loads table records from YAML files.
package dataset

import (
	"fmt"

	"gopkg.in/yaml.v2"

	"github.com/3-lines-studio/datatable/internal/adapters/fs"
)

// Load reads a YAML sequence of records from path.
func Load[T any](fsys fs.FileSystem, path string) ([]T, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	return Parse[T](data)
}

// Parse decodes a YAML sequence of records. Unknown keys are rejected. An
// empty document or sequence yields no records.
func Parse[T any](data []byte) ([]T, error) {
	var records []T
	if err := yaml.UnmarshalStrict(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}
