package ingest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Kind describes how one annotation file is parsed: its file name under the
// annotation root, the minimum column count below which the read is treated
// as a soft failure, the number of preamble lines to skip, and optional
// explicit column names. Kinds with no explicit names get synthesized
// image_id/attrN columns.
type Kind struct {
	Name       string   `yaml:"name"`
	File       string   `yaml:"file"`
	MinColumns int      `yaml:"min_columns"`
	SkipRows   int      `yaml:"skip_rows"`
	Columns    []string `yaml:"columns,omitempty"`
}

// DefaultKinds returns the five recognized annotation kinds in their fixed
// merge order. attr_cloth and bbox carry a 2-line preamble (record count and
// header) that must be skipped; the others start with data immediately.
func DefaultKinds() []Kind {
	return []Kind{
		{Name: "attr_cloth", File: "list_attr_cloth.txt", MinColumns: 2, SkipRows: 2},
		{Name: "bbox", File: "list_bbox.txt", MinColumns: 5, SkipRows: 2, Columns: []string{"image_id", "x1", "y1", "x2", "y2"}},
		{Name: "attr_img", File: "list_attr_img.txt", MinColumns: 2},
		{Name: "category_cloth", File: "list_category_cloth.txt", MinColumns: 2, Columns: []string{"image_id", "category"}},
		{Name: "landmarks", File: "list_landmarks.txt", MinColumns: 5, Columns: []string{"image_id", "lm1", "lm2", "lm3", "lm4"}},
	}
}

// LoadKinds reads an annotation-kind registry from a YAML file. The file
// holds a list of kinds in merge order, so adding a new annotation kind is a
// data change rather than a code change.
func LoadKinds(path string) ([]Kind, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read kinds file: %w", err)
	}

	var kinds []Kind
	if err := yaml.Unmarshal(data, &kinds); err != nil {
		return nil, fmt.Errorf("failed to parse kinds file: %w", err)
	}

	for i, k := range kinds {
		if k.Name == "" || k.File == "" {
			return nil, fmt.Errorf("kind %d: name and file are required", i)
		}
		if k.MinColumns < 1 {
			return nil, fmt.Errorf("kind %q: min_columns must be at least 1", k.Name)
		}
	}

	return kinds, nil
}
