// Package wardrobe turns the raw merged ingestion table into the typed view
// the browsing and recommendation surfaces work with. The ingestion core
// only produces raw annotation column names (attrN, category, x1..y2,
// lm1..lm4); the mapping from those to presentation columns like item_type
// or color is deliberately an explicit, caller-supplied step and is never
// inferred.
package wardrobe

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sophiakurz/closet-coordinator/internal/ingest"
)

// ColumnMapping maps raw annotation column names to presentation column
// names, e.g. category -> item_type or attr1 -> color.
type ColumnMapping map[string]string

// LoadColumnMapping reads a mapping from a YAML file of the form
// `raw_column: presentation_column`.
func LoadColumnMapping(path string) (ColumnMapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file: %w", err)
	}

	var mapping ColumnMapping
	if err := yaml.Unmarshal(data, &mapping); err != nil {
		return nil, fmt.Errorf("failed to parse mapping file: %w", err)
	}

	return mapping, nil
}

// ApplyMapping returns a copy of the table with mapped columns renamed.
// Mapping entries whose raw column does not exist are ignored; a mapping
// whose target name is already taken — by an existing column, by another
// entry's target, or by a raw column that is itself being renamed — is
// rejected so values are never silently overwritten.
func ApplyMapping(table *ingest.Table, mapping ColumnMapping) (*ingest.Table, error) {
	targets := make(map[string]string, len(mapping))
	for raw, target := range mapping {
		if raw == target {
			continue
		}
		if table.HasColumn(target) {
			return nil, fmt.Errorf("mapping %s -> %s: column %q already exists", raw, target, target)
		}
		if other, taken := targets[target]; taken {
			return nil, fmt.Errorf("mapping %s -> %s: target %q already used by %s", raw, target, target, other)
		}
		targets[target] = raw
		if mapped, ok := mapping[target]; ok && mapped != target {
			return nil, fmt.Errorf("mapping %s -> %s: %q is itself being renamed", raw, target, target)
		}
	}

	out := table.Clone()
	for i, col := range out.Columns {
		target, ok := mapping[col]
		if !ok || target == col {
			continue
		}
		out.Columns[i] = target
		for _, row := range out.Rows {
			if v, present := row[col]; present {
				row[target] = v
				delete(row, col)
			}
		}
	}

	return out, nil
}
