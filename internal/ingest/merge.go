package ingest

import (
	"fmt"
	"path/filepath"
)

// AnnotationResult is the tagged outcome of reading one annotation kind.
// Table is non-nil on success; Err explains why the kind produced no data
// otherwise. Keeping the reason alongside lets downstream code distinguish
// "kind absent or failed" from "kind present but empty".
type AnnotationResult struct {
	Kind  Kind
	Table *Table
	Err   error
}

// LoadAnnotations reads every registered annotation kind from the annotation
// root, in registry order. A missing or malformed file yields a failed result
// with a diagnostic; it never aborts the pass.
func (c *Coordinator) LoadAnnotations() []AnnotationResult {
	results := make([]AnnotationResult, 0, len(c.kinds))

	for _, kind := range c.kinds {
		path := filepath.Join(c.annotationsDir, kind.File)

		table, err := c.ReadAnnotationFile(path, kind)
		if err != nil {
			c.logger.Warn("Skipping annotation kind", "kind", kind.Name, "reason", err)
			results = append(results, AnnotationResult{Kind: kind, Err: err})
			continue
		}

		c.logger.Debug("Read annotation file", "kind", kind.Name, "rows", table.NumRows(), "columns", len(table.Columns))
		results = append(results, AnnotationResult{Kind: kind, Table: table})
	}

	return results
}

// MergeAnnotations left-joins each successfully-read annotation table into
// the base image table on image_id, in result order. Every base row survives
// exactly once: matching annotation values attach, non-matching rows simply
// lack that kind's columns. A column name already taken by an earlier kind is
// disambiguated with the kind's name (attr_cloth and attr_img both synthesize
// attr1..attrN, so the later one lands as attr_img_attr1 and so on); a join
// that cannot be applied safely at all (duplicate keys that would multiply
// rows) is abandoned for that one kind and the table accumulated so far
// carries forward.
func (c *Coordinator) MergeAnnotations(base *Table, results []AnnotationResult) *Table {
	merged := base.Clone()

	for _, result := range results {
		if result.Table == nil {
			c.logger.Debug("Skipping merge, no data for kind", "kind", result.Kind.Name)
			continue
		}

		renamed, err := leftJoin(merged, result.Table, result.Kind.Name)
		if err != nil {
			c.logger.Warn("Abandoning merge for kind", "kind", result.Kind.Name, "reason", err)
			continue
		}
		for _, col := range renamed {
			c.logger.Debug("Renamed colliding annotation column", "kind", result.Kind.Name, "column", col)
		}
	}

	return merged
}

// leftJoin attaches the annotation table's non-key columns to every base row
// whose image_id matches, renaming columns that collide with ones already
// merged to <kind>_<column>. It mutates base only after all safety checks
// pass, so an abandoned join leaves base untouched. The returned slice lists
// the disambiguated column names.
func leftJoin(base, annotation *Table, kindName string) ([]string, error) {
	if !annotation.HasColumn("image_id") {
		return nil, fmt.Errorf("annotation table has no image_id column")
	}

	type attachedColumn struct {
		src, dest string
	}

	var attached []attachedColumn
	var renamed []string
	for _, col := range annotation.Columns {
		if col == "image_id" {
			continue
		}
		dest := col
		if base.HasColumn(dest) {
			dest = kindName + "_" + col
			if base.HasColumn(dest) {
				return nil, fmt.Errorf("column %q already present in merged table even after renaming", dest)
			}
			renamed = append(renamed, dest)
		}
		attached = append(attached, attachedColumn{src: col, dest: dest})
	}

	index := make(map[string]Row, len(annotation.Rows))
	for _, row := range annotation.Rows {
		key := row["image_id"]
		if _, dup := index[key]; dup {
			return nil, fmt.Errorf("duplicate image_id %q would multiply base rows", key)
		}
		index[key] = row
	}

	for _, col := range attached {
		base.Columns = append(base.Columns, col.dest)
	}
	for _, row := range base.Rows {
		match, ok := index[row["image_id"]]
		if !ok {
			continue
		}
		for _, col := range attached {
			if v, present := match[col.src]; present {
				row[col.dest] = v
			}
		}
	}

	return renamed, nil
}
