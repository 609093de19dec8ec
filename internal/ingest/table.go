package ingest

// Row maps column names to string values. Columns missing from a row are
// treated as null by callers.
type Row map[string]string

// Table is a column-ordered collection of rows. Column order is tracked
// explicitly so exports and summaries are reproducible.
type Table struct {
	Columns []string
	Rows    []Row
}

// NewTable creates an empty table with the given column order.
func NewTable(columns ...string) *Table {
	return &Table{Columns: columns}
}

// HasColumn reports whether the table declares a column with the given name.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// NumRows returns the number of rows in the table.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// Clone returns a deep copy of the table. Merging mutates the accumulated
// table, so the base table is cloned first to keep callers' data intact.
func (t *Table) Clone() *Table {
	out := &Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([]Row, len(t.Rows)),
	}
	for i, row := range t.Rows {
		clone := make(Row, len(row))
		for k, v := range row {
			clone[k] = v
		}
		out.Rows[i] = clone
	}
	return out
}
