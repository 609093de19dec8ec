package ingest

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadAnnotationFile parses one whitespace-delimited annotation file into a
// table according to the kind's rules: skip the preamble lines, split each
// remaining line on runs of whitespace, and name the columns either from the
// kind's explicit list or as image_id/attrN.
//
// The first well-formed data row fixes the table width; later lines with a
// different field count are dropped rather than aborting the read. A file
// that ends up narrower than the kind's minimum column count is a soft
// failure: the caller gets a nil table and an explanatory error, never a
// crash.
func (c *Coordinator) ReadAnnotationFile(path string, kind Kind) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open annotation file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)

	// Attribute files can carry hundreds of columns per line.
	const maxCapacity = 1024 * 1024
	buf := make([]byte, maxCapacity)
	scanner.Buffer(buf, maxCapacity)

	width := 0
	dropped := 0
	lineNum := 0
	var rows [][]string

	for scanner.Scan() {
		lineNum++
		if lineNum <= kind.SkipRows {
			continue
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if width == 0 {
			width = len(fields)
		} else if len(fields) != width {
			dropped++
			continue
		}

		rows = append(rows, fields)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read annotation file: %w", err)
	}

	if dropped > 0 {
		c.logger.Debug("Dropped malformed annotation lines", "file", path, "dropped", dropped, "width", width)
	}

	if width < kind.MinColumns {
		return nil, fmt.Errorf("%s has %d column(s); expected at least %d", path, width, kind.MinColumns)
	}

	columns := annotationColumns(kind.Columns, width)

	table := NewTable(columns...)
	table.Rows = make([]Row, 0, len(rows))
	for _, fields := range rows {
		row := make(Row, width)
		for i, col := range columns {
			row[col] = fields[i]
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// annotationColumns resolves column names for a parsed width. Explicit names
// are extended with colN when the file is wider than the name list and
// truncated when it is narrower; without explicit names the first column is
// image_id and the rest are attr1, attr2, and so on.
func annotationColumns(explicit []string, width int) []string {
	if len(explicit) > 0 {
		columns := append([]string(nil), explicit...)
		for i := len(columns); i < width; i++ {
			columns = append(columns, fmt.Sprintf("col%d", i))
		}
		return columns[:width]
	}

	if width == 0 {
		return nil
	}

	columns := make([]string, width)
	columns[0] = "image_id"
	for i := 1; i < width; i++ {
		columns[i] = fmt.Sprintf("attr%d", i)
	}
	return columns
}
