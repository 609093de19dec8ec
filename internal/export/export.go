// Package export writes the merged table to disk. JSONL preserves every
// column, including the synthesized attrN columns whose count varies per
// dataset; Parquet needs a schema known at compile time, so it covers the
// canonical columns only.
package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/sophiakurz/closet-coordinator/internal/ingest"
)

// ParquetRecord is the fixed Parquet schema for merged rows: the base image
// columns plus the named bbox, category, and landmark annotation columns.
type ParquetRecord struct {
	ImageID  string `parquet:"image_id"`
	Folder   string `parquet:"folder"`
	FileName string `parquet:"file_name"`
	FilePath string `parquet:"file_path"`
	Category string `parquet:"category,optional"`
	X1       string `parquet:"x1,optional"`
	Y1       string `parquet:"y1,optional"`
	X2       string `parquet:"x2,optional"`
	Y2       string `parquet:"y2,optional"`
	LM1      string `parquet:"lm1,optional"`
	LM2      string `parquet:"lm2,optional"`
	LM3      string `parquet:"lm3,optional"`
	LM4      string `parquet:"lm4,optional"`
}

// WriteJSONL writes one JSON object per row. Columns absent from a row are
// omitted from its object rather than emitted as empty strings.
func WriteJSONL(table *ingest.Table, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	for _, row := range table.Rows {
		if err := encoder.Encode(row); err != nil {
			return fmt.Errorf("failed to encode row: %w", err)
		}
	}

	return nil
}

// WriteParquet writes the canonical columns of the merged table to a Parquet
// file.
func WriteParquet(table *ingest.Table, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[ParquetRecord](file)

	records := make([]ParquetRecord, 0, table.NumRows())
	for _, row := range table.Rows {
		records = append(records, ParquetRecord{
			ImageID:  row["image_id"],
			Folder:   row["folder"],
			FileName: row["file_name"],
			FilePath: row["file_path"],
			Category: row["category"],
			X1:       row["x1"],
			Y1:       row["y1"],
			X2:       row["x2"],
			Y2:       row["y2"],
			LM1:      row["lm1"],
			LM2:      row["lm2"],
			LM3:      row["lm3"],
			LM4:      row["lm4"],
		})
	}

	if _, err := writer.Write(records); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}

	return nil
}
