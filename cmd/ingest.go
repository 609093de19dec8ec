package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sophiakurz/closet-coordinator/internal/export"
	"github.com/sophiakurz/closet-coordinator/internal/ingest"
)

func newIngestCmd() *cobra.Command {
	var imagesDir string
	var annotationsDir string
	var kindsPath string
	var output string
	var format string

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Merge clothing images with their annotation files",
		Long: `Scans the image directory recursively, parses each known annotation file,
and left-joins everything into one table with exactly one row per image.

Missing or malformed annotation files are skipped with a warning; only a
missing root directory or an image tree with no images aborts the run.`,
		Example: `  # Merge and print a summary
  closet ingest --images img_backup --annotations Anno_coarse

  # Merge and export the full table as JSONL
  closet ingest --images img_backup --annotations Anno_coarse --output merged.jsonl

  # Export the canonical columns as Parquet
  closet ingest --images img_backup --annotations Anno_coarse --output merged.parquet --format parquet`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []ingest.Option{}
			if kindsPath != "" {
				kinds, err := ingest.LoadKinds(kindsPath)
				if err != nil {
					return err
				}
				opts = append(opts, ingest.WithKinds(kinds))
			}

			coordinator, err := ingest.New(imagesDir, annotationsDir, opts...)
			if err != nil {
				return err
			}

			merged, err := coordinator.MergedData()
			if err != nil {
				return err
			}

			printSummary(merged)

			if output == "" {
				return nil
			}

			switch format {
			case "jsonl":
				err = export.WriteJSONL(merged, output)
			case "parquet":
				err = export.WriteParquet(merged, output)
			default:
				return fmt.Errorf("unsupported format: %s (supported: jsonl, parquet)", format)
			}
			if err != nil {
				return err
			}

			fmt.Printf("\nMerged table written to: %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVar(&imagesDir, "images", "img_backup", "Directory containing clothing images")
	cmd.Flags().StringVar(&annotationsDir, "annotations", "Anno_coarse", "Directory containing annotation files")
	cmd.Flags().StringVar(&kindsPath, "kinds", "", "YAML file overriding the annotation kind registry")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the merged table to this file")
	cmd.Flags().StringVar(&format, "format", "jsonl", "Output format: jsonl or parquet")

	return cmd
}

func printSummary(merged *ingest.Table) {
	folders := make(map[string]bool)
	for _, row := range merged.Rows {
		folders[row["folder"]] = true
	}

	fmt.Printf("Total images: %d\n", merged.NumRows())
	fmt.Printf("Folders: %d\n", len(folders))
	fmt.Printf("Columns: %s\n", strings.Join(merged.Columns, ", "))
}
