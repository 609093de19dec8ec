package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sophiakurz/closet-coordinator/internal/ingest"
	"github.com/sophiakurz/closet-coordinator/internal/tagger"
)

func newTagCmd() *cobra.Command {
	var imagesDir string
	var output string
	var provider string
	var model string
	var sampleSize int

	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Derive item_type/color/style/pattern annotations with a vision LLM",
		Long: `Scans the image directory and asks a vision-capable LLM to classify each
clothing item. The result is written as a whitespace-delimited annotation file
with columns image_id, item_type, color, style, pattern, ready to be merged by
the ingestion pipeline once registered as an annotation kind.

Images that fail to tag are skipped with a warning; the file is written with
whatever succeeded.`,
		Example: `  # Tag every image with a local Ollama model
  closet tag --images img_backup --output list_attr_tagged.txt

  # Tag a 20-image sample with Gemini
  closet tag --images img_backup --output list_attr_tagged.txt --provider gemini --sample 20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := ingest.ScanImages(imagesDir, slog.Default())
			if err != nil {
				return err
			}

			rows := base.Rows
			if sampleSize > 0 && sampleSize < len(rows) {
				rows = rows[:sampleSize]
			}

			service := tagger.NewService()

			var tags []tagger.TaggedImage
			errorCount := 0

			for i, row := range rows {
				slog.Info("Tagging image", "index", i+1, "total", len(rows), "image", row["image_id"])

				attrs, err := service.TagImage(cmd.Context(), row["file_path"], provider, model)
				if err != nil {
					slog.Warn("Failed to tag image", "image", row["image_id"], "error", err)
					errorCount++
					continue
				}

				tags = append(tags, tagger.TaggedImage{ImageID: row["image_id"], Attributes: attrs})
			}

			if err := tagger.WriteAnnotationFile(output, tags); err != nil {
				return err
			}

			fmt.Printf("\nTagging complete!\n")
			fmt.Printf("  Tagged: %d\n", len(tags))
			fmt.Printf("  Errors: %d\n", errorCount)
			fmt.Printf("  Output: %s\n", output)
			fmt.Printf("\nRegister the file as an annotation kind (columns: image_id item_type color style pattern)\n")
			fmt.Printf("and re-run: closet ingest --kinds kinds.yaml\n")

			return nil
		},
	}

	cmd.Flags().StringVar(&imagesDir, "images", "img_backup", "Directory containing clothing images")
	cmd.Flags().StringVarP(&output, "output", "o", "list_attr_tagged.txt", "Annotation file to write")
	cmd.Flags().StringVar(&provider, "provider", "", "LLM provider: ollama, openai, or gemini (default from TAGGER_PROVIDER, else ollama)")
	cmd.Flags().StringVar(&model, "model", "", "Model name (provider-specific default)")
	cmd.Flags().IntVar(&sampleSize, "sample", 0, "Tag only the first N images (0 = all)")

	return cmd
}
