package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "closet",
		Short: "Wardrobe ingestion and outfit recommendation tool",
		Long: `Closet Coordinator ingests a directory tree of clothing-item images together
with their annotation files (attributes, bounding boxes, categories, landmarks)
and merges everything into one table keyed by image identifier.

On top of the merged table it offers export to Parquet/JSONL, a browsing and
outfit-recommendation web interface, and LLM-powered attribute tagging.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newIngestCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newTagCmd())

	return cmd
}
