package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/sophiakurz/closet-coordinator/internal/handlers"
	"github.com/sophiakurz/closet-coordinator/internal/ingest"
	"github.com/sophiakurz/closet-coordinator/internal/wardrobe"
)

func newServeCmd() *cobra.Command {
	var port string
	var imagesDir string
	var annotationsDir string
	var mappingPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start web server for browsing and outfit recommendations",
		Long: `Runs one ingestion pass over the wardrobe and serves the result.

The column mapping file translates raw annotation columns (category, attrN)
into the presentation columns item_type, color, style, and pattern. Without a
mapping these columns stay empty, because the annotation files alone do not
define them.`,
		Example: `  # Serve on the default port
  closet serve --images img_backup --annotations Anno_coarse --mapping mapping.yaml

  # Serve on a custom port
  closet serve --port 3000 --images img_backup --annotations Anno_coarse`,
		RunE: func(cmd *cobra.Command, args []string) error {
			coordinator, err := ingest.New(imagesDir, annotationsDir)
			if err != nil {
				return err
			}

			merged, err := coordinator.MergedData()
			if err != nil {
				return err
			}

			if mappingPath != "" {
				mapping, err := wardrobe.LoadColumnMapping(mappingPath)
				if err != nil {
					return err
				}
				merged, err = wardrobe.ApplyMapping(merged, mapping)
				if err != nil {
					return err
				}
			} else {
				slog.Warn("No column mapping supplied; item_type/color/style/pattern will be empty")
			}

			items := wardrobe.ItemsFromTable(merged)
			slog.Info("Wardrobe loaded", "items", len(items), "item_types", len(wardrobe.ItemTypes(items)))

			handler := handlers.New(items)

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/api/items", handler.HandleItems)
			mux.HandleFunc("/api/item-types", handler.HandleItemTypes)
			mux.HandleFunc("/api/recommendation", handler.HandleRecommendation)
			mux.Handle("/images/", http.StripPrefix("/images/", http.FileServer(http.Dir(imagesDir))))
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: mux,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Closet Coordinator interface available", "addr", addr, "url", "http://localhost"+addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8888", "Port to listen on")
	cmd.Flags().StringVar(&imagesDir, "images", "img_backup", "Directory containing clothing images")
	cmd.Flags().StringVar(&annotationsDir, "annotations", "Anno_coarse", "Directory containing annotation files")
	cmd.Flags().StringVar(&mappingPath, "mapping", "", "YAML file mapping raw annotation columns to presentation columns")

	return cmd
}
