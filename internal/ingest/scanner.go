package ingest

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// validImageExtensions is the allow-list of raster image extensions,
// matched case-insensitively.
var validImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// BuildImageTable recursively scans the image root and returns the base
// table: one row per discovered image with image_id, folder (immediate
// parent directory name), file_name, and file_path columns. Row order is
// filesystem-traversal order and is not part of the contract.
//
// Note image_id is the bare file name, so two images with the same name in
// different folders collide during annotation merges.
func (c *Coordinator) BuildImageTable() (*Table, error) {
	return ScanImages(c.imagesDir, c.logger)
}

// ScanImages builds the base image table for an image root, for callers that
// work on images alone and have no annotation root to hand a Coordinator.
// The root is validated the same way: ErrPathNotFound when missing,
// ErrNoImages when the tree holds no recognized image files.
func ScanImages(root string, logger *slog.Logger) (*Table, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("images directory %s: %w", root, ErrPathNotFound)
	}

	table := NewTable("image_id", "folder", "file_name", "file_path")

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !validImageExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		name := d.Name()
		table.Rows = append(table.Rows, Row{
			"image_id":  name,
			"folder":    filepath.Base(filepath.Dir(path)),
			"file_name": name,
			"file_path": path,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	if len(table.Rows) == 0 {
		return nil, fmt.Errorf("%s: %w", root, ErrNoImages)
	}

	logger.Debug("Built image lookup table", "images", len(table.Rows), "root", root)

	return table, nil
}
