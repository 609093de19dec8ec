package ingest

import (
	"fmt"
	"log/slog"
	"os"
)

// Coordinator orchestrates one ingestion pass: scan the image root, read each
// known annotation file, and left-join the results into a single table keyed
// by image_id. Every call to MergedData recomputes the full table; nothing is
// cached across calls.
type Coordinator struct {
	imagesDir      string
	annotationsDir string
	kinds          []Kind
	logger         *slog.Logger
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithKinds replaces the default annotation-kind registry. Kinds are merged
// in slice order.
func WithKinds(kinds []Kind) Option {
	return func(c *Coordinator) {
		c.kinds = kinds
	}
}

// WithLogger sets the logger diagnostics are reported through. Soft failures
// (missing or malformed annotation files, abandoned joins) are only visible
// here, never in the returned table's structure.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Coordinator) {
		c.logger = logger
	}
}

// New creates a Coordinator after validating that both root directories
// exist. A missing root fails immediately with ErrPathNotFound, before any
// file is read.
func New(imagesDir, annotationsDir string, opts ...Option) (*Coordinator, error) {
	c := &Coordinator{
		imagesDir:      imagesDir,
		annotationsDir: annotationsDir,
		kinds:          DefaultKinds(),
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.validatePaths(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Coordinator) validatePaths() error {
	if _, err := os.Stat(c.imagesDir); err != nil {
		return fmt.Errorf("images directory %s: %w", c.imagesDir, ErrPathNotFound)
	}
	if _, err := os.Stat(c.annotationsDir); err != nil {
		return fmt.Errorf("annotations directory %s: %w", c.annotationsDir, ErrPathNotFound)
	}
	return nil
}

// MergedData runs the full pipeline and returns the merged table: one row per
// scanned image, with whatever annotation columns were successfully parsed
// attached. Fatal errors are ErrPathNotFound (checked at construction) and
// ErrNoImages; all annotation-file problems degrade to missing columns plus a
// diagnostic.
func (c *Coordinator) MergedData() (*Table, error) {
	base, err := c.BuildImageTable()
	if err != nil {
		return nil, err
	}

	results := c.LoadAnnotations()
	return c.MergeAnnotations(base, results), nil
}
