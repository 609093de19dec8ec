// Package tagger derives presentation attributes (item type, color, style,
// pattern) for clothing images using vision-capable LLMs. The ingestion core
// never produces these columns itself; tagging writes a regular annotation
// file that the core can then ingest like any other kind.
package tagger

import "context"

// Config represents a single tagging request to an LLM provider.
type Config struct {
	Model       string
	Temperature float64
	Prompt      string
	ImagePath   string
}

// Provider defines the interface for an LLM provider that can describe an
// image.
type Provider interface {
	DescribeImage(ctx context.Context, config Config) (string, error)
}
