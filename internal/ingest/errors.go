package ingest

import "errors"

var (
	// ErrPathNotFound indicates one of the root directories does not exist.
	// It aborts ingestion before any file is read.
	ErrPathNotFound = errors.New("path not found")

	// ErrNoImages indicates the image root contained zero files with a
	// recognized image extension. An empty base table makes the rest of the
	// pipeline meaningless, so this is a hard stop.
	ErrNoImages = errors.New("no valid images found")
)
