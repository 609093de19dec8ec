package tagger

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// TaggedImage pairs an image identifier with its derived attributes.
type TaggedImage struct {
	ImageID    string
	Attributes Attributes
}

// WriteAnnotationFile writes tags as a whitespace-delimited annotation file
// with columns image_id, item_type, color, style, pattern. The output is a
// regular annotation kind: register it with columns
// [image_id item_type color style pattern] and the ingestion core merges it
// like any other. Rows are sorted by image_id so output is reproducible;
// empty fields are written as "unknown" to keep the row well-formed.
func WriteAnnotationFile(path string, tags []TaggedImage) error {
	sorted := append([]TaggedImage(nil), tags...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ImageID < sorted[j].ImageID })

	var b strings.Builder
	for _, tag := range sorted {
		fmt.Fprintf(&b, "%s %s %s %s %s\n",
			tag.ImageID,
			orUnknown(tag.Attributes.ItemType),
			orUnknown(tag.Attributes.Color),
			orUnknown(tag.Attributes.Style),
			orUnknown(tag.Attributes.Pattern))
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write annotation file: %w", err)
	}

	return nil
}

func orUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
