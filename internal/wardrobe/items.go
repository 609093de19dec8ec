package wardrobe

import "github.com/sophiakurz/closet-coordinator/internal/ingest"

// Item is one clothing item as the presentation surfaces see it. Attribute
// fields are empty when the corresponding column was never produced or the
// row had no matching annotation.
type Item struct {
	ImageID  string `json:"image_id"`
	Folder   string `json:"folder"`
	FileName string `json:"file_name"`
	FilePath string `json:"file_path"`
	ItemType string `json:"item_type,omitempty"`
	Color    string `json:"color,omitempty"`
	Style    string `json:"style,omitempty"`
	Pattern  string `json:"pattern,omitempty"`
}

// ItemsFromTable converts a (typically mapped) merged table into items. All
// columns are read defensively; annotation presence is never guaranteed.
func ItemsFromTable(table *ingest.Table) []Item {
	items := make([]Item, 0, table.NumRows())
	for _, row := range table.Rows {
		items = append(items, Item{
			ImageID:  row["image_id"],
			Folder:   row["folder"],
			FileName: row["file_name"],
			FilePath: row["file_path"],
			ItemType: row["item_type"],
			Color:    row["color"],
			Style:    row["style"],
			Pattern:  row["pattern"],
		})
	}
	return items
}

// ItemTypes returns the distinct item_type values in first-seen order,
// skipping items with no type.
func ItemTypes(items []Item) []string {
	seen := make(map[string]bool)
	var types []string
	for _, item := range items {
		if item.ItemType == "" || seen[item.ItemType] {
			continue
		}
		seen[item.ItemType] = true
		types = append(types, item.ItemType)
	}
	return types
}
