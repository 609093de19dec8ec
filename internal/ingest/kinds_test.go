package ingest

import (
	"testing"
)

func TestDefaultKindsOrder(t *testing.T) {
	kinds := DefaultKinds()

	expected := []string{"attr_cloth", "bbox", "attr_img", "category_cloth", "landmarks"}
	if len(kinds) != len(expected) {
		t.Fatalf("Expected %d kinds, got %d", len(expected), len(kinds))
	}
	for i, name := range expected {
		if kinds[i].Name != name {
			t.Errorf("Expected kind %d to be %s, got %s", i, name, kinds[i].Name)
		}
	}

	for _, k := range kinds {
		switch k.Name {
		case "attr_cloth", "bbox":
			if k.SkipRows != 2 {
				t.Errorf("Expected 2 preamble lines for %s, got %d", k.Name, k.SkipRows)
			}
		default:
			if k.SkipRows != 0 {
				t.Errorf("Expected no preamble for %s, got %d", k.Name, k.SkipRows)
			}
		}
	}
}

func TestLoadKinds(t *testing.T) {
	content := `- name: bbox
  file: list_bbox.txt
  min_columns: 5
  skip_rows: 2
  columns: [image_id, x1, y1, x2, y2]
- name: fabric
  file: list_fabric.txt
  min_columns: 2
`
	path := writeAnnotation(t, t.TempDir(), "kinds.yaml", content)

	kinds, err := LoadKinds(path)
	if err != nil {
		t.Fatalf("LoadKinds failed: %v", err)
	}

	if len(kinds) != 2 {
		t.Fatalf("Expected 2 kinds, got %d", len(kinds))
	}
	if kinds[0].Name != "bbox" || kinds[0].SkipRows != 2 || len(kinds[0].Columns) != 5 {
		t.Errorf("Unexpected bbox kind: %+v", kinds[0])
	}
	if kinds[1].Name != "fabric" || kinds[1].File != "list_fabric.txt" {
		t.Errorf("Unexpected fabric kind: %+v", kinds[1])
	}
}

func TestLoadKindsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing file field", "- name: bbox\n  min_columns: 5\n"},
		{"zero min columns", "- name: bbox\n  file: list_bbox.txt\n  min_columns: 0\n"},
		{"not yaml", "{{{{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeAnnotation(t, t.TempDir(), "kinds.yaml", tt.content)
			if _, err := LoadKinds(path); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}
