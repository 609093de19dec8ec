package ingest

import (
	"errors"
	"testing"
)

func baseTableFixture() *Table {
	table := NewTable("image_id", "folder", "file_name", "file_path")
	for _, name := range []string{"a.jpg", "b.jpg", "c.jpg"} {
		table.Rows = append(table.Rows, Row{
			"image_id":  name,
			"folder":    "tops",
			"file_name": name,
			"file_path": "/closet/tops/" + name,
		})
	}
	return table
}

func TestMergeAnnotationsLeftJoin(t *testing.T) {
	imagesDir := t.TempDir()
	annotationsDir := t.TempDir()
	c := newTestCoordinator(t, imagesDir, annotationsDir)

	base := baseTableFixture()

	bbox := NewTable("image_id", "x1", "y1", "x2", "y2")
	bbox.Rows = []Row{
		{"image_id": "a.jpg", "x1": "1", "y1": "2", "x2": "3", "y2": "4"},
		{"image_id": "c.jpg", "x1": "5", "y1": "6", "x2": "7", "y2": "8"},
	}

	kind := Kind{Name: "bbox"}
	merged := c.MergeAnnotations(base, []AnnotationResult{{Kind: kind, Table: bbox}})

	if merged.NumRows() != 3 {
		t.Fatalf("Expected 3 rows after merge, got %d", merged.NumRows())
	}

	for _, col := range []string{"x1", "y1", "x2", "y2"} {
		if !merged.HasColumn(col) {
			t.Errorf("Expected merged table to have column %q", col)
		}
	}

	byID := make(map[string]Row)
	for _, row := range merged.Rows {
		byID[row["image_id"]] = row
	}

	if byID["a.jpg"]["x1"] != "1" {
		t.Errorf("Expected x1=1 for a.jpg, got %q", byID["a.jpg"]["x1"])
	}
	if byID["c.jpg"]["y2"] != "8" {
		t.Errorf("Expected y2=8 for c.jpg, got %q", byID["c.jpg"]["y2"])
	}

	// b.jpg had no bbox row: the columns exist but its values are absent.
	if _, present := byID["b.jpg"]["x1"]; present {
		t.Error("Expected null bbox values for unmatched row b.jpg")
	}
}

func TestMergeAnnotationsFailedKindsSkipped(t *testing.T) {
	imagesDir := t.TempDir()
	annotationsDir := t.TempDir()
	c := newTestCoordinator(t, imagesDir, annotationsDir)

	base := baseTableFixture()

	results := []AnnotationResult{
		{Kind: Kind{Name: "attr_cloth"}, Err: errors.New("file not found")},
		{Kind: Kind{Name: "bbox"}, Err: errors.New("too few columns")},
	}

	merged := c.MergeAnnotations(base, results)

	if merged.NumRows() != 3 {
		t.Errorf("Expected 3 rows, got %d", merged.NumRows())
	}
	if len(merged.Columns) != 4 {
		t.Errorf("Expected only base columns, got %v", merged.Columns)
	}
}

func TestMergeAnnotationsDuplicateKeyAbandoned(t *testing.T) {
	imagesDir := t.TempDir()
	annotationsDir := t.TempDir()
	c := newTestCoordinator(t, imagesDir, annotationsDir)

	base := baseTableFixture()

	dup := NewTable("image_id", "category")
	dup.Rows = []Row{
		{"image_id": "a.jpg", "category": "shirt"},
		{"image_id": "a.jpg", "category": "dress"},
	}

	good := NewTable("image_id", "lm1", "lm2", "lm3", "lm4")
	good.Rows = []Row{
		{"image_id": "b.jpg", "lm1": "1", "lm2": "2", "lm3": "3", "lm4": "4"},
	}

	merged := c.MergeAnnotations(base, []AnnotationResult{
		{Kind: Kind{Name: "category_cloth"}, Table: dup},
		{Kind: Kind{Name: "landmarks"}, Table: good},
	})

	if merged.NumRows() != 3 {
		t.Fatalf("Expected 3 rows, got %d", merged.NumRows())
	}
	if merged.HasColumn("category") {
		t.Error("Duplicate-key join should have been abandoned")
	}
	// Later kinds still merge after an abandoned one.
	if !merged.HasColumn("lm1") {
		t.Error("Expected landmarks columns after abandoned category merge")
	}
}

func TestMergeAnnotationsCollidingColumnsRenamed(t *testing.T) {
	imagesDir := t.TempDir()
	annotationsDir := t.TempDir()
	c := newTestCoordinator(t, imagesDir, annotationsDir)

	base := baseTableFixture()

	attrCloth := NewTable("image_id", "attr1", "attr2")
	attrCloth.Rows = []Row{
		{"image_id": "a.jpg", "attr1": "1", "attr2": "0"},
	}

	attrImg := NewTable("image_id", "attr1", "attr2")
	attrImg.Rows = []Row{
		{"image_id": "a.jpg", "attr1": "-1", "attr2": "1"},
		{"image_id": "b.jpg", "attr1": "0", "attr2": "0"},
	}

	merged := c.MergeAnnotations(base, []AnnotationResult{
		{Kind: Kind{Name: "attr_cloth"}, Table: attrCloth},
		{Kind: Kind{Name: "attr_img"}, Table: attrImg},
	})

	if merged.NumRows() != 3 {
		t.Fatalf("Expected 3 rows, got %d", merged.NumRows())
	}

	// Both attribute tables survive: the first keeps its names, the second's
	// colliding columns are disambiguated with the kind name.
	for _, col := range []string{"attr1", "attr2", "attr_img_attr1", "attr_img_attr2"} {
		if !merged.HasColumn(col) {
			t.Errorf("Expected merged table to have column %q", col)
		}
	}

	byID := make(map[string]Row)
	for _, row := range merged.Rows {
		byID[row["image_id"]] = row
	}

	if byID["a.jpg"]["attr1"] != "1" {
		t.Errorf("Expected attr_cloth value for attr1, got %q", byID["a.jpg"]["attr1"])
	}
	if byID["a.jpg"]["attr_img_attr1"] != "-1" {
		t.Errorf("Expected attr_img value preserved under renamed column, got %q", byID["a.jpg"]["attr_img_attr1"])
	}
	if byID["b.jpg"]["attr_img_attr2"] != "0" {
		t.Errorf("Expected attr_img value for b.jpg, got %q", byID["b.jpg"]["attr_img_attr2"])
	}
	if _, present := byID["b.jpg"]["attr1"]; present {
		t.Error("b.jpg has no attr_cloth row, attr1 should be absent")
	}
}

func TestMergeAnnotationsBaseColumnCollisionRenamed(t *testing.T) {
	imagesDir := t.TempDir()
	annotationsDir := t.TempDir()
	c := newTestCoordinator(t, imagesDir, annotationsDir)

	base := baseTableFixture()

	collide := NewTable("image_id", "folder")
	collide.Rows = []Row{{"image_id": "a.jpg", "folder": "other"}}

	merged := c.MergeAnnotations(base, []AnnotationResult{
		{Kind: Kind{Name: "attr_img"}, Table: collide},
	})

	byID := make(map[string]Row)
	for _, row := range merged.Rows {
		byID[row["image_id"]] = row
	}
	if byID["a.jpg"]["folder"] != "tops" {
		t.Errorf("Base folder value should be untouched, got %q", byID["a.jpg"]["folder"])
	}
	if byID["a.jpg"]["attr_img_folder"] != "other" {
		t.Errorf("Expected annotation value under renamed column, got %q", byID["a.jpg"]["attr_img_folder"])
	}
}

func TestMergeAnnotationsBaseUnmodified(t *testing.T) {
	imagesDir := t.TempDir()
	annotationsDir := t.TempDir()
	c := newTestCoordinator(t, imagesDir, annotationsDir)

	base := baseTableFixture()

	anno := NewTable("image_id", "category")
	anno.Rows = []Row{{"image_id": "a.jpg", "category": "shirt"}}

	c.MergeAnnotations(base, []AnnotationResult{{Kind: Kind{Name: "category_cloth"}, Table: anno}})

	if base.HasColumn("category") {
		t.Error("Merge should not mutate the base table")
	}
	if _, present := base.Rows[0]["category"]; present {
		t.Error("Merge should not mutate base rows")
	}
}
