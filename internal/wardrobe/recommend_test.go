package wardrobe

import (
	"math/rand"
	"testing"
)

func testRecommender() *Recommender {
	return NewRecommender(rand.New(rand.NewSource(1)))
}

func TestMatchingBottomComplement(t *testing.T) {
	items := []Item{
		{ImageID: "top.jpg", ItemType: "tops", Color: "red"},
		{ImageID: "green.jpg", ItemType: "bottoms", Color: "green"},
		{ImageID: "red.jpg", ItemType: "bottoms", Color: "red"},
		{ImageID: "black.jpg", ItemType: "bottoms", Color: "black"},
	}

	bottom, ok := testRecommender().MatchingBottom(items[0], items)
	if !ok {
		t.Fatal("Expected a match")
	}
	if bottom.Color != "green" {
		t.Errorf("Expected complement color green, got %q", bottom.Color)
	}
}

func TestMatchingBottomSameColorFallback(t *testing.T) {
	items := []Item{
		{ImageID: "top.jpg", ItemType: "tops", Color: "red"},
		{ImageID: "red.jpg", ItemType: "bottoms", Color: "red"},
		{ImageID: "blue.jpg", ItemType: "bottoms", Color: "blue"},
	}

	bottom, ok := testRecommender().MatchingBottom(items[0], items)
	if !ok {
		t.Fatal("Expected a match")
	}
	if bottom.Color != "red" {
		t.Errorf("Expected same-color fallback red, got %q", bottom.Color)
	}
}

func TestMatchingBottomNeutralFallback(t *testing.T) {
	items := []Item{
		{ImageID: "top.jpg", ItemType: "tops", Color: "red"},
		{ImageID: "gray.jpg", ItemType: "bottoms", Color: "gray"},
		{ImageID: "blue.jpg", ItemType: "bottoms", Color: "blue"},
	}

	bottom, ok := testRecommender().MatchingBottom(items[0], items)
	if !ok {
		t.Fatal("Expected a match")
	}
	if bottom.Color != "gray" {
		t.Errorf("Expected neutral fallback gray, got %q", bottom.Color)
	}
}

func TestMatchingBottomAnyFallback(t *testing.T) {
	items := []Item{
		{ImageID: "top.jpg", ItemType: "tops", Color: "red"},
		{ImageID: "blue.jpg", ItemType: "bottoms", Color: "blue"},
	}

	bottom, ok := testRecommender().MatchingBottom(items[0], items)
	if !ok {
		t.Fatal("Expected a match")
	}
	if bottom.ImageID != "blue.jpg" {
		t.Errorf("Expected the only bottom, got %+v", bottom)
	}
}

func TestMatchingBottomColorless(t *testing.T) {
	items := []Item{
		{ImageID: "top.jpg", ItemType: "tops"},
		{ImageID: "blue.jpg", ItemType: "bottoms", Color: "blue"},
	}

	if _, ok := testRecommender().MatchingBottom(items[0], items); !ok {
		t.Error("A colorless top should still get some bottom")
	}
}

func TestMatchingBottomNoBottoms(t *testing.T) {
	items := []Item{
		{ImageID: "top.jpg", ItemType: "tops", Color: "red"},
		{ImageID: "other.jpg", ItemType: "tops", Color: "blue"},
	}

	if _, ok := testRecommender().MatchingBottom(items[0], items); ok {
		t.Error("Expected no match when the wardrobe has no bottoms")
	}
}

func TestMatchingBottomCaseInsensitiveColor(t *testing.T) {
	items := []Item{
		{ImageID: "top.jpg", ItemType: "tops", Color: " Red "},
		{ImageID: "green.jpg", ItemType: "bottoms", Color: "GREEN"},
	}

	bottom, ok := testRecommender().MatchingBottom(items[0], items)
	if !ok {
		t.Fatal("Expected a match")
	}
	if bottom.ImageID != "green.jpg" {
		t.Errorf("Expected case-insensitive complement match, got %+v", bottom)
	}
}
