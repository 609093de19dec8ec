package wardrobe

import (
	"math/rand"
	"strings"
)

// colorComplements pairs each supported color with its complement on the
// color wheel (black/white and pink/gray are treated as complements for
// outfit purposes).
var colorComplements = map[string]string{
	"red":    "green",
	"green":  "red",
	"blue":   "orange",
	"orange": "blue",
	"yellow": "purple",
	"purple": "yellow",
	"black":  "white",
	"white":  "black",
	"pink":   "gray",
	"gray":   "pink",
}

// neutralColors match any top when no complement or same-color bottom exists.
var neutralColors = map[string]bool{
	"black": true,
	"white": true,
	"gray":  true,
}

// Recommender picks a bottom to pair with a chosen top using a fixed
// color-complement heuristic. The random source is injected so tests can
// seed it.
type Recommender struct {
	rng *rand.Rand
}

// NewRecommender creates a Recommender drawing from the given source.
func NewRecommender(rng *rand.Rand) *Recommender {
	return &Recommender{rng: rng}
}

// MatchingBottom finds a bottom for the selected top. Preference order:
// complement of the top's color, same color, neutral colors, then any
// bottom at all. Returns false only when the wardrobe has no bottoms.
func (r *Recommender) MatchingBottom(top Item, items []Item) (Item, bool) {
	var bottoms []Item
	for _, item := range items {
		if item.ItemType == "bottoms" {
			bottoms = append(bottoms, item)
		}
	}
	if len(bottoms) == 0 {
		return Item{}, false
	}

	topColor := strings.ToLower(strings.TrimSpace(top.Color))
	if topColor == "" {
		return r.pick(bottoms), true
	}

	if complement := colorComplements[topColor]; complement != "" {
		if match := filterByColor(bottoms, complement); len(match) > 0 {
			return r.pick(match), true
		}
	}

	if match := filterByColor(bottoms, topColor); len(match) > 0 {
		return r.pick(match), true
	}

	var neutrals []Item
	for _, b := range bottoms {
		if neutralColors[strings.ToLower(b.Color)] {
			neutrals = append(neutrals, b)
		}
	}
	if len(neutrals) > 0 {
		return r.pick(neutrals), true
	}

	return r.pick(bottoms), true
}

func (r *Recommender) pick(items []Item) Item {
	return items[r.rng.Intn(len(items))]
}

func filterByColor(items []Item, color string) []Item {
	var out []Item
	for _, item := range items {
		if strings.ToLower(item.Color) == color {
			out = append(out, item)
		}
	}
	return out
}
