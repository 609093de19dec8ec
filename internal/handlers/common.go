package handlers

import (
	"encoding/json"
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"github.com/sophiakurz/closet-coordinator/internal/wardrobe"
)

// Handler serves the wardrobe browsing and recommendation API over items
// ingested once at startup.
type Handler struct {
	items       []wardrobe.Item
	recommender *wardrobe.Recommender
}

// New creates a Handler over the given items.
func New(items []wardrobe.Item) *Handler {
	return &Handler{
		items:       items,
		recommender: wardrobe.NewRecommender(rand.New(rand.NewSource(time.Now().UnixNano()))),
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}

func (h *Handler) findItem(imageID string) (wardrobe.Item, bool) {
	for _, item := range h.items {
		if item.ImageID == imageID {
			return item, true
		}
	}
	return wardrobe.Item{}, false
}
