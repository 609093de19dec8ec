package handlers

import (
	"net/http"

	"github.com/sophiakurz/closet-coordinator/internal/wardrobe"
)

// Recommendation pairs a selected top with its matched bottom.
type Recommendation struct {
	Top    wardrobe.Item `json:"top"`
	Bottom wardrobe.Item `json:"bottom"`
}

// HandleRecommendation matches a bottom to the top named by the `top` query
// parameter (an image_id).
func (h *Handler) HandleRecommendation(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	topID := r.URL.Query().Get("top")
	if topID == "" {
		h.writeError(w, "Missing top query parameter", http.StatusBadRequest)
		return
	}

	top, ok := h.findItem(topID)
	if !ok {
		h.writeError(w, "Top not found: "+topID, http.StatusNotFound)
		return
	}

	bottom, ok := h.recommender.MatchingBottom(top, h.items)
	if !ok {
		h.writeError(w, "No bottoms available in the wardrobe", http.StatusNotFound)
		return
	}

	h.writeJSON(w, Recommendation{Top: top, Bottom: bottom})
}
