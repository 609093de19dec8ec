package handlers

import (
	"net/http"

	"github.com/sophiakurz/closet-coordinator/internal/wardrobe"
)

// HandleItems lists wardrobe items, optionally filtered by item_type.
func (h *Handler) HandleItems(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	itemType := r.URL.Query().Get("item_type")
	if itemType == "" {
		h.writeJSON(w, h.items)
		return
	}

	filtered := make([]wardrobe.Item, 0)
	for _, item := range h.items {
		if item.ItemType == itemType {
			filtered = append(filtered, item)
		}
	}
	h.writeJSON(w, filtered)
}

// HandleItemTypes lists the distinct item types present in the wardrobe.
func (h *Handler) HandleItemTypes(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	types := wardrobe.ItemTypes(h.items)
	if types == nil {
		types = []string{}
	}
	h.writeJSON(w, types)
}
