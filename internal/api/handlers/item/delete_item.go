package item

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Murmur/internal/api/middleware"
	"Murmur/internal/core/items"
)

// DeleteItemHandler handles item deletion
type DeleteItemHandler struct {
	service items.Service
}

// NewDeleteItemHandler creates a new item deletion handler
func NewDeleteItemHandler(service items.Service) *DeleteItemHandler {
	return &DeleteItemHandler{service: service}
}

// HandleDeleteItem removes an item and its comments
// DELETE /items/{id}
// Requires authentication; only the item owner may delete.
func (h *DeleteItemHandler) HandleDeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	viewerID := middleware.GetUserID(r)

	if err := h.service.DeleteItem(r.Context(), itemID, viewerID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
