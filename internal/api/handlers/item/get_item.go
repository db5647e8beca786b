package item

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Murmur/internal/api/handlers"
	"Murmur/internal/api/middleware"
	"Murmur/internal/core/items"
)

// GetItemHandler handles single item lookup
type GetItemHandler struct {
	service items.Service
}

// NewGetItemHandler creates a new item lookup handler
func NewGetItemHandler(service items.Service) *GetItemHandler {
	return &GetItemHandler{service: service}
}

// HandleGetItem returns a single item view
// GET /items/{id}
// Works for both anonymous and authenticated callers; the anonymity rules
// match the feed.
func (h *GetItemHandler) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")

	view, err := h.service.GetItem(r.Context(), itemID, middleware.GetViewerID(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{"item": view})
}
