package item

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Murmur/internal/api/handlers"
	"Murmur/internal/api/middleware"
	"Murmur/internal/core/items"
)

// UpdateItemHandler handles item edits
type UpdateItemHandler struct {
	service items.Service
}

// NewUpdateItemHandler creates a new item edit handler
func NewUpdateItemHandler(service items.Service) *UpdateItemHandler {
	return &UpdateItemHandler{service: service}
}

// HandleUpdateItem replaces an item's content
// PATCH /items/{id} {content}
// Requires authentication; only the item owner may edit.
func (h *UpdateItemHandler) HandleUpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	viewerID := middleware.GetUserID(r)

	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidInput", "Invalid request body")
		return
	}

	view, err := h.service.UpdateItem(r.Context(), itemID, viewerID, req.Content)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{"item": view})
}
