package item

import (
	"encoding/json"
	"net/http"

	"Murmur/internal/api/handlers"
	"Murmur/internal/api/middleware"
	"Murmur/internal/core/items"
)

// CreateItemHandler handles item creation
type CreateItemHandler struct {
	service items.Service
}

// NewCreateItemHandler creates a new item creation handler
func NewCreateItemHandler(service items.Service) *CreateItemHandler {
	return &CreateItemHandler{service: service}
}

// HandleCreateItem creates a new item
// POST /items {content, kind, isAnonymous?, expiresInDays?}
// Requires authentication.
func (h *CreateItemHandler) HandleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req items.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidInput", "Invalid request body")
		return
	}
	req.AuthorID = middleware.GetUserID(r)

	view, err := h.service.CreateItem(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, map[string]interface{}{"item": view})
}
