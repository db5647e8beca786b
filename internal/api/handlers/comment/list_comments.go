package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Murmur/internal/api/handlers"
	"Murmur/internal/core/comments"
)

// ListCommentsHandler handles comment listing
type ListCommentsHandler struct {
	service comments.Service
}

// NewListCommentsHandler creates a new comment listing handler
func NewListCommentsHandler(service comments.Service) *ListCommentsHandler {
	return &ListCommentsHandler{service: service}
}

// HandleListComments returns an item's comments, oldest first
// GET /items/{id}/comments
func (h *ListCommentsHandler) HandleListComments(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListByItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if list == nil {
		list = []*comments.Comment{}
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{"comments": list})
}
