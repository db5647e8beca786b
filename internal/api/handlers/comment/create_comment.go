package comment

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Murmur/internal/api/handlers"
	"Murmur/internal/api/middleware"
	"Murmur/internal/core/comments"
)

// CreateCommentHandler handles comment creation
type CreateCommentHandler struct {
	service comments.Service
}

// NewCreateCommentHandler creates a new comment creation handler
func NewCreateCommentHandler(service comments.Service) *CreateCommentHandler {
	return &CreateCommentHandler{service: service}
}

// HandleCreateComment creates a comment on an item
// POST /items/{id}/comments {content}
// Requires authentication; notifies the item owner.
func (h *CreateCommentHandler) HandleCreateComment(w http.ResponseWriter, r *http.Request) {
	var req comments.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidInput", "Invalid request body")
		return
	}
	req.ItemID = chi.URLParam(r, "id")
	req.AuthorID = middleware.GetUserID(r)

	comment, err := h.service.CreateComment(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, map[string]interface{}{"comment": comment})
}
