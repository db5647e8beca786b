package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Murmur/internal/api/middleware"
	"Murmur/internal/core/comments"
)

// DeleteCommentHandler handles comment deletion
type DeleteCommentHandler struct {
	service comments.Service
}

// NewDeleteCommentHandler creates a new comment deletion handler
func NewDeleteCommentHandler(service comments.Service) *DeleteCommentHandler {
	return &DeleteCommentHandler{service: service}
}

// HandleDeleteComment removes a comment
// DELETE /comments/{id}
// Requires authentication; only the comment author may delete.
func (h *DeleteCommentHandler) HandleDeleteComment(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeleteComment(r.Context(), chi.URLParam(r, "id"), middleware.GetUserID(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
