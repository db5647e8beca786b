package comment

import (
	"errors"
	"log/slog"
	"net/http"

	"Murmur/internal/api/handlers"
	"Murmur/internal/core/comments"
)

// handleServiceError maps comment service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case comments.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidInput", err.Error())
	case errors.Is(err, comments.ErrItemNotFound):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", "Item not found")
	case errors.Is(err, comments.ErrNotFound):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", "Comment not found")
	case errors.Is(err, comments.ErrNotOwner):
		handlers.WriteError(w, http.StatusForbidden, "Forbidden", "Only the comment author may do that")
	default:
		slog.Error("comment service error", "error", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError", "An error occurred")
	}
}
