package user

import (
	"errors"
	"log/slog"
	"net/http"

	"Murmur/internal/api/handlers"
	"Murmur/internal/core/users"
)

// handleServiceError maps user service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, users.ErrNotFound):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", "User not found")
	case errors.Is(err, users.ErrSelfFollow):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidInput", "Cannot follow yourself")
	default:
		slog.Error("user service error", "error", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError", "An error occurred")
	}
}
