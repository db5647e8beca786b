package feed

import (
	"log/slog"
	"net/http"

	"Murmur/internal/api/handlers"
	"Murmur/internal/core/items"
)

// handleServiceError maps feed service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case items.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidInput", err.Error())
	default:
		slog.Error("feed service error", "error", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError", "An error occurred while fetching the feed")
	}
}
