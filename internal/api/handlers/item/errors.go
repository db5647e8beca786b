package item

import (
	"errors"
	"log/slog"
	"net/http"

	"Murmur/internal/api/handlers"
	"Murmur/internal/core/items"
)

// handleServiceError maps item service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case items.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidInput", err.Error())
	case errors.Is(err, items.ErrNotFound):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", "Item not found")
	case errors.Is(err, items.ErrNotOwner):
		handlers.WriteError(w, http.StatusForbidden, "Forbidden", "Only the item owner may do that")
	case errors.Is(err, items.ErrAuthorNotFound):
		handlers.WriteError(w, http.StatusUnauthorized, "Unauthorized", "Unknown posting user")
	default:
		slog.Error("item service error", "error", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError", "An error occurred")
	}
}
