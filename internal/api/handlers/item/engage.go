package item

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Murmur/internal/api/handlers"
	"Murmur/internal/api/middleware"
	"Murmur/internal/core/engagements"
)

// EngageHandler handles the engagement and like toggles
type EngageHandler struct {
	service engagements.Service
}

// NewEngageHandler creates a new engagement handler
func NewEngageHandler(service engagements.Service) *EngageHandler {
	return &EngageHandler{service: service}
}

// HandleEngage marks a reflection as engaged with by the caller
// POST /items/{id}/engage -> {engaged, count}
// Requires authentication. Idempotent: re-engaging returns the current
// count without mutation.
func (h *EngageHandler) HandleEngage(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Engage(r.Context(), chi.URLParam(r, "id"), middleware.GetUserID(r))
	if err != nil {
		handleEngageError(w, err)
		return
	}
	handlers.WriteJSON(w, http.StatusOK, resp)
}

// HandleLike likes a request item
// POST /items/{id}/like -> {engaged, count}
// Same monotonic toggle contract as engage, no lifetime counter.
func (h *EngageHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Like(r.Context(), chi.URLParam(r, "id"), middleware.GetUserID(r))
	if err != nil {
		handleEngageError(w, err)
		return
	}
	handlers.WriteJSON(w, http.StatusOK, resp)
}

func handleEngageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engagements.ErrItemNotFound):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", "Item not found")
	case errors.Is(err, engagements.ErrWrongKind):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidInput", err.Error())
	default:
		slog.Error("engagement service error", "error", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError", "An error occurred while toggling engagement")
	}
}
