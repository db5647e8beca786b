package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Murmur/internal/api/handlers"
	"Murmur/internal/api/middleware"
	"Murmur/internal/core/users"
)

// GetProfileHandler handles profile lookup
type GetProfileHandler struct {
	service users.Service
}

// NewGetProfileHandler creates a new profile handler
func NewGetProfileHandler(service users.Service) *GetProfileHandler {
	return &GetProfileHandler{service: service}
}

// HandleGetProfile returns a user's profile with follow counts
// GET /users/{id}
// Works for both anonymous and authenticated callers.
func (h *GetProfileHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.GetProfile(r.Context(), chi.URLParam(r, "id"), middleware.GetViewerID(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{"profile": profile})
}
