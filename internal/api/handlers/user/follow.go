package user

import (
	"encoding/json"
	"net/http"

	"Murmur/internal/api/handlers"
	"Murmur/internal/api/middleware"
	"Murmur/internal/core/users"
)

// FollowHandler handles the follow toggle
type FollowHandler struct {
	service users.Service
}

// NewFollowHandler creates a new follow handler
func NewFollowHandler(service users.Service) *FollowHandler {
	return &FollowHandler{service: service}
}

// HandleToggleFollow flips the caller's follow edge to the target
// POST /follow {targetUserId} -> {following, followersCount}
// Requires authentication.
func (h *FollowHandler) HandleToggleFollow(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TargetUserID string `json:"targetUserId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.TargetUserID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidInput", "targetUserId is required")
		return
	}

	resp, err := h.service.ToggleFollow(r.Context(), middleware.GetUserID(r), req.TargetUserID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, resp)
}
