package notification

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"Murmur/internal/api/handlers"
	"Murmur/internal/api/middleware"
	"Murmur/internal/core/notifications"
)

// ListHandler handles notification listing and read marking
type ListHandler struct {
	service notifications.Service
}

// NewListHandler creates a new notification list handler
func NewListHandler(service notifications.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList returns the caller's notifications, newest first, capped at 50
// GET /notifications
// Requires authentication.
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context(), middleware.GetUserID(r))
	if err != nil {
		slog.Error("notification list error", "error", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError", "An error occurred")
		return
	}
	if list == nil {
		list = []*notifications.Notification{}
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{"notifications": list})
}

// HandleMarkRead marks one notification read, or all when no id is given
// POST /notifications/read {id?}
// Requires authentication.
func (h *ListHandler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	recipientID := middleware.GetUserID(r)

	var req struct {
		ID *string `json:"id"`
	}
	if r.Body != nil {
		// An empty or absent body means "mark everything read"
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	var err error
	if req.ID != nil && *req.ID != "" {
		err = h.service.MarkRead(r.Context(), recipientID, *req.ID)
	} else {
		err = h.service.MarkAllRead(r.Context(), recipientID)
	}
	if err != nil {
		if errors.Is(err, notifications.ErrNotFound) {
			handlers.WriteError(w, http.StatusNotFound, "NotFound", "Notification not found")
			return
		}
		slog.Error("notification mark-read error", "error", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError", "An error occurred")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
