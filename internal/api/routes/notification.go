package routes

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"Murmur/internal/api/handlers/notification"
	"Murmur/internal/api/middleware"
	"Murmur/internal/core/notifications"
)

// RegisterNotificationRoutes registers notification list, read and presence
// endpoints
func RegisterNotificationRoutes(r chi.Router, notificationService notifications.Service, watcher *notifications.Watcher, authMiddleware *middleware.AuthMiddleware, logger *slog.Logger) {
	listHandler := notification.NewListHandler(notificationService)
	presenceHandler := notification.NewPresenceHandler(watcher, logger)

	r.With(authMiddleware.RequireAuth).Get("/notifications", listHandler.HandleList)
	r.With(authMiddleware.RequireAuth).Post("/notifications/read", listHandler.HandleMarkRead)
	r.With(authMiddleware.RequireAuth).Get("/notifications/presence", presenceHandler.HandlePresence)
}
