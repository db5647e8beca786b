package routes

import (
	"github.com/go-chi/chi/v5"

	"Murmur/internal/api/handlers/user"
	"Murmur/internal/api/middleware"
	"Murmur/internal/core/users"
)

// RegisterUserRoutes registers profile and follow endpoints
func RegisterUserRoutes(r chi.Router, userService users.Service, authMiddleware *middleware.AuthMiddleware) {
	profileHandler := user.NewGetProfileHandler(userService)
	followHandler := user.NewFollowHandler(userService)

	r.With(authMiddleware.OptionalAuth).Get("/users/{id}", profileHandler.HandleGetProfile)

	r.With(authMiddleware.RequireAuth).Post("/follow", followHandler.HandleToggleFollow)
}
