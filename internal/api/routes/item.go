package routes

import (
	"github.com/go-chi/chi/v5"

	"Murmur/internal/api/handlers/item"
	"Murmur/internal/api/middleware"
	"Murmur/internal/core/engagements"
	"Murmur/internal/core/items"
)

// RegisterItemRoutes registers item CRUD and interaction endpoints
func RegisterItemRoutes(r chi.Router, itemService items.Service, engagementService engagements.Service, authMiddleware *middleware.AuthMiddleware) {
	createHandler := item.NewCreateItemHandler(itemService)
	getHandler := item.NewGetItemHandler(itemService)
	updateHandler := item.NewUpdateItemHandler(itemService)
	deleteHandler := item.NewDeleteItemHandler(itemService)
	engageHandler := item.NewEngageHandler(engagementService)

	r.With(authMiddleware.OptionalAuth).Get("/items/{id}", getHandler.HandleGetItem)

	r.With(authMiddleware.RequireAuth).Post("/items", createHandler.HandleCreateItem)
	r.With(authMiddleware.RequireAuth).Patch("/items/{id}", updateHandler.HandleUpdateItem)
	r.With(authMiddleware.RequireAuth).Delete("/items/{id}", deleteHandler.HandleDeleteItem)
	r.With(authMiddleware.RequireAuth).Post("/items/{id}/engage", engageHandler.HandleEngage)
	r.With(authMiddleware.RequireAuth).Post("/items/{id}/like", engageHandler.HandleLike)
}
