package routes

import (
	"github.com/go-chi/chi/v5"

	"Murmur/internal/api/handlers/comment"
	"Murmur/internal/api/middleware"
	"Murmur/internal/core/comments"
)

// RegisterCommentRoutes registers comment endpoints
func RegisterCommentRoutes(r chi.Router, commentService comments.Service, authMiddleware *middleware.AuthMiddleware) {
	createHandler := comment.NewCreateCommentHandler(commentService)
	listHandler := comment.NewListCommentsHandler(commentService)
	deleteHandler := comment.NewDeleteCommentHandler(commentService)

	r.Get("/items/{id}/comments", listHandler.HandleListComments)

	r.With(authMiddleware.RequireAuth).Post("/items/{id}/comments", createHandler.HandleCreateComment)
	r.With(authMiddleware.RequireAuth).Delete("/comments/{id}", deleteHandler.HandleDeleteComment)
}
