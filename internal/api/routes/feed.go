package routes

import (
	"github.com/go-chi/chi/v5"

	"Murmur/internal/api/handlers/feed"
	"Murmur/internal/api/middleware"
	"Murmur/internal/core/feeds"
)

// RegisterFeedRoutes registers the feed endpoint
func RegisterFeedRoutes(r chi.Router, feedService feeds.Service, authMiddleware *middleware.AuthMiddleware) {
	getFeedHandler := feed.NewGetFeedHandler(feedService)

	// Anonymous callers get the cached public feed; authenticated callers
	// get viewer-aware visibility
	r.With(authMiddleware.OptionalAuth).Get("/feed", getFeedHandler.HandleGetFeed)
}
