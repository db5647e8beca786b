package feed

import (
	"net/http"
	"strconv"

	"Murmur/internal/api/handlers"
	"Murmur/internal/api/middleware"
	"Murmur/internal/core/feeds"
	"Murmur/internal/core/items"
)

// GetFeedHandler handles paginated feed retrieval
type GetFeedHandler struct {
	service feeds.Service
}

// NewGetFeedHandler creates a new feed handler
func NewGetFeedHandler(service feeds.Service) *GetFeedHandler {
	return &GetFeedHandler{service: service}
}

// HandleGetFeed returns one feed page
// GET /feed?kind=reflection&scope=<authorId>&cursor=<opaque>&limit=20
// Works for both anonymous and authenticated callers.
func (h *GetFeedHandler) HandleGetFeed(w http.ResponseWriter, r *http.Request) {
	req := feeds.GetFeedRequest{
		Kind: items.Kind(r.URL.Query().Get("kind")),
		Visibility: feeds.Visibility{
			ViewerID: middleware.GetViewerID(r),
		},
	}
	if req.Kind == "" {
		req.Kind = items.KindReflection
	}

	if scope := r.URL.Query().Get("scope"); scope != "" {
		req.Visibility.ScopeAuthorID = &scope
	}

	if cursor := r.URL.Query().Get("cursor"); cursor != "" {
		req.Cursor = &cursor
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			req.Limit = limit
		}
	}

	response, err := h.service.GetFeed(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, response)
}
