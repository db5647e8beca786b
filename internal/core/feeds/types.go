package feeds

import (
	"context"

	"Murmur/internal/core/items"
)

const (
	// DefaultLimit is the page size when the client does not ask for one
	DefaultLimit = 20

	// MaxLimit caps the page size
	MaxLimit = 50
)

// GetFeedRequest represents input for fetching a feed page
type GetFeedRequest struct {
	Cursor     *string
	Visibility Visibility
	Kind       items.Kind
	Limit      int
}

// FeedResponse represents one page of a feed
type FeedResponse struct {
	NextCursor *string           `json:"nextCursor"`
	Items      []*items.ItemView `json:"items"`
}

// Query is the resolved, validated form handed to the repository. Limit has
// already been clamped and incremented by one for next-page detection.
type Query struct {
	After      *Position
	Visibility Visibility
	Kind       items.Kind
	Limit      int
}

// Repository defines feed data access: a single ordered keyset query
// returning hydrated item views
type Repository interface {
	// ListItems returns up to q.Limit rows in (createdAt DESC, id DESC)
	// order, starting strictly after q.After when set
	ListItems(ctx context.Context, q Query) ([]*items.ItemView, error)
}

// Service defines feed business logic
type Service interface {
	GetFeed(ctx context.Context, req GetFeedRequest) (*FeedResponse, error)
}
