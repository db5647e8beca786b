package items

import "context"

// Service defines the business logic interface for items
type Service interface {
	// CreateItem validates and stores a new item, snapshotting the author's
	// display fields at creation time
	CreateItem(ctx context.Context, req CreateItemRequest) (*ItemView, error)

	// GetItem returns a single item view with the same anonymity suppression
	// rules as the feed
	GetItem(ctx context.Context, itemID string, viewerID *string) (*ItemView, error)

	// UpdateItem replaces the content of an item owned by viewerID
	UpdateItem(ctx context.Context, itemID, viewerID, content string) (*ItemView, error)

	// DeleteItem removes an item owned by viewerID; comments and engagements
	// cascade at the store
	DeleteItem(ctx context.Context, itemID, viewerID string) error
}

// Repository defines the data access interface for items
type Repository interface {
	Create(ctx context.Context, item *Item) error
	GetByID(ctx context.Context, id string) (*Item, error)
	GetView(ctx context.Context, id string, viewerID *string) (*ItemView, error)
	UpdateContent(ctx context.Context, id, content string) error
	Delete(ctx context.Context, id string) error
}

// AuthorSnapshot is the subset of the user profile frozen onto new items
type AuthorSnapshot struct {
	Image    *string
	Name     string
	Username string
}

// AuthorDirectory resolves the display snapshot for a posting user.
// Implemented by the users service.
type AuthorDirectory interface {
	Snapshot(ctx context.Context, userID string) (*AuthorSnapshot, error)
}

// FeedInvalidator drops cached anonymous feed pages for a content kind.
// Implemented by the feed cache; every content mutation goes through it.
type FeedInvalidator interface {
	Invalidate(kind Kind)
}
