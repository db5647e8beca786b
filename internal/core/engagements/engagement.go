package engagements

import (
	"context"
	"errors"
	"time"
)

// Engagement is one viewer's membership in an item's engagement set
type Engagement struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	ItemID    string    `json:"itemId" db:"item_id"`
	UserID    string    `json:"userId" db:"user_id"`
}

// ToggleResponse is the result of an engage or like call
type ToggleResponse struct {
	Engaged bool `json:"engaged"`
	Count   int  `json:"count"`
}

// Sentinel errors
var (
	// ErrItemNotFound is returned when the target item does not exist
	ErrItemNotFound = errors.New("item not found")

	// ErrWrongKind is returned when the interaction does not apply to the
	// item's content kind
	ErrWrongKind = errors.New("interaction does not apply to this content kind")
)

// Service defines the interaction toggle engine.
//
// Both operations are monotonic set-adds per viewer: a repeated call is a
// no-op read of the current count, never a double count and never an
// un-engage. Engage applies to reflections and bumps the author's lifetime
// engagement counter; Like applies to requests and has no counter side
// effect.
type Service interface {
	Engage(ctx context.Context, itemID, viewerID string) (*ToggleResponse, error)
	Like(ctx context.Context, itemID, viewerID string) (*ToggleResponse, error)
}

// ItemMeta is the subset of an item the toggle engine needs
type ItemMeta struct {
	ID          string
	Kind        string
	AuthorID    string
	EngageCount int
}

// Repository defines data access for the engagement set. Add must be atomic
// set-union at the store: concurrent adds from different viewers must not
// lose updates, and a duplicate add must report added=false without
// mutating anything.
type Repository interface {
	// GetItemMeta loads the fields the toggle needs, or ErrItemNotFound
	GetItemMeta(ctx context.Context, itemID string) (*ItemMeta, error)

	// Add inserts (itemID, userID) into the engagement set. When the pair is
	// new it increments the item's denormalized engage_count (and, when
	// bumpLifetime is set, the author's lifetime engagement counter) in the
	// same transaction, returning added=true and the new count. When the
	// pair already exists it returns added=false and the current count.
	Add(ctx context.Context, itemID, userID string, bumpLifetime bool) (added bool, count int, err error)
}
