package items

import (
	"encoding/json"
	"time"
)

// Kind discriminates the two content variants sharing the item shape.
type Kind string

const (
	// KindReflection is a long-lived post that may be published anonymously
	KindReflection Kind = "reflection"

	// KindRequest is a post with optional expiry; requests are never anonymous
	KindRequest Kind = "request"
)

// Valid reports whether k is a known content kind
func (k Kind) Valid() bool {
	return k == KindReflection || k == KindRequest
}

// Item is the stored shape shared by both content kinds.
//
// Author display fields are frozen at creation time so that reads never have
// to join the live user row. For anonymous reflections this is a hard
// requirement: the true author must stay undiscoverable even through joined
// user data.
type Item struct {
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty" db:"expires_at"`
	ID             string     `json:"id" db:"id"`
	Kind           Kind       `json:"kind" db:"kind"`
	AuthorID       string     `json:"authorId" db:"author_id"`
	Content        string     `json:"content" db:"content"`
	AuthorName     string     `json:"-" db:"author_name"`
	AuthorUsername string     `json:"-" db:"author_username"`
	AuthorImage    *string    `json:"-" db:"author_image"`
	EngageCount    int        `json:"engageCount" db:"engage_count"`
	IsAnonymous    bool       `json:"isAnonymous" db:"is_anonymous"`
}

// CreateItemRequest represents input for creating an item
type CreateItemRequest struct {
	ExpiresInDays *ExpiryChoice `json:"expiresInDays,omitempty"` // 7, 30 or "never"
	AuthorID      string        `json:"-"`
	Content       string        `json:"content"`
	Kind          Kind          `json:"kind"`
	IsAnonymous   bool          `json:"isAnonymous,omitempty"`
}

// ExpiryChoice is the expiry selection on a new request. Clients send the
// JSON numbers 7 and 30 or the string "never"; both number and string forms
// decode to the same normalized value.
type ExpiryChoice string

func (c *ExpiryChoice) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*c = ExpiryChoice(n.String())
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*c = ExpiryChoice(s)
	return nil
}

// AuthorView is the author display attached to an item view.
// For anonymous items it is omitted entirely.
type AuthorView struct {
	Image       *string `json:"image,omitempty"`
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	DisplayName string  `json:"displayName"`
}

// ItemStats carries the derived counters for an item
type ItemStats struct {
	Engagements int `json:"engagements"`
	Comments    int `json:"comments"`
}

// ItemView is the read model returned by feeds and single-item lookups.
// Author is nil when the item is anonymous; IsOwner is computed from the
// true author regardless of anonymity, so owners can still edit and delete
// their anonymous posts.
type ItemView struct {
	CreatedAt     time.Time   `json:"createdAt"`
	ExpiresAt     *time.Time  `json:"expiresAt,omitempty"`
	Author        *AuthorView `json:"author,omitempty"`
	Stats         ItemStats   `json:"stats"`
	ID            string      `json:"id"`
	Kind          Kind        `json:"kind"`
	Content       string      `json:"content"`
	IsAnonymous   bool        `json:"isAnonymous"`
	IsOwner       bool        `json:"isOwner"`
	ViewerEngaged bool        `json:"viewerEngaged"`
}

// ExpiryChoices are the accepted values for CreateItemRequest.ExpiresInDays
var ExpiryChoices = map[ExpiryChoice]int{
	"7":     7,
	"30":    30,
	"never": 0,
}
