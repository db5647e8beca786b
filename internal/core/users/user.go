package users

import (
	"context"
	"errors"
	"time"

	"Murmur/internal/core/items"
)

// User is a wall member. The follow relation is stored as a single
// follower->followee edge per pair, so the follower/following views are
// symmetric by construction. EngagementCount is the lifetime counter bumped
// by first-time engagements on the user's reflections.
type User struct {
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	Image           *string   `json:"image,omitempty" db:"image"`
	ID              string    `json:"id" db:"id"`
	Username        string    `json:"username" db:"username"`
	DisplayName     string    `json:"displayName" db:"display_name"`
	EngagementCount int       `json:"engagementCount" db:"engagement_count"`
}

// Profile is the viewer-aware read model for a user
type Profile struct {
	User
	Followers   int  `json:"followers"`
	Following   int  `json:"following"`
	IsFollowing bool `json:"isFollowing"`
}

// FollowResponse is the result of a follow toggle
type FollowResponse struct {
	Following      bool `json:"following"`
	FollowersCount int  `json:"followersCount"`
}

// Sentinel errors
var (
	// ErrNotFound is returned when a user id does not resolve
	ErrNotFound = errors.New("user not found")

	// ErrSelfFollow is returned when a user tries to follow themselves
	ErrSelfFollow = errors.New("cannot follow yourself")
)

// Service defines user business logic
type Service interface {
	// GetProfile returns a user's profile with follow counts and the
	// viewer's follow state
	GetProfile(ctx context.Context, userID string, viewerID *string) (*Profile, error)

	// ToggleFollow flips the actor->target follow edge and reports the
	// resulting state and the target's follower count. The follow direction
	// notifies the target; unfollow does not.
	ToggleFollow(ctx context.Context, actorID, targetID string) (*FollowResponse, error)

	// Snapshot resolves the display fields frozen onto new items.
	// Satisfies items.AuthorDirectory.
	Snapshot(ctx context.Context, userID string) (*items.AuthorSnapshot, error)
}

// Repository defines user data access. ToggleFollow must flip the edge
// atomically: the single-row representation makes a half-applied follow
// impossible, which is the correctness hazard the bidirectional update
// would otherwise carry.
type Repository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	GetProfile(ctx context.Context, userID string, viewerID *string) (*Profile, error)
	ToggleFollow(ctx context.Context, actorID, targetID string) (following bool, followers int, err error)
}
