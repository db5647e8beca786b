package notifications

import (
	"context"
	"errors"
	"time"
)

// Kind classifies what a notification is about
type Kind string

const (
	KindEngaged       Kind = "engaged"
	KindCommented     Kind = "commented"
	KindCommentedWord Kind = "commentedWord"
	KindLiked         Kind = "liked"
	KindFollowed      Kind = "followed"
)

// Notification is written once by the emitter and is immutable afterwards
// except for ReadAt
type Notification struct {
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	ReadAt        *time.Time `json:"readAt,omitempty" db:"read_at"`
	SubjectItemID *string    `json:"subjectItemId,omitempty" db:"subject_item_id"`
	ID            string     `json:"id" db:"id"`
	RecipientID   string     `json:"recipientId" db:"recipient_id"`
	ActorID       string     `json:"actorId" db:"actor_id"`
	Kind          Kind       `json:"kind" db:"kind"`
}

// Sentinel errors
var (
	// ErrNotFound is returned when a notification id does not resolve for
	// the recipient
	ErrNotFound = errors.New("notification not found")
)

// Emitter creates notification records for interactions. Emission is a
// best-effort side channel: it must never fail or roll back the triggering
// interaction, and callers invoke it exactly once per state-changing event.
type Emitter interface {
	Emit(ctx context.Context, recipientID, actorID string, kind Kind, subjectItemID *string)
}

// Service defines the recipient-facing notification operations
type Service interface {
	Emitter

	// List returns the recipient's notifications, newest first, capped at 50
	List(ctx context.Context, recipientID string) ([]*Notification, error)

	// MarkRead sets readAt on one notification owned by the recipient
	MarkRead(ctx context.Context, recipientID, notificationID string) error

	// MarkAllRead sets readAt on every unread notification of the recipient
	MarkAllRead(ctx context.Context, recipientID string) error

	// UnreadCount returns the recipient's current unread total
	UnreadCount(ctx context.Context, recipientID string) (int, error)
}

// Repository defines notification data access
type Repository interface {
	Insert(ctx context.Context, n *Notification) error
	ListByRecipient(ctx context.Context, recipientID string, limit int) ([]*Notification, error)
	MarkRead(ctx context.Context, recipientID, notificationID string) error
	MarkAllRead(ctx context.Context, recipientID string) error
	CountUnread(ctx context.Context, recipientID string) (int, error)
}
