package comments

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Comment belongs to exactly one item and is cascade-deleted with it
type Comment struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	ID        string    `json:"id" db:"id"`
	ItemID    string    `json:"itemId" db:"item_id"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	Content   string    `json:"content" db:"content"`
}

// CreateCommentRequest represents input for creating a comment
type CreateCommentRequest struct {
	ItemID   string `json:"-"`
	AuthorID string `json:"-"`
	Content  string `json:"content"`
}

// Sentinel errors
var (
	// ErrItemNotFound is returned when the parent item does not exist
	ErrItemNotFound = errors.New("item not found")

	// ErrNotFound is returned when a comment id does not resolve
	ErrNotFound = errors.New("comment not found")

	// ErrNotOwner is returned when a delete is attempted by a non-author
	ErrNotOwner = errors.New("caller does not own this comment")
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}

// Service defines comment business logic
type Service interface {
	// CreateComment stores a comment on an existing item and notifies the
	// item owner
	CreateComment(ctx context.Context, req CreateCommentRequest) (*Comment, error)

	// ListByItem returns an item's comments, oldest first
	ListByItem(ctx context.Context, itemID string) ([]*Comment, error)

	// DeleteComment removes a comment owned by viewerID
	DeleteComment(ctx context.Context, commentID, viewerID string) error
}

// Repository defines comment data access
type Repository interface {
	Insert(ctx context.Context, comment *Comment) error
	GetByID(ctx context.Context, id string) (*Comment, error)
	ListByItem(ctx context.Context, itemID string, limit int) ([]*Comment, error)
	Delete(ctx context.Context, id string) error
}
