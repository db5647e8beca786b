package items

import (
	"errors"
	"fmt"
)

// Sentinel errors for item operations
var (
	// ErrNotFound is returned when an item id does not resolve
	ErrNotFound = errors.New("item not found")

	// ErrNotOwner is returned when a mutation is attempted by a non-owner
	ErrNotOwner = errors.New("caller does not own this item")

	// ErrAuthorNotFound is returned when the posting user does not exist
	ErrAuthorNotFound = errors.New("author not found")
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
