package items

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxContentLength = 1000

type itemService struct {
	repo        Repository
	authors     AuthorDirectory
	invalidator FeedInvalidator
	logger      *slog.Logger
	now         func() time.Time
}

// NewItemService creates a new item service
func NewItemService(repo Repository, authors AuthorDirectory, invalidator FeedInvalidator, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &itemService{
		repo:        repo,
		authors:     authors,
		invalidator: invalidator,
		logger:      logger,
		now:         time.Now,
	}
}

// CreateItem validates the request, freezes the author display snapshot and
// stores the item
func (s *itemService) CreateItem(ctx context.Context, req CreateItemRequest) (*ItemView, error) {
	if err := s.validateCreateRequest(&req); err != nil {
		return nil, err
	}

	snapshot, err := s.authors.Snapshot(ctx, req.AuthorID)
	if err != nil {
		return nil, ErrAuthorNotFound
	}

	item := &Item{
		ID:             uuid.New().String(),
		Kind:           req.Kind,
		AuthorID:       req.AuthorID,
		Content:        req.Content,
		IsAnonymous:    req.IsAnonymous,
		AuthorName:     snapshot.Name,
		AuthorUsername: snapshot.Username,
		AuthorImage:    snapshot.Image,
		CreatedAt:      s.now().UTC(),
	}

	if req.Kind == KindRequest && req.ExpiresInDays != nil {
		if days := ExpiryChoices[*req.ExpiresInDays]; days > 0 {
			expires := item.CreatedAt.AddDate(0, 0, days)
			item.ExpiresAt = &expires
		}
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	s.invalidator.Invalidate(item.Kind)

	s.logger.Info("item created",
		"item", item.ID,
		"kind", item.Kind,
		"anonymous", item.IsAnonymous)

	return viewForOwner(item), nil
}

// GetItem returns a single item view for the given viewer
func (s *itemService) GetItem(ctx context.Context, itemID string, viewerID *string) (*ItemView, error) {
	if strings.TrimSpace(itemID) == "" {
		return nil, ErrNotFound
	}
	return s.repo.GetView(ctx, itemID, viewerID)
}

// UpdateItem replaces the content of an item after an ownership check
func (s *itemService) UpdateItem(ctx context.Context, itemID, viewerID, content string) (*ItemView, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, NewValidationError("content", "content is required")
	}
	if len(content) > maxContentLength {
		return nil, NewValidationError("content", fmt.Sprintf("content must not exceed %d characters", maxContentLength))
	}

	item, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.AuthorID != viewerID {
		return nil, ErrNotOwner
	}

	if err := s.repo.UpdateContent(ctx, itemID, content); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	s.invalidator.Invalidate(item.Kind)

	return s.repo.GetView(ctx, itemID, &viewerID)
}

// DeleteItem removes an item after an ownership check. Comments and
// engagement rows cascade at the store.
func (s *itemService) DeleteItem(ctx context.Context, itemID, viewerID string) error {
	item, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item.AuthorID != viewerID {
		return ErrNotOwner
	}

	if err := s.repo.Delete(ctx, itemID); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	s.invalidator.Invalidate(item.Kind)

	s.logger.Info("item deleted", "item", itemID, "kind", item.Kind)
	return nil
}

func (s *itemService) validateCreateRequest(req *CreateItemRequest) error {
	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		return NewValidationError("content", "content is required")
	}
	if len(req.Content) > maxContentLength {
		return NewValidationError("content", fmt.Sprintf("content must not exceed %d characters", maxContentLength))
	}
	if !req.Kind.Valid() {
		return NewValidationError("kind", "kind must be one of: reflection, request")
	}
	if req.Kind == KindRequest && req.IsAnonymous {
		return NewValidationError("isAnonymous", "requests cannot be anonymous")
	}
	if req.Kind == KindReflection && req.ExpiresInDays != nil {
		return NewValidationError("expiresInDays", "reflections do not expire")
	}
	if req.ExpiresInDays != nil {
		if _, ok := ExpiryChoices[*req.ExpiresInDays]; !ok {
			return NewValidationError("expiresInDays", "expiresInDays must be one of: 7, 30, never")
		}
	}
	if strings.TrimSpace(req.AuthorID) == "" {
		return errors.New("author is required")
	}
	return nil
}

// viewForOwner builds the creation response view; the creator always sees
// their own author display
func viewForOwner(item *Item) *ItemView {
	return &ItemView{
		ID:          item.ID,
		Kind:        item.Kind,
		Content:     item.Content,
		IsAnonymous: item.IsAnonymous,
		CreatedAt:   item.CreatedAt,
		ExpiresAt:   item.ExpiresAt,
		IsOwner:     true,
		Author: &AuthorView{
			ID:          item.AuthorID,
			Username:    item.AuthorUsername,
			DisplayName: item.AuthorName,
			Image:       item.AuthorImage,
		},
	}
}
