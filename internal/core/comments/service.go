package comments

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"Murmur/internal/core/items"
	"Murmur/internal/core/notifications"
)

const (
	maxCommentLength = 500
	listLimit        = 100
)

type commentService struct {
	repo        Repository
	itemRepo    items.Repository
	emitter     notifications.Emitter
	invalidator items.FeedInvalidator
	logger      *slog.Logger
	now         func() time.Time
}

// NewCommentService creates a new comment service
func NewCommentService(repo Repository, itemRepo items.Repository, emitter notifications.Emitter, invalidator items.FeedInvalidator, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &commentService{
		repo:        repo,
		itemRepo:    itemRepo,
		emitter:     emitter,
		invalidator: invalidator,
		logger:      logger,
		now:         time.Now,
	}
}

// CreateComment stores a comment on an existing item. Exactly one
// notification goes to the item owner per created comment; the emitter
// suppresses the self-comment case.
func (s *commentService) CreateComment(ctx context.Context, req CreateCommentRequest) (*Comment, error) {
	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		return nil, NewValidationError("content", "content is required")
	}
	if len(req.Content) > maxCommentLength {
		return nil, NewValidationError("content", fmt.Sprintf("content must not exceed %d characters", maxCommentLength))
	}

	item, err := s.itemRepo.GetByID(ctx, req.ItemID)
	if err != nil {
		if err == items.ErrNotFound {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to load item: %w", err)
	}

	comment := &Comment{
		ID:        uuid.New().String(),
		ItemID:    item.ID,
		AuthorID:  req.AuthorID,
		Content:   req.Content,
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.Insert(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	// Comments on requests notify with their own kind so recipients can tell
	// a reply to their request apart from a reflection comment
	notifyKind := notifications.KindCommented
	if item.Kind == items.KindRequest {
		notifyKind = notifications.KindCommentedWord
	}
	s.emitter.Emit(ctx, item.AuthorID, req.AuthorID, notifyKind, &item.ID)
	s.invalidator.Invalidate(item.Kind)

	s.logger.Info("comment created", "comment", comment.ID, "item", item.ID)
	return comment, nil
}

// ListByItem returns an item's comments, oldest first
func (s *commentService) ListByItem(ctx context.Context, itemID string) ([]*Comment, error) {
	if _, err := s.itemRepo.GetByID(ctx, itemID); err != nil {
		if err == items.ErrNotFound {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to load item: %w", err)
	}
	return s.repo.ListByItem(ctx, itemID, listLimit)
}

// DeleteComment removes a comment after an ownership check
func (s *commentService) DeleteComment(ctx context.Context, commentID, viewerID string) error {
	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != viewerID {
		return ErrNotOwner
	}

	if err := s.repo.Delete(ctx, commentID); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	s.logger.Info("comment deleted", "comment", commentID, "item", comment.ItemID)
	return nil
}
