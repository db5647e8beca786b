package engagements

import (
	"context"
	"fmt"
	"log/slog"

	"Murmur/internal/core/items"
	"Murmur/internal/core/notifications"
)

type engagementService struct {
	repo    Repository
	emitter notifications.Emitter
	logger  *slog.Logger
}

// NewEngagementService creates a new interaction toggle engine
func NewEngagementService(repo Repository, emitter notifications.Emitter, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &engagementService{
		repo:    repo,
		emitter: emitter,
		logger:  logger,
	}
}

// Engage adds the viewer to a reflection's engagement set. Re-engaging is a
// no-op read of the current count.
func (s *engagementService) Engage(ctx context.Context, itemID, viewerID string) (*ToggleResponse, error) {
	return s.toggle(ctx, itemID, viewerID, items.KindReflection, notifications.KindEngaged, true)
}

// Like adds the viewer to a request's engagement set. Same monotonic-add
// contract as Engage but without the lifetime counter side effect.
func (s *engagementService) Like(ctx context.Context, itemID, viewerID string) (*ToggleResponse, error) {
	return s.toggle(ctx, itemID, viewerID, items.KindRequest, notifications.KindLiked, false)
}

func (s *engagementService) toggle(ctx context.Context, itemID, viewerID string, wantKind items.Kind, notifyKind notifications.Kind, bumpLifetime bool) (*ToggleResponse, error) {
	meta, err := s.repo.GetItemMeta(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if meta.Kind != string(wantKind) {
		return nil, ErrWrongKind
	}

	added, count, err := s.repo.Add(ctx, itemID, viewerID, bumpLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to add engagement: %w", err)
	}

	if added {
		s.logger.Info("engagement added",
			"item", itemID,
			"viewer", viewerID,
			"kind", meta.Kind,
			"count", count)

		// First-time engagement only; the idempotent no-op path above never
		// re-notifies
		s.emitter.Emit(ctx, meta.AuthorID, viewerID, notifyKind, &itemID)
	}

	return &ToggleResponse{Engaged: true, Count: count}, nil
}
