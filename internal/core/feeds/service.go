package feeds

import (
	"context"
	"fmt"
	"log/slog"

	"Murmur/internal/core/items"
)

type feedService struct {
	repo   Repository
	codec  *CursorCodec
	cache  *AnonFeedCache
	logger *slog.Logger
}

// NewFeedService creates a new feed service. cache may be nil to disable the
// anonymous read path cache.
func NewFeedService(repo Repository, codec *CursorCodec, cache *AnonFeedCache, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &feedService{
		repo:   repo,
		codec:  codec,
		cache:  cache,
		logger: logger,
	}
}

// GetFeed returns one page of the requested feed. Malformed cursors degrade
// to the first page rather than failing the call.
func (s *feedService) GetFeed(ctx context.Context, req GetFeedRequest) (*FeedResponse, error) {
	if !req.Kind.Valid() {
		return nil, items.NewValidationError("kind", "kind must be one of: reflection, request")
	}

	limit := req.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	var after *Position
	cacheKey := "start"
	if req.Cursor != nil && *req.Cursor != "" {
		if pos, ok := s.codec.Decode(*req.Cursor); ok {
			after = &pos
			cacheKey = *req.Cursor
		} else {
			s.logger.Debug("discarding malformed feed cursor", "kind", req.Kind)
		}
	}

	query := Query{
		Kind:       req.Kind,
		Visibility: req.Visibility,
		After:      after,
		Limit:      limit + 1, // one extra row to detect a next page
	}

	if s.cache != nil && req.Visibility.Anonymous() {
		page, err := s.cache.GetOrFill(ctx, req.Kind, cacheKey, limit, func(ctx context.Context) (*FeedResponse, error) {
			return s.assemble(ctx, query, limit)
		})
		if err == nil {
			return page, nil
		}
		// Cache-fill failures fall through to a direct computation
		s.logger.Warn("anonymous feed cache fill failed, serving uncached", "kind", req.Kind, "error", err)
	}

	return s.assemble(ctx, query, limit)
}

func (s *feedService) assemble(ctx context.Context, query Query, limit int) (*FeedResponse, error) {
	rows, err := s.repo.ListItems(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list feed items: %w", err)
	}

	resp := &FeedResponse{Items: rows}
	if len(rows) > limit {
		resp.Items = rows[:limit]
		last := resp.Items[len(resp.Items)-1]
		cursor := s.codec.Encode(Position{CreatedAt: last.CreatedAt, ID: last.ID})
		resp.NextCursor = &cursor
	}
	if resp.Items == nil {
		resp.Items = []*items.ItemView{}
	}

	return resp, nil
}
