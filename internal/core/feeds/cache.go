package feeds

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"Murmur/internal/core/items"
)

// AnonFeedCache is a short-TTL cache in front of the feed assembler for
// fully anonymous requests (no viewer, no scope). Entries are keyed by
// (kind, cursor, limit) and invalidated coarsely per kind: any mutation of a
// kind drops every cached page of that kind. Correctness over hit rate.
//
// Concurrent fills for the same key collapse to one underlying query via
// singleflight so a popular page does not trigger a query storm.
type AnonFeedCache struct {
	entries map[string]*cacheEntry
	group   singleflight.Group
	ttl     time.Duration
	logger  *slog.Logger
	mu      sync.RWMutex
}

type cacheEntry struct {
	expiresAt time.Time
	page      *FeedResponse
}

// NewAnonFeedCache creates a cache with the given TTL
func NewAnonFeedCache(ttl time.Duration, logger *slog.Logger) *AnonFeedCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnonFeedCache{
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
		logger:  logger,
	}
}

// GetOrFill returns the cached page for the key, or runs fill (once across
// concurrent callers) and caches its result
func (c *AnonFeedCache) GetOrFill(ctx context.Context, kind items.Kind, cursor string, limit int, fill func(context.Context) (*FeedResponse, error)) (*FeedResponse, error) {
	key := cacheKey(kind, cursor, limit)

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && time.Now().Before(entry.expiresAt) {
		return entry.page, nil
	}

	result, err, _ := c.group.Do(key, func() (interface{}, error) {
		// Another flight may have populated the entry while we waited
		c.mu.RLock()
		entry, ok := c.entries[key]
		c.mu.RUnlock()
		if ok && time.Now().Before(entry.expiresAt) {
			return entry.page, nil
		}

		page, err := fill(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = &cacheEntry{page: page, expiresAt: time.Now().Add(c.ttl)}
		c.mu.Unlock()

		c.logger.Debug("anonymous feed page cached", "key", key)
		return page, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*FeedResponse), nil
}

// Invalidate drops every cached page for a content kind. Called on any
// create, edit or delete of that kind.
func (c *AnonFeedCache) Invalidate(kind items.Kind) {
	prefix := string(kind) + "|"

	c.mu.Lock()
	for key := range c.entries {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()

	c.logger.Debug("anonymous feed cache invalidated", "kind", kind)
}

func cacheKey(kind items.Kind, cursor string, limit int) string {
	return fmt.Sprintf("%s|%s|%d", kind, cursor, limit)
}
