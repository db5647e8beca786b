package notifications

import (
	"context"
	"log/slog"
	"time"
)

// defaultPollInterval is how often a watcher recomputes the unread count
const defaultPollInterval = 5 * time.Second

// Watcher is the presence stream behind a single client connection: a
// fixed-interval poll of the unread count that invokes push only when the
// count changes. It is a coarse "go re-fetch" signal, not a delivery
// channel, so a missed tick is harmless.
type Watcher struct {
	service  Service
	logger   *slog.Logger
	interval time.Duration
}

// NewWatcher creates a presence watcher polling at the given interval.
// A non-positive interval selects the default.
func NewWatcher(service Service, interval time.Duration, logger *slog.Logger) *Watcher {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		service:  service,
		interval: interval,
		logger:   logger,
	}
}

// Watch polls the recipient's unread count until ctx is cancelled, calling
// push for the initial count and after every change. A push error ends the
// watch (the client is gone); a count error is logged and the loop keeps
// going.
func (w *Watcher) Watch(ctx context.Context, recipientID string, push func(count int) error) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	last := -1 // forces an initial push

	for {
		count, err := w.service.UnreadCount(ctx, recipientID)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			w.logger.Warn("unread count poll failed", "recipient", recipientID, "error", err)
		} else if count != last {
			if err := push(count); err != nil {
				return err
			}
			last = count
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
