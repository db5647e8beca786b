package notification

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"Murmur/internal/api/middleware"
	"Murmur/internal/core/notifications"
)

const (
	writeTimeout = 10 * time.Second
	pongWait     = 60 * time.Second
	pingPeriod   = 30 * time.Second
)

// PresenceHandler upgrades the connection to a websocket and streams
// `{"count":n}` frames whenever the caller's unread notification count
// changes. It is a presence signal telling the client to re-fetch, not a
// notification delivery channel.
type PresenceHandler struct {
	watcher  *notifications.Watcher
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewPresenceHandler creates a new presence stream handler
func NewPresenceHandler(watcher *notifications.Watcher, logger *slog.Logger) *PresenceHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PresenceHandler{
		watcher: watcher,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  512,
			WriteBufferSize: 512,
		},
		logger: logger,
	}
}

// HandlePresence serves the presence stream for the authenticated caller
// GET /notifications/presence
func (h *PresenceHandler) HandlePresence(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the error response
		h.logger.Debug("presence upgrade failed", "error", err)
		return
	}
	defer func() { _ = conn.Close() }()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		h.logger.Debug("failed to set read deadline", "error", err)
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Read loop: we never expect client frames, but reading is what surfaces
	// the close and keeps pong handling alive. Cancels the watcher on
	// disconnect so the per-connection timer is released promptly.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	// Ping loop keeps idle connections from being reaped by proxies
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(writeTimeout)); err != nil {
					cancel()
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	err = h.watcher.Watch(ctx, userID, func(count int) error {
		if err := conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
			return err
		}
		return conn.WriteJSON(map[string]int{"count": count})
	})
	if err != nil && ctx.Err() == nil {
		h.logger.Debug("presence stream ended", "user", userID, "error", err)
	}
}
