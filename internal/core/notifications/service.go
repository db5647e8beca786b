package notifications

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// listCap bounds the notification list response
const listCap = 50

type notificationService struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &notificationService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Emit writes a notification record. Self-actions are suppressed and
// insert failures are logged and swallowed; the triggering interaction has
// already succeeded and must not be failed retroactively.
func (s *notificationService) Emit(ctx context.Context, recipientID, actorID string, kind Kind, subjectItemID *string) {
	if recipientID == "" || recipientID == actorID {
		return
	}

	n := &Notification{
		ID:            uuid.New().String(),
		RecipientID:   recipientID,
		ActorID:       actorID,
		Kind:          kind,
		SubjectItemID: subjectItemID,
		CreatedAt:     s.now().UTC(),
	}

	if err := s.repo.Insert(ctx, n); err != nil {
		s.logger.Error("failed to emit notification",
			"error", err,
			"recipient", recipientID,
			"actor", actorID,
			"kind", kind)
		return
	}

	s.logger.Debug("notification emitted",
		"recipient", recipientID,
		"actor", actorID,
		"kind", kind)
}

// List returns the recipient's notifications, newest first
func (s *notificationService) List(ctx context.Context, recipientID string) ([]*Notification, error) {
	return s.repo.ListByRecipient(ctx, recipientID, listCap)
}

// MarkRead sets readAt on a single notification
func (s *notificationService) MarkRead(ctx context.Context, recipientID, notificationID string) error {
	return s.repo.MarkRead(ctx, recipientID, notificationID)
}

// MarkAllRead sets readAt on all of the recipient's unread notifications
func (s *notificationService) MarkAllRead(ctx context.Context, recipientID string) error {
	return s.repo.MarkAllRead(ctx, recipientID)
}

// UnreadCount returns the recipient's unread notification total
func (s *notificationService) UnreadCount(ctx context.Context, recipientID string) (int, error) {
	return s.repo.CountUnread(ctx, recipientID)
}
