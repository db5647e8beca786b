package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Murmur/internal/core/notifications"
)

type postgresNotificationRepo struct {
	db *sql.DB
}

// NewNotificationRepository creates a new PostgreSQL notification repository
func NewNotificationRepository(db *sql.DB) notifications.Repository {
	return &postgresNotificationRepo{db: db}
}

// Insert stores a new notification record
func (r *postgresNotificationRepo) Insert(ctx context.Context, n *notifications.Notification) error {
	query := `
		INSERT INTO notifications (id, recipient_id, actor_id, kind, subject_item_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		n.ID, n.RecipientID, n.ActorID, n.Kind, n.SubjectItemID, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}

	return nil
}

// ListByRecipient retrieves notifications newest first
func (r *postgresNotificationRepo) ListByRecipient(ctx context.Context, recipientID string, limit int) ([]*notifications.Notification, error) {
	query := `
		SELECT id, recipient_id, actor_id, kind, subject_item_id, created_at, read_at
		FROM notifications
		WHERE recipient_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, recipientID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []*notifications.Notification
	for rows.Next() {
		var n notifications.Notification
		var subject sql.NullString
		var readAt sql.NullTime
		err := rows.Scan(&n.ID, &n.RecipientID, &n.ActorID, &n.Kind, &subject, &n.CreatedAt, &readAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		n.SubjectItemID = nullStringPtr(subject)
		if readAt.Valid {
			n.ReadAt = &readAt.Time
		}
		result = append(result, &n)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notifications: %w", err)
	}

	return result, nil
}

// MarkRead sets read_at on one unread notification owned by the recipient
func (r *postgresNotificationRepo) MarkRead(ctx context.Context, recipientID, notificationID string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE notifications
		SET read_at = NOW()
		WHERE id = $1 AND recipient_id = $2 AND read_at IS NULL
	`, notificationID, recipientID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		// Either unknown id or already read; only the former is an error
		var exists bool
		err := r.db.QueryRowContext(ctx, `
			SELECT EXISTS (SELECT 1 FROM notifications WHERE id = $1 AND recipient_id = $2)
		`, notificationID, recipientID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check notification: %w", err)
		}
		if !exists {
			return notifications.ErrNotFound
		}
	}

	return nil
}

// MarkAllRead sets read_at on every unread notification of the recipient
func (r *postgresNotificationRepo) MarkAllRead(ctx context.Context, recipientID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE notifications
		SET read_at = NOW()
		WHERE recipient_id = $1 AND read_at IS NULL
	`, recipientID)
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return nil
}

// CountUnread returns the recipient's unread total
func (r *postgresNotificationRepo) CountUnread(ctx context.Context, recipientID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM notifications
		WHERE recipient_id = $1 AND read_at IS NULL
	`, recipientID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}
