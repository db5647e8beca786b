package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Murmur/internal/core/engagements"
)

type postgresEngagementRepo struct {
	db *sql.DB
}

// NewEngagementRepository creates a new PostgreSQL engagement repository
func NewEngagementRepository(db *sql.DB) engagements.Repository {
	return &postgresEngagementRepo{db: db}
}

// GetItemMeta loads the fields the toggle engine needs
func (r *postgresEngagementRepo) GetItemMeta(ctx context.Context, itemID string) (*engagements.ItemMeta, error) {
	query := `
		SELECT id, kind, author_id, engage_count
		FROM items
		WHERE id = $1 AND (expires_at IS NULL OR expires_at > NOW())
	`

	var meta engagements.ItemMeta
	err := r.db.QueryRowContext(ctx, query, itemID).Scan(
		&meta.ID, &meta.Kind, &meta.AuthorID, &meta.EngageCount,
	)
	if err == sql.ErrNoRows {
		return nil, engagements.ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item meta: %w", err)
	}

	return &meta, nil
}

// Add inserts (itemID, userID) into the engagement set. The primary key on
// (item_id, user_id) makes the insert an atomic set-union: a duplicate add
// hits ON CONFLICT DO NOTHING and is reported as a no-op, so the counter
// bumps below only ever run once per (item, viewer) pair even under
// concurrent callers.
func (r *postgresEngagementRepo) Add(ctx context.Context, itemID, userID string, bumpLifetime bool) (bool, int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, `
		INSERT INTO engagements (item_id, user_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (item_id, user_id) DO NOTHING
	`, itemID, userID)
	if err != nil {
		return false, 0, fmt.Errorf("failed to insert engagement: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return false, 0, fmt.Errorf("failed to check insert result: %w", err)
	}

	var count int
	if inserted == 0 {
		// Already in the set: no-op read of the current count
		err = tx.QueryRowContext(ctx,
			`SELECT engage_count FROM items WHERE id = $1`, itemID).Scan(&count)
		if err == sql.ErrNoRows {
			return false, 0, engagements.ErrItemNotFound
		}
		if err != nil {
			return false, 0, fmt.Errorf("failed to read engage count: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return false, 0, fmt.Errorf("failed to commit: %w", err)
		}
		return false, count, nil
	}

	err = tx.QueryRowContext(ctx, `
		UPDATE items SET engage_count = engage_count + 1
		WHERE id = $1
		RETURNING engage_count
	`, itemID).Scan(&count)
	if err != nil {
		return false, 0, fmt.Errorf("failed to bump engage count: %w", err)
	}

	if bumpLifetime {
		_, err = tx.ExecContext(ctx, `
			UPDATE users SET engagement_count = engagement_count + 1
			WHERE id = (SELECT author_id FROM items WHERE id = $1)
		`, itemID)
		if err != nil {
			return false, 0, fmt.Errorf("failed to bump lifetime counter: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, 0, fmt.Errorf("failed to commit: %w", err)
	}

	return true, count, nil
}
