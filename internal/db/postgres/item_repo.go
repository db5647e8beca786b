package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Murmur/internal/core/items"
)

type postgresItemRepo struct {
	db *sql.DB
}

// NewItemRepository creates a new PostgreSQL item repository
func NewItemRepository(db *sql.DB) items.Repository {
	return &postgresItemRepo{db: db}
}

// Create inserts a new item with its frozen author snapshot
func (r *postgresItemRepo) Create(ctx context.Context, item *items.Item) error {
	query := `
		INSERT INTO items (
			id, kind, author_id, content, is_anonymous,
			author_name, author_username, author_image,
			created_at, expires_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.ExecContext(
		ctx, query,
		item.ID, item.Kind, item.AuthorID, item.Content, item.IsAnonymous,
		item.AuthorName, item.AuthorUsername, item.AuthorImage,
		item.CreatedAt, item.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}

	return nil
}

// GetByID retrieves a non-expired item row
func (r *postgresItemRepo) GetByID(ctx context.Context, id string) (*items.Item, error) {
	query := `
		SELECT
			id, kind, author_id, content, is_anonymous,
			author_name, author_username, author_image,
			engage_count, created_at, expires_at
		FROM items
		WHERE id = $1 AND (expires_at IS NULL OR expires_at > NOW())
	`

	var item items.Item
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.Kind, &item.AuthorID, &item.Content, &item.IsAnonymous,
		&item.AuthorName, &item.AuthorUsername, &item.AuthorImage,
		&item.EngageCount, &item.CreatedAt, &item.ExpiresAt,
	)
	if err == sql.ErrNoRows {
		return nil, items.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return &item, nil
}

// GetView retrieves a single hydrated item view with the same anonymity
// suppression as the feed
func (r *postgresItemRepo) GetView(ctx context.Context, id string, viewerID *string) (*items.ItemView, error) {
	query := `
		SELECT
			i.id, i.kind, i.author_id, i.content, i.is_anonymous,
			i.author_name, i.author_username, i.author_image,
			i.engage_count, i.created_at, i.expires_at,
			(SELECT COUNT(*) FROM comments c WHERE c.item_id = i.id) AS comment_count,
			EXISTS (
				SELECT 1 FROM engagements e
				WHERE e.item_id = i.id AND e.user_id = $2
			) AS viewer_engaged
		FROM items i
		WHERE i.id = $1 AND (i.expires_at IS NULL OR i.expires_at > NOW())
	`

	row := r.db.QueryRowContext(ctx, query, id, viewerValue(viewerID))
	view, err := scanItemView(row, viewerID)
	if err == sql.ErrNoRows {
		return nil, items.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item view: %w", err)
	}

	return view, nil
}

// UpdateContent replaces an item's content
func (r *postgresItemRepo) UpdateContent(ctx context.Context, id, content string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE items SET content = $2 WHERE id = $1`, id, content)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return items.ErrNotFound
	}

	return nil
}

// Delete removes an item; comments and engagements cascade via FK
func (r *postgresItemRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return items.ErrNotFound
	}

	return nil
}

// viewerValue turns an optional viewer into a SQL parameter that can never
// match a real user id when absent
func viewerValue(viewerID *string) string {
	if viewerID == nil {
		return ""
	}
	return *viewerID
}
