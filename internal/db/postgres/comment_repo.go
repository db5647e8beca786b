package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Murmur/internal/core/comments"
)

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

// Insert stores a new comment
func (r *postgresCommentRepo) Insert(ctx context.Context, comment *comments.Comment) error {
	query := `
		INSERT INTO comments (id, item_id, author_id, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.ItemID, comment.AuthorID, comment.Content, comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	return nil
}

// GetByID retrieves a comment
func (r *postgresCommentRepo) GetByID(ctx context.Context, id string) (*comments.Comment, error) {
	query := `
		SELECT id, item_id, author_id, content, created_at
		FROM comments
		WHERE id = $1
	`

	var comment comments.Comment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID, &comment.ItemID, &comment.AuthorID, &comment.Content, &comment.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, comments.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return &comment, nil
}

// ListByItem retrieves an item's comments, oldest first
func (r *postgresCommentRepo) ListByItem(ctx context.Context, itemID string, limit int) ([]*comments.Comment, error) {
	query := `
		SELECT id, item_id, author_id, content, created_at
		FROM comments
		WHERE item_id = $1
		ORDER BY created_at ASC, id ASC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, itemID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []*comments.Comment
	for rows.Next() {
		var comment comments.Comment
		err := rows.Scan(&comment.ID, &comment.ItemID, &comment.AuthorID, &comment.Content, &comment.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		result = append(result, &comment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return result, nil
}

// Delete removes a comment
func (r *postgresCommentRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return comments.ErrNotFound
	}

	return nil
}
