package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Murmur/internal/core/feeds"
	"Murmur/internal/core/items"
)

// postgresFeedRepo runs the keyset-paginated feed query.
//
// DATABASE INDEXES REQUIRED (created in migration 002):
//
//  1. idx_items_kind_created ON items(kind, created_at DESC, id DESC)
//     - Covers kind filtering + chronological ordering + cursor range scans
//  2. idx_items_author ON items(author_id, created_at DESC, id DESC)
//     - Covers scoped (single wall) feeds
//
// The query fetches limit+1 rows in a single execution; the service layer
// detects the extra row and builds the next cursor. Ordering is strictly
// (created_at DESC, id DESC) - the id tie-break keeps cursors exact when
// several items share a timestamp, otherwise pages could skip or repeat
// rows.
type postgresFeedRepo struct {
	db *sql.DB
}

// NewFeedRepository creates a new PostgreSQL feed repository
func NewFeedRepository(db *sql.DB) feeds.Repository {
	return &postgresFeedRepo{db: db}
}

// ListItems returns up to q.Limit hydrated item views for the feed query
func (r *postgresFeedRepo) ListItems(ctx context.Context, q feeds.Query) ([]*items.ItemView, error) {
	viewer := viewerValue(q.Visibility.ViewerID)
	args := []interface{}{string(q.Kind), viewer}

	where := `i.kind = $1 AND (i.expires_at IS NULL OR i.expires_at > NOW())`

	if q.Visibility.ScopeAuthorID != nil {
		args = append(args, *q.Visibility.ScopeAuthorID)
		where += fmt.Sprintf(` AND i.author_id = $%d`, len(args))
		if q.Visibility.HideAnonymous() {
			// Visitors must not be able to enumerate another user's
			// anonymous posts by scoping on the author
			where += ` AND i.is_anonymous = FALSE`
		}
	}

	if q.After != nil {
		args = append(args, q.After.CreatedAt, q.After.ID)
		where += fmt.Sprintf(` AND (i.created_at < $%d OR (i.created_at = $%d AND i.id < $%d))`,
			len(args)-1, len(args)-1, len(args))
	}

	args = append(args, q.Limit)
	query := fmt.Sprintf(`
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
		WHERE %s
		ORDER BY i.created_at DESC, i.id DESC
		LIMIT $%d
	`, where, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query feed: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []*items.ItemView
	for rows.Next() {
		view, err := scanItemView(rows, q.Visibility.ViewerID)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feed item: %w", err)
		}
		result = append(result, view)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feed items: %w", err)
	}

	return result, nil
}

// rowScanner covers *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanItemView scans one hydrated item row and applies the anonymity
// display rules. For anonymous items the author block is dropped entirely
// for everyone but the true owner; IsOwner is still computed from the true
// author so owners keep their edit and delete affordances.
func scanItemView(row rowScanner, viewerID *string) (*items.ItemView, error) {
	var (
		view        items.ItemView
		authorID    string
		authorName  string
		authorUser  string
		authorImage sql.NullString
		expiresAt   sql.NullTime
	)

	err := row.Scan(
		&view.ID, &view.Kind, &authorID, &view.Content, &view.IsAnonymous,
		&authorName, &authorUser, &authorImage,
		&view.Stats.Engagements, &view.CreatedAt, &expiresAt,
		&view.Stats.Comments, &view.ViewerEngaged,
	)
	if err != nil {
		return nil, err
	}

	if expiresAt.Valid {
		view.ExpiresAt = &expiresAt.Time
	}

	view.IsOwner = viewerID != nil && *viewerID == authorID

	if !view.IsAnonymous || view.IsOwner {
		view.Author = &items.AuthorView{
			ID:          authorID,
			Username:    authorUser,
			DisplayName: authorName,
			Image:       nullStringPtr(authorImage),
		}
	}

	return &view, nil
}

// nullStringPtr converts sql.NullString to *string
func nullStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
