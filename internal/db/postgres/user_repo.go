package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Murmur/internal/core/users"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.Repository {
	return &postgresUserRepo{db: db}
}

// GetByID retrieves a user by id
func (r *postgresUserRepo) GetByID(ctx context.Context, id string) (*users.User, error) {
	query := `
		SELECT id, username, display_name, image, engagement_count, created_at
		FROM users
		WHERE id = $1
	`

	var user users.User
	var image sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.DisplayName, &image,
		&user.EngagementCount, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, users.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.Image = nullStringPtr(image)
	return &user, nil
}

// GetProfile retrieves a user with follow counts and the viewer's follow
// state, all from the single follows relation
func (r *postgresUserRepo) GetProfile(ctx context.Context, userID string, viewerID *string) (*users.Profile, error) {
	query := `
		SELECT
			u.id, u.username, u.display_name, u.image, u.engagement_count, u.created_at,
			(SELECT COUNT(*) FROM follows f WHERE f.followee_id = u.id) AS followers,
			(SELECT COUNT(*) FROM follows f WHERE f.follower_id = u.id) AS following,
			EXISTS (
				SELECT 1 FROM follows f
				WHERE f.follower_id = $2 AND f.followee_id = u.id
			) AS is_following
		FROM users u
		WHERE u.id = $1
	`

	var profile users.Profile
	var image sql.NullString
	err := r.db.QueryRowContext(ctx, query, userID, viewerValue(viewerID)).Scan(
		&profile.ID, &profile.Username, &profile.DisplayName, &image,
		&profile.EngagementCount, &profile.CreatedAt,
		&profile.Followers, &profile.Following, &profile.IsFollowing)
	if err == sql.ErrNoRows {
		return nil, users.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	profile.Image = nullStringPtr(image)
	return &profile, nil
}

// ToggleFollow flips the actor->target edge in one transaction. The edge is
// a single row, so both "directions" of the relation change together and a
// partial follow cannot be observed.
func (r *postgresUserRepo) ToggleFollow(ctx context.Context, actorID, targetID string) (bool, int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, `
		INSERT INTO follows (follower_id, followee_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (follower_id, followee_id) DO NOTHING
	`, actorID, targetID)
	if err != nil {
		return false, 0, fmt.Errorf("failed to insert follow: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return false, 0, fmt.Errorf("failed to check insert result: %w", err)
	}

	following := inserted == 1
	if !following {
		// Edge already existed: this call is the unfollow direction
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2
		`, actorID, targetID); err != nil {
			return false, 0, fmt.Errorf("failed to delete follow: %w", err)
		}
	}

	var followers int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM follows WHERE followee_id = $1`, targetID).Scan(&followers)
	if err != nil {
		return false, 0, fmt.Errorf("failed to count followers: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, 0, fmt.Errorf("failed to commit: %w", err)
	}

	return following, followers, nil
}
