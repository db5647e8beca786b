package users

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"Murmur/internal/core/items"
	"Murmur/internal/core/notifications"
)

type userService struct {
	repo    Repository
	emitter notifications.Emitter
	logger  *slog.Logger
}

// NewUserService creates a new user service
func NewUserService(repo Repository, emitter notifications.Emitter, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &userService{
		repo:    repo,
		emitter: emitter,
		logger:  logger,
	}
}

// GetProfile returns a user's profile for the given viewer
func (s *userService) GetProfile(ctx context.Context, userID string, viewerID *string) (*Profile, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrNotFound
	}
	return s.repo.GetProfile(ctx, userID, viewerID)
}

// ToggleFollow flips the actor->target follow edge
func (s *userService) ToggleFollow(ctx context.Context, actorID, targetID string) (*FollowResponse, error) {
	if actorID == targetID {
		return nil, ErrSelfFollow
	}

	// Target must exist before flipping the edge
	if _, err := s.repo.GetByID(ctx, targetID); err != nil {
		return nil, err
	}

	following, followers, err := s.repo.ToggleFollow(ctx, actorID, targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle follow: %w", err)
	}

	if following {
		// Only the follow edge notifies; unfollowing is silent
		s.emitter.Emit(ctx, targetID, actorID, notifications.KindFollowed, nil)
	}

	s.logger.Info("follow toggled",
		"actor", actorID,
		"target", targetID,
		"following", following)

	return &FollowResponse{Following: following, FollowersCount: followers}, nil
}

// Snapshot resolves the display fields frozen onto a new item at creation
// time. Satisfies items.AuthorDirectory.
func (s *userService) Snapshot(ctx context.Context, userID string) (*items.AuthorSnapshot, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &items.AuthorSnapshot{
		Name:     user.DisplayName,
		Username: user.Username,
		Image:    user.Image,
	}, nil
}
