package engagements

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"Murmur/internal/core/notifications"
)

type mockEngagementRepo struct {
	mock.Mock
}

func (m *mockEngagementRepo) GetItemMeta(ctx context.Context, itemID string) (*ItemMeta, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ItemMeta), args.Error(1)
}

func (m *mockEngagementRepo) Add(ctx context.Context, itemID, userID string, bumpLifetime bool) (bool, int, error) {
	args := m.Called(ctx, itemID, userID, bumpLifetime)
	return args.Bool(0), args.Int(1), args.Error(2)
}

type mockEmitter struct {
	mock.Mock
}

func (m *mockEmitter) Emit(ctx context.Context, recipientID, actorID string, kind notifications.Kind, subjectItemID *string) {
	m.Called(ctx, recipientID, actorID, kind, subjectItemID)
}

func newTestEngagementService() (Service, *mockEngagementRepo, *mockEmitter) {
	repo := new(mockEngagementRepo)
	emitter := new(mockEmitter)
	return NewEngagementService(repo, emitter, nil), repo, emitter
}

func TestEngage_FirstTime(t *testing.T) {
	service, repo, emitter := newTestEngagementService()
	ctx := context.Background()
	itemID := "item-1"

	repo.On("GetItemMeta", ctx, itemID).Return(&ItemMeta{ID: itemID, Kind: "reflection", AuthorID: "author"}, nil)
	repo.On("Add", ctx, itemID, "viewer", true).Return(true, 5, nil)
	emitter.On("Emit", ctx, "author", "viewer", notifications.KindEngaged, &itemID).Return()

	resp, err := service.Engage(ctx, itemID, "viewer")

	require.NoError(t, err)
	assert.True(t, resp.Engaged)
	assert.Equal(t, 5, resp.Count)
	emitter.AssertExpectations(t)
}

func TestEngage_RepeatIsNoOp(t *testing.T) {
	service, repo, emitter := newTestEngagementService()
	ctx := context.Background()

	repo.On("GetItemMeta", ctx, "item-1").Return(&ItemMeta{ID: "item-1", Kind: "reflection", AuthorID: "author"}, nil)
	repo.On("Add", ctx, "item-1", "viewer", true).Return(false, 5, nil)

	resp, err := service.Engage(ctx, "item-1", "viewer")

	require.NoError(t, err)
	assert.True(t, resp.Engaged, "a repeated engage still reports the engaged state")
	assert.Equal(t, 5, resp.Count, "count must not move on a duplicate engage")
	emitter.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEngage_RejectsRequests(t *testing.T) {
	service, repo, emitter := newTestEngagementService()
	ctx := context.Background()

	repo.On("GetItemMeta", ctx, "item-1").Return(&ItemMeta{ID: "item-1", Kind: "request", AuthorID: "author"}, nil)

	_, err := service.Engage(ctx, "item-1", "viewer")

	assert.ErrorIs(t, err, ErrWrongKind)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	emitter.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEngage_UnknownItem(t *testing.T) {
	service, repo, _ := newTestEngagementService()
	ctx := context.Background()

	repo.On("GetItemMeta", ctx, "missing").Return(nil, ErrItemNotFound)

	_, err := service.Engage(ctx, "missing", "viewer")

	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestLike_FirstTime(t *testing.T) {
	service, repo, emitter := newTestEngagementService()
	ctx := context.Background()
	itemID := "req-1"

	repo.On("GetItemMeta", ctx, itemID).Return(&ItemMeta{ID: itemID, Kind: "request", AuthorID: "author"}, nil)
	repo.On("Add", ctx, itemID, "viewer", false).Return(true, 1, nil)
	emitter.On("Emit", ctx, "author", "viewer", notifications.KindLiked, &itemID).Return()

	resp, err := service.Like(ctx, itemID, "viewer")

	require.NoError(t, err)
	assert.True(t, resp.Engaged)
	assert.Equal(t, 1, resp.Count)
	repo.AssertCalled(t, "Add", ctx, itemID, "viewer", false)
	emitter.AssertExpectations(t)
}

func TestLike_RejectsReflections(t *testing.T) {
	service, repo, _ := newTestEngagementService()
	ctx := context.Background()

	repo.On("GetItemMeta", ctx, "item-1").Return(&ItemMeta{ID: "item-1", Kind: "reflection", AuthorID: "author"}, nil)

	_, err := service.Like(ctx, "item-1", "viewer")

	assert.ErrorIs(t, err, ErrWrongKind)
}

func TestEngage_OwnItemStillCounts(t *testing.T) {
	// Engaging your own item is allowed; the emitter itself drops
	// self-notifications
	service, repo, emitter := newTestEngagementService()
	ctx := context.Background()
	itemID := "item-1"

	repo.On("GetItemMeta", ctx, itemID).Return(&ItemMeta{ID: itemID, Kind: "reflection", AuthorID: "viewer"}, nil)
	repo.On("Add", ctx, itemID, "viewer", true).Return(true, 1, nil)
	emitter.On("Emit", ctx, "viewer", "viewer", notifications.KindEngaged, &itemID).Return()

	resp, err := service.Engage(ctx, itemID, "viewer")

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Count)
}
