package item

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Murmur/internal/api/middleware"
	"Murmur/internal/core/engagements"
)

type stubEngagementService struct {
	engageErr  error
	likeErr    error
	lastItem   string
	lastViewer string
	count      int
}

func (s *stubEngagementService) Engage(ctx context.Context, itemID, viewerID string) (*engagements.ToggleResponse, error) {
	s.lastItem, s.lastViewer = itemID, viewerID
	if s.engageErr != nil {
		return nil, s.engageErr
	}
	return &engagements.ToggleResponse{Engaged: true, Count: s.count}, nil
}

func (s *stubEngagementService) Like(ctx context.Context, itemID, viewerID string) (*engagements.ToggleResponse, error) {
	s.lastItem, s.lastViewer = itemID, viewerID
	if s.likeErr != nil {
		return nil, s.likeErr
	}
	return &engagements.ToggleResponse{Engaged: true, Count: s.count}, nil
}

func engageRequest(t *testing.T, target, itemID, userID string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", itemID)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = middleware.SetTestUserID(ctx, userID)
	return req.WithContext(ctx)
}

func TestHandleEngage_Success(t *testing.T) {
	service := &stubEngagementService{count: 7}
	handler := NewEngageHandler(service)

	req := engageRequest(t, "/items/item-1/engage", "item-1", "viewer-1")
	rec := httptest.NewRecorder()

	handler.HandleEngage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "item-1", service.lastItem)
	assert.Equal(t, "viewer-1", service.lastViewer)

	var body engagements.ToggleResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.True(t, body.Engaged)
	assert.Equal(t, 7, body.Count)
}

func TestHandleEngage_UnknownItem(t *testing.T) {
	service := &stubEngagementService{engageErr: engagements.ErrItemNotFound}
	handler := NewEngageHandler(service)

	req := engageRequest(t, "/items/missing/engage", "missing", "viewer-1")
	rec := httptest.NewRecorder()

	handler.HandleEngage(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NotFound")
}

func TestHandleLike_WrongKind(t *testing.T) {
	service := &stubEngagementService{likeErr: engagements.ErrWrongKind}
	handler := NewEngageHandler(service)

	req := engageRequest(t, "/items/item-1/like", "item-1", "viewer-1")
	rec := httptest.NewRecorder()

	handler.HandleLike(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "InvalidInput")
}
