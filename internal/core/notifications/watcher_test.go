package notifications

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCountService is a Service whose unread count can be moved from the test
type stubCountService struct {
	err   error
	count int
	mu    sync.Mutex
}

func (s *stubCountService) setCount(n int) {
	s.mu.Lock()
	s.count = n
	s.mu.Unlock()
}

func (s *stubCountService) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

func (s *stubCountService) UnreadCount(ctx context.Context, recipientID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count, s.err
}

func (s *stubCountService) Emit(ctx context.Context, recipientID, actorID string, kind Kind, subjectItemID *string) {
}

func (s *stubCountService) List(ctx context.Context, recipientID string) ([]*Notification, error) {
	return nil, nil
}

func (s *stubCountService) MarkRead(ctx context.Context, recipientID, notificationID string) error {
	return nil
}

func (s *stubCountService) MarkAllRead(ctx context.Context, recipientID string) error {
	return nil
}

func waitForPush(t *testing.T, pushes <-chan int) int {
	t.Helper()
	select {
	case count := <-pushes:
		return count
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for a push")
		return 0
	}
}

func TestWatch_PushesInitialCount(t *testing.T) {
	service := &stubCountService{count: 3}
	watcher := NewWatcher(service, 5*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pushes := make(chan int, 16)
	go func() {
		_ = watcher.Watch(ctx, "recipient", func(count int) error {
			pushes <- count
			return nil
		})
	}()

	assert.Equal(t, 3, waitForPush(t, pushes), "the current count is pushed immediately, even when unchanged")
}

func TestWatch_PushesOnlyOnChange(t *testing.T) {
	service := &stubCountService{count: 0}
	watcher := NewWatcher(service, 5*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pushes := make(chan int, 16)
	go func() {
		_ = watcher.Watch(ctx, "recipient", func(count int) error {
			pushes <- count
			return nil
		})
	}()

	assert.Equal(t, 0, waitForPush(t, pushes))

	// A steady count produces no further pushes
	time.Sleep(30 * time.Millisecond)
	select {
	case count := <-pushes:
		t.Fatalf("unexpected push %d for an unchanged count", count)
	default:
	}

	service.setCount(2)
	assert.Equal(t, 2, waitForPush(t, pushes))
}

func TestWatch_PushErrorEndsWatch(t *testing.T) {
	service := &stubCountService{count: 1}
	watcher := NewWatcher(service, 5*time.Millisecond, nil)

	err := watcher.Watch(context.Background(), "recipient", func(count int) error {
		return assert.AnError
	})

	assert.ErrorIs(t, err, assert.AnError)
}

func TestWatch_StopsOnContextCancel(t *testing.T) {
	service := &stubCountService{}
	watcher := NewWatcher(service, 5*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- watcher.Watch(ctx, "recipient", func(count int) error { return nil })
	}()

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("watch did not stop after cancellation")
	}
}

func TestWatch_SurvivesCountErrors(t *testing.T) {
	service := &stubCountService{count: 4}
	service.setErr(assert.AnError)
	watcher := NewWatcher(service, 5*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pushes := make(chan int, 16)
	go func() {
		_ = watcher.Watch(ctx, "recipient", func(count int) error {
			pushes <- count
			return nil
		})
	}()

	time.Sleep(20 * time.Millisecond)
	service.setErr(nil)

	require.Equal(t, 4, waitForPush(t, pushes), "polling resumes once the count query recovers")
}
