package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planwise.io/planwise/internal/pkg/logger"
	"planwise.io/planwise/internal/pkg/worker"
)

func init() {
	// Initialize logger for tests
	_ = logger.Init("error", "json")
}

type fakeStore struct {
	mu      sync.Mutex
	created []Params
	err     error
}

func (s *fakeStore) Create(_ context.Context, params Params) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	s.created = append(s.created, params)
	return "notif-1", nil
}

func (s *fakeStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.created)
}

type fakeSink struct {
	mu        sync.Mutex
	delivered []Params
	err       error
}

func (s *fakeSink) Name() string { return "fake" }

func (s *fakeSink) Deliver(_ context.Context, params Params) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delivered = append(s.delivered, params)
	return s.err
}

func (s *fakeSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.delivered)
}

func newTestPools(t *testing.T) *worker.Pools {
	t.Helper()
	pools, err := worker.NewPools(context.Background(), worker.PoolConfig{
		GeneralPoolSize:  2,
		DeliveryPoolSize: 2,
	})
	require.NoError(t, err)
	t.Cleanup(pools.Shutdown)
	return pools
}

func TestDispatchPersistsThenFansOut(t *testing.T) {
	store := &fakeStore{}
	sink := &fakeSink{}
	d := NewDispatcher(store, newTestPools(t), nil, sink)

	id, err := d.Dispatch(context.Background(), Params{
		RecipientID: "user-1",
		Category:    CategoryEventCreated,
		Title:       "Event Created",
		Message:     `Your event "Standup" has been created successfully`,
	})
	require.NoError(t, err)
	assert.Equal(t, "notif-1", id)

	assert.Equal(t, 1, store.count())
	assert.Eventually(t, func() bool { return sink.count() == 1 },
		time.Second, 10*time.Millisecond)
}

func TestDispatchStoreFailurePropagatesAndSkipsSinks(t *testing.T) {
	store := &fakeStore{err: errors.New("db down")}
	sink := &fakeSink{}
	d := NewDispatcher(store, newTestPools(t), nil, sink)

	_, err := d.Dispatch(context.Background(), Params{
		RecipientID: "user-1",
		Category:    CategorySystemMessage,
		Title:       "t",
		Message:     "m",
	})
	require.Error(t, err)

	// External channels never fire for a notification that was not stored.
	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, sink.count())
}

func TestDispatchSinkFailureDoesNotPropagate(t *testing.T) {
	store := &fakeStore{}
	sink := &fakeSink{err: errors.New("smtp down")}
	d := NewDispatcher(store, newTestPools(t), nil, sink)

	_, err := d.Dispatch(context.Background(), Params{
		RecipientID: "user-1",
		Category:    CategorySystemMessage,
		Title:       "t",
		Message:     "m",
	})
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return sink.count() == 1 },
		time.Second, 10*time.Millisecond)
}

func TestDispatchInvalidParams(t *testing.T) {
	store := &fakeStore{}
	d := NewDispatcher(store, newTestPools(t), nil)

	_, err := d.Dispatch(context.Background(), Params{
		RecipientID: "user-1",
		Category:    "BOGUS",
		Title:       "t",
		Message:     "m",
	})
	require.Error(t, err)
	assert.Zero(t, store.count())
}

func TestDispatchToMany(t *testing.T) {
	store := &fakeStore{}
	d := NewDispatcher(store, newTestPools(t), nil)

	err := d.DispatchToMany(context.Background(), []string{"u1", "u2", "u3"}, Params{
		Category: CategoryMarketing,
		Title:    "New features",
		Message:  "Check out what's new",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, store.count())

	recipients := make(map[string]bool)
	for _, p := range store.created {
		recipients[p.RecipientID] = true
	}
	assert.Len(t, recipients, 3)
}

func TestDispatchToManyEmpty(t *testing.T) {
	d := NewDispatcher(&fakeStore{}, newTestPools(t), nil)
	assert.NoError(t, d.DispatchToMany(context.Background(), nil, Params{}))
}

func TestTriggerMessages(t *testing.T) {
	store := &fakeStore{}
	triggers := NewTriggers(NewDispatcher(store, newTestPools(t), nil))
	ctx := context.Background()

	date := time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC)
	require.NoError(t, triggers.EventReminder(ctx, "u1", "Standup", date))
	require.NoError(t, triggers.EventCreated(ctx, "u1", "Standup"))
	require.NoError(t, triggers.EventUpdated(ctx, "u1", "Standup"))
	require.NoError(t, triggers.EventDeleted(ctx, "u1", "Standup"))
	require.NoError(t, triggers.SystemMessage(ctx, "u1", "Welcome", "Hello there"))

	require.Equal(t, 5, store.count())
	assert.Equal(t, CategoryEventReminder, store.created[0].Category)
	assert.Equal(t, `Don't forget about "Standup" at Mar 14, 2026 3:30 PM`, store.created[0].Message)
	assert.Equal(t, `Your event "Standup" has been created successfully`, store.created[1].Message)
	assert.Equal(t, `Your event "Standup" has been updated`, store.created[2].Message)
	assert.Equal(t, `Your event "Standup" has been deleted`, store.created[3].Message)
	assert.Equal(t, CategorySystemMessage, store.created[4].Category)
}
