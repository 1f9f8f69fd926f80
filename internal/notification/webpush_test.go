package notification

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planwise.io/planwise/internal/config"
)

type fakeSubscriptionSource struct {
	mu      sync.Mutex
	subs    []Subscription
	removed []string
	err     error
}

func (s *fakeSubscriptionSource) Subscriptions(context.Context, string) ([]Subscription, error) {
	return s.subs, s.err
}

func (s *fakeSubscriptionSource) Remove(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removed = append(s.removed, id)
	return nil
}

func newTestPushRelay(dir *fakeDirectory, subs *fakeSubscriptionSource, sendFn func(Subscription, []byte) error) *WebPushRelay {
	r := NewWebPushRelay(dir, subs, config.PushConfig{
		VAPIDPublicKey:  "pub",
		VAPIDPrivateKey: "priv",
		Subscriber:      "mailto:noreply@planwise.io",
	}, nil)
	if sendFn != nil {
		r.sendFn = sendFn
	}
	return r
}

func TestWebPushRelayDeliversToAllSubscriptions(t *testing.T) {
	dir := &fakeDirectory{prefs: DefaultPreferences()}
	subs := &fakeSubscriptionSource{subs: []Subscription{
		{ID: "s1", Endpoint: "https://push/1"},
		{ID: "s2", Endpoint: "https://push/2"},
	}}

	var mu sync.Mutex
	var sent []Subscription
	relay := newTestPushRelay(dir, subs, func(sub Subscription, payload []byte) error {
		mu.Lock()
		defer mu.Unlock()
		sent = append(sent, sub)

		var p pushPayload
		require.NoError(t, json.Unmarshal(payload, &p))
		assert.Equal(t, "Event Reminder", p.Title)
		assert.Equal(t, CategoryEventReminder, p.Category)
		return nil
	})

	err := relay.Deliver(context.Background(), Params{
		RecipientID: "u1",
		Category:    CategoryEventReminder,
		Title:       "Event Reminder",
		Message:     `Don't forget about "Standup" at Mar 14, 2026 3:30 PM`,
	})
	require.NoError(t, err)
	assert.Len(t, sent, 2)
	assert.Empty(t, subs.removed)
}

func TestWebPushRelaySuppressedWhenDisabled(t *testing.T) {
	dir := &fakeDirectory{prefs: Preferences{PushNotifications: false}}
	subs := &fakeSubscriptionSource{subs: []Subscription{{ID: "s1"}}}

	called := false
	relay := newTestPushRelay(dir, subs, func(Subscription, []byte) error {
		called = true
		return nil
	})

	err := relay.Deliver(context.Background(), Params{
		RecipientID: "u1",
		Category:    CategorySystemMessage,
		Title:       "t",
		Message:     "m",
	})
	require.NoError(t, err)
	assert.False(t, called)
}

func TestWebPushRelayPrunesExpiredSubscriptions(t *testing.T) {
	dir := &fakeDirectory{prefs: DefaultPreferences()}
	subs := &fakeSubscriptionSource{subs: []Subscription{
		{ID: "gone", Endpoint: "https://push/gone"},
		{ID: "live", Endpoint: "https://push/live"},
	}}

	relay := newTestPushRelay(dir, subs, func(sub Subscription, _ []byte) error {
		if sub.ID == "gone" {
			return ErrSubscriptionExpired
		}
		return nil
	})

	err := relay.Deliver(context.Background(), Params{
		RecipientID: "u1",
		Category:    CategorySystemMessage,
		Title:       "t",
		Message:     "m",
	})
	// Pruning is not a delivery failure.
	require.NoError(t, err)
	assert.Equal(t, []string{"gone"}, subs.removed)
}

func TestWebPushRelayReportsFailures(t *testing.T) {
	dir := &fakeDirectory{prefs: DefaultPreferences()}
	subs := &fakeSubscriptionSource{subs: []Subscription{
		{ID: "bad", Endpoint: "https://push/bad"},
		{ID: "good", Endpoint: "https://push/good"},
	}}

	var delivered []string
	relay := newTestPushRelay(dir, subs, func(sub Subscription, _ []byte) error {
		if sub.ID == "bad" {
			return errors.New("503 from push service")
		}
		delivered = append(delivered, sub.ID)
		return nil
	})

	err := relay.Deliver(context.Background(), Params{
		RecipientID: "u1",
		Category:    CategorySystemMessage,
		Title:       "t",
		Message:     "m",
	})
	require.Error(t, err)
	// One failure does not stop delivery to the remaining subscriptions.
	assert.Equal(t, []string{"good"}, delivered)
}

func TestWebPushRelayNoSubscriptions(t *testing.T) {
	dir := &fakeDirectory{prefs: DefaultPreferences()}
	relay := newTestPushRelay(dir, &fakeSubscriptionSource{}, func(Subscription, []byte) error {
		t.Fatal("send should not be called")
		return nil
	})

	err := relay.Deliver(context.Background(), Params{
		RecipientID: "u1",
		Category:    CategorySystemMessage,
		Title:       "t",
		Message:     "m",
	})
	assert.NoError(t, err)
}
