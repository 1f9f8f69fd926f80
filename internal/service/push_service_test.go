package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "planwise.io/planwise/internal/pkg/errors"
	"planwise.io/planwise/internal/testutil"
)

func TestPushServiceSubscribe(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "push_subscribe")
	svc := NewPushService(client)
	ctx := context.Background()
	user := seedUser(t, client, "push@example.com")

	sub, err := svc.Subscribe(ctx, user.ID, "https://push.example.com/ep1", "p256dh-key", "auth-key")
	require.NoError(t, err)
	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, "https://push.example.com/ep1", sub.Endpoint)

	// Re-subscribing the same endpoint refreshes the keys in place.
	refreshed, err := svc.Subscribe(ctx, user.ID, "https://push.example.com/ep1", "new-p256dh", "new-auth")
	require.NoError(t, err)
	assert.Equal(t, sub.ID, refreshed.ID)
	assert.Equal(t, "new-p256dh", refreshed.P256dhKey)
	assert.Equal(t, "new-auth", refreshed.AuthKey)

	count, err := client.PushSubscription.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPushServiceSubscribeValidation(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "push_validate")
	svc := NewPushService(client)
	user := seedUser(t, client, "push-validate@example.com")

	for _, tc := range []struct {
		name                   string
		endpoint, p256dh, auth string
	}{
		{"missing endpoint", "", "k", "a"},
		{"missing p256dh", "https://push.example.com/ep", "", "a"},
		{"missing auth", "https://push.example.com/ep", "k", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Subscribe(context.Background(), user.ID, tc.endpoint, tc.p256dh, tc.auth)
			require.Error(t, err)
			appErr, ok := apperrors.IsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.CodeInvalidRequest, appErr.Code)
		})
	}
}

func TestPushServiceUnsubscribe(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "push_unsubscribe")
	svc := NewPushService(client)
	ctx := context.Background()
	user := seedUser(t, client, "unsub@example.com")
	other := seedUser(t, client, "unsub-other@example.com")

	_, err := svc.Subscribe(ctx, user.ID, "https://push.example.com/ep1", "k", "a")
	require.NoError(t, err)

	// Another user cannot remove it.
	err = svc.Unsubscribe(ctx, other.ID, "https://push.example.com/ep1")
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeSubscriptionNotFound, appErr.Code)

	require.NoError(t, svc.Unsubscribe(ctx, user.ID, "https://push.example.com/ep1"))
	require.Error(t, svc.Unsubscribe(ctx, user.ID, "https://push.example.com/ep1"))
}

func TestPushServiceSubscriptions(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "push_list")
	svc := NewPushService(client)
	ctx := context.Background()
	user := seedUser(t, client, "list@example.com")
	other := seedUser(t, client, "list-other@example.com")

	_, err := svc.Subscribe(ctx, user.ID, "https://push.example.com/ep1", "k1", "a1")
	require.NoError(t, err)
	_, err = svc.Subscribe(ctx, user.ID, "https://push.example.com/ep2", "k2", "a2")
	require.NoError(t, err)
	_, err = svc.Subscribe(ctx, other.ID, "https://push.example.com/ep3", "k3", "a3")
	require.NoError(t, err)

	subs, err := svc.Subscriptions(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, subs, 2)

	endpoints := []string{subs[0].Endpoint, subs[1].Endpoint}
	assert.ElementsMatch(t, []string{
		"https://push.example.com/ep1",
		"https://push.example.com/ep2",
	}, endpoints)
	for _, sub := range subs {
		assert.NotEmpty(t, sub.ID)
		assert.NotEmpty(t, sub.P256dhKey)
		assert.NotEmpty(t, sub.AuthKey)
	}
}

func TestPushServiceRemove(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "push_remove")
	svc := NewPushService(client)
	ctx := context.Background()
	user := seedUser(t, client, "remove@example.com")

	sub, err := svc.Subscribe(ctx, user.ID, "https://push.example.com/ep1", "k", "a")
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, sub.ID))
	// Pruning an endpoint twice is fine, the relay may race itself.
	require.NoError(t, svc.Remove(ctx, sub.ID))

	subs, err := svc.Subscriptions(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, subs)
}
