package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entnotification "planwise.io/planwise/ent/notification"
	"planwise.io/planwise/internal/notification"
	apperrors "planwise.io/planwise/internal/pkg/errors"
	"planwise.io/planwise/internal/testutil"
)

func TestNotificationServiceCreateAndList(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "notif_list")
	svc := NewNotificationService(client)
	ctx := context.Background()
	user := seedUser(t, client, "inbox@example.com")

	for i := 0; i < 12; i++ {
		_, err := svc.Create(ctx, notification.Params{
			RecipientID: user.ID,
			Category:    notification.CategorySystemMessage,
			Title:       fmt.Sprintf("message %d", i),
			Message:     "body",
		})
		require.NoError(t, err)
	}

	items, total, err := svc.List(ctx, user.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	assert.Len(t, items, 10)

	items, _, err = svc.List(ctx, user.ID, 2, 10)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestNotificationServiceCreateRejectsUnknownCategory(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "notif_badcat")
	svc := NewNotificationService(client)
	user := seedUser(t, client, "badcat@example.com")

	_, err := svc.Create(context.Background(), notification.Params{
		RecipientID: user.ID,
		Category:    "NOT_A_CATEGORY",
		Title:       "t",
		Message:     "m",
	})
	assert.Error(t, err)
}

func TestNotificationServiceReadFlow(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "notif_read")
	svc := NewNotificationService(client)
	ctx := context.Background()
	user := seedUser(t, client, "reader@example.com")
	other := seedUser(t, client, "other@example.com")

	var firstID string
	for i := 0; i < 3; i++ {
		id, err := svc.Create(ctx, notification.Params{
			RecipientID: user.ID,
			Category:    notification.CategoryEventCreated,
			Title:       "Event Created",
			Message:     "body",
		})
		require.NoError(t, err)
		if i == 0 {
			firstID = id
		}
	}

	count, err := svc.UnreadCount(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	n, err := svc.MarkRead(ctx, user.ID, firstID)
	require.NoError(t, err)
	assert.True(t, n.Read)
	require.NotNil(t, n.ReadAt)

	// Marking again is a no-op, read_at is not bumped.
	again, err := svc.MarkRead(ctx, user.ID, firstID)
	require.NoError(t, err)
	assert.True(t, again.ReadAt.Equal(*n.ReadAt))

	// Other users cannot mark someone else's notification.
	_, err = svc.MarkRead(ctx, other.ID, firstID)
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotificationNotFound, appErr.Code)

	updated, err := svc.MarkAllRead(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, updated)

	count, err = svc.UnreadCount(ctx, user.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestNotificationServiceDelete(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "notif_delete")
	svc := NewNotificationService(client)
	ctx := context.Background()
	user := seedUser(t, client, "deleter@example.com")
	other := seedUser(t, client, "bystander@example.com")

	id, err := svc.Create(ctx, notification.Params{
		RecipientID: user.ID,
		Category:    notification.CategorySystemMessage,
		Title:       "t",
		Message:     "m",
	})
	require.NoError(t, err)

	require.Error(t, svc.Delete(ctx, other.ID, id))
	require.NoError(t, svc.Delete(ctx, user.ID, id))
	require.Error(t, svc.Delete(ctx, user.ID, id))
}

func TestNotificationServicePurgeRead(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "notif_purge")
	svc := NewNotificationService(client)
	ctx := context.Background()
	user := seedUser(t, client, "purge@example.com")

	now := time.Now().UTC()
	old := now.Add(-31 * 24 * time.Hour)
	recent := now.Add(-1 * 24 * time.Hour)

	// created_at is immutable, so the rows are seeded directly.
	mk := func(createdAt time.Time, read bool) string {
		id := fmt.Sprintf("n-%d-%t", createdAt.Unix(), read)
		builder := client.Notification.Create().
			SetID(id).
			SetCategory(entnotification.CategorySYSTEM_MESSAGE).
			SetTitle("t").
			SetMessage("m").
			SetRead(read).
			SetCreatedAt(createdAt).
			SetUserID(user.ID)
		if read {
			builder.SetReadAt(createdAt)
		}
		_, err := builder.Save(ctx)
		require.NoError(t, err)
		return id
	}

	oldRead := mk(old, true)
	oldUnread := mk(old, false)
	recentRead := mk(recent, true)

	deleted, err := svc.PurgeRead(ctx, now.Add(-30*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	remaining, err := client.Notification.Query().IDs(ctx)
	require.NoError(t, err)
	assert.NotContains(t, remaining, oldRead)
	// Unread rows are kept regardless of age; recent read rows stay too.
	assert.Contains(t, remaining, oldUnread)
	assert.Contains(t, remaining, recentRead)
}

func TestNotificationServicePreferences(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "notif_prefs")
	svc := NewNotificationService(client)
	ctx := context.Background()
	user := seedUser(t, client, "prefs@example.com")

	// Registration created the defaults.
	prefs, err := svc.Preferences(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, notification.DefaultPreferences(), prefs)

	// A user without a settings row has every channel disabled, so no
	// relay or reminder ever fires for them.
	orphan, err := client.User.Create().
		SetID("orphan-user").
		SetEmail("orphan@example.com").
		SetPasswordHash("x").
		Save(ctx)
	require.NoError(t, err)

	prefs, err = svc.Preferences(ctx, orphan.ID)
	require.NoError(t, err)
	assert.Equal(t, notification.Preferences{}, prefs)
	assert.False(t, prefs.EmailAllowed(notification.CategoryEventCreated))
	assert.False(t, prefs.PushAllowed(notification.CategoryEventCreated))
	assert.False(t, prefs.EventReminders)
}

func TestNotificationServiceUpdateSettings(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "notif_settings")
	svc := NewNotificationService(client)
	ctx := context.Background()
	user := seedUser(t, client, "settings@example.com")

	f := false
	lead := 30
	prefs, err := svc.UpdateSettings(ctx, user.ID, SettingsUpdate{
		MarketingEmails:     nil,
		EmailNotifications:  &f,
		ReminderLeadMinutes: &lead,
	})
	require.NoError(t, err)
	assert.False(t, prefs.EmailNotifications)
	assert.Equal(t, 30, prefs.ReminderLeadMinutes)
	// Untouched switches keep their values.
	assert.True(t, prefs.PushNotifications)
	assert.True(t, prefs.EventReminders)

	t.Run("lead time bounds", func(t *testing.T) {
		for _, bad := range []int{4, 0, 61, -5} {
			bad := bad
			_, err := svc.UpdateSettings(ctx, user.ID, SettingsUpdate{ReminderLeadMinutes: &bad})
			require.Error(t, err)
			appErr, ok := apperrors.IsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.CodeSettingsInvalid, appErr.Code)
		}
	})

	t.Run("creates missing row on demand", func(t *testing.T) {
		orphan, err := client.User.Create().
			SetID("settings-orphan").
			SetEmail("settings-orphan@example.com").
			SetPasswordHash("x").
			Save(ctx)
		require.NoError(t, err)

		tr := true
		prefs, err := svc.UpdateSettings(ctx, orphan.ID, SettingsUpdate{MarketingEmails: &tr})
		require.NoError(t, err)
		assert.True(t, prefs.MarketingEmails)
		assert.True(t, prefs.EmailNotifications)
	})
}

func TestNotificationServiceCategoriesRoundTrip(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "notif_categories")
	svc := NewNotificationService(client)
	ctx := context.Background()
	user := seedUser(t, client, "cats@example.com")

	categories := []string{
		notification.CategoryEventReminder,
		notification.CategoryEventCreated,
		notification.CategoryEventUpdated,
		notification.CategoryEventDeleted,
		notification.CategorySystemMessage,
		notification.CategoryMarketing,
	}
	for _, c := range categories {
		id, err := svc.Create(ctx, notification.Params{
			RecipientID: user.ID,
			Category:    c,
			Title:       "t",
			Message:     "m",
		})
		require.NoError(t, err, c)

		row, err := client.Notification.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, c, string(row.Category))
	}

	count, err := client.Notification.Query().
		Where(entnotification.CategoryEQ(entnotification.CategoryMARKETING)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
