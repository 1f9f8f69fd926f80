package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planwise.io/planwise/ent"
	apperrors "planwise.io/planwise/internal/pkg/errors"
	"planwise.io/planwise/internal/testutil"
)

func seedUser(t *testing.T, client *ent.Client, email string) *ent.User {
	t.Helper()
	user, err := NewUserService(client).Register(context.Background(), email, "Test User", "password123")
	require.NoError(t, err)
	return user
}

func TestEventServiceCRUD(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "event_crud")
	svc := NewEventService(client)
	ctx := context.Background()
	owner := seedUser(t, client, "owner@example.com")

	date := time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC)
	created, err := svc.CreateEvent(ctx, owner.ID, EventInput{
		Title:       "Standup",
		Description: "Daily sync",
		Date:        date,
		Time:        "14:00",
		Location:    "Room 2",
	})
	require.NoError(t, err)
	assert.Equal(t, "Standup", created.Title)
	assert.True(t, created.Date.Equal(date))

	got, err := svc.GetEvent(ctx, owner.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	newTitle := "Standup (moved)"
	newDate := date.Add(time.Hour)
	updated, err := svc.UpdateEvent(ctx, owner.ID, created.ID, EventUpdate{
		Title: &newTitle,
		Date:  &newDate,
	})
	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)
	assert.True(t, updated.Date.Equal(newDate))
	// Untouched fields survive a partial update.
	assert.Equal(t, "Daily sync", updated.Description)
	assert.Equal(t, "Room 2", updated.Location)

	deleted, err := svc.DeleteEvent(ctx, owner.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, newTitle, deleted.Title)

	_, err = svc.GetEvent(ctx, owner.ID, created.ID)
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeEventNotFound, appErr.Code)
}

func TestEventServiceOwnershipIsolation(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "event_ownership")
	svc := NewEventService(client)
	ctx := context.Background()
	alice := seedUser(t, client, "alice@example.com")
	mallory := seedUser(t, client, "mallory@example.com")

	created, err := svc.CreateEvent(ctx, alice.ID, EventInput{
		Title: "Private meeting",
		Date:  time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	// Another user's event looks exactly like a missing one.
	_, err = svc.GetEvent(ctx, mallory.ID, created.ID)
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeEventNotFound, appErr.Code)

	_, err = svc.DeleteEvent(ctx, mallory.ID, created.ID)
	require.Error(t, err)

	events, total, err := svc.ListEvents(ctx, mallory.ID, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.Zero(t, total)
}

func TestEventServiceListOrdering(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "event_order")
	svc := NewEventService(client)
	ctx := context.Background()
	owner := seedUser(t, client, "order@example.com")

	base := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	for _, offset := range []time.Duration{48 * time.Hour, 0, 24 * time.Hour} {
		_, err := svc.CreateEvent(ctx, owner.ID, EventInput{
			Title: "event",
			Date:  base.Add(offset),
		})
		require.NoError(t, err)
	}

	events, total, err := svc.ListEvents(ctx, owner.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, events, 3)
	assert.True(t, events[0].Date.Before(events[1].Date))
	assert.True(t, events[1].Date.Before(events[2].Date))

	// Second page of a two-item page size holds the last event.
	page2, total, err := svc.ListEvents(ctx, owner.ID, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page2, 1)
	assert.Equal(t, base.Add(48*time.Hour), page2[0].Date.UTC())
}

func TestEventServiceUpcoming(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "event_upcoming")
	svc := NewEventService(client)
	ctx := context.Background()
	owner := seedUser(t, client, "upcoming@example.com")

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	mk := func(title string, at time.Time) {
		_, err := svc.CreateEvent(ctx, owner.ID, EventInput{Title: title, Date: at})
		require.NoError(t, err)
	}
	mk("yesterday", now.Add(-24*time.Hour))
	mk("tomorrow", now.Add(24*time.Hour))
	mk("in six days", now.Add(6*24*time.Hour))
	mk("in two weeks", now.Add(14*24*time.Hour))

	events, err := svc.UpcomingEvents(ctx, owner.ID, 7, now)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "tomorrow", events[0].Title)
	assert.Equal(t, "in six days", events[1].Title)

	// Non-positive days falls back to a week.
	events, err = svc.UpcomingEvents(ctx, owner.ID, 0, now)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestEventServiceEventsInWindow(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "event_window")
	svc := NewEventService(client)
	ctx := context.Background()
	alice := seedUser(t, client, "alice@example.com")
	bob := seedUser(t, client, "bob@example.com")

	from := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)

	mk := func(ownerID, title string, at time.Time) {
		_, err := svc.CreateEvent(ctx, ownerID, EventInput{Title: title, Date: at})
		require.NoError(t, err)
	}
	mk(alice.ID, "before window", from.Add(-time.Minute))
	mk(alice.ID, "at window start", from)
	mk(bob.ID, "inside window", from.Add(30*time.Minute))
	mk(bob.ID, "at window end", to)

	events, err := svc.EventsInWindow(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Window is half-open: start inclusive, end exclusive.
	assert.Equal(t, "at window start", events[0].Title)
	assert.Equal(t, "inside window", events[1].Title)

	// Owners are eager-loaded for the reminder scan.
	require.NotNil(t, events[0].Edges.Owner)
	assert.Equal(t, alice.ID, events[0].Edges.Owner.ID)
	require.NotNil(t, events[1].Edges.Owner)
	assert.Equal(t, bob.ID, events[1].Edges.Owner.ID)
}
