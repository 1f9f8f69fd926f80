package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riverqueue/river"

	"planwise.io/planwise/internal/notification"
	"planwise.io/planwise/internal/pkg/logger"
)

func init() {
	// Initialize logger for tests
	_ = logger.Init("error", "json")
}

type fakeEventSource struct {
	events []ReminderEvent
	from   time.Time
	to     time.Time
	err    error
}

func (s *fakeEventSource) EventsInWindow(_ context.Context, from, to time.Time) ([]ReminderEvent, error) {
	s.from, s.to = from, to
	return s.events, s.err
}

type fakePrefSource struct {
	prefs map[string]notification.Preferences
	err   error
}

func (s *fakePrefSource) Preferences(_ context.Context, userID string) (notification.Preferences, error) {
	if s.err != nil {
		return notification.Preferences{}, s.err
	}
	if p, ok := s.prefs[userID]; ok {
		return p, nil
	}
	return notification.DefaultPreferences(), nil
}

type fakeReminderNotifier struct {
	sent    []string
	failFor map[string]bool
}

func (n *fakeReminderNotifier) EventReminder(_ context.Context, ownerID, _ string, _ time.Time) error {
	if n.failFor[ownerID] {
		return errors.New("dispatch failed")
	}
	n.sent = append(n.sent, ownerID)
	return nil
}

func TestEventReminderArgsKind(t *testing.T) {
	t.Parallel()

	if got := (EventReminderArgs{}).Kind(); got != "event_reminder_scan" {
		t.Fatalf("Kind() = %q, want %q", got, "event_reminder_scan")
	}
}

func TestEventReminderArgsInsertOpts(t *testing.T) {
	t.Parallel()

	opts := (EventReminderArgs{}).InsertOpts()
	if opts.Queue != river.QueueDefault {
		t.Fatalf("Queue = %q, want %q", opts.Queue, river.QueueDefault)
	}
	if opts.MaxAttempts != 1 {
		t.Fatalf("MaxAttempts = %d, want 1", opts.MaxAttempts)
	}
	if opts.UniqueOpts.ByPeriod != time.Hour {
		t.Fatalf("UniqueOpts.ByPeriod = %s, want %s", opts.UniqueOpts.ByPeriod, time.Hour)
	}
	if !opts.UniqueOpts.ByQueue || !opts.UniqueOpts.ByArgs {
		t.Fatal("UniqueOpts must be scoped by queue and args")
	}
}

func TestNewEventReminderWorkerLookahead(t *testing.T) {
	t.Parallel()

	if w := NewEventReminderWorker(nil, nil, nil, nil, 0); w.lookahead != DefaultReminderLookahead {
		t.Fatalf("lookahead = %s, want %s", w.lookahead, DefaultReminderLookahead)
	}
	if w := NewEventReminderWorker(nil, nil, nil, nil, 30*time.Minute); w.lookahead != 30*time.Minute {
		t.Fatalf("lookahead = %s, want %s", w.lookahead, 30*time.Minute)
	}
}

func TestEventReminderWorkerWork_Uninitialized(t *testing.T) {
	t.Parallel()

	w := NewEventReminderWorker(nil, nil, nil, nil, time.Hour)
	if err := w.Work(context.Background(), nil); err == nil {
		t.Fatal("Work() with nil deps should fail")
	}
}

func TestEventReminderWorkerWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	source := &fakeEventSource{}
	w := NewEventReminderWorker(source, &fakePrefSource{}, &fakeReminderNotifier{}, nil, time.Hour)
	w.now = func() time.Time { return now }

	if err := w.Work(context.Background(), nil); err != nil {
		t.Fatalf("Work() = %v", err)
	}

	if !source.from.Equal(now) {
		t.Fatalf("window start = %s, want %s", source.from, now)
	}
	if !source.to.Equal(now.Add(time.Hour)) {
		t.Fatalf("window end = %s, want %s", source.to, now.Add(time.Hour))
	}
}

func TestEventReminderWorkerHonorsPreferences(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	source := &fakeEventSource{events: []ReminderEvent{
		{EventID: "e1", OwnerID: "wants", Title: "Standup", Date: now.Add(15 * time.Minute)},
		{EventID: "e2", OwnerID: "opted-out", Title: "Review", Date: now.Add(30 * time.Minute)},
		{EventID: "e3", OwnerID: "wants", Title: "Lunch", Date: now.Add(45 * time.Minute)},
	}}
	prefs := &fakePrefSource{prefs: map[string]notification.Preferences{
		"opted-out": {EventReminders: false},
	}}
	notifier := &fakeReminderNotifier{}

	w := NewEventReminderWorker(source, prefs, notifier, nil, time.Hour)
	w.now = func() time.Time { return now }

	if err := w.Work(context.Background(), nil); err != nil {
		t.Fatalf("Work() = %v", err)
	}

	if len(notifier.sent) != 2 {
		t.Fatalf("sent = %d reminders, want 2", len(notifier.sent))
	}
	for _, owner := range notifier.sent {
		if owner == "opted-out" {
			t.Fatal("reminder sent to owner with reminders disabled")
		}
	}
}

func TestEventReminderWorkerContinuesAfterFailure(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	source := &fakeEventSource{events: []ReminderEvent{
		{EventID: "e1", OwnerID: "broken", Title: "A", Date: now.Add(time.Minute)},
		{EventID: "e2", OwnerID: "fine", Title: "B", Date: now.Add(2 * time.Minute)},
	}}
	notifier := &fakeReminderNotifier{failFor: map[string]bool{"broken": true}}

	w := NewEventReminderWorker(source, &fakePrefSource{}, notifier, nil, time.Hour)
	w.now = func() time.Time { return now }

	err := w.Work(context.Background(), nil)
	if err == nil {
		t.Fatal("Work() should report the failed reminder")
	}
	if len(notifier.sent) != 1 || notifier.sent[0] != "fine" {
		t.Fatalf("sent = %v, want remaining owner to still get a reminder", notifier.sent)
	}
}

func TestEventReminderWorkerSourceFailure(t *testing.T) {
	t.Parallel()

	source := &fakeEventSource{err: errors.New("db down")}
	w := NewEventReminderWorker(source, &fakePrefSource{}, &fakeReminderNotifier{}, nil, time.Hour)

	if err := w.Work(context.Background(), nil); err == nil {
		t.Fatal("Work() should fail when the event query fails")
	}
}
