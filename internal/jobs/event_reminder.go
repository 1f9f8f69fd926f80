// Package jobs defines River Queue job types for periodic background work.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"planwise.io/planwise/internal/notification"
	"planwise.io/planwise/internal/pkg/logger"
	"planwise.io/planwise/internal/pkg/metrics"
)

// DefaultReminderLookahead is the forward window of the reminder scan.
const DefaultReminderLookahead = time.Hour

// ReminderEvent is the projection of a calendar event the scan needs.
type ReminderEvent struct {
	EventID string
	OwnerID string
	Title   string
	Date    time.Time
}

// EventSource lists events with a start date inside [from, to).
type EventSource interface {
	EventsInWindow(ctx context.Context, from, to time.Time) ([]ReminderEvent, error)
}

// PreferenceSource resolves a user's notification preferences.
type PreferenceSource interface {
	Preferences(ctx context.Context, userID string) (notification.Preferences, error)
}

// ReminderNotifier dispatches an event reminder notification.
type ReminderNotifier interface {
	EventReminder(ctx context.Context, ownerID, eventTitle string, eventDate time.Time) error
}

// EventReminderArgs is the periodic job that scans for upcoming events and
// notifies their owners.
type EventReminderArgs struct{}

// Kind returns the job kind identifier for the reminder scan.
func (EventReminderArgs) Kind() string { return "event_reminder_scan" }

// InsertOpts ensures at most one scan is enqueued per hour.
func (EventReminderArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// EventReminderWorker scans [now, now+lookahead) and dispatches a reminder
// to each event owner who has reminders enabled. The window is half-open
// and read from a single clock sample, so consecutive hourly scans tile
// without overlap and no event is reminded twice.
type EventReminderWorker struct {
	river.WorkerDefaults[EventReminderArgs]
	events    EventSource
	prefs     PreferenceSource
	notifier  ReminderNotifier
	metrics   *metrics.Metrics
	lookahead time.Duration
	now       func() time.Time
}

// NewEventReminderWorker creates a reminder scan worker. Non-positive
// lookahead falls back to one hour.
func NewEventReminderWorker(events EventSource, prefs PreferenceSource, notifier ReminderNotifier, m *metrics.Metrics, lookahead time.Duration) *EventReminderWorker {
	if lookahead <= 0 {
		lookahead = DefaultReminderLookahead
	}
	return &EventReminderWorker{
		events:    events,
		prefs:     prefs,
		notifier:  notifier,
		metrics:   m,
		lookahead: lookahead,
		now:       time.Now,
	}
}

// Work runs one reminder scan.
func (w *EventReminderWorker) Work(ctx context.Context, _ *river.Job[EventReminderArgs]) error {
	if w == nil || w.events == nil || w.notifier == nil {
		return fmt.Errorf("event reminder worker is not initialized")
	}

	from := w.now().UTC()
	to := from.Add(w.lookahead)

	events, err := w.events.EventsInWindow(ctx, from, to)
	if err != nil {
		return fmt.Errorf("query events in [%s, %s): %w",
			from.Format(time.RFC3339), to.Format(time.RFC3339), err)
	}

	var sent, skipped, failed int
	for _, ev := range events {
		allowed, err := w.remindersEnabled(ctx, ev.OwnerID)
		if err != nil {
			failed++
			logger.Error("failed to load reminder preferences",
				zap.String("event_id", ev.EventID),
				zap.String("owner", ev.OwnerID),
				zap.Error(err),
			)
			continue
		}
		if !allowed {
			skipped++
			continue
		}

		if err := w.notifier.EventReminder(ctx, ev.OwnerID, ev.Title, ev.Date); err != nil {
			failed++
			logger.Error("failed to dispatch event reminder",
				zap.String("event_id", ev.EventID),
				zap.String("owner", ev.OwnerID),
				zap.Error(err),
			)
			continue
		}
		sent++
		if w.metrics != nil {
			w.metrics.RemindersSent.Inc()
		}
	}

	logger.Info("event reminder scan completed",
		zap.String("window_start", from.Format(time.RFC3339)),
		zap.String("window_end", to.Format(time.RFC3339)),
		zap.Int("events", len(events)),
		zap.Int("sent", sent),
		zap.Int("skipped", skipped),
		zap.Int("failed", failed),
	)

	if failed > 0 {
		return fmt.Errorf("reminder scan: %d/%d reminders failed", failed, len(events))
	}
	return nil
}

func (w *EventReminderWorker) remindersEnabled(ctx context.Context, ownerID string) (bool, error) {
	if w.prefs == nil {
		return true, nil
	}
	prefs, err := w.prefs.Preferences(ctx, ownerID)
	if err != nil {
		return false, err
	}
	return prefs.EventReminders, nil
}
