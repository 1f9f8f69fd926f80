package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riverqueue/river"
)

type fakePurger struct {
	cutoff  time.Time
	deleted int
	err     error
}

func (p *fakePurger) PurgeRead(_ context.Context, cutoff time.Time) (int, error) {
	p.cutoff = cutoff
	return p.deleted, p.err
}

func TestNotificationCleanupArgsKind(t *testing.T) {
	t.Parallel()

	if got := (NotificationCleanupArgs{}).Kind(); got != "notification_cleanup" {
		t.Fatalf("Kind() = %q, want %q", got, "notification_cleanup")
	}
}

func TestNotificationCleanupArgsInsertOpts(t *testing.T) {
	t.Parallel()

	opts := (NotificationCleanupArgs{}).InsertOpts()
	if opts.Queue != river.QueueDefault {
		t.Fatalf("Queue = %q, want %q", opts.Queue, river.QueueDefault)
	}
	if opts.MaxAttempts != 1 {
		t.Fatalf("MaxAttempts = %d, want 1", opts.MaxAttempts)
	}
	if opts.UniqueOpts.ByPeriod != 24*time.Hour {
		t.Fatalf("UniqueOpts.ByPeriod = %s, want %s", opts.UniqueOpts.ByPeriod, 24*time.Hour)
	}
	if !opts.UniqueOpts.ByQueue || !opts.UniqueOpts.ByArgs {
		t.Fatal("UniqueOpts must be scoped by queue and args")
	}
}

func TestNewNotificationCleanupWorkerRetention(t *testing.T) {
	t.Parallel()

	t.Run("defaults to thirty days when non-positive", func(t *testing.T) {
		w := NewNotificationCleanupWorker(nil, nil, 0)
		if w.retention != DefaultNotificationRetention {
			t.Fatalf("retention = %s, want %s", w.retention, DefaultNotificationRetention)
		}
	})

	t.Run("uses explicit retention when provided", func(t *testing.T) {
		want := 7 * 24 * time.Hour
		w := NewNotificationCleanupWorker(nil, nil, want)
		if w.retention != want {
			t.Fatalf("retention = %s, want %s", w.retention, want)
		}
	})
}

func TestNotificationCleanupWorkerWork_Uninitialized(t *testing.T) {
	t.Parallel()

	w := NewNotificationCleanupWorker(nil, nil, time.Hour)
	if err := w.Work(context.Background(), nil); err == nil {
		t.Fatal("Work() with nil purger should fail")
	}
}

func TestNotificationCleanupWorkerCutoff(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	purger := &fakePurger{deleted: 3}

	w := NewNotificationCleanupWorker(purger, nil, DefaultNotificationRetention)
	w.now = func() time.Time { return now }

	if err := w.Work(context.Background(), nil); err != nil {
		t.Fatalf("Work() = %v", err)
	}

	want := now.Add(-30 * 24 * time.Hour)
	if !purger.cutoff.Equal(want) {
		t.Fatalf("cutoff = %s, want %s", purger.cutoff, want)
	}
}

func TestNotificationCleanupWorkerPurgeFailure(t *testing.T) {
	t.Parallel()

	purger := &fakePurger{err: errors.New("db down")}
	w := NewNotificationCleanupWorker(purger, nil, time.Hour)

	if err := w.Work(context.Background(), nil); err == nil {
		t.Fatal("Work() should propagate purge failures")
	}
}
