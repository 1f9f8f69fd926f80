package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"planwise.io/planwise/internal/pkg/logger"
	"planwise.io/planwise/internal/pkg/metrics"
)

// DefaultNotificationRetention is how long read notifications are kept.
const DefaultNotificationRetention = 30 * 24 * time.Hour

// ReadNotificationPurger removes read notifications created before cutoff.
type ReadNotificationPurger interface {
	PurgeRead(ctx context.Context, cutoff time.Time) (int, error)
}

// NotificationCleanupArgs is the periodic maintenance job that removes old
// read notifications. Unread notifications are never touched.
type NotificationCleanupArgs struct{}

// Kind returns the job kind identifier for the retention sweep.
func (NotificationCleanupArgs) Kind() string { return "notification_cleanup" }

// InsertOpts ensures at most one sweep is enqueued within the same day.
func (NotificationCleanupArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: 24 * time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// NotificationCleanupWorker deletes read notifications older than the
// configured retention duration.
type NotificationCleanupWorker struct {
	river.WorkerDefaults[NotificationCleanupArgs]
	purger    ReadNotificationPurger
	metrics   *metrics.Metrics
	retention time.Duration
	now       func() time.Time
}

// NewNotificationCleanupWorker creates a sweep worker. Non-positive
// retention falls back to the 30-day default.
func NewNotificationCleanupWorker(purger ReadNotificationPurger, m *metrics.Metrics, retention time.Duration) *NotificationCleanupWorker {
	if retention <= 0 {
		retention = DefaultNotificationRetention
	}
	return &NotificationCleanupWorker{
		purger:    purger,
		metrics:   m,
		retention: retention,
		now:       time.Now,
	}
}

// Work removes expired read notification rows.
func (w *NotificationCleanupWorker) Work(ctx context.Context, _ *river.Job[NotificationCleanupArgs]) error {
	if w == nil || w.purger == nil {
		return fmt.Errorf("notification cleanup worker is not initialized")
	}

	cutoff := w.now().UTC().Add(-w.retention)
	deleted, err := w.purger.PurgeRead(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("purge read notifications before %s: %w", cutoff.Format(time.RFC3339), err)
	}

	if w.metrics != nil {
		w.metrics.NotificationsSwept.Add(float64(deleted))
	}
	logger.Info("notification cleanup completed",
		zap.Int("deleted_rows", deleted),
		zap.String("cutoff", cutoff.Format(time.RFC3339)),
		zap.Duration("retention", w.retention),
	)
	return nil
}
