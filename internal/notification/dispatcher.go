package notification

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"planwise.io/planwise/internal/pkg/logger"
	"planwise.io/planwise/internal/pkg/metrics"
	"planwise.io/planwise/internal/pkg/worker"
)

// Store persists notification rows.
type Store interface {
	// Create stores the notification and returns its ID.
	Create(ctx context.Context, params Params) (string, error)
}

// Sink delivers an already-persisted notification over an external channel.
// Implementations apply the recipient's preferences themselves; a recipient
// who opted out is a successful no-op, not an error.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, params Params) error
}

// Dispatcher is the single entry point for producing notifications.
// Dispatch writes the in-app row synchronously so the caller knows it
// landed, then hands external delivery to the delivery pool so HTTP
// requests never wait on SMTP or push endpoints.
type Dispatcher struct {
	store   Store
	sinks   []Sink
	pools   *worker.Pools
	metrics *metrics.Metrics
}

// NewDispatcher creates a dispatcher over a store and zero or more sinks.
func NewDispatcher(store Store, pools *worker.Pools, m *metrics.Metrics, sinks ...Sink) *Dispatcher {
	return &Dispatcher{
		store:   store,
		sinks:   sinks,
		pools:   pools,
		metrics: m,
	}
}

// Dispatch persists the notification and schedules external delivery,
// returning the ID of the created row. A failed row write is returned to
// the caller; sink failures are logged and counted but never propagate.
func (d *Dispatcher) Dispatch(ctx context.Context, params Params) (string, error) {
	if err := params.validate(); err != nil {
		return "", fmt.Errorf("notification params invalid: %w", err)
	}

	id, err := d.store.Create(ctx, params)
	if err != nil {
		return "", fmt.Errorf("create notification for user %s: %w", params.RecipientID, err)
	}

	if d.metrics != nil {
		d.metrics.NotificationsDispatched.WithLabelValues(params.Category).Inc()
	}

	logger.Debug("notification dispatched",
		zap.String("notification_id", id),
		zap.String("recipient", params.RecipientID),
		zap.String("category", params.Category),
	)

	d.fanOut(params)
	return id, nil
}

// DispatchToMany dispatches the same notification to multiple recipients
// (best-effort). Failures are logged but do not stop delivery to others.
func (d *Dispatcher) DispatchToMany(ctx context.Context, recipientIDs []string, params Params) error {
	if len(recipientIDs) == 0 {
		return nil
	}

	var failCount int
	for _, recipientID := range recipientIDs {
		p := params
		p.RecipientID = recipientID
		if _, err := d.Dispatch(ctx, p); err != nil {
			failCount++
			logger.Error("notification dispatch failed",
				zap.String("recipient", recipientID),
				zap.String("category", params.Category),
				zap.Error(err),
			)
		}
	}

	if failCount > 0 {
		return fmt.Errorf("notification dispatch failed for %d/%d recipients", failCount, len(recipientIDs))
	}
	return nil
}

func (d *Dispatcher) fanOut(params Params) {
	if len(d.sinks) == 0 {
		return
	}

	for _, sink := range d.sinks {
		sink := sink
		err := d.pools.SubmitDetached("delivery", func(ctx context.Context) {
			if err := sink.Deliver(ctx, params); err != nil {
				logger.Error("notification delivery failed",
					zap.String("sink", sink.Name()),
					zap.String("recipient", params.RecipientID),
					zap.String("category", params.Category),
					zap.Error(err),
				)
			}
		})
		if err != nil {
			logger.Error("notification delivery task rejected",
				zap.String("sink", sink.Name()),
				zap.String("recipient", params.RecipientID),
				zap.Error(err),
			)
		}
	}
}
