// Package metrics holds Prometheus instrumentation for the notification path.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the counters exposed on /metrics.
type Metrics struct {
	// NotificationsDispatched counts persisted notification rows by category.
	NotificationsDispatched *prometheus.CounterVec

	// EmailsSent counts successful mail submissions.
	EmailsSent prometheus.Counter

	// EmailsSuppressed counts deliveries dropped by preference gates.
	EmailsSuppressed prometheus.Counter

	// EmailsFailed counts mail transport failures (logged and swallowed).
	EmailsFailed prometheus.Counter

	// PushSent counts successful web push submissions.
	PushSent prometheus.Counter

	// PushFailed counts web push failures, including pruned subscriptions.
	PushFailed prometheus.Counter

	// RemindersSent counts reminder dispatches from the hourly scan.
	RemindersSent prometheus.Counter

	// NotificationsSwept counts rows removed by the retention sweep.
	NotificationsSwept prometheus.Counter
}

// New creates and registers the metric set under the given namespace.
func New(namespace string) *Metrics {
	return &Metrics{
		NotificationsDispatched: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_dispatched_total",
				Help:      "Total notification rows persisted",
			},
			[]string{"category"},
		),
		EmailsSent: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emails_sent_total",
			Help:      "Total emails accepted by the mail transport",
		}),
		EmailsSuppressed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emails_suppressed_total",
			Help:      "Total emails dropped by preference gates",
		}),
		EmailsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emails_failed_total",
			Help:      "Total mail transport failures",
		}),
		PushSent: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_sent_total",
			Help:      "Total web push messages delivered",
		}),
		PushFailed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_failed_total",
			Help:      "Total web push delivery failures",
		}),
		RemindersSent: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminders_sent_total",
			Help:      "Total event reminders dispatched by the hourly scan",
		}),
		NotificationsSwept: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_swept_total",
			Help:      "Total notifications removed by the retention sweep",
		}),
	}
}
