package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	webpush "github.com/SherClockHolmes/webpush-go"
	"go.uber.org/zap"

	"planwise.io/planwise/internal/config"
	"planwise.io/planwise/internal/pkg/logger"
	"planwise.io/planwise/internal/pkg/metrics"
)

// ErrSubscriptionExpired marks a push subscription rejected by the push
// service (410 Gone or 404). Expired subscriptions are pruned.
var ErrSubscriptionExpired = errors.New("push subscription expired")

// Subscription is a stored browser push subscription.
type Subscription struct {
	ID        string
	Endpoint  string
	P256dhKey string
	AuthKey   string
}

// SubscriptionSource loads and prunes push subscriptions.
type SubscriptionSource interface {
	Subscriptions(ctx context.Context, userID string) ([]Subscription, error)
	Remove(ctx context.Context, subscriptionID string) error
}

// pushPayload is the JSON sent to the push service.
type pushPayload struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Category string `json:"category"`
}

// WebPushRelay delivers notifications as web push messages to every
// subscription the recipient has registered.
type WebPushRelay struct {
	directory     Directory
	subscriptions SubscriptionSource
	cfg           config.PushConfig
	metrics       *metrics.Metrics

	// sendFn is swapped out in tests.
	sendFn func(sub Subscription, payload []byte) error
}

// NewWebPushRelay creates the web push delivery sink.
func NewWebPushRelay(directory Directory, subs SubscriptionSource, cfg config.PushConfig, m *metrics.Metrics) *WebPushRelay {
	r := &WebPushRelay{
		directory:     directory,
		subscriptions: subs,
		cfg:           cfg,
		metrics:       m,
	}
	r.sendFn = r.send
	return r
}

func (r *WebPushRelay) Name() string { return "webpush" }

// Deliver pushes the notification to all of the recipient's subscriptions.
// Expired subscriptions are removed; other per-subscription failures are
// counted and logged but do not abort the remaining subscriptions.
func (r *WebPushRelay) Deliver(ctx context.Context, params Params) error {
	prefs, err := r.directory.Preferences(ctx, params.RecipientID)
	if err != nil {
		return fmt.Errorf("load preferences for user %s: %w", params.RecipientID, err)
	}
	if !prefs.PushAllowed(params.Category) {
		return nil
	}

	subs, err := r.subscriptions.Subscriptions(ctx, params.RecipientID)
	if err != nil {
		return fmt.Errorf("load subscriptions for user %s: %w", params.RecipientID, err)
	}
	if len(subs) == 0 {
		return nil
	}

	payload, err := json.Marshal(pushPayload{
		Title:    params.Title,
		Body:     params.Message,
		Category: params.Category,
	})
	if err != nil {
		return fmt.Errorf("marshal push payload: %w", err)
	}

	var failCount int
	for _, sub := range subs {
		if err := r.sendFn(sub, payload); err != nil {
			if errors.Is(err, ErrSubscriptionExpired) {
				if rmErr := r.subscriptions.Remove(ctx, sub.ID); rmErr != nil {
					logger.Warn("failed to prune expired push subscription",
						zap.String("subscription_id", sub.ID),
						zap.Error(rmErr),
					)
				} else {
					logger.Info("pruned expired push subscription",
						zap.String("subscription_id", sub.ID),
						zap.String("recipient", params.RecipientID),
					)
				}
				continue
			}
			failCount++
			if r.metrics != nil {
				r.metrics.PushFailed.Inc()
			}
			logger.Error("web push delivery failed",
				zap.String("subscription_id", sub.ID),
				zap.String("recipient", params.RecipientID),
				zap.Error(err),
			)
			continue
		}
		if r.metrics != nil {
			r.metrics.PushSent.Inc()
		}
	}

	if failCount > 0 {
		return fmt.Errorf("web push failed for %d/%d subscriptions", failCount, len(subs))
	}
	return nil
}

func (r *WebPushRelay) send(sub Subscription, payload []byte) error {
	resp, err := webpush.SendNotification(payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dhKey,
			Auth:   sub.AuthKey,
		},
	}, &webpush.Options{
		VAPIDPublicKey:  r.cfg.VAPIDPublicKey,
		VAPIDPrivateKey: r.cfg.VAPIDPrivateKey,
		Subscriber:      r.cfg.Subscriber,
		TTL:             86400,
	})
	if err != nil {
		return fmt.Errorf("send push: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusGone || resp.StatusCode == http.StatusNotFound {
		return ErrSubscriptionExpired
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("push service returned %d", resp.StatusCode)
	}
	return nil
}

var _ Sink = (*WebPushRelay)(nil)
