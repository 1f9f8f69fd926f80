package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"planwise.io/planwise/ent"
	"planwise.io/planwise/internal/notification"
	apperrors "planwise.io/planwise/internal/pkg/errors"
	"planwise.io/planwise/internal/pkg/logger"

	entsub "planwise.io/planwise/ent/pushsubscription"
	entuser "planwise.io/planwise/ent/user"
)

// PushService manages browser push subscriptions. It backs the web push
// relay as its SubscriptionSource.
type PushService struct {
	client *ent.Client
}

// NewPushService creates a new PushService.
func NewPushService(client *ent.Client) *PushService {
	return &PushService{client: client}
}

// Subscribe registers (or refreshes) a push subscription for the user.
// Re-subscribing the same endpoint updates its keys.
func (s *PushService) Subscribe(ctx context.Context, userID, endpoint, p256dh, auth string) (*ent.PushSubscription, error) {
	if endpoint == "" || p256dh == "" || auth == "" {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequest, "endpoint and keys are required")
	}

	existing, err := s.client.PushSubscription.Query().
		Where(
			entsub.EndpointEQ(endpoint),
			entsub.HasUserWith(entuser.IDEQ(userID)),
		).
		Only(ctx)
	if err == nil {
		updated, err := s.client.PushSubscription.UpdateOne(existing).
			SetP256dhKey(p256dh).
			SetAuthKey(auth).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("refresh push subscription: %w", err)
		}
		return updated, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query push subscription: %w", err)
	}

	sub, err := s.client.PushSubscription.Create().
		SetID(uuid.Must(uuid.NewV7()).String()).
		SetEndpoint(endpoint).
		SetP256dhKey(p256dh).
		SetAuthKey(auth).
		SetUserID(userID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create push subscription: %w", err)
	}

	logger.Debug("push subscription registered",
		zap.String("user_id", userID),
		zap.String("subscription_id", sub.ID),
	)
	return sub, nil
}

// Unsubscribe removes the user's subscription for an endpoint.
func (s *PushService) Unsubscribe(ctx context.Context, userID, endpoint string) error {
	affected, err := s.client.PushSubscription.Delete().
		Where(
			entsub.EndpointEQ(endpoint),
			entsub.HasUserWith(entuser.IDEQ(userID)),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete push subscription: %w", err)
	}
	if affected == 0 {
		return apperrors.NotFound(apperrors.CodeSubscriptionNotFound, "push subscription not found")
	}
	return nil
}

// Subscriptions returns all push subscriptions of a user for the relay.
func (s *PushService) Subscriptions(ctx context.Context, userID string) ([]notification.Subscription, error) {
	rows, err := s.client.PushSubscription.Query().
		Where(entsub.HasUserWith(entuser.IDEQ(userID))).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list push subscriptions: %w", err)
	}

	subs := make([]notification.Subscription, 0, len(rows))
	for _, row := range rows {
		subs = append(subs, notification.Subscription{
			ID:        row.ID,
			Endpoint:  row.Endpoint,
			P256dhKey: row.P256dhKey,
			AuthKey:   row.AuthKey,
		})
	}
	return subs, nil
}

// Remove deletes a subscription by ID. The relay uses this to prune
// endpoints the push service has rejected as gone.
func (s *PushService) Remove(ctx context.Context, subscriptionID string) error {
	if err := s.client.PushSubscription.DeleteOneID(subscriptionID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("remove push subscription %s: %w", subscriptionID, err)
	}
	return nil
}

var _ notification.SubscriptionSource = (*PushService)(nil)
