package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"planwise.io/planwise/ent"
	apperrors "planwise.io/planwise/internal/pkg/errors"
	"planwise.io/planwise/internal/pkg/logger"

	entevent "planwise.io/planwise/ent/event"
	entuser "planwise.io/planwise/ent/user"
)

// EventInput carries the writable fields of a calendar event.
type EventInput struct {
	Title       string
	Description string
	Date        time.Time
	Time        string
	Location    string
}

// EventUpdate carries a partial update; nil fields are left unchanged.
type EventUpdate struct {
	Title       *string
	Description *string
	Date        *time.Time
	Time        *string
	Location    *string
}

// EventService handles calendar event CRUD and window queries.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// CreateEvent stores a new event owned by ownerID.
func (s *EventService) CreateEvent(ctx context.Context, ownerID string, in EventInput) (*ent.Event, error) {
	if in.Title == "" {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequest, "title is required")
	}
	if in.Date.IsZero() {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequest, "date is required")
	}

	ev, err := s.client.Event.Create().
		SetID(uuid.Must(uuid.NewV7()).String()).
		SetTitle(in.Title).
		SetDescription(in.Description).
		SetDate(in.Date.UTC()).
		SetTime(in.Time).
		SetLocation(in.Location).
		SetOwnerID(ownerID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	logger.Debug("event created",
		zap.String("event_id", ev.ID),
		zap.String("owner", ownerID),
	)
	return ev, nil
}

// GetEvent loads an event owned by ownerID.
// Events of other users are indistinguishable from missing ones.
func (s *EventService) GetEvent(ctx context.Context, ownerID, eventID string) (*ent.Event, error) {
	ev, err := s.client.Event.Query().
		Where(
			entevent.IDEQ(eventID),
			entevent.HasOwnerWith(entuser.IDEQ(ownerID)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeEventNotFound, "event not found")
		}
		return nil, fmt.Errorf("get event %s: %w", eventID, err)
	}
	return ev, nil
}

// ListEvents returns a page of the user's events ordered by date ascending,
// plus the total count for pagination.
func (s *EventService) ListEvents(ctx context.Context, ownerID string, page, perPage int) ([]*ent.Event, int, error) {
	base := s.client.Event.Query().
		Where(entevent.HasOwnerWith(entuser.IDEQ(ownerID)))

	total, err := base.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count events for user %s: %w", ownerID, err)
	}

	events, err := base.
		Order(ent.Asc(entevent.FieldDate)).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list events for user %s: %w", ownerID, err)
	}
	return events, total, nil
}

// UpcomingEvents returns the user's events within the next `days` days,
// ordered by date ascending.
func (s *EventService) UpcomingEvents(ctx context.Context, ownerID string, days int, now time.Time) ([]*ent.Event, error) {
	if days <= 0 {
		days = 7
	}
	now = now.UTC()
	until := now.AddDate(0, 0, days)

	events, err := s.client.Event.Query().
		Where(
			entevent.HasOwnerWith(entuser.IDEQ(ownerID)),
			entevent.DateGTE(now),
			entevent.DateLT(until),
		).
		Order(ent.Asc(entevent.FieldDate)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list upcoming events for user %s: %w", ownerID, err)
	}
	return events, nil
}

// UpdateEvent applies a partial update to an event owned by ownerID.
func (s *EventService) UpdateEvent(ctx context.Context, ownerID, eventID string, upd EventUpdate) (*ent.Event, error) {
	ev, err := s.GetEvent(ctx, ownerID, eventID)
	if err != nil {
		return nil, err
	}

	builder := s.client.Event.UpdateOne(ev)
	if upd.Title != nil {
		if *upd.Title == "" {
			return nil, apperrors.BadRequest(apperrors.CodeInvalidRequest, "title cannot be empty")
		}
		builder.SetTitle(*upd.Title)
	}
	if upd.Description != nil {
		builder.SetDescription(*upd.Description)
	}
	if upd.Date != nil {
		builder.SetDate(upd.Date.UTC())
	}
	if upd.Time != nil {
		builder.SetTime(*upd.Time)
	}
	if upd.Location != nil {
		builder.SetLocation(*upd.Location)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update event %s: %w", eventID, err)
	}
	return updated, nil
}

// DeleteEvent removes an event owned by ownerID and returns it.
func (s *EventService) DeleteEvent(ctx context.Context, ownerID, eventID string) (*ent.Event, error) {
	ev, err := s.GetEvent(ctx, ownerID, eventID)
	if err != nil {
		return nil, err
	}

	if err := s.client.Event.DeleteOne(ev).Exec(ctx); err != nil {
		return nil, fmt.Errorf("delete event %s: %w", eventID, err)
	}

	logger.Debug("event deleted",
		zap.String("event_id", eventID),
		zap.String("owner", ownerID),
	)
	return ev, nil
}

// EventsInWindow returns all events (any owner) with a date in [from, to),
// eager-loading the owner. The reminder scan uses a half-open window so
// consecutive scans never see an event twice.
func (s *EventService) EventsInWindow(ctx context.Context, from, to time.Time) ([]*ent.Event, error) {
	events, err := s.client.Event.Query().
		Where(
			entevent.DateGTE(from.UTC()),
			entevent.DateLT(to.UTC()),
		).
		WithOwner().
		Order(ent.Asc(entevent.FieldDate)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query events in window: %w", err)
	}
	return events, nil
}
