package notification

import (
	"context"
	"fmt"
	"time"
)

// Triggers wraps the dispatcher with the canned notifications produced by
// event lifecycle changes, the reminder scan, and system messages.
type Triggers struct {
	dispatcher *Dispatcher
}

// NewTriggers creates the trigger service.
func NewTriggers(d *Dispatcher) *Triggers {
	return &Triggers{dispatcher: d}
}

// EventReminder notifies the owner that an event starts soon.
func (t *Triggers) EventReminder(ctx context.Context, ownerID, eventTitle string, eventDate time.Time) error {
	_, err := t.dispatcher.Dispatch(ctx, Params{
		RecipientID: ownerID,
		Category:    CategoryEventReminder,
		Title:       "Event Reminder",
		Message:     fmt.Sprintf("Don't forget about %q at %s", eventTitle, eventDate.Format("Jan 2, 2006 3:04 PM")),
	})
	return err
}

// EventCreated notifies the owner that their event was saved.
func (t *Triggers) EventCreated(ctx context.Context, ownerID, eventTitle string) error {
	_, err := t.dispatcher.Dispatch(ctx, Params{
		RecipientID: ownerID,
		Category:    CategoryEventCreated,
		Title:       "Event Created",
		Message:     fmt.Sprintf("Your event %q has been created successfully", eventTitle),
	})
	return err
}

// EventUpdated notifies the owner that their event changed.
func (t *Triggers) EventUpdated(ctx context.Context, ownerID, eventTitle string) error {
	_, err := t.dispatcher.Dispatch(ctx, Params{
		RecipientID: ownerID,
		Category:    CategoryEventUpdated,
		Title:       "Event Updated",
		Message:     fmt.Sprintf("Your event %q has been updated", eventTitle),
	})
	return err
}

// EventDeleted notifies the owner that their event was removed.
func (t *Triggers) EventDeleted(ctx context.Context, ownerID, eventTitle string) error {
	_, err := t.dispatcher.Dispatch(ctx, Params{
		RecipientID: ownerID,
		Category:    CategoryEventDeleted,
		Title:       "Event Deleted",
		Message:     fmt.Sprintf("Your event %q has been deleted", eventTitle),
	})
	return err
}

// SystemMessage sends a free-form system notification.
func (t *Triggers) SystemMessage(ctx context.Context, userID, title, message string) error {
	_, err := t.dispatcher.Dispatch(ctx, Params{
		RecipientID: userID,
		Category:    CategorySystemMessage,
		Title:       title,
		Message:     message,
	})
	return err
}
