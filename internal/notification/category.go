// Package notification implements the notification pipeline: dispatch
// persists an in-app notification row, then relays fan it out to email
// and web push according to the recipient's preferences.
package notification

import "fmt"

// Category constants matching ent/schema/notification.go enum values.
const (
	CategoryEventReminder = "EVENT_REMINDER"
	CategoryEventCreated  = "EVENT_CREATED"
	CategoryEventUpdated  = "EVENT_UPDATED"
	CategoryEventDeleted  = "EVENT_DELETED"
	CategorySystemMessage = "SYSTEM_MESSAGE"
	CategoryMarketing     = "MARKETING"
)

// ValidCategory reports whether c is a known notification category.
func ValidCategory(c string) bool {
	switch c {
	case CategoryEventReminder, CategoryEventCreated, CategoryEventUpdated,
		CategoryEventDeleted, CategorySystemMessage, CategoryMarketing:
		return true
	}
	return false
}

// Preferences is a recipient's delivery preference snapshot.
type Preferences struct {
	EmailNotifications  bool
	PushNotifications   bool
	EventReminders      bool
	MarketingEmails     bool
	ReminderLeadMinutes int
}

// DefaultPreferences are applied to every new account at registration.
// A recipient whose settings row is missing gets the zero Preferences
// instead, which disables every channel.
func DefaultPreferences() Preferences {
	return Preferences{
		EmailNotifications:  true,
		PushNotifications:   true,
		EventReminders:      true,
		MarketingEmails:     false,
		ReminderLeadMinutes: 15,
	}
}

// EmailAllowed reports whether prefs permit email delivery for a category.
// The global email switch gates everything; MARKETING and EVENT_REMINDER
// carry an additional per-category opt-in.
func (p Preferences) EmailAllowed(category string) bool {
	if !p.EmailNotifications {
		return false
	}
	switch category {
	case CategoryMarketing:
		return p.MarketingEmails
	case CategoryEventReminder:
		return p.EventReminders
	default:
		return true
	}
}

// PushAllowed reports whether prefs permit web push delivery.
func (p Preferences) PushAllowed(string) bool {
	return p.PushNotifications
}

// Params holds the fields for dispatching a notification.
type Params struct {
	RecipientID string
	Category    string
	Title       string
	Message     string
}

func (p Params) validate() error {
	if p.RecipientID == "" {
		return fmt.Errorf("recipient_id is required")
	}
	if !ValidCategory(p.Category) {
		return fmt.Errorf("unknown notification category: %s", p.Category)
	}
	if p.Title == "" {
		return fmt.Errorf("title is required")
	}
	if p.Message == "" {
		return fmt.Errorf("message is required")
	}
	return nil
}
