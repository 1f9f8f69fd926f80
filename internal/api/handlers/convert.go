package handlers

import (
	"time"

	"planwise.io/planwise/ent"
	"planwise.io/planwise/internal/notification"
)

// defaultPagination normalizes page/per_page query params.
func defaultPagination(page, perPage int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}
	return page, perPage
}

// totalPages computes the page count for a total at the given page size.
func totalPages(total, perPage int) int {
	if total == 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

// timeOrZero returns the value or zero time for nillable ent fields.
func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func toUserResponse(u *ent.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

func toEventResponse(e *ent.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Time:        e.Time,
		Location:    e.Location,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toEventResponses(events []*ent.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}
	return out
}

func toNotificationResponse(n *ent.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Category:  string(n.Category),
		Title:     n.Title,
		Message:   n.Message,
		Read:      n.Read,
		ReadAt:    timeOrZero(n.ReadAt),
		CreatedAt: n.CreatedAt,
	}
}

func toSettingsResponse(p notification.Preferences) SettingsResponse {
	return SettingsResponse{
		EmailNotifications:  p.EmailNotifications,
		PushNotifications:   p.PushNotifications,
		EventReminders:      p.EventReminders,
		MarketingEmails:     p.MarketingEmails,
		ReminderLeadMinutes: p.ReminderLeadMinutes,
	}
}
