package handlers

import "time"

// ---- Requests ----

// RegisterRequest is the body of POST /api/v1/auth/register.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the body of POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateEventRequest is the body of POST /api/v1/events.
type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" binding:"required"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
}

// UpdateEventRequest is the body of PUT /api/v1/events/:id.
// Absent fields keep their current value.
type UpdateEventRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	Time        *string    `json:"time"`
	Location    *string    `json:"location"`
}

// UpdateSettingsRequest is the body of PUT /api/v1/notifications/settings.
type UpdateSettingsRequest struct {
	EmailNotifications  *bool `json:"email_notifications"`
	PushNotifications   *bool `json:"push_notifications"`
	EventReminders      *bool `json:"event_reminders"`
	MarketingEmails     *bool `json:"marketing_emails"`
	ReminderLeadMinutes *int  `json:"reminder_lead_minutes"`
}

// TestNotificationRequest is the body of POST /api/v1/notifications/test.
type TestNotificationRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// SubscribeRequest is the body of POST /api/v1/push/subscriptions.
// It mirrors the browser PushSubscription JSON.
type SubscribeRequest struct {
	Endpoint string `json:"endpoint" binding:"required"`
	Keys     struct {
		P256dh string `json:"p256dh" binding:"required"`
		Auth   string `json:"auth" binding:"required"`
	} `json:"keys" binding:"required"`
}

// UnsubscribeRequest is the body of DELETE /api/v1/push/subscriptions.
type UnsubscribeRequest struct {
	Endpoint string `json:"endpoint" binding:"required"`
}

// ---- Responses ----

// UserResponse is the public user projection.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// EventResponse is the public event projection.
type EventResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time,omitempty"`
	Location    string    `json:"location,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventListResponse is a page of events.
type EventListResponse struct {
	Items      []EventResponse `json:"items"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	PerPage    int             `json:"per_page"`
	TotalPages int             `json:"total_pages"`
}

// NotificationResponse is the public notification projection.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	ReadAt    time.Time `json:"read_at,omitzero"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationListResponse is a page of notifications.
type NotificationListResponse struct {
	Items      []NotificationResponse `json:"items"`
	Total      int                    `json:"total"`
	Page       int                    `json:"page"`
	PerPage    int                    `json:"per_page"`
	TotalPages int                    `json:"total_pages"`
}

// SettingsResponse is the notification settings projection.
type SettingsResponse struct {
	EmailNotifications  bool `json:"email_notifications"`
	PushNotifications   bool `json:"push_notifications"`
	EventReminders      bool `json:"event_reminders"`
	MarketingEmails     bool `json:"marketing_emails"`
	ReminderLeadMinutes int  `json:"reminder_lead_minutes"`
}

// UnreadCountResponse is returned by GET /api/v1/notifications/unread-count.
type UnreadCountResponse struct {
	Count int `json:"count"`
}
