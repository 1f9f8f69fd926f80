package errors

// Error code constants used by the HTTP layer.

// Event error codes.
const (
	CodeEventNotFound = "EVENT_NOT_FOUND"
)

// Notification error codes.
const (
	CodeNotificationNotFound = "NOTIFICATION_NOT_FOUND"
	CodeSettingsInvalid      = "SETTINGS_INVALID"
	CodeSubscriptionNotFound = "SUBSCRIPTION_NOT_FOUND"
)

// Auth error codes.
const (
	CodeEmailTaken         = "EMAIL_TAKEN"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeUserNotFound       = "USER_NOT_FOUND"
)

// Request error codes.
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInternal       = "INTERNAL_ERROR"
)
