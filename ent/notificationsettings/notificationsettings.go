// Code generated by ent, DO NOT EDIT.

package notificationsettings

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the notificationsettings type in the database.
	Label = "notification_settings"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldEmailNotifications holds the string denoting the email_notifications field in the database.
	FieldEmailNotifications = "email_notifications"
	// FieldPushNotifications holds the string denoting the push_notifications field in the database.
	FieldPushNotifications = "push_notifications"
	// FieldEventReminders holds the string denoting the event_reminders field in the database.
	FieldEventReminders = "event_reminders"
	// FieldMarketingEmails holds the string denoting the marketing_emails field in the database.
	FieldMarketingEmails = "marketing_emails"
	// FieldReminderLeadMinutes holds the string denoting the reminder_lead_minutes field in the database.
	FieldReminderLeadMinutes = "reminder_lead_minutes"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// Table holds the table name of the notificationsettings in the database.
	Table = "notification_settings"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "notification_settings"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_settings"
)

// Columns holds all SQL columns for notificationsettings fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldEmailNotifications,
	FieldPushNotifications,
	FieldEventReminders,
	FieldMarketingEmails,
	FieldReminderLeadMinutes,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "notification_settings"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"user_settings",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultEmailNotifications holds the default value on creation for the "email_notifications" field.
	DefaultEmailNotifications bool
	// DefaultPushNotifications holds the default value on creation for the "push_notifications" field.
	DefaultPushNotifications bool
	// DefaultEventReminders holds the default value on creation for the "event_reminders" field.
	DefaultEventReminders bool
	// DefaultMarketingEmails holds the default value on creation for the "marketing_emails" field.
	DefaultMarketingEmails bool
	// DefaultReminderLeadMinutes holds the default value on creation for the "reminder_lead_minutes" field.
	DefaultReminderLeadMinutes int
	// ReminderLeadMinutesValidator is a validator for the "reminder_lead_minutes" field. It is called by the builders before save.
	ReminderLeadMinutesValidator func(int) error
)

// OrderOption defines the ordering options for the NotificationSettings queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByEmailNotifications orders the results by the email_notifications field.
func ByEmailNotifications(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailNotifications, opts...).ToFunc()
}

// ByPushNotifications orders the results by the push_notifications field.
func ByPushNotifications(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPushNotifications, opts...).ToFunc()
}

// ByEventReminders orders the results by the event_reminders field.
func ByEventReminders(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventReminders, opts...).ToFunc()
}

// ByMarketingEmails orders the results by the marketing_emails field.
func ByMarketingEmails(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarketingEmails, opts...).ToFunc()
}

// ByReminderLeadMinutes orders the results by the reminder_lead_minutes field.
func ByReminderLeadMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReminderLeadMinutes, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, UserTable, UserColumn),
	)
}
