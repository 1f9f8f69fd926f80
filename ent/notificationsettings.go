// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"planwise.io/planwise/ent/notificationsettings"
	"planwise.io/planwise/ent/user"
)

// NotificationSettings is the model entity for the NotificationSettings schema.
type NotificationSettings struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Global email gate; nothing is mailed when false
	EmailNotifications bool `json:"email_notifications,omitempty"`
	// PushNotifications holds the value of the "push_notifications" field.
	PushNotifications bool `json:"push_notifications,omitempty"`
	// EventReminders holds the value of the "event_reminders" field.
	EventReminders bool `json:"event_reminders,omitempty"`
	// MarketingEmails holds the value of the "marketing_emails" field.
	MarketingEmails bool `json:"marketing_emails,omitempty"`
	// ReminderLeadMinutes holds the value of the "reminder_lead_minutes" field.
	ReminderLeadMinutes int `json:"reminder_lead_minutes,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the NotificationSettingsQuery when eager-loading is set.
	Edges         NotificationSettingsEdges `json:"edges"`
	user_settings *string
	selectValues  sql.SelectValues
}

// NotificationSettingsEdges holds the relations/edges for other nodes in the graph.
type NotificationSettingsEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e NotificationSettingsEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NotificationSettings) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case notificationsettings.FieldEmailNotifications, notificationsettings.FieldPushNotifications, notificationsettings.FieldEventReminders, notificationsettings.FieldMarketingEmails:
			values[i] = new(sql.NullBool)
		case notificationsettings.FieldReminderLeadMinutes:
			values[i] = new(sql.NullInt64)
		case notificationsettings.FieldID:
			values[i] = new(sql.NullString)
		case notificationsettings.FieldCreatedAt, notificationsettings.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case notificationsettings.ForeignKeys[0]: // user_settings
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NotificationSettings fields.
func (_m *NotificationSettings) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case notificationsettings.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case notificationsettings.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case notificationsettings.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case notificationsettings.FieldEmailNotifications:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field email_notifications", values[i])
			} else if value.Valid {
				_m.EmailNotifications = value.Bool
			}
		case notificationsettings.FieldPushNotifications:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field push_notifications", values[i])
			} else if value.Valid {
				_m.PushNotifications = value.Bool
			}
		case notificationsettings.FieldEventReminders:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field event_reminders", values[i])
			} else if value.Valid {
				_m.EventReminders = value.Bool
			}
		case notificationsettings.FieldMarketingEmails:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field marketing_emails", values[i])
			} else if value.Valid {
				_m.MarketingEmails = value.Bool
			}
		case notificationsettings.FieldReminderLeadMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reminder_lead_minutes", values[i])
			} else if value.Valid {
				_m.ReminderLeadMinutes = int(value.Int64)
			}
		case notificationsettings.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_settings", values[i])
			} else if value.Valid {
				_m.user_settings = new(string)
				*_m.user_settings = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the NotificationSettings.
// This includes values selected through modifiers, order, etc.
func (_m *NotificationSettings) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the NotificationSettings entity.
func (_m *NotificationSettings) QueryUser() *UserQuery {
	return NewNotificationSettingsClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this NotificationSettings.
// Note that you need to call NotificationSettings.Unwrap() before calling this method if this NotificationSettings
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NotificationSettings) Update() *NotificationSettingsUpdateOne {
	return NewNotificationSettingsClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NotificationSettings entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NotificationSettings) Unwrap() *NotificationSettings {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: NotificationSettings is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NotificationSettings) String() string {
	var builder strings.Builder
	builder.WriteString("NotificationSettings(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("email_notifications=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmailNotifications))
	builder.WriteString(", ")
	builder.WriteString("push_notifications=")
	builder.WriteString(fmt.Sprintf("%v", _m.PushNotifications))
	builder.WriteString(", ")
	builder.WriteString("event_reminders=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventReminders))
	builder.WriteString(", ")
	builder.WriteString("marketing_emails=")
	builder.WriteString(fmt.Sprintf("%v", _m.MarketingEmails))
	builder.WriteString(", ")
	builder.WriteString("reminder_lead_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReminderLeadMinutes))
	builder.WriteByte(')')
	return builder.String()
}

// NotificationSettingsSlice is a parsable slice of NotificationSettings.
type NotificationSettingsSlice []*NotificationSettings
