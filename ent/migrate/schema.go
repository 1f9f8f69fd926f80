// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2048},
		{Name: "date", Type: field.TypeTime},
		{Name: "time", Type: field.TypeString, Nullable: true},
		{Name: "location", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "user_events", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_users_events",
				Columns:    []*schema.Column{EventsColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_date_user_events",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[5], EventsColumns[8]},
			},
			{
				Name:    "event_date",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[5]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"EVENT_REMINDER", "EVENT_CREATED", "EVENT_UPDATED", "EVENT_DELETED", "SYSTEM_MESSAGE", "MARKETING"}},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "message", Type: field.TypeString, Size: 2048},
		{Name: "read", Type: field.TypeBool, Default: false},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeString},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "notifications_users_notifications",
				Columns:    []*schema.Column{NotificationsColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "notification_read_user_id",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[5], NotificationsColumns[7]},
			},
			{
				Name:    "notification_created_at_user_id",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1], NotificationsColumns[7]},
			},
			{
				Name:    "notification_created_at_read",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1], NotificationsColumns[5]},
			},
		},
	}
	// NotificationSettingsColumns holds the columns for the "notification_settings" table.
	NotificationSettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "email_notifications", Type: field.TypeBool, Default: true},
		{Name: "push_notifications", Type: field.TypeBool, Default: true},
		{Name: "event_reminders", Type: field.TypeBool, Default: true},
		{Name: "marketing_emails", Type: field.TypeBool, Default: false},
		{Name: "reminder_lead_minutes", Type: field.TypeInt, Default: 15},
		{Name: "user_settings", Type: field.TypeString, Unique: true},
	}
	// NotificationSettingsTable holds the schema information for the "notification_settings" table.
	NotificationSettingsTable = &schema.Table{
		Name:       "notification_settings",
		Columns:    NotificationSettingsColumns,
		PrimaryKey: []*schema.Column{NotificationSettingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "notification_settings_users_settings",
				Columns:    []*schema.Column{NotificationSettingsColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// PushSubscriptionsColumns holds the columns for the "push_subscriptions" table.
	PushSubscriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "endpoint", Type: field.TypeString, Size: 1024},
		{Name: "p256dh_key", Type: field.TypeString},
		{Name: "auth_key", Type: field.TypeString},
		{Name: "user_push_subscriptions", Type: field.TypeString},
	}
	// PushSubscriptionsTable holds the schema information for the "push_subscriptions" table.
	PushSubscriptionsTable = &schema.Table{
		Name:       "push_subscriptions",
		Columns:    PushSubscriptionsColumns,
		PrimaryKey: []*schema.Column{PushSubscriptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "push_subscriptions_users_push_subscriptions",
				Columns:    []*schema.Column{PushSubscriptionsColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pushsubscription_endpoint_user_push_subscriptions",
				Unique:  true,
				Columns: []*schema.Column{PushSubscriptionsColumns[2], PushSubscriptionsColumns[5]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "email", Type: field.TypeString, Size: 255},
		{Name: "name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EventsTable,
		NotificationsTable,
		NotificationSettingsTable,
		PushSubscriptionsTable,
		UsersTable,
	}
)

func init() {
	EventsTable.ForeignKeys[0].RefTable = UsersTable
	NotificationsTable.ForeignKeys[0].RefTable = UsersTable
	NotificationSettingsTable.ForeignKeys[0].RefTable = UsersTable
	PushSubscriptionsTable.ForeignKeys[0].RefTable = UsersTable
}
