package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// NotificationSettings holds per-user delivery preferences.
// Exactly one row per user, created with defaults at registration.
// Absent settings are treated as "notifications disabled", not an error.
type NotificationSettings struct {
	ent.Schema
}

// Mixin of the NotificationSettings.
func (NotificationSettings) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the NotificationSettings.
func (NotificationSettings) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Bool("email_notifications").
			Default(true).
			Comment("Global email gate; nothing is mailed when false"),
		field.Bool("push_notifications").
			Default(true),
		field.Bool("event_reminders").
			Default(true),
		field.Bool("marketing_emails").
			Default(false),
		field.Int("reminder_lead_minutes").
			Default(15).
			Min(5).
			Max(60),
	}
}

// Edges of the NotificationSettings.
func (NotificationSettings) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("settings").
			Unique().
			Required(),
	}
}
