package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Notification holds the schema definition for the Notification entity.
// Rows are append-only except for the read flag; old read rows are purged
// by the daily retention sweep.
type Notification struct {
	ent.Schema
}

// Mixin of the Notification.
func (Notification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		CreateTimeMixin{},
	}
}

// Fields of the Notification.
func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Enum("category").
			Values(
				"EVENT_REMINDER",
				"EVENT_CREATED",
				"EVENT_UPDATED",
				"EVENT_DELETED",
				"SYSTEM_MESSAGE",
				"MARKETING",
			),
		field.String("title").
			NotEmpty().
			MaxLen(255),
		field.String("message").
			NotEmpty().
			MaxLen(2048),
		field.Bool("read").
			Default(false),
		field.Time("read_at").
			Optional().
			Nillable(),
		field.String("user_id"),
	}
}

// Edges of the Notification.
func (Notification) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("notifications").
			Field("user_id").
			Unique().
			Required(),
	}
}

// Indexes of the Notification.
func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("user").Fields("read"),       // Unread count
		index.Edges("user").Fields("created_at"), // Paginated list by user
		index.Fields("created_at", "read"),       // Retention sweep
	}
}
