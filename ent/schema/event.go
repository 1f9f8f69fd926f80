package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity.
// Events are visible and mutable only through owner-scoped queries.
type Event struct {
	ent.Schema
}

// Mixin of the Event.
func (Event) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("title").
			NotEmpty().
			MaxLen(255),
		field.String("description").
			Optional().
			MaxLen(2048),
		field.Time("date").
			Comment("Start date/time of the event"),
		field.String("time").
			Optional().
			Comment("Display time label, e.g. 10:00 AM"),
		field.String("location").
			Optional().
			MaxLen(255),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("events").
			Unique().
			Required(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("owner").Fields("date"), // Paginated list + upcoming query
		index.Fields("date"),                // Reminder scan window
	}
}
