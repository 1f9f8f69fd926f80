package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PushSubscription holds a browser web-push subscription for a user.
// A subscription that the push service reports as gone is pruned on send.
type PushSubscription struct {
	ent.Schema
}

// Mixin of the PushSubscription.
func (PushSubscription) Mixin() []ent.Mixin {
	return []ent.Mixin{
		CreateTimeMixin{},
	}
}

// Fields of the PushSubscription.
func (PushSubscription) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("endpoint").
			NotEmpty().
			MaxLen(1024),
		field.String("p256dh_key").
			NotEmpty(),
		field.String("auth_key").
			NotEmpty().
			Sensitive(),
	}
}

// Edges of the PushSubscription.
func (PushSubscription) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("push_subscriptions").
			Unique().
			Required(),
	}
}

// Indexes of the PushSubscription.
func (PushSubscription) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("user").Fields("endpoint").Unique(),
	}
}
