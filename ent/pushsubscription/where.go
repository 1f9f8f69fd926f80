// Code generated by ent, DO NOT EDIT.

package pushsubscription

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"planwise.io/planwise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEQ(FieldCreatedAt, v))
}

// Endpoint applies equality check predicate on the "endpoint" field. It's identical to EndpointEQ.
func Endpoint(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEQ(FieldEndpoint, v))
}

// P256dhKey applies equality check predicate on the "p256dh_key" field. It's identical to P256dhKeyEQ.
func P256dhKey(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEQ(FieldP256dhKey, v))
}

// AuthKey applies equality check predicate on the "auth_key" field. It's identical to AuthKeyEQ.
func AuthKey(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEQ(FieldAuthKey, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldLTE(FieldCreatedAt, v))
}

// EndpointEQ applies the EQ predicate on the "endpoint" field.
func EndpointEQ(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEQ(FieldEndpoint, v))
}

// EndpointNEQ applies the NEQ predicate on the "endpoint" field.
func EndpointNEQ(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldNEQ(FieldEndpoint, v))
}

// EndpointIn applies the In predicate on the "endpoint" field.
func EndpointIn(vs ...string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldIn(FieldEndpoint, vs...))
}

// EndpointNotIn applies the NotIn predicate on the "endpoint" field.
func EndpointNotIn(vs ...string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldNotIn(FieldEndpoint, vs...))
}

// EndpointGT applies the GT predicate on the "endpoint" field.
func EndpointGT(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldGT(FieldEndpoint, v))
}

// EndpointGTE applies the GTE predicate on the "endpoint" field.
func EndpointGTE(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldGTE(FieldEndpoint, v))
}

// EndpointLT applies the LT predicate on the "endpoint" field.
func EndpointLT(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldLT(FieldEndpoint, v))
}

// EndpointLTE applies the LTE predicate on the "endpoint" field.
func EndpointLTE(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldLTE(FieldEndpoint, v))
}

// EndpointContains applies the Contains predicate on the "endpoint" field.
func EndpointContains(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldContains(FieldEndpoint, v))
}

// EndpointHasPrefix applies the HasPrefix predicate on the "endpoint" field.
func EndpointHasPrefix(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldHasPrefix(FieldEndpoint, v))
}

// EndpointHasSuffix applies the HasSuffix predicate on the "endpoint" field.
func EndpointHasSuffix(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldHasSuffix(FieldEndpoint, v))
}

// EndpointEqualFold applies the EqualFold predicate on the "endpoint" field.
func EndpointEqualFold(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEqualFold(FieldEndpoint, v))
}

// EndpointContainsFold applies the ContainsFold predicate on the "endpoint" field.
func EndpointContainsFold(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldContainsFold(FieldEndpoint, v))
}

// P256dhKeyEQ applies the EQ predicate on the "p256dh_key" field.
func P256dhKeyEQ(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEQ(FieldP256dhKey, v))
}

// P256dhKeyNEQ applies the NEQ predicate on the "p256dh_key" field.
func P256dhKeyNEQ(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldNEQ(FieldP256dhKey, v))
}

// P256dhKeyIn applies the In predicate on the "p256dh_key" field.
func P256dhKeyIn(vs ...string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldIn(FieldP256dhKey, vs...))
}

// P256dhKeyNotIn applies the NotIn predicate on the "p256dh_key" field.
func P256dhKeyNotIn(vs ...string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldNotIn(FieldP256dhKey, vs...))
}

// P256dhKeyGT applies the GT predicate on the "p256dh_key" field.
func P256dhKeyGT(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldGT(FieldP256dhKey, v))
}

// P256dhKeyGTE applies the GTE predicate on the "p256dh_key" field.
func P256dhKeyGTE(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldGTE(FieldP256dhKey, v))
}

// P256dhKeyLT applies the LT predicate on the "p256dh_key" field.
func P256dhKeyLT(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldLT(FieldP256dhKey, v))
}

// P256dhKeyLTE applies the LTE predicate on the "p256dh_key" field.
func P256dhKeyLTE(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldLTE(FieldP256dhKey, v))
}

// P256dhKeyContains applies the Contains predicate on the "p256dh_key" field.
func P256dhKeyContains(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldContains(FieldP256dhKey, v))
}

// P256dhKeyHasPrefix applies the HasPrefix predicate on the "p256dh_key" field.
func P256dhKeyHasPrefix(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldHasPrefix(FieldP256dhKey, v))
}

// P256dhKeyHasSuffix applies the HasSuffix predicate on the "p256dh_key" field.
func P256dhKeyHasSuffix(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldHasSuffix(FieldP256dhKey, v))
}

// P256dhKeyEqualFold applies the EqualFold predicate on the "p256dh_key" field.
func P256dhKeyEqualFold(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEqualFold(FieldP256dhKey, v))
}

// P256dhKeyContainsFold applies the ContainsFold predicate on the "p256dh_key" field.
func P256dhKeyContainsFold(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldContainsFold(FieldP256dhKey, v))
}

// AuthKeyEQ applies the EQ predicate on the "auth_key" field.
func AuthKeyEQ(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEQ(FieldAuthKey, v))
}

// AuthKeyNEQ applies the NEQ predicate on the "auth_key" field.
func AuthKeyNEQ(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldNEQ(FieldAuthKey, v))
}

// AuthKeyIn applies the In predicate on the "auth_key" field.
func AuthKeyIn(vs ...string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldIn(FieldAuthKey, vs...))
}

// AuthKeyNotIn applies the NotIn predicate on the "auth_key" field.
func AuthKeyNotIn(vs ...string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldNotIn(FieldAuthKey, vs...))
}

// AuthKeyGT applies the GT predicate on the "auth_key" field.
func AuthKeyGT(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldGT(FieldAuthKey, v))
}

// AuthKeyGTE applies the GTE predicate on the "auth_key" field.
func AuthKeyGTE(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldGTE(FieldAuthKey, v))
}

// AuthKeyLT applies the LT predicate on the "auth_key" field.
func AuthKeyLT(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldLT(FieldAuthKey, v))
}

// AuthKeyLTE applies the LTE predicate on the "auth_key" field.
func AuthKeyLTE(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldLTE(FieldAuthKey, v))
}

// AuthKeyContains applies the Contains predicate on the "auth_key" field.
func AuthKeyContains(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldContains(FieldAuthKey, v))
}

// AuthKeyHasPrefix applies the HasPrefix predicate on the "auth_key" field.
func AuthKeyHasPrefix(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldHasPrefix(FieldAuthKey, v))
}

// AuthKeyHasSuffix applies the HasSuffix predicate on the "auth_key" field.
func AuthKeyHasSuffix(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldHasSuffix(FieldAuthKey, v))
}

// AuthKeyEqualFold applies the EqualFold predicate on the "auth_key" field.
func AuthKeyEqualFold(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldEqualFold(FieldAuthKey, v))
}

// AuthKeyContainsFold applies the ContainsFold predicate on the "auth_key" field.
func AuthKeyContainsFold(v string) predicate.PushSubscription {
	return predicate.PushSubscription(sql.FieldContainsFold(FieldAuthKey, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.PushSubscription {
	return predicate.PushSubscription(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.PushSubscription {
	return predicate.PushSubscription(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PushSubscription) predicate.PushSubscription {
	return predicate.PushSubscription(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PushSubscription) predicate.PushSubscription {
	return predicate.PushSubscription(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PushSubscription) predicate.PushSubscription {
	return predicate.PushSubscription(sql.NotPredicates(p))
}
