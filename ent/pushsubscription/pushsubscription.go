// Code generated by ent, DO NOT EDIT.

package pushsubscription

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the pushsubscription type in the database.
	Label = "push_subscription"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldEndpoint holds the string denoting the endpoint field in the database.
	FieldEndpoint = "endpoint"
	// FieldP256dhKey holds the string denoting the p256dh_key field in the database.
	FieldP256dhKey = "p256dh_key"
	// FieldAuthKey holds the string denoting the auth_key field in the database.
	FieldAuthKey = "auth_key"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// Table holds the table name of the pushsubscription in the database.
	Table = "push_subscriptions"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "push_subscriptions"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_push_subscriptions"
)

// Columns holds all SQL columns for pushsubscription fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldEndpoint,
	FieldP256dhKey,
	FieldAuthKey,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "push_subscriptions"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"user_push_subscriptions",
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
	// EndpointValidator is a validator for the "endpoint" field. It is called by the builders before save.
	EndpointValidator func(string) error
	// P256dhKeyValidator is a validator for the "p256dh_key" field. It is called by the builders before save.
	P256dhKeyValidator func(string) error
	// AuthKeyValidator is a validator for the "auth_key" field. It is called by the builders before save.
	AuthKeyValidator func(string) error
)

// OrderOption defines the ordering options for the PushSubscription queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByEndpoint orders the results by the endpoint field.
func ByEndpoint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndpoint, opts...).ToFunc()
}

// ByP256dhKey orders the results by the p256dh_key field.
func ByP256dhKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldP256dhKey, opts...).ToFunc()
}

// ByAuthKey orders the results by the auth_key field.
func ByAuthKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthKey, opts...).ToFunc()
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
		sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
	)
}
