// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"planwise.io/planwise/ent/pushsubscription"
	"planwise.io/planwise/ent/user"
)

// PushSubscription is the model entity for the PushSubscription schema.
type PushSubscription struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Endpoint holds the value of the "endpoint" field.
	Endpoint string `json:"endpoint,omitempty"`
	// P256dhKey holds the value of the "p256dh_key" field.
	P256dhKey string `json:"p256dh_key,omitempty"`
	// AuthKey holds the value of the "auth_key" field.
	AuthKey string `json:"-"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PushSubscriptionQuery when eager-loading is set.
	Edges                   PushSubscriptionEdges `json:"edges"`
	user_push_subscriptions *string
	selectValues            sql.SelectValues
}

// PushSubscriptionEdges holds the relations/edges for other nodes in the graph.
type PushSubscriptionEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PushSubscriptionEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PushSubscription) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pushsubscription.FieldID, pushsubscription.FieldEndpoint, pushsubscription.FieldP256dhKey, pushsubscription.FieldAuthKey:
			values[i] = new(sql.NullString)
		case pushsubscription.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case pushsubscription.ForeignKeys[0]: // user_push_subscriptions
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PushSubscription fields.
func (_m *PushSubscription) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pushsubscription.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pushsubscription.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case pushsubscription.FieldEndpoint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field endpoint", values[i])
			} else if value.Valid {
				_m.Endpoint = value.String
			}
		case pushsubscription.FieldP256dhKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field p256dh_key", values[i])
			} else if value.Valid {
				_m.P256dhKey = value.String
			}
		case pushsubscription.FieldAuthKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field auth_key", values[i])
			} else if value.Valid {
				_m.AuthKey = value.String
			}
		case pushsubscription.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_push_subscriptions", values[i])
			} else if value.Valid {
				_m.user_push_subscriptions = new(string)
				*_m.user_push_subscriptions = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PushSubscription.
// This includes values selected through modifiers, order, etc.
func (_m *PushSubscription) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the PushSubscription entity.
func (_m *PushSubscription) QueryUser() *UserQuery {
	return NewPushSubscriptionClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this PushSubscription.
// Note that you need to call PushSubscription.Unwrap() before calling this method if this PushSubscription
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PushSubscription) Update() *PushSubscriptionUpdateOne {
	return NewPushSubscriptionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PushSubscription entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PushSubscription) Unwrap() *PushSubscription {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PushSubscription is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PushSubscription) String() string {
	var builder strings.Builder
	builder.WriteString("PushSubscription(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("endpoint=")
	builder.WriteString(_m.Endpoint)
	builder.WriteString(", ")
	builder.WriteString("p256dh_key=")
	builder.WriteString(_m.P256dhKey)
	builder.WriteString(", ")
	builder.WriteString("auth_key=<sensitive>")
	builder.WriteByte(')')
	return builder.String()
}

// PushSubscriptions is a parsable slice of PushSubscription.
type PushSubscriptions []*PushSubscription
