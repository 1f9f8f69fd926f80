// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// NotificationSettings is the predicate function for notificationsettings builders.
type NotificationSettings func(*sql.Selector)

// PushSubscription is the predicate function for pushsubscription builders.
type PushSubscription func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
