// Code generated by ent, DO NOT EDIT.

package notificationsettings

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"planwise.io/planwise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldEQ(FieldUpdatedAt, v))
}

// EmailNotifications applies equality check predicate on the "email_notifications" field. It's identical to EmailNotificationsEQ.
func EmailNotifications(v bool) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldEQ(FieldEmailNotifications, v))
}

// PushNotifications applies equality check predicate on the "push_notifications" field. It's identical to PushNotificationsEQ.
func PushNotifications(v bool) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldEQ(FieldPushNotifications, v))
}

// EventReminders applies equality check predicate on the "event_reminders" field. It's identical to EventRemindersEQ.
func EventReminders(v bool) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldEQ(FieldEventReminders, v))
}

// MarketingEmails applies equality check predicate on the "marketing_emails" field. It's identical to MarketingEmailsEQ.
func MarketingEmails(v bool) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldEQ(FieldMarketingEmails, v))
}

// ReminderLeadMinutes applies equality check predicate on the "reminder_lead_minutes" field. It's identical to ReminderLeadMinutesEQ.
func ReminderLeadMinutes(v int) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldEQ(FieldReminderLeadMinutes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldLTE(FieldUpdatedAt, v))
}

// EmailNotificationsEQ applies the EQ predicate on the "email_notifications" field.
func EmailNotificationsEQ(v bool) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldEQ(FieldEmailNotifications, v))
}

// EmailNotificationsNEQ applies the NEQ predicate on the "email_notifications" field.
func EmailNotificationsNEQ(v bool) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldNEQ(FieldEmailNotifications, v))
}

// PushNotificationsEQ applies the EQ predicate on the "push_notifications" field.
func PushNotificationsEQ(v bool) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldEQ(FieldPushNotifications, v))
}

// PushNotificationsNEQ applies the NEQ predicate on the "push_notifications" field.
func PushNotificationsNEQ(v bool) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldNEQ(FieldPushNotifications, v))
}

// EventRemindersEQ applies the EQ predicate on the "event_reminders" field.
func EventRemindersEQ(v bool) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldEQ(FieldEventReminders, v))
}

// EventRemindersNEQ applies the NEQ predicate on the "event_reminders" field.
func EventRemindersNEQ(v bool) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldNEQ(FieldEventReminders, v))
}

// MarketingEmailsEQ applies the EQ predicate on the "marketing_emails" field.
func MarketingEmailsEQ(v bool) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldEQ(FieldMarketingEmails, v))
}

// MarketingEmailsNEQ applies the NEQ predicate on the "marketing_emails" field.
func MarketingEmailsNEQ(v bool) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldNEQ(FieldMarketingEmails, v))
}

// ReminderLeadMinutesEQ applies the EQ predicate on the "reminder_lead_minutes" field.
func ReminderLeadMinutesEQ(v int) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldEQ(FieldReminderLeadMinutes, v))
}

// ReminderLeadMinutesNEQ applies the NEQ predicate on the "reminder_lead_minutes" field.
func ReminderLeadMinutesNEQ(v int) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldNEQ(FieldReminderLeadMinutes, v))
}

// ReminderLeadMinutesIn applies the In predicate on the "reminder_lead_minutes" field.
func ReminderLeadMinutesIn(vs ...int) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldIn(FieldReminderLeadMinutes, vs...))
}

// ReminderLeadMinutesNotIn applies the NotIn predicate on the "reminder_lead_minutes" field.
func ReminderLeadMinutesNotIn(vs ...int) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldNotIn(FieldReminderLeadMinutes, vs...))
}

// ReminderLeadMinutesGT applies the GT predicate on the "reminder_lead_minutes" field.
func ReminderLeadMinutesGT(v int) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldGT(FieldReminderLeadMinutes, v))
}

// ReminderLeadMinutesGTE applies the GTE predicate on the "reminder_lead_minutes" field.
func ReminderLeadMinutesGTE(v int) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldGTE(FieldReminderLeadMinutes, v))
}

// ReminderLeadMinutesLT applies the LT predicate on the "reminder_lead_minutes" field.
func ReminderLeadMinutesLT(v int) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldLT(FieldReminderLeadMinutes, v))
}

// ReminderLeadMinutesLTE applies the LTE predicate on the "reminder_lead_minutes" field.
func ReminderLeadMinutesLTE(v int) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.FieldLTE(FieldReminderLeadMinutes, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.NotificationSettings {
	return predicate.NotificationSettings(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.NotificationSettings {
	return predicate.NotificationSettings(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NotificationSettings) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NotificationSettings) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NotificationSettings) predicate.NotificationSettings {
	return predicate.NotificationSettings(sql.NotPredicates(p))
}
