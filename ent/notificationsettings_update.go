// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"planwise.io/planwise/ent/notificationsettings"
	"planwise.io/planwise/ent/predicate"
	"planwise.io/planwise/ent/user"
)

// NotificationSettingsUpdate is the builder for updating NotificationSettings entities.
type NotificationSettingsUpdate struct {
	config
	hooks    []Hook
	mutation *NotificationSettingsMutation
}

// Where appends a list predicates to the NotificationSettingsUpdate builder.
func (_u *NotificationSettingsUpdate) Where(ps ...predicate.NotificationSettings) *NotificationSettingsUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NotificationSettingsUpdate) SetUpdatedAt(v time.Time) *NotificationSettingsUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEmailNotifications sets the "email_notifications" field.
func (_u *NotificationSettingsUpdate) SetEmailNotifications(v bool) *NotificationSettingsUpdate {
	_u.mutation.SetEmailNotifications(v)
	return _u
}

// SetNillableEmailNotifications sets the "email_notifications" field if the given value is not nil.
func (_u *NotificationSettingsUpdate) SetNillableEmailNotifications(v *bool) *NotificationSettingsUpdate {
	if v != nil {
		_u.SetEmailNotifications(*v)
	}
	return _u
}

// SetPushNotifications sets the "push_notifications" field.
func (_u *NotificationSettingsUpdate) SetPushNotifications(v bool) *NotificationSettingsUpdate {
	_u.mutation.SetPushNotifications(v)
	return _u
}

// SetNillablePushNotifications sets the "push_notifications" field if the given value is not nil.
func (_u *NotificationSettingsUpdate) SetNillablePushNotifications(v *bool) *NotificationSettingsUpdate {
	if v != nil {
		_u.SetPushNotifications(*v)
	}
	return _u
}

// SetEventReminders sets the "event_reminders" field.
func (_u *NotificationSettingsUpdate) SetEventReminders(v bool) *NotificationSettingsUpdate {
	_u.mutation.SetEventReminders(v)
	return _u
}

// SetNillableEventReminders sets the "event_reminders" field if the given value is not nil.
func (_u *NotificationSettingsUpdate) SetNillableEventReminders(v *bool) *NotificationSettingsUpdate {
	if v != nil {
		_u.SetEventReminders(*v)
	}
	return _u
}

// SetMarketingEmails sets the "marketing_emails" field.
func (_u *NotificationSettingsUpdate) SetMarketingEmails(v bool) *NotificationSettingsUpdate {
	_u.mutation.SetMarketingEmails(v)
	return _u
}

// SetNillableMarketingEmails sets the "marketing_emails" field if the given value is not nil.
func (_u *NotificationSettingsUpdate) SetNillableMarketingEmails(v *bool) *NotificationSettingsUpdate {
	if v != nil {
		_u.SetMarketingEmails(*v)
	}
	return _u
}

// SetReminderLeadMinutes sets the "reminder_lead_minutes" field.
func (_u *NotificationSettingsUpdate) SetReminderLeadMinutes(v int) *NotificationSettingsUpdate {
	_u.mutation.ResetReminderLeadMinutes()
	_u.mutation.SetReminderLeadMinutes(v)
	return _u
}

// SetNillableReminderLeadMinutes sets the "reminder_lead_minutes" field if the given value is not nil.
func (_u *NotificationSettingsUpdate) SetNillableReminderLeadMinutes(v *int) *NotificationSettingsUpdate {
	if v != nil {
		_u.SetReminderLeadMinutes(*v)
	}
	return _u
}

// AddReminderLeadMinutes adds value to the "reminder_lead_minutes" field.
func (_u *NotificationSettingsUpdate) AddReminderLeadMinutes(v int) *NotificationSettingsUpdate {
	_u.mutation.AddReminderLeadMinutes(v)
	return _u
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_u *NotificationSettingsUpdate) SetUserID(id string) *NotificationSettingsUpdate {
	_u.mutation.SetUserID(id)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *NotificationSettingsUpdate) SetUser(v *User) *NotificationSettingsUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the NotificationSettingsMutation object of the builder.
func (_u *NotificationSettingsUpdate) Mutation() *NotificationSettingsMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *NotificationSettingsUpdate) ClearUser() *NotificationSettingsUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NotificationSettingsUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationSettingsUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NotificationSettingsUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationSettingsUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NotificationSettingsUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := notificationsettings.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NotificationSettingsUpdate) check() error {
	if v, ok := _u.mutation.ReminderLeadMinutes(); ok {
		if err := notificationsettings.ReminderLeadMinutesValidator(v); err != nil {
			return &ValidationError{Name: "reminder_lead_minutes", err: fmt.Errorf(`ent: validator failed for field "NotificationSettings.reminder_lead_minutes": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "NotificationSettings.user"`)
	}
	return nil
}

func (_u *NotificationSettingsUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notificationsettings.Table, notificationsettings.Columns, sqlgraph.NewFieldSpec(notificationsettings.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(notificationsettings.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EmailNotifications(); ok {
		_spec.SetField(notificationsettings.FieldEmailNotifications, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PushNotifications(); ok {
		_spec.SetField(notificationsettings.FieldPushNotifications, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EventReminders(); ok {
		_spec.SetField(notificationsettings.FieldEventReminders, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MarketingEmails(); ok {
		_spec.SetField(notificationsettings.FieldMarketingEmails, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReminderLeadMinutes(); ok {
		_spec.SetField(notificationsettings.FieldReminderLeadMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReminderLeadMinutes(); ok {
		_spec.AddField(notificationsettings.FieldReminderLeadMinutes, field.TypeInt, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   notificationsettings.UserTable,
			Columns: []string{notificationsettings.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   notificationsettings.UserTable,
			Columns: []string{notificationsettings.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notificationsettings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NotificationSettingsUpdateOne is the builder for updating a single NotificationSettings entity.
type NotificationSettingsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NotificationSettingsMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NotificationSettingsUpdateOne) SetUpdatedAt(v time.Time) *NotificationSettingsUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEmailNotifications sets the "email_notifications" field.
func (_u *NotificationSettingsUpdateOne) SetEmailNotifications(v bool) *NotificationSettingsUpdateOne {
	_u.mutation.SetEmailNotifications(v)
	return _u
}

// SetNillableEmailNotifications sets the "email_notifications" field if the given value is not nil.
func (_u *NotificationSettingsUpdateOne) SetNillableEmailNotifications(v *bool) *NotificationSettingsUpdateOne {
	if v != nil {
		_u.SetEmailNotifications(*v)
	}
	return _u
}

// SetPushNotifications sets the "push_notifications" field.
func (_u *NotificationSettingsUpdateOne) SetPushNotifications(v bool) *NotificationSettingsUpdateOne {
	_u.mutation.SetPushNotifications(v)
	return _u
}

// SetNillablePushNotifications sets the "push_notifications" field if the given value is not nil.
func (_u *NotificationSettingsUpdateOne) SetNillablePushNotifications(v *bool) *NotificationSettingsUpdateOne {
	if v != nil {
		_u.SetPushNotifications(*v)
	}
	return _u
}

// SetEventReminders sets the "event_reminders" field.
func (_u *NotificationSettingsUpdateOne) SetEventReminders(v bool) *NotificationSettingsUpdateOne {
	_u.mutation.SetEventReminders(v)
	return _u
}

// SetNillableEventReminders sets the "event_reminders" field if the given value is not nil.
func (_u *NotificationSettingsUpdateOne) SetNillableEventReminders(v *bool) *NotificationSettingsUpdateOne {
	if v != nil {
		_u.SetEventReminders(*v)
	}
	return _u
}

// SetMarketingEmails sets the "marketing_emails" field.
func (_u *NotificationSettingsUpdateOne) SetMarketingEmails(v bool) *NotificationSettingsUpdateOne {
	_u.mutation.SetMarketingEmails(v)
	return _u
}

// SetNillableMarketingEmails sets the "marketing_emails" field if the given value is not nil.
func (_u *NotificationSettingsUpdateOne) SetNillableMarketingEmails(v *bool) *NotificationSettingsUpdateOne {
	if v != nil {
		_u.SetMarketingEmails(*v)
	}
	return _u
}

// SetReminderLeadMinutes sets the "reminder_lead_minutes" field.
func (_u *NotificationSettingsUpdateOne) SetReminderLeadMinutes(v int) *NotificationSettingsUpdateOne {
	_u.mutation.ResetReminderLeadMinutes()
	_u.mutation.SetReminderLeadMinutes(v)
	return _u
}

// SetNillableReminderLeadMinutes sets the "reminder_lead_minutes" field if the given value is not nil.
func (_u *NotificationSettingsUpdateOne) SetNillableReminderLeadMinutes(v *int) *NotificationSettingsUpdateOne {
	if v != nil {
		_u.SetReminderLeadMinutes(*v)
	}
	return _u
}

// AddReminderLeadMinutes adds value to the "reminder_lead_minutes" field.
func (_u *NotificationSettingsUpdateOne) AddReminderLeadMinutes(v int) *NotificationSettingsUpdateOne {
	_u.mutation.AddReminderLeadMinutes(v)
	return _u
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_u *NotificationSettingsUpdateOne) SetUserID(id string) *NotificationSettingsUpdateOne {
	_u.mutation.SetUserID(id)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *NotificationSettingsUpdateOne) SetUser(v *User) *NotificationSettingsUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the NotificationSettingsMutation object of the builder.
func (_u *NotificationSettingsUpdateOne) Mutation() *NotificationSettingsMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *NotificationSettingsUpdateOne) ClearUser() *NotificationSettingsUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the NotificationSettingsUpdate builder.
func (_u *NotificationSettingsUpdateOne) Where(ps ...predicate.NotificationSettings) *NotificationSettingsUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NotificationSettingsUpdateOne) Select(field string, fields ...string) *NotificationSettingsUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NotificationSettings entity.
func (_u *NotificationSettingsUpdateOne) Save(ctx context.Context) (*NotificationSettings, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationSettingsUpdateOne) SaveX(ctx context.Context) *NotificationSettings {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NotificationSettingsUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationSettingsUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NotificationSettingsUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := notificationsettings.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NotificationSettingsUpdateOne) check() error {
	if v, ok := _u.mutation.ReminderLeadMinutes(); ok {
		if err := notificationsettings.ReminderLeadMinutesValidator(v); err != nil {
			return &ValidationError{Name: "reminder_lead_minutes", err: fmt.Errorf(`ent: validator failed for field "NotificationSettings.reminder_lead_minutes": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "NotificationSettings.user"`)
	}
	return nil
}

func (_u *NotificationSettingsUpdateOne) sqlSave(ctx context.Context) (_node *NotificationSettings, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notificationsettings.Table, notificationsettings.Columns, sqlgraph.NewFieldSpec(notificationsettings.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "NotificationSettings.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, notificationsettings.FieldID)
		for _, f := range fields {
			if !notificationsettings.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != notificationsettings.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(notificationsettings.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EmailNotifications(); ok {
		_spec.SetField(notificationsettings.FieldEmailNotifications, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PushNotifications(); ok {
		_spec.SetField(notificationsettings.FieldPushNotifications, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EventReminders(); ok {
		_spec.SetField(notificationsettings.FieldEventReminders, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MarketingEmails(); ok {
		_spec.SetField(notificationsettings.FieldMarketingEmails, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReminderLeadMinutes(); ok {
		_spec.SetField(notificationsettings.FieldReminderLeadMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReminderLeadMinutes(); ok {
		_spec.AddField(notificationsettings.FieldReminderLeadMinutes, field.TypeInt, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   notificationsettings.UserTable,
			Columns: []string{notificationsettings.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   notificationsettings.UserTable,
			Columns: []string{notificationsettings.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &NotificationSettings{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notificationsettings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
