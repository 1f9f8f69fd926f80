// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"planwise.io/planwise/ent/notificationsettings"
	"planwise.io/planwise/ent/user"
)

// NotificationSettingsCreate is the builder for creating a NotificationSettings entity.
type NotificationSettingsCreate struct {
	config
	mutation *NotificationSettingsMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *NotificationSettingsCreate) SetCreatedAt(v time.Time) *NotificationSettingsCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NotificationSettingsCreate) SetNillableCreatedAt(v *time.Time) *NotificationSettingsCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *NotificationSettingsCreate) SetUpdatedAt(v time.Time) *NotificationSettingsCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *NotificationSettingsCreate) SetNillableUpdatedAt(v *time.Time) *NotificationSettingsCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetEmailNotifications sets the "email_notifications" field.
func (_c *NotificationSettingsCreate) SetEmailNotifications(v bool) *NotificationSettingsCreate {
	_c.mutation.SetEmailNotifications(v)
	return _c
}

// SetNillableEmailNotifications sets the "email_notifications" field if the given value is not nil.
func (_c *NotificationSettingsCreate) SetNillableEmailNotifications(v *bool) *NotificationSettingsCreate {
	if v != nil {
		_c.SetEmailNotifications(*v)
	}
	return _c
}

// SetPushNotifications sets the "push_notifications" field.
func (_c *NotificationSettingsCreate) SetPushNotifications(v bool) *NotificationSettingsCreate {
	_c.mutation.SetPushNotifications(v)
	return _c
}

// SetNillablePushNotifications sets the "push_notifications" field if the given value is not nil.
func (_c *NotificationSettingsCreate) SetNillablePushNotifications(v *bool) *NotificationSettingsCreate {
	if v != nil {
		_c.SetPushNotifications(*v)
	}
	return _c
}

// SetEventReminders sets the "event_reminders" field.
func (_c *NotificationSettingsCreate) SetEventReminders(v bool) *NotificationSettingsCreate {
	_c.mutation.SetEventReminders(v)
	return _c
}

// SetNillableEventReminders sets the "event_reminders" field if the given value is not nil.
func (_c *NotificationSettingsCreate) SetNillableEventReminders(v *bool) *NotificationSettingsCreate {
	if v != nil {
		_c.SetEventReminders(*v)
	}
	return _c
}

// SetMarketingEmails sets the "marketing_emails" field.
func (_c *NotificationSettingsCreate) SetMarketingEmails(v bool) *NotificationSettingsCreate {
	_c.mutation.SetMarketingEmails(v)
	return _c
}

// SetNillableMarketingEmails sets the "marketing_emails" field if the given value is not nil.
func (_c *NotificationSettingsCreate) SetNillableMarketingEmails(v *bool) *NotificationSettingsCreate {
	if v != nil {
		_c.SetMarketingEmails(*v)
	}
	return _c
}

// SetReminderLeadMinutes sets the "reminder_lead_minutes" field.
func (_c *NotificationSettingsCreate) SetReminderLeadMinutes(v int) *NotificationSettingsCreate {
	_c.mutation.SetReminderLeadMinutes(v)
	return _c
}

// SetNillableReminderLeadMinutes sets the "reminder_lead_minutes" field if the given value is not nil.
func (_c *NotificationSettingsCreate) SetNillableReminderLeadMinutes(v *int) *NotificationSettingsCreate {
	if v != nil {
		_c.SetReminderLeadMinutes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *NotificationSettingsCreate) SetID(v string) *NotificationSettingsCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_c *NotificationSettingsCreate) SetUserID(id string) *NotificationSettingsCreate {
	_c.mutation.SetUserID(id)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *NotificationSettingsCreate) SetUser(v *User) *NotificationSettingsCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the NotificationSettingsMutation object of the builder.
func (_c *NotificationSettingsCreate) Mutation() *NotificationSettingsMutation {
	return _c.mutation
}

// Save creates the NotificationSettings in the database.
func (_c *NotificationSettingsCreate) Save(ctx context.Context) (*NotificationSettings, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NotificationSettingsCreate) SaveX(ctx context.Context) *NotificationSettings {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationSettingsCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationSettingsCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NotificationSettingsCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := notificationsettings.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := notificationsettings.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.EmailNotifications(); !ok {
		v := notificationsettings.DefaultEmailNotifications
		_c.mutation.SetEmailNotifications(v)
	}
	if _, ok := _c.mutation.PushNotifications(); !ok {
		v := notificationsettings.DefaultPushNotifications
		_c.mutation.SetPushNotifications(v)
	}
	if _, ok := _c.mutation.EventReminders(); !ok {
		v := notificationsettings.DefaultEventReminders
		_c.mutation.SetEventReminders(v)
	}
	if _, ok := _c.mutation.MarketingEmails(); !ok {
		v := notificationsettings.DefaultMarketingEmails
		_c.mutation.SetMarketingEmails(v)
	}
	if _, ok := _c.mutation.ReminderLeadMinutes(); !ok {
		v := notificationsettings.DefaultReminderLeadMinutes
		_c.mutation.SetReminderLeadMinutes(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NotificationSettingsCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "NotificationSettings.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "NotificationSettings.updated_at"`)}
	}
	if _, ok := _c.mutation.EmailNotifications(); !ok {
		return &ValidationError{Name: "email_notifications", err: errors.New(`ent: missing required field "NotificationSettings.email_notifications"`)}
	}
	if _, ok := _c.mutation.PushNotifications(); !ok {
		return &ValidationError{Name: "push_notifications", err: errors.New(`ent: missing required field "NotificationSettings.push_notifications"`)}
	}
	if _, ok := _c.mutation.EventReminders(); !ok {
		return &ValidationError{Name: "event_reminders", err: errors.New(`ent: missing required field "NotificationSettings.event_reminders"`)}
	}
	if _, ok := _c.mutation.MarketingEmails(); !ok {
		return &ValidationError{Name: "marketing_emails", err: errors.New(`ent: missing required field "NotificationSettings.marketing_emails"`)}
	}
	if _, ok := _c.mutation.ReminderLeadMinutes(); !ok {
		return &ValidationError{Name: "reminder_lead_minutes", err: errors.New(`ent: missing required field "NotificationSettings.reminder_lead_minutes"`)}
	}
	if v, ok := _c.mutation.ReminderLeadMinutes(); ok {
		if err := notificationsettings.ReminderLeadMinutesValidator(v); err != nil {
			return &ValidationError{Name: "reminder_lead_minutes", err: fmt.Errorf(`ent: validator failed for field "NotificationSettings.reminder_lead_minutes": %w`, err)}
		}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "NotificationSettings.user"`)}
	}
	return nil
}

func (_c *NotificationSettingsCreate) sqlSave(ctx context.Context) (*NotificationSettings, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected NotificationSettings.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *NotificationSettingsCreate) createSpec() (*NotificationSettings, *sqlgraph.CreateSpec) {
	var (
		_node = &NotificationSettings{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(notificationsettings.Table, sqlgraph.NewFieldSpec(notificationsettings.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(notificationsettings.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(notificationsettings.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.EmailNotifications(); ok {
		_spec.SetField(notificationsettings.FieldEmailNotifications, field.TypeBool, value)
		_node.EmailNotifications = value
	}
	if value, ok := _c.mutation.PushNotifications(); ok {
		_spec.SetField(notificationsettings.FieldPushNotifications, field.TypeBool, value)
		_node.PushNotifications = value
	}
	if value, ok := _c.mutation.EventReminders(); ok {
		_spec.SetField(notificationsettings.FieldEventReminders, field.TypeBool, value)
		_node.EventReminders = value
	}
	if value, ok := _c.mutation.MarketingEmails(); ok {
		_spec.SetField(notificationsettings.FieldMarketingEmails, field.TypeBool, value)
		_node.MarketingEmails = value
	}
	if value, ok := _c.mutation.ReminderLeadMinutes(); ok {
		_spec.SetField(notificationsettings.FieldReminderLeadMinutes, field.TypeInt, value)
		_node.ReminderLeadMinutes = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.user_settings = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.NotificationSettings.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.NotificationSettingsUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *NotificationSettingsCreate) OnConflict(opts ...sql.ConflictOption) *NotificationSettingsUpsertOne {
	_c.conflict = opts
	return &NotificationSettingsUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.NotificationSettings.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *NotificationSettingsCreate) OnConflictColumns(columns ...string) *NotificationSettingsUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &NotificationSettingsUpsertOne{
		create: _c,
	}
}

type (
	// NotificationSettingsUpsertOne is the builder for "upsert"-ing
	//  one NotificationSettings node.
	NotificationSettingsUpsertOne struct {
		create *NotificationSettingsCreate
	}

	// NotificationSettingsUpsert is the "OnConflict" setter.
	NotificationSettingsUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *NotificationSettingsUpsert) SetUpdatedAt(v time.Time) *NotificationSettingsUpsert {
	u.Set(notificationsettings.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *NotificationSettingsUpsert) UpdateUpdatedAt() *NotificationSettingsUpsert {
	u.SetExcluded(notificationsettings.FieldUpdatedAt)
	return u
}

// SetEmailNotifications sets the "email_notifications" field.
func (u *NotificationSettingsUpsert) SetEmailNotifications(v bool) *NotificationSettingsUpsert {
	u.Set(notificationsettings.FieldEmailNotifications, v)
	return u
}

// UpdateEmailNotifications sets the "email_notifications" field to the value that was provided on create.
func (u *NotificationSettingsUpsert) UpdateEmailNotifications() *NotificationSettingsUpsert {
	u.SetExcluded(notificationsettings.FieldEmailNotifications)
	return u
}

// SetPushNotifications sets the "push_notifications" field.
func (u *NotificationSettingsUpsert) SetPushNotifications(v bool) *NotificationSettingsUpsert {
	u.Set(notificationsettings.FieldPushNotifications, v)
	return u
}

// UpdatePushNotifications sets the "push_notifications" field to the value that was provided on create.
func (u *NotificationSettingsUpsert) UpdatePushNotifications() *NotificationSettingsUpsert {
	u.SetExcluded(notificationsettings.FieldPushNotifications)
	return u
}

// SetEventReminders sets the "event_reminders" field.
func (u *NotificationSettingsUpsert) SetEventReminders(v bool) *NotificationSettingsUpsert {
	u.Set(notificationsettings.FieldEventReminders, v)
	return u
}

// UpdateEventReminders sets the "event_reminders" field to the value that was provided on create.
func (u *NotificationSettingsUpsert) UpdateEventReminders() *NotificationSettingsUpsert {
	u.SetExcluded(notificationsettings.FieldEventReminders)
	return u
}

// SetMarketingEmails sets the "marketing_emails" field.
func (u *NotificationSettingsUpsert) SetMarketingEmails(v bool) *NotificationSettingsUpsert {
	u.Set(notificationsettings.FieldMarketingEmails, v)
	return u
}

// UpdateMarketingEmails sets the "marketing_emails" field to the value that was provided on create.
func (u *NotificationSettingsUpsert) UpdateMarketingEmails() *NotificationSettingsUpsert {
	u.SetExcluded(notificationsettings.FieldMarketingEmails)
	return u
}

// SetReminderLeadMinutes sets the "reminder_lead_minutes" field.
func (u *NotificationSettingsUpsert) SetReminderLeadMinutes(v int) *NotificationSettingsUpsert {
	u.Set(notificationsettings.FieldReminderLeadMinutes, v)
	return u
}

// UpdateReminderLeadMinutes sets the "reminder_lead_minutes" field to the value that was provided on create.
func (u *NotificationSettingsUpsert) UpdateReminderLeadMinutes() *NotificationSettingsUpsert {
	u.SetExcluded(notificationsettings.FieldReminderLeadMinutes)
	return u
}

// AddReminderLeadMinutes adds v to the "reminder_lead_minutes" field.
func (u *NotificationSettingsUpsert) AddReminderLeadMinutes(v int) *NotificationSettingsUpsert {
	u.Add(notificationsettings.FieldReminderLeadMinutes, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.NotificationSettings.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(notificationsettings.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *NotificationSettingsUpsertOne) UpdateNewValues() *NotificationSettingsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(notificationsettings.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(notificationsettings.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.NotificationSettings.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *NotificationSettingsUpsertOne) Ignore() *NotificationSettingsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *NotificationSettingsUpsertOne) DoNothing() *NotificationSettingsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the NotificationSettingsCreate.OnConflict
// documentation for more info.
func (u *NotificationSettingsUpsertOne) Update(set func(*NotificationSettingsUpsert)) *NotificationSettingsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&NotificationSettingsUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *NotificationSettingsUpsertOne) SetUpdatedAt(v time.Time) *NotificationSettingsUpsertOne {
	return u.Update(func(s *NotificationSettingsUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *NotificationSettingsUpsertOne) UpdateUpdatedAt() *NotificationSettingsUpsertOne {
	return u.Update(func(s *NotificationSettingsUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetEmailNotifications sets the "email_notifications" field.
func (u *NotificationSettingsUpsertOne) SetEmailNotifications(v bool) *NotificationSettingsUpsertOne {
	return u.Update(func(s *NotificationSettingsUpsert) {
		s.SetEmailNotifications(v)
	})
}

// UpdateEmailNotifications sets the "email_notifications" field to the value that was provided on create.
func (u *NotificationSettingsUpsertOne) UpdateEmailNotifications() *NotificationSettingsUpsertOne {
	return u.Update(func(s *NotificationSettingsUpsert) {
		s.UpdateEmailNotifications()
	})
}

// SetPushNotifications sets the "push_notifications" field.
func (u *NotificationSettingsUpsertOne) SetPushNotifications(v bool) *NotificationSettingsUpsertOne {
	return u.Update(func(s *NotificationSettingsUpsert) {
		s.SetPushNotifications(v)
	})
}

// UpdatePushNotifications sets the "push_notifications" field to the value that was provided on create.
func (u *NotificationSettingsUpsertOne) UpdatePushNotifications() *NotificationSettingsUpsertOne {
	return u.Update(func(s *NotificationSettingsUpsert) {
		s.UpdatePushNotifications()
	})
}

// SetEventReminders sets the "event_reminders" field.
func (u *NotificationSettingsUpsertOne) SetEventReminders(v bool) *NotificationSettingsUpsertOne {
	return u.Update(func(s *NotificationSettingsUpsert) {
		s.SetEventReminders(v)
	})
}

// UpdateEventReminders sets the "event_reminders" field to the value that was provided on create.
func (u *NotificationSettingsUpsertOne) UpdateEventReminders() *NotificationSettingsUpsertOne {
	return u.Update(func(s *NotificationSettingsUpsert) {
		s.UpdateEventReminders()
	})
}

// SetMarketingEmails sets the "marketing_emails" field.
func (u *NotificationSettingsUpsertOne) SetMarketingEmails(v bool) *NotificationSettingsUpsertOne {
	return u.Update(func(s *NotificationSettingsUpsert) {
		s.SetMarketingEmails(v)
	})
}

// UpdateMarketingEmails sets the "marketing_emails" field to the value that was provided on create.
func (u *NotificationSettingsUpsertOne) UpdateMarketingEmails() *NotificationSettingsUpsertOne {
	return u.Update(func(s *NotificationSettingsUpsert) {
		s.UpdateMarketingEmails()
	})
}

// SetReminderLeadMinutes sets the "reminder_lead_minutes" field.
func (u *NotificationSettingsUpsertOne) SetReminderLeadMinutes(v int) *NotificationSettingsUpsertOne {
	return u.Update(func(s *NotificationSettingsUpsert) {
		s.SetReminderLeadMinutes(v)
	})
}

// AddReminderLeadMinutes adds v to the "reminder_lead_minutes" field.
func (u *NotificationSettingsUpsertOne) AddReminderLeadMinutes(v int) *NotificationSettingsUpsertOne {
	return u.Update(func(s *NotificationSettingsUpsert) {
		s.AddReminderLeadMinutes(v)
	})
}

// UpdateReminderLeadMinutes sets the "reminder_lead_minutes" field to the value that was provided on create.
func (u *NotificationSettingsUpsertOne) UpdateReminderLeadMinutes() *NotificationSettingsUpsertOne {
	return u.Update(func(s *NotificationSettingsUpsert) {
		s.UpdateReminderLeadMinutes()
	})
}

// Exec executes the query.
func (u *NotificationSettingsUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for NotificationSettingsCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *NotificationSettingsUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *NotificationSettingsUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: NotificationSettingsUpsertOne.ID is not supported by MySQL driver. Use NotificationSettingsUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *NotificationSettingsUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// NotificationSettingsCreateBulk is the builder for creating many NotificationSettings entities in bulk.
type NotificationSettingsCreateBulk struct {
	config
	err      error
	builders []*NotificationSettingsCreate
	conflict []sql.ConflictOption
}

// Save creates the NotificationSettings entities in the database.
func (_c *NotificationSettingsCreateBulk) Save(ctx context.Context) ([]*NotificationSettings, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NotificationSettings, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NotificationSettingsMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *NotificationSettingsCreateBulk) SaveX(ctx context.Context) []*NotificationSettings {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationSettingsCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationSettingsCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.NotificationSettings.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.NotificationSettingsUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *NotificationSettingsCreateBulk) OnConflict(opts ...sql.ConflictOption) *NotificationSettingsUpsertBulk {
	_c.conflict = opts
	return &NotificationSettingsUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.NotificationSettings.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *NotificationSettingsCreateBulk) OnConflictColumns(columns ...string) *NotificationSettingsUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &NotificationSettingsUpsertBulk{
		create: _c,
	}
}

// NotificationSettingsUpsertBulk is the builder for "upsert"-ing
// a bulk of NotificationSettings nodes.
type NotificationSettingsUpsertBulk struct {
	create *NotificationSettingsCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.NotificationSettings.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(notificationsettings.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *NotificationSettingsUpsertBulk) UpdateNewValues() *NotificationSettingsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(notificationsettings.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(notificationsettings.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.NotificationSettings.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *NotificationSettingsUpsertBulk) Ignore() *NotificationSettingsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *NotificationSettingsUpsertBulk) DoNothing() *NotificationSettingsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the NotificationSettingsCreateBulk.OnConflict
// documentation for more info.
func (u *NotificationSettingsUpsertBulk) Update(set func(*NotificationSettingsUpsert)) *NotificationSettingsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&NotificationSettingsUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *NotificationSettingsUpsertBulk) SetUpdatedAt(v time.Time) *NotificationSettingsUpsertBulk {
	return u.Update(func(s *NotificationSettingsUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *NotificationSettingsUpsertBulk) UpdateUpdatedAt() *NotificationSettingsUpsertBulk {
	return u.Update(func(s *NotificationSettingsUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetEmailNotifications sets the "email_notifications" field.
func (u *NotificationSettingsUpsertBulk) SetEmailNotifications(v bool) *NotificationSettingsUpsertBulk {
	return u.Update(func(s *NotificationSettingsUpsert) {
		s.SetEmailNotifications(v)
	})
}

// UpdateEmailNotifications sets the "email_notifications" field to the value that was provided on create.
func (u *NotificationSettingsUpsertBulk) UpdateEmailNotifications() *NotificationSettingsUpsertBulk {
	return u.Update(func(s *NotificationSettingsUpsert) {
		s.UpdateEmailNotifications()
	})
}

// SetPushNotifications sets the "push_notifications" field.
func (u *NotificationSettingsUpsertBulk) SetPushNotifications(v bool) *NotificationSettingsUpsertBulk {
	return u.Update(func(s *NotificationSettingsUpsert) {
		s.SetPushNotifications(v)
	})
}

// UpdatePushNotifications sets the "push_notifications" field to the value that was provided on create.
func (u *NotificationSettingsUpsertBulk) UpdatePushNotifications() *NotificationSettingsUpsertBulk {
	return u.Update(func(s *NotificationSettingsUpsert) {
		s.UpdatePushNotifications()
	})
}

// SetEventReminders sets the "event_reminders" field.
func (u *NotificationSettingsUpsertBulk) SetEventReminders(v bool) *NotificationSettingsUpsertBulk {
	return u.Update(func(s *NotificationSettingsUpsert) {
		s.SetEventReminders(v)
	})
}

// UpdateEventReminders sets the "event_reminders" field to the value that was provided on create.
func (u *NotificationSettingsUpsertBulk) UpdateEventReminders() *NotificationSettingsUpsertBulk {
	return u.Update(func(s *NotificationSettingsUpsert) {
		s.UpdateEventReminders()
	})
}

// SetMarketingEmails sets the "marketing_emails" field.
func (u *NotificationSettingsUpsertBulk) SetMarketingEmails(v bool) *NotificationSettingsUpsertBulk {
	return u.Update(func(s *NotificationSettingsUpsert) {
		s.SetMarketingEmails(v)
	})
}

// UpdateMarketingEmails sets the "marketing_emails" field to the value that was provided on create.
func (u *NotificationSettingsUpsertBulk) UpdateMarketingEmails() *NotificationSettingsUpsertBulk {
	return u.Update(func(s *NotificationSettingsUpsert) {
		s.UpdateMarketingEmails()
	})
}

// SetReminderLeadMinutes sets the "reminder_lead_minutes" field.
func (u *NotificationSettingsUpsertBulk) SetReminderLeadMinutes(v int) *NotificationSettingsUpsertBulk {
	return u.Update(func(s *NotificationSettingsUpsert) {
		s.SetReminderLeadMinutes(v)
	})
}

// AddReminderLeadMinutes adds v to the "reminder_lead_minutes" field.
func (u *NotificationSettingsUpsertBulk) AddReminderLeadMinutes(v int) *NotificationSettingsUpsertBulk {
	return u.Update(func(s *NotificationSettingsUpsert) {
		s.AddReminderLeadMinutes(v)
	})
}

// UpdateReminderLeadMinutes sets the "reminder_lead_minutes" field to the value that was provided on create.
func (u *NotificationSettingsUpsertBulk) UpdateReminderLeadMinutes() *NotificationSettingsUpsertBulk {
	return u.Update(func(s *NotificationSettingsUpsert) {
		s.UpdateReminderLeadMinutes()
	})
}

// Exec executes the query.
func (u *NotificationSettingsUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the NotificationSettingsCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for NotificationSettingsCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *NotificationSettingsUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
