// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"planwise.io/planwise/ent/event"
	"planwise.io/planwise/ent/notification"
	"planwise.io/planwise/ent/notificationsettings"
	"planwise.io/planwise/ent/pushsubscription"
	"planwise.io/planwise/ent/schema"
	"planwise.io/planwise/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	eventMixin := schema.Event{}.Mixin()
	eventMixinFields0 := eventMixin[0].Fields()
	_ = eventMixinFields0
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventMixinFields0[0].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	// eventDescUpdatedAt is the schema descriptor for updated_at field.
	eventDescUpdatedAt := eventMixinFields0[1].Descriptor()
	// event.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	event.DefaultUpdatedAt = eventDescUpdatedAt.Default.(func() time.Time)
	// event.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	event.UpdateDefaultUpdatedAt = eventDescUpdatedAt.UpdateDefault.(func() time.Time)
	// eventDescTitle is the schema descriptor for title field.
	eventDescTitle := eventFields[1].Descriptor()
	// event.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	event.TitleValidator = func() func(string) error {
		validators := eventDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// eventDescDescription is the schema descriptor for description field.
	eventDescDescription := eventFields[2].Descriptor()
	// event.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	event.DescriptionValidator = eventDescDescription.Validators[0].(func(string) error)
	// eventDescLocation is the schema descriptor for location field.
	eventDescLocation := eventFields[5].Descriptor()
	// event.LocationValidator is a validator for the "location" field. It is called by the builders before save.
	event.LocationValidator = eventDescLocation.Validators[0].(func(string) error)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields0[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[2].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = func() func(string) error {
		validators := notificationDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescMessage is the schema descriptor for message field.
	notificationDescMessage := notificationFields[3].Descriptor()
	// notification.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	notification.MessageValidator = func() func(string) error {
		validators := notificationDescMessage.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(message string) error {
			for _, fn := range fns {
				if err := fn(message); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescRead is the schema descriptor for read field.
	notificationDescRead := notificationFields[4].Descriptor()
	// notification.DefaultRead holds the default value on creation for the read field.
	notification.DefaultRead = notificationDescRead.Default.(bool)
	notificationsettingsMixin := schema.NotificationSettings{}.Mixin()
	notificationsettingsMixinFields0 := notificationsettingsMixin[0].Fields()
	_ = notificationsettingsMixinFields0
	notificationsettingsFields := schema.NotificationSettings{}.Fields()
	_ = notificationsettingsFields
	// notificationsettingsDescCreatedAt is the schema descriptor for created_at field.
	notificationsettingsDescCreatedAt := notificationsettingsMixinFields0[0].Descriptor()
	// notificationsettings.DefaultCreatedAt holds the default value on creation for the created_at field.
	notificationsettings.DefaultCreatedAt = notificationsettingsDescCreatedAt.Default.(func() time.Time)
	// notificationsettingsDescUpdatedAt is the schema descriptor for updated_at field.
	notificationsettingsDescUpdatedAt := notificationsettingsMixinFields0[1].Descriptor()
	// notificationsettings.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	notificationsettings.DefaultUpdatedAt = notificationsettingsDescUpdatedAt.Default.(func() time.Time)
	// notificationsettings.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	notificationsettings.UpdateDefaultUpdatedAt = notificationsettingsDescUpdatedAt.UpdateDefault.(func() time.Time)
	// notificationsettingsDescEmailNotifications is the schema descriptor for email_notifications field.
	notificationsettingsDescEmailNotifications := notificationsettingsFields[1].Descriptor()
	// notificationsettings.DefaultEmailNotifications holds the default value on creation for the email_notifications field.
	notificationsettings.DefaultEmailNotifications = notificationsettingsDescEmailNotifications.Default.(bool)
	// notificationsettingsDescPushNotifications is the schema descriptor for push_notifications field.
	notificationsettingsDescPushNotifications := notificationsettingsFields[2].Descriptor()
	// notificationsettings.DefaultPushNotifications holds the default value on creation for the push_notifications field.
	notificationsettings.DefaultPushNotifications = notificationsettingsDescPushNotifications.Default.(bool)
	// notificationsettingsDescEventReminders is the schema descriptor for event_reminders field.
	notificationsettingsDescEventReminders := notificationsettingsFields[3].Descriptor()
	// notificationsettings.DefaultEventReminders holds the default value on creation for the event_reminders field.
	notificationsettings.DefaultEventReminders = notificationsettingsDescEventReminders.Default.(bool)
	// notificationsettingsDescMarketingEmails is the schema descriptor for marketing_emails field.
	notificationsettingsDescMarketingEmails := notificationsettingsFields[4].Descriptor()
	// notificationsettings.DefaultMarketingEmails holds the default value on creation for the marketing_emails field.
	notificationsettings.DefaultMarketingEmails = notificationsettingsDescMarketingEmails.Default.(bool)
	// notificationsettingsDescReminderLeadMinutes is the schema descriptor for reminder_lead_minutes field.
	notificationsettingsDescReminderLeadMinutes := notificationsettingsFields[5].Descriptor()
	// notificationsettings.DefaultReminderLeadMinutes holds the default value on creation for the reminder_lead_minutes field.
	notificationsettings.DefaultReminderLeadMinutes = notificationsettingsDescReminderLeadMinutes.Default.(int)
	// notificationsettings.ReminderLeadMinutesValidator is a validator for the "reminder_lead_minutes" field. It is called by the builders before save.
	notificationsettings.ReminderLeadMinutesValidator = func() func(int) error {
		validators := notificationsettingsDescReminderLeadMinutes.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(reminder_lead_minutes int) error {
			for _, fn := range fns {
				if err := fn(reminder_lead_minutes); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	pushsubscriptionMixin := schema.PushSubscription{}.Mixin()
	pushsubscriptionMixinFields0 := pushsubscriptionMixin[0].Fields()
	_ = pushsubscriptionMixinFields0
	pushsubscriptionFields := schema.PushSubscription{}.Fields()
	_ = pushsubscriptionFields
	// pushsubscriptionDescCreatedAt is the schema descriptor for created_at field.
	pushsubscriptionDescCreatedAt := pushsubscriptionMixinFields0[0].Descriptor()
	// pushsubscription.DefaultCreatedAt holds the default value on creation for the created_at field.
	pushsubscription.DefaultCreatedAt = pushsubscriptionDescCreatedAt.Default.(func() time.Time)
	// pushsubscriptionDescEndpoint is the schema descriptor for endpoint field.
	pushsubscriptionDescEndpoint := pushsubscriptionFields[1].Descriptor()
	// pushsubscription.EndpointValidator is a validator for the "endpoint" field. It is called by the builders before save.
	pushsubscription.EndpointValidator = func() func(string) error {
		validators := pushsubscriptionDescEndpoint.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(endpoint string) error {
			for _, fn := range fns {
				if err := fn(endpoint); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// pushsubscriptionDescP256dhKey is the schema descriptor for p256dh_key field.
	pushsubscriptionDescP256dhKey := pushsubscriptionFields[2].Descriptor()
	// pushsubscription.P256dhKeyValidator is a validator for the "p256dh_key" field. It is called by the builders before save.
	pushsubscription.P256dhKeyValidator = pushsubscriptionDescP256dhKey.Validators[0].(func(string) error)
	// pushsubscriptionDescAuthKey is the schema descriptor for auth_key field.
	pushsubscriptionDescAuthKey := pushsubscriptionFields[3].Descriptor()
	// pushsubscription.AuthKeyValidator is a validator for the "auth_key" field. It is called by the builders before save.
	pushsubscription.AuthKeyValidator = pushsubscriptionDescAuthKey.Validators[0].(func(string) error)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[2].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[3].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
}
