package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailAllowed(t *testing.T) {
	tests := []struct {
		name     string
		prefs    Preferences
		category string
		want     bool
	}{
		{
			name:     "global switch off blocks everything",
			prefs:    Preferences{EmailNotifications: false, EventReminders: true, MarketingEmails: true},
			category: CategoryEventCreated,
			want:     false,
		},
		{
			name:     "global switch off blocks reminders too",
			prefs:    Preferences{EmailNotifications: false, EventReminders: true},
			category: CategoryEventReminder,
			want:     false,
		},
		{
			name:     "marketing requires opt-in",
			prefs:    Preferences{EmailNotifications: true, MarketingEmails: false},
			category: CategoryMarketing,
			want:     false,
		},
		{
			name:     "marketing allowed when opted in",
			prefs:    Preferences{EmailNotifications: true, MarketingEmails: true},
			category: CategoryMarketing,
			want:     true,
		},
		{
			name:     "reminder requires event_reminders",
			prefs:    Preferences{EmailNotifications: true, EventReminders: false},
			category: CategoryEventReminder,
			want:     false,
		},
		{
			name:     "reminder allowed when enabled",
			prefs:    Preferences{EmailNotifications: true, EventReminders: true},
			category: CategoryEventReminder,
			want:     true,
		},
		{
			name:     "lifecycle categories only need the global switch",
			prefs:    Preferences{EmailNotifications: true, EventReminders: false, MarketingEmails: false},
			category: CategoryEventDeleted,
			want:     true,
		},
		{
			name:     "system messages only need the global switch",
			prefs:    Preferences{EmailNotifications: true},
			category: CategorySystemMessage,
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.prefs.EmailAllowed(tt.category))
		})
	}
}

func TestPushAllowed(t *testing.T) {
	on := Preferences{PushNotifications: true}
	off := Preferences{PushNotifications: false}

	// Push has no per-category gates, only the global switch.
	for _, c := range []string{
		CategoryEventReminder, CategoryEventCreated, CategoryEventUpdated,
		CategoryEventDeleted, CategorySystemMessage, CategoryMarketing,
	} {
		assert.True(t, on.PushAllowed(c), c)
		assert.False(t, off.PushAllowed(c), c)
	}
}

func TestDefaultPreferences(t *testing.T) {
	p := DefaultPreferences()

	assert.True(t, p.EmailNotifications)
	assert.True(t, p.PushNotifications)
	assert.True(t, p.EventReminders)
	assert.False(t, p.MarketingEmails)
	assert.Equal(t, 15, p.ReminderLeadMinutes)
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory(CategoryEventReminder))
	assert.True(t, ValidCategory(CategoryMarketing))
	assert.False(t, ValidCategory("EVENT_SNOOZED"))
	assert.False(t, ValidCategory(""))
}

func TestParamsValidate(t *testing.T) {
	valid := Params{
		RecipientID: "user-1",
		Category:    CategorySystemMessage,
		Title:       "t",
		Message:     "m",
	}
	assert.NoError(t, valid.validate())

	missing := valid
	missing.RecipientID = ""
	assert.Error(t, missing.validate())

	badCategory := valid
	badCategory.Category = "NOPE"
	assert.Error(t, badCategory.validate())

	noTitle := valid
	noTitle.Title = ""
	assert.Error(t, noTitle.validate())

	noMessage := valid
	noMessage.Message = ""
	assert.Error(t, noMessage.validate())
}
