package notification

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planwise.io/planwise/internal/mail"
)

type fakeDirectory struct {
	recipient Recipient
	prefs     Preferences
	err       error
}

func (d *fakeDirectory) Recipient(context.Context, string) (Recipient, error) {
	return d.recipient, d.err
}

func (d *fakeDirectory) Preferences(context.Context, string) (Preferences, error) {
	return d.prefs, d.err
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []mail.Message
	err  error
}

func (m *fakeMailer) Send(_ context.Context, msg mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func TestEmailRelayDelivers(t *testing.T) {
	dir := &fakeDirectory{
		recipient: Recipient{ID: "u1", Email: "alice@example.com", Name: "Alice"},
		prefs:     DefaultPreferences(),
	}
	mailer := &fakeMailer{}
	relay := NewEmailRelay(dir, mailer, nil)

	err := relay.Deliver(context.Background(), Params{
		RecipientID: "u1",
		Category:    CategoryEventCreated,
		Title:       "Event Created",
		Message:     `Your event "Standup" has been created successfully`,
	})
	require.NoError(t, err)

	require.Len(t, mailer.sent, 1)
	msg := mailer.sent[0]
	assert.Equal(t, "alice@example.com", msg.To)
	assert.Equal(t, "PlanWise: Event Created", msg.Subject)
	assert.Contains(t, msg.TextBody, "Standup")
	assert.Contains(t, msg.HTMLBody, "Hi Alice")
	assert.Contains(t, msg.HTMLBody, "Event Created")
}

func TestEmailRelaySuppressed(t *testing.T) {
	tests := []struct {
		name     string
		prefs    Preferences
		category string
	}{
		{
			name:     "global opt-out",
			prefs:    Preferences{EmailNotifications: false},
			category: CategorySystemMessage,
		},
		{
			name:     "marketing without opt-in",
			prefs:    Preferences{EmailNotifications: true, MarketingEmails: false},
			category: CategoryMarketing,
		},
		{
			name:     "reminder with reminders disabled",
			prefs:    Preferences{EmailNotifications: true, EventReminders: false},
			category: CategoryEventReminder,
		},
		{
			name:     "no settings row",
			prefs:    Preferences{},
			category: CategoryEventCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := &fakeDirectory{
				recipient: Recipient{ID: "u1", Email: "alice@example.com"},
				prefs:     tt.prefs,
			}
			mailer := &fakeMailer{}
			relay := NewEmailRelay(dir, mailer, nil)

			err := relay.Deliver(context.Background(), Params{
				RecipientID: "u1",
				Category:    tt.category,
				Title:       "t",
				Message:     "m",
			})
			require.NoError(t, err)
			assert.Empty(t, mailer.sent)
		})
	}
}

func TestEmailRelayMailerFailure(t *testing.T) {
	dir := &fakeDirectory{
		recipient: Recipient{ID: "u1", Email: "alice@example.com"},
		prefs:     DefaultPreferences(),
	}
	mailer := &fakeMailer{err: errors.New("connection refused")}
	relay := NewEmailRelay(dir, mailer, nil)

	err := relay.Deliver(context.Background(), Params{
		RecipientID: "u1",
		Category:    CategorySystemMessage,
		Title:       "t",
		Message:     "m",
	})
	assert.Error(t, err)
}

func TestRenderEmailHTMLEscapes(t *testing.T) {
	out := renderEmailHTML(`<script>`, `a & b`, `Bob <x>`)

	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "a &amp; b")
	assert.Contains(t, out, "Hi Bob &lt;x&gt;")
	assert.NotContains(t, out, "<script>")
}
