package notification

import (
	"context"
	"fmt"
	"html"

	"go.uber.org/zap"

	"planwise.io/planwise/internal/mail"
	"planwise.io/planwise/internal/pkg/logger"
	"planwise.io/planwise/internal/pkg/metrics"
)

// Recipient is the minimal user projection the relays need.
type Recipient struct {
	ID    string
	Email string
	Name  string
}

// Directory resolves recipients and their preferences.
type Directory interface {
	Recipient(ctx context.Context, userID string) (Recipient, error)
	// Preferences returns the recipient's settings. When no settings row
	// exists implementations return the zero Preferences, which disables
	// every channel, so delivery to such a user is a silent no-op.
	Preferences(ctx context.Context, userID string) (Preferences, error)
}

const subjectPrefix = "PlanWise: "

// EmailRelay delivers notifications over email, filtered by the
// recipient's preferences.
type EmailRelay struct {
	directory Directory
	mailer    mail.Mailer
	metrics   *metrics.Metrics
}

// NewEmailRelay creates the email delivery sink.
func NewEmailRelay(directory Directory, mailer mail.Mailer, m *metrics.Metrics) *EmailRelay {
	return &EmailRelay{directory: directory, mailer: mailer, metrics: m}
}

func (r *EmailRelay) Name() string { return "email" }

// Deliver sends the notification by email if the recipient's preferences
// allow it. Suppressed delivery is a successful no-op.
func (r *EmailRelay) Deliver(ctx context.Context, params Params) error {
	prefs, err := r.directory.Preferences(ctx, params.RecipientID)
	if err != nil {
		return fmt.Errorf("load preferences for user %s: %w", params.RecipientID, err)
	}

	if !prefs.EmailAllowed(params.Category) {
		if r.metrics != nil {
			r.metrics.EmailsSuppressed.Inc()
		}
		logger.Debug("email suppressed by preferences",
			zap.String("recipient", params.RecipientID),
			zap.String("category", params.Category),
		)
		return nil
	}

	recipient, err := r.directory.Recipient(ctx, params.RecipientID)
	if err != nil {
		return fmt.Errorf("resolve recipient %s: %w", params.RecipientID, err)
	}

	msg := mail.Message{
		To:       recipient.Email,
		Subject:  subjectPrefix + params.Title,
		TextBody: params.Message,
		HTMLBody: renderEmailHTML(params.Title, params.Message, recipient.Name),
	}

	if err := r.mailer.Send(ctx, msg); err != nil {
		if r.metrics != nil {
			r.metrics.EmailsFailed.Inc()
		}
		return fmt.Errorf("email delivery to %s: %w", recipient.Email, err)
	}

	if r.metrics != nil {
		r.metrics.EmailsSent.Inc()
	}
	logger.Debug("email delivered",
		zap.String("recipient", params.RecipientID),
		zap.String("category", params.Category),
	)
	return nil
}

// renderEmailHTML wraps the notification body in the standard mail frame.
func renderEmailHTML(title, message, name string) string {
	greeting := "Hi"
	if name != "" {
		greeting = "Hi " + html.EscapeString(name)
	}
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background-color:#f4f4f7;font-family:Arial,Helvetica,sans-serif;">
  <table role="presentation" width="100%%" cellpadding="0" cellspacing="0">
    <tr><td align="center" style="padding:24px;">
      <table role="presentation" width="560" cellpadding="0" cellspacing="0" style="background:#ffffff;border-radius:8px;overflow:hidden;">
        <tr><td style="background:#4f46e5;padding:20px 32px;">
          <span style="color:#ffffff;font-size:20px;font-weight:bold;">PlanWise</span>
        </td></tr>
        <tr><td style="padding:32px;">
          <p style="margin:0 0 16px;color:#374151;font-size:15px;">%s,</p>
          <h2 style="margin:0 0 12px;color:#111827;font-size:18px;">%s</h2>
          <p style="margin:0;color:#374151;font-size:15px;line-height:1.5;">%s</p>
        </td></tr>
        <tr><td style="padding:16px 32px;background:#f9fafb;">
          <p style="margin:0;color:#9ca3af;font-size:12px;">You are receiving this email because of your PlanWise notification settings.</p>
        </td></tr>
      </table>
    </td></tr>
  </table>
</body>
</html>`, greeting, html.EscapeString(title), html.EscapeString(message))
}

var _ Sink = (*EmailRelay)(nil)
