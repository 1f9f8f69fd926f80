package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"planwise.io/planwise/internal/config"
)

// SMTPMailer delivers messages over SMTP using go-mail.
// Each Send builds a fresh message and dials with a bounded timeout so a
// hung transport cannot pin a delivery worker.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

// NewSMTPMailer creates a mailer from SMTP configuration.
func NewSMTPMailer(cfg config.SMTPConfig) (*SMTPMailer, error) {
	if !cfg.Configured() {
		return nil, fmt.Errorf("smtp host not configured")
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("smtp from address not configured")
	}
	return &SMTPMailer{cfg: cfg}, nil
}

// Send delivers a single message.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	em := gomail.NewMsg()
	if err := em.From(m.cfg.From); err != nil {
		return fmt.Errorf("set from address: %w", err)
	}
	if err := em.To(msg.To); err != nil {
		return fmt.Errorf("set to address: %w", err)
	}
	em.Subject(msg.Subject)
	em.SetBodyString(gomail.TypeTextPlain, msg.TextBody)
	if msg.HTMLBody != "" {
		em.AddAlternativeString(gomail.TypeTextHTML, msg.HTMLBody)
	}

	opts := []gomail.Option{
		gomail.WithPort(m.cfg.Port),
		gomail.WithTimeout(m.cfg.SendTimeout),
	}
	if m.cfg.User != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(m.cfg.User),
			gomail.WithPassword(m.cfg.Password),
		)
	}

	client, err := gomail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}

	sendCtx := ctx
	if m.cfg.SendTimeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, m.cfg.SendTimeout)
		defer cancel()
	}

	if err := client.DialAndSendWithContext(sendCtx, em); err != nil {
		return fmt.Errorf("send mail to %s: %w", msg.To, err)
	}
	return nil
}

var _ Mailer = (*SMTPMailer)(nil)
