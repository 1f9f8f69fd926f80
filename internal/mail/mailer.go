// Package mail provides the outbound email transport.
package mail

import "context"

// Message is a single outbound email.
type Message struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Mailer sends email messages. Implementations must honor ctx cancellation.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
