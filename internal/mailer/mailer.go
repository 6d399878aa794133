package mailer

import "context"

// Message is a single outgoing plain-text email
type Message struct {
	From    string
	To      []string
	Subject string
	Text    string
}

// Transport is an interface for email delivery backends
// Send makes exactly one delivery attempt; callers decide retry policy
type Transport interface {
	Send(ctx context.Context, msg *Message) error
}
