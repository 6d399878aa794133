package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPTransport sends messages through an SMTP server with plain auth
type SMTPTransport struct {
	host     string
	port     int
	username string
	password string
}

// NewSMTPTransport creates a new SMTP transport
func NewSMTPTransport(host string, port int, username, password string) *SMTPTransport {
	return &SMTPTransport{
		host:     host,
		port:     port,
		username: username,
		password: password,
	}
}

// Send delivers the message in a single SMTP transaction
func (t *SMTPTransport) Send(_ context.Context, msg *Message) error {
	payload := BuildPayload(msg)

	addr := fmt.Sprintf("%s:%d", t.host, t.port)
	auth := smtp.PlainAuth("", t.username, t.password, t.host)

	if err := smtp.SendMail(addr, auth, msg.From, msg.To, payload); err != nil {
		return fmt.Errorf("smtp: failed to send: %w", err)
	}

	return nil
}

// BuildPayload renders the message as a plain-text RFC 822 payload
// The To header is the comma-joined recipient list
func BuildPayload(msg *Message) []byte {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("From: %s\r\n", msg.From))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(msg.To, ",")))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", msg.Subject))
	sb.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	sb.WriteString(msg.Text)

	return []byte(sb.String())
}
