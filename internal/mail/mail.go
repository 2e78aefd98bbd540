package mail

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// Message is a transactional email.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Mailer sends transactional email. The server holds exactly one, built at
// startup and shared by every request.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// ResendMailer sends email through the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
}

// NewResendMailer creates a mailer with the given API key and From address.
func NewResendMailer(apiKey, from string) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

// Send delivers a single message. No retries: a failed send surfaces to the
// caller immediately.
func (m *ResendMailer) Send(ctx context.Context, msg Message) error {
	_, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Text:    msg.Text,
		Html:    msg.HTML,
	})
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

// MagicLinkMessage composes the login email for a magic link.
func MagicLinkMessage(to, link string) Message {
	return Message{
		To:      to,
		Subject: "Your magic link to sign in",
		Text:    fmt.Sprintf("Click the link to access your account: %s", link),
		HTML: fmt.Sprintf(`<html>
  <body>
    <p>Hello,</p>
    <p>Click the button below to access your account:</p>
    <a href=%q style="background-color: #007bff; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px;">Login</a>
    <p>If you did not request this login, please ignore this email.</p>
  </body>
</html>`, link),
	}
}
