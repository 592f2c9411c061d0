// Package mailer sends outbound transactional email through SendGrid.
package mailer

import (
	"context"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Email is one outbound message. ReplyTo is optional.
type Email struct {
	To      string
	ToName  string
	Subject string
	Plain   string
	HTML    string
	ReplyTo string
}

// Mailer sends email. The SendGrid implementation is used in production;
// the log implementation stands in when no API key is configured.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

type sendgridMailer struct {
	apiKey    string
	fromEmail string
	fromName  string
}

// NewSendGrid creates a SendGrid-backed mailer.
func NewSendGrid(apiKey, fromEmail, fromName string) Mailer {
	if apiKey == "" {
		panic("sendgrid api key is required")
	}
	if fromEmail == "" {
		panic("from email is required")
	}
	return &sendgridMailer{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (m *sendgridMailer) Send(ctx context.Context, email Email) error {
	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail(email.ToName, email.To)

	html := email.HTML
	if html == "" {
		html = email.Plain
	}
	message := mail.NewSingleEmail(from, email.Subject, to, email.Plain, html)
	if email.ReplyTo != "" {
		message.SetReplyTo(mail.NewEmail("", email.ReplyTo))
	}

	client := sendgrid.NewSendClient(m.apiKey)
	resp, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send failed: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

type logMailer struct{}

// NewLog creates a mailer that only logs. Used in development and tests.
func NewLog() Mailer { return &logMailer{} }

func (m *logMailer) Send(ctx context.Context, email Email) error {
	log.Printf("mailer (log): to=%s subject=%q replyTo=%s", email.To, email.Subject, email.ReplyTo)
	return nil
}
