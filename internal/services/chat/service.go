// Package chat relays support-widget messages to staff by email.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vestra/internal/services/mailer"
	"vestra/internal/validation"
)

// Service errors
var (
	ErrEmptyMessage = errors.New("message is required")
	ErrInvalidEmail = errors.New("invalid email address")
)

// Message is an incoming chat-widget message.
type Message struct {
	UserEmail    string    `json:"userEmail"`
	Body         string    `json:"message"`
	Timestamp    time.Time `json:"timestamp"`
	IsRegistered bool      `json:"isRegistered"`
}

// Service relays chat messages to the staff inbox.
type Service interface {
	Relay(ctx context.Context, msg Message) error
}

type service struct {
	mailer     mailer.Mailer
	adminEmail string
}

func NewService(m mailer.Mailer, adminEmail string) Service {
	if m == nil {
		panic("mailer is required")
	}
	if adminEmail == "" {
		panic("admin email is required")
	}
	return &service{mailer: m, adminEmail: adminEmail}
}

// Sanitize HTML-escapes angle brackets and turns newlines into breaks so the
// message renders safely inside the notification email.
func Sanitize(message string) string {
	s := strings.ReplaceAll(message, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\r\n", "<br>")
	s = strings.ReplaceAll(s, "\n", "<br>")
	return s
}

func (s *service) Relay(ctx context.Context, msg Message) error {
	if strings.TrimSpace(msg.Body) == "" {
		return ErrEmptyMessage
	}
	if !validation.IsEmail(msg.UserEmail) {
		return ErrInvalidEmail
	}

	when := msg.Timestamp
	if when.IsZero() {
		when = time.Now()
	}

	visitor := "visitor"
	if msg.IsRegistered {
		visitor = "registered user"
	}

	safe := Sanitize(msg.Body)
	subject := fmt.Sprintf("Support message from %s", msg.UserEmail)
	html := fmt.Sprintf(
		"<p><strong>From:</strong> %s (%s)</p><p><strong>Received:</strong> %s</p><hr><p>%s</p>",
		msg.UserEmail, visitor, when.Format(time.RFC1123), safe,
	)
	plain := fmt.Sprintf("From: %s (%s)\nReceived: %s\n\n%s",
		msg.UserEmail, visitor, when.Format(time.RFC1123), msg.Body)

	// ReplyTo lets staff answer straight from their mail client.
	return s.mailer.Send(ctx, mailer.Email{
		To:      s.adminEmail,
		Subject: subject,
		Plain:   plain,
		HTML:    html,
		ReplyTo: msg.UserEmail,
	})
}
