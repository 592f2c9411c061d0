package chat

import (
	"context"
	"testing"
	"time"

	"vestra/internal/services/mailer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, email mailer.Email) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "hello there", "hello there"},
		{"angle brackets escaped", "<script>alert(1)</script>", "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{"unix newlines become breaks", "line one\nline two", "line one<br>line two"},
		{"windows newlines become breaks", "line one\r\nline two", "line one<br>line two"},
		{"mixed content", "a<b\nc", "a&lt;b<br>c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestRelay(t *testing.T) {
	t.Run("rejects empty message", func(t *testing.T) {
		m := new(MockMailer)
		s := NewService(m, "staff@example.com")

		err := s.Relay(context.Background(), Message{UserEmail: "user@example.com", Body: "   "})
		assert.ErrorIs(t, err, ErrEmptyMessage)
		m.AssertNotCalled(t, "Send")
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		m := new(MockMailer)
		s := NewService(m, "staff@example.com")

		err := s.Relay(context.Background(), Message{UserEmail: "not-an-email", Body: "help"})
		assert.ErrorIs(t, err, ErrInvalidEmail)
		m.AssertNotCalled(t, "Send")
	})

	t.Run("relays to staff with reply-to", func(t *testing.T) {
		m := new(MockMailer)
		s := NewService(m, "staff@example.com")

		var sent mailer.Email
		m.On("Send", mock.Anything, mock.MatchedBy(func(e mailer.Email) bool {
			sent = e
			return true
		})).Return(nil)

		msg := Message{
			UserEmail:    "user@example.com",
			Body:         "My <balance> is wrong\nplease check",
			Timestamp:    time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			IsRegistered: true,
		}
		require.NoError(t, s.Relay(context.Background(), msg))

		assert.Equal(t, "staff@example.com", sent.To)
		assert.Equal(t, "user@example.com", sent.ReplyTo)
		assert.Contains(t, sent.Subject, "user@example.com")
		assert.Contains(t, sent.HTML, "&lt;balance&gt;")
		assert.Contains(t, sent.HTML, "<br>")
		assert.Contains(t, sent.HTML, "registered user")
		assert.Contains(t, sent.Plain, "My <balance> is wrong")
		m.AssertExpectations(t)
	})
}
