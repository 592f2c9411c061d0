// Package notify formats and sends staff/user notification emails.
package notify

import (
	"context"
	"fmt"
	"time"

	"vestra/internal/models"
	"vestra/internal/services/mailer"
)

// MaturedInvestment is one entry of a maturity-processing batch. The
// maturity notification CLI posts slices of these to the API.
type MaturedInvestment struct {
	InvestmentID uint      `json:"investment_id"`
	UserID       uint      `json:"user_id"`
	UserEmail    string    `json:"user_email"`
	PlanName     string    `json:"plan_name"`
	Amount       float64   `json:"amount"`
	ReturnAmount float64   `json:"return_amount"`
	MaturityDate time.Time `json:"maturity_date"`
}

// Service sends the platform's notification emails. Send failures are
// reported but never roll back the action that triggered them.
type Service interface {
	InvestmentRequested(ctx context.Context, user *models.User, p *models.PendingInvestment) error
	WithdrawalRequested(ctx context.Context, user *models.User, w *models.WithdrawalRequest) error
	MaturityProcessed(ctx context.Context, batch []MaturedInvestment) error
	ResetConfirmation(ctx context.Context, email string) error
}

type service struct {
	mailer     mailer.Mailer
	adminEmail string
	siteURL    string
}

func NewService(m mailer.Mailer, adminEmail, siteURL string) Service {
	if m == nil {
		panic("mailer is required")
	}
	return &service{
		mailer:     m,
		adminEmail: adminEmail,
		siteURL:    siteURL,
	}
}

func (s *service) InvestmentRequested(ctx context.Context, user *models.User, p *models.PendingInvestment) error {
	subject := fmt.Sprintf("New investment request: %s / %.2f", p.PlanName, p.Amount)
	plain := fmt.Sprintf(
		"User %s (%s) requested a %s plan investment of %.2f via %s.\nOrder: %s\nReview: %s/admin",
		user.Name, user.Email, p.PlanName, p.Amount, p.PaymentMethod, p.OrderID, s.siteURL,
	)
	return s.mailer.Send(ctx, mailer.Email{
		To:      s.adminEmail,
		Subject: subject,
		Plain:   plain,
		ReplyTo: user.Email,
	})
}

func (s *service) WithdrawalRequested(ctx context.Context, user *models.User, w *models.WithdrawalRequest) error {
	subject := fmt.Sprintf("New withdrawal request: %.2f via %s", w.Amount, w.PaymentMethod)
	plain := fmt.Sprintf(
		"User %s (%s) requested a withdrawal of %.2f to %s address %s.\nOrder: %s\nReview: %s/admin",
		user.Name, user.Email, w.Amount, w.PaymentMethod, w.WalletAddress, w.OrderID, s.siteURL,
	)
	return s.mailer.Send(ctx, mailer.Email{
		To:      s.adminEmail,
		Subject: subject,
		Plain:   plain,
		ReplyTo: user.Email,
	})
}

func (s *service) MaturityProcessed(ctx context.Context, batch []MaturedInvestment) error {
	// One email per user so returns show up in the right inbox.
	for _, m := range batch {
		if m.UserEmail == "" {
			continue
		}
		subject := fmt.Sprintf("Your %s plan investment has matured", m.PlanName)
		plain := fmt.Sprintf(
			"Your %s plan investment of %.2f matured on %s. A return of %.2f has been credited to your balance.",
			m.PlanName, m.Amount, m.MaturityDate.Format("2 Jan 2006"), m.ReturnAmount,
		)
		if err := s.mailer.Send(ctx, mailer.Email{To: m.UserEmail, Subject: subject, Plain: plain}); err != nil {
			return fmt.Errorf("failed to notify %s: %w", m.UserEmail, err)
		}
	}
	return nil
}

func (s *service) ResetConfirmation(ctx context.Context, email string) error {
	plain := fmt.Sprintf(
		"A password reset was requested for this address. If this was you, follow the link sent separately. If not, you can ignore this email.\n%s",
		s.siteURL,
	)
	return s.mailer.Send(ctx, mailer.Email{
		To:      email,
		Subject: "Password reset requested",
		Plain:   plain,
	})
}
