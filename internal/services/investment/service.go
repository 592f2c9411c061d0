// Package investment handles user-submitted investment requests and the
// read side of approved investments.
package investment

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"vestra/internal/models"
	"vestra/internal/repositories"
	"vestra/internal/services/notify"
	"vestra/internal/services/plan"

	"github.com/google/uuid"
)

// Service errors
var (
	ErrAmountOutOfRange     = errors.New("amount outside plan range")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

var allowedPaymentMethods = map[string]struct{}{
	"btc": {}, "eth": {}, "usdt": {},
}

// SubmitInput carries a new investment request.
type SubmitInput struct {
	PlanID        uint    `json:"plan_id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	TxHash        string  `json:"tx_hash"`
}

// InvestmentView is an investment plus its derived progress percentage.
type InvestmentView struct {
	models.Investment
	Progress float64 `json:"progress"`
}

type Service interface {
	Submit(ctx context.Context, userID uint, input SubmitInput) (*models.PendingInvestment, error)
	ListByUser(ctx context.Context, userID uint) ([]InvestmentView, error)
	ListPendingByUser(ctx context.Context, userID uint) ([]models.PendingInvestment, error)
}

type service struct {
	plans       plan.Service
	pendingRepo repositories.PendingInvestmentRepository
	invRepo     repositories.InvestmentRepository
	userRepo    repositories.UserRepository
	notifier    notify.Service
	now         func() time.Time
}

func NewService(
	plans plan.Service,
	pendingRepo repositories.PendingInvestmentRepository,
	invRepo repositories.InvestmentRepository,
	userRepo repositories.UserRepository,
	notifier notify.Service,
) Service {
	if plans == nil || pendingRepo == nil || invRepo == nil || userRepo == nil {
		panic("plan service and repositories are required")
	}
	return &service{
		plans:       plans,
		pendingRepo: pendingRepo,
		invRepo:     invRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		now:         time.Now,
	}
}

func (s *service) Submit(ctx context.Context, userID uint, input SubmitInput) (*models.PendingInvestment, error) {
	method := strings.ToLower(strings.TrimSpace(input.PaymentMethod))
	if _, ok := allowedPaymentMethods[method]; !ok {
		return nil, ErrInvalidPaymentMethod
	}

	p, err := s.plans.Get(ctx, input.PlanID)
	if err != nil {
		return nil, err
	}
	if !plan.ValidAmount(input.Amount, p) {
		return nil, ErrAmountOutOfRange
	}

	pending := &models.PendingInvestment{
		UserID:        userID,
		PlanName:      p.Name,
		Amount:        input.Amount,
		PaymentMethod: method,
		TxHash:        input.TxHash,
		Status:        models.PendingStatusPending,
		OrderID:       uuid.NewString(),
	}
	if err := s.pendingRepo.Create(pending); err != nil {
		return nil, fmt.Errorf("failed to create pending investment: %w", err)
	}

	// The request is committed; a failed staff notification must not undo it.
	if s.notifier != nil {
		if user, uerr := s.userRepo.GetByID(userID); uerr == nil {
			if nerr := s.notifier.InvestmentRequested(ctx, user, pending); nerr != nil {
				log.Printf("investment: failed to notify staff for order %s: %v", pending.OrderID, nerr)
			}
		}
	}

	return pending, nil
}

func (s *service) ListByUser(ctx context.Context, userID uint) ([]InvestmentView, error) {
	investments, err := s.invRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}

	now := s.now()
	views := make([]InvestmentView, 0, len(investments))
	for _, inv := range investments {
		views = append(views, InvestmentView{
			Investment: inv,
			Progress:   plan.Progress(inv.StartDate, inv.MaturityDate, now),
		})
	}
	return views, nil
}

func (s *service) ListPendingByUser(ctx context.Context, userID uint) ([]models.PendingInvestment, error) {
	pending, err := s.pendingRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending investments: %w", err)
	}
	return pending, nil
}
