// Package withdrawal handles user withdrawal requests.
package withdrawal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	domainerr "vestra/internal/errors"
	"vestra/internal/models"
	"vestra/internal/repositories"
	"vestra/internal/services/notify"

	"github.com/google/uuid"
)

// MinAmount is the smallest withdrawal the platform processes.
const MinAmount = 50.0

// Service errors
var (
	ErrBelowMinimum         = errors.New("amount below minimum withdrawal")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrMissingWalletAddress = errors.New("wallet address is required")
)

var allowedPaymentMethods = map[string]struct{}{
	"btc": {}, "eth": {}, "usdt": {},
}

// SubmitInput carries a new withdrawal request.
type SubmitInput struct {
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	WalletAddress string  `json:"wallet_address"`
}

type Service interface {
	Submit(ctx context.Context, userID uint, input SubmitInput) (*models.WithdrawalRequest, error)
	ListByUser(ctx context.Context, userID uint) ([]models.WithdrawalRequest, error)
}

type service struct {
	withdrawals repositories.WithdrawalRepository
	balances    repositories.BalanceRepository
	userRepo    repositories.UserRepository
	notifier    notify.Service
	now         func() time.Time
}

func NewService(
	withdrawals repositories.WithdrawalRepository,
	balances repositories.BalanceRepository,
	userRepo repositories.UserRepository,
	notifier notify.Service,
) Service {
	if withdrawals == nil || balances == nil || userRepo == nil {
		panic("repositories are required")
	}
	return &service{
		withdrawals: withdrawals,
		balances:    balances,
		userRepo:    userRepo,
		notifier:    notifier,
		now:         time.Now,
	}
}

func (s *service) Submit(ctx context.Context, userID uint, input SubmitInput) (*models.WithdrawalRequest, error) {
	if input.Amount < MinAmount {
		return nil, ErrBelowMinimum
	}
	method := strings.ToLower(strings.TrimSpace(input.PaymentMethod))
	if _, ok := allowedPaymentMethods[method]; !ok {
		return nil, ErrInvalidPaymentMethod
	}
	if strings.TrimSpace(input.WalletAddress) == "" {
		return nil, ErrMissingWalletAddress
	}

	// Pre-check against the available balance. The authoritative check runs
	// again inside the approval transaction.
	balance, err := s.balances.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	if input.Amount > balance.AvailableBalance {
		return nil, domainerr.ErrInsufficientBalance
	}

	request := &models.WithdrawalRequest{
		UserID:        userID,
		Amount:        input.Amount,
		PaymentMethod: method,
		WalletAddress: input.WalletAddress,
		Status:        models.WithdrawalStatusPending,
		OrderID:       uuid.NewString(),
	}
	if err := s.withdrawals.Create(request); err != nil {
		return nil, fmt.Errorf("failed to create withdrawal request: %w", err)
	}

	if s.notifier != nil {
		if user, uerr := s.userRepo.GetByID(userID); uerr == nil {
			if nerr := s.notifier.WithdrawalRequested(ctx, user, request); nerr != nil {
				log.Printf("withdrawal: failed to notify staff for order %s: %v", request.OrderID, nerr)
			}
		}
	}

	return request, nil
}

func (s *service) ListByUser(ctx context.Context, userID uint) ([]models.WithdrawalRequest, error) {
	requests, err := s.withdrawals.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list withdrawal requests: %w", err)
	}
	return requests, nil
}
