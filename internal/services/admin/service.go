// Package admin implements the staff approval console: pending investment
// and withdrawal decisions, and the balance mutations they imply. Every
// decision runs inside one database transaction.
package admin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	domainerr "vestra/internal/errors"
	"vestra/internal/models"
	"vestra/internal/repositories"

	"github.com/google/uuid"
)

// Service errors
var (
	ErrAlreadyDecided = errors.New("request already decided")
	ErrNotFound       = errors.New("request not found")
)

type Service interface {
	ListPendingInvestments(ctx context.Context, status string, offset, limit int) ([]models.PendingInvestment, int64, error)
	ApproveInvestment(ctx context.Context, pendingID, adminID uint) (*models.Investment, error)
	RejectInvestment(ctx context.Context, pendingID, adminID uint, notes string) error
	ListWithdrawals(ctx context.Context, status string, offset, limit int) ([]models.WithdrawalRequest, int64, error)
	ApproveWithdrawal(ctx context.Context, requestID, adminID uint, notes string) error
	RejectWithdrawal(ctx context.Context, requestID, adminID uint, notes string) error
}

type service struct {
	store       repositories.DecisionStore
	pendingRepo repositories.PendingInvestmentRepository
	withdrawals repositories.WithdrawalRepository
	balances    repositories.BalanceRepository
	now         func() time.Time
}

func NewService(
	store repositories.DecisionStore,
	pendingRepo repositories.PendingInvestmentRepository,
	withdrawals repositories.WithdrawalRepository,
	balances repositories.BalanceRepository,
) Service {
	if store == nil {
		panic("decision store is required")
	}
	if pendingRepo == nil || withdrawals == nil || balances == nil {
		panic("repositories are required")
	}
	return &service{
		store:       store,
		pendingRepo: pendingRepo,
		withdrawals: withdrawals,
		balances:    balances,
		now:         time.Now,
	}
}

func (s *service) ListPendingInvestments(ctx context.Context, status string, offset, limit int) ([]models.PendingInvestment, int64, error) {
	return s.pendingRepo.ListByStatus(status, offset, limit)
}

// ApproveInvestment turns a pending request into a live investment. The
// maturity date and risk band are keyed by plan name, the projected return
// uses the plan's published simple-interest terms, and the user's balance
// picks up the invested amount as locked funds.
func (s *service) ApproveInvestment(ctx context.Context, pendingID, adminID uint) (*models.Investment, error) {
	var created *models.Investment

	err := s.store.InTx(ctx, func(tx repositories.DecisionTx) error {
		pending, err := tx.PendingInvestmentByID(pendingID)
		if err != nil {
			if errors.Is(err, repositories.ErrRequestNotFound) {
				return ErrNotFound
			}
			return err
		}
		if pending.Status != models.PendingStatusPending {
			return ErrAlreadyDecided
		}

		p, err := tx.PlanByName(pending.PlanName)
		if err != nil {
			return fmt.Errorf("plan %q not found: %w", pending.PlanName, err)
		}

		days := MaturityDaysFor(pending.PlanName)
		start := s.now()
		returnAmount := pending.Amount * p.DailyRate / 100 * float64(days)

		inv := models.Investment{
			UserID:               pending.UserID,
			PlanName:             pending.PlanName,
			AmountInvested:       pending.Amount,
			CurrentValue:         pending.Amount,
			ExpectedReturnRate:   p.DailyRate,
			ExpectedReturnAmount: returnAmount,
			StartDate:            start,
			MaturityDate:         start.AddDate(0, 0, days),
			Status:               models.InvestmentStatusActive,
			RiskLevel:            RiskLevelFor(pending.PlanName),
			OrderID:              uuid.NewString(),
		}
		if err := tx.CreateInvestment(&inv); err != nil {
			return err
		}

		pending.Status = models.PendingStatusApproved
		if err := tx.SavePendingInvestment(pending); err != nil {
			return err
		}

		balance, err := tx.BalanceByUserID(pending.UserID)
		if err != nil {
			return err
		}
		// Funds arrive on-platform locked into the investment.
		balance.TotalBalance += pending.Amount
		balance.TotalInvested += pending.Amount
		balance.ExpectedReturns += returnAmount
		if !balance.Consistent() {
			return domainerr.ErrInsufficientBalance
		}
		if err := tx.SaveBalance(balance); err != nil {
			return err
		}

		txn := models.Transaction{
			UserID:         pending.UserID,
			Type:           models.TransactionTypeInvestment,
			Amount:         pending.Amount,
			Description:    fmt.Sprintf("Investment in the %s plan", pending.PlanName),
			Status:         models.TransactionStatusCompleted,
			Reference:      inv.OrderID,
			InvestmentName: pending.PlanName,
			PaymentMethod:  pending.PaymentMethod,
			Metadata: models.JSON{
				"admin_id":      adminID,
				"tx_hash":       pending.TxHash,
				"duration_days": days,
				"daily_rate":    p.DailyRate,
			},
		}
		if err := tx.CreateTransaction(&txn); err != nil {
			return err
		}

		created = &inv
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.balances.Invalidate(ctx, created.UserID)
	log.Printf("admin %d approved investment request %d (order %s)", adminID, pendingID, created.OrderID)
	return created, nil
}

func (s *service) RejectInvestment(ctx context.Context, pendingID, adminID uint, notes string) error {
	pending, err := s.pendingRepo.GetByID(pendingID)
	if err != nil {
		if errors.Is(err, repositories.ErrRequestNotFound) {
			return ErrNotFound
		}
		return err
	}
	if pending.Status != models.PendingStatusPending {
		return ErrAlreadyDecided
	}

	pending.Status = models.PendingStatusRejected
	pending.Notes = notes
	if err := s.pendingRepo.Update(pending); err != nil {
		return fmt.Errorf("failed to reject investment request: %w", err)
	}
	log.Printf("admin %d rejected investment request %d", adminID, pendingID)
	return nil
}

func (s *service) ListWithdrawals(ctx context.Context, status string, offset, limit int) ([]models.WithdrawalRequest, int64, error) {
	return s.withdrawals.ListByStatus(status, offset, limit)
}

// ApproveWithdrawal debits the user's balance and marks the request
// approved. The amount <= available_balance check here is authoritative;
// any client-side gating is advisory only.
func (s *service) ApproveWithdrawal(ctx context.Context, requestID, adminID uint, notes string) error {
	var userID uint

	err := s.store.InTx(ctx, func(tx repositories.DecisionTx) error {
		request, err := tx.WithdrawalByID(requestID)
		if err != nil {
			if errors.Is(err, repositories.ErrRequestNotFound) {
				return ErrNotFound
			}
			return err
		}
		if request.Status != models.WithdrawalStatusPending {
			return ErrAlreadyDecided
		}

		balance, err := tx.BalanceByUserID(request.UserID)
		if err != nil {
			return err
		}
		if request.Amount > balance.AvailableBalance {
			return domainerr.ErrInsufficientBalance
		}

		balance.AvailableBalance -= request.Amount
		balance.TotalBalance -= request.Amount
		balance.TotalWithdrawn += request.Amount
		if !balance.Consistent() {
			return domainerr.ErrInsufficientBalance
		}
		if err := tx.SaveBalance(balance); err != nil {
			return err
		}

		now := s.now()
		request.Status = models.WithdrawalStatusApproved
		request.AdminNotes = notes
		request.ProcessedBy = &adminID
		request.ProcessedAt = &now
		if err := tx.SaveWithdrawal(request); err != nil {
			return err
		}

		txn := models.Transaction{
			UserID:        request.UserID,
			Type:          models.TransactionTypeWithdrawal,
			Amount:        request.Amount,
			Description:   fmt.Sprintf("Withdrawal to %s wallet", request.PaymentMethod),
			Status:        models.TransactionStatusCompleted,
			Reference:     request.OrderID,
			PaymentMethod: request.PaymentMethod,
			Metadata: models.JSON{
				"admin_id":       adminID,
				"wallet_address": request.WalletAddress,
			},
		}
		if err := tx.CreateTransaction(&txn); err != nil {
			return err
		}

		userID = request.UserID
		return nil
	})
	if err != nil {
		return err
	}

	s.balances.Invalidate(ctx, userID)
	log.Printf("admin %d approved withdrawal request %d", adminID, requestID)
	return nil
}

func (s *service) RejectWithdrawal(ctx context.Context, requestID, adminID uint, notes string) error {
	request, err := s.withdrawals.GetByID(requestID)
	if err != nil {
		if errors.Is(err, repositories.ErrRequestNotFound) {
			return ErrNotFound
		}
		return err
	}
	if request.Status != models.WithdrawalStatusPending {
		return ErrAlreadyDecided
	}

	now := s.now()
	request.Status = models.WithdrawalStatusRejected
	request.AdminNotes = notes
	request.ProcessedBy = &adminID
	request.ProcessedAt = &now
	if err := s.withdrawals.Update(request); err != nil {
		return fmt.Errorf("failed to reject withdrawal request: %w", err)
	}
	log.Printf("admin %d rejected withdrawal request %d", adminID, requestID)
	return nil
}
