// Package activity derives the unified activity timeline from the four
// persisted collections and applies the display filters.
package activity

import (
	"context"
	"fmt"
	"io"
	"time"

	"vestra/internal/repositories"
)

// DefaultFetchTimeout bounds the combined collection fetch for one feed.
const DefaultFetchTimeout = 30 * time.Second

// Service builds filtered activity feeds for a user.
type Service interface {
	Feed(ctx context.Context, userID uint, f Filter) ([]Activity, error)
	ExportCSV(ctx context.Context, w io.Writer, userID uint, f Filter) error
	ExportJSON(ctx context.Context, w io.Writer, userID uint, f Filter) error
}

type service struct {
	investments repositories.InvestmentRepository
	pending     repositories.PendingInvestmentRepository
	txns        repositories.TransactionRepository
	withdrawals repositories.WithdrawalRepository
	timeout     time.Duration
	now         func() time.Time
}

func NewService(
	investments repositories.InvestmentRepository,
	pending repositories.PendingInvestmentRepository,
	txns repositories.TransactionRepository,
	withdrawals repositories.WithdrawalRepository,
) Service {
	if investments == nil || pending == nil || txns == nil || withdrawals == nil {
		panic("all activity repositories are required")
	}
	return &service{
		investments: investments,
		pending:     pending,
		txns:        txns,
		withdrawals: withdrawals,
		timeout:     DefaultFetchTimeout,
		now:         time.Now,
	}
}

func (s *service) Feed(ctx context.Context, userID uint, f Filter) ([]Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	investments, err := s.investments.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load investments: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pending, err := s.pending.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending investments: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	transactions, err := s.txns.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	withdrawals, err := s.withdrawals.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load withdrawal requests: %w", err)
	}

	merged := Merge(investments, pending, transactions, withdrawals)
	return Apply(merged, f, s.now()), nil
}

func (s *service) ExportCSV(ctx context.Context, w io.Writer, userID uint, f Filter) error {
	items, err := s.Feed(ctx, userID, f)
	if err != nil {
		return err
	}
	return WriteCSV(w, items)
}

func (s *service) ExportJSON(ctx context.Context, w io.Writer, userID uint, f Filter) error {
	items, err := s.Feed(ctx, userID, f)
	if err != nil {
		return err
	}
	return WriteJSON(w, items, f, s.now())
}
