// Package dashboard aggregates the data behind the user dashboard page.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"vestra/internal/models"
	"vestra/internal/repositories"
	"vestra/internal/services/activity"
)

// FetchTimeout bounds the whole dashboard aggregation. Replaces the old ad
// hoc race against a timer on the client.
const FetchTimeout = 30 * time.Second

const recentActivityLimit = 10

// Overview is everything the dashboard page renders in one response.
type Overview struct {
	Balance           *models.Balance     `json:"balance"`
	ActiveInvestments int                 `json:"active_investments"`
	PendingRequests   int                 `json:"pending_requests"`
	RecentActivity    []activity.Activity `json:"recent_activity"`
}

type Service interface {
	Overview(ctx context.Context, userID uint) (*Overview, error)
}

type service struct {
	balances   repositories.BalanceRepository
	invRepo    repositories.InvestmentRepository
	pending    repositories.PendingInvestmentRepository
	activities activity.Service
}

func NewService(
	balances repositories.BalanceRepository,
	invRepo repositories.InvestmentRepository,
	pending repositories.PendingInvestmentRepository,
	activities activity.Service,
) Service {
	if balances == nil || invRepo == nil || pending == nil || activities == nil {
		panic("repositories and activity service are required")
	}
	return &service{
		balances:   balances,
		invRepo:    invRepo,
		pending:    pending,
		activities: activities,
	}
}

func (s *service) Overview(ctx context.Context, userID uint) (*Overview, error) {
	ctx, cancel := context.WithTimeout(ctx, FetchTimeout)
	defer cancel()

	balance, err := s.balances.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	investments, err := s.invRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	active := 0
	for _, inv := range investments {
		if inv.Status == models.InvestmentStatusActive {
			active++
		}
	}

	pending, err := s.pending.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending investments: %w", err)
	}
	open := 0
	for _, p := range pending {
		if p.Status == models.PendingStatusPending {
			open++
		}
	}

	feed, err := s.activities.Feed(ctx, userID, activity.Filter{})
	if err != nil {
		return nil, fmt.Errorf("failed to build activity feed: %w", err)
	}
	if len(feed) > recentActivityLimit {
		feed = feed[:recentActivityLimit]
	}

	return &Overview{
		Balance:           balance,
		ActiveInvestments: active,
		PendingRequests:   open,
		RecentActivity:    feed,
	}, nil
}
