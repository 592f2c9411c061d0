// Package plan exposes the investment plan catalogue and the return
// calculator behind it.
package plan

import (
	"context"
	"fmt"

	"vestra/internal/models"
	"vestra/internal/repositories"
)

// Service defines the plan catalogue operations.
type Service interface {
	List(ctx context.Context) ([]models.Plan, error)
	Get(ctx context.Context, id uint) (*models.Plan, error)
	GetByName(ctx context.Context, name string) (*models.Plan, error)
	// QuoteFor validates the amount against the plan range and returns the
	// simple-interest projection. An out-of-range amount suppresses the quote.
	QuoteFor(ctx context.Context, planID uint, amount float64) (*Quote, error)
}

type service struct {
	repo repositories.PlanRepository
}

func NewService(repo repositories.PlanRepository) Service {
	if repo == nil {
		panic("plan repo is required")
	}
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]models.Plan, error) {
	plans, err := s.repo.ListActive()
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return plans, nil
}

func (s *service) Get(ctx context.Context, id uint) (*models.Plan, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		if err == repositories.ErrPlanNotFound {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return p, nil
}

func (s *service) GetByName(ctx context.Context, name string) (*models.Plan, error) {
	p, err := s.repo.GetByName(name)
	if err != nil {
		if err == repositories.ErrPlanNotFound {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return p, nil
}

func (s *service) QuoteFor(ctx context.Context, planID uint, amount float64) (*Quote, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	p, err := s.Get(ctx, planID)
	if err != nil {
		return nil, err
	}
	if p.Status != "active" {
		return nil, ErrPlanInactive
	}
	if !ValidAmount(amount, p) {
		return nil, ErrAmountOutOfRange
	}

	q := Calculate(amount, p)
	return &q, nil
}
