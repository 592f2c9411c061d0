package repositories

import (
	"context"
	"log"

	"vestra/internal/models"
	"vestra/internal/repositories/cache"

	"gorm.io/gorm"
)

// BalanceRepository defines data access for per-user balances.
type BalanceRepository interface {
	Create(balance *models.Balance) error
	GetByUserID(userID uint) (*models.Balance, error)
	Update(balance *models.Balance) error
	Invalidate(ctx context.Context, userID uint)
}

type balanceRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
}

func NewBalanceRepository(db *gorm.DB, cache *cache.CacheService) BalanceRepository {
	return &balanceRepository{
		db:    db,
		cache: cache,
	}
}

func (r *balanceRepository) Create(balance *models.Balance) error {
	if err := r.db.Create(balance).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *balanceRepository) GetByUserID(userID uint) (*models.Balance, error) {
	if balance, err := r.cache.GetBalance(context.Background(), userID); err == nil {
		return balance, nil
	}

	var balance models.Balance
	if err := r.db.Where("user_id = ?", userID).First(&balance).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrBalanceNotFound
		}
		return nil, err
	}

	if err := r.cache.CacheBalance(context.Background(), &balance); err != nil {
		log.Printf("balance repo: failed to cache balance for user %d: %v", userID, err)
	}
	return &balance, nil
}

func (r *balanceRepository) Update(balance *models.Balance) error {
	if err := r.db.Save(balance).Error; err != nil {
		return ErrDatabaseOperation
	}
	r.Invalidate(context.Background(), balance.UserID)
	return nil
}

func (r *balanceRepository) Invalidate(ctx context.Context, userID uint) {
	if err := r.cache.InvalidateBalance(ctx, userID); err != nil {
		log.Printf("balance repo: failed to invalidate cache for user %d: %v", userID, err)
	}
}
