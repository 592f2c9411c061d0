package repositories

import (
	"time"

	"vestra/internal/models"

	"gorm.io/gorm"
)

// InvestmentRepository defines data access for approved investments.
type InvestmentRepository interface {
	Create(inv *models.Investment) error
	GetByID(id uint) (*models.Investment, error)
	ListByUser(userID uint) ([]models.Investment, error)
	ListAll(offset, limit int, status string) ([]models.Investment, int64, error)
	ListMaturedActive(now time.Time) ([]models.Investment, error)
	RecentlyMatured(daysBack int) ([]models.Investment, error)
	Update(inv *models.Investment) error
}

type investmentRepository struct {
	db *gorm.DB
}

func NewInvestmentRepository(db *gorm.DB) InvestmentRepository {
	return &investmentRepository{db: db}
}

func (r *investmentRepository) Create(inv *models.Investment) error {
	if err := r.db.Create(inv).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *investmentRepository) GetByID(id uint) (*models.Investment, error) {
	var inv models.Investment
	if err := r.db.First(&inv, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInvestmentNotFound
		}
		return nil, err
	}
	return &inv, nil
}

func (r *investmentRepository) ListByUser(userID uint) ([]models.Investment, error) {
	var investments []models.Investment
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&investments).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return investments, nil
}

func (r *investmentRepository) ListAll(offset, limit int, status string) ([]models.Investment, int64, error) {
	var investments []models.Investment
	var total int64

	query := r.db.Model(&models.Investment{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, ErrDatabaseOperation
	}
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&investments).Error
	if err != nil {
		return nil, 0, ErrDatabaseOperation
	}
	return investments, total, nil
}

// ListMaturedActive returns active investments whose maturity date has passed.
// Consumed by the maturity sweep job.
func (r *investmentRepository) ListMaturedActive(now time.Time) ([]models.Investment, error) {
	var investments []models.Investment
	err := r.db.Where("status = ? AND maturity_date <= ?", models.InvestmentStatusActive, now).
		Order("maturity_date ASC").
		Find(&investments).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return investments, nil
}

// RecentlyMatured returns investments completed within the last daysBack days.
// Consumed by the maturity notification CLI.
func (r *investmentRepository) RecentlyMatured(daysBack int) ([]models.Investment, error) {
	since := time.Now().AddDate(0, 0, -daysBack)
	var investments []models.Investment
	err := r.db.Where("status = ? AND maturity_date >= ?", models.InvestmentStatusCompleted, since).
		Order("maturity_date DESC").
		Find(&investments).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return investments, nil
}

func (r *investmentRepository) Update(inv *models.Investment) error {
	if err := r.db.Save(inv).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}
