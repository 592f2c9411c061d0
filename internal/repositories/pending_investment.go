package repositories

import (
	"vestra/internal/models"

	"gorm.io/gorm"
)

// PendingInvestmentRepository defines data access for investment requests
// awaiting a staff decision.
type PendingInvestmentRepository interface {
	Create(p *models.PendingInvestment) error
	GetByID(id uint) (*models.PendingInvestment, error)
	ListByUser(userID uint) ([]models.PendingInvestment, error)
	ListByStatus(status string, offset, limit int) ([]models.PendingInvestment, int64, error)
	Update(p *models.PendingInvestment) error
}

type pendingInvestmentRepository struct {
	db *gorm.DB
}

func NewPendingInvestmentRepository(db *gorm.DB) PendingInvestmentRepository {
	return &pendingInvestmentRepository{db: db}
}

func (r *pendingInvestmentRepository) Create(p *models.PendingInvestment) error {
	if err := r.db.Create(p).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *pendingInvestmentRepository) GetByID(id uint) (*models.PendingInvestment, error) {
	var p models.PendingInvestment
	if err := r.db.First(&p, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *pendingInvestmentRepository) ListByUser(userID uint) ([]models.PendingInvestment, error) {
	var pending []models.PendingInvestment
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&pending).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return pending, nil
}

func (r *pendingInvestmentRepository) ListByStatus(status string, offset, limit int) ([]models.PendingInvestment, int64, error) {
	var pending []models.PendingInvestment
	var total int64

	query := r.db.Model(&models.PendingInvestment{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, ErrDatabaseOperation
	}
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&pending).Error
	if err != nil {
		return nil, 0, ErrDatabaseOperation
	}
	return pending, total, nil
}

func (r *pendingInvestmentRepository) Update(p *models.PendingInvestment) error {
	if err := r.db.Save(p).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}
