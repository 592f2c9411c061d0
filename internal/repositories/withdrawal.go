package repositories

import (
	"vestra/internal/models"

	"gorm.io/gorm"
)

// WithdrawalRepository defines data access for withdrawal requests.
type WithdrawalRepository interface {
	Create(w *models.WithdrawalRequest) error
	GetByID(id uint) (*models.WithdrawalRequest, error)
	ListByUser(userID uint) ([]models.WithdrawalRequest, error)
	ListByStatus(status string, offset, limit int) ([]models.WithdrawalRequest, int64, error)
	Update(w *models.WithdrawalRequest) error
}

type withdrawalRepository struct {
	db *gorm.DB
}

func NewWithdrawalRepository(db *gorm.DB) WithdrawalRepository {
	return &withdrawalRepository{db: db}
}

func (r *withdrawalRepository) Create(w *models.WithdrawalRequest) error {
	if err := r.db.Create(w).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *withdrawalRepository) GetByID(id uint) (*models.WithdrawalRequest, error) {
	var w models.WithdrawalRequest
	if err := r.db.First(&w, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &w, nil
}

func (r *withdrawalRepository) ListByUser(userID uint) ([]models.WithdrawalRequest, error) {
	var requests []models.WithdrawalRequest
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return requests, nil
}

func (r *withdrawalRepository) ListByStatus(status string, offset, limit int) ([]models.WithdrawalRequest, int64, error) {
	var requests []models.WithdrawalRequest
	var total int64

	query := r.db.Model(&models.WithdrawalRequest{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, ErrDatabaseOperation
	}
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&requests).Error
	if err != nil {
		return nil, 0, ErrDatabaseOperation
	}
	return requests, total, nil
}

func (r *withdrawalRepository) Update(w *models.WithdrawalRequest) error {
	if err := r.db.Save(w).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}
