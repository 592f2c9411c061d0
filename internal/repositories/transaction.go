package repositories

import (
	"vestra/internal/models"

	"gorm.io/gorm"
)

// TransactionRepository defines data access for ledger entries.
type TransactionRepository interface {
	Create(tx *models.Transaction) error
	ListByUser(userID uint) ([]models.Transaction, error)
	ListAll(offset, limit int, txType string) ([]models.Transaction, int64, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(tx *models.Transaction) error {
	if err := r.db.Create(tx).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *transactionRepository) ListByUser(userID uint) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return transactions, nil
}

func (r *transactionRepository) ListAll(offset, limit int, txType string) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := r.db.Model(&models.Transaction{})
	if txType != "" {
		query = query.Where("type = ?", txType)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, ErrDatabaseOperation
	}
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&transactions).Error
	if err != nil {
		return nil, 0, ErrDatabaseOperation
	}
	return transactions, total, nil
}
