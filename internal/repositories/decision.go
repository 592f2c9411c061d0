package repositories

import (
	"context"
	"errors"

	"vestra/internal/models"

	"gorm.io/gorm"
)

// DecisionTx is the unit of work available inside an approval decision.
// Every method runs on one database transaction; an error returned from the
// InTx callback rolls the whole decision back.
type DecisionTx interface {
	PendingInvestmentByID(id uint) (*models.PendingInvestment, error)
	WithdrawalByID(id uint) (*models.WithdrawalRequest, error)
	PlanByName(name string) (*models.Plan, error)
	BalanceByUserID(userID uint) (*models.Balance, error)
	CreateInvestment(inv *models.Investment) error
	CreateTransaction(txn *models.Transaction) error
	SavePendingInvestment(p *models.PendingInvestment) error
	SaveWithdrawal(w *models.WithdrawalRequest) error
	SaveBalance(b *models.Balance) error
}

// DecisionStore opens approval transactions.
type DecisionStore interface {
	InTx(ctx context.Context, fn func(tx DecisionTx) error) error
}

type decisionStore struct {
	db *gorm.DB
}

func NewDecisionStore(db *gorm.DB) DecisionStore {
	if db == nil {
		panic("db is required")
	}
	return &decisionStore{db: db}
}

func (s *decisionStore) InTx(ctx context.Context, fn func(tx DecisionTx) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&decisionTx{tx: tx})
	})
}

type decisionTx struct {
	tx *gorm.DB
}

func (t *decisionTx) PendingInvestmentByID(id uint) (*models.PendingInvestment, error) {
	var pending models.PendingInvestment
	if err := t.tx.First(&pending, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &pending, nil
}

func (t *decisionTx) WithdrawalByID(id uint) (*models.WithdrawalRequest, error) {
	var request models.WithdrawalRequest
	if err := t.tx.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (t *decisionTx) PlanByName(name string) (*models.Plan, error) {
	var p models.Plan
	if err := t.tx.Where("name = ?", name).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (t *decisionTx) BalanceByUserID(userID uint) (*models.Balance, error) {
	var balance models.Balance
	if err := t.tx.Where("user_id = ?", userID).First(&balance).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBalanceNotFound
		}
		return nil, err
	}
	return &balance, nil
}

func (t *decisionTx) CreateInvestment(inv *models.Investment) error {
	return t.tx.Create(inv).Error
}

func (t *decisionTx) CreateTransaction(txn *models.Transaction) error {
	return t.tx.Create(txn).Error
}

func (t *decisionTx) SavePendingInvestment(p *models.PendingInvestment) error {
	return t.tx.Save(p).Error
}

func (t *decisionTx) SaveWithdrawal(w *models.WithdrawalRequest) error {
	return t.tx.Save(w).Error
}

func (t *decisionTx) SaveBalance(b *models.Balance) error {
	return t.tx.Save(b).Error
}
