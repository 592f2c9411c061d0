package models

import "time"

// Transaction types
const (
	TransactionTypeDeposit    = "deposit"
	TransactionTypeWithdrawal = "withdrawal"
	TransactionTypeInvestment = "investment"
	TransactionTypeReturn     = "return"
	TransactionTypeDividend   = "dividend"
)

// Transaction statuses
const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
	TransactionStatusCancelled = "cancelled"
)

// Transaction is a ledger entry shown on the activity timeline.
type Transaction struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	Type           string    `gorm:"not null" json:"type"`
	Amount         float64   `gorm:"not null" json:"amount"`
	Description    string    `json:"description"`
	Status         string    `gorm:"not null;default:'pending'" json:"status"`
	Reference      string    `json:"reference"` // For linking related records
	InvestmentName string    `json:"investment_name"`
	PaymentMethod  string    `json:"payment_method"`
	Metadata       JSON      `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"-"`
}
