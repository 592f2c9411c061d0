package models

import "time"

// Withdrawal request statuses
const (
	WithdrawalStatusPending  = "pending"
	WithdrawalStatusApproved = "approved"
	WithdrawalStatusRejected = "rejected"
)

// WithdrawalRequest is a user request to move funds out to a wallet address.
// Approval requires amount <= the user's available balance; the check is
// authoritative here, not in any client.
type WithdrawalRequest struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        uint       `gorm:"not null;index" json:"user_id"`
	Amount        float64    `gorm:"not null" json:"amount"`
	PaymentMethod string     `gorm:"not null" json:"payment_method"` // btc, eth, usdt
	WalletAddress string     `gorm:"not null" json:"wallet_address"`
	Status        string     `gorm:"default:'pending';index" json:"status"`
	AdminNotes    string     `json:"admin_notes"`
	ProcessedBy   *uint      `json:"processed_by,omitempty"`
	ProcessedAt   *time.Time `json:"processed_at,omitempty"`
	OrderID       string     `gorm:"type:varchar(64);uniqueIndex" json:"order_id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"-"`
}

func (WithdrawalRequest) TableName() string {
	return "withdrawal_requests"
}
