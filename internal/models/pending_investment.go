package models

import "time"

// Pending request statuses (terminal on approve/reject)
const (
	PendingStatusPending  = "pending"
	PendingStatusApproved = "approved"
	PendingStatusRejected = "rejected"
)

// PendingInvestment is a user-submitted investment request awaiting a staff
// decision in the admin console.
type PendingInvestment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	PlanName      string    `gorm:"size:50;not null" json:"plan_name"`
	Amount        float64   `gorm:"not null" json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	TxHash        string    `json:"tx_hash"`
	Status        string    `gorm:"default:'pending';index" json:"status"`
	Notes         string    `json:"notes"`
	OrderID       string    `gorm:"type:varchar(64);uniqueIndex" json:"order_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"-"`
}

func (PendingInvestment) TableName() string {
	return "pending_investments"
}
