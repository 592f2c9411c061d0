package models

import "time"

// Investment statuses
const (
	InvestmentStatusActive    = "active"
	InvestmentStatusCompleted = "completed"
	InvestmentStatusCancelled = "cancelled"
)

// Investment is created when an admin approves a pending investment.
// Status transitions active -> completed at/after MaturityDate via the
// maturity sweep job.
type Investment struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	UserID               uint      `gorm:"not null;index" json:"user_id"`
	PlanName             string    `gorm:"size:50;not null" json:"plan_name"`
	AmountInvested       float64   `gorm:"not null" json:"amount_invested"`
	CurrentValue         float64   `gorm:"not null" json:"current_value"`
	ExpectedReturnRate   float64   `gorm:"not null" json:"expected_return_rate"`
	ExpectedReturnAmount float64   `gorm:"not null" json:"expected_return_amount"`
	StartDate            time.Time `json:"start_date"`
	MaturityDate         time.Time `gorm:"index" json:"maturity_date"`
	Status               string    `gorm:"default:'active';index" json:"status"`
	RiskLevel            string    `gorm:"default:'medium'" json:"risk_level"`
	OrderID              string    `gorm:"type:varchar(64);uniqueIndex" json:"order_id"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"-"`
}

func (Investment) TableName() string {
	return "investments"
}
