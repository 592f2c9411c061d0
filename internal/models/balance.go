package models

import (
	"time"

	"gorm.io/gorm"
)

// Balance mirrors the per-user ledger summary. AvailableBalance must never
// exceed TotalBalance; every mutating transaction re-checks this.
type Balance struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	UserID           uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	TotalBalance     float64   `gorm:"default:0" json:"total_balance"`
	TotalInvested    float64   `gorm:"default:0" json:"total_invested"`
	TotalWithdrawn   float64   `gorm:"default:0" json:"total_withdrawn"`
	ExpectedReturns  float64   `gorm:"default:0" json:"expected_returns"`
	AvailableBalance float64   `gorm:"default:0" json:"available_balance"`
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (b *Balance) BeforeCreate(tx *gorm.DB) error {
	// New accounts always start at zero
	b.TotalBalance = 0
	b.TotalInvested = 0
	b.TotalWithdrawn = 0
	b.ExpectedReturns = 0
	b.AvailableBalance = 0
	return nil
}

// Consistent reports whether the available balance is within the total.
func (b *Balance) Consistent() bool {
	return b.AvailableBalance <= b.TotalBalance
}
