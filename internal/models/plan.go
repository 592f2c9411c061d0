package models

import "time"

// Plan risk levels
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// Plan is an investment product offered to users. DailyRate is a percentage
// (2.5 means 2.5% per day). MaxAmount nil means no upper bound.
type Plan struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:50;uniqueIndex;not null" json:"name"`
	DailyRate    float64   `gorm:"not null" json:"daily_rate"`
	DurationDays int       `gorm:"not null" json:"duration_days"`
	MinAmount    float64   `gorm:"not null" json:"min_amount"`
	MaxAmount    *float64  `json:"max_amount"`
	RiskLevel    string    `gorm:"default:'medium'" json:"risk_level"`
	Status       string    `gorm:"default:'active'" json:"status"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

func (Plan) TableName() string {
	return "plans"
}
