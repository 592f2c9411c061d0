package plan

import (
	"time"

	"vestra/internal/models"
)

// Quote is a projected outcome for an amount placed into a plan.
type Quote struct {
	Amount float64 `json:"amount"`
	Profit float64 `json:"profit"`
	Total  float64 `json:"total"`
}

// Calculate projects profit and total for the amount using simple interest
// accrual: total = amount * (1 + rate/100 * days). No compounding — the
// result is shown to users as a financial commitment and must match the
// published plan terms exactly.
func Calculate(amount float64, p *models.Plan) Quote {
	total := amount * (1 + p.DailyRate/100*float64(p.DurationDays))
	return Quote{
		Amount: amount,
		Profit: total - amount,
		Total:  total,
	}
}

// ValidAmount reports whether amount falls within the plan's range.
// A nil MaxAmount means the plan has no upper bound.
func ValidAmount(amount float64, p *models.Plan) bool {
	if amount < p.MinAmount {
		return false
	}
	if p.MaxAmount != nil && amount > *p.MaxAmount {
		return false
	}
	return true
}

// Progress returns the percent of an investment's term elapsed at now,
// clamped to [0, 100]. Reaching 100 triggers no state transition; maturity
// is handled by the sweep job.
func Progress(start, end, now time.Time) float64 {
	if !now.After(start) {
		return 0
	}
	if !now.Before(end) {
		return 100
	}
	total := end.Sub(start)
	if total <= 0 {
		return 100
	}
	pct := float64(now.Sub(start)) / float64(total) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
