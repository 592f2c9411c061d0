package activity

import "time"

// Activity kinds as shown on the timeline.
const (
	TypeInvestment = "investment"
	TypeWithdrawal = "withdrawal"
	TypeDeposit    = "deposit"
	TypeReturn     = "return"
	TypeDividend   = "dividend"
)

// Type filter values accepted from clients.
const (
	FilterAll         = "all"
	FilterInvestments = "investments"
	FilterWithdrawals = "withdrawals"
	FilterReturns     = "returns"
)

// Time range filter values. Measured in whole days from now.
const (
	Range7d  = "7d"
	Range30d = "30d"
	Range90d = "90d"
	RangeAll = "all"
)

// Activity is one display-oriented record of the unified timeline. It is
// derived on every fetch and never persisted. ID carries a source prefix
// (investment-, pending-, transaction-, withdrawal-, return-) so ids stay
// unique across the merged collections.
type Activity struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Amount         float64   `json:"amount"`
	Status         string    `json:"status"`
	Date           time.Time `json:"date"`
	InvestmentName string    `json:"investment_name,omitempty"`
	PaymentMethod  string    `json:"payment_method,omitempty"`
}

// Filter holds the three composable timeline predicates.
type Filter struct {
	Type   string `json:"type"`
	Range  string `json:"range"`
	Search string `json:"search"`
}

// Normalize fills in the defaults for empty filter fields.
func (f Filter) Normalize() Filter {
	if f.Type == "" {
		f.Type = FilterAll
	}
	if f.Range == "" {
		f.Range = RangeAll
	}
	return f
}
