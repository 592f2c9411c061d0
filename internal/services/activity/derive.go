package activity

import (
	"fmt"
	"sort"

	"vestra/internal/models"
)

// FromInvestment maps an approved investment onto the timeline. A completed
// investment yields a second synthetic "return" record dated at maturity.
func FromInvestment(inv models.Investment) []Activity {
	items := []Activity{{
		ID:             fmt.Sprintf("investment-%d", inv.ID),
		Type:           TypeInvestment,
		Title:          fmt.Sprintf("%s Plan Investment", inv.PlanName),
		Description:    fmt.Sprintf("Invested in the %s plan", inv.PlanName),
		Amount:         inv.AmountInvested,
		Status:         inv.Status,
		Date:           inv.CreatedAt,
		InvestmentName: inv.PlanName,
	}}

	if inv.Status == models.InvestmentStatusCompleted {
		items = append(items, Activity{
			ID:             fmt.Sprintf("return-%d", inv.ID),
			Type:           TypeReturn,
			Title:          fmt.Sprintf("%s Plan Return", inv.PlanName),
			Description:    fmt.Sprintf("Matured return from the %s plan", inv.PlanName),
			Amount:         inv.ExpectedReturnAmount,
			Status:         models.TransactionStatusCompleted,
			Date:           inv.MaturityDate,
			InvestmentName: inv.PlanName,
		})
	}
	return items
}

// FromPendingInvestment maps an investment request awaiting staff decision.
func FromPendingInvestment(p models.PendingInvestment) Activity {
	return Activity{
		ID:             fmt.Sprintf("pending-%d", p.ID),
		Type:           TypeInvestment,
		Title:          fmt.Sprintf("%s Plan Request", p.PlanName),
		Description:    fmt.Sprintf("Investment request for the %s plan", p.PlanName),
		Amount:         p.Amount,
		Status:         p.Status,
		Date:           p.CreatedAt,
		InvestmentName: p.PlanName,
		PaymentMethod:  p.PaymentMethod,
	}
}

// FromTransaction maps a ledger entry.
func FromTransaction(tx models.Transaction) Activity {
	title := tx.Description
	if title == "" {
		title = tx.Type
	}
	return Activity{
		ID:             fmt.Sprintf("transaction-%d", tx.ID),
		Type:           tx.Type,
		Title:          title,
		Description:    tx.Description,
		Amount:         tx.Amount,
		Status:         tx.Status,
		Date:           tx.CreatedAt,
		InvestmentName: tx.InvestmentName,
		PaymentMethod:  tx.PaymentMethod,
	}
}

// FromWithdrawal maps a withdrawal request.
func FromWithdrawal(w models.WithdrawalRequest) Activity {
	return Activity{
		ID:            fmt.Sprintf("withdrawal-%d", w.ID),
		Type:          TypeWithdrawal,
		Title:         "Withdrawal Request",
		Description:   fmt.Sprintf("Withdrawal to %s wallet", w.PaymentMethod),
		Amount:        w.Amount,
		Status:        w.Status,
		Date:          w.CreatedAt,
		PaymentMethod: w.PaymentMethod,
	}
}

// Merge unifies the four collections into one timeline sorted by date
// descending. Ties keep a stable order so repeated fetches render the same.
func Merge(
	investments []models.Investment,
	pending []models.PendingInvestment,
	transactions []models.Transaction,
	withdrawals []models.WithdrawalRequest,
) []Activity {
	items := make([]Activity, 0,
		len(investments)*2+len(pending)+len(transactions)+len(withdrawals))

	for _, inv := range investments {
		items = append(items, FromInvestment(inv)...)
	}
	for _, p := range pending {
		items = append(items, FromPendingInvestment(p))
	}
	for _, tx := range transactions {
		items = append(items, FromTransaction(tx))
	}
	for _, w := range withdrawals {
		items = append(items, FromWithdrawal(w))
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
	return items
}
