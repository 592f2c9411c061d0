package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyTypeFilter(t *testing.T) {
	items := []Activity{
		{ID: "investment-1", Type: TypeInvestment},
		{ID: "withdrawal-1", Type: TypeWithdrawal},
		{ID: "return-1", Type: TypeReturn},
		{ID: "transaction-1", Type: TypeDividend},
		{ID: "transaction-2", Type: TypeDeposit},
	}
	now := time.Now()

	tests := []struct {
		name    string
		filter  string
		wantIDs []string
	}{
		{"all", FilterAll, []string{"investment-1", "withdrawal-1", "return-1", "transaction-1", "transaction-2"}},
		{"investments", FilterInvestments, []string{"investment-1"}},
		{"withdrawals", FilterWithdrawals, []string{"withdrawal-1"}},
		{"returns include dividends", FilterReturns, []string{"return-1", "transaction-1"}},
		{"unknown filter passes everything", "bogus", []string{"investment-1", "withdrawal-1", "return-1", "transaction-1", "transaction-2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(items, Filter{Type: tt.filter}, now)
			ids := make([]string, 0, len(got))
			for _, a := range got {
				ids = append(ids, a.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestApplyRangeFilter(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	items := []Activity{
		{ID: "today", Date: now},
		{ID: "exactly-7-days", Date: now.AddDate(0, 0, -7)},
		{ID: "8-days", Date: now.AddDate(0, 0, -8)},
		{ID: "29-days", Date: now.AddDate(0, 0, -29)},
		{ID: "91-days", Date: now.AddDate(0, 0, -91)},
		{ID: "future", Date: now.Add(48 * time.Hour)},
	}

	t.Run("7d boundary is inclusive", func(t *testing.T) {
		got := Apply(items, Filter{Range: Range7d}, now)
		ids := idsOf(got)
		assert.Contains(t, ids, "exactly-7-days")
		assert.NotContains(t, ids, "8-days")
	})

	t.Run("future dates always pass", func(t *testing.T) {
		got := Apply(items, Filter{Range: Range7d}, now)
		assert.Contains(t, idsOf(got), "future")
	})

	t.Run("30d window", func(t *testing.T) {
		got := Apply(items, Filter{Range: Range30d}, now)
		ids := idsOf(got)
		assert.Contains(t, ids, "29-days")
		assert.NotContains(t, ids, "91-days")
	})

	t.Run("all passes everything", func(t *testing.T) {
		got := Apply(items, Filter{Range: RangeAll}, now)
		assert.Len(t, got, len(items))
	})
}

func TestApplySearchFilter(t *testing.T) {
	now := time.Now()
	items := []Activity{
		{ID: "a", Title: "Master Plan Investment", InvestmentName: "Master"},
		{ID: "b", Description: "Withdrawal to btc wallet", PaymentMethod: "btc"},
		{ID: "c", Status: "pending"},
	}

	tests := []struct {
		name    string
		search  string
		wantIDs []string
	}{
		{"case-insensitive title match", "mAsTeR", []string{"a"}},
		{"payment method match", "btc", []string{"b"}},
		{"status match", "pend", []string{"c"}},
		{"no match", "zzz", []string{}},
		{"empty search passes everything", "", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(items, Filter{Search: tt.search}, now)
			assert.Equal(t, tt.wantIDs, idsOf(got))
		})
	}
}

func TestFilterNormalize(t *testing.T) {
	f := Filter{}.Normalize()
	assert.Equal(t, FilterAll, f.Type)
	assert.Equal(t, RangeAll, f.Range)

	f = Filter{Type: FilterReturns, Range: Range7d, Search: "x"}.Normalize()
	assert.Equal(t, FilterReturns, f.Type)
	assert.Equal(t, Range7d, f.Range)
	assert.Equal(t, "x", f.Search)
}

func idsOf(items []Activity) []string {
	ids := make([]string, 0, len(items))
	for _, a := range items {
		ids = append(ids, a.ID)
	}
	return ids
}
