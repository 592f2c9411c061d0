package activity

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	items := []Activity{
		{
			ID:             "investment-1",
			Type:           TypeInvestment,
			Description:    "Invested in the Master plan, tranche 2",
			Amount:         10000,
			Status:         "active",
			Date:           time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
			InvestmentName: "Master",
		},
		{
			ID:            "withdrawal-1",
			Type:          TypeWithdrawal,
			Description:   "Withdrawal to btc wallet",
			Amount:        75.5,
			Status:        "pending",
			Date:          time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
			PaymentMethod: "btc",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, items))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Date", "Type", "Description", "Amount", "Status", "Investment Name", "Payment Method"}, records[0])

	// The embedded comma survives the round trip intact.
	assert.Equal(t, "Invested in the Master plan, tranche 2", records[1][2])
	assert.Equal(t, "10000.00", records[1][3])
	assert.Equal(t, "2026-03-01T09:30:00Z", records[1][0])

	assert.Equal(t, "75.50", records[2][3])
	assert.Equal(t, "btc", records[2][6])
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1, "header only")
}

func TestWriteJSON(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	items := []Activity{
		{ID: "transaction-1", Type: TypeDeposit, Amount: 250, Date: now.AddDate(0, 0, -1)},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, items, Filter{Type: FilterAll, Search: "dep"}, now))

	var export JSONExport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &export))

	assert.True(t, export.ExportDate.Equal(now))
	assert.Equal(t, 1, export.TotalActivities)
	assert.Equal(t, "dep", export.Filters.Search)
	assert.Equal(t, RangeAll, export.Filters.Range, "empty range is normalized")
	require.Len(t, export.Activities, 1)
	assert.Equal(t, "transaction-1", export.Activities[0].ID)
}
