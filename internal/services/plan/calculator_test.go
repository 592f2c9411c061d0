package plan

import (
	"testing"
	"time"

	"vestra/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	maxMaster := 19999.0

	tests := []struct {
		name       string
		amount     float64
		plan       models.Plan
		wantProfit float64
		wantTotal  float64
	}{
		{
			name:       "master plan published example",
			amount:     10000,
			plan:       models.Plan{Name: "Master", DailyRate: 3.5, DurationDays: 10, MinAmount: 5000, MaxAmount: &maxMaster},
			wantProfit: 3500,
			wantTotal:  13500,
		},
		{
			name:       "compact plan minimum",
			amount:     100,
			plan:       models.Plan{Name: "Compact", DailyRate: 2.5, DurationDays: 5, MinAmount: 100},
			wantProfit: 12.5,
			wantTotal:  112.5,
		},
		{
			name:       "ultimate plan",
			amount:     20000,
			plan:       models.Plan{Name: "Ultimate", DailyRate: 5.0, DurationDays: 20, MinAmount: 20000},
			wantProfit: 20000,
			wantTotal:  40000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Calculate(tt.amount, &tt.plan)
			assert.Equal(t, tt.amount, q.Amount)
			assert.InDelta(t, tt.wantProfit, q.Profit, 1e-9)
			assert.InDelta(t, tt.wantTotal, q.Total, 1e-9)
			// Profit and total always agree with each other.
			assert.InDelta(t, q.Amount+q.Profit, q.Total, 1e-9)
		})
	}
}

func TestValidAmount(t *testing.T) {
	maxCompact := 4999.0
	bounded := models.Plan{MinAmount: 100, MaxAmount: &maxCompact}
	unbounded := models.Plan{MinAmount: 20000, MaxAmount: nil}

	tests := []struct {
		name   string
		amount float64
		plan   *models.Plan
		want   bool
	}{
		{"below minimum", 99.99, &bounded, false},
		{"at minimum", 100, &bounded, true},
		{"inside range", 2500, &bounded, true},
		{"at maximum", 4999, &bounded, true},
		{"above maximum", 5000, &bounded, false},
		{"unbounded at minimum", 20000, &unbounded, true},
		{"unbounded huge amount", 5e9, &unbounded, true},
		{"unbounded below minimum", 19999, &unbounded, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidAmount(tt.amount, tt.plan))
		})
	}
}

func TestProgress(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 10)

	t.Run("before start is exactly zero", func(t *testing.T) {
		assert.Equal(t, 0.0, Progress(start, end, start.Add(-time.Hour)))
		assert.Equal(t, 0.0, Progress(start, end, start))
	})

	t.Run("after end is exactly hundred", func(t *testing.T) {
		assert.Equal(t, 100.0, Progress(start, end, end))
		assert.Equal(t, 100.0, Progress(start, end, end.AddDate(0, 0, 30)))
	})

	t.Run("midway", func(t *testing.T) {
		assert.InDelta(t, 50.0, Progress(start, end, start.AddDate(0, 0, 5)), 1e-9)
	})

	t.Run("one day in", func(t *testing.T) {
		assert.InDelta(t, 10.0, Progress(start, end, start.AddDate(0, 0, 1)), 1e-9)
	})

	t.Run("degenerate term", func(t *testing.T) {
		assert.Equal(t, 100.0, Progress(start, start, start.Add(time.Second)))
	})
}
