package activity

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// csvHeader matches the columns the dashboard download has always produced.
var csvHeader = []string{"Date", "Type", "Description", "Amount", "Status", "Investment Name", "Payment Method"}

// WriteCSV streams the activities as CSV. encoding/csv quotes fields with
// embedded commas, so descriptions survive a round trip.
func WriteCSV(w io.Writer, items []Activity) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, a := range items {
		record := []string{
			a.Date.Format(time.RFC3339),
			a.Type,
			a.Description,
			fmt.Sprintf("%.2f", a.Amount),
			a.Status,
			a.InvestmentName,
			a.PaymentMethod,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// JSONExport is the envelope for the JSON download.
type JSONExport struct {
	ExportDate      time.Time  `json:"exportDate"`
	TotalActivities int        `json:"totalActivities"`
	Filters         Filter     `json:"filters"`
	Activities      []Activity `json:"activities"`
}

// WriteJSON streams the activities wrapped in the export envelope.
func WriteJSON(w io.Writer, items []Activity, f Filter, now time.Time) error {
	export := JSONExport{
		ExportDate:      now,
		TotalActivities: len(items),
		Filters:         f.Normalize(),
		Activities:      items,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(export)
}
