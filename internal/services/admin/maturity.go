package admin

import "vestra/internal/models"

// Maturity terms are keyed by plan name. Unknown plans get the longest term
// and the highest risk band.
const (
	compactDays = 5
	masterDays  = 10
	defaultDays = 20
)

// MaturityDaysFor returns the day count used to derive a new investment's
// maturity date.
func MaturityDaysFor(planName string) int {
	switch planName {
	case "Compact":
		return compactDays
	case "Master":
		return masterDays
	default:
		return defaultDays
	}
}

// RiskLevelFor returns the risk band recorded on a new investment.
func RiskLevelFor(planName string) string {
	switch planName {
	case "Compact":
		return models.RiskLow
	case "Master":
		return models.RiskMedium
	default:
		return models.RiskHigh
	}
}
