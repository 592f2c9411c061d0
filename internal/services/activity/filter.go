package activity

import (
	"math"
	"strings"
	"time"
)

// matchesType applies the type predicate. "returns" covers both return and
// dividend entries.
func matchesType(a Activity, filter string) bool {
	switch filter {
	case "", FilterAll:
		return true
	case FilterInvestments:
		return a.Type == TypeInvestment
	case FilterWithdrawals:
		return a.Type == TypeWithdrawal
	case FilterReturns:
		return a.Type == TypeReturn || a.Type == TypeDividend
	default:
		return true
	}
}

// rangeDays maps a range filter to its day count, 0 meaning unbounded.
func rangeDays(filter string) int {
	switch filter {
	case Range7d:
		return 7
	case Range30d:
		return 30
	case Range90d:
		return 90
	default:
		return 0
	}
}

// matchesRange keeps activities at most N whole days old. The day count is
// ceil((now-date)/24h), so a record dated exactly N days ago is included
// and one dated N+1 days ago is not.
func matchesRange(a Activity, filter string, now time.Time) bool {
	days := rangeDays(filter)
	if days == 0 {
		return true
	}
	diff := now.Sub(a.Date)
	if diff < 0 {
		return true
	}
	diffDays := int(math.Ceil(diff.Hours() / 24))
	return diffDays <= days
}

// matchesSearch is a case-insensitive substring match across the display
// fields.
func matchesSearch(a Activity, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, field := range []string{a.Title, a.Description, a.InvestmentName, a.PaymentMethod, a.Status} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Apply runs the three independent predicates in sequence and returns the
// surviving activities in their original order.
func Apply(items []Activity, f Filter, now time.Time) []Activity {
	f = f.Normalize()
	out := make([]Activity, 0, len(items))
	for _, a := range items {
		if !matchesType(a, f.Type) {
			continue
		}
		if !matchesRange(a, f.Range, now) {
			continue
		}
		if !matchesSearch(a, f.Search) {
			continue
		}
		out = append(out, a)
	}
	return out
}
