package insight

import (
	"fmt"
	"time"
)

// Period tokens accepted by the summary API.
const (
	Period7Days  = "7d"
	Period30Days = "30d"
	Period90Days = "90d"
	Period1Year  = "1y"
	PeriodWeek   = "week"

	DefaultPeriod = Period7Days
)

var periodDays = map[string]int{
	Period7Days:  7,
	Period30Days: 30,
	Period90Days: 90,
	Period1Year:  365,
}

// ValidPeriod reports whether the token names a supported window.
func ValidPeriod(period string) bool {
	if period == PeriodWeek {
		return true
	}
	_, ok := periodDays[period]
	return ok
}

// PeriodStart resolves a period token to the inclusive start of its
// window. Day-count tokens subtract whole days from now; "week" aligns
// to midnight of the most recent Monday, counting today when today is
// Monday.
func PeriodStart(period string, now time.Time) (time.Time, error) {
	if period == PeriodWeek {
		y, m, d := now.Date()
		midnight := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
		sinceMonday := (int(now.Weekday()) + 6) % 7
		return midnight.AddDate(0, 0, -sinceMonday), nil
	}
	days, ok := periodDays[period]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown period %q", period)
	}
	return now.AddDate(0, 0, -days), nil
}
