package bi

import (
	"time"
)

// DateRangeName is the custom type to enforce enum-like behavior
type DateRangeName string

func (drn DateRangeName) String() string {
	return string(drn)
}

const (
	Today        DateRangeName = "today"
	Yesterday    DateRangeName = "yesterday"
	ThisMonth    DateRangeName = "this_month"
	LastMonth    DateRangeName = "last_month"
	YTD          DateRangeName = "ytd"
	Last7Days    DateRangeName = "last_7_days"
	Last30Days   DateRangeName = "last_30_days"
	Last90Days   DateRangeName = "last_90_days"
	Last180Days  DateRangeName = "last_180_days"
	Last365Days  DateRangeName = "last_365_days"
	Last18Months DateRangeName = "last_18_months"
)

// orderedRangeNames keeps the vocabulary listing stable for error messages.
var orderedRangeNames = []DateRangeName{
	Today, Yesterday, ThisMonth, LastMonth, YTD,
	Last7Days, Last30Days, Last90Days,
	Last180Days, Last365Days, Last18Months,
}

// ValidDateRangeNames is a set of valid date range names
var ValidDateRangeNames = map[DateRangeName]bool{
	Today:        true,
	Yesterday:    true,
	ThisMonth:    true,
	LastMonth:    true,
	YTD:          true,
	Last7Days:    true,
	Last30Days:   true,
	Last90Days:   true,
	Last180Days:  true,
	Last365Days:  true,
	Last18Months: true,
}

// TimeRange is the resolved [From, To] window for a range name. Both bounds
// are inclusive when selecting transactions.
type TimeRange struct {
	From time.Time
	To   time.Time
}

// ParseDateRange validates a raw range token.
func ParseDateRange(raw string) (DateRangeName, error) {
	drn := DateRangeName(raw)
	if !ValidDateRangeNames[drn] {
		return "", newInvalidRangeError(raw)
	}
	return drn, nil
}

// EnforceMaxLookback silently downgrades ranges longer than 90 days. Long
// tokens stay valid input; the clamp is product policy, not validation.
func EnforceMaxLookback(drn DateRangeName) DateRangeName {
	switch drn {
	case Last180Days, Last365Days, Last18Months:
		return Last90Days
	}
	return drn
}

// Resolve maps the range name to a concrete window relative to now.
// Date-based ranges use calendar day boundaries in now's location.
func (drn DateRangeName) Resolve(now time.Time) TimeRange {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	switch drn {
	case Today:
		return TimeRange{From: startOfDay, To: now}
	case Yesterday:
		return TimeRange{
			From: startOfDay.AddDate(0, 0, -1),
			To:   startOfDay.Add(-time.Second),
		}
	case ThisMonth:
		return TimeRange{From: startOfMonth, To: now}
	case LastMonth:
		return TimeRange{
			From: startOfMonth.AddDate(0, -1, 0),
			To:   startOfMonth.Add(-time.Second),
		}
	case YTD:
		return TimeRange{
			From: time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()),
			To:   now,
		}
	case Last7Days:
		return TimeRange{From: now.AddDate(0, 0, -7), To: now}
	case Last30Days:
		return TimeRange{From: now.AddDate(0, 0, -30), To: now}
	case Last90Days:
		return TimeRange{From: now.AddDate(0, 0, -90), To: now}
	case Last180Days:
		return TimeRange{From: now.AddDate(0, 0, -180), To: now}
	case Last365Days:
		return TimeRange{From: now.AddDate(0, 0, -365), To: now}
	case Last18Months:
		return TimeRange{From: now.AddDate(0, -18, 0), To: now}
	}
	// Unknown names are rejected by ParseDateRange before resolution.
	return TimeRange{From: now.AddDate(0, 0, -90), To: now}
}
