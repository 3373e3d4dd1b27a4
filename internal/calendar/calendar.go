// Package calendar implements the pure calendar arithmetic the planning
// views are built on: header partitions, week-commencing normalization and
// the weekend/holiday predicates.
//
// Weeks are Monday-based everywhere. The week a day belongs to is defined by
// its week-commencing Monday, never by a locale week number, so buckets stay
// consistent across year boundaries.
package calendar

import (
	"time"

	"github.com/crewplan/backend/internal/types"
)

// Span is one bucket of a header partition: a label and the number of
// consecutive days of the window it covers.
type Span struct {
	Label string `json:"label" example:"Jan/24"` // Label of the bucket
	Days  int    `json:"days" example:"31"`      // Number of window days in the bucket
}

// MonthHeader partitions [start, end] into calendar months. Each span counts
// the days of the window falling into that month, so the first and last span
// may cover partial months. The final month is always emitted, even when the
// window ends mid-month.
func MonthHeader(start, end types.Date) []Span {
	if end.Before(start) {
		return nil
	}

	var spans []Span
	currentYear, currentMonth := start.Month()
	days := 0

	for d := start; !d.After(end); d = d.AddDays(1) {
		year, month := d.Month()
		if year == currentYear && month == currentMonth {
			days++
			continue
		}

		spans = append(spans, Span{Label: monthLabel(currentYear, currentMonth), Days: days})
		currentYear, currentMonth = year, month
		days = 1
	}

	return append(spans, Span{Label: monthLabel(currentYear, currentMonth), Days: days})
}

func monthLabel(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("Jan/06")
}

// WeekHeader partitions [start, end] into Monday-based weeks. Each span is
// labeled with the week-commencing date formatted as DD-MM. The first and
// last span may cover partial weeks.
func WeekHeader(start, end types.Date) []Span {
	if end.Before(start) {
		return nil
	}

	var spans []Span
	current := WeekCommencing(start)
	days := 0

	for d := start; !d.After(end); d = d.AddDays(1) {
		if wc := WeekCommencing(d); !wc.Equal(current) {
			spans = append(spans, Span{Label: current.Format("02-01"), Days: days})
			current = wc
			days = 0
		}
		days++
	}

	return append(spans, Span{Label: current.Format("02-01"), Days: days})
}

// WeekCommencing returns the Monday beginning the week the day falls in.
func WeekCommencing(d types.Date) types.Date {
	return d.AddDays(-d.Weekday())
}

// IsWeekend reports whether the day falls on a Saturday or Sunday.
func IsWeekend(d types.Date) bool {
	return d.Weekday() >= 5
}
