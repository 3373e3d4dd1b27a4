// Package planner derives the allocation timeline and the weekly capacity
// heat map from employees, projects and their bookings. All computation is
// pure: callers fetch the records, the planner only does calendar work.
package planner

import (
	"errors"

	"github.com/crewplan/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidDateRange = errors.New("the start date must not be after the end date")

// Booking is the flattened form of an allocation and its weekly recurrence
// days. It is constructed once per allocation and carries everything the
// planner needs, so no model lookups happen during aggregation.
type Booking struct {
	AllocationID   uuid.UUID       `json:"allocationId"`
	EmployeeID     uuid.UUID       `json:"employeeId"`
	ProjectID      uuid.UUID       `json:"projectId"`
	ProjectName    string          `json:"projectName"`
	AllocationType string          `json:"allocationType"`
	ColorCode      string          `json:"colorCode" example:"#ffc000"`
	StartDate      types.Date      `json:"startDate"`
	EndDate        types.Date      `json:"endDate"`
	Hours          decimal.Decimal `json:"hours" example:"8"` // Daily hours booked on each recurrence day
	Days           []int           `json:"days"`              // Monday-indexed weekly recurrence days
}

// OccupiedDay is a concrete calendar day on which a booking applies.
type OccupiedDay struct {
	Date  types.Date      `json:"date"`
	Hours decimal.Decimal `json:"hours"`
}

// Overlaps reports whether the booking span intersects [qStart, qEnd].
func (b Booking) Overlaps(qStart, qEnd types.Date) bool {
	return !b.EndDate.Before(qStart) && !b.StartDate.After(qEnd)
}

// occupies reports whether the booking applies on the given day, which must
// already be inside the query window.
func (b Booking) occupies(d types.Date) bool {
	if d.Before(b.StartDate) || d.After(b.EndDate) {
		return false
	}

	for _, day := range b.Days {
		if d.Weekday() == day {
			return true
		}
	}

	return false
}

// Expand returns the concrete occupied days of the booking within
// [qStart, qEnd], in date order. A booking without recurrence days occupies
// nothing, regardless of its span. The walk covers the intersection of the
// booking span and the window only, so cost is bounded by the window length.
func (b Booking) Expand(qStart, qEnd types.Date) []OccupiedDay {
	if qEnd.Before(qStart) || !b.Overlaps(qStart, qEnd) || len(b.Days) == 0 {
		return nil
	}

	var days []OccupiedDay
	for d, last := types.Max(b.StartDate, qStart), types.Min(b.EndDate, qEnd); !d.After(last); d = d.AddDays(1) {
		if b.occupies(d) {
			days = append(days, OccupiedDay{Date: d, Hours: b.Hours})
		}
	}

	return days
}
