package planner

import (
	"fmt"

	"github.com/crewplan/backend/internal/calendar"
	"github.com/crewplan/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FlexGroupLabel is the synthetic group collecting employees without any
// booking overlapping the query window.
const FlexGroupLabel = "Flex Squad"

// Employee is the planner's view of an employee record.
type Employee struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	JobTitle string    `json:"jobTitle"`
	Skills   []string  `json:"skills"`
}

// Project is the planner's view of a project record.
type Project struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Type             string     `json:"type"`
	CommercialStatus string     `json:"commercialStatus"`
	StartDate        types.Date `json:"startDate"`
	EndDate          types.Date `json:"endDate"`
}

// TimelineInput carries everything a timeline computation needs. Projects
// arrive in the order the caller wants the groups rendered; bookings keep
// their first-seen order within each group.
type TimelineInput struct {
	Start     types.Date
	End       types.Date
	Employees []Employee
	Projects  []Project
	Bookings  []Booking
}

// DayHeader is one day column of the timeline header.
type DayHeader struct {
	Date        types.Date `json:"date"`
	Weekday     string     `json:"weekday" example:"M"` // First letter of the day name
	Weekend     bool       `json:"weekend"`
	BankHoliday bool       `json:"bankHoliday"`
}

// TimelineRow is one allocation of one employee rendered across the window.
type TimelineRow struct {
	EmployeeID         uuid.UUID       `json:"employeeId"`
	EmployeeName       string          `json:"employeeName"`
	JobTitle           string          `json:"jobTitle"`
	AllocationID       uuid.UUID       `json:"allocationId,omitempty"` // Zero in the flex group
	Cells              []Cell          `json:"cells"`
	AllocatedHours     decimal.Decimal `json:"allocatedHours"`
	UtilizationPercent decimal.Decimal `json:"utilizationPercent"`
}

// TimelineGroup is a row group of the timeline: one project, or the synthetic
// flex group when ProjectID is nil.
type TimelineGroup struct {
	ProjectID *uuid.UUID    `json:"projectId"`
	Label     string        `json:"label"`
	Rows      []TimelineRow `json:"rows"`
}

// Timeline is the normalized allocation grid for a date window. Presentation
// layers decide how to render it, the planner fixes the structure only.
type Timeline struct {
	StartDate types.Date      `json:"startDate"`
	EndDate   types.Date      `json:"endDate"`
	Months    []calendar.Span `json:"months"`
	Weeks     []calendar.Span `json:"weeks"`
	Days      []DayHeader     `json:"days"`
	Groups    []TimelineGroup `json:"groups"`
}

// BuildTimeline computes the allocation timeline for the window. The flex
// group always comes first, followed by one group per project in input
// order. Employees without an overlapping booking get one blank row each.
func BuildTimeline(in TimelineInput, holidays calendar.Holidays) (Timeline, error) {
	if in.End.Before(in.Start) {
		return Timeline{}, ErrInvalidDateRange
	}

	t := Timeline{
		StartDate: in.Start,
		EndDate:   in.End,
		Months:    calendar.MonthHeader(in.Start, in.End),
		Weeks:     calendar.WeekHeader(in.Start, in.End),
		Days:      dayHeaders(in.Start, in.End, holidays),
	}

	overlapping := make(map[uuid.UUID]bool)
	for _, b := range in.Bookings {
		if b.Overlaps(in.Start, in.End) {
			overlapping[b.EmployeeID] = true
		}
	}

	flex := TimelineGroup{Label: FlexGroupLabel, Rows: []TimelineRow{}}
	for _, e := range in.Employees {
		if overlapping[e.ID] {
			continue
		}

		flex.Rows = append(flex.Rows, TimelineRow{
			EmployeeID:         e.ID,
			EmployeeName:       e.Name,
			JobTitle:           e.JobTitle,
			Cells:              blankCells(in.Start, in.End, holidays),
			AllocatedHours:     decimal.Zero,
			UtilizationPercent: decimal.Zero,
		})
	}
	t.Groups = append(t.Groups, flex)

	names := make(map[uuid.UUID]Employee, len(in.Employees))
	for _, e := range in.Employees {
		names[e.ID] = e
	}

	for _, p := range in.Projects {
		group := TimelineGroup{
			ProjectID: &p.ID,
			Label: fmt.Sprintf("%s - Project Type: %s, Start date: %s, End date: %s, Commercial Status: %s",
				p.Name, p.Type, p.StartDate, p.EndDate, p.CommercialStatus),
			Rows: []TimelineRow{},
		}

		for _, b := range in.Bookings {
			if b.ProjectID != p.ID || !b.Overlaps(in.Start, in.End) {
				continue
			}

			cells, total := bookingCells(b, in.Start, in.End, holidays)
			employee := names[b.EmployeeID]

			group.Rows = append(group.Rows, TimelineRow{
				EmployeeID:         b.EmployeeID,
				EmployeeName:       employee.Name,
				JobTitle:           employee.JobTitle,
				AllocationID:       b.AllocationID,
				Cells:              cells,
				AllocatedHours:     total,
				UtilizationPercent: Utilization(total, in.Start, in.End),
			})
		}

		t.Groups = append(t.Groups, group)
	}

	return t, nil
}

func dayHeaders(start, end types.Date, holidays calendar.Holidays) []DayHeader {
	headers := make([]DayHeader, 0, start.DaysUntil(end)+1)
	for d := start; !d.After(end); d = d.AddDays(1) {
		headers = append(headers, DayHeader{
			Date:        d,
			Weekday:     d.Format("Mon")[:1],
			Weekend:     calendar.IsWeekend(d),
			BankHoliday: holidays.IsHoliday(d),
		})
	}
	return headers
}
