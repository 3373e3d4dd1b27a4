package planner

import (
	"github.com/crewplan/backend/internal/calendar"
	"github.com/crewplan/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WeeklyCapacityHours is the fixed denominator of the capacity heat map.
var WeeklyCapacityHours = decimal.NewFromInt(40)

// heatBands maps utilization percentages to display colors in 10-point
// steps. A percentage belongs to a band when it is strictly below the bound,
// so band boundaries like exactly 10% stay in the lower band. Everything
// above 100% is over-allocation and gets the overflow color.
var heatBands = []struct {
	below int64
	color string
}{
	{11, "#cc0000"},
	{21, "#ff0000"},
	{31, "#ff6600"},
	{41, "#ff9900"},
	{51, "#ffc000"},
	{61, "#ffd966"},
	{71, "#ffe699"},
	{81, "#c6e0b4"},
	{91, "#a9d08e"},
}

const (
	targetBandColor   = "#339966" // 91-100%
	overflowBandColor = "#1654b0" // more than 100%
)

// ColorFor returns the heat map color for a utilization percentage.
func ColorFor(percent decimal.Decimal) string {
	for _, band := range heatBands {
		if percent.LessThan(decimal.NewFromInt(band.below)) {
			return band.color
		}
	}

	if percent.LessThanOrEqual(hundred) {
		return targetBandColor
	}

	return overflowBandColor
}

// CapacityCell is one week of one employee in the heat map.
type CapacityCell struct {
	WeekCommencing types.Date      `json:"weekCommencing"`
	AllocatedHours decimal.Decimal `json:"allocatedHours"`
	Percent        decimal.Decimal `json:"percent" example:"87.5"`
	Color          string          `json:"color" example:"#a9d08e"`
}

// CapacityRow is the weekly utilization of one employee.
type CapacityRow struct {
	EmployeeID   uuid.UUID      `json:"employeeId"`
	EmployeeName string         `json:"employeeName"`
	JobTitle     string         `json:"jobTitle"`
	Skills       []string       `json:"skills"`
	Cells        []CapacityCell `json:"cells"`
}

// Capacity is the weekly capacity heat map for a date window. Weeks cover
// every week-commencing Monday from the window start's week to the window
// end's week.
type Capacity struct {
	StartDate types.Date      `json:"startDate"`
	EndDate   types.Date      `json:"endDate"`
	Weeks     []calendar.Span `json:"weeks"`
	Rows      []CapacityRow   `json:"rows"`
}

// CapacityInput carries everything a capacity computation needs. Employees
// keep their input order in the result.
type CapacityInput struct {
	Start     types.Date
	End       types.Date
	Employees []Employee
	Bookings  []Booking
}

// BuildCapacity computes the weekly capacity heat map. Every employee
// appears, including those without any booking in the window; their weeks
// report zero percent.
func BuildCapacity(in CapacityInput) (Capacity, error) {
	if in.End.Before(in.Start) {
		return Capacity{}, ErrInvalidDateRange
	}

	first := calendar.WeekCommencing(in.Start)
	last := calendar.WeekCommencing(in.End)

	c := Capacity{
		StartDate: in.Start,
		EndDate:   in.End,
		Weeks:     calendar.WeekHeader(first, last.AddDays(6)),
		Rows:      make([]CapacityRow, 0, len(in.Employees)),
	}

	bookings := make(map[uuid.UUID][]Booking)
	for _, b := range in.Bookings {
		bookings[b.EmployeeID] = append(bookings[b.EmployeeID], b)
	}

	for _, e := range in.Employees {
		row := CapacityRow{
			EmployeeID:   e.ID,
			EmployeeName: e.Name,
			JobTitle:     e.JobTitle,
			Skills:       e.Skills,
		}

		for week := first; !week.After(last); week = week.AddDays(7) {
			hours := decimal.Zero
			for _, b := range bookings[e.ID] {
				for _, day := range b.Expand(week, week.AddDays(6)) {
					hours = hours.Add(day.Hours)
				}
			}

			percent := hours.Div(WeeklyCapacityHours).Mul(hundred)
			row.Cells = append(row.Cells, CapacityCell{
				WeekCommencing: week,
				AllocatedHours: hours,
				Percent:        percent,
				Color:          ColorFor(percent),
			})
		}

		c.Rows = append(c.Rows, row)
	}

	return c, nil
}
