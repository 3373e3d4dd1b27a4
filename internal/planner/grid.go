package planner

import (
	"github.com/crewplan/backend/internal/calendar"
	"github.com/crewplan/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CellKind classifies one day cell of a timeline row.
type CellKind string

const (
	CellAllocated   CellKind = "allocated"
	CellWeekend     CellKind = "weekend"
	CellBankHoliday CellKind = "bankHoliday"
	CellUnallocated CellKind = "unallocated"
)

// Cell is one day of a timeline row. An active allocation takes precedence
// over weekend and holiday styling; a bank holiday during an active
// allocation keeps the allocated kind and sets BankHoliday, so both facts
// survive into the rendered cell.
type Cell struct {
	Date         types.Date      `json:"date"`
	Kind         CellKind        `json:"kind" example:"allocated"`
	BankHoliday  bool            `json:"bankHoliday"`            // Set for holiday cells and for allocated cells falling on a holiday
	ColorCode    string          `json:"colorCode,omitempty"`    // Display color of the allocation type
	AllocationID uuid.UUID       `json:"allocationId,omitempty"` // Allocation the cell belongs to, zero when unallocated
	Hours        decimal.Decimal `json:"hours"`                  // Hours booked on the day
}

// standardDailyHours is the slot size a working day contributes to the
// utilization denominator.
var standardDailyHours = decimal.NewFromInt(8)

var hundred = decimal.NewFromInt(100)

// blankCells returns the cells of a row without any allocation: weekend and
// holiday styling only.
func blankCells(start, end types.Date, holidays calendar.Holidays) []Cell {
	cells := make([]Cell, 0, start.DaysUntil(end)+1)
	for d := start; !d.After(end); d = d.AddDays(1) {
		cells = append(cells, blankCell(d, holidays))
	}
	return cells
}

func blankCell(d types.Date, holidays calendar.Holidays) Cell {
	switch {
	case calendar.IsWeekend(d):
		return Cell{Date: d, Kind: CellWeekend}
	case holidays.IsHoliday(d):
		return Cell{Date: d, Kind: CellBankHoliday, BankHoliday: true}
	default:
		return Cell{Date: d, Kind: CellUnallocated}
	}
}

// bookingCells renders one booking across the window and returns the cells
// together with the total booked hours.
func bookingCells(b Booking, start, end types.Date, holidays calendar.Holidays) ([]Cell, decimal.Decimal) {
	cells := make([]Cell, 0, start.DaysUntil(end)+1)
	total := decimal.Zero

	for d := start; !d.After(end); d = d.AddDays(1) {
		if !b.occupies(d) {
			cells = append(cells, blankCell(d, holidays))
			continue
		}

		cells = append(cells, Cell{
			Date:         d,
			Kind:         CellAllocated,
			BankHoliday:  holidays.IsHoliday(d),
			ColorCode:    b.ColorCode,
			AllocationID: b.AllocationID,
			Hours:        b.Hours,
		})
		total = total.Add(b.Hours)
	}

	return cells, total
}

// WorkingDays counts the non-weekend days in [start, end].
func WorkingDays(start, end types.Date) int {
	days := 0
	for d := start; !d.After(end); d = d.AddDays(1) {
		if !calendar.IsWeekend(d) {
			days++
		}
	}
	return days
}

// Utilization returns allocated hours as a percentage of the 8-hour slots of
// the window's working days. A window without working days yields zero
// instead of a division fault.
func Utilization(allocated decimal.Decimal, start, end types.Date) decimal.Decimal {
	available := standardDailyHours.Mul(decimal.NewFromInt(int64(WorkingDays(start, end))))
	if available.IsZero() {
		return decimal.Zero
	}

	return allocated.Div(available).Mul(hundred)
}
