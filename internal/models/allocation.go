package models

import (
	"github.com/crewplan/backend/internal/planner"
	"github.com/crewplan/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RecurringWeekly is the only supported recurrence rule. Allocations repeat
// on their recurrence days every week between start and end date.
const RecurringWeekly = "weekly"

// Allocation books an employee onto a project for a number of hours per day,
// recurring weekly on the days stored as AllocationDetail rows.
type Allocation struct {
	DefaultModel
	Employee         Employee           `json:"-"`
	EmployeeID       uuid.UUID          `json:"employeeId"`
	Project          Project            `json:"-"`
	ProjectID        uuid.UUID          `json:"projectId"`
	AllocationType   AllocationType     `json:"-"`
	AllocationTypeID *uuid.UUID         `json:"allocationTypeId"`
	StartDate        types.Date         `json:"startDate" example:"2024-01-01"`
	EndDate          types.Date         `json:"endDate" example:"2024-03-29"`
	Hours            decimal.Decimal    `json:"hours" gorm:"type:DECIMAL(20,8)" example:"8"` // Hours per occupied day
	RecurrenceRule   string             `json:"recurrenceRule" gorm:"default:weekly" example:"weekly"`
	Details          []AllocationDetail `json:"-"`
}

// AllocationDetail stores one weekly recurrence day of an allocation.
// DayOfWeek is Monday-indexed: 0 is Monday, 6 is Sunday.
type AllocationDetail struct {
	DefaultModel
	Allocation   Allocation `json:"-"`
	AllocationID uuid.UUID  `json:"allocationId"`
	DayOfWeek    int        `json:"dayOfWeek" example:"0"`
}

func (a *Allocation) BeforeSave(_ *gorm.DB) error {
	if a.EndDate.IsZero() {
		return ErrAllocationEndDateRequired
	}

	if a.EndDate.Before(a.StartDate) {
		return ErrAllocationDatesInvalid
	}

	if !a.Hours.IsPositive() {
		return ErrAllocationHoursNotPositive
	}

	if a.RecurrenceRule == "" {
		a.RecurrenceRule = RecurringWeekly
	}

	return nil
}

func (a *Allocation) BeforeCreate(tx *gorm.DB) error {
	_ = a.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Allocation)
	return a.checkIntegrity(tx, *toSave)
}

func (a *Allocation) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Allocation)

	if tx.Statement.Changed("EmployeeID") {
		if err := tx.First(&Employee{}, toSave.EmployeeID).Error; err != nil {
			return err
		}
	}

	if tx.Statement.Changed("ProjectID") {
		if err := tx.First(&Project{}, toSave.ProjectID).Error; err != nil {
			return err
		}
	}

	if tx.Statement.Changed("AllocationTypeID") && toSave.AllocationTypeID != nil {
		if err := tx.First(&AllocationType{}, *toSave.AllocationTypeID).Error; err != nil {
			return err
		}
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (a *Allocation) checkIntegrity(tx *gorm.DB, toSave Allocation) error {
	if err := tx.First(&Employee{}, toSave.EmployeeID).Error; err != nil {
		return err
	}

	if err := tx.First(&Project{}, toSave.ProjectID).Error; err != nil {
		return err
	}

	if toSave.AllocationTypeID != nil {
		if err := tx.First(&AllocationType{}, *toSave.AllocationTypeID).Error; err != nil {
			return err
		}
	}

	return nil
}

// AfterDelete removes the recurrence days together with the allocation.
func (a *Allocation) AfterDelete(tx *gorm.DB) error {
	return tx.Where("allocation_id = ?", a.ID).Delete(&AllocationDetail{}).Error
}

func (d *AllocationDetail) BeforeSave(_ *gorm.DB) error {
	if d.DayOfWeek < 0 || d.DayOfWeek > 6 {
		return ErrRecurrenceDayInvalid
	}

	return nil
}

// ReplaceDetails swaps the recurrence days of the allocation for the given
// set in a single transaction. Duplicate days collapse to one row.
func (a Allocation) ReplaceDetails(db *gorm.DB, days []int) error {
	seen := make(map[int]bool, len(days))

	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("allocation_id = ?", a.ID).Delete(&AllocationDetail{}).Error
		if err != nil {
			return err
		}

		for _, day := range days {
			if seen[day] {
				continue
			}
			seen[day] = true

			err := tx.Create(&AllocationDetail{AllocationID: a.ID, DayOfWeek: day}).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// Days returns the recurrence days of the allocation in ascending order.
func (a Allocation) Days() []int {
	days := make([]int, 0, len(a.Details))
	for _, d := range a.Details {
		days = append(days, d.DayOfWeek)
	}

	slices.Sort(days)
	return days
}

// Booking flattens the allocation into the form the planner consumes. The
// Project and AllocationType relations must be loaded.
func (a Allocation) Booking() planner.Booking {
	b := planner.Booking{
		AllocationID: a.ID,
		EmployeeID:   a.EmployeeID,
		ProjectID:    a.ProjectID,
		ProjectName:  a.Project.Name,
		StartDate:    a.StartDate,
		EndDate:      a.EndDate,
		Hours:        a.Hours,
		Days:         a.Days(),
	}

	if a.AllocationTypeID != nil {
		b.AllocationType = a.AllocationType.Name
		b.ColorCode = a.AllocationType.ColorCode
	}

	return b
}

// BookingsOverlapping loads all allocations whose span intersects
// [qStart, qEnd], with their recurrence days and relations, flattened into
// planner bookings. Allocations without recurrence days are kept so the
// caller still sees them, they just occupy no cells.
func BookingsOverlapping(db *gorm.DB, qStart, qEnd types.Date) ([]planner.Booking, error) {
	var allocations []Allocation
	err := db.
		Preload("Project").
		Preload("AllocationType").
		Preload("Details").
		Where("end_date >= date(?) AND start_date <= date(?)", qStart, qEnd).
		Find(&allocations).Error
	if err != nil {
		return nil, err
	}

	bookings := make([]planner.Booking, 0, len(allocations))
	for _, a := range allocations {
		if len(a.Details) == 0 {
			log.Debug().Str("allocation", a.ID.String()).Msg("allocation has no recurrence days")
		}

		bookings = append(bookings, a.Booking())
	}

	return bookings, nil
}
