package models

import (
	"strings"

	"github.com/crewplan/backend/internal/calendar"
	"github.com/crewplan/backend/internal/types"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// BankHoliday is a persisted non-working day, optionally scoped to a location.
type BankHoliday struct {
	DefaultModel
	Name     string     `json:"name"`
	Date     types.Date `json:"date" example:"2024-12-25"`
	Location string     `json:"location" example:"uk"` // Empty means all locations
}

func (b *BankHoliday) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)

	if b.Location != "" && !slices.Contains(Locations, b.Location) {
		return ErrEmployeeLocationInvalid
	}

	return nil
}

// HolidayCalendar returns the bank holiday registry for a location. Persisted
// holidays are layered over the built-in table, so a stored holiday on the
// same date replaces the built-in name. Location-scoped rows only apply when
// the location matches, unscoped rows apply everywhere.
func HolidayCalendar(db *gorm.DB, location string) (calendar.Holidays, error) {
	var holidays []BankHoliday
	err := db.Where("location = ? OR location = ''", location).Find(&holidays).Error
	if err != nil {
		return calendar.Holidays{}, err
	}

	names := calendar.Default().All()
	for _, h := range holidays {
		names[h.Date.Format(calendar.KeyFormat)] = h.Name
	}

	return calendar.NewHolidays(names), nil
}
