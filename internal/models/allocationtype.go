package models

import (
	"strings"

	"gorm.io/gorm"
)

// AllocationType is a named booking category with the color the timeline
// renders it in.
type AllocationType struct {
	DefaultModel
	Name      string `json:"name" gorm:"uniqueIndex"`
	ColorCode string `json:"colorCode" example:"#ffc000"`
}

func (a *AllocationType) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.ColorCode = strings.TrimSpace(a.ColorCode)

	return nil
}

// BeforeDelete rejects the deletion while allocations still use the type.
func (a *AllocationType) BeforeDelete(tx *gorm.DB) error {
	return protect(tx, &Allocation{}, "allocation_type_id = ?", a.ID, "Allocation.AllocationTypeID")
}
