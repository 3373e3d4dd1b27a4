package models

import (
	"strings"

	"gorm.io/gorm"
)

// CommercialStatus is the commercial standing of a project, e.g. signed or
// proposal.
type CommercialStatus struct {
	DefaultModel
	Name        string `json:"name" gorm:"uniqueIndex"`
	Description string `json:"description"`
}

func (c *CommercialStatus) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)

	return nil
}

// BeforeDelete rejects the deletion while projects still reference the
// status.
func (c *CommercialStatus) BeforeDelete(tx *gorm.DB) error {
	return protect(tx, &Project{}, "commercial_status_id = ?", c.ID, "Project.CommercialStatusID")
}
