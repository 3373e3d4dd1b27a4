package models

import (
	"strings"

	"gorm.io/gorm"
)

// Department is an organizational unit employees belong to.
type Department struct {
	DefaultModel
	Name        string `json:"name" gorm:"uniqueIndex"`
	Description string `json:"description"`
}

func (d *Department) BeforeSave(_ *gorm.DB) error {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)

	return nil
}
