package models

import (
	"strings"

	"gorm.io/gorm"
)

// Skill is a capability employees can be tagged with.
type Skill struct {
	DefaultModel
	Name        string `json:"name" gorm:"uniqueIndex"`
	Description string `json:"description"`
}

func (s *Skill) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)
	s.Description = strings.TrimSpace(s.Description)

	return nil
}
