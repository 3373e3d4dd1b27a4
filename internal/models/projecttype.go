package models

import (
	"strings"

	"gorm.io/gorm"
)

// ProjectType classifies projects, e.g. fixed price or time and material.
type ProjectType struct {
	DefaultModel
	Name        string `json:"name" gorm:"uniqueIndex"`
	Description string `json:"description"`
}

func (p *ProjectType) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)

	return nil
}

// BeforeDelete rejects the deletion while projects still use the type.
func (p *ProjectType) BeforeDelete(tx *gorm.DB) error {
	return protect(tx, &Project{}, "project_type_id = ?", p.ID, "Project.ProjectTypeID")
}
