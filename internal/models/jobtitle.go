package models

import (
	"strings"

	"gorm.io/gorm"
)

// JobTitle is the role designation of an employee.
type JobTitle struct {
	DefaultModel
	Name        string `json:"name" gorm:"uniqueIndex"`
	Description string `json:"description"`
}

func (j *JobTitle) BeforeSave(_ *gorm.DB) error {
	j.Name = strings.TrimSpace(j.Name)
	j.Description = strings.TrimSpace(j.Description)

	return nil
}

// BeforeDelete rejects the deletion while employees still hold the title.
func (j *JobTitle) BeforeDelete(tx *gorm.DB) error {
	return protect(tx, &Employee{}, "job_title_id = ?", j.ID, "Employee.JobTitleID")
}
