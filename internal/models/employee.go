package models

import (
	"strings"

	"github.com/crewplan/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// Locations an employee or bank holiday can be scoped to.
var Locations = []string{"india", "uk", "other"}

var Genders = []string{"male", "female", "other"}

// Employee is a member of staff that can be allocated to projects.
type Employee struct {
	DefaultModel
	EmpID                 string          `json:"empId" example:"E0042"` // Employee code from the HR system
	FirstName             string          `json:"firstName"`
	LastName              string          `json:"lastName"`
	Email                 string          `json:"email"`
	Gender                string          `json:"gender" example:"female"`
	Location              string          `json:"location" example:"uk"`
	DateOfJoining         types.Date      `json:"dateOfJoining"`
	ResignationDate       *types.Date     `json:"resignationDate"`
	LastWorkingDate       *types.Date     `json:"lastWorkingDate"`
	JobTitle              JobTitle        `json:"-"`
	JobTitleID            *uuid.UUID      `json:"jobTitleId"`
	LineManager           *Employee       `json:"-"`
	LineManagerID         *uuid.UUID      `json:"lineManagerId"`
	Department            Department      `json:"-"`
	DepartmentID          *uuid.UUID      `json:"departmentId"`
	Skills                []Skill         `json:"-" gorm:"many2many:employee_skills"`
	StandardHours         decimal.Decimal `json:"standardHours" gorm:"type:DECIMAL(20,8)" example:"8"` // Standard working hours per day
	StandardChargeOutRate decimal.Decimal `json:"standardChargeOutRate" gorm:"type:DECIMAL(20,8)"`
	IncludeInCapacity     bool            `json:"includeInCapacity" example:"true"` // Whether the employee counts towards capacity planning
}

func (e *Employee) BeforeSave(_ *gorm.DB) error {
	e.EmpID = strings.TrimSpace(e.EmpID)
	e.FirstName = strings.TrimSpace(e.FirstName)
	e.LastName = strings.TrimSpace(e.LastName)
	e.Email = strings.TrimSpace(e.Email)

	if e.Gender != "" && !slices.Contains(Genders, e.Gender) {
		return ErrEmployeeGenderInvalid
	}

	if e.Location != "" && !slices.Contains(Locations, e.Location) {
		return ErrEmployeeLocationInvalid
	}

	return nil
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	_ = e.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Employee)
	return e.checkIntegrity(tx, *toSave)
}

func (e *Employee) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Employee)
	if tx.Statement.Changed("JobTitleID") || tx.Statement.Changed("LineManagerID") || tx.Statement.Changed("DepartmentID") {
		return e.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (e *Employee) checkIntegrity(tx *gorm.DB, toSave Employee) error {
	if toSave.JobTitleID != nil {
		if err := tx.First(&JobTitle{}, *toSave.JobTitleID).Error; err != nil {
			return err
		}
	}

	if toSave.LineManagerID != nil {
		if err := tx.First(&Employee{}, *toSave.LineManagerID).Error; err != nil {
			return err
		}
	}

	if toSave.DepartmentID != nil {
		if err := tx.First(&Department{}, *toSave.DepartmentID).Error; err != nil {
			return err
		}
	}

	return nil
}

// BeforeDelete rejects the deletion while the employee is referenced by an
// allocation, a project delivery role or a line management relation.
func (e *Employee) BeforeDelete(tx *gorm.DB) error {
	if err := protect(tx, &Allocation{}, "employee_id = ?", e.ID, "Allocation.EmployeeID"); err != nil {
		return err
	}

	if err := protect(tx, &Project{}, "customer_delivery_lead_id = ?", e.ID, "Project.CustomerDeliveryLeadID"); err != nil {
		return err
	}

	if err := protect(tx, &Project{}, "service_delivery_manager_id = ?", e.ID, "Project.ServiceDeliveryManagerID"); err != nil {
		return err
	}

	return protect(tx, &Employee{}, "line_manager_id = ?", e.ID, "Employee.LineManagerID")
}

// Name returns the display name of the employee.
func (e Employee) Name() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// SkillNames returns the names of the employee's skills, in load order.
func (e Employee) SkillNames() []string {
	names := make([]string, 0, len(e.Skills))
	for _, s := range e.Skills {
		names = append(names, s.Name)
	}
	return names
}
