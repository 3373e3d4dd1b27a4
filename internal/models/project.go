package models

import (
	"strings"

	"github.com/crewplan/backend/internal/types"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

var (
	ProjectPhases     = []string{"discovery", "delivery", "support", "closed"}
	ProjectStatuses   = []string{"planned", "active", "on-hold", "completed", "cancelled"}
	ProjectPriorities = []string{"low", "medium", "high", "critical"}
	ProjectHealths    = []string{"green", "amber", "red"}
)

// Project is a piece of work employees are allocated to.
type Project struct {
	DefaultModel
	Name                     string           `json:"name" gorm:"uniqueIndex"`
	Description              string           `json:"description"`
	Customer                 Customer         `json:"-"`
	CustomerID               *uuid.UUID       `json:"customerId"`
	ProjectType              ProjectType      `json:"-"`
	ProjectTypeID            *uuid.UUID       `json:"projectTypeId"`
	CommercialStatus         CommercialStatus `json:"-"`
	CommercialStatusID       *uuid.UUID       `json:"commercialStatusId"`
	CustomerDeliveryLead     *Employee        `json:"-"`
	CustomerDeliveryLeadID   *uuid.UUID       `json:"customerDeliveryLeadId"`
	ServiceDeliveryManager   *Employee        `json:"-"`
	ServiceDeliveryManagerID *uuid.UUID       `json:"serviceDeliveryManagerId"`
	StartDate                types.Date       `json:"startDate" example:"2024-01-01"`
	EndDate                  *types.Date      `json:"endDate" example:"2024-06-30"`
	Phase                    string           `json:"phase" example:"delivery"`
	Status                   string           `json:"status" example:"active"`
	Priority                 string           `json:"priority" example:"high"`
	Health                   string           `json:"health" example:"green"`
}

func (p *Project) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)

	if p.EndDate != nil && !p.EndDate.IsZero() && p.EndDate.Before(p.StartDate) {
		return ErrProjectDatesInvalid
	}

	if p.Phase != "" && !slices.Contains(ProjectPhases, p.Phase) {
		return ErrProjectPhaseInvalid
	}

	if p.Status != "" && !slices.Contains(ProjectStatuses, p.Status) {
		return ErrProjectStatusInvalid
	}

	if p.Priority != "" && !slices.Contains(ProjectPriorities, p.Priority) {
		return ErrProjectPriorityInvalid
	}

	if p.Health != "" && !slices.Contains(ProjectHealths, p.Health) {
		return ErrProjectHealthInvalid
	}

	return nil
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	_ = p.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Project)
	return p.checkIntegrity(tx, *toSave)
}

func (p *Project) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Project)
	if tx.Statement.Changed("CustomerID") || tx.Statement.Changed("ProjectTypeID") ||
		tx.Statement.Changed("CommercialStatusID") || tx.Statement.Changed("CustomerDeliveryLeadID") ||
		tx.Statement.Changed("ServiceDeliveryManagerID") {
		return p.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (p *Project) checkIntegrity(tx *gorm.DB, toSave Project) error {
	if toSave.CustomerID != nil {
		if err := tx.First(&Customer{}, *toSave.CustomerID).Error; err != nil {
			return err
		}
	}

	if toSave.ProjectTypeID != nil {
		if err := tx.First(&ProjectType{}, *toSave.ProjectTypeID).Error; err != nil {
			return err
		}
	}

	if toSave.CommercialStatusID != nil {
		if err := tx.First(&CommercialStatus{}, *toSave.CommercialStatusID).Error; err != nil {
			return err
		}
	}

	if toSave.CustomerDeliveryLeadID != nil {
		if err := tx.First(&Employee{}, *toSave.CustomerDeliveryLeadID).Error; err != nil {
			return err
		}
	}

	if toSave.ServiceDeliveryManagerID != nil {
		if err := tx.First(&Employee{}, *toSave.ServiceDeliveryManagerID).Error; err != nil {
			return err
		}
	}

	return nil
}

func (p *Project) BeforeDelete(tx *gorm.DB) error {
	return protect(tx, &Allocation{}, "project_id = ?", p.ID, "Allocation.ProjectID")
}
