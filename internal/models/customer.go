package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is an organization projects are delivered for.
type Customer struct {
	DefaultModel
	Name             string         `json:"name" gorm:"uniqueIndex"`
	Description      string         `json:"description"`
	AccountManager   AccountManager `json:"-"`
	AccountManagerID *uuid.UUID     `json:"accountManagerId"`
}

func (c *Customer) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)

	return nil
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	_ = c.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Customer)
	return c.checkIntegrity(tx, *toSave)
}

func (c *Customer) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Customer)
	if tx.Statement.Changed("AccountManagerID") {
		return c.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (c *Customer) checkIntegrity(tx *gorm.DB, toSave Customer) error {
	if toSave.AccountManagerID != nil {
		return tx.First(&AccountManager{}, *toSave.AccountManagerID).Error
	}

	return nil
}

// BeforeDelete rejects the deletion while projects still reference the
// customer.
func (c *Customer) BeforeDelete(tx *gorm.DB) error {
	return protect(tx, &Project{}, "customer_id = ?", c.ID, "Project.CustomerID")
}
