package models

import (
	"strings"

	"gorm.io/gorm"
)

// AccountManager owns the commercial relationship with customers.
type AccountManager struct {
	DefaultModel
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (a *AccountManager) BeforeSave(_ *gorm.DB) error {
	a.FirstName = strings.TrimSpace(a.FirstName)
	a.LastName = strings.TrimSpace(a.LastName)
	a.Email = strings.TrimSpace(a.Email)
	a.Phone = strings.TrimSpace(a.Phone)

	return nil
}

// BeforeDelete rejects the deletion while customers still reference the
// account manager.
func (a *AccountManager) BeforeDelete(tx *gorm.DB) error {
	return protect(tx, &Customer{}, "account_manager_id = ?", a.ID, "Customer.AccountManagerID")
}

// Name returns the display name of the account manager.
func (a AccountManager) Name() string {
	return a.FirstName + " " + a.LastName
}
