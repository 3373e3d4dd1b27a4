package models

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// protect rejects a deletion when rows of the referencing model match the
// query. The ref string names the referencing model and field so callers get
// a descriptive error, e.g. "Allocation.EmployeeID".
func protect(tx *gorm.DB, model any, query string, id uuid.UUID, ref string) error {
	var count int64
	err := tx.Model(model).Where(query, id).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return fmt.Errorf("%w by %s", ErrResourceProtected, ref)
	}

	return nil
}
