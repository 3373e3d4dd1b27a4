package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultModel is the base model for all resources.
type DefaultModel struct {
	ID uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID for the resource
	Timestamps
	Audit
}

// Timestamps contains the timestamps that gorm sets automatically.
type Timestamps struct {
	CreatedAt time.Time       `json:"createdAt" example:"2023-04-02T19:28:44.491514Z"`       // Time the resource was created
	UpdatedAt time.Time       `json:"updatedAt" example:"2023-04-17T20:14:01.048145Z"`       // Last time the resource was updated
	DeletedAt *gorm.DeletedAt `json:"deletedAt" gorm:"index" swaggertype:"primitive,string"` // Time the resource was marked as deleted
}

// Audit carries the bookkeeping fields every record shares. The version
// counter starts at 1 and is incremented on every update by a gorm callback,
// see Connect. The identity stamps come from the upstream auth proxy.
type Audit struct {
	Version   uint32 `json:"version" example:"3"`            // Incremented on every update
	Active    bool   `json:"active" example:"true"`          // Whether the resource is in active use
	CreatedBy string `json:"createdBy" example:"jane.smith"` // Identity that created the resource
	UpdatedBy string `json:"updatedBy" example:"jane.smith"` // Identity that last updated the resource
}

// AfterFind updates the timestamps to use UTC as timezone, not +0000.
//
// We already store them in UTC, but reading them from the database returns
// them as +0000.
func (m *DefaultModel) AfterFind(_ *gorm.DB) (err error) {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)

	if m.DeletedAt != nil {
		m.DeletedAt.Time = m.DeletedAt.Time.In(time.UTC)
	}

	return nil
}

// BeforeCreate generates the UUID and initializes the audit fields.
func (m *DefaultModel) BeforeCreate(_ *gorm.DB) (err error) {
	m.ID = uuid.New()
	m.Version = 1
	m.Active = true
	return nil
}
