package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultModel is the base model for all persisted resources.
//
// IDs are generated on the server when a resource is created, they can
// never be supplied by callers.
type DefaultModel struct {
	ID        uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID for the resource
	CreatedAt time.Time `json:"createdAt" example:"2024-03-02T19:28:44.491514Z"`   // Time the resource was created
	UpdatedAt time.Time `json:"updatedAt" example:"2024-03-17T20:14:01.048145Z"`   // Last time the resource was updated
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (m *DefaultModel) AfterFind(_ *gorm.DB) error {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)

	return nil
}

// BeforeCreate generates the UUID for the resource.
func (m *DefaultModel) BeforeCreate(_ *gorm.DB) error {
	m.ID = uuid.New()
	return nil
}

// Resource is the shared shape of all owned, named resources.
//
// OwnerID is the opaque identifier of the authenticated caller that created
// the resource. It is set exactly once on create, is immutable afterwards
// and is never serialized in responses. Every query touching a Resource must
// combine its predicate with the OwnerID of the caller.
type Resource struct {
	DefaultModel
	Name    string `json:"name" example:"Tabungan"`
	OwnerID string `json:"-" gorm:"index;not null"`
}

// Base returns the embedded Resource. It exists so that generic code can
// reach the shared fields of a concrete resource type.
func (r *Resource) Base() *Resource { return r }
