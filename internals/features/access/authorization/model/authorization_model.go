// file: internals/features/access/authorization/model/authorization_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccessKind string

const (
	AccessVendor    AccessKind = "vendor"
	AccessGuest     AccessKind = "guest"
	AccessStaff     AccessKind = "staff"
	AccessEmergency AccessKind = "emergency"
)

// =====================================================
// AccessAuthorizationModel — who may enter a property
// and during which window
// =====================================================

type AccessAuthorizationModel struct {
	AccessAuthorizationID uuid.UUID `gorm:"column:access_authorization_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"access_authorization_id"`

	AccessAuthorizationPropertyID uuid.UUID `gorm:"column:access_authorization_property_id;type:uuid;not null;index" json:"access_authorization_property_id"`

	AccessAuthorizationPersonName string     `gorm:"column:access_authorization_person_name;type:varchar(120);not null" json:"access_authorization_person_name"`
	AccessAuthorizationKind       AccessKind `gorm:"column:access_authorization_kind;type:varchar(15);not null;index" json:"access_authorization_kind"`

	AccessAuthorizationValidFrom    time.Time `gorm:"column:access_authorization_valid_from;type:timestamptz;not null" json:"access_authorization_valid_from"`
	AccessAuthorizationValidThrough time.Time `gorm:"column:access_authorization_valid_through;type:timestamptz;not null" json:"access_authorization_valid_through"`

	AccessAuthorizationNotes *string `gorm:"column:access_authorization_notes;type:text" json:"access_authorization_notes,omitempty"`

	AccessAuthorizationRevokedAt *time.Time `gorm:"column:access_authorization_revoked_at;type:timestamptz" json:"access_authorization_revoked_at,omitempty"`

	AccessAuthorizationCreatedAt time.Time      `gorm:"column:access_authorization_created_at;not null;default:now()" json:"access_authorization_created_at"`
	AccessAuthorizationUpdatedAt time.Time      `gorm:"column:access_authorization_updated_at;not null;default:now()" json:"access_authorization_updated_at"`
	AccessAuthorizationDeletedAt gorm.DeletedAt `gorm:"column:access_authorization_deleted_at;index" json:"-"`
}

func (AccessAuthorizationModel) TableName() string { return "access_authorizations" }

func (m *AccessAuthorizationModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.AccessAuthorizationCreatedAt.IsZero() {
		m.AccessAuthorizationCreatedAt = now
	}
	m.AccessAuthorizationUpdatedAt = now
	return nil
}

func (m *AccessAuthorizationModel) BeforeUpdate(tx *gorm.DB) error {
	m.AccessAuthorizationUpdatedAt = time.Now()
	return nil
}

// IsRevoked reports whether the authorization was explicitly revoked.
func (m *AccessAuthorizationModel) IsRevoked() bool {
	return m.AccessAuthorizationRevokedAt != nil
}
