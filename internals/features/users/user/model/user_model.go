// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// MODEL
// =========================================================

type UserModel struct {
	// PK
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`

	UserEmail    string `gorm:"column:user_email;type:varchar(120);not null;uniqueIndex" json:"user_email"`
	UserFullName string `gorm:"column:user_full_name;type:varchar(100);not null" json:"user_full_name"`

	// bcrypt hash; empty for Google-only accounts
	UserPassword string `gorm:"column:user_password;type:text" json:"-"`

	// role: admin|manager|staff
	UserRole string `gorm:"column:user_role;type:varchar(20);not null;default:'staff';index" json:"user_role"`

	UserGoogleID *string `gorm:"column:user_google_id;type:varchar(64);index" json:"user_google_id,omitempty"`

	UserIsActive bool `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;not null;default:now()" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;not null;default:now()" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}

func (m *UserModel) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.UserCreatedAt.IsZero() {
		m.UserCreatedAt = now
	}
	m.UserUpdatedAt = now
	return nil
}

func (m *UserModel) BeforeUpdate(tx *gorm.DB) (err error) {
	m.UserUpdatedAt = time.Now()
	return nil
}
