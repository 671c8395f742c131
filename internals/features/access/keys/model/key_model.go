// file: internals/features/access/keys/model/key_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransferDirection string

const (
	TransferCheckout TransferDirection = "checkout"
	TransferCheckin  TransferDirection = "checkin"
)

// =====================================================
// KeyModel — physical keys / fobs held per property
// =====================================================

type KeyModel struct {
	KeyID uuid.UUID `gorm:"column:key_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"key_id"`

	KeyPropertyID uuid.UUID `gorm:"column:key_property_id;type:uuid;not null;index" json:"key_property_id"`

	KeyLabel string  `gorm:"column:key_label;type:varchar(80);not null" json:"key_label"`
	KeyKind  *string `gorm:"column:key_kind;type:varchar(40)" json:"key_kind,omitempty"`

	KeyTotalCount     int `gorm:"column:key_total_count;not null;default:1;check:key_total_count>=0" json:"key_total_count"`
	KeyAvailableCount int `gorm:"column:key_available_count;not null;default:1;check:key_available_count>=0" json:"key_available_count"`

	Transfers []KeyTransferModel `gorm:"foreignKey:KeyTransferKeyID;references:KeyID;constraint:OnDelete:CASCADE" json:"transfers,omitempty"`

	KeyCreatedAt time.Time      `gorm:"column:key_created_at;not null;default:now()" json:"key_created_at"`
	KeyUpdatedAt time.Time      `gorm:"column:key_updated_at;not null;default:now()" json:"key_updated_at"`
	KeyDeletedAt gorm.DeletedAt `gorm:"column:key_deleted_at;index" json:"-"`
}

func (KeyModel) TableName() string { return "keys" }

func (m *KeyModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.KeyCreatedAt.IsZero() {
		m.KeyCreatedAt = now
	}
	m.KeyUpdatedAt = now
	return nil
}

func (m *KeyModel) BeforeUpdate(tx *gorm.DB) error {
	m.KeyUpdatedAt = time.Now()
	return nil
}

// =====================================================
// KeyTransferModel — one checkout or checkin event
// =====================================================

type KeyTransferModel struct {
	KeyTransferID    uuid.UUID `gorm:"column:key_transfer_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"key_transfer_id"`
	KeyTransferKeyID uuid.UUID `gorm:"column:key_transfer_key_id;type:uuid;not null;index" json:"key_transfer_key_id"`

	KeyTransferHolderName string            `gorm:"column:key_transfer_holder_name;type:varchar(120);not null" json:"key_transfer_holder_name"`
	KeyTransferDirection  TransferDirection `gorm:"column:key_transfer_direction;type:varchar(10);not null" json:"key_transfer_direction"`

	KeyTransferCreatedAt time.Time `gorm:"column:key_transfer_created_at;not null;default:now()" json:"key_transfer_created_at"`
}

func (KeyTransferModel) TableName() string { return "key_transfers" }
