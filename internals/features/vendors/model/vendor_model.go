// file: internals/features/vendors/model/vendor_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// =====================================================
// VendorModel — a service company we contract with
// =====================================================

type VendorModel struct {
	VendorID uuid.UUID `gorm:"column:vendor_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"vendor_id"`

	VendorName    string  `gorm:"column:vendor_name;type:varchar(120);not null" json:"vendor_name"`
	VendorService *string `gorm:"column:vendor_service;type:varchar(120)" json:"vendor_service,omitempty"`
	VendorEmail   *string `gorm:"column:vendor_email;type:varchar(160)" json:"vendor_email,omitempty"`
	VendorPhone   *string `gorm:"column:vendor_phone;type:varchar(40)" json:"vendor_phone,omitempty"`
	VendorNotes   *string `gorm:"column:vendor_notes;type:text" json:"vendor_notes,omitempty"`

	VendorIsActive bool `gorm:"column:vendor_is_active;not null;default:true" json:"vendor_is_active"`

	COIs []VendorCOIModel `gorm:"foreignKey:VendorCOIVendorID;references:VendorID;constraint:OnDelete:CASCADE" json:"cois,omitempty"`

	VendorCreatedAt time.Time      `gorm:"column:vendor_created_at;not null;default:now()" json:"vendor_created_at"`
	VendorUpdatedAt time.Time      `gorm:"column:vendor_updated_at;not null;default:now()" json:"vendor_updated_at"`
	VendorDeletedAt gorm.DeletedAt `gorm:"column:vendor_deleted_at;index" json:"-"`
}

func (VendorModel) TableName() string { return "vendors" }

func (m *VendorModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.VendorCreatedAt.IsZero() {
		m.VendorCreatedAt = now
	}
	m.VendorUpdatedAt = now
	return nil
}

func (m *VendorModel) BeforeUpdate(tx *gorm.DB) error {
	m.VendorUpdatedAt = time.Now()
	return nil
}

// =====================================================
// VendorCOIModel — certificate of insurance on file
// =====================================================

type VendorCOIModel struct {
	VendorCOIID       uuid.UUID `gorm:"column:vendor_coi_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"vendor_coi_id"`
	VendorCOIVendorID uuid.UUID `gorm:"column:vendor_coi_vendor_id;type:uuid;not null;index" json:"vendor_coi_vendor_id"`

	VendorCOIPolicyNumber   string          `gorm:"column:vendor_coi_policy_number;type:varchar(80);not null" json:"vendor_coi_policy_number"`
	VendorCOICarrier        string          `gorm:"column:vendor_coi_carrier;type:varchar(120);not null" json:"vendor_coi_carrier"`
	VendorCOICoverageAmount decimal.Decimal `gorm:"column:vendor_coi_coverage_amount;type:numeric(14,2);not null;default:0" json:"vendor_coi_coverage_amount"`

	VendorCOIValidFrom    time.Time `gorm:"column:vendor_coi_valid_from;type:timestamptz;not null" json:"vendor_coi_valid_from"`
	VendorCOIValidThrough time.Time `gorm:"column:vendor_coi_valid_through;type:timestamptz;not null;index" json:"vendor_coi_valid_through"`

	// Uploaded certificate document, when one was attached.
	VendorCOIDocumentID *uuid.UUID `gorm:"column:vendor_coi_document_id;type:uuid" json:"vendor_coi_document_id,omitempty"`

	VendorCOICreatedAt time.Time      `gorm:"column:vendor_coi_created_at;not null;default:now()" json:"vendor_coi_created_at"`
	VendorCOIDeletedAt gorm.DeletedAt `gorm:"column:vendor_coi_deleted_at;index" json:"-"`
}

func (VendorCOIModel) TableName() string { return "vendor_cois" }
