// file: internals/features/properties/property/model/property_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =====================================================
// PropertyModel — a managed unit (condo / house)
// =====================================================

type PropertyModel struct {
	PropertyID uuid.UUID `gorm:"column:property_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"property_id"`

	PropertyName    string  `gorm:"column:property_name;type:varchar(120);not null" json:"property_name"`
	PropertyAddress string  `gorm:"column:property_address;type:text;not null" json:"property_address"`
	PropertyUnit    *string `gorm:"column:property_unit;type:varchar(40)" json:"property_unit,omitempty"`
	PropertyCity    string  `gorm:"column:property_city;type:varchar(80);not null" json:"property_city"`
	PropertyState   string  `gorm:"column:property_state;type:varchar(40);not null" json:"property_state"`
	PropertyZip     string  `gorm:"column:property_zip;type:varchar(20);not null" json:"property_zip"`

	PropertyBedrooms  int     `gorm:"column:property_bedrooms;not null;default:0" json:"property_bedrooms"`
	PropertyBathrooms float64 `gorm:"column:property_bathrooms;type:numeric(4,1);not null;default:0" json:"property_bathrooms"`
	PropertyMaxGuests int     `gorm:"column:property_max_guests;not null;default:0" json:"property_max_guests"`

	PropertyNotes *string `gorm:"column:property_notes;type:text" json:"property_notes,omitempty"`

	// Cover photo stored on OSS as webp; thumbnail alongside it.
	PropertyPhotoURL      *string `gorm:"column:property_photo_url;type:text" json:"property_photo_url,omitempty"`
	PropertyPhotoThumbURL *string `gorm:"column:property_photo_thumb_url;type:text" json:"property_photo_thumb_url,omitempty"`

	PropertyIsActive bool `gorm:"column:property_is_active;not null;default:true" json:"property_is_active"`

	Highlights []PropertyHighlightModel `gorm:"foreignKey:PropertyHighlightPropertyID;references:PropertyID;constraint:OnDelete:CASCADE" json:"highlights,omitempty"`

	PropertyCreatedAt time.Time      `gorm:"column:property_created_at;not null;default:now()" json:"property_created_at"`
	PropertyUpdatedAt time.Time      `gorm:"column:property_updated_at;not null;default:now()" json:"property_updated_at"`
	PropertyDeletedAt gorm.DeletedAt `gorm:"column:property_deleted_at;index" json:"-"`
}

func (PropertyModel) TableName() string { return "properties" }

func (m *PropertyModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.PropertyCreatedAt.IsZero() {
		m.PropertyCreatedAt = now
	}
	m.PropertyUpdatedAt = now
	return nil
}

func (m *PropertyModel) BeforeUpdate(tx *gorm.DB) error {
	m.PropertyUpdatedAt = time.Now()
	return nil
}

// =====================================================
// PropertyHighlightModel — short amenity bullets shown
// on the property card (e.g. "Ocean view", "2 parking").
// =====================================================

type PropertyHighlightModel struct {
	PropertyHighlightID         uuid.UUID `gorm:"column:property_highlight_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"property_highlight_id"`
	PropertyHighlightPropertyID uuid.UUID `gorm:"column:property_highlight_property_id;type:uuid;not null;index" json:"property_highlight_property_id"`

	PropertyHighlightLabel string `gorm:"column:property_highlight_label;type:varchar(80);not null" json:"property_highlight_label"`
	PropertyHighlightOrder int    `gorm:"column:property_highlight_order;not null;default:0" json:"property_highlight_order"`

	PropertyHighlightCreatedAt time.Time `gorm:"column:property_highlight_created_at;not null;default:now()" json:"property_highlight_created_at"`
}

func (PropertyHighlightModel) TableName() string { return "property_highlights" }
