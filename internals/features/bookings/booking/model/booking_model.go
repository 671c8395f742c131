// file: internals/features/bookings/booking/model/booking_model.go
package model

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCheckedIn BookingStatus = "checked_in"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// allowedTransitions lists the forward edges of the booking lifecycle.
// Cancellation is reachable from any non-terminal state.
var allowedTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCheckedIn, BookingCancelled},
	BookingCheckedIn: {BookingCompleted, BookingCancelled},
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to BookingStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// =====================================================
// BookingModel — a guest stay at a property
// =====================================================

type BookingModel struct {
	BookingID uuid.UUID `gorm:"column:booking_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"booking_id"`

	BookingPropertyID uuid.UUID `gorm:"column:booking_property_id;type:uuid;not null;index" json:"booking_property_id"`

	BookingGuestName  string  `gorm:"column:booking_guest_name;type:varchar(120);not null" json:"booking_guest_name"`
	BookingGuestEmail *string `gorm:"column:booking_guest_email;type:varchar(160)" json:"booking_guest_email,omitempty"`
	BookingGuestPhone *string `gorm:"column:booking_guest_phone;type:varchar(40)" json:"booking_guest_phone,omitempty"`
	BookingGuestCount int     `gorm:"column:booking_guest_count;not null;default:1" json:"booking_guest_count"`

	// Free-form channel payload (OTA reservation data, door codes, etc.)
	BookingGuestDetails datatypes.JSON `gorm:"column:booking_guest_details;type:jsonb" json:"booking_guest_details,omitempty"`

	BookingCheckIn  time.Time `gorm:"column:booking_check_in;type:timestamptz;not null" json:"booking_check_in"`
	BookingCheckOut time.Time `gorm:"column:booking_check_out;type:timestamptz;not null" json:"booking_check_out"`

	// Monetary inputs for invoice generation. BaseAmount covers the whole
	// stay; the per-night unit price is derived from it at generation time.
	BookingBaseAmount   decimal.Decimal `gorm:"column:booking_base_amount;type:numeric(12,2);not null;default:0" json:"booking_base_amount"`
	BookingCleaningFee  decimal.Decimal `gorm:"column:booking_cleaning_fee;type:numeric(12,2);not null;default:0" json:"booking_cleaning_fee"`
	BookingExtrasAmount decimal.Decimal `gorm:"column:booking_extras_amount;type:numeric(12,2);not null;default:0" json:"booking_extras_amount"`
	BookingTaxAmount    decimal.Decimal `gorm:"column:booking_tax_amount;type:numeric(12,2);not null;default:0" json:"booking_tax_amount"`

	// Optional template that drives invoice line generation.
	BookingBillTemplateID *uuid.UUID `gorm:"column:booking_bill_template_id;type:uuid;index" json:"booking_bill_template_id,omitempty"`

	BookingStatus BookingStatus `gorm:"column:booking_status;type:varchar(20);not null;default:'pending';index" json:"booking_status"`
	BookingNotes  *string       `gorm:"column:booking_notes;type:text" json:"booking_notes,omitempty"`

	BookingCreatedAt time.Time      `gorm:"column:booking_created_at;not null;default:now()" json:"booking_created_at"`
	BookingUpdatedAt time.Time      `gorm:"column:booking_updated_at;not null;default:now()" json:"booking_updated_at"`
	BookingDeletedAt gorm.DeletedAt `gorm:"column:booking_deleted_at;index" json:"-"`
}

func (BookingModel) TableName() string { return "bookings" }

func (m *BookingModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.BookingCreatedAt.IsZero() {
		m.BookingCreatedAt = now
	}
	m.BookingUpdatedAt = now
	return nil
}

func (m *BookingModel) BeforeUpdate(tx *gorm.DB) error {
	m.BookingUpdatedAt = time.Now()
	return nil
}

// Nights returns the chargeable night count: the stay duration in days,
// rounded up, never below 1. A same-day stay still bills one night.
func (m *BookingModel) Nights() int {
	d := m.BookingCheckOut.Sub(m.BookingCheckIn)
	nights := int(math.Ceil(d.Hours() / 24))
	if nights < 1 {
		nights = 1
	}
	return nights
}
