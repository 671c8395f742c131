// file: internals/features/bookings/booking/dto/booking_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	model "sukaza_backend/internals/features/bookings/booking/model"
)

type CreateBookingRequest struct {
	BookingPropertyID uuid.UUID `json:"booking_property_id" validate:"required"`

	BookingGuestName  string  `json:"booking_guest_name" validate:"required,max=120"`
	BookingGuestEmail *string `json:"booking_guest_email" validate:"omitempty,email"`
	BookingGuestPhone *string `json:"booking_guest_phone" validate:"omitempty,max=40"`
	BookingGuestCount int     `json:"booking_guest_count" validate:"gte=1"`

	BookingGuestDetails datatypes.JSON `json:"booking_guest_details"`

	BookingCheckIn  time.Time `json:"booking_check_in" validate:"required"`
	BookingCheckOut time.Time `json:"booking_check_out" validate:"required"`

	BookingBaseAmount   decimal.Decimal `json:"booking_base_amount"`
	BookingCleaningFee  decimal.Decimal `json:"booking_cleaning_fee"`
	BookingExtrasAmount decimal.Decimal `json:"booking_extras_amount"`
	BookingTaxAmount    decimal.Decimal `json:"booking_tax_amount"`

	BookingBillTemplateID *uuid.UUID `json:"booking_bill_template_id"`
	BookingNotes          *string    `json:"booking_notes"`
}

func (r *CreateBookingRequest) ToModel() *model.BookingModel {
	return &model.BookingModel{
		BookingPropertyID:     r.BookingPropertyID,
		BookingGuestName:      strings.TrimSpace(r.BookingGuestName),
		BookingGuestEmail:     r.BookingGuestEmail,
		BookingGuestPhone:     r.BookingGuestPhone,
		BookingGuestCount:     r.BookingGuestCount,
		BookingGuestDetails:   r.BookingGuestDetails,
		BookingCheckIn:        r.BookingCheckIn,
		BookingCheckOut:       r.BookingCheckOut,
		BookingBaseAmount:     r.BookingBaseAmount,
		BookingCleaningFee:    r.BookingCleaningFee,
		BookingExtrasAmount:   r.BookingExtrasAmount,
		BookingTaxAmount:      r.BookingTaxAmount,
		BookingBillTemplateID: r.BookingBillTemplateID,
		BookingStatus:         model.BookingPending,
		BookingNotes:          r.BookingNotes,
	}
}

type PatchBookingRequest struct {
	BookingGuestName  *string `json:"booking_guest_name" validate:"omitempty,max=120"`
	BookingGuestEmail *string `json:"booking_guest_email" validate:"omitempty,email"`
	BookingGuestPhone *string `json:"booking_guest_phone" validate:"omitempty,max=40"`
	BookingGuestCount *int    `json:"booking_guest_count" validate:"omitempty,gte=1"`

	BookingGuestDetails datatypes.JSON `json:"booking_guest_details"`

	BookingCheckIn  *time.Time `json:"booking_check_in"`
	BookingCheckOut *time.Time `json:"booking_check_out"`

	BookingBaseAmount   *decimal.Decimal `json:"booking_base_amount"`
	BookingCleaningFee  *decimal.Decimal `json:"booking_cleaning_fee"`
	BookingExtrasAmount *decimal.Decimal `json:"booking_extras_amount"`
	BookingTaxAmount    *decimal.Decimal `json:"booking_tax_amount"`

	BookingBillTemplateID *uuid.UUID `json:"booking_bill_template_id"`
	BookingNotes          *string    `json:"booking_notes"`
}

func (r *PatchBookingRequest) ApplyTo(m *model.BookingModel) {
	if r.BookingGuestName != nil {
		m.BookingGuestName = strings.TrimSpace(*r.BookingGuestName)
	}
	if r.BookingGuestEmail != nil {
		m.BookingGuestEmail = r.BookingGuestEmail
	}
	if r.BookingGuestPhone != nil {
		m.BookingGuestPhone = r.BookingGuestPhone
	}
	if r.BookingGuestCount != nil {
		m.BookingGuestCount = *r.BookingGuestCount
	}
	if len(r.BookingGuestDetails) > 0 {
		m.BookingGuestDetails = r.BookingGuestDetails
	}
	if r.BookingCheckIn != nil {
		m.BookingCheckIn = *r.BookingCheckIn
	}
	if r.BookingCheckOut != nil {
		m.BookingCheckOut = *r.BookingCheckOut
	}
	if r.BookingBaseAmount != nil {
		m.BookingBaseAmount = *r.BookingBaseAmount
	}
	if r.BookingCleaningFee != nil {
		m.BookingCleaningFee = *r.BookingCleaningFee
	}
	if r.BookingExtrasAmount != nil {
		m.BookingExtrasAmount = *r.BookingExtrasAmount
	}
	if r.BookingTaxAmount != nil {
		m.BookingTaxAmount = *r.BookingTaxAmount
	}
	if r.BookingBillTemplateID != nil {
		m.BookingBillTemplateID = r.BookingBillTemplateID
	}
	if r.BookingNotes != nil {
		m.BookingNotes = r.BookingNotes
	}
}

type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed checked_in completed cancelled"`
}

type BookingResponse struct {
	BookingID          string          `json:"booking_id"`
	BookingPropertyID  string          `json:"booking_property_id"`
	BookingGuestName   string          `json:"booking_guest_name"`
	BookingGuestEmail  *string         `json:"booking_guest_email,omitempty"`
	BookingGuestPhone  *string         `json:"booking_guest_phone,omitempty"`
	BookingGuestCount  int             `json:"booking_guest_count"`
	BookingGuestDetails datatypes.JSON `json:"booking_guest_details,omitempty"`
	BookingCheckIn     time.Time       `json:"booking_check_in"`
	BookingCheckOut    time.Time       `json:"booking_check_out"`
	Nights             int             `json:"nights"`
	BookingBaseAmount   decimal.Decimal `json:"booking_base_amount"`
	BookingCleaningFee  decimal.Decimal `json:"booking_cleaning_fee"`
	BookingExtrasAmount decimal.Decimal `json:"booking_extras_amount"`
	BookingTaxAmount    decimal.Decimal `json:"booking_tax_amount"`
	BillTemplateID     *string         `json:"booking_bill_template_id,omitempty"`
	BookingStatus      string          `json:"booking_status"`
	BookingNotes       *string         `json:"booking_notes,omitempty"`
}

func FromModelBooking(m *model.BookingModel) BookingResponse {
	resp := BookingResponse{
		BookingID:          m.BookingID.String(),
		BookingPropertyID:  m.BookingPropertyID.String(),
		BookingGuestName:   m.BookingGuestName,
		BookingGuestEmail:  m.BookingGuestEmail,
		BookingGuestPhone:  m.BookingGuestPhone,
		BookingGuestCount:  m.BookingGuestCount,
		BookingGuestDetails: m.BookingGuestDetails,
		BookingCheckIn:     m.BookingCheckIn,
		BookingCheckOut:    m.BookingCheckOut,
		Nights:             m.Nights(),
		BookingBaseAmount:   m.BookingBaseAmount,
		BookingCleaningFee:  m.BookingCleaningFee,
		BookingExtrasAmount: m.BookingExtrasAmount,
		BookingTaxAmount:    m.BookingTaxAmount,
		BookingStatus:      string(m.BookingStatus),
		BookingNotes:       m.BookingNotes,
	}
	if m.BookingBillTemplateID != nil {
		s := m.BookingBillTemplateID.String()
		resp.BillTemplateID = &s
	}
	return resp
}

func FromModelBookings(ms []model.BookingModel) []BookingResponse {
	out := make([]BookingResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModelBooking(&ms[i]))
	}
	return out
}
