// file: internals/features/vendors/dto/vendor_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "sukaza_backend/internals/features/vendors/model"
)

type CreateVendorRequest struct {
	VendorName    string  `json:"vendor_name" validate:"required,max=120"`
	VendorService *string `json:"vendor_service" validate:"omitempty,max=120"`
	VendorEmail   *string `json:"vendor_email" validate:"omitempty,email"`
	VendorPhone   *string `json:"vendor_phone" validate:"omitempty,max=40"`
	VendorNotes   *string `json:"vendor_notes"`
}

func (r *CreateVendorRequest) ToModel() *model.VendorModel {
	return &model.VendorModel{
		VendorName:     strings.TrimSpace(r.VendorName),
		VendorService:  r.VendorService,
		VendorEmail:    r.VendorEmail,
		VendorPhone:    r.VendorPhone,
		VendorNotes:    r.VendorNotes,
		VendorIsActive: true,
	}
}

type PatchVendorRequest struct {
	VendorName     *string `json:"vendor_name" validate:"omitempty,max=120"`
	VendorService  *string `json:"vendor_service" validate:"omitempty,max=120"`
	VendorEmail    *string `json:"vendor_email" validate:"omitempty,email"`
	VendorPhone    *string `json:"vendor_phone" validate:"omitempty,max=40"`
	VendorNotes    *string `json:"vendor_notes"`
	VendorIsActive *bool   `json:"vendor_is_active"`
}

func (r *PatchVendorRequest) ApplyTo(m *model.VendorModel) {
	if r.VendorName != nil {
		m.VendorName = strings.TrimSpace(*r.VendorName)
	}
	if r.VendorService != nil {
		m.VendorService = r.VendorService
	}
	if r.VendorEmail != nil {
		m.VendorEmail = r.VendorEmail
	}
	if r.VendorPhone != nil {
		m.VendorPhone = r.VendorPhone
	}
	if r.VendorNotes != nil {
		m.VendorNotes = r.VendorNotes
	}
	if r.VendorIsActive != nil {
		m.VendorIsActive = *r.VendorIsActive
	}
}

// CreateCOIRequest carries the certificate fields; the cross-field rule on
// the validity window is enforced with gtfield.
type CreateCOIRequest struct {
	PolicyNumber   string          `json:"policy_number" validate:"required,max=80"`
	Carrier        string          `json:"carrier" validate:"required,max=120"`
	CoverageAmount decimal.Decimal `json:"coverage_amount"`
	ValidFrom      time.Time       `json:"valid_from" validate:"required"`
	ValidThrough   time.Time       `json:"valid_through" validate:"required,gtfield=ValidFrom"`
}

func (r *CreateCOIRequest) ToModel(vendorID uuid.UUID) *model.VendorCOIModel {
	return &model.VendorCOIModel{
		VendorCOIVendorID:       vendorID,
		VendorCOIPolicyNumber:   strings.TrimSpace(r.PolicyNumber),
		VendorCOICarrier:        strings.TrimSpace(r.Carrier),
		VendorCOICoverageAmount: r.CoverageAmount,
		VendorCOIValidFrom:      r.ValidFrom,
		VendorCOIValidThrough:   r.ValidThrough,
	}
}

type COIResponse struct {
	VendorCOIID    string          `json:"vendor_coi_id"`
	VendorID       string          `json:"vendor_id"`
	PolicyNumber   string          `json:"policy_number"`
	Carrier        string          `json:"carrier"`
	CoverageAmount decimal.Decimal `json:"coverage_amount"`
	ValidFrom      time.Time       `json:"valid_from"`
	ValidThrough   time.Time       `json:"valid_through"`
	DocumentID     *string         `json:"document_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

func FromModelCOI(m *model.VendorCOIModel) COIResponse {
	resp := COIResponse{
		VendorCOIID:    m.VendorCOIID.String(),
		VendorID:       m.VendorCOIVendorID.String(),
		PolicyNumber:   m.VendorCOIPolicyNumber,
		Carrier:        m.VendorCOICarrier,
		CoverageAmount: m.VendorCOICoverageAmount,
		ValidFrom:      m.VendorCOIValidFrom,
		ValidThrough:   m.VendorCOIValidThrough,
		CreatedAt:      m.VendorCOICreatedAt,
	}
	if m.VendorCOIDocumentID != nil {
		s := m.VendorCOIDocumentID.String()
		resp.DocumentID = &s
	}
	return resp
}

func FromModelCOIs(ms []model.VendorCOIModel) []COIResponse {
	out := make([]COIResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModelCOI(&ms[i]))
	}
	return out
}

type VendorResponse struct {
	VendorID       string        `json:"vendor_id"`
	VendorName     string        `json:"vendor_name"`
	VendorService  *string       `json:"vendor_service,omitempty"`
	VendorEmail    *string       `json:"vendor_email,omitempty"`
	VendorPhone    *string       `json:"vendor_phone,omitempty"`
	VendorNotes    *string       `json:"vendor_notes,omitempty"`
	VendorIsActive bool          `json:"vendor_is_active"`
	COIs           []COIResponse `json:"cois,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}

func FromModelVendor(m *model.VendorModel) VendorResponse {
	return VendorResponse{
		VendorID:       m.VendorID.String(),
		VendorName:     m.VendorName,
		VendorService:  m.VendorService,
		VendorEmail:    m.VendorEmail,
		VendorPhone:    m.VendorPhone,
		VendorNotes:    m.VendorNotes,
		VendorIsActive: m.VendorIsActive,
		COIs:           FromModelCOIs(m.COIs),
		CreatedAt:      m.VendorCreatedAt,
	}
}

func FromModelVendors(ms []model.VendorModel) []VendorResponse {
	out := make([]VendorResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModelVendor(&ms[i]))
	}
	return out
}
