// file: internals/features/properties/property/dto/property_dto.go
package dto

import (
	"strings"

	model "sukaza_backend/internals/features/properties/property/model"
)

type CreatePropertyRequest struct {
	PropertyName      string   `json:"property_name" validate:"required,max=120"`
	PropertyAddress   string   `json:"property_address" validate:"required"`
	PropertyUnit      *string  `json:"property_unit"`
	PropertyCity      string   `json:"property_city" validate:"required,max=80"`
	PropertyState     string   `json:"property_state" validate:"required,max=40"`
	PropertyZip       string   `json:"property_zip" validate:"required,max=20"`
	PropertyBedrooms  int      `json:"property_bedrooms" validate:"gte=0"`
	PropertyBathrooms float64  `json:"property_bathrooms" validate:"gte=0"`
	PropertyMaxGuests int      `json:"property_max_guests" validate:"gte=0"`
	PropertyNotes     *string  `json:"property_notes"`
	Highlights        []string `json:"highlights" validate:"dive,max=80"`
}

func (r *CreatePropertyRequest) ToModel() *model.PropertyModel {
	m := &model.PropertyModel{
		PropertyName:      strings.TrimSpace(r.PropertyName),
		PropertyAddress:   strings.TrimSpace(r.PropertyAddress),
		PropertyUnit:      r.PropertyUnit,
		PropertyCity:      strings.TrimSpace(r.PropertyCity),
		PropertyState:     strings.TrimSpace(r.PropertyState),
		PropertyZip:       strings.TrimSpace(r.PropertyZip),
		PropertyBedrooms:  r.PropertyBedrooms,
		PropertyBathrooms: r.PropertyBathrooms,
		PropertyMaxGuests: r.PropertyMaxGuests,
		PropertyNotes:     r.PropertyNotes,
		PropertyIsActive:  true,
	}
	return m
}

type PatchPropertyRequest struct {
	PropertyName      *string  `json:"property_name" validate:"omitempty,max=120"`
	PropertyAddress   *string  `json:"property_address"`
	PropertyUnit      *string  `json:"property_unit"`
	PropertyCity      *string  `json:"property_city" validate:"omitempty,max=80"`
	PropertyState     *string  `json:"property_state" validate:"omitempty,max=40"`
	PropertyZip       *string  `json:"property_zip" validate:"omitempty,max=20"`
	PropertyBedrooms  *int     `json:"property_bedrooms" validate:"omitempty,gte=0"`
	PropertyBathrooms *float64 `json:"property_bathrooms" validate:"omitempty,gte=0"`
	PropertyMaxGuests *int     `json:"property_max_guests" validate:"omitempty,gte=0"`
	PropertyNotes     *string  `json:"property_notes"`
	PropertyIsActive  *bool    `json:"property_is_active"`
}

func (r *PatchPropertyRequest) ApplyTo(m *model.PropertyModel) {
	if r.PropertyName != nil {
		m.PropertyName = strings.TrimSpace(*r.PropertyName)
	}
	if r.PropertyAddress != nil {
		m.PropertyAddress = strings.TrimSpace(*r.PropertyAddress)
	}
	if r.PropertyUnit != nil {
		m.PropertyUnit = r.PropertyUnit
	}
	if r.PropertyCity != nil {
		m.PropertyCity = strings.TrimSpace(*r.PropertyCity)
	}
	if r.PropertyState != nil {
		m.PropertyState = strings.TrimSpace(*r.PropertyState)
	}
	if r.PropertyZip != nil {
		m.PropertyZip = strings.TrimSpace(*r.PropertyZip)
	}
	if r.PropertyBedrooms != nil {
		m.PropertyBedrooms = *r.PropertyBedrooms
	}
	if r.PropertyBathrooms != nil {
		m.PropertyBathrooms = *r.PropertyBathrooms
	}
	if r.PropertyMaxGuests != nil {
		m.PropertyMaxGuests = *r.PropertyMaxGuests
	}
	if r.PropertyNotes != nil {
		m.PropertyNotes = r.PropertyNotes
	}
	if r.PropertyIsActive != nil {
		m.PropertyIsActive = *r.PropertyIsActive
	}
}

type ReplaceHighlightsRequest struct {
	Highlights []string `json:"highlights" validate:"required,dive,max=80"`
}

type PropertyResponse struct {
	PropertyID            string   `json:"property_id"`
	PropertyName          string   `json:"property_name"`
	PropertyAddress       string   `json:"property_address"`
	PropertyUnit          *string  `json:"property_unit,omitempty"`
	PropertyCity          string   `json:"property_city"`
	PropertyState         string   `json:"property_state"`
	PropertyZip           string   `json:"property_zip"`
	PropertyBedrooms      int      `json:"property_bedrooms"`
	PropertyBathrooms     float64  `json:"property_bathrooms"`
	PropertyMaxGuests     int      `json:"property_max_guests"`
	PropertyNotes         *string  `json:"property_notes,omitempty"`
	PropertyPhotoURL      *string  `json:"property_photo_url,omitempty"`
	PropertyPhotoThumbURL *string  `json:"property_photo_thumb_url,omitempty"`
	PropertyIsActive      bool     `json:"property_is_active"`
	Highlights            []string `json:"highlights"`
}

func FromModelProperty(m *model.PropertyModel) PropertyResponse {
	resp := PropertyResponse{
		PropertyID:            m.PropertyID.String(),
		PropertyName:          m.PropertyName,
		PropertyAddress:       m.PropertyAddress,
		PropertyUnit:          m.PropertyUnit,
		PropertyCity:          m.PropertyCity,
		PropertyState:         m.PropertyState,
		PropertyZip:           m.PropertyZip,
		PropertyBedrooms:      m.PropertyBedrooms,
		PropertyBathrooms:     m.PropertyBathrooms,
		PropertyMaxGuests:     m.PropertyMaxGuests,
		PropertyNotes:         m.PropertyNotes,
		PropertyPhotoURL:      m.PropertyPhotoURL,
		PropertyPhotoThumbURL: m.PropertyPhotoThumbURL,
		PropertyIsActive:      m.PropertyIsActive,
		Highlights:            make([]string, 0, len(m.Highlights)),
	}
	for i := range m.Highlights {
		resp.Highlights = append(resp.Highlights, m.Highlights[i].PropertyHighlightLabel)
	}
	return resp
}

func FromModelProperties(ms []model.PropertyModel) []PropertyResponse {
	out := make([]PropertyResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModelProperty(&ms[i]))
	}
	return out
}
