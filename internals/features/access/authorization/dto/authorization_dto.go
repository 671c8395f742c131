// file: internals/features/access/authorization/dto/authorization_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sukaza_backend/internals/features/access/authorization/model"
)

type CreateAuthorizationRequest struct {
	PropertyID   uuid.UUID `json:"property_id" validate:"required"`
	PersonName   string    `json:"person_name" validate:"required,max=120"`
	Kind         string    `json:"kind" validate:"required,oneof=vendor guest staff emergency"`
	ValidFrom    time.Time `json:"valid_from" validate:"required"`
	ValidThrough time.Time `json:"valid_through" validate:"required,gtfield=ValidFrom"`
	Notes        *string   `json:"notes"`
}

func (r *CreateAuthorizationRequest) ToModel() *model.AccessAuthorizationModel {
	return &model.AccessAuthorizationModel{
		AccessAuthorizationPropertyID:   r.PropertyID,
		AccessAuthorizationPersonName:   strings.TrimSpace(r.PersonName),
		AccessAuthorizationKind:         model.AccessKind(r.Kind),
		AccessAuthorizationValidFrom:    r.ValidFrom,
		AccessAuthorizationValidThrough: r.ValidThrough,
		AccessAuthorizationNotes:        r.Notes,
	}
}

type PatchAuthorizationRequest struct {
	PersonName   *string    `json:"person_name" validate:"omitempty,max=120"`
	Kind         *string    `json:"kind" validate:"omitempty,oneof=vendor guest staff emergency"`
	ValidFrom    *time.Time `json:"valid_from"`
	ValidThrough *time.Time `json:"valid_through"`
	Notes        *string    `json:"notes"`
}

func (r *PatchAuthorizationRequest) ApplyTo(m *model.AccessAuthorizationModel) {
	if r.PersonName != nil {
		m.AccessAuthorizationPersonName = strings.TrimSpace(*r.PersonName)
	}
	if r.Kind != nil {
		m.AccessAuthorizationKind = model.AccessKind(*r.Kind)
	}
	if r.ValidFrom != nil {
		m.AccessAuthorizationValidFrom = *r.ValidFrom
	}
	if r.ValidThrough != nil {
		m.AccessAuthorizationValidThrough = *r.ValidThrough
	}
	if r.Notes != nil {
		m.AccessAuthorizationNotes = r.Notes
	}
}

type AuthorizationResponse struct {
	AccessAuthorizationID string     `json:"access_authorization_id"`
	PropertyID            string     `json:"property_id"`
	PersonName            string     `json:"person_name"`
	Kind                  string     `json:"kind"`
	ValidFrom             time.Time  `json:"valid_from"`
	ValidThrough          time.Time  `json:"valid_through"`
	Notes                 *string    `json:"notes,omitempty"`
	RevokedAt             *time.Time `json:"revoked_at,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
}

func FromModelAuthorization(m *model.AccessAuthorizationModel) AuthorizationResponse {
	return AuthorizationResponse{
		AccessAuthorizationID: m.AccessAuthorizationID.String(),
		PropertyID:            m.AccessAuthorizationPropertyID.String(),
		PersonName:            m.AccessAuthorizationPersonName,
		Kind:                  string(m.AccessAuthorizationKind),
		ValidFrom:             m.AccessAuthorizationValidFrom,
		ValidThrough:          m.AccessAuthorizationValidThrough,
		Notes:                 m.AccessAuthorizationNotes,
		RevokedAt:             m.AccessAuthorizationRevokedAt,
		CreatedAt:             m.AccessAuthorizationCreatedAt,
	}
}

func FromModelAuthorizations(ms []model.AccessAuthorizationModel) []AuthorizationResponse {
	out := make([]AuthorizationResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModelAuthorization(&ms[i]))
	}
	return out
}
