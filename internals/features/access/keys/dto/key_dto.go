// file: internals/features/access/keys/dto/key_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sukaza_backend/internals/features/access/keys/model"
)

type CreateKeyRequest struct {
	PropertyID uuid.UUID `json:"property_id" validate:"required"`
	Label      string    `json:"label" validate:"required,max=80"`
	Kind       *string   `json:"kind" validate:"omitempty,max=40"`
	TotalCount int       `json:"total_count" validate:"gte=1"`
}

func (r *CreateKeyRequest) ToModel() *model.KeyModel {
	return &model.KeyModel{
		KeyPropertyID:     r.PropertyID,
		KeyLabel:          strings.TrimSpace(r.Label),
		KeyKind:           r.Kind,
		KeyTotalCount:     r.TotalCount,
		KeyAvailableCount: r.TotalCount,
	}
}

type TransferRequest struct {
	HolderName string `json:"holder_name" validate:"required,max=120"`
}

type KeyTransferResponse struct {
	KeyTransferID string    `json:"key_transfer_id"`
	HolderName    string    `json:"holder_name"`
	Direction     string    `json:"direction"`
	CreatedAt     time.Time `json:"created_at"`
}

type KeyResponse struct {
	KeyID          string                `json:"key_id"`
	PropertyID     string                `json:"property_id"`
	Label          string                `json:"label"`
	Kind           *string               `json:"kind,omitempty"`
	TotalCount     int                   `json:"total_count"`
	AvailableCount int                   `json:"available_count"`
	Transfers      []KeyTransferResponse `json:"transfers,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
}

func FromModelKey(m *model.KeyModel) KeyResponse {
	resp := KeyResponse{
		KeyID:          m.KeyID.String(),
		PropertyID:     m.KeyPropertyID.String(),
		Label:          m.KeyLabel,
		Kind:           m.KeyKind,
		TotalCount:     m.KeyTotalCount,
		AvailableCount: m.KeyAvailableCount,
		CreatedAt:      m.KeyCreatedAt,
	}
	for i := range m.Transfers {
		t := &m.Transfers[i]
		resp.Transfers = append(resp.Transfers, KeyTransferResponse{
			KeyTransferID: t.KeyTransferID.String(),
			HolderName:    t.KeyTransferHolderName,
			Direction:     string(t.KeyTransferDirection),
			CreatedAt:     t.KeyTransferCreatedAt,
		})
	}
	return resp
}

func FromModelKeys(ms []model.KeyModel) []KeyResponse {
	out := make([]KeyResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModelKey(&ms[i]))
	}
	return out
}
