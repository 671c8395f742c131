// file: internals/features/vault/entry/dto/vault_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sukaza_backend/internals/features/vault/entry/model"
)

type SetMasterPasswordRequest struct {
	// Required once a master password already exists.
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password" validate:"required,min=10"`
}

type CreateVaultEntryRequest struct {
	PropertyID *uuid.UUID `json:"property_id"`
	Label      string     `json:"label" validate:"required,max=120"`
	Username   *string    `json:"username" validate:"omitempty,max=160"`
	Category   *string    `json:"category" validate:"omitempty,max=60"`
	Secret     string     `json:"secret" validate:"required"`
}

func (r *CreateVaultEntryRequest) ToModel() *model.VaultEntryModel {
	return &model.VaultEntryModel{
		VaultEntryPropertyID: r.PropertyID,
		VaultEntryLabel:      strings.TrimSpace(r.Label),
		VaultEntryUsername:   r.Username,
		VaultEntryCategory:   r.Category,
	}
}

// VaultEntryResponse never carries the secret; Reveal returns it separately.
type VaultEntryResponse struct {
	VaultEntryID string    `json:"vault_entry_id"`
	PropertyID   *string   `json:"property_id,omitempty"`
	Label        string    `json:"label"`
	Username     *string   `json:"username,omitempty"`
	Category     *string   `json:"category,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromModelVaultEntry(m *model.VaultEntryModel) VaultEntryResponse {
	resp := VaultEntryResponse{
		VaultEntryID: m.VaultEntryID.String(),
		Label:        m.VaultEntryLabel,
		Username:     m.VaultEntryUsername,
		Category:     m.VaultEntryCategory,
		CreatedAt:    m.VaultEntryCreatedAt,
		UpdatedAt:    m.VaultEntryUpdatedAt,
	}
	if m.VaultEntryPropertyID != nil {
		s := m.VaultEntryPropertyID.String()
		resp.PropertyID = &s
	}
	return resp
}

func FromModelVaultEntries(ms []model.VaultEntryModel) []VaultEntryResponse {
	out := make([]VaultEntryResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModelVaultEntry(&ms[i]))
	}
	return out
}

type RevealResponse struct {
	VaultEntryID string  `json:"vault_entry_id"`
	Label        string  `json:"label"`
	Username     *string `json:"username,omitempty"`
	Secret       string  `json:"secret"`
}
