// file: internals/features/vault/entry/model/vault_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =====================================================
// VaultEntryModel — one stored credential. The secret is
// AES-256-GCM ciphertext under a key derived from the
// caller's master password; the plaintext never lands in
// the database.
// =====================================================

type VaultEntryModel struct {
	VaultEntryID uuid.UUID `gorm:"column:vault_entry_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"vault_entry_id"`

	VaultEntryPropertyID *uuid.UUID `gorm:"column:vault_entry_property_id;type:uuid;index" json:"vault_entry_property_id,omitempty"`

	VaultEntryLabel    string  `gorm:"column:vault_entry_label;type:varchar(120);not null" json:"vault_entry_label"`
	VaultEntryUsername *string `gorm:"column:vault_entry_username;type:varchar(160)" json:"vault_entry_username,omitempty"`
	VaultEntryCategory *string `gorm:"column:vault_entry_category;type:varchar(60);index" json:"vault_entry_category,omitempty"`

	VaultEntryCiphertext []byte `gorm:"column:vault_entry_ciphertext;type:bytea;not null" json:"-"`
	VaultEntryNonce      []byte `gorm:"column:vault_entry_nonce;type:bytea;not null" json:"-"`
	VaultEntrySalt       []byte `gorm:"column:vault_entry_salt;type:bytea;not null" json:"-"`

	VaultEntryCreatedAt time.Time      `gorm:"column:vault_entry_created_at;not null;default:now()" json:"vault_entry_created_at"`
	VaultEntryUpdatedAt time.Time      `gorm:"column:vault_entry_updated_at;not null;default:now()" json:"vault_entry_updated_at"`
	VaultEntryDeletedAt gorm.DeletedAt `gorm:"column:vault_entry_deleted_at;index" json:"-"`
}

func (VaultEntryModel) TableName() string { return "vault_entries" }

func (m *VaultEntryModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.VaultEntryCreatedAt.IsZero() {
		m.VaultEntryCreatedAt = now
	}
	m.VaultEntryUpdatedAt = now
	return nil
}

func (m *VaultEntryModel) BeforeUpdate(tx *gorm.DB) error {
	m.VaultEntryUpdatedAt = time.Now()
	return nil
}

// =====================================================
// VaultSettingsModel — single row holding the bcrypt
// verifier for the master password. The password itself
// is never stored.
// =====================================================

type VaultSettingsModel struct {
	VaultSettingsID           uint      `gorm:"column:vault_settings_id;primaryKey;autoIncrement" json:"vault_settings_id"`
	VaultSettingsVerifierHash string    `gorm:"column:vault_settings_verifier_hash;type:text;not null" json:"-"`
	VaultSettingsUpdatedAt    time.Time `gorm:"column:vault_settings_updated_at;not null;default:now()" json:"vault_settings_updated_at"`
}

func (VaultSettingsModel) TableName() string { return "vault_settings" }
