// file: internals/features/documents/document/model/document_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type DocumentCategory string

const (
	DocContract DocumentCategory = "contract"
	DocService  DocumentCategory = "service"
	DocCOI      DocumentCategory = "coi"
	DocManual   DocumentCategory = "manual"
	DocOther    DocumentCategory = "other"
)

// =====================================================
// DocumentModel — stored file metadata; the bytes live
// on OSS under StorageKey.
// =====================================================

type DocumentModel struct {
	DocumentID uuid.UUID `gorm:"column:document_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"document_id"`

	DocumentPropertyID *uuid.UUID `gorm:"column:document_property_id;type:uuid;index" json:"document_property_id,omitempty"`

	DocumentFileName    string `gorm:"column:document_file_name;type:varchar(255);not null" json:"document_file_name"`
	DocumentFileSize    int64  `gorm:"column:document_file_size;not null;default:0" json:"document_file_size"`
	DocumentContentType string `gorm:"column:document_content_type;type:varchar(120);not null" json:"document_content_type"`

	DocumentCategory     DocumentCategory `gorm:"column:document_category;type:varchar(20);not null;default:'other';index" json:"document_category"`
	DocumentContractType *string          `gorm:"column:document_contract_type;type:varchar(80);index" json:"document_contract_type,omitempty"`
	DocumentTags         pq.StringArray   `gorm:"column:document_tags;type:text[]" json:"document_tags"`

	DocumentStorageKey string `gorm:"column:document_storage_key;type:text;not null" json:"document_storage_key"`
	DocumentPublicURL  string `gorm:"column:document_public_url;type:text;not null" json:"document_public_url"`

	// Current version number; version rows keep the history.
	DocumentVersion int `gorm:"column:document_version;not null;default:1" json:"document_version"`

	Versions []DocumentVersionModel `gorm:"foreignKey:DocumentVersionDocumentID;references:DocumentID;constraint:OnDelete:CASCADE" json:"versions,omitempty"`

	DocumentCreatedAt time.Time      `gorm:"column:document_created_at;not null;default:now()" json:"document_created_at"`
	DocumentUpdatedAt time.Time      `gorm:"column:document_updated_at;not null;default:now()" json:"document_updated_at"`
	DocumentDeletedAt gorm.DeletedAt `gorm:"column:document_deleted_at;index" json:"-"`
}

func (DocumentModel) TableName() string { return "documents" }

func (m *DocumentModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.DocumentCreatedAt.IsZero() {
		m.DocumentCreatedAt = now
	}
	m.DocumentUpdatedAt = now
	if m.DocumentVersion == 0 {
		m.DocumentVersion = 1
	}
	return nil
}

func (m *DocumentModel) BeforeUpdate(tx *gorm.DB) error {
	m.DocumentUpdatedAt = time.Now()
	return nil
}

// =====================================================
// DocumentVersionModel — one row per uploaded revision
// =====================================================

type DocumentVersionModel struct {
	DocumentVersionID         uuid.UUID `gorm:"column:document_version_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"document_version_id"`
	DocumentVersionDocumentID uuid.UUID `gorm:"column:document_version_document_id;type:uuid;not null;index;uniqueIndex:uniq_document_version,priority:1" json:"document_version_document_id"`

	DocumentVersionNumber int `gorm:"column:document_version_number;not null;uniqueIndex:uniq_document_version,priority:2" json:"document_version_number"`

	DocumentVersionFileSize    int64  `gorm:"column:document_version_file_size;not null;default:0" json:"document_version_file_size"`
	DocumentVersionContentType string `gorm:"column:document_version_content_type;type:varchar(120);not null" json:"document_version_content_type"`
	DocumentVersionStorageKey  string `gorm:"column:document_version_storage_key;type:text;not null" json:"document_version_storage_key"`
	DocumentVersionPublicURL   string `gorm:"column:document_version_public_url;type:text;not null" json:"document_version_public_url"`

	DocumentVersionCreatedAt time.Time `gorm:"column:document_version_created_at;not null;default:now()" json:"document_version_created_at"`
}

func (DocumentVersionModel) TableName() string { return "document_versions" }
