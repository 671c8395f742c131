// file: internals/features/documents/document/dto/document_dto.go
package dto

import (
	"time"

	model "sukaza_backend/internals/features/documents/document/model"
)

type PatchDocumentRequest struct {
	DocumentFileName     *string  `json:"document_file_name" validate:"omitempty,max=255"`
	DocumentCategory     *string  `json:"document_category" validate:"omitempty,oneof=contract service coi manual other"`
	DocumentContractType *string  `json:"document_contract_type" validate:"omitempty,max=80"`
	DocumentTags         []string `json:"document_tags" validate:"omitempty,dive,max=60"`
}

func (r *PatchDocumentRequest) ApplyTo(m *model.DocumentModel) {
	if r.DocumentFileName != nil {
		m.DocumentFileName = *r.DocumentFileName
	}
	if r.DocumentCategory != nil {
		m.DocumentCategory = model.DocumentCategory(*r.DocumentCategory)
	}
	if r.DocumentContractType != nil {
		m.DocumentContractType = r.DocumentContractType
	}
	if r.DocumentTags != nil {
		m.DocumentTags = r.DocumentTags
	}
}

type DocumentVersionResponse struct {
	DocumentVersionID string    `json:"document_version_id"`
	VersionNumber     int       `json:"version_number"`
	FileSize          int64     `json:"file_size"`
	ContentType       string    `json:"content_type"`
	PublicURL         string    `json:"public_url"`
	CreatedAt         time.Time `json:"created_at"`
}

type DocumentResponse struct {
	DocumentID           string                    `json:"document_id"`
	PropertyID           *string                   `json:"document_property_id,omitempty"`
	FileName             string                    `json:"file_name"`
	FileSize             int64                     `json:"file_size"`
	ContentType          string                    `json:"content_type"`
	Category             string                    `json:"category"`
	ContractType         *string                   `json:"contract_type,omitempty"`
	Tags                 []string                  `json:"tags"`
	PublicURL            string                    `json:"public_url"`
	Version              int                       `json:"version"`
	Versions             []DocumentVersionResponse `json:"versions,omitempty"`
	CreatedAt            time.Time                 `json:"created_at"`
	UpdatedAt            time.Time                 `json:"updated_at"`
}

func FromModelDocument(m *model.DocumentModel) DocumentResponse {
	resp := DocumentResponse{
		DocumentID:   m.DocumentID.String(),
		FileName:     m.DocumentFileName,
		FileSize:     m.DocumentFileSize,
		ContentType:  m.DocumentContentType,
		Category:     string(m.DocumentCategory),
		ContractType: m.DocumentContractType,
		Tags:         append([]string(nil), m.DocumentTags...),
		PublicURL:    m.DocumentPublicURL,
		Version:      m.DocumentVersion,
		CreatedAt:    m.DocumentCreatedAt,
		UpdatedAt:    m.DocumentUpdatedAt,
	}
	if m.DocumentPropertyID != nil {
		s := m.DocumentPropertyID.String()
		resp.PropertyID = &s
	}
	for i := range m.Versions {
		v := &m.Versions[i]
		resp.Versions = append(resp.Versions, DocumentVersionResponse{
			DocumentVersionID: v.DocumentVersionID.String(),
			VersionNumber:     v.DocumentVersionNumber,
			FileSize:          v.DocumentVersionFileSize,
			ContentType:       v.DocumentVersionContentType,
			PublicURL:         v.DocumentVersionPublicURL,
			CreatedAt:         v.DocumentVersionCreatedAt,
		})
	}
	return resp
}

func FromModelDocuments(ms []model.DocumentModel) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModelDocument(&ms[i]))
	}
	return out
}
