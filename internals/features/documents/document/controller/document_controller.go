// file: internals/features/documents/document/controller/document_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sukaza_backend/internals/constants"
	dto "sukaza_backend/internals/features/documents/document/dto"
	model "sukaza_backend/internals/features/documents/document/model"
	service "sukaza_backend/internals/features/documents/document/service"
	helper "sukaza_backend/internals/helpers"
	authHelper "sukaza_backend/internals/helpers/auth"
	"sukaza_backend/internals/helpers/cache"
	ossHelper "sukaza_backend/internals/helpers/oss"
)

type DocumentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Cache     *cache.Cache
}

func NewDocumentController(db *gorm.DB, c *cache.Cache) *DocumentController {
	c.Declare("document.upload", "documents.list:*", "documents.tree:*")
	c.Declare("document.patch", "documents.list:*", "documents.tree:*")
	c.Declare("document.delete", "documents.list:*", "documents.tree:*")
	return &DocumentController{DB: db, Validator: validator.New(), Cache: c}
}

var documentSortWhitelist = map[string]string{
	"name":       "document_file_name",
	"size":       "document_file_size",
	"created_at": "document_created_at",
}

func parseTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func validCategory(s string) bool {
	switch model.DocumentCategory(s) {
	case model.DocContract, model.DocService, model.DocCOI, model.DocManual, model.DocOther:
		return true
	}
	return false
}

// =====================================================
// GET /api/documents
// =====================================================
func (ctrl *DocumentController) List(c *fiber.Ctx) error {
	cacheKey := "documents.list:" + string(c.Request().URI().QueryString())
	if cached, ok := ctrl.Cache.Get(cacheKey); ok {
		return helper.Success(c, "Documents fetched successfully", cached)
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	orderClause, err := p.SafeOrderClause(documentSortWhitelist, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid sort field")
	}

	q := ctrl.DB.Model(&model.DocumentModel{})
	q = ctrl.applyFilters(c, q)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count documents")
	}

	var docs []model.DocumentModel
	if err := q.
		Order(orderClause).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&docs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch documents")
	}

	payload := fiber.Map{
		"items": dto.FromModelDocuments(docs),
		"meta":  helper.BuildMeta(total, p),
	}
	ctrl.Cache.Set(cacheKey, payload)
	return helper.Success(c, "Documents fetched successfully", payload)
}

// =====================================================
// GET /api/documents/tree
// Virtual folders derived from the current document set;
// read-only over its inputs.
// =====================================================
func (ctrl *DocumentController) Tree(c *fiber.Ctx) error {
	category := c.Query("category", string(model.DocOther))
	if !validCategory(category) {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid category")
	}

	cacheKey := "documents.tree:" + category + ":" + c.Query("property_id")
	if cached, ok := ctrl.Cache.Get(cacheKey); ok {
		return helper.Success(c, "Document tree fetched successfully", cached)
	}

	q := ctrl.DB.Model(&model.DocumentModel{}).
		Where("document_category = ?", category)
	if propertyID := c.Query("property_id"); propertyID != "" {
		pid, perr := uuid.Parse(propertyID)
		if perr != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid property_id")
		}
		q = q.Where("document_property_id = ?", pid)
	}

	var docs []model.DocumentModel
	if err := q.Order("document_file_name ASC").Find(&docs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch documents")
	}

	folders := service.BuildTree(docs, model.DocumentCategory(category))
	ctrl.Cache.Set(cacheKey, folders)
	return helper.Success(c, "Document tree fetched successfully", folders)
}

// =====================================================
// GET /api/documents/:id
// =====================================================
func (ctrl *DocumentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid document ID")
	}

	var doc model.DocumentModel
	if err := ctrl.DB.
		Preload("Versions", func(db *gorm.DB) *gorm.DB {
			return db.Order("document_version_number DESC")
		}).
		First(&doc, "document_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Document not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch document")
	}

	return helper.Success(c, "Document fetched successfully", dto.FromModelDocument(&doc))
}

// =====================================================
// POST /api/documents  (multipart: file + metadata fields)
// OSS put first, row insert second; the object is removed
// again if the insert fails.
// =====================================================
func (ctrl *DocumentController) Upload(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageDocuments); err != nil {
		return err
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File is required")
	}

	category := c.FormValue("category", string(model.DocOther))
	if !validCategory(category) {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid category")
	}

	doc := model.DocumentModel{
		DocumentFileName: fh.Filename,
		DocumentFileSize: fh.Size,
		DocumentCategory: model.DocumentCategory(category),
		DocumentTags:     parseTags(c.FormValue("tags")),
	}
	if ct := strings.TrimSpace(c.FormValue("contract_type")); ct != "" {
		doc.DocumentContractType = &ct
	}
	if propertyID := c.FormValue("property_id"); propertyID != "" {
		pid, perr := uuid.Parse(propertyID)
		if perr != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid property_id")
		}
		doc.DocumentPropertyID = &pid
	}

	svc, err := ossHelper.NewOSSServiceFromEnv("documents")
	if err != nil {
		log.Printf("[DOCUMENT] OSS init failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Storage is not configured")
	}

	key, contentType, err := svc.UploadFromFormFileToDir(c.Context(), category, fh)
	if err != nil {
		log.Printf("[DOCUMENT] upload failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to upload document")
	}
	doc.DocumentStorageKey = key
	doc.DocumentContentType = contentType
	doc.DocumentPublicURL = svc.PublicURL(key)

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&doc).Error; err != nil {
			return err
		}
		return tx.Create(&model.DocumentVersionModel{
			DocumentVersionDocumentID:  doc.DocumentID,
			DocumentVersionNumber:      1,
			DocumentVersionFileSize:    doc.DocumentFileSize,
			DocumentVersionContentType: doc.DocumentContentType,
			DocumentVersionStorageKey:  doc.DocumentStorageKey,
			DocumentVersionPublicURL:   doc.DocumentPublicURL,
		}).Error
	}); err != nil {
		// Compensating delete: do not leave an orphaned object behind.
		_ = svc.DeleteObject(c.Context(), key)
		log.Printf("[DOCUMENT] insert failed, object %s removed: %v", key, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save document")
	}

	ctrl.Cache.Invalidate("document.upload")
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Document uploaded successfully", dto.FromModelDocument(&doc))
}

// =====================================================
// POST /api/documents/:id/versions  (multipart: file)
// Re-upload under the same document; bumps the current
// version pointer and keeps the old revision row.
// =====================================================
func (ctrl *DocumentController) UploadVersion(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageDocuments); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid document ID")
	}

	var doc model.DocumentModel
	if err := ctrl.DB.First(&doc, "document_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Document not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch document")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File is required")
	}

	svc, err := ossHelper.NewOSSServiceFromEnv("documents")
	if err != nil {
		log.Printf("[DOCUMENT] OSS init failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Storage is not configured")
	}

	key, contentType, err := svc.UploadFromFormFileToDir(c.Context(), string(doc.DocumentCategory), fh)
	if err != nil {
		log.Printf("[DOCUMENT] version upload failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to upload document")
	}
	publicURL := svc.PublicURL(key)
	nextVersion := doc.DocumentVersion + 1

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&model.DocumentVersionModel{
			DocumentVersionDocumentID:  doc.DocumentID,
			DocumentVersionNumber:      nextVersion,
			DocumentVersionFileSize:    fh.Size,
			DocumentVersionContentType: contentType,
			DocumentVersionStorageKey:  key,
			DocumentVersionPublicURL:   publicURL,
		}).Error; err != nil {
			return err
		}
		doc.DocumentFileName = fh.Filename
		doc.DocumentFileSize = fh.Size
		doc.DocumentContentType = contentType
		doc.DocumentStorageKey = key
		doc.DocumentPublicURL = publicURL
		doc.DocumentVersion = nextVersion
		return tx.Save(&doc).Error
	}); err != nil {
		_ = svc.DeleteObject(c.Context(), key)
		log.Printf("[DOCUMENT] version insert failed, object %s removed: %v", key, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save document version")
	}

	ctrl.Cache.Invalidate("document.upload")
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Document version uploaded successfully", dto.FromModelDocument(&doc))
}

// =====================================================
// PATCH /api/documents/:id — metadata only
// =====================================================
func (ctrl *DocumentController) Patch(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageDocuments); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid document ID")
	}

	var req dto.PatchDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var doc model.DocumentModel
	if err := ctrl.DB.First(&doc, "document_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Document not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch document")
	}

	req.ApplyTo(&doc)
	if err := ctrl.DB.Save(&doc).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update document")
	}

	ctrl.Cache.Invalidate("document.patch")
	return helper.Success(c, "Document updated successfully", dto.FromModelDocument(&doc))
}

// =====================================================
// DELETE /api/documents/:id
// Soft-deletes the row; all stored revisions are removed
// from OSS best effort.
// =====================================================
func (ctrl *DocumentController) Delete(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageDocuments); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid document ID")
	}

	var doc model.DocumentModel
	if err := ctrl.DB.
		Preload("Versions").
		First(&doc, "document_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Document not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch document")
	}

	if err := ctrl.DB.Delete(&doc).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete document")
	}

	if svc, ossErr := ossHelper.NewOSSServiceFromEnv("documents"); ossErr == nil {
		keys := make([]string, 0, len(doc.Versions)+1)
		keys = append(keys, doc.DocumentStorageKey)
		for _, v := range doc.Versions {
			if v.DocumentVersionStorageKey != doc.DocumentStorageKey {
				keys = append(keys, v.DocumentVersionStorageKey)
			}
		}
		if err := svc.DeleteObjects(c.Context(), keys); err != nil {
			log.Printf("[DOCUMENT] object cleanup failed for %s: %v", id, err)
		}
	}

	ctrl.Cache.Invalidate("document.delete")
	return c.SendStatus(fiber.StatusNoContent)
}

func (ctrl *DocumentController) applyFilters(c *fiber.Ctx, q *gorm.DB) *gorm.DB {
	if category := c.Query("category"); category != "" {
		q = q.Where("document_category = ?", category)
	}
	if propertyID := c.Query("property_id"); propertyID != "" {
		if pid, err := uuid.Parse(propertyID); err == nil {
			q = q.Where("document_property_id = ?", pid)
		}
	}
	if tag := c.Query("tag"); tag != "" {
		q = q.Where("? = ANY(document_tags)", tag)
	}
	if search := c.Query("q"); search != "" {
		q = q.Where("document_file_name ILIKE ?", "%"+search+"%")
	}
	return q
}
