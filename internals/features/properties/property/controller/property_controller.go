// file: internals/features/properties/property/controller/property_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sukaza_backend/internals/constants"
	dto "sukaza_backend/internals/features/properties/property/dto"
	model "sukaza_backend/internals/features/properties/property/model"
	helper "sukaza_backend/internals/helpers"
	authHelper "sukaza_backend/internals/helpers/auth"
	"sukaza_backend/internals/helpers/cache"
	ossHelper "sukaza_backend/internals/helpers/oss"
)

type PropertyController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Cache     *cache.Cache
}

func NewPropertyController(db *gorm.DB, c *cache.Cache) *PropertyController {
	c.Declare("property.create", "properties.list:*")
	c.Declare("property.patch", "properties.list:*")
	c.Declare("property.delete", "properties.list:*")
	return &PropertyController{DB: db, Validator: validator.New(), Cache: c}
}

var propertySortWhitelist = map[string]string{
	"name":       "property_name",
	"city":       "property_city",
	"created_at": "property_created_at",
}

// =====================================================
// GET /api/properties
// =====================================================
func (ctrl *PropertyController) List(c *fiber.Ctx) error {
	cacheKey := "properties.list:" + string(c.Request().URI().QueryString())
	if cached, ok := ctrl.Cache.Get(cacheKey); ok {
		return helper.Success(c, "Properties fetched successfully", cached)
	}

	p := helper.ParseFiber(c, "name", "asc", helper.DefaultOpts)

	orderClause, err := p.SafeOrderClause(propertySortWhitelist, "name")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid sort field")
	}

	q := ctrl.DB.Model(&model.PropertyModel{})
	if search := c.Query("q"); search != "" {
		like := "%" + search + "%"
		q = q.Where("property_name ILIKE ? OR property_address ILIKE ?", like, like)
	}
	if active := c.Query("active"); active != "" {
		q = q.Where("property_is_active = ?", active == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count properties")
	}

	var properties []model.PropertyModel
	if err := q.
		Preload("Highlights", func(db *gorm.DB) *gorm.DB {
			return db.Order("property_highlight_order ASC")
		}).
		Order(orderClause).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&properties).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch properties")
	}

	payload := fiber.Map{
		"items": dto.FromModelProperties(properties),
		"meta":  helper.BuildMeta(total, p),
	}
	ctrl.Cache.Set(cacheKey, payload)
	return helper.Success(c, "Properties fetched successfully", payload)
}

// =====================================================
// GET /api/properties/:id
// =====================================================
func (ctrl *PropertyController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid property ID")
	}

	var prop model.PropertyModel
	if err := ctrl.DB.
		Preload("Highlights", func(db *gorm.DB) *gorm.DB {
			return db.Order("property_highlight_order ASC")
		}).
		First(&prop, "property_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Property not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch property")
	}

	return helper.Success(c, "Property fetched successfully", dto.FromModelProperty(&prop))
}

// =====================================================
// POST /api/properties
// =====================================================
func (ctrl *PropertyController) Create(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageProperties); err != nil {
		return err
	}

	var req dto.CreatePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	prop := req.ToModel()
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(prop).Error; err != nil {
			return err
		}
		return createHighlights(tx, prop, req.Highlights)
	}); err != nil {
		log.Printf("[PROPERTY] create failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create property")
	}

	ctrl.Cache.Invalidate("property.create")
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Property created successfully", dto.FromModelProperty(prop))
}

// =====================================================
// PATCH /api/properties/:id
// =====================================================
func (ctrl *PropertyController) Patch(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageProperties); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid property ID")
	}

	var req dto.PatchPropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var prop model.PropertyModel
	if err := ctrl.DB.First(&prop, "property_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Property not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch property")
	}

	req.ApplyTo(&prop)
	if err := ctrl.DB.Save(&prop).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update property")
	}

	ctrl.Cache.Invalidate("property.patch")
	return helper.Success(c, "Property updated successfully", dto.FromModelProperty(&prop))
}

// =====================================================
// PUT /api/properties/:id/highlights
// =====================================================
func (ctrl *PropertyController) ReplaceHighlights(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageProperties); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid property ID")
	}

	var req dto.ReplaceHighlightsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var prop model.PropertyModel
	if err := ctrl.DB.First(&prop, "property_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Property not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch property")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("property_highlight_property_id = ?", prop.PropertyID).
			Delete(&model.PropertyHighlightModel{}).Error; err != nil {
			return err
		}
		prop.Highlights = nil
		return createHighlights(tx, &prop, req.Highlights)
	}); err != nil {
		log.Printf("[PROPERTY] replace highlights failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to replace highlights")
	}

	ctrl.Cache.Invalidate("property.patch")
	return helper.Success(c, "Highlights replaced successfully", dto.FromModelProperty(&prop))
}

// =====================================================
// POST /api/properties/:id/photo  (multipart, field "photo")
// Uploads a webp-converted cover photo plus a 400x300 thumb.
// =====================================================
func (ctrl *PropertyController) UploadPhoto(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageProperties); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid property ID")
	}

	var prop model.PropertyModel
	if err := ctrl.DB.First(&prop, "property_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Property not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch property")
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Photo file is required")
	}

	svc, err := ossHelper.NewOSSServiceFromEnv("properties")
	if err != nil {
		log.Printf("[PROPERTY] OSS init failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Storage is not configured")
	}

	oldFull := prop.PropertyPhotoURL
	oldThumb := prop.PropertyPhotoThumbURL

	fullURL, thumbURL, err := svc.UploadPhotoWithThumbnail(c.Context(), fh, prop.PropertyID.String())
	if err != nil {
		log.Printf("[PROPERTY] photo upload failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to upload photo")
	}

	prop.PropertyPhotoURL = &fullURL
	prop.PropertyPhotoThumbURL = &thumbURL
	if err := ctrl.DB.Save(&prop).Error; err != nil {
		// DB failed after upload: remove the orphaned objects.
		_ = svc.DeleteByPublicURL(c.Context(), fullURL)
		_ = svc.DeleteByPublicURL(c.Context(), thumbURL)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save photo URLs")
	}

	// Previous photo is replaced, not versioned.
	if oldFull != nil {
		_ = svc.DeleteByPublicURL(c.Context(), *oldFull)
	}
	if oldThumb != nil {
		_ = svc.DeleteByPublicURL(c.Context(), *oldThumb)
	}

	ctrl.Cache.Invalidate("property.patch")
	return helper.Success(c, "Photo uploaded successfully", dto.FromModelProperty(&prop))
}

// =====================================================
// DELETE /api/properties/:id
// =====================================================
func (ctrl *PropertyController) Delete(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageProperties); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid property ID")
	}

	res := ctrl.DB.Delete(&model.PropertyModel{}, "property_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete property")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Property not found")
	}

	ctrl.Cache.Invalidate("property.delete")
	return c.SendStatus(fiber.StatusNoContent)
}

func createHighlights(tx *gorm.DB, prop *model.PropertyModel, labels []string) error {
	if len(labels) == 0 {
		return nil
	}
	rows := make([]model.PropertyHighlightModel, 0, len(labels))
	for i, label := range labels {
		rows = append(rows, model.PropertyHighlightModel{
			PropertyHighlightPropertyID: prop.PropertyID,
			PropertyHighlightLabel:      label,
			PropertyHighlightOrder:      i,
		})
	}
	if err := tx.Create(&rows).Error; err != nil {
		return err
	}
	prop.Highlights = rows
	return nil
}
