// file: internals/features/vendors/controller/vendor_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sukaza_backend/internals/constants"
	dto "sukaza_backend/internals/features/vendors/dto"
	model "sukaza_backend/internals/features/vendors/model"
	helper "sukaza_backend/internals/helpers"
	authHelper "sukaza_backend/internals/helpers/auth"
	"sukaza_backend/internals/helpers/cache"
)

type VendorController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Cache     *cache.Cache
}

func NewVendorController(db *gorm.DB, c *cache.Cache) *VendorController {
	c.Declare("vendor.create", "vendors.list:*")
	c.Declare("vendor.patch", "vendors.list:*")
	c.Declare("vendor.delete", "vendors.list:*")
	c.Declare("vendor.coi", "vendors.list:*")
	return &VendorController{DB: db, Validator: validator.New(), Cache: c}
}

var vendorSortWhitelist = map[string]string{
	"name":       "vendor_name",
	"created_at": "vendor_created_at",
}

// =====================================================
// GET /api/vendors
// =====================================================
func (ctrl *VendorController) List(c *fiber.Ctx) error {
	cacheKey := "vendors.list:" + string(c.Request().URI().QueryString())
	if cached, ok := ctrl.Cache.Get(cacheKey); ok {
		return helper.Success(c, "Vendors fetched successfully", cached)
	}

	p := helper.ParseFiber(c, "name", "asc", helper.DefaultOpts)

	orderClause, err := p.SafeOrderClause(vendorSortWhitelist, "name")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid sort field")
	}

	q := ctrl.DB.Model(&model.VendorModel{})
	if search := c.Query("q"); search != "" {
		like := "%" + search + "%"
		q = q.Where("vendor_name ILIKE ? OR vendor_service ILIKE ?", like, like)
	}
	if active := c.Query("active"); active != "" {
		q = q.Where("vendor_is_active = ?", active == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count vendors")
	}

	var vendors []model.VendorModel
	if err := q.
		Preload("COIs", func(db *gorm.DB) *gorm.DB {
			return db.Order("vendor_coi_valid_through DESC")
		}).
		Order(orderClause).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&vendors).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch vendors")
	}

	payload := fiber.Map{
		"items": dto.FromModelVendors(vendors),
		"meta":  helper.BuildMeta(total, p),
	}
	ctrl.Cache.Set(cacheKey, payload)
	return helper.Success(c, "Vendors fetched successfully", payload)
}

// =====================================================
// GET /api/vendors/cois/expiring?days=30
// Certificates whose validity ends within the window.
// =====================================================
func (ctrl *VendorController) ExpiringCOIs(c *fiber.Ctx) error {
	days, err := strconv.Atoi(c.Query("days", "30"))
	if err != nil || days < 1 || days > 365 {
		return helper.Error(c, fiber.StatusBadRequest, "days must be between 1 and 365")
	}

	now := time.Now()
	cutoff := now.AddDate(0, 0, days)

	var cois []model.VendorCOIModel
	if err := ctrl.DB.
		Where("vendor_coi_valid_through > ? AND vendor_coi_valid_through <= ?", now, cutoff).
		Order("vendor_coi_valid_through ASC").
		Find(&cois).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch expiring certificates")
	}

	return helper.Success(c, "Expiring certificates fetched successfully", dto.FromModelCOIs(cois))
}

// =====================================================
// GET /api/vendors/:id
// =====================================================
func (ctrl *VendorController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid vendor ID")
	}

	var vendor model.VendorModel
	if err := ctrl.DB.
		Preload("COIs", func(db *gorm.DB) *gorm.DB {
			return db.Order("vendor_coi_valid_through DESC")
		}).
		First(&vendor, "vendor_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Vendor not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch vendor")
	}

	return helper.Success(c, "Vendor fetched successfully", dto.FromModelVendor(&vendor))
}

// =====================================================
// POST /api/vendors
// =====================================================
func (ctrl *VendorController) Create(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageVendors); err != nil {
		return err
	}

	var req dto.CreateVendorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	vendor := req.ToModel()
	if err := ctrl.DB.Create(vendor).Error; err != nil {
		log.Printf("[VENDOR] create failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create vendor")
	}

	ctrl.Cache.Invalidate("vendor.create")
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Vendor created successfully", dto.FromModelVendor(vendor))
}

// =====================================================
// PATCH /api/vendors/:id
// =====================================================
func (ctrl *VendorController) Patch(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageVendors); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid vendor ID")
	}

	var req dto.PatchVendorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var vendor model.VendorModel
	if err := ctrl.DB.First(&vendor, "vendor_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Vendor not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch vendor")
	}

	req.ApplyTo(&vendor)
	if err := ctrl.DB.Save(&vendor).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update vendor")
	}

	ctrl.Cache.Invalidate("vendor.patch")
	return helper.Success(c, "Vendor updated successfully", dto.FromModelVendor(&vendor))
}

// =====================================================
// POST /api/vendors/:id/cois
// =====================================================
func (ctrl *VendorController) AddCOI(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageVendors); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid vendor ID")
	}

	var req dto.CreateCOIRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var exists int64
	if err := ctrl.DB.Model(&model.VendorModel{}).
		Where("vendor_id = ?", id).
		Count(&exists).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to verify vendor")
	}
	if exists == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Vendor not found")
	}

	coi := req.ToModel(id)
	if err := ctrl.DB.Create(coi).Error; err != nil {
		log.Printf("[VENDOR] COI create failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to add certificate")
	}

	ctrl.Cache.Invalidate("vendor.coi")
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Certificate added successfully", dto.FromModelCOI(coi))
}

// =====================================================
// PUT /api/vendors/:id/cois/:coiId/document
// Links an already-uploaded document row to the COI.
// =====================================================
func (ctrl *VendorController) AttachCOIDocument(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageVendors); err != nil {
		return err
	}

	coiID, err := uuid.Parse(c.Params("coiId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid certificate ID")
	}

	var body struct {
		DocumentID uuid.UUID `json:"document_id" validate:"required"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctrl.DB.Model(&model.VendorCOIModel{}).
		Where("vendor_coi_id = ?", coiID).
		Update("vendor_coi_document_id", body.DocumentID)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to attach document")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Certificate not found")
	}

	ctrl.Cache.Invalidate("vendor.coi")
	return helper.Success(c, "Document attached successfully", nil)
}

// =====================================================
// DELETE /api/vendors/:id
// =====================================================
func (ctrl *VendorController) Delete(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageVendors); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid vendor ID")
	}

	res := ctrl.DB.Delete(&model.VendorModel{}, "vendor_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete vendor")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Vendor not found")
	}

	ctrl.Cache.Invalidate("vendor.delete")
	return c.SendStatus(fiber.StatusNoContent)
}
