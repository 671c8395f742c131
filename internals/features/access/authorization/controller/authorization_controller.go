// file: internals/features/access/authorization/controller/authorization_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sukaza_backend/internals/constants"
	dto "sukaza_backend/internals/features/access/authorization/dto"
	model "sukaza_backend/internals/features/access/authorization/model"
	helper "sukaza_backend/internals/helpers"
	authHelper "sukaza_backend/internals/helpers/auth"
	"sukaza_backend/internals/helpers/cache"
)

type AuthorizationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Cache     *cache.Cache
}

func NewAuthorizationController(db *gorm.DB, c *cache.Cache) *AuthorizationController {
	c.Declare("access.create", "access.list:*")
	c.Declare("access.patch", "access.list:*")
	c.Declare("access.revoke", "access.list:*")
	c.Declare("access.delete", "access.list:*")
	return &AuthorizationController{DB: db, Validator: validator.New(), Cache: c}
}

var authorizationSortWhitelist = map[string]string{
	"person":        "access_authorization_person_name",
	"valid_through": "access_authorization_valid_through",
	"created_at":    "access_authorization_created_at",
}

// =====================================================
// GET /api/access/authorizations
// =====================================================
func (ctrl *AuthorizationController) List(c *fiber.Ctx) error {
	cacheKey := "access.list:" + string(c.Request().URI().QueryString())
	if cached, ok := ctrl.Cache.Get(cacheKey); ok {
		return helper.Success(c, "Authorizations fetched successfully", cached)
	}

	p := helper.ParseFiber(c, "valid_through", "desc", helper.DefaultOpts)

	orderClause, err := p.SafeOrderClause(authorizationSortWhitelist, "valid_through")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid sort field")
	}

	q := ctrl.DB.Model(&model.AccessAuthorizationModel{})
	if propertyID := c.Query("property_id"); propertyID != "" {
		pid, perr := uuid.Parse(propertyID)
		if perr != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid property_id")
		}
		q = q.Where("access_authorization_property_id = ?", pid)
	}
	if kind := c.Query("kind"); kind != "" {
		q = q.Where("access_authorization_kind = ?", kind)
	}
	if c.Query("active") == "true" {
		now := time.Now()
		q = q.Where(
			"access_authorization_revoked_at IS NULL AND access_authorization_valid_from <= ? AND access_authorization_valid_through >= ?",
			now, now,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count authorizations")
	}

	var auths []model.AccessAuthorizationModel
	if err := q.
		Order(orderClause).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&auths).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch authorizations")
	}

	payload := fiber.Map{
		"items": dto.FromModelAuthorizations(auths),
		"meta":  helper.BuildMeta(total, p),
	}
	ctrl.Cache.Set(cacheKey, payload)
	return helper.Success(c, "Authorizations fetched successfully", payload)
}

// =====================================================
// POST /api/access/authorizations
// =====================================================
func (ctrl *AuthorizationController) Create(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageAccess); err != nil {
		return err
	}

	var req dto.CreateAuthorizationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	auth := req.ToModel()
	if err := ctrl.DB.Create(auth).Error; err != nil {
		log.Printf("[ACCESS] create failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create authorization")
	}

	ctrl.Cache.Invalidate("access.create")
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Authorization created successfully", dto.FromModelAuthorization(auth))
}

// =====================================================
// PATCH /api/access/authorizations/:id
// =====================================================
func (ctrl *AuthorizationController) Patch(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageAccess); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid authorization ID")
	}

	var req dto.PatchAuthorizationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var auth model.AccessAuthorizationModel
	if err := ctrl.DB.First(&auth, "access_authorization_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Authorization not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch authorization")
	}

	req.ApplyTo(&auth)
	if !auth.AccessAuthorizationValidThrough.After(auth.AccessAuthorizationValidFrom) {
		return helper.Error(c, fiber.StatusBadRequest, "valid_through must be after valid_from")
	}

	if err := ctrl.DB.Save(&auth).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update authorization")
	}

	ctrl.Cache.Invalidate("access.patch")
	return helper.Success(c, "Authorization updated successfully", dto.FromModelAuthorization(&auth))
}

// =====================================================
// PUT /api/access/authorizations/:id/revoke
// Revoking twice is a no-op, not an error.
// =====================================================
func (ctrl *AuthorizationController) Revoke(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageAccess); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid authorization ID")
	}

	var auth model.AccessAuthorizationModel
	if err := ctrl.DB.First(&auth, "access_authorization_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Authorization not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch authorization")
	}

	if !auth.IsRevoked() {
		now := time.Now()
		auth.AccessAuthorizationRevokedAt = &now
		if err := ctrl.DB.Save(&auth).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to revoke authorization")
		}
		ctrl.Cache.Invalidate("access.revoke")
	}

	return helper.Success(c, "Authorization revoked successfully", dto.FromModelAuthorization(&auth))
}

// =====================================================
// DELETE /api/access/authorizations/:id
// =====================================================
func (ctrl *AuthorizationController) Delete(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageAccess); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid authorization ID")
	}

	res := ctrl.DB.Delete(&model.AccessAuthorizationModel{}, "access_authorization_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete authorization")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Authorization not found")
	}

	ctrl.Cache.Invalidate("access.delete")
	return c.SendStatus(fiber.StatusNoContent)
}
