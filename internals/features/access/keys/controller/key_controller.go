// file: internals/features/access/keys/controller/key_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sukaza_backend/internals/constants"
	dto "sukaza_backend/internals/features/access/keys/dto"
	model "sukaza_backend/internals/features/access/keys/model"
	service "sukaza_backend/internals/features/access/keys/service"
	helper "sukaza_backend/internals/helpers"
	authHelper "sukaza_backend/internals/helpers/auth"
	"sukaza_backend/internals/helpers/cache"
)

type KeyController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Cache     *cache.Cache
}

func NewKeyController(db *gorm.DB, c *cache.Cache) *KeyController {
	c.Declare("key.create", "keys.list:*")
	c.Declare("key.transfer", "keys.list:*")
	c.Declare("key.delete", "keys.list:*")
	return &KeyController{DB: db, Validator: validator.New(), Cache: c}
}

// =====================================================
// GET /api/access/keys
// =====================================================
func (ctrl *KeyController) List(c *fiber.Ctx) error {
	cacheKey := "keys.list:" + string(c.Request().URI().QueryString())
	if cached, ok := ctrl.Cache.Get(cacheKey); ok {
		return helper.Success(c, "Keys fetched successfully", cached)
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := ctrl.DB.Model(&model.KeyModel{})
	if propertyID := c.Query("property_id"); propertyID != "" {
		pid, perr := uuid.Parse(propertyID)
		if perr != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid property_id")
		}
		q = q.Where("key_property_id = ?", pid)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count keys")
	}

	var keys []model.KeyModel
	if err := q.
		Order("key_created_at DESC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&keys).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch keys")
	}

	payload := fiber.Map{
		"items": dto.FromModelKeys(keys),
		"meta":  helper.BuildMeta(total, p),
	}
	ctrl.Cache.Set(cacheKey, payload)
	return helper.Success(c, "Keys fetched successfully", payload)
}

// =====================================================
// GET /api/access/keys/:id — includes transfer history
// =====================================================
func (ctrl *KeyController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid key ID")
	}

	var key model.KeyModel
	if err := ctrl.DB.
		Preload("Transfers", func(db *gorm.DB) *gorm.DB {
			return db.Order("key_transfer_created_at DESC")
		}).
		First(&key, "key_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Key not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch key")
	}

	return helper.Success(c, "Key fetched successfully", dto.FromModelKey(&key))
}

// =====================================================
// POST /api/access/keys
// =====================================================
func (ctrl *KeyController) Create(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageKeys); err != nil {
		return err
	}

	var req dto.CreateKeyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	key := req.ToModel()
	if err := ctrl.DB.Create(key).Error; err != nil {
		log.Printf("[KEY] create failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create key")
	}

	ctrl.Cache.Invalidate("key.create")
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Key created successfully", dto.FromModelKey(key))
}

// =====================================================
// POST /api/access/keys/:id/checkout
// POST /api/access/keys/:id/checkin
// =====================================================
func (ctrl *KeyController) Checkout(c *fiber.Ctx) error {
	return ctrl.transfer(c, model.TransferCheckout)
}

func (ctrl *KeyController) Checkin(c *fiber.Ctx) error {
	return ctrl.transfer(c, model.TransferCheckin)
}

func (ctrl *KeyController) transfer(c *fiber.Ctx, direction model.TransferDirection) error {
	if err := authHelper.RequirePermission(c, constants.PermManageKeys); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid key ID")
	}

	var req dto.TransferRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	key, err := service.RecordTransfer(ctrl.DB, id, req.HolderName, direction)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrKeyGone):
			return helper.Error(c, fiber.StatusNotFound, "Key not found")
		case errors.Is(err, service.ErrNoneAvailable),
			errors.Is(err, service.ErrAllAccountedFor):
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		default:
			log.Printf("[KEY] transfer failed: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to record transfer")
		}
	}

	ctrl.Cache.Invalidate("key.transfer")
	return helper.Success(c, "Transfer recorded successfully", dto.FromModelKey(key))
}

// =====================================================
// DELETE /api/access/keys/:id
// =====================================================
func (ctrl *KeyController) Delete(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageKeys); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid key ID")
	}

	res := ctrl.DB.Delete(&model.KeyModel{}, "key_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete key")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Key not found")
	}

	ctrl.Cache.Invalidate("key.delete")
	return c.SendStatus(fiber.StatusNoContent)
}
