// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sukaza_backend/internals/constants"
	dto "sukaza_backend/internals/features/users/user/dto"
	model "sukaza_backend/internals/features/users/user/model"
	authService "sukaza_backend/internals/features/users/auth/service"
	helper "sukaza_backend/internals/helpers"
	helperAuth "sukaza_backend/internals/helpers/auth"
)

type UserController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ========== List ==========
func (ctl *UserController) List(c *fiber.Ctx) error {
	if err := helperAuth.RequirePermission(c, constants.PermManageUsers); err != nil {
		return err
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	allowedSort := map[string]string{
		"created_at": "user_created_at",
		"email":      "user_email",
		"name":       "user_full_name",
		"role":       "user_role",
	}
	order, err := p.SafeOrderClause(allowedSort, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	q := ctl.DB.Model(&model.UserModel{})
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("user_role = ?", role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var users []model.UserModel
	if err := q.
		Order(order).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&users).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"items": dto.FromModelUsers(users),
		"meta":  helper.BuildMeta(total, p),
	})
}

// ========== Create ==========
func (ctl *UserController) Create(c *fiber.Ctx) error {
	if err := helperAuth.RequirePermission(c, constants.PermManageUsers); err != nil {
		return err
	}

	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := authService.HashPassword(req.UserPassword)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	u := req.ToModel(hash)
	if err := ctl.DB.Create(u).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return helper.Error(c, fiber.StatusConflict, "Email already in use")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "User created", dto.FromModelUser(u))
}

// ========== Patch ==========
func (ctl *UserController) Patch(c *fiber.Ctx) error {
	if err := helperAuth.RequirePermission(c, constants.PermManageUsers); err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "user_id invalid")
	}

	var u model.UserModel
	if err := ctl.DB.First(&u, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.PatchUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyTo(&u)
	if err := ctl.DB.Save(&u).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "User updated", dto.FromModelUser(&u))
}

// ========== Delete (soft delete) ==========
func (ctl *UserController) Delete(c *fiber.Ctx) error {
	if err := helperAuth.RequirePermission(c, constants.PermManageUsers); err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "user_id invalid")
	}

	tx := ctl.DB.Model(&model.UserModel{}).
		Where("user_id = ? AND user_deleted_at IS NULL", id).
		Update("user_deleted_at", gorm.Expr("NOW()"))
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, tx.Error.Error())
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
