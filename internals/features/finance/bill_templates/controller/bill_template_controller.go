// file: internals/features/finance/bill_templates/controller/bill_template_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sukaza_backend/internals/constants"
	model "sukaza_backend/internals/features/finance/bill_templates/model"
	dto "sukaza_backend/internals/features/finance/bill_templates/dto"
	service "sukaza_backend/internals/features/finance/bill_templates/service"
	helper "sukaza_backend/internals/helpers"
	authHelper "sukaza_backend/internals/helpers/auth"
	"sukaza_backend/internals/helpers/cache"
)

type BillTemplateController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Cache     *cache.Cache
}

func NewBillTemplateController(db *gorm.DB, c *cache.Cache) *BillTemplateController {
	c.Declare("bill_template.create", "bill_templates.list:*")
	c.Declare("bill_template.patch", "bill_templates.list:*")
	c.Declare("bill_template.delete", "bill_templates.list:*")
	c.Declare("bill_template.duplicate", "bill_templates.list:*")
	c.Declare("bill_template.items.replace", "bill_templates.list:*")
	return &BillTemplateController{
		DB:        db,
		Validator: validator.New(),
		Cache:     c,
	}
}

var templateSortWhitelist = map[string]string{
	"name":       "bill_template_name",
	"created_at": "bill_template_created_at",
}

// =====================================================
// GET /api/bill-templates
// =====================================================
func (ctrl *BillTemplateController) List(c *fiber.Ctx) error {
	// templates change rarely; cache each filter/page variant under one prefix
	cacheKey := "bill_templates.list:" + string(c.Request().URI().QueryString())
	if cached, ok := ctrl.Cache.Get(cacheKey); ok {
		return helper.Success(c, "Bill templates fetched successfully", cached)
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	orderClause, err := p.SafeOrderClause(templateSortWhitelist, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid sort field")
	}

	q := ctrl.DB.Model(&model.BillTemplateModel{})

	if propertyID := c.Query("property_id"); propertyID != "" {
		pid, perr := uuid.Parse(propertyID)
		if perr != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid property_id")
		}
		// templates assigned to the property, plus global ones
		q = q.Where(
			"bill_template_is_global = TRUE OR bill_template_id IN (?)",
			ctrl.DB.Model(&model.BillTemplatePropertyModel{}).
				Select("bill_template_property_template_id").
				Where("bill_template_property_property_id = ?", pid),
		)
	}
	if active := c.Query("active"); active != "" {
		q = q.Where("bill_template_is_active = ?", active == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count bill templates")
	}

	var templates []model.BillTemplateModel
	if err := q.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("bill_template_item_line_number ASC")
		}).
		Preload("Properties").
		Order(orderClause).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&templates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch bill templates")
	}

	payload := fiber.Map{
		"items": dto.FromModelBillTemplates(templates),
		"meta":  helper.BuildMeta(total, p),
	}
	ctrl.Cache.Set(cacheKey, payload)
	return helper.Success(c, "Bill templates fetched successfully", payload)
}

// =====================================================
// GET /api/bill-templates/:id
// =====================================================
func (ctrl *BillTemplateController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid template ID")
	}

	var tpl model.BillTemplateModel
	if err := ctrl.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("bill_template_item_line_number ASC")
		}).
		Preload("Properties").
		First(&tpl, "bill_template_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Bill template not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch bill template")
	}

	return helper.Success(c, "Bill template fetched successfully", dto.FromModelBillTemplate(&tpl))
}

// =====================================================
// POST /api/bill-templates
// =====================================================
func (ctrl *BillTemplateController) Create(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageBillTemplates); err != nil {
		return err
	}

	var req dto.CreateBillTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	tpl := req.ToModel()
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(tpl).Error; err != nil {
			return err
		}
		items := dto.ItemsToModels(req.Items, tpl.BillTemplateID)
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
			tpl.Items = items
		}
		return nil
	}); err != nil {
		log.Printf("[BILL_TEMPLATE] create failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create bill template")
	}

	ctrl.Cache.Invalidate("bill_template.create")
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Bill template created successfully", dto.FromModelBillTemplate(tpl))
}

// =====================================================
// PATCH /api/bill-templates/:id
// =====================================================
func (ctrl *BillTemplateController) Patch(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageBillTemplates); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid template ID")
	}

	var req dto.PatchBillTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var tpl model.BillTemplateModel
	if err := ctrl.DB.First(&tpl, "bill_template_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Bill template not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch bill template")
	}

	req.ApplyTo(&tpl)
	if err := ctrl.DB.Save(&tpl).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update bill template")
	}

	ctrl.Cache.Invalidate("bill_template.patch")
	return helper.Success(c, "Bill template updated successfully", dto.FromModelBillTemplate(&tpl))
}

// =====================================================
// PUT /api/bill-templates/:id/items
// Replaces the whole item list. Line numbers are
// renumbered 1..N in request order.
// =====================================================
func (ctrl *BillTemplateController) ReplaceItems(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageBillTemplates); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid template ID")
	}

	var req dto.ReplaceItemsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var tpl model.BillTemplateModel
	if err := ctrl.DB.First(&tpl, "bill_template_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Bill template not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch bill template")
	}

	items := dto.ItemsToModels(req.Items, tpl.BillTemplateID)
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("bill_template_item_template_id = ?", tpl.BillTemplateID).
			Delete(&model.BillTemplateItemModel{}).Error; err != nil {
			return err
		}
		if len(items) > 0 {
			return tx.Create(&items).Error
		}
		return nil
	}); err != nil {
		log.Printf("[BILL_TEMPLATE] replace items failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to replace template items")
	}

	tpl.Items = items
	ctrl.Cache.Invalidate("bill_template.items.replace")
	return helper.Success(c, "Template items replaced successfully", dto.FromModelBillTemplate(&tpl))
}

// =====================================================
// POST /api/bill-templates/:id/duplicate
// =====================================================
func (ctrl *BillTemplateController) Duplicate(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageBillTemplates); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid template ID")
	}

	var req dto.DuplicateBillTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	copied, err := service.DuplicateTemplate(ctrl.DB, id, req.NewName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTemplateGone):
			return helper.Error(c, fiber.StatusNotFound, "Bill template not found")
		case errors.Is(err, service.ErrNameEmpty),
			errors.Is(err, service.ErrNameSame),
			errors.Is(err, service.ErrNameTaken):
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		default:
			log.Printf("[BILL_TEMPLATE] duplicate failed: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to duplicate bill template")
		}
	}

	ctrl.Cache.Invalidate("bill_template.duplicate")
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Bill template duplicated successfully", dto.FromModelBillTemplate(copied))
}

// =====================================================
// PUT /api/bill-templates/:id/properties
// =====================================================
func (ctrl *BillTemplateController) AssignProperties(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageBillTemplates); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid template ID")
	}

	var req dto.AssignPropertiesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var exists int64
	if err := ctrl.DB.Model(&model.BillTemplateModel{}).
		Where("bill_template_id = ?", id).
		Count(&exists).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch bill template")
	}
	if exists == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Bill template not found")
	}

	assigned, unassigned, err := service.ReconcileProperties(ctrl.DB, id, req.PropertyIDs)
	if err != nil {
		log.Printf("[BILL_TEMPLATE] assign properties failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to assign properties")
	}

	ctrl.Cache.Invalidate("bill_template.patch")
	return helper.Success(c, "Template properties updated successfully", fiber.Map{
		"assigned":   assigned,
		"unassigned": unassigned,
	})
}

// =====================================================
// DELETE /api/bill-templates/:id
// =====================================================
func (ctrl *BillTemplateController) Delete(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageBillTemplates); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid template ID")
	}

	res := ctrl.DB.Delete(&model.BillTemplateModel{}, "bill_template_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete bill template")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Bill template not found")
	}

	ctrl.Cache.Invalidate("bill_template.delete")
	return c.SendStatus(fiber.StatusNoContent)
}
