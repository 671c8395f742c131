// file: internals/features/issues/issue/controller/issue_controller.go
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
	dto "sukaza_backend/internals/features/issues/issue/dto"
	model "sukaza_backend/internals/features/issues/issue/model"
	helper "sukaza_backend/internals/helpers"
	authHelper "sukaza_backend/internals/helpers/auth"
	"sukaza_backend/internals/helpers/cache"
)

type IssueController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Cache     *cache.Cache
}

func NewIssueController(db *gorm.DB, c *cache.Cache) *IssueController {
	c.Declare("issue.create", "issues.list:*")
	c.Declare("issue.patch", "issues.list:*")
	c.Declare("issue.status", "issues.list:*")
	c.Declare("issue.delete", "issues.list:*")
	return &IssueController{DB: db, Validator: validator.New(), Cache: c}
}

var issueSortWhitelist = map[string]string{
	"title":      "issue_title",
	"priority":   "issue_priority",
	"status":     "issue_status",
	"created_at": "issue_created_at",
}

// =====================================================
// GET /api/issues
// =====================================================
func (ctrl *IssueController) List(c *fiber.Ctx) error {
	cacheKey := "issues.list:" + string(c.Request().URI().QueryString())
	if cached, ok := ctrl.Cache.Get(cacheKey); ok {
		return helper.Success(c, "Issues fetched successfully", cached)
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	orderClause, err := p.SafeOrderClause(issueSortWhitelist, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid sort field")
	}

	q := ctrl.DB.Model(&model.IssueModel{})
	if propertyID := c.Query("property_id"); propertyID != "" {
		pid, perr := uuid.Parse(propertyID)
		if perr != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid property_id")
		}
		q = q.Where("issue_property_id = ?", pid)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("issue_status = ?", status)
	}
	if priority := c.Query("priority"); priority != "" {
		q = q.Where("issue_priority = ?", priority)
	}
	if assignee := c.Query("assignee_id"); assignee != "" {
		aid, perr := uuid.Parse(assignee)
		if perr != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid assignee_id")
		}
		q = q.Where("issue_assignee_id = ?", aid)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count issues")
	}

	var issues []model.IssueModel
	if err := q.
		Order(orderClause).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&issues).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch issues")
	}

	payload := fiber.Map{
		"items": dto.FromModelIssues(issues),
		"meta":  helper.BuildMeta(total, p),
	}
	ctrl.Cache.Set(cacheKey, payload)
	return helper.Success(c, "Issues fetched successfully", payload)
}

// =====================================================
// GET /api/issues/:id
// =====================================================
func (ctrl *IssueController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid issue ID")
	}

	var issue model.IssueModel
	if err := ctrl.DB.First(&issue, "issue_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Issue not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch issue")
	}

	return helper.Success(c, "Issue fetched successfully", dto.FromModelIssue(&issue))
}

// =====================================================
// POST /api/issues
// =====================================================
func (ctrl *IssueController) Create(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageIssues); err != nil {
		return err
	}

	var req dto.CreateIssueRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	issue := req.ToModel()
	if err := ctrl.DB.Create(issue).Error; err != nil {
		log.Printf("[ISSUE] create failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create issue")
	}

	ctrl.Cache.Invalidate("issue.create")
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Issue created successfully", dto.FromModelIssue(issue))
}

// =====================================================
// PATCH /api/issues/:id
// =====================================================
func (ctrl *IssueController) Patch(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageIssues); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid issue ID")
	}

	var req dto.PatchIssueRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var issue model.IssueModel
	if err := ctrl.DB.First(&issue, "issue_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Issue not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch issue")
	}

	req.ApplyTo(&issue)
	if err := ctrl.DB.Save(&issue).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update issue")
	}

	ctrl.Cache.Invalidate("issue.patch")
	return helper.Success(c, "Issue updated successfully", dto.FromModelIssue(&issue))
}

// =====================================================
// PUT /api/issues/:id/status
// Resolving stamps resolved_at; reopening clears it.
// =====================================================
func (ctrl *IssueController) ChangeStatus(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageIssues); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid issue ID")
	}

	var req dto.ChangeIssueStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var issue model.IssueModel
	if err := ctrl.DB.First(&issue, "issue_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Issue not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch issue")
	}

	target := model.IssueStatus(req.Status)
	if target != issue.IssueStatus && !model.CanTransition(issue.IssueStatus, target) {
		return helper.Error(c, fiber.StatusBadRequest, "Illegal status transition")
	}

	switch target {
	case model.IssueResolved:
		now := time.Now()
		issue.IssueResolvedAt = &now
	case model.IssueOpen:
		issue.IssueResolvedAt = nil
	}
	issue.IssueStatus = target

	if err := ctrl.DB.Save(&issue).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update issue status")
	}

	ctrl.Cache.Invalidate("issue.status")
	return helper.Success(c, "Issue status updated successfully", dto.FromModelIssue(&issue))
}

// =====================================================
// DELETE /api/issues/:id
// =====================================================
func (ctrl *IssueController) Delete(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageIssues); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid issue ID")
	}

	res := ctrl.DB.Delete(&model.IssueModel{}, "issue_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete issue")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Issue not found")
	}

	ctrl.Cache.Invalidate("issue.delete")
	return c.SendStatus(fiber.StatusNoContent)
}
