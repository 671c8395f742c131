// file: internals/features/finance/invoices/controller/invoice_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sukaza_backend/internals/constants"
	bookingModel "sukaza_backend/internals/features/bookings/booking/model"
	dto "sukaza_backend/internals/features/finance/invoices/dto"
	model "sukaza_backend/internals/features/finance/invoices/model"
	service "sukaza_backend/internals/features/finance/invoices/service"
	helper "sukaza_backend/internals/helpers"
	authHelper "sukaza_backend/internals/helpers/auth"
	"sukaza_backend/internals/helpers/cache"
)

type InvoiceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Cache     *cache.Cache
}

func NewInvoiceController(db *gorm.DB, c *cache.Cache) *InvoiceController {
	c.Declare("invoice.create", "invoices.list:*")
	c.Declare("invoice.status", "invoices.list:*")
	c.Declare("invoice.delete", "invoices.list:*")
	return &InvoiceController{DB: db, Validator: validator.New(), Cache: c}
}

var invoiceSortWhitelist = map[string]string{
	"due_date":   "invoice_due_date",
	"status":     "invoice_status",
	"total":      "invoice_total_amount",
	"created_at": "invoice_created_at",
}

// =====================================================
// GET /api/invoices
// =====================================================
func (ctrl *InvoiceController) List(c *fiber.Ctx) error {
	cacheKey := "invoices.list:" + string(c.Request().URI().QueryString())
	if cached, ok := ctrl.Cache.Get(cacheKey); ok {
		return helper.Success(c, "Invoices fetched successfully", cached)
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	orderClause, err := p.SafeOrderClause(invoiceSortWhitelist, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid sort field")
	}

	q := ctrl.DB.Model(&model.InvoiceModel{})
	if propertyID := c.Query("property_id"); propertyID != "" {
		pid, perr := uuid.Parse(propertyID)
		if perr != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid property_id")
		}
		q = q.Where("invoice_property_id = ?", pid)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("invoice_status = ?", status)
	}
	if from := c.Query("from"); from != "" {
		q = q.Where("invoice_created_at >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		q = q.Where("invoice_created_at <= ?", to)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count invoices")
	}

	var invoices []model.InvoiceModel
	if err := q.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("invoice_line_item_line_number ASC")
		}).
		Order(orderClause).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&invoices).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch invoices")
	}

	payload := fiber.Map{
		"items": dto.FromModelInvoices(invoices),
		"meta":  helper.BuildMeta(total, p),
	}
	ctrl.Cache.Set(cacheKey, payload)
	return helper.Success(c, "Invoices fetched successfully", payload)
}

// =====================================================
// GET /api/invoices/:id
// =====================================================
func (ctrl *InvoiceController) GetByID(c *fiber.Ctx) error {
	inv, fiberErr := ctrl.loadInvoice(c)
	if fiberErr != nil {
		return fiberErr
	}
	return helper.Success(c, "Invoice fetched successfully", dto.FromModelInvoice(inv))
}

// =====================================================
// POST /api/invoices/from-booking
// Generates the draft invoice with its full line set.
// =====================================================
func (ctrl *InvoiceController) CreateFromBooking(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageInvoices); err != nil {
		return err
	}

	var req dto.CreateFromBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	inv, err := service.CreateFromBooking(ctrl.DB, req.BookingID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingGone):
			return helper.Error(c, fiber.StatusNotFound, "Booking not found")
		case errors.Is(err, service.ErrInvoiceEmpty):
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		default:
			log.Printf("[INVOICE] create from booking failed: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to create invoice")
		}
	}

	ctrl.Cache.Invalidate("invoice.create")
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Invoice created successfully", dto.FromModelInvoice(inv))
}

// =====================================================
// PUT /api/invoices/:id/status
// =====================================================
func (ctrl *InvoiceController) ChangeStatus(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageInvoices); err != nil {
		return err
	}

	var req dto.ChangeInvoiceStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	inv, fiberErr := ctrl.loadInvoice(c)
	if fiberErr != nil {
		return fiberErr
	}

	target := model.InvoiceStatus(req.Status)
	if target != inv.InvoiceStatus && !model.CanTransition(inv.InvoiceStatus, target) {
		return helper.Error(c, fiber.StatusBadRequest, "Illegal status transition")
	}

	inv.InvoiceStatus = target
	if err := ctrl.DB.Save(inv).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update invoice status")
	}

	ctrl.Cache.Invalidate("invoice.status")
	return helper.Success(c, "Invoice status updated successfully", dto.FromModelInvoice(inv))
}

// =====================================================
// POST /api/invoices/:id/payment-link
// Only issued invoices get a payment link.
// =====================================================
func (ctrl *InvoiceController) CreatePaymentLink(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageInvoices); err != nil {
		return err
	}

	inv, fiberErr := ctrl.loadInvoice(c)
	if fiberErr != nil {
		return fiberErr
	}
	if inv.InvoiceStatus != model.InvoiceIssued {
		return helper.Error(c, fiber.StatusBadRequest, "Payment links are only available for issued invoices")
	}

	var booking bookingModel.BookingModel
	if err := ctrl.DB.First(&booking, "booking_id = ?", inv.InvoiceBookingID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load booking for payment")
	}

	url, err := service.GeneratePaymentLink(inv, &booking)
	if err != nil {
		log.Printf("[INVOICE] payment link failed: %v", err)
		return helper.Error(c, fiber.StatusBadGateway, "Payment gateway rejected the request")
	}

	inv.InvoicePaymentURL = &url
	if err := ctrl.DB.Save(inv).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save payment link")
	}

	return helper.Success(c, "Payment link created successfully", fiber.Map{
		"payment_url": url,
	})
}

// =====================================================
// GET /api/invoices/:id/pdf
// Streams the rendered document as an attachment.
// =====================================================
func (ctrl *InvoiceController) DownloadPDF(c *fiber.Ctx) error {
	inv, fiberErr := ctrl.loadInvoice(c)
	if fiberErr != nil {
		return fiberErr
	}

	pdf, err := service.RenderPDF(c.Context(), inv)
	if err != nil {
		if errors.Is(err, service.ErrRendererUnavailable) {
			return helper.Error(c, fiber.StatusServiceUnavailable, "PDF renderer is not configured")
		}
		log.Printf("[INVOICE] pdf render failed: %v", err)
		return helper.Error(c, fiber.StatusBadGateway, "Failed to render invoice PDF")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="invoice-`+inv.InvoiceID.String()+`.pdf"`)
	return c.Send(pdf)
}

// =====================================================
// DELETE /api/invoices/:id — drafts only
// =====================================================
func (ctrl *InvoiceController) Delete(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermManageInvoices); err != nil {
		return err
	}

	inv, fiberErr := ctrl.loadInvoice(c)
	if fiberErr != nil {
		return fiberErr
	}
	if inv.InvoiceStatus != model.InvoiceDraft {
		return helper.Error(c, fiber.StatusBadRequest, "Only draft invoices can be deleted")
	}

	if err := ctrl.DB.Delete(&model.InvoiceModel{}, "invoice_id = ?", inv.InvoiceID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete invoice")
	}

	ctrl.Cache.Invalidate("invoice.delete")
	return c.SendStatus(fiber.StatusNoContent)
}

func (ctrl *InvoiceController) loadInvoice(c *fiber.Ctx) (*model.InvoiceModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.Error(c, fiber.StatusBadRequest, "Invalid invoice ID")
	}

	var inv model.InvoiceModel
	if err := ctrl.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("invoice_line_item_line_number ASC")
		}).
		First(&inv, "invoice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Error(c, fiber.StatusNotFound, "Invoice not found")
		}
		return nil, helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch invoice")
	}
	return &inv, nil
}
