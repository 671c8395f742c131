// file: internals/features/finance/reports/controller/report_controller.go
package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"sukaza_backend/internals/constants"
	invoiceModel "sukaza_backend/internals/features/finance/invoices/model"
	helper "sukaza_backend/internals/helpers"
	authHelper "sukaza_backend/internals/helpers/auth"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// =====================================================
// GET /api/reports/invoice-summary
// Streams an xlsx with a summary sheet and a line detail
// sheet for the filtered invoice set.
// =====================================================
func (ctrl *ReportController) InvoiceSummary(c *fiber.Ctx) error {
	if err := authHelper.RequirePermission(c, constants.PermViewReports); err != nil {
		return err
	}

	q := ctrl.DB.Model(&invoiceModel.InvoiceModel{})
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

	var invoices []invoiceModel.InvoiceModel
	if err := q.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("invoice_line_item_line_number ASC")
		}).
		Order("invoice_created_at ASC").
		Limit(10_000).
		Find(&invoices).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch invoices")
	}

	f := excelize.NewFile()
	defer f.Close()

	const summary = "Summary"
	const detail = "Line Items"
	f.SetSheetName(f.GetSheetName(0), summary)
	if _, err := f.NewSheet(detail); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build workbook")
	}

	summaryHeader := []string{"Invoice ID", "Booking ID", "Property ID", "Status", "Due Date", "Tax Total", "Total"}
	for i, h := range summaryHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(summary, cell, h)
	}
	for row, inv := range invoices {
		values := []interface{}{
			inv.InvoiceID.String(),
			inv.InvoiceBookingID.String(),
			inv.InvoicePropertyID.String(),
			string(inv.InvoiceStatus),
			inv.InvoiceDueDate.Format("2006-01-02"),
			inv.InvoiceTaxTotal.InexactFloat64(),
			inv.InvoiceTotalAmount.InexactFloat64(),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(summary, cell, v)
		}
	}

	detailHeader := []string{"Invoice ID", "Line", "Description", "Type", "Quantity", "Unit Price", "Tax Rate", "Tax Amount", "Amount"}
	for i, h := range detailHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(detail, cell, h)
	}
	detailRow := 2
	for i := range invoices {
		inv := &invoices[i]
		for j := range inv.Items {
			it := &inv.Items[j]
			values := []interface{}{
				inv.InvoiceID.String(),
				it.InvoiceLineItemLineNumber,
				it.InvoiceLineItemDescription,
				string(it.InvoiceLineItemType),
				it.InvoiceLineItemQuantity.InexactFloat64(),
				it.InvoiceLineItemUnitPrice.InexactFloat64(),
				it.InvoiceLineItemTaxRate.InexactFloat64(),
				it.InvoiceLineItemTaxAmount.InexactFloat64(),
				it.Amount().InexactFloat64(),
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, detailRow)
				f.SetCellValue(detail, cell, v)
			}
			detailRow++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Printf("[REPORT] workbook write failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build workbook")
	}

	filename := fmt.Sprintf("invoice-summary-%s.xlsx", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
