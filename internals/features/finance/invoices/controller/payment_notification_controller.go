// file: internals/features/finance/invoices/controller/payment_notification_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	model "sukaza_backend/internals/features/finance/invoices/model"
	helper "sukaza_backend/internals/helpers"
)

type midtransNotification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
}

// =====================================================
// POST /api/invoices/payment-notification
// Midtrans server-to-server callback; mounted outside the
// auth middleware. Always answers 200 so the gateway stops
// retrying; unknown orders are just logged.
// =====================================================
func (ctrl *InvoiceController) PaymentNotification(c *fiber.Ctx) error {
	var n midtransNotification
	if err := c.BodyParser(&n); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid notification body")
	}

	id, err := uuid.Parse(strings.TrimPrefix(n.OrderID, "INV-"))
	if err != nil {
		log.Printf("[INVOICE] notification with unknown order id %q", n.OrderID)
		return helper.Success(c, "OK", nil)
	}

	settled := n.TransactionStatus == "settlement" ||
		(n.TransactionStatus == "capture" && n.FraudStatus == "accept")
	if !settled {
		return helper.Success(c, "OK", nil)
	}

	res := ctrl.DB.Model(&model.InvoiceModel{}).
		Where("invoice_id = ? AND invoice_status = ?", id, model.InvoiceIssued).
		Update("invoice_status", model.InvoicePaid)
	if res.Error != nil {
		log.Printf("[INVOICE] notification update failed: %v", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to process notification")
	}
	if res.RowsAffected > 0 {
		ctrl.Cache.Invalidate("invoice.status")
		log.Printf("[INVOICE] %s marked paid via gateway notification", id)
	}
	return helper.Success(c, "OK", nil)
}
