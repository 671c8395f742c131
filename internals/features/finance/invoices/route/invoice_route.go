// file: internals/features/finance/invoices/route/invoice_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sukaza_backend/internals/features/finance/invoices/controller"
	"sukaza_backend/internals/helpers/cache"
)

// InvoiceRoutes mounts the authenticated invoice endpoints.
func InvoiceRoutes(r fiber.Router, db *gorm.DB, c *cache.Cache) {
	ctrl := controller.NewInvoiceController(db, c)

	g := r.Group("/invoices")
	g.Get("/", ctrl.List)
	g.Post("/from-booking", ctrl.CreateFromBooking)
	g.Get("/:id", ctrl.GetByID)
	g.Put("/:id/status", ctrl.ChangeStatus)
	g.Post("/:id/payment-link", ctrl.CreatePaymentLink)
	g.Get("/:id/pdf", ctrl.DownloadPDF)
	g.Delete("/:id", ctrl.Delete)
}

// PaymentNotificationRoute mounts the gateway callback; it sits on the same
// /api prefix but is skipped by the auth middleware.
func PaymentNotificationRoute(r fiber.Router, db *gorm.DB, c *cache.Cache) {
	ctrl := controller.NewInvoiceController(db, c)
	r.Post("/invoices/payment-notification", ctrl.PaymentNotification)
}
