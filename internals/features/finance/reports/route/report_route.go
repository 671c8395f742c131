// file: internals/features/finance/reports/route/report_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sukaza_backend/internals/features/finance/reports/controller"
)

func ReportRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReportController(db)

	g := r.Group("/reports")
	g.Get("/invoice-summary", ctrl.InvoiceSummary)
}
