// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	accessRoute "sukaza_backend/internals/features/access/route"
	bookingRoute "sukaza_backend/internals/features/bookings/booking/route"
	documentRoute "sukaza_backend/internals/features/documents/document/route"
	billTemplateRoute "sukaza_backend/internals/features/finance/bill_templates/route"
	invoiceRoute "sukaza_backend/internals/features/finance/invoices/route"
	reportRoute "sukaza_backend/internals/features/finance/reports/route"
	issueRoute "sukaza_backend/internals/features/issues/issue/route"
	propertyRoute "sukaza_backend/internals/features/properties/property/route"
	authRoute "sukaza_backend/internals/features/users/auth/route"
	vaultRoute "sukaza_backend/internals/features/vault/entry/route"
	vendorRoute "sukaza_backend/internals/features/vendors/route"
	"sukaza_backend/internals/helpers/cache"
	authMiddleware "sukaza_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// one shared read cache for all features; mutations invalidate
	// through the keys each controller declares at construction time
	appCache := cache.New(2 * time.Minute)

	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// payment gateway callbacks arrive unauthenticated
	log.Println("[INFO] Setting up PaymentNotificationRoute...")
	invoiceRoute.PaymentNotificationRoute(app.Group("/api"), db, appCache)

	// ===================== PROTECTED =====================
	api := app.Group("/api", authMiddleware.AuthMiddleware(db))

	log.Println("[INFO] Setting up UserRoutes...")
	authRoute.UserRoutes(api, db)

	log.Println("[INFO] Setting up PropertyRoutes...")
	propertyRoute.PropertyRoutes(api, db, appCache)

	log.Println("[INFO] Setting up BookingRoutes...")
	bookingRoute.BookingRoutes(api, db, appCache)

	log.Println("[INFO] Setting up BillTemplateRoutes...")
	billTemplateRoute.BillTemplateRoutes(api, db, appCache)

	log.Println("[INFO] Setting up InvoiceRoutes...")
	invoiceRoute.InvoiceRoutes(api, db, appCache)

	log.Println("[INFO] Setting up ReportRoutes...")
	reportRoute.ReportRoutes(api, db)

	log.Println("[INFO] Setting up DocumentRoutes...")
	documentRoute.DocumentRoutes(api, db, appCache)

	log.Println("[INFO] Setting up IssueRoutes...")
	issueRoute.IssueRoutes(api, db, appCache)

	log.Println("[INFO] Setting up VendorRoutes...")
	vendorRoute.VendorRoutes(api, db, appCache)

	log.Println("[INFO] Setting up AccessRoutes...")
	accessRoute.AccessRoutes(api, db, appCache)

	log.Println("[INFO] Setting up VaultRoutes...")
	vaultRoute.VaultRoutes(api, db)

	log.Println("[INFO] All routes registered")
}
