// file: internals/features/vendors/route/vendor_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sukaza_backend/internals/features/vendors/controller"
	"sukaza_backend/internals/helpers/cache"
)

func VendorRoutes(r fiber.Router, db *gorm.DB, c *cache.Cache) {
	ctrl := controller.NewVendorController(db, c)

	g := r.Group("/vendors")
	g.Get("/", ctrl.List)
	// static segment before :id so "cois" never parses as a vendor id
	g.Get("/cois/expiring", ctrl.ExpiringCOIs)
	g.Get("/:id", ctrl.GetByID)
	g.Post("/", ctrl.Create)
	g.Patch("/:id", ctrl.Patch)
	g.Post("/:id/cois", ctrl.AddCOI)
	g.Put("/:id/cois/:coiId/document", ctrl.AttachCOIDocument)
	g.Delete("/:id", ctrl.Delete)
}
