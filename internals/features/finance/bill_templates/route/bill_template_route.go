// file: internals/features/finance/bill_templates/route/bill_template_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sukaza_backend/internals/features/finance/bill_templates/controller"
	"sukaza_backend/internals/helpers/cache"
)

// BillTemplateRoutes mounts template CRUD plus duplicate and
// property-assignment endpoints under the given (authenticated) router.
func BillTemplateRoutes(r fiber.Router, db *gorm.DB, c *cache.Cache) {
	ctrl := controller.NewBillTemplateController(db, c)

	g := r.Group("/bill-templates")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Post("/", ctrl.Create)
	g.Patch("/:id", ctrl.Patch)
	g.Put("/:id/items", ctrl.ReplaceItems)
	g.Post("/:id/duplicate", ctrl.Duplicate)
	g.Put("/:id/properties", ctrl.AssignProperties)
	g.Delete("/:id", ctrl.Delete)
}
