// file: internals/features/properties/property/route/property_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sukaza_backend/internals/features/properties/property/controller"
	"sukaza_backend/internals/helpers/cache"
)

func PropertyRoutes(r fiber.Router, db *gorm.DB, c *cache.Cache) {
	ctrl := controller.NewPropertyController(db, c)

	g := r.Group("/properties")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Post("/", ctrl.Create)
	g.Patch("/:id", ctrl.Patch)
	g.Put("/:id/highlights", ctrl.ReplaceHighlights)
	g.Post("/:id/photo", ctrl.UploadPhoto)
	g.Delete("/:id", ctrl.Delete)
}
