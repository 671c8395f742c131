// file: internals/features/documents/document/route/document_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sukaza_backend/internals/features/documents/document/controller"
	"sukaza_backend/internals/helpers/cache"
)

func DocumentRoutes(r fiber.Router, db *gorm.DB, c *cache.Cache) {
	ctrl := controller.NewDocumentController(db, c)

	g := r.Group("/documents")
	g.Get("/", ctrl.List)
	g.Get("/tree", ctrl.Tree)
	g.Get("/:id", ctrl.GetByID)
	g.Post("/", ctrl.Upload)
	g.Post("/:id/versions", ctrl.UploadVersion)
	g.Patch("/:id", ctrl.Patch)
	g.Delete("/:id", ctrl.Delete)
}
