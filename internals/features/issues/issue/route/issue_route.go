// file: internals/features/issues/issue/route/issue_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sukaza_backend/internals/features/issues/issue/controller"
	"sukaza_backend/internals/helpers/cache"
)

func IssueRoutes(r fiber.Router, db *gorm.DB, c *cache.Cache) {
	ctrl := controller.NewIssueController(db, c)

	g := r.Group("/issues")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Post("/", ctrl.Create)
	g.Patch("/:id", ctrl.Patch)
	g.Put("/:id/status", ctrl.ChangeStatus)
	g.Delete("/:id", ctrl.Delete)
}
