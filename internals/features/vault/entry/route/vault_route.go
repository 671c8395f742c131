// file: internals/features/vault/entry/route/vault_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sukaza_backend/internals/features/vault/entry/controller"
	"sukaza_backend/internals/middlewares"
)

func VaultRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewVaultController(db)

	g := r.Group("/vault")
	g.Put("/master-password", ctrl.SetMasterPassword)
	g.Get("/entries", ctrl.List)
	g.Post("/entries", ctrl.Create)
	// reveal gets its own tighter limiter on top of the global one
	g.Post("/entries/:id/reveal", middlewares.VaultRevealRateLimiter(), ctrl.Reveal)
	g.Delete("/entries/:id", ctrl.Delete)
}
