// file: internals/features/access/route/access_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authorizationController "sukaza_backend/internals/features/access/authorization/controller"
	keyController "sukaza_backend/internals/features/access/keys/controller"
	"sukaza_backend/internals/helpers/cache"
)

// AccessRoutes mounts authorizations and the key inventory under /access.
func AccessRoutes(r fiber.Router, db *gorm.DB, c *cache.Cache) {
	g := r.Group("/access")

	authCtrl := authorizationController.NewAuthorizationController(db, c)
	a := g.Group("/authorizations")
	a.Get("/", authCtrl.List)
	a.Post("/", authCtrl.Create)
	a.Patch("/:id", authCtrl.Patch)
	a.Put("/:id/revoke", authCtrl.Revoke)
	a.Delete("/:id", authCtrl.Delete)

	keyCtrl := keyController.NewKeyController(db, c)
	k := g.Group("/keys")
	k.Get("/", keyCtrl.List)
	k.Get("/:id", keyCtrl.GetByID)
	k.Post("/", keyCtrl.Create)
	k.Post("/:id/checkout", keyCtrl.Checkout)
	k.Post("/:id/checkin", keyCtrl.Checkin)
	k.Delete("/:id", keyCtrl.Delete)
}
