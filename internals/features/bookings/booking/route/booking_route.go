// file: internals/features/bookings/booking/route/booking_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sukaza_backend/internals/features/bookings/booking/controller"
	"sukaza_backend/internals/helpers/cache"
)

func BookingRoutes(r fiber.Router, db *gorm.DB, c *cache.Cache) {
	ctrl := controller.NewBookingController(db, c)

	g := r.Group("/bookings")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Post("/", ctrl.Create)
	g.Patch("/:id", ctrl.Patch)
	g.Put("/:id/status", ctrl.ChangeStatus)
	g.Delete("/:id", ctrl.Delete)
}
