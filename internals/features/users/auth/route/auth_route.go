// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "sukaza_backend/internals/features/users/auth/controller"
	userController "sukaza_backend/internals/features/users/user/controller"
	authMiddleware "sukaza_backend/internals/middlewares/auth"
	middlewares "sukaza_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	{
		auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
		auth.Post("/google", middlewares.LoginRateLimiter(), ctl.GoogleLogin)
		auth.Post("/refresh", ctl.Refresh)
		auth.Post("/logout", ctl.Logout)
		auth.Get("/me", authMiddleware.AuthMiddleware(db), ctl.Me)
	}
}

func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userController.NewUserController(db)

	users := r.Group("/users")
	{
		users.Get("/", ctl.List)
		users.Post("/", ctl.Create)
		users.Patch("/:id", ctl.Patch)
		users.Delete("/:id", ctl.Delete)
	}
}
