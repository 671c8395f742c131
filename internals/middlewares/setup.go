package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMiddleware "sukaza_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the cross-cutting middlewares in order:
// recovery first so everything below it is panic-safe.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
