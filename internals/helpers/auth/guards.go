// internals/helpers/auth/guards.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sukaza_backend/internals/constants"
)

// role claim is placed on Locals by the auth middleware
func roleFromLocals(c *fiber.Ctx) string {
	if v, ok := c.Locals("userRole").(string); ok {
		return strings.ToLower(strings.TrimSpace(v))
	}
	return ""
}

func IsAdmin(c *fiber.Ctx) bool   { return roleFromLocals(c) == constants.RoleAdmin }
func IsManager(c *fiber.Ctx) bool { return roleFromLocals(c) == constants.RoleManager }
func IsStaff(c *fiber.Ctx) bool   { return roleFromLocals(c) == constants.RoleStaff }

// HasPermission mirrors the UI's hasPermission(PERMISSION_X) capability check.
func HasPermission(c *fiber.Ctx, perm string) bool {
	return constants.RoleHasPermission(roleFromLocals(c), perm)
}

// RequirePermission is the controller-side guard; returns a ready 403 error.
func RequirePermission(c *fiber.Ctx, perm string) error {
	if !HasPermission(c, perm) {
		return fiber.NewError(fiber.StatusForbidden, "Access denied")
	}
	return nil
}

// GetUserIDFromToken reads the authenticated user id set by the middleware.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user id missing")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user id invalid")
	}
	return id, nil
}
