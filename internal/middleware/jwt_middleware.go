package middleware

import (
	"strings"

	"dashboard/internal/models"
	"dashboard/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const adminKey = "admin"

// AuthRequired is a Fiber middleware to check for a valid JWT token.
func AuthRequired(authService *services.AuthService, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Authorization header format must be 'Bearer <token>'",
			})
		}

		payload, err := authService.ValidateToken(parts[1])
		if err != nil {
			logger.Debug("JWT validation failed", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid or expired token",
			})
		}

		c.Locals(adminKey, payload)
		return c.Next()
	}
}

// RequirePage rejects admins that were not granted page. It must run after
// AuthRequired.
func RequirePage(page string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		admin, ok := CurrentAdmin(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Authentication required",
			})
		}
		if !admin.CanAccess(page) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"error":   "You do not have access to this page",
			})
		}
		return c.Next()
	}
}

// CurrentAdmin returns the identity stored by AuthRequired.
func CurrentAdmin(c *fiber.Ctx) (models.TokenPayload, bool) {
	payload, ok := c.Locals(adminKey).(models.TokenPayload)
	return payload, ok
}
