package middleware

import (
	"strings"

	"saicollege/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AdminCookie carries the admin JWT for browser clients.
const AdminCookie = "admin_token"

// TokenFromRequest returns the admin token from the Authorization header or,
// failing that, from the admin cookie.
func TokenFromRequest(c *fiber.Ctx) string {
	if token := c.Get(fiber.HeaderAuthorization); token != "" {
		return strings.TrimPrefix(token, "Bearer ")
	}
	return c.Cookies(AdminCookie)
}

func AdminAuth(jwtManager *auth.JWTManager, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := TokenFromRequest(c)
		if token == "" {
			logger.Warn("Missing admin token", zap.String("path", c.Path()))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Unauthorized",
			})
		}

		claims, err := jwtManager.ValidateToken(token)
		if err != nil || claims.Role != auth.RoleAdmin {
			logger.Warn("Invalid admin token", zap.String("path", c.Path()), zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid or expired token",
			})
		}

		c.Locals("username", claims.Username)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}
