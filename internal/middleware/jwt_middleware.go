package middleware

import (
	"log"
	"strings"

	"badmintonpro/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired is a Fiber middleware to check for a valid JWT token.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := validateBearer(c, authService)
		if !ok {
			return nil
		}

		// Store claims in Fiber context for subsequent handlers
		c.Locals("user_id", claims["user_id"])
		c.Locals("email", claims["email"])
		c.Locals("name", claims["name"])

		return c.Next()
	}
}

// AdminRequired checks for a valid JWT carrying the admin role. Shopper
// tokens are rejected even when otherwise valid.
func AdminRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := validateBearer(c, authService)
		if !ok {
			return nil
		}

		if role, _ := claims["role"].(string); role != "admin" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Admin access required",
			})
		}

		c.Locals("user_id", claims["user_id"])
		c.Locals("role", "admin")
		return c.Next()
	}
}

// OptionalAuth populates the user context when a valid token is present
// and lets the request through anonymously otherwise.
func OptionalAuth(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Next()
		}
		if claims, err := authService.ValidateToken(parts[1]); err == nil {
			c.Locals("user_id", claims["user_id"])
			c.Locals("email", claims["email"])
			c.Locals("name", claims["name"])
		}
		return c.Next()
	}
}

// validateBearer extracts and validates the bearer token, writing the
// error response itself when validation fails.
func validateBearer(c *fiber.Ctx, authService *services.AuthService) (map[string]interface{}, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		_ = c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authorization header is required",
		})
		return nil, false
	}

	// Expected format: "Bearer <token>"
	parts := strings.SplitN(authHeader, " ", 2)
	if !(len(parts) == 2 && parts[0] == "Bearer") {
		_ = c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authorization header format must be 'Bearer <token>'",
		})
		return nil, false
	}

	claims, err := authService.ValidateToken(parts[1])
	if err != nil {
		log.Printf("JWT validation failed: %v", err)
		_ = c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid or expired token",
			"error":   err.Error(),
		})
		return nil, false
	}
	return claims, true
}
