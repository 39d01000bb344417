package middleware

import (
	"errors"
	"log"
	"strings"

	"strawberryroute/internal/models"
	"strawberryroute/internal/services"

	"github.com/gofiber/fiber/v2"
)

const claimsKey = "claims"

// AuthRequired is a Fiber middleware factory guarding a route with token
// verification and role membership. On success the decoded claims are stored
// in the request locals for downstream handlers; any failure terminates the
// request with 401 or 403. One reusable gate, parameterized by the allowed
// roles, so token parsing is never duplicated across routes.
func AuthRequired(authService *services.AuthService, allowedRoles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := authService.VerifyToken(parts[1])
		if err != nil {
			if !errors.Is(err, services.ErrExpiredToken) {
				log.Printf("JWT validation failed: %v", err)
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		allowed := false
		for _, role := range allowedRoles {
			if claims.Role == role {
				allowed = true
				break
			}
		}
		if !allowed {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Access denied",
			})
		}

		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// ClaimsFromContext returns the claims attached by AuthRequired, or nil when
// the route was not guarded.
func ClaimsFromContext(c *fiber.Ctx) *services.Claims {
	claims, _ := c.Locals(claimsKey).(*services.Claims)
	return claims
}
