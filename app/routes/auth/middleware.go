package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const claimsKey = "claims"

// AuthMiddleware validates the JWT from the cookie or the Authorization
// header and stashes the claims on the request context.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		header := c.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}
	}
	if tokenString == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
	}

	c.Locals(claimsKey, claims)
	return c.Next()
}

// AdminOnly gates mutating payment routes to administrators.
func AdminOnly(c *fiber.Ctx) error {
	claims := Claims(c)
	if claims == nil || !claims.HasRole("admin") {
		return fiber.NewError(fiber.StatusForbidden, "Administrator role required")
	}
	return c.Next()
}

// Claims returns the authenticated claims, nil when unauthenticated.
func Claims(c *fiber.Ctx) *JWTClaims {
	claims, _ := c.Locals(claimsKey).(*JWTClaims)
	return claims
}
