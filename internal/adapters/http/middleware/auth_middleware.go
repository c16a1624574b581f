package middleware

import (
	"errors"
	"strings"

	"donorly/internal/core/services"
	"donorly/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PrincipalKey is the locals key holding the resolved principal
const PrincipalKey = "principal"

// Protect creates authentication middleware that resolves the bearer token
// to a donor or organization principal
func Protect(identityService *services.IdentityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var token string

		authHeader := c.Get("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if token == "" {
			return response.Unauthorized(c, "Not authorized, no token")
		}

		principal, err := identityService.ResolvePrincipal(c.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTokenExpired):
				return response.Unauthorized(c, "Not authorized, token expired")
			case errors.Is(err, services.ErrPrincipalNotFound):
				return response.Unauthorized(c, "Not authorized, user not found")
			default:
				return response.Unauthorized(c, "Not authorized, token failed")
			}
		}

		c.Locals(PrincipalKey, principal)
		return c.Next()
	}
}

// RequireDonor allows only donor principals
func RequireDonor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal := GetPrincipal(c)
		if principal == nil || !principal.IsDonor() {
			return response.Forbidden(c, "Donor account required")
		}
		return c.Next()
	}
}

// RequireOrganization allows only organization principals
func RequireOrganization() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal := GetPrincipal(c)
		if principal == nil || !principal.IsOrganization() {
			return response.Forbidden(c, "Organization account required")
		}
		return c.Next()
	}
}

// GetPrincipal returns the resolved principal, or nil outside Protect
func GetPrincipal(c *fiber.Ctx) *services.Principal {
	principal, ok := c.Locals(PrincipalKey).(*services.Principal)
	if !ok {
		return nil
	}
	return principal
}
