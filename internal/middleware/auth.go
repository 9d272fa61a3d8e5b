package middleware

import (
	"strings"

	"theatre-backend/internal/auth"
	"theatre-backend/internal/repository"
	"theatre-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const identityKey = "identity"

// Authenticate validates the Bearer token, resolves the subject against the
// users table and stores a capability-tagged Identity in the request locals.
// A valid token whose user row is missing or non-admin resolves to RoleUser;
// the admin gate turns that into a 403 on protected routes.
func Authenticate(secret string, users repository.UserRepository, logger *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing bearer token")
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		userID, err := auth.ParseAccessToken(secret, raw)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token")
		}

		identity := auth.Identity{UserID: userID, Role: auth.RoleUser}

		user, err := users.FindByID(c.Context(), userID)
		if err != nil {
			logger.WithError(err).WithField("user_id", userID).Error("Failed to resolve user")
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to resolve identity")
		}
		if user != nil && user.Admin {
			identity.Role = auth.RoleAdmin
		}

		c.Locals(identityKey, identity)
		return c.Next()
	}
}

// RequireAdmin gates mutating movie operations. Must run after Authenticate.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := c.Locals(identityKey).(auth.Identity)
		if !ok || !identity.IsAdmin() {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "Admin access required")
		}
		return c.Next()
	}
}

// IdentityFrom returns the resolved identity, or an anonymous one on open
// routes.
func IdentityFrom(c *fiber.Ctx) auth.Identity {
	if identity, ok := c.Locals(identityKey).(auth.Identity); ok {
		return identity
	}
	return auth.Identity{Role: auth.RoleAnonymous}
}
