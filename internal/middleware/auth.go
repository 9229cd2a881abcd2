package middleware

import (
	"strings"

	"github.com/admaster/backend/internal/apperr"
	"github.com/admaster/backend/internal/auth"
	"github.com/admaster/backend/internal/models"
	"github.com/admaster/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthMiddleware verifies the bearer token and loads (or provisions) the
// local user row for the authenticated identity.
func AuthMiddleware(verifier *auth.ClerkVerifier, userSvc *services.UserService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return apperr.Unauthorized("missing Authorization header")
		}
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return apperr.Unauthorized("Authorization header must be a bearer token")
		}

		claims, err := verifier.Verify(c.Context(), token)
		if err != nil {
			log.Debug("token verification failed", zap.Error(err))
			return apperr.Unauthorized("invalid or expired token")
		}

		user, err := userSvc.Provision(c.Context(), claims)
		if err != nil {
			return err
		}

		c.Locals(CtxClerkUserID, claims.Subject)
		c.Locals(CtxUser, user)
		return c.Next()
	}
}

// ClerkUserID returns the authenticated user's Clerk ID, set by
// AuthMiddleware.
func ClerkUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(CtxClerkUserID).(string)
	return id
}

// CurrentUser returns the authenticated user row, set by AuthMiddleware.
func CurrentUser(c *fiber.Ctx) *models.User {
	u, _ := c.Locals(CtxUser).(*models.User)
	return u
}
