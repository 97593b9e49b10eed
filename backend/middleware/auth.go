package middleware

import (
	"github.com/gofiber/fiber/v2"

	"habittracker/backend/config"
	"habittracker/backend/models"
	"habittracker/backend/utils"
)

const (
	localUserID = "userID"
	localRole   = "role"
)

// AuthMiddleware verifies the access token and stores the caller's id and role
// in the request locals.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := utils.ExtractClaimsFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, utils.ErrInvalidToken.Error())
		}

		c.Locals(localUserID, claims.Subject)
		c.Locals(localRole, claims.Role)
		return c.Next()
	}
}

// AdminMiddleware must run after AuthMiddleware.
func AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if role, _ := c.Locals(localRole).(string); role != models.RoleAdmin {
			return utils.Forbidden(c, "admin access required")
		}
		return c.Next()
	}
}

// CurrentUserID returns the id AuthMiddleware stored, or "".
func CurrentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(localUserID).(string)
	return id
}
