package middleware

import (
	"planiverse/backend/config"
	"planiverse/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware rejects requests without a valid session token and binds
// the token subject to any :userId route parameter, so users can only reach
// their own records.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}

		if param := c.Params("userId"); param != "" && param != uid {
			return utils.Forbidden(c, "Forbidden")
		}

		c.Locals("userID", uid)
		return c.Next()
	}
}
