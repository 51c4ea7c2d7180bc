package controllers

import (
	"planiverse/backend/auth"
	"planiverse/backend/config"
	"planiverse/backend/services"
	"planiverse/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Tracker  *services.Tracker
	Verifier auth.Verifier
	Cfg      *config.Config
}

func NewAuthController(tracker *services.Tracker, verifier auth.Verifier, cfg *config.Config) *AuthController {
	return &AuthController{Tracker: tracker, Verifier: verifier, Cfg: cfg}
}

// CreateSession godoc
// @Summary Exchange an identity provider token for a session
// @Description Verifies the ID token, initializes the user's records on first sign-in and returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "ID token"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/session [post]
func (ac *AuthController) CreateSession(c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"idToken"`
		Name    string `json:"name"`
		Email   string `json:"email"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	identity, err := ac.Verifier.Verify(c.Context(), input.IDToken)
	if err != nil {
		return utils.Unauthorized(c, "Invalid ID token")
	}

	// Profile fields from the token win over the request body hints.
	name := identity.Name
	if name == "" {
		name = input.Name
	}
	email := identity.Email
	if email == "" {
		email = input.Email
	}

	user, progress, err := ac.Tracker.EnsureInitialized(c.Context(), identity.UID, name, email)
	if err != nil {
		return serviceError(c, err, "User not found")
	}

	token, err := utils.GenerateSessionToken(identity.UID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"token":    token,
		"userId":   identity.UID,
		"user":     user,
		"progress": progress,
	})
}
