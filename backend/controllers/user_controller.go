package controllers

import (
	"planiverse/backend/config"
	"planiverse/backend/models"
	"planiverse/backend/services"
	"planiverse/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	Tracker *services.Tracker
	Cfg     *config.Config
}

func NewUserController(tracker *services.Tracker, cfg *config.Config) *UserController {
	return &UserController{Tracker: tracker, Cfg: cfg}
}

// GetUser godoc
// @Summary Get user record
// @Description Returns the user's profile, progress pointer, streak and badges
// @Tags users
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /users/{userId} [get]
func (uc *UserController) GetUser(c *fiber.Ctx) error {
	uid := c.Params("userId")

	user, err := uc.Tracker.User(c.Context(), uid)
	if err != nil {
		return serviceError(c, err, "User not found")
	}

	return utils.Success(c, fiber.StatusOK, user)
}

// AddBadge godoc
// @Summary Add a badge
// @Description Appends a badge to the user's set, idempotent on badge id
// @Tags users
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Badge"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /users/{userId}/badges [post]
func (uc *UserController) AddBadge(c *fiber.Ctx) error {
	uid := c.Params("userId")

	var input struct {
		Badge models.Badge `json:"badge"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	added, err := uc.Tracker.AddBadge(c.Context(), uid, input.Badge)
	if err != nil {
		return serviceError(c, err, "User not found")
	}

	if !added {
		return utils.SuccessMessage(c, "Badge already earned")
	}
	return utils.SuccessMessage(c, "Badge added successfully")
}
