package controllers

import (
	"planiverse/backend/config"
	"planiverse/backend/services"
	"planiverse/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type AnalyticsController struct {
	Tracker *services.Tracker
	Cfg     *config.Config
}

func NewAnalyticsController(tracker *services.Tracker, cfg *config.Config) *AnalyticsController {
	return &AnalyticsController{Tracker: tracker, Cfg: cfg}
}

// GetAnalytics godoc
// @Summary Get derived statistics
// @Description Returns completion counters and chart datasets computed from the progress record
// @Tags analytics
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /analytics/{userId} [get]
func (ac *AnalyticsController) GetAnalytics(c *fiber.Ctx) error {
	uid := c.Params("userId")

	user, err := ac.Tracker.User(c.Context(), uid)
	if err != nil {
		return serviceError(c, err, "User not found")
	}
	progress, err := ac.Tracker.Progress(c.Context(), uid)
	if err != nil {
		return serviceError(c, err, "Progress not found")
	}

	return utils.Success(c, fiber.StatusOK, services.BuildAnalytics(user, progress))
}
