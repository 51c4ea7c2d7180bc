package controllers

import (
	"strconv"

	"planiverse/backend/curriculum"
	"planiverse/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type CurriculumController struct{}

func NewCurriculumController() *CurriculumController {
	return &CurriculumController{}
}

// GetDay godoc
// @Summary Get the curriculum for a day
// @Description Returns the DSA and development topics scheduled for the day number; the catalog wraps around
// @Tags curriculum
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /curriculum/day/{dayNumber} [get]
func (cc *CurriculumController) GetDay(c *fiber.Ctx) error {
	day, err := strconv.Atoi(c.Params("dayNumber"))
	if err != nil || day < 1 {
		return utils.BadRequest(c, "Day number must be a positive integer")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"dayNumber": day,
		"totalDays": curriculum.TotalDays,
		"dsa":       curriculum.DSATopicFor(day),
		"dev":       curriculum.DevTopicFor(day),
	})
}
