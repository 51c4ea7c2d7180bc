package controllers

import "github.com/gofiber/fiber/v2"

// HealthCheck reports server liveness.
func HealthCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "ok",
		"message": "Server is running",
	})
}
