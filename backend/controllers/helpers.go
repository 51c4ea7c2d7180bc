package controllers

import (
	"errors"

	"planiverse/backend/services"
	"planiverse/backend/store"
	"planiverse/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// serviceError maps a tracker error onto the HTTP envelope. The store is
// the only failure source beyond NotFound and validation, so anything else
// is surfaced as unavailable storage.
func serviceError(c *fiber.Ctx, err error, notFoundMessage string) error {
	var verr *services.ValidationError
	switch {
	case errors.Is(err, store.ErrNotFound):
		return utils.NotFound(c, notFoundMessage)
	case errors.As(err, &verr):
		return utils.BadRequest(c, verr.Message)
	default:
		return utils.ServiceUnavailable(c, "Storage unavailable")
	}
}
