package controllers

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"planiverse/backend/config"
	"planiverse/backend/models"
	"planiverse/backend/services"
	"planiverse/backend/store"
	"planiverse/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

type ProgressController struct {
	Tracker *services.Tracker
	Hub     *store.Hub
	Cfg     *config.Config
}

func NewProgressController(tracker *services.Tracker, hub *store.Hub, cfg *config.Config) *ProgressController {
	return &ProgressController{Tracker: tracker, Hub: hub, Cfg: cfg}
}

// GetProgress godoc
// @Summary Get progress record
// @Description Returns the per-day completion map
// @Tags progress
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/{userId} [get]
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	uid := c.Params("userId")

	progress, err := pc.Tracker.Progress(c.Context(), uid)
	if err != nil {
		return serviceError(c, err, "Progress not found")
	}

	return utils.Success(c, fiber.StatusOK, progress)
}

type updateDayRequest struct {
	DsaCompleted *bool  `json:"dsaCompleted"`
	DevCompleted *bool  `json:"devCompleted"`
	DsaChecklist []bool `json:"dsaChecklist"`
	DevChecklist []bool `json:"devChecklist"`
}

// UpdateDay godoc
// @Summary Update one day's completion state
// @Description Completes a category and/or saves checklist state; completing both categories marks the day complete and advances the current day
// @Tags progress
// @Accept json
// @Produce json
// @Param request body updateDayRequest true "Partial day update"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/{userId}/day/{dayNumber} [post]
func (pc *ProgressController) UpdateDay(c *fiber.Ctx) error {
	uid := c.Params("userId")
	day, err := strconv.Atoi(c.Params("dayNumber"))
	if err != nil || day < 1 {
		return utils.BadRequest(c, "Day number must be a positive integer")
	}

	var input updateDayRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	type operation struct {
		category  models.Category
		checklist []bool
		complete  bool
	}
	var ops []operation
	if input.DsaCompleted != nil && *input.DsaCompleted {
		ops = append(ops, operation{models.CategoryDSA, input.DsaChecklist, true})
	} else if input.DsaChecklist != nil {
		ops = append(ops, operation{models.CategoryDSA, input.DsaChecklist, false})
	}
	if input.DevCompleted != nil && *input.DevCompleted {
		ops = append(ops, operation{models.CategoryDev, input.DevChecklist, true})
	} else if input.DevChecklist != nil {
		ops = append(ops, operation{models.CategoryDev, input.DevChecklist, false})
	}
	if len(ops) == 0 {
		return utils.BadRequest(c, "Nothing to update")
	}

	applied := 0
	for _, op := range ops {
		var err error
		if op.complete {
			err = pc.Tracker.CompleteCategory(c.Context(), uid, day, op.category, op.checklist)
		} else {
			err = pc.Tracker.SaveChecklist(c.Context(), uid, day, op.category, op.checklist)
		}
		switch {
		case err == nil:
			applied++
		case errors.Is(err, services.ErrAlreadyCompleted):
			// Benign no-op; the other category may still apply.
		default:
			return serviceError(c, err, "Progress not found")
		}
	}

	if applied == 0 {
		return utils.SuccessMessage(c, "Category already completed")
	}
	return utils.SuccessMessage(c, "Progress updated successfully")
}

// StreamProgress godoc
// @Summary Stream progress changes
// @Description Server-sent events feed with a progress snapshot on every change
// @Tags progress
// @Produce text/event-stream
// @Success 200
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/{userId}/stream [get]
func (pc *ProgressController) StreamProgress(c *fiber.Ctx) error {
	uid := c.Params("userId")

	if _, err := pc.Tracker.Progress(c.Context(), uid); err != nil {
		return serviceError(c, err, "Progress not found")
	}

	events, cancel := pc.Hub.Subscribe(store.ProgressPath(uid))

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()

		send := func() bool {
			progress, err := pc.Tracker.Progress(context.Background(), uid)
			if err != nil {
				return false
			}
			payload, err := json.Marshal(progress)
			if err != nil {
				return false
			}
			fmt.Fprintf(w, "data: %s\n\n", payload)
			return w.Flush() == nil
		}

		if !send() {
			return
		}

		keepalive := time.NewTicker(25 * time.Second)
		defer keepalive.Stop()

		for {
			select {
			case <-events:
				if !send() {
					return
				}
			case <-keepalive.C:
				fmt.Fprint(w, ": keepalive\n\n")
				if w.Flush() != nil {
					return
				}
			}
		}
	}))

	return nil
}
