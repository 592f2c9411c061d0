package handlers

import (
	"errors"
	"strconv"

	"vestra/internal/services/plan"
	"vestra/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type PlanHandler struct {
	planService plan.Service
}

func NewPlanHandler(planService plan.Service) *PlanHandler {
	if planService == nil {
		panic("plan service is required")
	}
	return &PlanHandler{planService: planService}
}

// List returns the active plan catalogue.
func (h *PlanHandler) List(c *fiber.Ctx) error {
	plans, err := h.planService.List(c.Context())
	if err != nil {
		return utils.InternalError(c, "failed to load plans")
	}
	return utils.Success(c, fiber.Map{"plans": plans})
}

// Quote returns the simple-interest projection for an amount under a plan.
func (h *PlanHandler) Quote(c *fiber.Ctx) error {
	planID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "invalid plan id")
	}
	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil {
		return utils.BadRequest(c, "invalid amount")
	}

	quote, err := h.planService.QuoteFor(c.Context(), uint(planID), amount)
	if err != nil {
		switch {
		case errors.Is(err, plan.ErrPlanNotFound):
			return utils.NotFound(c, err.Error())
		case errors.Is(err, plan.ErrPlanInactive),
			errors.Is(err, plan.ErrAmountOutOfRange),
			errors.Is(err, plan.ErrInvalidAmount):
			return utils.BadRequest(c, err.Error())
		}
		return utils.InternalError(c, "failed to build quote")
	}

	return utils.Success(c, fiber.Map{"quote": quote})
}
