package handlers

import (
	"errors"

	domainerr "vestra/internal/errors"
	"vestra/internal/models"
	"vestra/internal/services/investment"
	"vestra/internal/services/plan"
	"vestra/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type InvestmentHandler struct {
	investmentService investment.Service
}

func NewInvestmentHandler(investmentService investment.Service) *InvestmentHandler {
	if investmentService == nil {
		panic("investment service is required")
	}
	return &InvestmentHandler{investmentService: investmentService}
}

// Submit records a pending investment request awaiting staff approval.
func (h *InvestmentHandler) Submit(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, domainerr.ErrUnauthenticated.Message)
	}

	var input investment.SubmitInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	pending, err := h.investmentService.Submit(c.Context(), claims.UserID, input)
	if err != nil {
		switch {
		case errors.Is(err, plan.ErrPlanNotFound):
			return utils.NotFound(c, err.Error())
		case errors.Is(err, investment.ErrAmountOutOfRange),
			errors.Is(err, investment.ErrInvalidPaymentMethod),
			errors.Is(err, plan.ErrPlanInactive):
			return utils.BadRequest(c, err.Error())
		}
		return utils.InternalError(c, "failed to submit investment request")
	}

	return utils.Respond(c, fiber.StatusCreated, fiber.Map{
		"request": pending,
	})
}

// List returns the user's investments with their derived progress.
func (h *InvestmentHandler) List(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, domainerr.ErrUnauthenticated.Message)
	}

	views, err := h.investmentService.ListByUser(c.Context(), claims.UserID)
	if err != nil {
		return utils.InternalError(c, "failed to load investments")
	}

	return utils.Success(c, fiber.Map{"investments": views})
}

// ListPending returns the user's investment requests.
func (h *InvestmentHandler) ListPending(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, domainerr.ErrUnauthenticated.Message)
	}

	pending, err := h.investmentService.ListPendingByUser(c.Context(), claims.UserID)
	if err != nil {
		return utils.InternalError(c, "failed to load pending investments")
	}

	return utils.Success(c, fiber.Map{"requests": pending})
}
