package handlers

import (
	"errors"

	domainerr "vestra/internal/errors"
	"vestra/internal/models"
	"vestra/internal/services/withdrawal"
	"vestra/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type WithdrawalHandler struct {
	withdrawalService withdrawal.Service
}

func NewWithdrawalHandler(withdrawalService withdrawal.Service) *WithdrawalHandler {
	if withdrawalService == nil {
		panic("withdrawal service is required")
	}
	return &WithdrawalHandler{withdrawalService: withdrawalService}
}

// Submit records a withdrawal request awaiting staff approval.
func (h *WithdrawalHandler) Submit(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, domainerr.ErrUnauthenticated.Message)
	}

	var input withdrawal.SubmitInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	request, err := h.withdrawalService.Submit(c.Context(), claims.UserID, input)
	if err != nil {
		switch {
		case errors.Is(err, withdrawal.ErrBelowMinimum),
			errors.Is(err, withdrawal.ErrInvalidPaymentMethod),
			errors.Is(err, withdrawal.ErrMissingWalletAddress):
			return utils.BadRequest(c, err.Error())
		case errors.Is(err, domainerr.ErrInsufficientBalance):
			return utils.BadRequest(c, domainerr.ErrInsufficientBalance.Message)
		}
		return utils.InternalError(c, "failed to submit withdrawal request")
	}

	return utils.Respond(c, fiber.StatusCreated, fiber.Map{
		"request": request,
	})
}

// List returns the user's withdrawal requests.
func (h *WithdrawalHandler) List(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, domainerr.ErrUnauthenticated.Message)
	}

	requests, err := h.withdrawalService.ListByUser(c.Context(), claims.UserID)
	if err != nil {
		return utils.InternalError(c, "failed to load withdrawal requests")
	}

	return utils.Success(c, fiber.Map{"requests": requests})
}
