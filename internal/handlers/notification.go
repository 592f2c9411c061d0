package handlers

import (
	"log"

	"vestra/internal/repositories"
	"vestra/internal/services/notify"
	"vestra/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// NotificationHandler accepts notification triggers from trusted internal
// callers (the maturity CLI and the admin console).
type NotificationHandler struct {
	notifier notify.Service
	userRepo repositories.UserRepository
	pending  repositories.PendingInvestmentRepository
	requests repositories.WithdrawalRepository
}

func NewNotificationHandler(
	notifier notify.Service,
	userRepo repositories.UserRepository,
	pending repositories.PendingInvestmentRepository,
	requests repositories.WithdrawalRepository,
) *NotificationHandler {
	if notifier == nil || userRepo == nil || pending == nil || requests == nil {
		panic("notifier and repositories are required")
	}
	return &NotificationHandler{
		notifier: notifier,
		userRepo: userRepo,
		pending:  pending,
		requests: requests,
	}
}

// InvestmentRequest notifies staff about a pending investment by id.
func (h *NotificationHandler) InvestmentRequest(c *fiber.Ctx) error {
	var input struct {
		RequestID uint `json:"request_id"`
	}
	if err := c.BodyParser(&input); err != nil || input.RequestID == 0 {
		return utils.BadRequest(c, "request_id is required")
	}

	pending, err := h.pending.GetByID(input.RequestID)
	if err != nil {
		return utils.NotFound(c, "investment request not found")
	}
	user, err := h.userRepo.GetByID(pending.UserID)
	if err != nil {
		return utils.NotFound(c, "user not found")
	}

	if err := h.notifier.InvestmentRequested(c.Context(), user, pending); err != nil {
		log.Printf("investment notification failed for request %d: %v", input.RequestID, err)
		return utils.InternalError(c, "failed to send notification")
	}

	return utils.Success(c, fiber.Map{"success": true})
}

// WithdrawalRequest notifies staff about a withdrawal request by id.
func (h *NotificationHandler) WithdrawalRequest(c *fiber.Ctx) error {
	var input struct {
		RequestID uint `json:"request_id"`
	}
	if err := c.BodyParser(&input); err != nil || input.RequestID == 0 {
		return utils.BadRequest(c, "request_id is required")
	}

	request, err := h.requests.GetByID(input.RequestID)
	if err != nil {
		return utils.NotFound(c, "withdrawal request not found")
	}
	user, err := h.userRepo.GetByID(request.UserID)
	if err != nil {
		return utils.NotFound(c, "user not found")
	}

	if err := h.notifier.WithdrawalRequested(c.Context(), user, request); err != nil {
		log.Printf("withdrawal notification failed for request %d: %v", input.RequestID, err)
		return utils.InternalError(c, "failed to send notification")
	}

	return utils.Success(c, fiber.Map{"success": true})
}

// MaturityProcessing emails users whose investments were just completed.
// The body is the batch assembled by the maturity notification CLI.
func (h *NotificationHandler) MaturityProcessing(c *fiber.Ctx) error {
	var input struct {
		Investments []notify.MaturedInvestment `json:"investments"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	if len(input.Investments) == 0 {
		return utils.Success(c, fiber.Map{"success": true, "notified": 0})
	}

	if err := h.notifier.MaturityProcessed(c.Context(), input.Investments); err != nil {
		log.Printf("maturity notification batch failed: %v", err)
		return utils.InternalError(c, "failed to send notifications")
	}

	return utils.Success(c, fiber.Map{
		"success":  true,
		"notified": len(input.Investments),
	})
}
