package handlers

import (
	"errors"
	"strconv"

	domainerr "vestra/internal/errors"
	"vestra/internal/models"
	"vestra/internal/repositories"
	"vestra/internal/services/admin"
	"vestra/internal/utils"
	"vestra/internal/utils/pagination"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	adminService admin.Service
	userRepo     repositories.UserRepository
}

func NewAdminHandler(adminService admin.Service, userRepo repositories.UserRepository) *AdminHandler {
	if adminService == nil || userRepo == nil {
		panic("admin service and user repo are required")
	}
	return &AdminHandler{
		adminService: adminService,
		userRepo:     userRepo,
	}
}

func adminClaims(c *fiber.Ctx) (*models.UserClaims, bool) {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	return claims, ok
}

func decisionID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	return uint(id), err
}

// decisionError maps the admin service errors onto HTTP statuses.
func decisionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, admin.ErrNotFound):
		return utils.NotFound(c, err.Error())
	case errors.Is(err, admin.ErrAlreadyDecided):
		return utils.Respond(c, fiber.StatusConflict, fiber.Map{"error": err.Error()})
	case errors.Is(err, domainerr.ErrInsufficientBalance):
		return utils.BadRequest(c, domainerr.ErrInsufficientBalance.Message)
	}
	return utils.InternalError(c, "decision failed")
}

// ListPendingInvestments returns investment requests, filtered by status.
func (h *AdminHandler) ListPendingInvestments(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)
	status := c.Query("status", models.PendingStatusPending)

	requests, total, err := h.adminService.ListPendingInvestments(c.Context(), status, p.Offset, p.Limit)
	if err != nil {
		return utils.InternalError(c, "failed to load investment requests")
	}
	p.Total = total

	return utils.Success(c, pagination.Response(p, requests))
}

// ApproveInvestment converts a pending request into a live investment.
func (h *AdminHandler) ApproveInvestment(c *fiber.Ctx) error {
	claims, ok := adminClaims(c)
	if !ok {
		return utils.Unauthorized(c, domainerr.ErrUnauthenticated.Message)
	}
	id, err := decisionID(c)
	if err != nil {
		return utils.BadRequest(c, "invalid request id")
	}

	inv, err := h.adminService.ApproveInvestment(c.Context(), id, claims.UserID)
	if err != nil {
		return decisionError(c, err)
	}

	return utils.Success(c, fiber.Map{"investment": inv})
}

// RejectInvestment declines a pending investment request.
func (h *AdminHandler) RejectInvestment(c *fiber.Ctx) error {
	claims, ok := adminClaims(c)
	if !ok {
		return utils.Unauthorized(c, domainerr.ErrUnauthenticated.Message)
	}
	id, err := decisionID(c)
	if err != nil {
		return utils.BadRequest(c, "invalid request id")
	}

	var input struct {
		Notes string `json:"notes"`
	}
	if err := c.BodyParser(&input); err != nil && len(c.Body()) > 0 {
		return utils.BadRequest(c, "invalid request body")
	}

	if err := h.adminService.RejectInvestment(c.Context(), id, claims.UserID, input.Notes); err != nil {
		return decisionError(c, err)
	}

	return utils.Success(c, fiber.Map{"message": "investment request rejected"})
}

// ListWithdrawals returns withdrawal requests, filtered by status.
func (h *AdminHandler) ListWithdrawals(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)
	status := c.Query("status", models.WithdrawalStatusPending)

	requests, total, err := h.adminService.ListWithdrawals(c.Context(), status, p.Offset, p.Limit)
	if err != nil {
		return utils.InternalError(c, "failed to load withdrawal requests")
	}
	p.Total = total

	return utils.Success(c, pagination.Response(p, requests))
}

// ApproveWithdrawal debits the balance and settles the request.
func (h *AdminHandler) ApproveWithdrawal(c *fiber.Ctx) error {
	claims, ok := adminClaims(c)
	if !ok {
		return utils.Unauthorized(c, domainerr.ErrUnauthenticated.Message)
	}
	id, err := decisionID(c)
	if err != nil {
		return utils.BadRequest(c, "invalid request id")
	}

	var input struct {
		Notes string `json:"notes"`
	}
	if err := c.BodyParser(&input); err != nil && len(c.Body()) > 0 {
		return utils.BadRequest(c, "invalid request body")
	}

	if err := h.adminService.ApproveWithdrawal(c.Context(), id, claims.UserID, input.Notes); err != nil {
		return decisionError(c, err)
	}

	return utils.Success(c, fiber.Map{"message": "withdrawal approved"})
}

// RejectWithdrawal declines a pending withdrawal request.
func (h *AdminHandler) RejectWithdrawal(c *fiber.Ctx) error {
	claims, ok := adminClaims(c)
	if !ok {
		return utils.Unauthorized(c, domainerr.ErrUnauthenticated.Message)
	}
	id, err := decisionID(c)
	if err != nil {
		return utils.BadRequest(c, "invalid request id")
	}

	var input struct {
		Notes string `json:"notes"`
	}
	if err := c.BodyParser(&input); err != nil && len(c.Body()) > 0 {
		return utils.BadRequest(c, "invalid request body")
	}

	if err := h.adminService.RejectWithdrawal(c.Context(), id, claims.UserID, input.Notes); err != nil {
		return decisionError(c, err)
	}

	return utils.Success(c, fiber.Map{"message": "withdrawal rejected"})
}

// ListUsers returns registered accounts, newest first.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)

	users, total, err := h.userRepo.List(p.Offset, p.Limit)
	if err != nil {
		return utils.InternalError(c, "failed to load users")
	}
	p.Total = total

	sanitized := make([]fiber.Map, 0, len(users))
	for i := range users {
		sanitized = append(sanitized, sanitizeUser(&users[i]))
	}

	return utils.Success(c, pagination.Response(p, sanitized))
}
