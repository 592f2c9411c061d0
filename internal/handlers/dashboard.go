package handlers

import (
	"context"
	"errors"

	domainerr "vestra/internal/errors"
	"vestra/internal/models"
	"vestra/internal/services/dashboard"
	"vestra/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) *DashboardHandler {
	if dashboardService == nil {
		panic("dashboard service is required")
	}
	return &DashboardHandler{dashboardService: dashboardService}
}

// Overview returns everything the dashboard page renders in one call.
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, domainerr.ErrUnauthenticated.Message)
	}

	overview, err := h.dashboardService.Overview(c.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return utils.Respond(c, fiber.StatusGatewayTimeout, fiber.Map{
				"error": "dashboard data took too long to load",
			})
		}
		return utils.InternalError(c, "failed to load dashboard")
	}

	return utils.Success(c, overview)
}
