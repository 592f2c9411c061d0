package handlers

import (
	"bytes"
	"fmt"
	"time"

	domainerr "vestra/internal/errors"
	"vestra/internal/models"
	"vestra/internal/services/activity"
	"vestra/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type ActivityHandler struct {
	activityService activity.Service
}

func NewActivityHandler(activityService activity.Service) *ActivityHandler {
	if activityService == nil {
		panic("activity service is required")
	}
	return &ActivityHandler{activityService: activityService}
}

func filterFromRequest(c *fiber.Ctx) activity.Filter {
	return activity.Filter{
		Type:   c.Query("type", activity.FilterAll),
		Range:  c.Query("range", activity.RangeAll),
		Search: c.Query("search"),
	}
}

// Feed returns the filtered unified timeline.
func (h *ActivityHandler) Feed(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, domainerr.ErrUnauthenticated.Message)
	}

	items, err := h.activityService.Feed(c.Context(), claims.UserID, filterFromRequest(c))
	if err != nil {
		return utils.InternalError(c, "failed to load activity")
	}

	return utils.Success(c, fiber.Map{
		"activities": items,
		"count":      len(items),
	})
}

// ExportCSV streams the filtered timeline as a CSV download.
func (h *ActivityHandler) ExportCSV(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, domainerr.ErrUnauthenticated.Message)
	}

	var buf bytes.Buffer
	if err := h.activityService.ExportCSV(c.Context(), &buf, claims.UserID, filterFromRequest(c)); err != nil {
		return utils.InternalError(c, "failed to export activity")
	}

	filename := fmt.Sprintf("activity-%s.csv", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(buf.Bytes())
}

// ExportJSON streams the filtered timeline as a JSON download.
func (h *ActivityHandler) ExportJSON(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, domainerr.ErrUnauthenticated.Message)
	}

	var buf bytes.Buffer
	if err := h.activityService.ExportJSON(c.Context(), &buf, claims.UserID, filterFromRequest(c)); err != nil {
		return utils.InternalError(c, "failed to export activity")
	}

	filename := fmt.Sprintf("activity-%s.json", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(buf.Bytes())
}
