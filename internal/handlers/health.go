package handlers

import (
	"log"

	"vestra/internal/repositories"
	"vestra/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler serves the liveness probe and the keepalive ping hit by
// the uptime cron to stop the free-tier database from idling out.
type HealthHandler struct {
	userRepo repositories.UserRepository
}

func NewHealthHandler(userRepo repositories.UserRepository) *HealthHandler {
	if userRepo == nil {
		panic("user repo is required")
	}
	return &HealthHandler{userRepo: userRepo}
}

// Health reports process, database and cache liveness.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	dbStatus := "up"
	if sqlDB, err := repositories.DB.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "down"
	}

	cacheStatus := "up"
	if err := repositories.CacheService.HealthCheck(c.Context()); err != nil {
		cacheStatus = "down"
	}

	status := fiber.StatusOK
	if dbStatus == "down" || cacheStatus == "down" {
		status = fiber.StatusServiceUnavailable
	}

	return utils.Respond(c, status, fiber.Map{
		"status":   "ok",
		"database": dbStatus,
		"cache":    cacheStatus,
	})
}

// Keepalive runs a trivial query so the hosted database stays warm. It
// answers both GET and POST.
func (h *HealthHandler) Keepalive(c *fiber.Ctx) error {
	count, err := h.userRepo.Count()
	if err != nil {
		log.Printf("keepalive query failed: %v", err)
		return utils.Respond(c, fiber.StatusServiceUnavailable, fiber.Map{
			"success": false,
			"error":   "database unreachable",
		})
	}

	return utils.Success(c, fiber.Map{
		"success":      true,
		"profileCount": count,
	})
}
