// Package middleware provides HTTP middleware for the API. It covers JWT
// validation, admin gating, and per-permission checks for the fiber app.
package middleware

import (
	"log"
	"strings"

	domainerr "vestra/internal/errors"
	"vestra/internal/models"
	"vestra/internal/services/auth"
	"vestra/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware validates bearer tokens and loads the claims into the
// request context. A missing header yields the unauthenticated error so
// anonymous visitors are distinguishable from failed logins.
type AuthMiddleware struct {
	authService auth.Service
}

func NewAuthMiddleware(authService auth.Service) *AuthMiddleware {
	if authService == nil {
		panic("auth service is required")
	}
	return &AuthMiddleware{authService: authService}
}

// Handler checks for a Bearer token, validates the signature and expiry,
// and rejects tokens whose version no longer matches the user record.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return utils.Unauthorized(c, domainerr.ErrUnauthenticated.Message)
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return utils.Unauthorized(c, domainerr.ErrInvalidToken.Message)
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	_, claims, err := utils.ParseToken(tokenString)
	if err != nil {
		return utils.Unauthorized(c, domainerr.ErrInvalidToken.Message)
	}

	currentVersion, err := m.authService.GetUserTokenVersion(claims.UserID)
	if err != nil {
		log.Printf("auth: failed to load token version for user %d: %v", claims.UserID, err)
		return utils.Unauthorized(c, domainerr.ErrInvalidToken.Message)
	}
	if claims.TokenVersion != currentVersion {
		return utils.Unauthorized(c, domainerr.ErrSessionExpired.Message)
	}

	c.Locals("claims", claims)
	c.Locals("userID", claims.UserID)
	return c.Next()
}

// AdminAuthMiddleware verifies that the request carries admin claims.
func AdminAuthMiddleware(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, domainerr.ErrUnauthenticated.Message)
	}
	if claims.Role != "admin" {
		return utils.Forbidden(c, "insufficient permissions")
	}
	return c.Next()
}

// HasPermission returns a middleware that checks for a specific permission.
// Admins pass every check.
func HasPermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("claims").(*models.UserClaims)
		if !ok {
			return utils.Unauthorized(c, domainerr.ErrUnauthenticated.Message)
		}
		if claims.Role == "admin" || claims.HasPermission(permission) {
			return c.Next()
		}
		return utils.Forbidden(c, "insufficient permissions")
	}
}
