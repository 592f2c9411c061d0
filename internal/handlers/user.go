package handlers

import (
	"errors"
	"log"

	domainerr "vestra/internal/errors"
	"vestra/internal/models"
	"vestra/internal/repositories"
	"vestra/internal/services/user"
	"vestra/internal/utils"
	"vestra/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService user.Service
	balanceRepo repositories.BalanceRepository
}

func NewUserHandler(userService user.Service, balanceRepo repositories.BalanceRepository) *UserHandler {
	if userService == nil || balanceRepo == nil {
		panic("user service and balance repo are required")
	}
	return &UserHandler{
		userService: userService,
		balanceRepo: balanceRepo,
	}
}

// Register creates a new account with its zeroed balance record.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var input user.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	if input.Email == "" || input.Password == "" {
		return utils.BadRequest(c, "email and password are required")
	}

	created, err := h.userService.Register(c.Context(), input)
	if err != nil {
		var verr validation.ValidationError
		switch {
		case errors.Is(err, user.ErrEmailTaken):
			return utils.Respond(c, fiber.StatusConflict, fiber.Map{"error": err.Error()})
		case errors.Is(err, user.ErrInvalidEmail), errors.Is(err, user.ErrInvalidPassword):
			return utils.BadRequest(c, err.Error())
		case errors.As(err, &verr):
			return utils.BadRequest(c, verr.Message)
		}
		log.Printf("registration failed: %v", err)
		return utils.InternalError(c, "registration failed")
	}

	return utils.Respond(c, fiber.StatusCreated, fiber.Map{
		"user": sanitizeUser(created),
	})
}

// GetProfile returns the authenticated user's profile.
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, domainerr.ErrUnauthenticated.Message)
	}

	u, err := h.userService.GetProfile(c.Context(), claims.UserID)
	if err != nil {
		return utils.NotFound(c, "user not found")
	}

	return utils.Success(c, fiber.Map{"user": sanitizeUser(u)})
}

// UpdateProfile merges the submitted fields into the profile.
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, domainerr.ErrUnauthenticated.Message)
	}

	var input user.ProfileInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	updated, err := h.userService.UpdateProfile(c.Context(), claims.UserID, input)
	if err != nil {
		var verr validation.ValidationError
		if errors.As(err, &verr) {
			return utils.BadRequest(c, verr.Message)
		}
		return utils.BadRequest(c, err.Error())
	}

	return utils.Success(c, fiber.Map{"user": sanitizeUser(updated)})
}

// GetBalance returns the authenticated user's balance breakdown.
func (h *UserHandler) GetBalance(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return utils.Unauthorized(c, domainerr.ErrUnauthenticated.Message)
	}

	balance, err := h.balanceRepo.GetByUserID(claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrBalanceNotFound) {
			return utils.NotFound(c, "balance not found")
		}
		log.Printf("failed to load balance for user %d: %v", claims.UserID, err)
		return utils.InternalError(c, "failed to load balance")
	}

	return utils.Success(c, fiber.Map{"balance": balance})
}

// sanitizeUser strips the password hash before a user record goes on the wire.
func sanitizeUser(u *models.User) fiber.Map {
	return fiber.Map{
		"id":                u.ID,
		"name":              u.Name,
		"email":             u.Email,
		"country":           u.Country,
		"phone":             u.Phone,
		"btc_address":       u.BTCAddress,
		"eth_address":       u.ETHAddress,
		"usdt_address":      u.USDTAddress,
		"avatar_url":        u.AvatarURL,
		"profile_completed": u.ProfileCompleted,
		"role":              u.Role,
		"status":            u.Status,
		"created_at":        u.CreatedAt,
	}
}
