package handlers

import (
	"errors"
	"log"
	"math"
	"strings"
	"time"

	"vestra/internal/services/chat"
	"vestra/internal/services/notify"
	"vestra/internal/services/ratelimit"
	"vestra/internal/utils"
	"vestra/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// MessageHandler serves the support chat relay and the password-reset
// rate limit probe. All three endpoints are public.
type MessageHandler struct {
	chatService chat.Service
	limiter     ratelimit.Limiter
	notifier    notify.Service
}

func NewMessageHandler(chatService chat.Service, limiter ratelimit.Limiter, notifier notify.Service) *MessageHandler {
	if chatService == nil || limiter == nil || notifier == nil {
		panic("chat service, limiter and notifier are required")
	}
	return &MessageHandler{
		chatService: chatService,
		limiter:     limiter,
		notifier:    notifier,
	}
}

// SendMessage relays a chat-widget message to the staff inbox.
func (h *MessageHandler) SendMessage(c *fiber.Ctx) error {
	var msg chat.Message
	if err := c.BodyParser(&msg); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	if err := h.chatService.Relay(c.Context(), msg); err != nil {
		switch {
		case errors.Is(err, chat.ErrEmptyMessage), errors.Is(err, chat.ErrInvalidEmail):
			return utils.BadRequest(c, err.Error())
		}
		log.Printf("chat relay failed: %v", err)
		return utils.InternalError(c, "failed to send message")
	}

	return utils.Success(c, fiber.Map{"success": true})
}

// CheckResetRateLimit counts a password-reset attempt for the email and
// reports whether it may proceed. Denials include the seconds until the
// window reopens.
func (h *MessageHandler) CheckResetRateLimit(c *fiber.Ctx) error {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !validation.IsEmail(email) {
		return utils.BadRequest(c, "invalid email address")
	}

	result, err := h.limiter.Check(c.Context(), email)
	if err != nil {
		// Fail open: a broken limiter store must not lock users out of
		// password resets.
		log.Printf("reset rate limit check failed for %s: %v", email, err)
		return utils.Success(c, fiber.Map{"allowed": true})
	}

	if !result.Allowed {
		remaining := int(math.Ceil(time.Until(result.ResetTime).Seconds()))
		if remaining < 0 {
			remaining = 0
		}
		return utils.TooManyRequests(c, fiber.Map{
			"allowed":       false,
			"remainingTime": remaining,
		})
	}

	return utils.Success(c, fiber.Map{
		"allowed":   true,
		"remaining": result.Remaining,
	})
}

// SendResetConfirmation emails the notice that a reset was requested.
func (h *MessageHandler) SendResetConfirmation(c *fiber.Ctx) error {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !validation.IsEmail(email) {
		return utils.BadRequest(c, "invalid email address")
	}

	if err := h.notifier.ResetConfirmation(c.Context(), email); err != nil {
		log.Printf("reset confirmation failed for %s: %v", email, err)
		return utils.InternalError(c, "failed to send confirmation")
	}

	return utils.Success(c, fiber.Map{"success": true})
}
