package handlers

import (
	"encoding/json"

	"github.com/admaster/backend/internal/apperr"
	"github.com/admaster/backend/internal/auth"
	"github.com/admaster/backend/internal/config"
	"github.com/admaster/backend/internal/http/dto"
	"github.com/admaster/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type WebhookHandler struct {
	cfg         *config.Config
	userService *services.UserService
	log         *zap.Logger
}

func NewWebhookHandler(cfg *config.Config, userService *services.UserService, log *zap.Logger) *WebhookHandler {
	return &WebhookHandler{cfg: cfg, userService: userService, log: log}
}

// HandleClerk processes identity lifecycle events. The signature is
// checked against the raw body before anything is parsed.
func (h *WebhookHandler) HandleClerk(c *fiber.Ctx) error {
	body := c.Body()

	if h.cfg.ClerkWebhookSecret != "" {
		err := auth.VerifyWebhookSignature(
			h.cfg.ClerkWebhookSecret,
			c.Get("svix-id"),
			c.Get("svix-timestamp"),
			c.Get("svix-signature"),
			body,
			0,
		)
		if err != nil {
			h.log.Warn("webhook signature rejected", zap.Error(err))
			return apperr.Unauthorized("invalid webhook signature")
		}
	}

	var event dto.ClerkWebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return apperr.Validation("invalid webhook payload", nil)
	}

	switch event.Type {
	case "user.created", "user.updated":
		var data dto.ClerkUserData
		if err := json.Unmarshal(event.Data, &data); err != nil {
			return apperr.Validation("invalid user data in webhook", nil)
		}
		if err := h.userService.SyncFromWebhook(c.Context(), data.ID, data.PrimaryEmail(),
			data.FirstName, data.LastName, data.ImageURL); err != nil {
			return err
		}
	case "user.deleted":
		var data dto.ClerkUserData
		if err := json.Unmarshal(event.Data, &data); err != nil {
			return apperr.Validation("invalid user data in webhook", nil)
		}
		if err := h.userService.DeleteFromWebhook(c.Context(), data.ID); err != nil {
			return err
		}
	default:
		h.log.Info("ignoring webhook event", zap.String("type", event.Type))
	}

	return c.JSON(dto.SuccessResponse{OK: true})
}
