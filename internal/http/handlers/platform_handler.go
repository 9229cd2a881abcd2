package handlers

import (
	"strconv"

	"github.com/admaster/backend/internal/apperr"
	"github.com/admaster/backend/internal/http/dto"
	"github.com/admaster/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type PlatformHandler struct {
	platformService *services.PlatformService
	log             *zap.Logger
}

func NewPlatformHandler(platformService *services.PlatformService, log *zap.Logger) *PlatformHandler {
	return &PlatformHandler{platformService: platformService, log: log}
}

func (h *PlatformHandler) List(c *fiber.Ctx) error {
	platforms, err := h.platformService.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: platforms})
}

func (h *PlatformHandler) Get(c *fiber.Ctx) error {
	platformID, err := strconv.Atoi(c.Params("platformID"))
	if err != nil {
		return apperr.Validation("platform id must be numeric", nil)
	}
	platform, err := h.platformService.Get(c.Context(), platformID)
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: platform})
}
