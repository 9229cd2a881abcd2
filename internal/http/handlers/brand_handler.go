package handlers

import (
	"github.com/admaster/backend/internal/apperr"
	"github.com/admaster/backend/internal/http/dto"
	"github.com/admaster/backend/internal/middleware"
	"github.com/admaster/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BrandHandler struct {
	brandService *services.BrandService
	log          *zap.Logger
}

func NewBrandHandler(brandService *services.BrandService, log *zap.Logger) *BrandHandler {
	return &BrandHandler{brandService: brandService, log: log}
}

func businessIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("businessID"))
	if err != nil {
		return uuid.Nil, apperr.Validation("invalid business id", nil)
	}
	return id, nil
}

// Get returns the brand for a business, building it from the homepage on
// first access.
func (h *BrandHandler) Get(c *fiber.Ctx) error {
	businessID, err := businessIDParam(c)
	if err != nil {
		return err
	}
	brand, err := h.brandService.GetOrCreate(c.Context(), middleware.ClerkUserID(c), businessID)
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: brand})
}

func (h *BrandHandler) Update(c *fiber.Ctx) error {
	businessID, err := businessIDParam(c)
	if err != nil {
		return err
	}
	var req dto.UpdateBrandRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("invalid request body", nil)
	}

	brand, err := h.brandService.Update(c.Context(), middleware.ClerkUserID(c), businessID, services.UpdateBrandInput{
		Description: req.Description,
		LogoURL:     req.LogoURL,
		BrandColors: req.BrandColors,
		ToneOfVoice: req.ToneOfVoice,
		Language:    req.Language,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: brand})
}

func (h *BrandHandler) Complete(c *fiber.Ctx) error {
	businessID, err := businessIDParam(c)
	if err != nil {
		return err
	}
	brand, err := h.brandService.Complete(c.Context(), middleware.ClerkUserID(c), businessID)
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: brand})
}

// Crawl re-extracts the brand from the live homepage.
func (h *BrandHandler) Crawl(c *fiber.Ctx) error {
	businessID, err := businessIDParam(c)
	if err != nil {
		return err
	}
	brand, err := h.brandService.Recrawl(c.Context(), middleware.ClerkUserID(c), businessID)
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: brand})
}
