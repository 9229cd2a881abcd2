package handlers

import (
	"strconv"

	"github.com/admaster/backend/internal/apperr"
	"github.com/admaster/backend/internal/http/dto"
	"github.com/admaster/backend/internal/middleware"
	"github.com/admaster/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BusinessHandler struct {
	businessService *services.BusinessService
	log             *zap.Logger
}

func NewBusinessHandler(businessService *services.BusinessService, log *zap.Logger) *BusinessHandler {
	return &BusinessHandler{businessService: businessService, log: log}
}

func (h *BusinessHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateBusinessRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("invalid request body", nil)
	}

	business, err := h.businessService.Create(c.Context(), middleware.ClerkUserID(c), services.CreateBusinessInput{
		Name:     req.Name,
		Website:  req.Website,
		Industry: req.Industry,
		Size:     req.Size,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: business})
}

func (h *BusinessHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	businesses, err := h.businessService.List(c.Context(), middleware.ClerkUserID(c),
		c.Query("status"), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: businesses})
}

func (h *BusinessHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperr.Validation("invalid business id", nil)
	}
	business, err := h.businessService.Get(c.Context(), middleware.ClerkUserID(c), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: business})
}

func (h *BusinessHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperr.Validation("invalid business id", nil)
	}
	var req dto.UpdateBusinessRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("invalid request body", nil)
	}

	business, err := h.businessService.Update(c.Context(), middleware.ClerkUserID(c), id, services.UpdateBusinessInput{
		Name:     req.Name,
		Website:  req.Website,
		Industry: req.Industry,
		Size:     req.Size,
		Status:   req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: business})
}

func (h *BusinessHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperr.Validation("invalid business id", nil)
	}
	if err := h.businessService.Delete(c.Context(), middleware.ClerkUserID(c), id); err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *BusinessHandler) HasBusiness(c *fiber.Ctx) error {
	has, err := h.businessService.HasBusiness(c.Context(), middleware.ClerkUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.HasBusinessResponse{HasBusiness: has})
}
