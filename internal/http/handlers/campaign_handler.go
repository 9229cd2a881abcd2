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

type CampaignHandler struct {
	campaignService *services.CampaignService
	log             *zap.Logger
}

func NewCampaignHandler(campaignService *services.CampaignService, log *zap.Logger) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService, log: log}
}

// ListGroups returns the user's campaign groups in the list envelope with
// aggregated totals and the effective date window.
func (h *CampaignHandler) ListGroups(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	campaigns, err := h.campaignService.List(c.Context(), middleware.ClerkUserID(c),
		c.Query("status"), limit, offset)
	if err != nil {
		return err
	}

	resp := dto.BuildCampaignList(campaigns, c.Query("date_start"), c.Query("date_end"))
	return c.JSON(resp)
}

func (h *CampaignHandler) CreateGroup(c *fiber.Ctx) error {
	var req dto.CreateCampaignGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("invalid request body", nil)
	}

	businessID, err := uuid.Parse(req.BusinessID)
	if err != nil {
		return apperr.Validation("invalid business_id", nil)
	}

	targetURL := req.URL
	if targetURL == "" && req.WebsiteURL != nil {
		targetURL = *req.WebsiteURL
	}

	campaign, err := h.campaignService.Create(c.Context(), middleware.ClerkUserID(c), services.CreateCampaignInput{
		BusinessID:      businessID,
		Title:           req.Title,
		URL:             targetURL,
		Phone:           req.Phone,
		AdvertisingGoal: req.AdvertisingGoal,
		ConversionGoal:  req.ConversionGoal,
		Conversion:      req.Conversion,
		DailyBudget:     req.DailyBudget,
		BudgetCurrency:  req.BudgetCurrency,
		Language:        req.Language,
		LocationAreas:   dto.NormalizeLocationAreas(req.Locations),
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) UpdateGroupStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperr.Validation("invalid campaign id", nil)
	}

	var req dto.UpdateCampaignStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("invalid request body", nil)
	}

	campaign, err := h.campaignService.UpdateStatus(c.Context(), middleware.ClerkUserID(c), id, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: dto.NewCampaignGroupView(campaign)})
}

func (h *CampaignHandler) GetGroup(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperr.Validation("invalid campaign id", nil)
	}
	campaign, err := h.campaignService.Get(c.Context(), middleware.ClerkUserID(c), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: dto.NewCampaignGroupView(campaign)})
}
