package handlers

import (
	"github.com/admaster/backend/internal/apperr"
	"github.com/admaster/backend/internal/http/dto"
	"github.com/admaster/backend/internal/middleware"
	"github.com/admaster/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService     *services.UserService
	businessService *services.BusinessService
	log             *zap.Logger
}

func NewUserHandler(userService *services.UserService, businessService *services.BusinessService, log *zap.Logger) *UserHandler {
	return &UserHandler{userService: userService, businessService: businessService, log: log}
}

func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return apperr.Unauthorized("")
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: user})
}

// GetProfile returns the user together with how many businesses they own.
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return apperr.Unauthorized("")
	}
	count, err := h.businessService.Count(c.Context(), user.ClerkID)
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: dto.ProfileView{
		User:            user,
		BusinessesCount: count,
	}})
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("invalid request body", nil)
	}

	user, err := h.userService.UpdateProfile(c.Context(), middleware.ClerkUserID(c),
		req.FirstName, req.LastName, req.ImageURL)
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: user})
}
