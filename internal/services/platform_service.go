package services

import (
	"context"
	"errors"
	"strconv"

	"github.com/admaster/backend/internal/apperr"
	"github.com/admaster/backend/internal/models"
	"github.com/admaster/backend/internal/repositories"
	"go.uber.org/zap"
)

type PlatformService struct {
	platformRepo *repositories.PlatformRepo
	log          *zap.Logger
}

func NewPlatformService(platformRepo *repositories.PlatformRepo, log *zap.Logger) *PlatformService {
	return &PlatformService{platformRepo: platformRepo, log: log}
}

func (s *PlatformService) List(ctx context.Context) ([]models.Platform, error) {
	return s.platformRepo.ListActive(ctx)
}

func (s *PlatformService) Get(ctx context.Context, platformID int) (*models.Platform, error) {
	p, err := s.platformRepo.GetByPlatformID(ctx, platformID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperr.NotFound("platform", strconv.Itoa(platformID))
	}
	return p, err
}

func (s *PlatformService) GetMany(ctx context.Context, platformIDs []int) ([]models.Platform, error) {
	if len(platformIDs) == 0 {
		return []models.Platform{}, nil
	}
	return s.platformRepo.GetByPlatformIDs(ctx, platformIDs)
}
