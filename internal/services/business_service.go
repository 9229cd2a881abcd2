package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/admaster/backend/internal/apperr"
	"github.com/admaster/backend/internal/models"
	"github.com/admaster/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

// businessStore is the subset of repositories.BusinessRepo the service
// uses.
type businessStore interface {
	Create(ctx context.Context, b *models.Business) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Business, error)
	ListByUser(ctx context.Context, userID string, status string, limit, offset int) ([]models.Business, error)
	Update(ctx context.Context, b *models.Business) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	CountByUser(ctx context.Context, userID string) (int, error)
}

type BusinessService struct {
	businessRepo businessStore
	log          *zap.Logger
}

func NewBusinessService(businessRepo businessStore, log *zap.Logger) *BusinessService {
	return &BusinessService{businessRepo: businessRepo, log: log}
}

// CreateInput carries the fields a user supplies when registering a business.
type CreateBusinessInput struct {
	Name     string
	Website  string
	Industry string
	Size     string
}

func (s *BusinessService) Create(ctx context.Context, userID string, in CreateBusinessInput) (*models.Business, error) {
	if err := validateBusinessInput(in); err != nil {
		return nil, err
	}

	b := &models.Business{
		UserID:   userID,
		Name:     strings.TrimSpace(in.Name),
		Website:  strings.TrimSpace(in.Website),
		Industry: in.Industry,
		Size:     in.Size,
		Status:   models.BusinessStatusActive,
	}
	if err := s.businessRepo.Create(ctx, b); err != nil {
		return nil, err
	}
	s.log.Info("business created",
		zap.String("business_id", b.ID.String()),
		zap.String("user_id", userID))
	return b, nil
}

// Get returns the business if it exists and belongs to the user. Someone
// else's business looks like a missing one.
func (s *BusinessService) Get(ctx context.Context, userID string, id uuid.UUID) (*models.Business, error) {
	b, err := s.businessRepo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperr.NotFound("business", id.String())
	}
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, apperr.NotFound("business", id.String())
	}
	return b, nil
}

func (s *BusinessService) List(ctx context.Context, userID string, status string, limit, offset int) ([]models.Business, error) {
	if status != "" && !models.IsValidBusinessStatus(status) {
		return nil, apperr.Validation(fmt.Sprintf("invalid status filter: %q", status), nil)
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.businessRepo.ListByUser(ctx, userID, status, limit, offset)
}

type UpdateBusinessInput struct {
	Name     *string
	Website  *string
	Industry *string
	Size     *string
	Status   *string
}

func (s *BusinessService) Update(ctx context.Context, userID string, id uuid.UUID, in UpdateBusinessInput) (*models.Business, error) {
	b, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, apperr.Validation("name cannot be empty", nil)
		}
		b.Name = strings.TrimSpace(*in.Name)
	}
	if in.Website != nil {
		b.Website = strings.TrimSpace(*in.Website)
	}
	if in.Industry != nil {
		if !models.IsValidIndustry(*in.Industry) {
			return nil, apperr.Validation(fmt.Sprintf("unknown industry: %q", *in.Industry), nil)
		}
		b.Industry = *in.Industry
	}
	if in.Size != nil {
		if !models.IsValidBusinessSize(*in.Size) {
			return nil, apperr.Validation(fmt.Sprintf("unknown business size: %q", *in.Size), nil)
		}
		b.Size = *in.Size
	}
	if in.Status != nil {
		if !models.IsValidBusinessStatus(*in.Status) {
			return nil, apperr.Validation(fmt.Sprintf("unknown status: %q", *in.Status), nil)
		}
		b.Status = *in.Status
	}

	if err := s.businessRepo.Update(ctx, b); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperr.NotFound("business", id.String())
		}
		return nil, err
	}
	return b, nil
}

// Delete removes a business. Brands and campaigns under it go with it.
func (s *BusinessService) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	deleted, err := s.businessRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("business", id.String())
	}
	s.log.Info("business deleted", zap.String("business_id", id.String()))
	return nil
}

func (s *BusinessService) HasBusiness(ctx context.Context, userID string) (bool, error) {
	n, err := s.Count(ctx, userID)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Count returns the number of businesses owned by the user.
func (s *BusinessService) Count(ctx context.Context, userID string) (int, error) {
	return s.businessRepo.CountByUser(ctx, userID)
}

func validateBusinessInput(in CreateBusinessInput) error {
	details := map[string]any{}
	if strings.TrimSpace(in.Name) == "" {
		details["name"] = "required"
	}
	if strings.TrimSpace(in.Website) == "" {
		details["website"] = "required"
	}
	if !models.IsValidIndustry(in.Industry) {
		details["industry"] = fmt.Sprintf("unknown industry: %q", in.Industry)
	}
	if !models.IsValidBusinessSize(in.Size) {
		details["size"] = fmt.Sprintf("unknown business size: %q", in.Size)
	}
	if len(details) > 0 {
		return apperr.Validation("invalid business", details)
	}
	return nil
}
