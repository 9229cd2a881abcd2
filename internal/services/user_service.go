package services

import (
	"context"
	"errors"

	"github.com/admaster/backend/internal/apperr"
	"github.com/admaster/backend/internal/auth"
	"github.com/admaster/backend/internal/models"
	"github.com/admaster/backend/internal/repositories"
	"go.uber.org/zap"
)

type UserService struct {
	userRepo *repositories.UserRepo
	log      *zap.Logger
}

func NewUserService(userRepo *repositories.UserRepo, log *zap.Logger) *UserService {
	return &UserService{userRepo: userRepo, log: log}
}

func (s *UserService) GetByClerkID(ctx context.Context, clerkID string) (*models.User, error) {
	u, err := s.userRepo.GetByClerkID(ctx, clerkID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperr.NotFound("user", clerkID)
	}
	return u, err
}

// Provision ensures a local user row exists for an authenticated identity.
// Called on first sight of a valid token; profile fields come from the
// token claims when the template carries them, with a synthetic email
// until the identity webhook delivers the real one.
func (s *UserService) Provision(ctx context.Context, claims *auth.TokenClaims) (*models.User, error) {
	u, err := s.userRepo.GetByClerkID(ctx, claims.Subject)
	if err == nil {
		_ = s.userRepo.UpdateLastLogin(ctx, claims.Subject)
		return u, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	u = &models.User{
		ClerkID: claims.Subject,
		Email:   claims.Email,
	}
	if u.Email == "" {
		u.Email = claims.Subject + "@clerk.user"
	}
	if claims.FirstName != "" {
		u.FirstName = &claims.FirstName
	}
	if claims.LastName != "" {
		u.LastName = &claims.LastName
	}
	if err := s.userRepo.Upsert(ctx, u); err != nil {
		return nil, err
	}
	s.log.Info("provisioned user from token", zap.String("clerk_id", claims.Subject))
	return u, nil
}

// UpdateProfile changes the fields a user can edit themselves.
func (s *UserService) UpdateProfile(ctx context.Context, clerkID string, firstName, lastName, imageURL *string) (*models.User, error) {
	u, err := s.GetByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}
	if firstName != nil {
		u.FirstName = firstName
	}
	if lastName != nil {
		u.LastName = lastName
	}
	if imageURL != nil {
		u.ImageURL = imageURL
	}
	if err := s.userRepo.Upsert(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// SyncFromWebhook applies a user.created or user.updated identity event.
func (s *UserService) SyncFromWebhook(ctx context.Context, clerkID, email string, firstName, lastName, imageURL *string) error {
	if clerkID == "" || email == "" {
		return apperr.Validation("webhook payload missing user id or email", nil)
	}
	u := &models.User{
		ClerkID:   clerkID,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		ImageURL:  imageURL,
	}
	if err := s.userRepo.Upsert(ctx, u); err != nil {
		return err
	}
	s.log.Info("synced user from webhook", zap.String("clerk_id", clerkID))
	return nil
}

// DeleteFromWebhook applies a user.deleted identity event. Deleting an
// unknown user is not an error.
func (s *UserService) DeleteFromWebhook(ctx context.Context, clerkID string) error {
	deleted, err := s.userRepo.Delete(ctx, clerkID)
	if err != nil {
		return err
	}
	if deleted {
		s.log.Info("deleted user from webhook", zap.String("clerk_id", clerkID))
	}
	return nil
}
