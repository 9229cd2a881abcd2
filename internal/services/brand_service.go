package services

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/admaster/backend/internal/apperr"
	"github.com/admaster/backend/internal/crawler"
	"github.com/admaster/backend/internal/events"
	"github.com/admaster/backend/internal/models"
	"github.com/admaster/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BrandService struct {
	brandRepo   *repositories.BrandRepo
	businessSvc *BusinessService
	fetcher     *crawler.Fetcher
	publisher   events.Publisher
	log         *zap.Logger
}

func NewBrandService(
	brandRepo *repositories.BrandRepo,
	businessSvc *BusinessService,
	fetcher *crawler.Fetcher,
	publisher events.Publisher,
	log *zap.Logger,
) *BrandService {
	return &BrandService{
		brandRepo:   brandRepo,
		businessSvc: businessSvc,
		fetcher:     fetcher,
		publisher:   publisher,
		log:         log,
	}
}

// Brand descriptions are capped at 500 characters.
const maxDescriptionLen = 500

func clampDescription(s string) string {
	r := []rune(s)
	if len(r) <= maxDescriptionLen {
		return s
	}
	return string(r[:maxDescriptionLen])
}

// GetOrCreate returns the brand profile for a business, building one from
// the business homepage on first access. A failed homepage fetch still
// yields a brand, just an empty one the user fills in by hand.
func (s *BrandService) GetOrCreate(ctx context.Context, userID string, businessID uuid.UUID) (*models.Brand, error) {
	business, err := s.businessSvc.Get(ctx, userID, businessID)
	if err != nil {
		return nil, err
	}

	brand, err := s.brandRepo.GetByBusinessID(ctx, businessID)
	if err == nil {
		return brand, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	profile := s.extractProfile(ctx, business.Website)
	brand = &models.Brand{
		BusinessID:  businessID,
		Description: clampDescription(profile.Description),
		BrandColors: profile.Colors,
		ToneOfVoice: profile.Tones,
		Language:    profile.Language,
	}
	if profile.LogoURL != "" {
		brand.LogoURL = &profile.LogoURL
	}
	// Upsert so two concurrent first accesses cannot race on the insert.
	if err := s.brandRepo.Upsert(ctx, brand); err != nil {
		return nil, err
	}
	s.log.Info("brand created from homepage",
		zap.String("business_id", businessID.String()),
		zap.String("website", business.Website))
	return brand, nil
}

type UpdateBrandInput struct {
	Description *string
	LogoURL     *string
	BrandColors []string
	ToneOfVoice []string
	Language    *string
}

func (s *BrandService) Update(ctx context.Context, userID string, businessID uuid.UUID, in UpdateBrandInput) (*models.Brand, error) {
	if in.Description != nil && utf8.RuneCountInString(*in.Description) > maxDescriptionLen {
		return nil, apperr.Validation("description exceeds 500 characters",
			map[string]any{"max_length": maxDescriptionLen})
	}

	brand, err := s.GetOrCreate(ctx, userID, businessID)
	if err != nil {
		return nil, err
	}

	if in.Description != nil {
		brand.Description = *in.Description
	}
	if in.LogoURL != nil {
		brand.LogoURL = in.LogoURL
	}
	if in.BrandColors != nil {
		brand.BrandColors = in.BrandColors
	}
	if in.ToneOfVoice != nil {
		brand.ToneOfVoice = in.ToneOfVoice
	}
	if in.Language != nil {
		if *in.Language == "" {
			return nil, apperr.Validation("language cannot be empty", nil)
		}
		brand.Language = *in.Language
	}

	if err := s.brandRepo.Update(ctx, brand); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventBrandUpdated, map[string]any{
		"user_id":     userID,
		"business_id": businessID.String(),
	})
	return brand, nil
}

// Complete marks the brand profile as reviewed by the user.
func (s *BrandService) Complete(ctx context.Context, userID string, businessID uuid.UUID) (*models.Brand, error) {
	brand, err := s.GetOrCreate(ctx, userID, businessID)
	if err != nil {
		return nil, err
	}
	if brand.IsComplete {
		return brand, nil
	}
	brand.IsComplete = true
	if err := s.brandRepo.Update(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// Recrawl refreshes the brand from the live homepage. Extracted values win
// over stored ones; fields the page no longer yields keep their old value.
func (s *BrandService) Recrawl(ctx context.Context, userID string, businessID uuid.UUID) (*models.Brand, error) {
	business, err := s.businessSvc.Get(ctx, userID, businessID)
	if err != nil {
		return nil, err
	}
	brand, err := s.GetOrCreate(ctx, userID, businessID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventCrawlStarted, map[string]any{
		"user_id":     userID,
		"business_id": businessID.String(),
		"website":     business.Website,
	})

	profile := s.extractProfile(ctx, business.Website)
	if profile.Description != "" {
		brand.Description = clampDescription(profile.Description)
	}
	if profile.LogoURL != "" {
		brand.LogoURL = &profile.LogoURL
	}
	if len(profile.Colors) > 0 {
		brand.BrandColors = profile.Colors
	}
	if len(profile.Tones) > 0 {
		brand.ToneOfVoice = profile.Tones
	}
	if profile.Language != "" {
		brand.Language = profile.Language
	}

	if err := s.brandRepo.Update(ctx, brand); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventCrawlCompleted, map[string]any{
		"user_id":     userID,
		"business_id": businessID.String(),
		"website":     business.Website,
	})
	return brand, nil
}

// extractProfile fetches a single page and runs brand extraction over it.
// Any failure degrades to an empty profile with defaults.
func (s *BrandService) extractProfile(ctx context.Context, website string) *crawler.BrandProfile {
	pageURL, err := crawler.NormalizeURL(website)
	if err != nil {
		pageURL = website
	}
	doc, finalURL, err := s.fetcher.FetchPage(ctx, pageURL)
	if err != nil {
		s.log.Warn("homepage fetch failed, using empty brand profile",
			zap.String("website", website), zap.Error(err))
		return &crawler.BrandProfile{
			Colors:   []string{},
			Tones:    []string{"Professional", "Informative"},
			Language: "en",
		}
	}
	return crawler.ExtractBrand(doc, finalURL)
}

func (s *BrandService) publish(ctx context.Context, eventType string, payload map[string]any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, events.StreamUpdates, events.Event{
		Type:    eventType,
		Payload: payload,
	}); err != nil {
		s.log.Warn("event publish failed", zap.String("type", eventType), zap.Error(err))
	}
}
