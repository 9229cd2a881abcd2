package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/admaster/backend/internal/apperr"
	"github.com/admaster/backend/internal/config"
	"github.com/admaster/backend/internal/crawler"
	"github.com/admaster/backend/internal/events"
	"github.com/admaster/backend/internal/models"
	"github.com/admaster/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CampaignService struct {
	campaignRepo *repositories.CampaignRepo
	platformRepo *repositories.PlatformRepo
	businessSvc  *BusinessService
	brandSvc     *BrandService
	siteCrawler  *crawler.SiteCrawler
	analyzer     *Analyzer
	publisher    events.Publisher
	cfg          *config.Config
	log          *zap.Logger
}

func NewCampaignService(
	campaignRepo *repositories.CampaignRepo,
	platformRepo *repositories.PlatformRepo,
	businessSvc *BusinessService,
	brandSvc *BrandService,
	siteCrawler *crawler.SiteCrawler,
	analyzer *Analyzer,
	publisher events.Publisher,
	cfg *config.Config,
	log *zap.Logger,
) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		platformRepo: platformRepo,
		businessSvc:  businessSvc,
		brandSvc:     brandSvc,
		siteCrawler:  siteCrawler,
		analyzer:     analyzer,
		publisher:    publisher,
		cfg:          cfg,
		log:          log,
	}
}

// CreateCampaignInput carries the campaign form. The goal arrives either
// as the form's advertising_goal slug or as an explicit conversion_goal;
// exactly the resolved one is stored.
type CreateCampaignInput struct {
	BusinessID      uuid.UUID
	Title           string
	URL             string
	Phone           *string
	AdvertisingGoal string
	ConversionGoal  *string
	Conversion      *string

	DailyBudget    *float64
	BudgetCurrency *string

	Language      string
	LocationAreas []models.LocationArea
}

// Create builds a campaign group: it crawls the target site, asks the
// model for platform recommendations, and stores the assembled draft.
func (s *CampaignService) Create(ctx context.Context, userID string, in CreateCampaignInput) (*models.Campaign, error) {
	if err := validateCampaignInput(in); err != nil {
		return nil, err
	}
	goal, err := resolveGoal(in)
	if err != nil {
		return nil, err
	}

	business, err := s.businessSvc.Get(ctx, userID, in.BusinessID)
	if err != nil {
		return nil, err
	}
	brand, err := s.brandSvc.GetOrCreate(ctx, userID, in.BusinessID)
	if err != nil {
		return nil, err
	}

	targetURL := strings.TrimSpace(in.URL)
	if targetURL == "" {
		targetURL = business.Website
	}

	s.publish(ctx, events.EventCrawlStarted, map[string]any{
		"user_id":     userID,
		"business_id": in.BusinessID.String(),
		"url":         targetURL,
	})

	// A failed crawl degrades the recommendation context, it does not
	// block campaign creation.
	content, err := s.siteCrawler.Crawl(ctx, targetURL)
	if err != nil {
		s.log.Warn("site crawl failed, recommending without content",
			zap.String("url", targetURL), zap.Error(err))
		content = nil
	} else {
		s.publish(ctx, events.EventCrawlCompleted, map[string]any{
			"user_id":     userID,
			"business_id": in.BusinessID.String(),
			"url":         targetURL,
			"pages":       len(content.Pages),
			"total_words": content.TotalWords,
		})
	}

	catalog, err := s.platformRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(catalog) == 0 {
		return nil, apperr.Internal("platform catalog is empty", nil)
	}

	rec, err := s.analyzer.RecommendPlatforms(ctx, &AnalysisInput{
		Goal:     goal,
		Business: business,
		Brand:    brand,
		Content:  content,
		Catalog:  catalog,
	})
	if err != nil {
		if errors.Is(err, ErrGeminiNotConfigured) {
			return nil, apperr.Unavailable("recommendation model not configured").WithCause(err)
		}
		return nil, apperr.Internal("platform recommendation failed", nil).WithCause(err)
	}

	campaign, err := s.assemble(business, in, goal, targetURL, rec, content)
	if err != nil {
		return nil, err
	}
	campaign.UserID = userID

	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventCampaignCreated, map[string]any{
		"user_id":                 userID,
		"campaign_id":             campaign.ID.String(),
		"business_id":             in.BusinessID.String(),
		"recommended_platform_id": rec.RecommendedPlatformID,
	})
	s.log.Info("campaign created",
		zap.String("campaign_id", campaign.ID.String()),
		zap.String("goal", goal),
		zap.Int("recommended_platform", rec.RecommendedPlatformID))
	return campaign, nil
}

func (s *CampaignService) assemble(business *models.Business, in CreateCampaignInput, goal, targetURL string, rec *Recommendation, content *crawler.CrawlResult) (*models.Campaign, error) {
	icon, err := models.GoalIcon(goal)
	if err != nil {
		return nil, apperr.Validation(err.Error(), nil)
	}

	currency := s.cfg.DefaultCurrency
	if in.BudgetCurrency != nil && *in.BudgetCurrency != "" {
		currency = *in.BudgetCurrency
	}
	dailyBudget := s.cfg.DefaultDailyBudget
	if in.DailyBudget != nil {
		if *in.DailyBudget < 0 {
			return nil, apperr.Validation("daily budget cannot be negative", nil)
		}
		dailyBudget = *in.DailyBudget
	}

	dataSource := "user"
	if content != nil && len(content.Pages) > 0 {
		dataSource = "crawler"
	}

	// The form sends a bare language code; the stored triple carries it
	// as id and iso with the uppercased display text.
	languages := []models.DemographicsLanguage{}
	if lang := strings.TrimSpace(in.Language); lang != "" {
		languages = append(languages, models.DemographicsLanguage{
			ID:   lang,
			Text: strings.ToUpper(lang),
			ISO:  lang,
		})
	}
	areas := in.LocationAreas
	if areas == nil {
		areas = []models.LocationArea{}
	}

	recommended := rec.RecommendedPlatformID
	c := &models.Campaign{
		BusinessID:         in.BusinessID,
		Title:              strings.TrimSpace(in.Title),
		URL:                targetURL,
		Phone:              in.Phone,
		ConversionGoal:     goal,
		ConversionGoalIcon: icon,
		Conversion:         in.Conversion,
		CanHaveConversions: goal == models.GoalOnlineLeads || goal == models.GoalOnlineSales,
		DataSource:         dataSource,

		BudgetCurrency: currency,
		DailyBudget:    dailyBudget,

		BiddingStrategyType:           models.BiddingMaximizeClicks,
		SupportedBiddingStrategyTypes: models.DefaultBiddingStrategyOptions,

		RecommendedPlatformID: &recommended,
		SupportedPlatformIDs:  rec.SupportedPlatformIDs,

		DemographicsLanguages:     languages,
		DemographicsLocationAreas: areas,

		TimeRanges:      []map[string]any{},
		WebsiteIndustry: &business.Industry,
		Sitelinks:       []map[string]any{},
		Metrics:         []models.CampaignMetric{},

		Status: models.CampaignStatusDraft,
	}

	if !c.SupportsPlatform(recommended) {
		return nil, apperr.Internal("recommended platform missing from supported set",
			map[string]any{"platform_id": recommended})
	}
	return c, nil
}

// Get returns the campaign if it exists and belongs to the user.
func (s *CampaignService) Get(ctx context.Context, userID string, id uuid.UUID) (*models.Campaign, error) {
	c, err := s.campaignRepo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperr.NotFound("campaign", id.String())
	}
	if err != nil {
		return nil, err
	}
	if c.UserID != userID {
		return nil, apperr.NotFound("campaign", id.String())
	}
	return c, nil
}

// UpdateStatus moves a campaign between draft, active, paused and archived.
func (s *CampaignService) UpdateStatus(ctx context.Context, userID string, id uuid.UUID, status string) (*models.Campaign, error) {
	if !models.IsValidCampaignStatus(status) {
		return nil, apperr.Validation("invalid campaign status",
			map[string]any{"status": status})
	}
	c, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if c.Status == status {
		return c, nil
	}
	if err := s.campaignRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	c.Status = status
	s.log.Info("campaign status changed",
		zap.String("campaign_id", id.String()),
		zap.String("status", status))
	return c, nil
}

func (s *CampaignService) List(ctx context.Context, userID string, status string, limit, offset int) ([]models.Campaign, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.campaignRepo.ListByUser(ctx, userID, status, limit, offset)
}

func validateCampaignInput(in CreateCampaignInput) error {
	details := map[string]any{}
	if in.BusinessID == uuid.Nil {
		details["business_id"] = "required"
	}
	if strings.TrimSpace(in.Title) == "" {
		details["title"] = "required"
	}
	if strings.TrimSpace(in.Language) == "" {
		details["language"] = "required"
	}
	if len(in.LocationAreas) == 0 {
		details["locations"] = "at least one location is required"
	}
	if len(details) > 0 {
		return apperr.Validation("invalid campaign", details)
	}
	return nil
}

// resolveGoal maps the form's advertising goal onto the stored
// conversion goal, falling back to an explicitly supplied one.
func resolveGoal(in CreateCampaignInput) (string, error) {
	if in.AdvertisingGoal != "" {
		if !models.IsValidGoal(in.AdvertisingGoal) {
			return "", apperr.Validation(fmt.Sprintf("invalid advertising goal: %q", in.AdvertisingGoal), nil)
		}
		return in.AdvertisingGoal, nil
	}
	if in.ConversionGoal != nil && *in.ConversionGoal != "" {
		if !models.IsValidGoal(*in.ConversionGoal) {
			return "", apperr.Validation(fmt.Sprintf("invalid conversion goal: %q", *in.ConversionGoal), nil)
		}
		return *in.ConversionGoal, nil
	}
	return "", apperr.Validation("either advertising_goal or conversion_goal is required", nil)
}

func (s *CampaignService) publish(ctx context.Context, eventType string, payload map[string]any) {
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
