package main

import (
	"context"

	"github.com/admaster/backend/internal/config"
	"github.com/admaster/backend/internal/db"
	"github.com/admaster/backend/internal/models"
	"github.com/admaster/backend/internal/repositories"
	"go.uber.org/zap"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

// platformCatalog is the advertising platform reference data. Numeric IDs
// are stable and shared with the frontend; gaps are intentional.
var platformCatalog = []models.Platform{
	{
		PlatformID:  0,
		Name:        "Google Ads",
		Slug:        "google-ads",
		Type:        models.PlatformTypeSearch,
		Description: strPtr("Appear with your ads on top of the world's first search engine."),
		Icon:        strPtr("Search"),

		SupportsSearch: true, SupportsDisplay: true, SupportsVideo: true,
		SupportsShopping: true, SupportsMobile: true,

		BestForGoals:      []string{models.GoalWebsiteTraffic, models.GoalOnlineLeads, models.GoalOnlineSales},
		BestForIndustries: []string{"Technology", "E-commerce", "Retail", "Professional Services"},
		MinBudget:         f64Ptr(1.0),
		CurrencySupport:   []string{"USD", "INR", "EUR", "GBP", "AUD", "CAD"},
		IsActive:          true,
	},
	{
		PlatformID:  1,
		Name:        "Facebook Ads",
		Slug:        "facebook-ads",
		Type:        models.PlatformTypeSocial,
		Description: strPtr("Appear with your ads in the newsfeed & stories & reels of your audience."),
		Icon:        strPtr("Facebook"),

		SupportsDisplay: true, SupportsVideo: true, SupportsMobile: true,

		BestForGoals:       []string{models.GoalBrandAwareness, models.GoalOnlineLeads, models.GoalOnlineSales},
		BestForIndustries:  []string{"E-commerce", "Retail", "Food & Beverage", "Media & Entertainment"},
		MinBudget:          f64Ptr(1.0),
		CurrencySupport:    []string{"USD", "INR", "EUR", "GBP"},
		RequiresOwnAccount: true,
		IsActive:           true,
	},
	{
		PlatformID:  2,
		Name:        "Instagram Ads",
		Slug:        "instagram-ads",
		Type:        models.PlatformTypeSocial,
		Description: strPtr("Appear with your ads in the newsfeed, stories & reels of your audience."),
		Icon:        strPtr("Instagram"),

		SupportsDisplay: true, SupportsVideo: true, SupportsMobile: true,

		BestForGoals:       []string{models.GoalBrandAwareness, models.GoalOnlineSales},
		BestForIndustries:  []string{"E-commerce", "Fashion", "Food & Beverage", "Media & Entertainment"},
		MinBudget:          f64Ptr(1.0),
		CurrencySupport:    []string{"USD", "INR", "EUR", "GBP"},
		RequiresOwnAccount: true,
		IsActive:           true,
	},
	{
		PlatformID:  3,
		Name:        "LinkedIn Ads",
		Slug:        "linkedin-ads",
		Type:        models.PlatformTypeSocial,
		Description: strPtr("Engage a community of professionals to drive actions that are relevant to your business."),
		Icon:        strPtr("Linkedin"),

		SupportsDisplay: true, SupportsVideo: true,

		BestForGoals:      []string{models.GoalOnlineLeads, models.GoalBrandAwareness},
		BestForIndustries: []string{"Technology", "Professional Services", "Consulting", "Finance"},
		MinBudget:         f64Ptr(10.0),
		CurrencySupport:   []string{"USD", "EUR", "GBP"},
		IsActive:          true,
	},
	{
		PlatformID:  4,
		Name:        "Twitter Ads",
		Slug:        "twitter-ads",
		Type:        models.PlatformTypeSocial,
		Description: strPtr("Appear with your ads in the timeline & search results of your audience."),
		Icon:        strPtr("Twitter"),

		SupportsDisplay: true, SupportsVideo: true,

		BestForGoals:       []string{models.GoalBrandAwareness, models.GoalOnlineLeads},
		BestForIndustries:  []string{"Technology", "Media & Entertainment", "Marketing & Advertising"},
		MinBudget:          f64Ptr(1.0),
		CurrencySupport:    []string{"USD", "EUR", "GBP"},
		RequiresOwnAccount: true,
		IsActive:           true,
	},
	{
		PlatformID:  8,
		Name:        "YouTube Ads",
		Slug:        "youtube-ads",
		Type:        models.PlatformTypeVideo,
		Description: strPtr("Video advertising on YouTube"),
		Icon:        strPtr("Youtube"),

		SupportsVideo: true, SupportsDisplay: true,

		BestForGoals:      []string{models.GoalBrandAwareness, models.GoalWebsiteTraffic},
		BestForIndustries: []string{"Media & Entertainment", "Education", "Technology"},
		MinBudget:         f64Ptr(1.0),
		CurrencySupport:   []string{"USD", "INR", "EUR", "GBP"},
		IsActive:          true,
	},
	{
		PlatformID:  10,
		Name:        "TikTok Ads",
		Slug:        "tiktok-ads",
		Type:        models.PlatformTypeVideo,
		Description: strPtr("Short-form video advertising"),
		Icon:        strPtr("Music"),

		SupportsVideo: true, SupportsMobile: true,

		BestForGoals:      []string{models.GoalBrandAwareness, models.GoalOnlineSales},
		BestForIndustries: []string{"E-commerce", "Media & Entertainment", "Food & Beverage"},
		MinBudget:         f64Ptr(20.0),
		CurrencySupport:   []string{"USD", "EUR", "GBP"},
		IsActive:          true,
	},
	{
		PlatformID:  17,
		Name:        "Microsoft Ads",
		Slug:        "microsoft-ads",
		Type:        models.PlatformTypeSearch,
		Description: strPtr("Appear with your ads on top of Bing, Yahoo! & other search partners."),
		Icon:        strPtr("Search"),

		SupportsSearch: true, SupportsDisplay: true,

		BestForGoals:      []string{models.GoalWebsiteTraffic, models.GoalOnlineLeads},
		BestForIndustries: []string{"Technology", "Professional Services", "E-commerce"},
		MinBudget:         f64Ptr(1.0),
		CurrencySupport:   []string{"USD", "EUR", "GBP"},
		IsActive:          true,
	},
	{
		PlatformID:  18,
		Name:        "Amazon Ads",
		Slug:        "amazon-ads",
		Type:        models.PlatformTypeShopping,
		Description: strPtr("Product advertising on Amazon"),
		Icon:        strPtr("ShoppingCart"),

		SupportsShopping: true, SupportsDisplay: true,

		BestForGoals:      []string{models.GoalOnlineSales},
		BestForIndustries: []string{"E-commerce", "Retail"},
		MinBudget:         f64Ptr(1.0),
		CurrencySupport:   []string{"USD", "EUR", "GBP"},
		IsActive:          true,
	},
	{
		PlatformID:  19,
		Name:        "Google Performance Max",
		Slug:        "google-performance-max",
		Type:        models.PlatformTypeDisplay,
		Description: strPtr("Performance Max is a goal-based campaign that allows advertisers to access all of the Google Ads inventory in a single campaign."),
		Icon:        strPtr("TrendingUp"),

		SupportsSearch: true, SupportsDisplay: true, SupportsVideo: true,
		SupportsShopping: true, SupportsMobile: true,

		BestForGoals:      []string{models.GoalWebsiteTraffic, models.GoalOnlineSales, models.GoalOnlineLeads},
		BestForIndustries: []string{"E-commerce", "Retail", "Technology"},
		MinBudget:         f64Ptr(1.0),
		CurrencySupport:   []string{"USD", "INR", "EUR", "GBP"},
		IsActive:          true,
	},
	{
		PlatformID:  20,
		Name:        "Online Bannering",
		Slug:        "online-bannering",
		Type:        models.PlatformTypeDisplay,
		Description: strPtr("Reach a broad audience and build awareness"),
		Icon:        strPtr("Monitor"),

		SupportsDisplay: true,

		BestForGoals:      []string{models.GoalBrandAwareness},
		BestForIndustries: []string{"E-commerce", "Retail", "Media & Entertainment"},
		MinBudget:         f64Ptr(1.0),
		CurrencySupport:   []string{"USD", "INR", "EUR", "GBP"},
		IsActive:          true,
	},
}

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	repo := repositories.NewPlatformRepo(pool)
	for i := range platformCatalog {
		p := &platformCatalog[i]
		if err := repo.UpsertSeed(ctx, p); err != nil {
			log.Fatal("failed to seed platform",
				zap.Int("platform_id", p.PlatformID), zap.Error(err))
		}
		log.Info("platform seeded",
			zap.Int("platform_id", p.PlatformID), zap.String("name", p.Name))
	}
	log.Info("platform catalog seeded", zap.Int("count", len(platformCatalog)))
}
