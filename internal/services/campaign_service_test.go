package services

import (
	"context"
	"testing"

	"github.com/admaster/backend/internal/apperr"
	"github.com/admaster/backend/internal/config"
	"github.com/admaster/backend/internal/crawler"
	"github.com/admaster/backend/internal/models"
	"github.com/admaster/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func testCampaignService() *CampaignService {
	return &CampaignService{
		cfg: &config.Config{
			DefaultCurrency:    "INR",
			DefaultDailyBudget: 0.0,
		},
		log: zap.NewNop(),
	}
}

func TestAssembleCampaignDefaults(t *testing.T) {
	s := testCampaignService()
	business := &models.Business{Industry: "E-commerce", Website: "https://shop.example.com"}
	rec := &Recommendation{RecommendedPlatformID: 1, SupportedPlatformIDs: []int{0, 1}}

	c, err := s.assemble(business, CreateCampaignInput{
		BusinessID: uuid.New(),
		Title:      "Spring sale",
		Language:   "en",
	}, models.GoalOnlineSales, "https://shop.example.com", rec, nil)
	if err != nil {
		t.Fatalf("assemble() error: %v", err)
	}

	if c.BudgetCurrency != "INR" {
		t.Errorf("currency = %q, want INR", c.BudgetCurrency)
	}
	if c.DailyBudget != 0 {
		t.Errorf("daily budget = %v, want 0", c.DailyBudget)
	}
	if c.BiddingStrategyType != models.BiddingMaximizeClicks {
		t.Errorf("bidding = %q, want %q", c.BiddingStrategyType, models.BiddingMaximizeClicks)
	}
	if c.Status != models.CampaignStatusDraft {
		t.Errorf("status = %q, want draft", c.Status)
	}
	if c.ConversionGoalIcon != "ShoppingCart" {
		t.Errorf("icon = %q, want ShoppingCart", c.ConversionGoalIcon)
	}
	if !c.CanHaveConversions {
		t.Error("online-sales campaign should allow conversions")
	}
	if c.DataSource != "user" {
		t.Errorf("data source = %q, want user (no crawl content)", c.DataSource)
	}
	if c.RecommendedPlatformID == nil || *c.RecommendedPlatformID != 1 {
		t.Errorf("recommended platform = %v, want 1", c.RecommendedPlatformID)
	}
	if !c.SupportsPlatform(*c.RecommendedPlatformID) {
		t.Error("recommended platform not in supported set")
	}
	if c.WebsiteIndustry == nil || *c.WebsiteIndustry != "E-commerce" {
		t.Errorf("website industry = %v, want E-commerce", c.WebsiteIndustry)
	}
	if len(c.DemographicsLanguages) != 1 {
		t.Fatalf("languages = %v, want one entry", c.DemographicsLanguages)
	}
	if l := c.DemographicsLanguages[0]; l.ID != "en" || l.Text != "EN" || l.ISO != "en" {
		t.Errorf("language triple = %+v, want {en EN en}", l)
	}
}

func TestAssembleCampaignWithContent(t *testing.T) {
	s := testCampaignService()
	business := &models.Business{Industry: "Retail"}
	rec := &Recommendation{RecommendedPlatformID: 0, SupportedPlatformIDs: []int{0}}
	content := &crawler.CrawlResult{
		Pages:      []crawler.PageContent{{URL: "https://x.example.com/"}},
		TotalWords: 100,
	}

	c, err := s.assemble(business, CreateCampaignInput{
		BusinessID: uuid.New(),
		Title:      "Traffic push",
	}, models.GoalWebsiteTraffic, "https://x.example.com", rec, content)
	if err != nil {
		t.Fatalf("assemble() error: %v", err)
	}

	if c.DataSource != "crawler" {
		t.Errorf("data source = %q, want crawler", c.DataSource)
	}
	if c.CanHaveConversions {
		t.Error("website-traffic campaign should not allow conversions")
	}
	if c.ConversionGoalIcon != "CursorClick" {
		t.Errorf("icon = %q, want CursorClick", c.ConversionGoalIcon)
	}
}

func TestAssembleCampaignOverrides(t *testing.T) {
	s := testCampaignService()
	business := &models.Business{Industry: "Finance"}
	rec := &Recommendation{RecommendedPlatformID: 2, SupportedPlatformIDs: []int{2}}
	budget := 150.0
	currency := "USD"

	c, err := s.assemble(business, CreateCampaignInput{
		BusinessID:     uuid.New(),
		Title:          "Lead gen",
		DailyBudget:    &budget,
		BudgetCurrency: &currency,
	}, models.GoalOnlineLeads, "https://fin.example.com", rec, nil)
	if err != nil {
		t.Fatalf("assemble() error: %v", err)
	}
	if c.BudgetCurrency != "USD" {
		t.Errorf("currency = %q, want USD", c.BudgetCurrency)
	}
	if c.DailyBudget != 150 {
		t.Errorf("daily budget = %v, want 150", c.DailyBudget)
	}
}

func TestAssembleCampaignNegativeBudget(t *testing.T) {
	s := testCampaignService()
	rec := &Recommendation{RecommendedPlatformID: 0, SupportedPlatformIDs: []int{0}}
	budget := -5.0

	_, err := s.assemble(&models.Business{}, CreateCampaignInput{
		BusinessID:  uuid.New(),
		Title:       "Bad",
		DailyBudget: &budget,
	}, models.GoalWebsiteTraffic, "https://x.example.com", rec, nil)
	if err == nil {
		t.Fatal("expected error for negative budget")
	}
	if e, ok := apperr.As(err); !ok || e.Code != "VALIDATION_ERROR" {
		t.Errorf("error = %v, want VALIDATION_ERROR", err)
	}
}

func TestValidateCampaignInput(t *testing.T) {
	valid := func() CreateCampaignInput {
		return CreateCampaignInput{
			BusinessID:    uuid.New(),
			Title:         "Campaign",
			Language:      "en",
			LocationAreas: []models.LocationArea{{Name: "Mumbai", Lat: 19.07, Lng: 72.87}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*CreateCampaignInput)
		wantErr bool
	}{
		{name: "valid", mutate: func(*CreateCampaignInput) {}},
		{name: "missing business", mutate: func(in *CreateCampaignInput) { in.BusinessID = uuid.Nil }, wantErr: true},
		{name: "blank title", mutate: func(in *CreateCampaignInput) { in.Title = "   " }, wantErr: true},
		{name: "blank language", mutate: func(in *CreateCampaignInput) { in.Language = " " }, wantErr: true},
		{name: "no locations", mutate: func(in *CreateCampaignInput) { in.LocationAreas = nil }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.mutate(&in)
			err := validateCampaignInput(in)
			if tt.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestResolveGoal(t *testing.T) {
	conv := models.GoalOnlineLeads
	bogus := "world-domination"

	tests := []struct {
		name    string
		in      CreateCampaignInput
		want    string
		wantErr bool
	}{
		{
			name: "advertising goal",
			in:   CreateCampaignInput{AdvertisingGoal: models.GoalBrandAwareness},
			want: models.GoalBrandAwareness,
		},
		{
			name: "explicit conversion goal",
			in:   CreateCampaignInput{ConversionGoal: &conv},
			want: models.GoalOnlineLeads,
		},
		{
			name: "advertising goal wins over conversion goal",
			in:   CreateCampaignInput{AdvertisingGoal: models.GoalOnlineSales, ConversionGoal: &conv},
			want: models.GoalOnlineSales,
		},
		{
			name:    "neither provided",
			in:      CreateCampaignInput{},
			wantErr: true,
		},
		{
			name:    "unknown advertising goal",
			in:      CreateCampaignInput{AdvertisingGoal: bogus},
			wantErr: true,
		},
		{
			name:    "unknown conversion goal",
			in:      CreateCampaignInput{ConversionGoal: &bogus},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveGoal(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if e, ok := apperr.As(err); !ok || e.Code != "VALIDATION_ERROR" {
					t.Errorf("error = %v, want VALIDATION_ERROR", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveGoal() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveGoal() = %q, want %q", got, tt.want)
			}
		})
	}
}

// missingBusinessStore answers every lookup with not-found.
type missingBusinessStore struct{ businessStore }

func (missingBusinessStore) GetByID(context.Context, uuid.UUID) (*models.Business, error) {
	return nil, repositories.ErrNotFound
}

func TestCreateCampaignBusinessNotFound(t *testing.T) {
	s := testCampaignService()
	// brandSvc and campaignRepo stay nil; touching either would panic
	// the test, so passing proves the lookup failure stops the flow
	// before any brand or campaign write.
	s.businessSvc = NewBusinessService(missingBusinessStore{}, zap.NewNop())

	_, err := s.Create(context.Background(), "user_1", CreateCampaignInput{
		BusinessID:      uuid.New(),
		Title:           "Launch",
		AdvertisingGoal: models.GoalWebsiteTraffic,
		Language:        "en",
		LocationAreas:   []models.LocationArea{{Name: "Delhi", Lat: 28.61, Lng: 77.21}},
	})
	if err == nil {
		t.Fatal("expected error for unknown business")
	}
	if e, ok := apperr.As(err); !ok || e.Code != "NOT_FOUND" {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}
