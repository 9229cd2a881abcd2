package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Conversion goals
const (
	GoalWebsiteTraffic = "website-traffic"
	GoalBrandAwareness = "brand-awareness"
	GoalOnlineLeads    = "online-leads"
	GoalOnlineSales    = "online-sales"
)

// Bidding strategy types
const (
	BiddingMaximizeClicks      = "maximize_clicks"
	BiddingMaximizeConversions = "maximize_conversions"
	BiddingTargetCPA           = "target_cpa"
	BiddingTargetROAS          = "target_roas"
	BiddingManualCPC           = "manual_cpc"
)

// Campaign statuses
const (
	CampaignStatusDraft    = "draft"
	CampaignStatusActive   = "active"
	CampaignStatusPaused   = "paused"
	CampaignStatusArchived = "archived"
)

// GoalIcon maps a conversion goal to its UI icon name. The mapping is
// exhaustive: an unknown goal is an error, not a silent default.
func GoalIcon(goal string) (string, error) {
	switch goal {
	case GoalWebsiteTraffic:
		return "CursorClick", nil
	case GoalBrandAwareness:
		return "Eye", nil
	case GoalOnlineLeads:
		return "Users", nil
	case GoalOnlineSales:
		return "ShoppingCart", nil
	}
	return "", fmt.Errorf("unknown conversion goal: %q", goal)
}

// GoalNumericID maps a conversion goal to the numeric ID used by the
// campaign list envelope.
func GoalNumericID(goal string) int {
	switch goal {
	case GoalOnlineLeads:
		return 1
	case GoalOnlineSales:
		return 2
	case GoalBrandAwareness:
		return 5
	}
	return 0 // website-traffic
}

func IsValidGoal(goal string) bool {
	switch goal {
	case GoalWebsiteTraffic, GoalBrandAwareness, GoalOnlineLeads, GoalOnlineSales:
		return true
	}
	return false
}

func IsValidCampaignStatus(status string) bool {
	switch status {
	case CampaignStatusDraft, CampaignStatusActive, CampaignStatusPaused, CampaignStatusArchived:
		return true
	}
	return false
}

// BiddingStrategyOption describes a bidding strategy available to the UI.
type BiddingStrategyOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

// DefaultBiddingStrategyOptions is the fixed supported set assigned to new
// campaigns.
var DefaultBiddingStrategyOptions = []BiddingStrategyOption{
	{Name: "MAXIMIZE_CLICKS", Value: BiddingMaximizeClicks, Type: "target_amount"},
}

// DemographicsLanguage is a language targeting entry.
type DemographicsLanguage struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	ISO  string `json:"iso"`
}

// LocationArea is the canonical location targeting structure. Duck-typed
// location inputs are normalized into this at the DTO boundary.
type LocationArea struct {
	GooglePlaceID *string  `json:"google_place_id,omitempty"`
	Name          string   `json:"name"`
	Radius        *int     `json:"radius,omitempty"`
	Units         *string  `json:"units,omitempty"`
	Lat           float64  `json:"lat"`
	Lng           float64  `json:"lng"`
	CountryCode   *string  `json:"country_code,omitempty"`
}

// CampaignMetric is one row of accumulated performance data.
type CampaignMetric struct {
	Date        string  `json:"date,omitempty"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Cost        float64 `json:"cost"`
	Conversions int     `json:"conversions"`
}

// Campaign is a campaign group created by a user for a business. The
// recommended platform, when set, always appears in SupportedPlatformIDs.
type Campaign struct {
	ID         uuid.UUID `json:"id"`
	BusinessID uuid.UUID `json:"business_id"`
	UserID     string    `json:"user_id"` // Clerk user ID

	Title string  `json:"title"`
	URL   string  `json:"url"`
	Phone *string `json:"phone,omitempty"`

	ConversionGoal     string  `json:"conversion_goal"`
	ConversionGoalIcon string  `json:"conversion_goal_icon"`
	Conversion         *string `json:"conversion,omitempty"`
	CanHaveConversions bool    `json:"can_have_conversions"`

	DataSource string `json:"data_source"` // "user" or "crawler"

	BudgetCurrency string  `json:"budget_currency"`
	DailyBudget    float64 `json:"daily_budget"`

	BiddingStrategyType string   `json:"bidding_strategy_type"`
	MaxBid              *float64 `json:"max_bid,omitempty"`
	TargetAmount        *float64 `json:"target_amount,omitempty"`
	RevenueOnAdSpend    *float64 `json:"revenue_on_ad_spend,omitempty"`

	SupportedBiddingStrategyTypes []BiddingStrategyOption `json:"supported_bidding_strategy_types"`

	RecommendedPlatformID *int  `json:"recommended_platform_id,omitempty"`
	SupportedPlatformIDs  []int `json:"supported_platform_ids"`

	DemographicsLanguages     []DemographicsLanguage `json:"demographics_languages"`
	DemographicsLocationAreas []LocationArea         `json:"demographics_location_areas"`

	TimeRanges      []map[string]any `json:"time_ranges"`
	TimePeriod      *string          `json:"time_period,omitempty"`
	WebsiteIndustry *string          `json:"website_industry,omitempty"`
	Sitelinks       []map[string]any `json:"sitelinks"`

	Metrics []CampaignMetric `json:"metrics"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SupportsPlatform reports whether id is in SupportedPlatformIDs.
func (c *Campaign) SupportsPlatform(id int) bool {
	for _, pid := range c.SupportedPlatformIDs {
		if pid == id {
			return true
		}
	}
	return false
}
