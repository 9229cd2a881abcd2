package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/admaster/backend/internal/models"
)

type SuccessResponse struct {
	OK   bool `json:"ok"`
	Data any  `json:"data,omitempty"`
}

// ProfileView is the /users/me/profile payload.
type ProfileView struct {
	User            *models.User `json:"user"`
	BusinessesCount int          `json:"businesses_count"`
}

type HasBusinessResponse struct {
	HasBusiness bool `json:"has_business"`
}

// GoalView is the conversion goal as the frontend renders it.
type GoalView struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type BudgetView struct {
	Currency    string  `json:"currency"`
	DailyBudget float64 `json:"daily_budget"`
}

type MetricsTotals struct {
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Cost        float64 `json:"cost"`
	Conversions int     `json:"conversions"`
}

// TotalMetricsView carries the aggregated metrics with derived rates.
// Monetary and rate values are formatted to two decimals.
type TotalMetricsView struct {
	Impressions      int    `json:"impressions"`
	Clicks           int    `json:"clicks"`
	Cost             string `json:"cost"`
	Conversions      int    `json:"conversions"`
	ClickThroughRate string `json:"click_through_rate"`
	CostPerClick     string `json:"cost_per_click"`
	CostPerConv      string `json:"cost_per_conversion"`
	ConversionsRate  string `json:"conversions_rate"`
	Currency         string `json:"currency"`
}

// CampaignGroupView is one campaign group row in the list envelope.
type CampaignGroupView struct {
	ID                    string                         `json:"id"`
	BusinessID            string                         `json:"business_id"`
	Title                 string                         `json:"title"`
	URL                   string                         `json:"url"`
	Goal                  GoalView                       `json:"conversion_goal"`
	RecommendedPlatformID *int                           `json:"recommended_platform_id,omitempty"`
	SupportedPlatformIDs  []int                          `json:"supported_platform_ids"`
	BiddingStrategyType   string                         `json:"bidding_strategy_type"`
	Budget                BudgetView                     `json:"budget"`
	Metrics               MetricsTotals                  `json:"metrics"`
	DemographicsLanguages []models.DemographicsLanguage  `json:"demographics_languages"`
	LocationAreas         []models.LocationArea          `json:"demographics_location_areas"`
	Status                string                         `json:"status"`
	CreatedAt             time.Time                      `json:"created_at"`
}

// CampaignListFilters echoes the effective date window, yyyymmdd.
type CampaignListFilters struct {
	DateStart string `json:"date_start"`
	DateEnd   string `json:"date_end"`
}

type CampaignListTotals struct {
	Metrics TotalMetricsView `json:"metrics"`
	Budget  BudgetView       `json:"budget"`
}

// CampaignListResponse is the envelope for campaign group listings.
type CampaignListResponse struct {
	CampaignGroups []CampaignGroupView `json:"campaign_groups"`
	Total          CampaignListTotals  `json:"total"`
	Filters        CampaignListFilters `json:"filters"`
}

const filterDateLayout = "20060102"

// BuildCampaignList assembles the listing envelope. Empty date bounds
// default to the last seven days ending today.
func BuildCampaignList(campaigns []models.Campaign, dateStart, dateEnd string) CampaignListResponse {
	if dateEnd == "" {
		dateEnd = time.Now().UTC().Format(filterDateLayout)
	}
	if dateStart == "" {
		dateStart = time.Now().UTC().AddDate(0, 0, -7).Format(filterDateLayout)
	}

	groups := make([]CampaignGroupView, 0, len(campaigns))
	sums := MetricsTotals{}
	budget := BudgetView{}
	for _, c := range campaigns {
		view := NewCampaignGroupView(&c)
		groups = append(groups, view)

		sums.Impressions += view.Metrics.Impressions
		sums.Clicks += view.Metrics.Clicks
		sums.Cost += view.Metrics.Cost
		sums.Conversions += view.Metrics.Conversions
		budget.DailyBudget += c.DailyBudget
		if budget.Currency == "" {
			budget.Currency = c.BudgetCurrency
		}
	}

	return CampaignListResponse{
		CampaignGroups: groups,
		Total: CampaignListTotals{
			Metrics: buildTotalMetrics(sums, budget.Currency),
			Budget:  budget,
		},
		Filters: CampaignListFilters{
			DateStart: dateStart,
			DateEnd:   dateEnd,
		},
	}
}

// buildTotalMetrics derives CTR, CPC, CPA and CVR from raw sums, guarding
// every ratio against a zero denominator.
func buildTotalMetrics(sums MetricsTotals, currency string) TotalMetricsView {
	var ctr, cpc, cpa, cvr float64
	if sums.Impressions > 0 {
		ctr = float64(sums.Clicks) / float64(sums.Impressions) * 100
	}
	if sums.Clicks > 0 {
		cpc = sums.Cost / float64(sums.Clicks)
		cvr = float64(sums.Conversions) / float64(sums.Clicks) * 100
	}
	if sums.Conversions > 0 {
		cpa = sums.Cost / float64(sums.Conversions)
	}
	return TotalMetricsView{
		Impressions:      sums.Impressions,
		Clicks:           sums.Clicks,
		Cost:             fmt.Sprintf("%.2f", sums.Cost),
		Conversions:      sums.Conversions,
		ClickThroughRate: fmt.Sprintf("%.2f", ctr),
		CostPerClick:     fmt.Sprintf("%.2f", cpc),
		CostPerConv:      fmt.Sprintf("%.2f", cpa),
		ConversionsRate:  fmt.Sprintf("%.2f", cvr),
		Currency:         currency,
	}
}

// goalDisplayName turns a goal slug into its display form,
// "online-leads" becoming "Online Leads".
func goalDisplayName(goal string) string {
	words := strings.Split(goal, "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// NewCampaignGroupView projects a campaign onto the listing shape.
func NewCampaignGroupView(c *models.Campaign) CampaignGroupView {
	metrics := MetricsTotals{}
	for _, m := range c.Metrics {
		metrics.Impressions += m.Impressions
		metrics.Clicks += m.Clicks
		metrics.Cost += m.Cost
		metrics.Conversions += m.Conversions
	}

	return CampaignGroupView{
		ID:         c.ID.String(),
		BusinessID: c.BusinessID.String(),
		Title:      c.Title,
		URL:        c.URL,
		Goal: GoalView{
			ID:   models.GoalNumericID(c.ConversionGoal),
			Name: goalDisplayName(c.ConversionGoal),
			Icon: c.ConversionGoalIcon,
		},
		RecommendedPlatformID: c.RecommendedPlatformID,
		SupportedPlatformIDs:  c.SupportedPlatformIDs,
		BiddingStrategyType:   c.BiddingStrategyType,
		Budget: BudgetView{
			Currency:    c.BudgetCurrency,
			DailyBudget: c.DailyBudget,
		},
		Metrics:               metrics,
		DemographicsLanguages: c.DemographicsLanguages,
		LocationAreas:         c.DemographicsLocationAreas,
		Status:                c.Status,
		CreatedAt:             c.CreatedAt,
	}
}
