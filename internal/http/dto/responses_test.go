package dto

import (
	"testing"
	"time"

	"github.com/admaster/backend/internal/models"
	"github.com/google/uuid"
)

func testCampaign(goal string, daily float64, metrics []models.CampaignMetric) models.Campaign {
	return models.Campaign{
		ID:             uuid.New(),
		BusinessID:     uuid.New(),
		UserID:         "user_1",
		Title:          "Summer Sale",
		URL:            "https://example.com",
		ConversionGoal: goal,
		BudgetCurrency: "INR",
		DailyBudget:    daily,
		Metrics:        metrics,
		Status:         models.CampaignStatusDraft,
	}
}

func TestBuildCampaignListEmpty(t *testing.T) {
	resp := BuildCampaignList(nil, "", "")

	if len(resp.CampaignGroups) != 0 {
		t.Fatalf("expected no groups, got %d", len(resp.CampaignGroups))
	}
	if resp.Total.Metrics.Cost != "0.00" {
		t.Errorf("cost = %q, want 0.00", resp.Total.Metrics.Cost)
	}
	if resp.Total.Metrics.ClickThroughRate != "0.00" {
		t.Errorf("ctr = %q, want 0.00", resp.Total.Metrics.ClickThroughRate)
	}

	wantEnd := time.Now().UTC().Format("20060102")
	wantStart := time.Now().UTC().AddDate(0, 0, -7).Format("20060102")
	if resp.Filters.DateEnd != wantEnd {
		t.Errorf("date_end = %q, want %q", resp.Filters.DateEnd, wantEnd)
	}
	if resp.Filters.DateStart != wantStart {
		t.Errorf("date_start = %q, want %q", resp.Filters.DateStart, wantStart)
	}
}

func TestBuildCampaignListTotals(t *testing.T) {
	campaigns := []models.Campaign{
		testCampaign(models.GoalOnlineSales, 100, []models.CampaignMetric{
			{Impressions: 1000, Clicks: 50, Cost: 25.5, Conversions: 5},
			{Impressions: 500, Clicks: 10, Cost: 4.5, Conversions: 1},
		}),
		testCampaign(models.GoalWebsiteTraffic, 50, []models.CampaignMetric{
			{Impressions: 500, Clicks: 40, Cost: 10, Conversions: 4},
		}),
	}

	resp := BuildCampaignList(campaigns, "20260801", "20260831")

	m := resp.Total.Metrics
	if m.Impressions != 2000 || m.Clicks != 100 || m.Conversions != 10 {
		t.Fatalf("raw sums = %d/%d/%d, want 2000/100/10",
			m.Impressions, m.Clicks, m.Conversions)
	}
	if m.Cost != "40.00" {
		t.Errorf("cost = %q, want 40.00", m.Cost)
	}
	if m.ClickThroughRate != "5.00" {
		t.Errorf("ctr = %q, want 5.00", m.ClickThroughRate)
	}
	if m.CostPerClick != "0.40" {
		t.Errorf("cpc = %q, want 0.40", m.CostPerClick)
	}
	if m.CostPerConv != "4.00" {
		t.Errorf("cpa = %q, want 4.00", m.CostPerConv)
	}
	if m.ConversionsRate != "10.00" {
		t.Errorf("cvr = %q, want 10.00", m.ConversionsRate)
	}
	if m.Currency != "INR" {
		t.Errorf("currency = %q, want INR", m.Currency)
	}

	if resp.Total.Budget.DailyBudget != 150 {
		t.Errorf("daily budget total = %v, want 150", resp.Total.Budget.DailyBudget)
	}
	if resp.Filters.DateStart != "20260801" || resp.Filters.DateEnd != "20260831" {
		t.Errorf("filters = %+v, explicit bounds should pass through", resp.Filters)
	}
}

func TestNewCampaignGroupView(t *testing.T) {
	c := testCampaign(models.GoalOnlineLeads, 75, []models.CampaignMetric{
		{Impressions: 100, Clicks: 10, Cost: 5, Conversions: 2},
		{Impressions: 200, Clicks: 20, Cost: 15, Conversions: 3},
	})

	view := NewCampaignGroupView(&c)

	if view.Goal.ID != 1 {
		t.Errorf("goal id = %d, want 1", view.Goal.ID)
	}
	if view.Goal.Name != "Online Leads" {
		t.Errorf("goal name = %q, want Online Leads", view.Goal.Name)
	}
	if view.Metrics.Impressions != 300 || view.Metrics.Clicks != 30 {
		t.Errorf("metrics = %+v, want summed rows", view.Metrics)
	}
	if view.Budget.DailyBudget != 75 || view.Budget.Currency != "INR" {
		t.Errorf("budget = %+v", view.Budget)
	}
}

func TestGoalDisplayName(t *testing.T) {
	cases := map[string]string{
		"website-traffic": "Website Traffic",
		"online-leads":    "Online Leads",
		"brand-awareness": "Brand Awareness",
		"online-sales":    "Online Sales",
	}
	for slug, want := range cases {
		if got := goalDisplayName(slug); got != want {
			t.Errorf("goalDisplayName(%q) = %q, want %q", slug, got, want)
		}
	}
}
