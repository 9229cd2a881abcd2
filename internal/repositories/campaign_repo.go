package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/admaster/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CampaignRepo struct {
	pool *pgxpool.Pool
}

func NewCampaignRepo(pool *pgxpool.Pool) *CampaignRepo {
	return &CampaignRepo{pool: pool}
}

const campaignColumns = `
	id, business_id, user_id, title, url, phone,
	conversion_goal, conversion_goal_icon, conversion, can_have_conversions,
	data_source, budget_currency, daily_budget,
	bidding_strategy_type, max_bid, target_amount, revenue_on_ad_spend,
	supported_bidding_strategy_types, recommended_platform_id, supported_platform_ids,
	demographics_languages, demographics_location_areas,
	time_ranges, time_period, website_industry, sitelinks, metrics,
	status, created_at, updated_at`

func scanCampaign(row pgx.Row) (*models.Campaign, error) {
	var c models.Campaign
	err := row.Scan(&c.ID, &c.BusinessID, &c.UserID, &c.Title, &c.URL, &c.Phone,
		&c.ConversionGoal, &c.ConversionGoalIcon, &c.Conversion, &c.CanHaveConversions,
		&c.DataSource, &c.BudgetCurrency, &c.DailyBudget,
		&c.BiddingStrategyType, &c.MaxBid, &c.TargetAmount, &c.RevenueOnAdSpend,
		&c.SupportedBiddingStrategyTypes, &c.RecommendedPlatformID, &c.SupportedPlatformIDs,
		&c.DemographicsLanguages, &c.DemographicsLocationAreas,
		&c.TimeRanges, &c.TimePeriod, &c.WebsiteIndustry, &c.Sitelinks, &c.Metrics,
		&c.Status, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepo) Create(ctx context.Context, c *models.Campaign) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO campaigns (business_id, user_id, title, url, phone,
			conversion_goal, conversion_goal_icon, conversion, can_have_conversions,
			data_source, budget_currency, daily_budget,
			bidding_strategy_type, max_bid, target_amount, revenue_on_ad_spend,
			supported_bidding_strategy_types, recommended_platform_id, supported_platform_ids,
			demographics_languages, demographics_location_areas,
			time_ranges, time_period, website_industry, sitelinks, metrics, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)
		RETURNING id, created_at, updated_at
	`, c.BusinessID, c.UserID, c.Title, c.URL, c.Phone,
		c.ConversionGoal, c.ConversionGoalIcon, c.Conversion, c.CanHaveConversions,
		c.DataSource, c.BudgetCurrency, c.DailyBudget,
		c.BiddingStrategyType, c.MaxBid, c.TargetAmount, c.RevenueOnAdSpend,
		c.SupportedBiddingStrategyTypes, c.RecommendedPlatformID, c.SupportedPlatformIDs,
		c.DemographicsLanguages, c.DemographicsLocationAreas,
		c.TimeRanges, c.TimePeriod, c.WebsiteIndustry, c.Sitelinks, c.Metrics, c.Status,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CampaignRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	return scanCampaign(r.pool.QueryRow(ctx, `
		SELECT`+campaignColumns+`
		FROM campaigns WHERE id = $1
	`, id))
}

// ListByUser returns the user's campaigns newest first. An empty status
// returns all of them.
func (r *CampaignRepo) ListByUser(ctx context.Context, userID string, status string, limit, offset int) ([]models.Campaign, error) {
	query := `
		SELECT` + campaignColumns + `
		FROM campaigns WHERE user_id = $1`
	args := []any{userID}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	return r.queryCampaigns(ctx, query, args...)
}

func (r *CampaignRepo) queryCampaigns(ctx context.Context, query string, args ...any) ([]models.Campaign, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campaigns := []models.Campaign{}
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, *c)
	}
	return campaigns, rows.Err()
}

func (r *CampaignRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE campaigns SET status = $1, updated_at = now() WHERE id = $2
	`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
