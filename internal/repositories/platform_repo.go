package repositories

import (
	"context"
	"errors"

	"github.com/admaster/backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PlatformRepo struct {
	pool *pgxpool.Pool
}

func NewPlatformRepo(pool *pgxpool.Pool) *PlatformRepo {
	return &PlatformRepo{pool: pool}
}

const platformColumns = `
	id, platform_id, name, slug, type, description, icon, website_url,
	supports_search, supports_display, supports_video, supports_shopping, supports_mobile,
	best_for_goals, best_for_industries, min_budget, currency_support,
	requires_own_account, is_active, is_beta, created_at, updated_at`

func scanPlatform(row pgx.Row) (*models.Platform, error) {
	var p models.Platform
	err := row.Scan(&p.ID, &p.PlatformID, &p.Name, &p.Slug, &p.Type,
		&p.Description, &p.Icon, &p.WebsiteURL,
		&p.SupportsSearch, &p.SupportsDisplay, &p.SupportsVideo,
		&p.SupportsShopping, &p.SupportsMobile,
		&p.BestForGoals, &p.BestForIndustries, &p.MinBudget, &p.CurrencySupport,
		&p.RequiresOwnAccount, &p.IsActive, &p.IsBeta, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PlatformRepo) ListActive(ctx context.Context) ([]models.Platform, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT`+platformColumns+`
		FROM platforms WHERE is_active = true ORDER BY platform_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	platforms := []models.Platform{}
	for rows.Next() {
		p, err := scanPlatform(rows)
		if err != nil {
			return nil, err
		}
		platforms = append(platforms, *p)
	}
	return platforms, rows.Err()
}

func (r *PlatformRepo) GetByPlatformID(ctx context.Context, platformID int) (*models.Platform, error) {
	return scanPlatform(r.pool.QueryRow(ctx, `
		SELECT`+platformColumns+`
		FROM platforms WHERE platform_id = $1
	`, platformID))
}

func (r *PlatformRepo) GetByPlatformIDs(ctx context.Context, platformIDs []int) ([]models.Platform, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT`+platformColumns+`
		FROM platforms WHERE platform_id = ANY($1) ORDER BY platform_id
	`, platformIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	platforms := []models.Platform{}
	for rows.Next() {
		p, err := scanPlatform(rows)
		if err != nil {
			return nil, err
		}
		platforms = append(platforms, *p)
	}
	return platforms, rows.Err()
}

// UpsertSeed writes a catalog entry keyed by platform_id. Safe to run on
// every seed invocation.
func (r *PlatformRepo) UpsertSeed(ctx context.Context, p *models.Platform) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO platforms (platform_id, name, slug, type, description, icon, website_url,
			supports_search, supports_display, supports_video, supports_shopping, supports_mobile,
			best_for_goals, best_for_industries, min_budget, currency_support,
			requires_own_account, is_active, is_beta)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		ON CONFLICT (platform_id) DO UPDATE SET
			name = EXCLUDED.name,
			slug = EXCLUDED.slug,
			type = EXCLUDED.type,
			description = EXCLUDED.description,
			icon = EXCLUDED.icon,
			website_url = EXCLUDED.website_url,
			supports_search = EXCLUDED.supports_search,
			supports_display = EXCLUDED.supports_display,
			supports_video = EXCLUDED.supports_video,
			supports_shopping = EXCLUDED.supports_shopping,
			supports_mobile = EXCLUDED.supports_mobile,
			best_for_goals = EXCLUDED.best_for_goals,
			best_for_industries = EXCLUDED.best_for_industries,
			min_budget = EXCLUDED.min_budget,
			currency_support = EXCLUDED.currency_support,
			requires_own_account = EXCLUDED.requires_own_account,
			is_active = EXCLUDED.is_active,
			is_beta = EXCLUDED.is_beta,
			updated_at = now()
		RETURNING id, created_at, updated_at
	`, p.PlatformID, p.Name, p.Slug, p.Type, p.Description, p.Icon, p.WebsiteURL,
		p.SupportsSearch, p.SupportsDisplay, p.SupportsVideo, p.SupportsShopping, p.SupportsMobile,
		p.BestForGoals, p.BestForIndustries, p.MinBudget, p.CurrencySupport,
		p.RequiresOwnAccount, p.IsActive, p.IsBeta,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}
