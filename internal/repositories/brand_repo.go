package repositories

import (
	"context"
	"errors"

	"github.com/admaster/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BrandRepo struct {
	pool *pgxpool.Pool
}

func NewBrandRepo(pool *pgxpool.Pool) *BrandRepo {
	return &BrandRepo{pool: pool}
}

func (r *BrandRepo) GetByBusinessID(ctx context.Context, businessID uuid.UUID) (*models.Brand, error) {
	var b models.Brand
	err := r.pool.QueryRow(ctx, `
		SELECT id, business_id, description, logo_url, brand_colors, tone_of_voice,
		       language, is_complete, created_at, updated_at
		FROM brands WHERE business_id = $1
	`, businessID).Scan(&b.ID, &b.BusinessID, &b.Description, &b.LogoURL,
		&b.BrandColors, &b.ToneOfVoice, &b.Language, &b.IsComplete,
		&b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BrandRepo) Update(ctx context.Context, b *models.Brand) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE brands
		SET description = $1, logo_url = $2, brand_colors = $3, tone_of_voice = $4,
		    language = $5, is_complete = $6, updated_at = now()
		WHERE business_id = $7
		RETURNING id, updated_at
	`, b.Description, b.LogoURL, b.BrandColors, b.ToneOfVoice, b.Language,
		b.IsComplete, b.BusinessID).Scan(&b.ID, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Upsert writes the brand profile for a business, one row per business.
func (r *BrandRepo) Upsert(ctx context.Context, b *models.Brand) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO brands (business_id, description, logo_url, brand_colors,
		                    tone_of_voice, language, is_complete)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (business_id) DO UPDATE SET
			description = EXCLUDED.description,
			logo_url = EXCLUDED.logo_url,
			brand_colors = EXCLUDED.brand_colors,
			tone_of_voice = EXCLUDED.tone_of_voice,
			language = EXCLUDED.language,
			is_complete = EXCLUDED.is_complete,
			updated_at = now()
		RETURNING id, created_at, updated_at
	`, b.BusinessID, b.Description, b.LogoURL, b.BrandColors, b.ToneOfVoice,
		b.Language, b.IsComplete,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}