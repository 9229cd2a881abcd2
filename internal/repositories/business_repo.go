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

type BusinessRepo struct {
	pool *pgxpool.Pool
}

func NewBusinessRepo(pool *pgxpool.Pool) *BusinessRepo {
	return &BusinessRepo{pool: pool}
}

func (r *BusinessRepo) Create(ctx context.Context, b *models.Business) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO businesses (user_id, name, website, industry, size, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, b.UserID, b.Name, b.Website, b.Industry, b.Size, b.Status,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *BusinessRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Business, error) {
	var b models.Business
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name, website, industry, size, status, created_at, updated_at
		FROM businesses WHERE id = $1
	`, id).Scan(&b.ID, &b.UserID, &b.Name, &b.Website, &b.Industry, &b.Size,
		&b.Status, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ListByUser returns the user's businesses newest first. An empty status
// returns all of them.
func (r *BusinessRepo) ListByUser(ctx context.Context, userID string, status string, limit, offset int) ([]models.Business, error) {
	query := `
		SELECT id, user_id, name, website, industry, size, status, created_at, updated_at
		FROM businesses WHERE user_id = $1`
	args := []any{userID}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	businesses := []models.Business{}
	for rows.Next() {
		var b models.Business
		if err := rows.Scan(&b.ID, &b.UserID, &b.Name, &b.Website, &b.Industry,
			&b.Size, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		businesses = append(businesses, b)
	}
	return businesses, rows.Err()
}

func (r *BusinessRepo) Update(ctx context.Context, b *models.Business) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE businesses
		SET name = $1, website = $2, industry = $3, size = $4, status = $5, updated_at = now()
		WHERE id = $6
		RETURNING updated_at
	`, b.Name, b.Website, b.Industry, b.Size, b.Status, b.ID).Scan(&b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *BusinessRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM businesses WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *BusinessRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM businesses WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}
