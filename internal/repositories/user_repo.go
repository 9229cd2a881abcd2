package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/admaster/backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a row does not exist.
var ErrNotFound = errors.New("not found")

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func (r *UserRepo) GetByClerkID(ctx context.Context, clerkID string) (*models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx, `
		SELECT id, clerk_id, email, first_name, last_name, image_url,
		       created_at, updated_at, last_login_at
		FROM users WHERE clerk_id = $1
	`, clerkID).Scan(&u.ID, &u.ClerkID, &u.Email, &u.FirstName, &u.LastName,
		&u.ImageURL, &u.CreatedAt, &u.UpdatedAt, &u.LastLoginAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Upsert inserts a user or refreshes profile fields on conflict. Used by the
// identity webhook and by auto-provisioning on first authenticated request.
func (r *UserRepo) Upsert(ctx context.Context, u *models.User) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO users (clerk_id, email, first_name, last_name, image_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (clerk_id) DO UPDATE SET
			email = EXCLUDED.email,
			first_name = COALESCE(EXCLUDED.first_name, users.first_name),
			last_name = COALESCE(EXCLUDED.last_name, users.last_name),
			image_url = COALESCE(EXCLUDED.image_url, users.image_url),
			updated_at = now()
		RETURNING id, created_at, updated_at
	`, u.ClerkID, u.Email, u.FirstName, u.LastName, u.ImageURL,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

func (r *UserRepo) Delete(ctx context.Context, clerkID string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE clerk_id = $1`, clerkID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *UserRepo) UpdateLastLogin(ctx context.Context, clerkID string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE users SET last_login_at = $1, updated_at = $1 WHERE clerk_id = $2
	`, time.Now().UTC(), clerkID)
	return err
}
