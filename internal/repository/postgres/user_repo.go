package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerly/ledgerly-backend/internal/domain"
)

// UserRepository implements domain.UserRepository using PostgreSQL
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, auth0_id, email, name, created_at, updated_at`

// GetByID retrieves a user by their UUID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	return user, err
}

// GetByAuth0ID retrieves a user by their Auth0 subject
func (r *UserRepository) GetByAuth0ID(ctx context.Context, auth0ID string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE auth0_id = $1`, auth0ID)
	user, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	return user, err
}

// CreateOrGetByAuth0ID upserts on login. The returned flag is true when the row was inserted.
func (r *UserRepository) CreateOrGetByAuth0ID(ctx context.Context, auth0ID, email string, name *string) (*domain.User, bool, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (auth0_id, email, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (auth0_id) DO UPDATE
		SET email = EXCLUDED.email,
		    name = COALESCE(EXCLUDED.name, users.name),
		    updated_at = NOW()
		RETURNING `+userColumns+`, (xmax = 0) AS inserted`,
		auth0ID, email, stringPtrToPgText(name),
	)

	var (
		u        domain.User
		userName pgtype.Text
		inserted bool
	)
	if err := row.Scan(&u.ID, &u.Auth0ID, &u.Email, &userName, &u.CreatedAt, &u.UpdatedAt, &inserted); err != nil {
		return nil, false, err
	}
	u.Name = pgTextToStringPtr(userName)
	return &u, inserted, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		name pgtype.Text
	)
	if err := row.Scan(&u.ID, &u.Auth0ID, &u.Email, &name, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.Name = pgTextToStringPtr(name)
	return &u, nil
}
