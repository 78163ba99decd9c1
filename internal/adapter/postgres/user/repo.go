// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/notejam/internal/adapter/postgres"
	"github.com/heartmarshall/notejam/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const userColumns = `id, email, password_hash, created_at`

const getByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

const getByEmailSQL = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1`

const createSQL = `
INSERT INTO users (email, password_hash)
VALUES ($1, $2)
RETURNING ` + userColumns

const updatePasswordSQL = `
UPDATE users
SET password_hash = $2
WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// GetByEmail returns a user by exact email match.
// Returns domain.ErrNotFound if no user has that email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		// The email is not echoed into the error to keep it out of logs.
		return nil, postgres.MapError(err, "user", "by-email")
	}

	return u, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new user and returns the persisted domain.User.
// A duplicate email results in domain.ErrDuplicateEmail.
func (r *Repo) Create(ctx context.Context, email, passwordHash string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, createSQL, email, passwordHash))
	if err != nil {
		mapped := postgres.MapError(err, "user", "new")
		if errors.Is(mapped, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("user: %w", domain.ErrDuplicateEmail)
		}
		return nil, mapped
	}

	return u, nil
}

// UpdatePassword replaces the stored hash for the given user.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := q.Exec(ctx, updatePasswordSQL, id, passwordHash)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
