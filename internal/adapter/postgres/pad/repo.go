// Package pad implements the Pad repository using PostgreSQL.
// Every read and write is filtered by owner in the same statement.
package pad

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/notejam/internal/adapter/postgres"
	"github.com/heartmarshall/notejam/internal/domain"
)

// Repo provides pad persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new pad repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const padColumns = `id, user_id, name, created_at, updated_at`

const getOwnedSQL = `
SELECT ` + padColumns + `
FROM pads
WHERE id = $1 AND user_id = $2`

const getOwnedByIDsSQL = `
SELECT ` + padColumns + `
FROM pads
WHERE user_id = $1 AND id = ANY($2::bigint[])`

const listSQL = `
SELECT ` + padColumns + `
FROM pads
WHERE user_id = $1
ORDER BY name, id`

const createSQL = `
INSERT INTO pads (user_id, name)
VALUES ($1, $2)
RETURNING ` + padColumns

const updateSQL = `
UPDATE pads
SET name = $3, updated_at = GREATEST(now(), updated_at + interval '1 microsecond')
WHERE id = $1 AND user_id = $2
RETURNING ` + padColumns

const deleteSQL = `
DELETE FROM pads
WHERE id = $1 AND user_id = $2`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetOwned returns a pad by primary key filtered by owner.
// Returns domain.ErrNotFound if the pad does not exist or belongs to another user.
func (r *Repo) GetOwned(ctx context.Context, id, ownerID int64) (*domain.Pad, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPad(q.QueryRow(ctx, getOwnedSQL, id, ownerID))
	if err != nil {
		return nil, postgres.MapError(err, "pad", id)
	}

	return p, nil
}

// GetOwnedByIDs returns the pads among ids that belong to ownerID (batch for DataLoader).
// Missing or foreign ids are simply absent from the result.
func (r *Repo) GetOwnedByIDs(ctx context.Context, ownerID int64, ids []int64) ([]domain.Pad, error) {
	if len(ids) == 0 {
		return []domain.Pad{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getOwnedByIDsSQL, ownerID, ids)
	if err != nil {
		return nil, fmt.Errorf("get pads by ids: %w", postgres.MapError(err, "pad", "batch"))
	}
	defer rows.Close()

	pads, err := scanPads(rows)
	if err != nil {
		return nil, fmt.Errorf("get pads by ids: %w", postgres.MapError(err, "pad", "batch"))
	}

	return pads, nil
}

// List returns all pads of a user ordered by name.
// Returns an empty slice (not nil) when the user has no pads.
func (r *Repo) List(ctx context.Context, ownerID int64) ([]domain.Pad, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list pads: %w", postgres.MapError(err, "pad", "list"))
	}
	defer rows.Close()

	pads, err := scanPads(rows)
	if err != nil {
		return nil, fmt.Errorf("list pads: %w", postgres.MapError(err, "pad", "list"))
	}

	return pads, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new pad and returns it.
func (r *Repo) Create(ctx context.Context, ownerID int64, name string) (*domain.Pad, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPad(q.QueryRow(ctx, createSQL, ownerID, name))
	if err != nil {
		return nil, postgres.MapError(err, "pad", "new")
	}

	return p, nil
}

// Update renames a pad.
// Returns domain.ErrNotFound if the pad does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, id, ownerID int64, name string) (*domain.Pad, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPad(q.QueryRow(ctx, updateSQL, id, ownerID, name))
	if err != nil {
		return nil, postgres.MapError(err, "pad", id)
	}

	return p, nil
}

// Delete removes a pad. Notes filed under it are left untouched.
// Returns domain.ErrNotFound if the pad does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, id, ownerID int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := q.Exec(ctx, deleteSQL, id, ownerID)
	if err != nil {
		return postgres.MapError(err, "pad", id)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("pad %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanPad(row pgx.Row) (*domain.Pad, error) {
	var p domain.Pad
	if err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanPads(rows pgx.Rows) ([]domain.Pad, error) {
	pads := []domain.Pad{}
	for rows.Next() {
		var p domain.Pad
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		pads = append(pads, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return pads, nil
}
