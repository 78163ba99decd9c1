// Package note implements the Note repository using PostgreSQL.
// Point queries use raw SQL; listings are built with squirrel so the sort key
// can be chosen from a fixed set.
package note

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/notejam/internal/adapter/postgres"
	"github.com/heartmarshall/notejam/internal/domain"
)

// Repo provides note persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new note repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const noteColumns = `id, user_id, pad_id, name, text, created_at, updated_at`

const getOwnedSQL = `
SELECT ` + noteColumns + `
FROM notes
WHERE id = $1 AND user_id = $2`

const createSQL = `
INSERT INTO notes (user_id, pad_id, name, text)
VALUES ($1, $2, $3, $4)
RETURNING ` + noteColumns

// updated_at is strictly increasing even when two edits land in the same
// clock tick.
const updateSQL = `
UPDATE notes
SET name = $3, text = $4, updated_at = GREATEST(now(), updated_at + interval '1 microsecond')
WHERE id = $1 AND user_id = $2
RETURNING ` + noteColumns

const deleteSQL = `
DELETE FROM notes
WHERE id = $1 AND user_id = $2`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetOwned returns a note by primary key filtered by owner.
// Returns domain.ErrNotFound if the note does not exist or belongs to another user.
func (r *Repo) GetOwned(ctx context.Context, id, ownerID int64) (*domain.Note, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := scanNote(q.QueryRow(ctx, getOwnedSQL, id, ownerID))
	if err != nil {
		return nil, postgres.MapError(err, "note", id)
	}

	return n, nil
}

// List returns the owner's notes matching f.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, f domain.NoteFilter) ([]domain.Note, error) {
	query := psql.
		Select(noteColumns).
		From("notes").
		Where(sq.Eq{"user_id": f.OwnerID}).
		OrderBy(orderBy(f.Order)...)

	if f.PadID != nil {
		query = query.Where(sq.Eq{"pad_id": *f.PadID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list notes query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", postgres.MapError(err, "note", "list"))
	}
	defer rows.Close()

	notes, err := scanNotes(rows)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", postgres.MapError(err, "note", "list"))
	}

	return notes, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new note and returns it. padID may be nil.
func (r *Repo) Create(ctx context.Context, ownerID int64, padID *int64, name, text string) (*domain.Note, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := scanNote(q.QueryRow(ctx, createSQL, ownerID, padID, name, text))
	if err != nil {
		return nil, postgres.MapError(err, "note", "new")
	}

	return n, nil
}

// Update replaces a note's name and text and refreshes updated_at.
// Returns domain.ErrNotFound if the note does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, id, ownerID int64, name, text string) (*domain.Note, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := scanNote(q.QueryRow(ctx, updateSQL, id, ownerID, name, text))
	if err != nil {
		return nil, postgres.MapError(err, "note", id)
	}

	return n, nil
}

// Delete removes a note.
// Returns domain.ErrNotFound if the note does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, id, ownerID int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := q.Exec(ctx, deleteSQL, id, ownerID)
	if err != nil {
		return postgres.MapError(err, "note", id)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("note %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanNote(row pgx.Row) (*domain.Note, error) {
	var n domain.Note
	if err := row.Scan(&n.ID, &n.UserID, &n.PadID, &n.Name, &n.Text, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, err
	}
	return &n, nil
}

func scanNotes(rows pgx.Rows) ([]domain.Note, error) {
	notes := []domain.Note{}
	for rows.Next() {
		var n domain.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.PadID, &n.Name, &n.Text, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return notes, nil
}
