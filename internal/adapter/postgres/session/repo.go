// Package session implements server-side sign-in session storage using PostgreSQL.
// Only the SHA-256 hash of a session token is stored; the raw token lives in
// the client cookie.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/notejam/internal/adapter/postgres"
	"github.com/heartmarshall/notejam/internal/domain"
)

// Repo provides session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const sessionColumns = `token_hash, user_id, created_at, last_seen_at`

const createSQL = `
INSERT INTO sessions (token_hash, user_id)
VALUES ($1, $2)
RETURNING ` + sessionColumns

// touchSQL extends a session only while it is inside the idle window, so an
// expired session can never be revived by a late request.
const touchSQL = `
UPDATE sessions
SET last_seen_at = now()
WHERE token_hash = $1 AND last_seen_at > $2
RETURNING ` + sessionColumns

const deleteSQL = `
DELETE FROM sessions
WHERE token_hash = $1`

const deleteByUserSQL = `
DELETE FROM sessions
WHERE user_id = $1`

const deleteIdleSQL = `
DELETE FROM sessions
WHERE last_seen_at <= $1`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Create stores a new session for userID under tokenHash.
func (r *Repo) Create(ctx context.Context, tokenHash string, userID int64) (*domain.Session, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSession(q.QueryRow(ctx, createSQL, tokenHash, userID))
	if err != nil {
		return nil, postgres.MapError(err, "session", userID)
	}

	return s, nil
}

// Touch refreshes last_seen_at for a session that was last seen after
// activeSince and returns it. Returns domain.ErrNotFound if the session does
// not exist or is idle.
func (r *Repo) Touch(ctx context.Context, tokenHash string, activeSince time.Time) (*domain.Session, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSession(q.QueryRow(ctx, touchSQL, tokenHash, activeSince.UTC()))
	if err != nil {
		return nil, postgres.MapError(err, "session", "touch")
	}

	return s, nil
}

// Delete removes a session. Idempotent: deleting a missing session is not an error.
func (r *Repo) Delete(ctx context.Context, tokenHash string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, deleteSQL, tokenHash); err != nil {
		return postgres.MapError(err, "session", "delete")
	}

	return nil
}

// DeleteByUser removes every session of the given user.
func (r *Repo) DeleteByUser(ctx context.Context, userID int64) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteByUserSQL, userID)
	if err != nil {
		return 0, postgres.MapError(err, "session", userID)
	}

	return int(tag.RowsAffected()), nil
}

// DeleteIdle removes all sessions last seen at or before cutoff.
// Returns the count of deleted sessions.
// May delete many records; does not use a transaction.
func (r *Repo) DeleteIdle(ctx context.Context, cutoff time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteIdleSQL, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("delete idle sessions: %w", postgres.MapError(err, "session", "idle"))
	}

	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanSession(row pgx.Row) (*domain.Session, error) {
	var s domain.Session
	if err := row.Scan(&s.TokenHash, &s.UserID, &s.CreatedAt, &s.LastSeenAt); err != nil {
		return nil, err
	}
	return &s, nil
}
