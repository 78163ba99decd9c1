package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/notejam/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique email and a placeholder password hash.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	user := domain.User{
		Email:        "testuser-" + uniqueSuffix() + "@example.com",
		PasswordHash: "$2a$10$placeholderplaceholderplaceholderplaceholderplacehold",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, created_at) VALUES ($1, $2, $3) RETURNING id`,
		user.Email, user.PasswordHash, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedPad creates a pad owned by userID. Returns a filled domain.Pad.
func SeedPad(t *testing.T, pool *pgxpool.Pool, userID int64) domain.Pad {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	pad := domain.Pad{
		UserID:    userID,
		Name:      "Pad " + uniqueSuffix(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO pads (user_id, name, created_at, updated_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		pad.UserID, pad.Name, pad.CreatedAt, pad.UpdatedAt,
	).Scan(&pad.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedPad insert pad: %v", err)
	}

	return pad
}

// SeedNote creates a note owned by userID, optionally filed under padID.
// Returns a filled domain.Note.
func SeedNote(t *testing.T, pool *pgxpool.Pool, userID int64, padID *int64) domain.Note {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	note := domain.Note{
		UserID:    userID,
		PadID:     padID,
		Name:      "Note " + suffix,
		Text:      "Text of note " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO notes (user_id, pad_id, name, text, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		note.UserID, note.PadID, note.Name, note.Text, note.CreatedAt, note.UpdatedAt,
	).Scan(&note.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedNote insert note: %v", err)
	}

	return note
}

// SeedSession stores a session row for userID with the given token hash and
// last-seen time.
func SeedSession(t *testing.T, pool *pgxpool.Pool, userID int64, tokenHash string, lastSeen time.Time) domain.Session {
	t.Helper()
	ctx := context.Background()

	s := domain.Session{
		TokenHash:  tokenHash,
		UserID:     userID,
		CreatedAt:  lastSeen.UTC().Truncate(time.Microsecond),
		LastSeenAt: lastSeen.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO sessions (token_hash, user_id, created_at, last_seen_at) VALUES ($1, $2, $3, $4)`,
		s.TokenHash, s.UserID, s.CreatedAt, s.LastSeenAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSession insert session: %v", err)
	}

	return s
}
