package postgres

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrator applies goose migrations through a database/sql handle opened on
// top of an existing pgx pool.
type Migrator struct {
	provider *goose.Provider
	closeDB  func() error
	log      *slog.Logger
}

// NewMigrator builds a Migrator for the migrations found in fsys.
// The returned Migrator must be closed; closing it does not close pool.
func NewMigrator(pool *pgxpool.Pool, fsys fs.FS, logger *slog.Logger) (*Migrator, error) {
	db := stdlib.OpenDBFromPool(pool)

	// NewProvider handles $$-delimited statements correctly, unlike the
	// legacy package-level goose.Up.
	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("goose new provider: %w", err)
	}

	return &Migrator{
		provider: provider,
		closeDB:  db.Close,
		log:      logger.With("component", "migrator"),
	}, nil
}

// Up applies all pending migrations.
func (m *Migrator) Up(ctx context.Context) error {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	for _, r := range results {
		m.log.Info("migration applied",
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration),
		)
	}
	if len(results) == 0 {
		m.log.Debug("schema up to date")
	}
	return nil
}

// Down rolls back the most recent migration.
func (m *Migrator) Down(ctx context.Context) error {
	r, err := m.provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("goose down: %w", err)
	}
	if r != nil {
		m.log.Info("migration rolled back", slog.Int64("version", r.Source.Version))
	}
	return nil
}

// Version returns the current schema version.
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	v, err := m.provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("goose version: %w", err)
	}
	return v, nil
}

// Close releases the database/sql handle.
func (m *Migrator) Close() error {
	return m.closeDB()
}
