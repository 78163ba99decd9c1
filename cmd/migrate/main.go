// Command migrate manages the database schema.
//
// Usage:
//
//	migrate up       apply all pending migrations
//	migrate down     roll back the most recent migration
//	migrate version  print the current schema version
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/notejam/internal/adapter/postgres"
	"github.com/heartmarshall/notejam/internal/app"
	"github.com/heartmarshall/notejam/internal/config"
	"github.com/heartmarshall/notejam/migrations"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: migrate up|down|version")
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, cfg.App.Name+"-migrate")
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	m, err := postgres.NewMigrator(pool, migrations.FS, logger)
	if err != nil {
		logger.Error("create migrator", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer m.Close()

	switch cmd := flag.Arg(0); cmd {
	case "up":
		err = m.Up(ctx)
	case "down":
		err = m.Down(ctx)
	case "version":
		var v int64
		if v, err = m.Version(ctx); err == nil {
			fmt.Println(v)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		logger.Error("migrate failed", slog.String("command", flag.Arg(0)), slog.String("error", err.Error()))
		os.Exit(1)
	}
}
