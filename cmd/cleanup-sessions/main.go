// Command cleanup-sessions deletes sessions idle longer than
// session.idle_timeout. Such sessions already resolve to anonymous; this
// only reclaims their rows. It is intended to be run by an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/notejam/internal/adapter/postgres"
	"github.com/heartmarshall/notejam/internal/adapter/postgres/session"
	"github.com/heartmarshall/notejam/internal/adapter/postgres/user"
	"github.com/heartmarshall/notejam/internal/app"
	"github.com/heartmarshall/notejam/internal/auth"
	"github.com/heartmarshall/notejam/internal/config"
	authsvc "github.com/heartmarshall/notejam/internal/service/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, cfg.App.Name+"-cleanup")
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	// No mail is sent during cleanup.
	svc := authsvc.NewService(logger, user.New(pool), session.New(pool), postgres.NewTxManager(pool),
		auth.NewPasswordHasher(cfg.Auth.PasswordHashCost), nil, cfg.Session)

	deleted, err := svc.CleanupIdleSessions(ctx)
	if err != nil {
		os.Exit(1)
	}

	logger.Info("cleanup finished",
		slog.Int("deleted", deleted),
		slog.Duration("idle_timeout", cfg.Session.IdleTimeout),
	)
}
