package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/notejam/internal/adapter/postgres"
	notepg "github.com/heartmarshall/notejam/internal/adapter/postgres/note"
	padpg "github.com/heartmarshall/notejam/internal/adapter/postgres/pad"
	sessionpg "github.com/heartmarshall/notejam/internal/adapter/postgres/session"
	userpg "github.com/heartmarshall/notejam/internal/adapter/postgres/user"
	"github.com/heartmarshall/notejam/internal/auth"
	"github.com/heartmarshall/notejam/internal/config"
	"github.com/heartmarshall/notejam/internal/mail"
	authsvc "github.com/heartmarshall/notejam/internal/service/auth"
	notesvc "github.com/heartmarshall/notejam/internal/service/note"
	padsvc "github.com/heartmarshall/notejam/internal/service/pad"
	"github.com/heartmarshall/notejam/internal/transport/middleware"
	"github.com/heartmarshall/notejam/internal/transport/rest"
	"github.com/heartmarshall/notejam/internal/transport/web"
	"github.com/heartmarshall/notejam/migrations"
)

// rateLimitCleanup is how often idle rate-limit buckets are swept.
const rateLimitCleanup = 5 * time.Minute

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, applies migrations when configured to, and serves HTTP until
// ctx is cancelled. In-flight requests and queued mail are drained before
// it returns.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("env", cfg.App.Env),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database, cfg.App.Name)
	if err != nil {
		return fmt.Errorf("app: database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := migrate(ctx, pool, logger); err != nil {
			return err
		}
	}

	// Repositories
	users := userpg.New(pool)
	sessions := sessionpg.New(pool)
	pads := padpg.New(pool)
	notes := notepg.New(pool)
	tx := postgres.NewTxManager(pool)

	// Mail
	dispatcher := mail.NewDispatcher(mail.NewSender(cfg.Mail, logger), cfg.Mail, logger)

	// Services
	authService := authsvc.NewService(logger, users, sessions, tx, auth.NewPasswordHasher(cfg.Auth.PasswordHashCost), dispatcher, cfg.Session)
	padService := padsvc.NewService(logger, pads)
	noteService := notesvc.NewService(logger, notes, pads, tx)

	// Transport
	renderer, err := web.NewTemplateRenderer()
	if err != nil {
		return fmt.Errorf("app: templates: %w", err)
	}

	flash := web.NewFlashStore(
		auth.NewFlashCodec(cfg.Auth.FlashSecret, cfg.App.Name, web.FlashTTL),
		cfg.Session.Secure,
		logger,
	)

	handler := web.NewHandler(logger, authService, padService, noteService, renderer, flash, web.Options{
		SessionCookie: cfg.Session.CookieName,
		SecureCookies: cfg.Session.Secure,
		Development:   cfg.App.IsDevelopment(),
	})

	limiter := middleware.NewRateLimiter(rateLimitCleanup)
	defer limiter.Stop()

	router := web.NewRouter(web.RouterDeps{
		Handler:         handler,
		Health:          rest.NewHealthHandler(pool, dispatcher, BuildVersion()),
		Sessions:        authService,
		PadBatch:        pads,
		Limiter:         limiter,
		Logger:          logger,
		QueryTimeout:    cfg.Database.QueryTimeout,
		SignInPerMinute: cfg.Auth.SignInRatePerMinute,
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	// Mail stops only after the HTTP server has drained.
	mailCtx, stopMail := context.WithCancel(context.WithoutCancel(ctx))
	defer stopMail()

	g.Go(func() error {
		return dispatcher.Run(mailCtx)
	})

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app: http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		defer stopMail()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("app: shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("application stopped with error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("application stopped")
	return nil
}

func migrate(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	m, err := postgres.NewMigrator(pool, migrations.FS, logger)
	if err != nil {
		return fmt.Errorf("app: migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(ctx); err != nil {
		return fmt.Errorf("app: migrate: %w", err)
	}
	return nil
}
