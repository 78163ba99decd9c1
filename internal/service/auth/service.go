package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/notejam/internal/auth"
	"github.com/heartmarshall/notejam/internal/config"
	"github.com/heartmarshall/notejam/internal/domain"
	"github.com/heartmarshall/notejam/internal/mail"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, email, passwordHash string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

// sessionRepo defines the session repository interface needed by auth service.
type sessionRepo interface {
	Create(ctx context.Context, tokenHash string, userID int64) (*domain.Session, error)
	Touch(ctx context.Context, tokenHash string, activeSince time.Time) (*domain.Session, error)
	Delete(ctx context.Context, tokenHash string) error
	DeleteIdle(ctx context.Context, cutoff time.Time) (int, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// passwordHasher defines password hashing needed by auth service.
type passwordHasher interface {
	Hash(raw string) (string, error)
	Verify(raw, hash string) bool
	VerifyDummy(raw string) bool
}

// mailQueue defines the asynchronous mail delivery needed by auth service.
type mailQueue interface {
	Enqueue(msg mail.Message) bool
}

// Service implements credential and session operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	sessions sessionRepo
	tx       txManager
	hasher   passwordHasher
	mail     mailQueue
	cfg      config.SessionConfig

	now         func() time.Time
	newToken    func() (raw, hash string, err error)
	newPassword func(n int) (string, error)
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	sessions sessionRepo,
	tx txManager,
	hasher passwordHasher,
	mailQueue mailQueue,
	cfg config.SessionConfig,
) *Service {
	return &Service{
		log:         logger.With("service", "auth"),
		users:       users,
		sessions:    sessions,
		tx:          tx,
		hasher:      hasher,
		mail:        mailQueue,
		cfg:         cfg,
		now:         time.Now,
		newToken:    auth.GenerateSessionToken,
		newPassword: auth.GeneratePassword,
	}
}
