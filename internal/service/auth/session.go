package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/notejam/internal/auth"
	"github.com/heartmarshall/notejam/internal/domain"
)

// SignOut ends the session identified by the raw token. Signing out without
// a session, or twice, is not an error.
func (s *Service) SignOut(ctx context.Context, rawToken string) (domain.Identity, error) {
	if rawToken == "" {
		return domain.Anonymous(), nil
	}

	if err := s.sessions.Delete(ctx, auth.HashToken(rawToken)); err != nil {
		return domain.Anonymous(), fmt.Errorf("auth.SignOut: %w", err)
	}

	return domain.Anonymous(), nil
}

// Resolve maps a raw session token to an identity. Missing, idle or unknown
// sessions and sessions of deleted users resolve to Anonymous; only store
// failures are returned as errors. A resolved session's idle window slides.
func (s *Service) Resolve(ctx context.Context, rawToken string) (domain.Identity, error) {
	if rawToken == "" {
		return domain.Anonymous(), nil
	}

	activeSince := s.now().Add(-s.cfg.IdleTimeout)

	sess, err := s.sessions.Touch(ctx, auth.HashToken(rawToken), activeSince)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Anonymous(), nil
		}
		return domain.Anonymous(), fmt.Errorf("auth.Resolve touch session: %w", err)
	}

	user, err := s.users.GetByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.DebugContext(ctx, "session user gone", slog.Int64("user_id", sess.UserID))
			return domain.Anonymous(), nil
		}
		return domain.Anonymous(), fmt.Errorf("auth.Resolve get user: %w", err)
	}

	return domain.Authenticated(user), nil
}

// RequireAuthenticated returns the identity's user, or domain.ErrUnauthorized
// when the identity is not authenticated. Protected operations must call it
// before touching any resource.
func RequireAuthenticated(identity domain.Identity) (*domain.User, error) {
	if !identity.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	return identity.User, nil
}

// CleanupIdleSessions removes sessions idle for longer than the configured
// timeout. Returns the number of sessions deleted. This is a maintenance operation.
func (s *Service) CleanupIdleSessions(ctx context.Context) (int, error) {
	count, err := s.sessions.DeleteIdle(ctx, s.now().Add(-s.cfg.IdleTimeout))
	if err != nil {
		s.log.ErrorContext(ctx, "session cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupIdleSessions: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up idle sessions", slog.Int("count", count))
	}

	return count, nil
}
