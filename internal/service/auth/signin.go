package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/notejam/internal/auth"
	"github.com/heartmarshall/notejam/internal/domain"
)

// InvalidCredentialsMessage is shown for every sign-in failure, whichever
// factor was wrong.
const InvalidCredentialsMessage = "Invalid email or password."

// SignInResult is returned by a successful SignIn.
type SignInResult struct {
	// Token is the raw session token for the client cookie. Only its hash is stored.
	Token    string
	Identity domain.Identity
}

// SignIn verifies credentials and opens a new session.
// Unknown email and wrong password both return domain.ErrInvalidCredentials;
// an unknown email still costs one bcrypt comparison.
func (s *Service) SignIn(ctx context.Context, input SignInInput) (*SignInResult, error) {
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.hasher.VerifyDummy(input.Password)
		return nil, s.reject(ctx, "unknown email")
	case err != nil:
		return nil, fmt.Errorf("auth.SignIn get user: %w", err)
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, s.reject(ctx, "wrong password")
	}

	// Any session the client already held is dropped so a planted token
	// never becomes authenticated.
	if input.PreviousToken != "" {
		if err := s.sessions.Delete(ctx, auth.HashToken(input.PreviousToken)); err != nil {
			return nil, fmt.Errorf("auth.SignIn revoke previous session: %w", err)
		}
	}

	raw, hash, err := s.newToken()
	if err != nil {
		return nil, fmt.Errorf("auth.SignIn: %w", err)
	}
	if _, err := s.sessions.Create(ctx, hash, user.ID); err != nil {
		return nil, fmt.Errorf("auth.SignIn create session: %w", err)
	}

	s.log.InfoContext(ctx, "user signed in", slog.Int64("user_id", user.ID))

	return &SignInResult{Token: raw, Identity: domain.Authenticated(user)}, nil
}

// reject logs the internal reason and returns the generic error.
func (s *Service) reject(ctx context.Context, reason string) error {
	rejected := domain.Rejected(domain.ErrInvalidCredentials)
	s.log.InfoContext(ctx, "sign-in rejected",
		slog.String("state", rejected.State.String()),
		slog.String("reason", reason),
	)
	return rejected.Reason
}
