package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/notejam/internal/domain"
)

// Register creates a new user with email + password.
// Returns domain.ErrDuplicateEmail if the email is already registered.
// The email is trimmed but its case is kept as entered.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	// Email uniqueness is enforced by a DB constraint.
	var created *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		u, err := s.users.Create(txCtx, input.Email, hash)
		if err != nil {
			return err
		}
		created = u
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) || errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrDuplicateEmail)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.Int64("user_id", created.ID))

	return created, nil
}
