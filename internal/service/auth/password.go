package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/notejam/internal/domain"
	"github.com/heartmarshall/notejam/internal/mail"
	"github.com/heartmarshall/notejam/pkg/ctxutil"
)

const (
	resetPasswordLength = 10
	resetMailSubject    = "Password Reset"
)

// SetPassword replaces the stored hash for userID.
// Returns domain.ErrNotFound if the user does not exist.
func (s *Service) SetPassword(ctx context.Context, userID int64, newPassword string) error {
	if errs := validateNewPassword(nil, "password", newPassword); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("auth.SetPassword: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("auth.SetPassword: %w", err)
	}

	s.log.InfoContext(ctx, "password changed", slog.Int64("user_id", userID))
	return nil
}

// ChangePassword changes the authenticated user's password after checking
// the current one.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUnauthorized
		}
		return fmt.Errorf("auth.ChangePassword get user: %w", err)
	}

	if !s.hasher.Verify(input.CurrentPassword, user.PasswordHash) {
		return domain.NewValidationError("password", "Current password is incorrect.")
	}

	return s.SetPassword(ctx, userID, input.NewPassword)
}

// ForgotPassword replaces the password of the account registered under email
// with a random one and mails it. The new password is committed before the
// mail is queued; a failed delivery is only logged. Unknown emails succeed
// silently so the outcome does not reveal which addresses are registered.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.NewValidationError("email", "Email is required.")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.InfoContext(ctx, "password reset for unknown email ignored")
			return nil
		}
		return fmt.Errorf("auth.ForgotPassword get user: %w", err)
	}

	password, err := s.newPassword(resetPasswordLength)
	if err != nil {
		return fmt.Errorf("auth.ForgotPassword: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("auth.ForgotPassword: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.users.UpdatePassword(txCtx, user.ID, hash)
	})
	if err != nil {
		return fmt.Errorf("auth.ForgotPassword: %w", err)
	}

	queued := s.mail.Enqueue(mail.Message{
		To:      user.Email,
		Subject: resetMailSubject,
		Body:    "Your new password: " + password,
	})

	s.log.InfoContext(ctx, "password reset",
		slog.Int64("user_id", user.ID),
		slog.Bool("mail_queued", queued),
	)

	return nil
}
