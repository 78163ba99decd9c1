package auth

import (
	"strings"

	"github.com/heartmarshall/notejam/internal/domain"
)

const (
	maxEmailLength    = 254
	minPasswordLength = 6
	// bcrypt ignores everything past 72 bytes.
	maxPasswordLength = 72
)

// RegisterInput holds parameters for sign-up.
type RegisterInput struct {
	Email           string
	Password        string
	ConfirmPassword string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	errs = validateEmail(errs, i.Email)
	errs = validateNewPassword(errs, "password", i.Password)

	if i.ConfirmPassword != "" && i.ConfirmPassword != i.Password {
		errs = append(errs, domain.FieldError{Field: "confirm_password", Message: "Passwords do not match."})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SignInInput holds parameters for sign-in.
// PreviousToken is the session token the client already held, if any; it is
// revoked on successful sign-in.
type SignInInput struct {
	Email         string
	Password      string
	PreviousToken string
}

// Validate validates the sign-in input.
func (i SignInInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "Email is required."})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "Password is required."})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ChangePasswordInput holds parameters for the settings page password change.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

// Validate validates the change-password input. The current password is
// checked against the store separately.
func (i ChangePasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.CurrentPassword == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "Current password is required."})
	}
	errs = validateNewPassword(errs, "new_password", i.NewPassword)
	if i.NewPassword != i.ConfirmPassword {
		errs = append(errs, domain.FieldError{Field: "confirm_new_password", Message: "Passwords do not match."})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateEmail(errs []domain.FieldError, email string) []domain.FieldError {
	switch {
	case email == "":
		return append(errs, domain.FieldError{Field: "email", Message: "Email is required."})
	case len(email) > maxEmailLength:
		return append(errs, domain.FieldError{Field: "email", Message: "Email is too long."})
	case !looksLikeEmail(email):
		return append(errs, domain.FieldError{Field: "email", Message: "Invalid email address."})
	}
	return errs
}

func validateNewPassword(errs []domain.FieldError, field, password string) []domain.FieldError {
	switch {
	case password == "":
		return append(errs, domain.FieldError{Field: field, Message: "Password is required."})
	case len(password) < minPasswordLength:
		return append(errs, domain.FieldError{Field: field, Message: "Password must be at least 6 characters."})
	case len(password) > maxPasswordLength:
		return append(errs, domain.FieldError{Field: field, Message: "Password must be at most 72 bytes."})
	}
	return errs
}

// looksLikeEmail accepts exactly one '@' with non-empty parts and no whitespace.
func looksLikeEmail(s string) bool {
	if strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	local, domainPart, ok := strings.Cut(s, "@")
	if !ok || local == "" || domainPart == "" {
		return false
	}
	return !strings.Contains(domainPart, "@")
}
