package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch strings.ToLower(c.App.Env) {
	case "development", "production":
	default:
		return fmt.Errorf("app.env must be development or production (got %q)", c.App.Env)
	}

	if c.Database.QueryTimeout <= 0 {
		return fmt.Errorf("database.query_timeout must be > 0 (got %v)", c.Database.QueryTimeout)
	}

	if c.Session.IdleTimeout <= 0 {
		return fmt.Errorf("session.idle_timeout must be > 0 (got %v)", c.Session.IdleTimeout)
	}
	if strings.TrimSpace(c.Session.CookieName) == "" {
		return fmt.Errorf("session.cookie_name is required")
	}

	if err := c.Auth.validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	if err := c.Mail.validate(); err != nil {
		return fmt.Errorf("mail: %w", err)
	}

	return nil
}

func (a *AuthConfig) validate() error {
	if len(a.FlashSecret) < 32 {
		return fmt.Errorf("flash_secret must be at least 32 characters (got %d)", len(a.FlashSecret))
	}
	if a.PasswordHashCost < bcrypt.MinCost || a.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, a.PasswordHashCost)
	}
	if a.SignInRatePerMinute <= 0 {
		return fmt.Errorf("signin_rate_per_minute must be > 0 (got %d)", a.SignInRatePerMinute)
	}
	return nil
}

func (m *MailConfig) validate() error {
	switch strings.ToLower(m.Driver) {
	case "log":
	case "smtp":
		if m.SMTPHost == "" {
			return fmt.Errorf("smtp_host is required when driver is smtp")
		}
		if m.SMTPPort <= 0 {
			return fmt.Errorf("smtp_port must be > 0 (got %d)", m.SMTPPort)
		}
	default:
		return fmt.Errorf("driver must be log or smtp (got %q)", m.Driver)
	}

	if m.From == "" {
		return fmt.Errorf("from is required")
	}
	if m.QueueSize <= 0 {
		return fmt.Errorf("queue_size must be > 0 (got %d)", m.QueueSize)
	}
	if m.Workers <= 0 {
		return fmt.Errorf("workers must be > 0 (got %d)", m.Workers)
	}
	return nil
}
