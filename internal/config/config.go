package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	App      AppConfig      `yaml:"app"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Session  SessionConfig  `yaml:"session"`
	Auth     AuthConfig     `yaml:"auth"`
	Mail     MailConfig     `yaml:"mail"`
	Log      LogConfig      `yaml:"log"`
}

// AppConfig holds process-wide settings.
type AppConfig struct {
	Name string `yaml:"name" env:"APP_NAME" env-default:"notejam"`
	// Env is "development" or "production". Error details and stack traces
	// are only rendered to clients in development.
	Env string `yaml:"env"  env:"APP_ENV"  env-default:"production"`
}

// IsDevelopment reports whether the app runs in development mode.
func (c AppConfig) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	QueryTimeout    time.Duration `yaml:"query_timeout"      env:"DATABASE_QUERY_TIMEOUT"      env-default:"5s"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
}

// SessionConfig holds cookie session settings.
type SessionConfig struct {
	CookieName string `yaml:"cookie_name" env:"SESSION_COOKIE_NAME" env-default:"notejam_session"`
	// IdleTimeout is the maximum inactivity before a session resolves to anonymous.
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"SESSION_IDLE_TIMEOUT" env-default:"60s"`
	Secure      bool          `yaml:"secure"       env:"SESSION_SECURE"       env-default:"false"`
}

// AuthConfig holds password and sign-in settings.
type AuthConfig struct {
	PasswordHashCost    int    `yaml:"password_hash_cost"     env:"AUTH_PASSWORD_HASH_COST"     env-default:"10"`
	FlashSecret         string `yaml:"flash_secret"           env:"AUTH_FLASH_SECRET"           env-required:"true"`
	SignInRatePerMinute int    `yaml:"signin_rate_per_minute" env:"AUTH_SIGNIN_RATE_PER_MINUTE" env-default:"20"`
}

// MailConfig holds outgoing mail settings.
type MailConfig struct {
	// Driver is "log" (stub transport, nothing leaves the process) or "smtp".
	Driver       string `yaml:"driver"        env:"MAIL_DRIVER"        env-default:"log"`
	From         string `yaml:"from"          env:"MAIL_FROM"          env-default:"noreply@notejamapp.com"`
	SMTPHost     string `yaml:"smtp_host"     env:"MAIL_SMTP_HOST"`
	SMTPPort     int    `yaml:"smtp_port"     env:"MAIL_SMTP_PORT"     env-default:"587"`
	SMTPUsername string `yaml:"smtp_username" env:"MAIL_SMTP_USERNAME"`
	SMTPPassword string `yaml:"smtp_password" env:"MAIL_SMTP_PASSWORD"`
	QueueSize    int    `yaml:"queue_size"    env:"MAIL_QUEUE_SIZE"    env-default:"64"`
	Workers      int    `yaml:"workers"       env:"MAIL_WORKERS"       env-default:"2"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
