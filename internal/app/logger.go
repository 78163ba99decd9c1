package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/notejam/internal/config"
)

// redacted replaces the value of attributes whose key names a secret.
const redacted = "[REDACTED]"

// secretKeys are attribute keys never written in clear text.
var secretKeys = map[string]struct{}{
	"password":      {},
	"new_password":  {},
	"password_hash": {},
	"token":         {},
	"session_token": {},
	"flash_secret":  {},
}

// NewLogger creates the process logger from cfg and sets it as the slog
// default. Output goes to stderr.
//
// Format "json" is for production; "text" adds source locations for local
// development. Level is debug, info, warn or error and defaults to info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   strings.EqualFold(cfg.Format, "text"),
		ReplaceAttr: redactSecrets,
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

func redactSecrets(_ []string, a slog.Attr) slog.Attr {
	if _, ok := secretKeys[strings.ToLower(a.Key)]; ok {
		return slog.String(a.Key, redacted)
	}
	return a
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
