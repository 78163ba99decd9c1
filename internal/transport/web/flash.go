package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/notejam/internal/auth"
)

const (
	flashCookieName = "notejam_flash"
	// FlashTTL bounds how long an unread message survives.
	FlashTTL = 5 * time.Minute
)

// FlashStore carries one-shot success/error messages across a redirect in a
// signed cookie. A message is shown once and then cleared.
type FlashStore struct {
	codec  *auth.FlashCodec
	secure bool
	log    *slog.Logger
}

// NewFlashStore creates a FlashStore signing cookies with codec.
func NewFlashStore(codec *auth.FlashCodec, secure bool, logger *slog.Logger) *FlashStore {
	return &FlashStore{codec: codec, secure: secure, log: logger}
}

// Set stores f for the next request.
func (s *FlashStore) Set(w http.ResponseWriter, f auth.Flash) {
	token, err := s.codec.Encode(f)
	if err != nil {
		s.log.Error("encode flash", slog.String("error", err.Error()))
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(FlashTTL / time.Second),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop returns the pending message and clears it. Tampered or expired
// cookies yield an empty Flash.
func (s *FlashStore) Pop(w http.ResponseWriter, r *http.Request) auth.Flash {
	c, err := r.Cookie(flashCookieName)
	if err != nil || c.Value == "" {
		return auth.Flash{}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})

	f, err := s.codec.Decode(c.Value)
	if err != nil {
		s.log.DebugContext(r.Context(), "discard flash", slog.String("error", err.Error()))
		return auth.Flash{}
	}
	return f
}

func success(msg string) auth.Flash { return auth.Flash{Success: msg} }
func failure(msg string) auth.Flash { return auth.Flash{Error: msg} }
