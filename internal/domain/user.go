package domain

import "time"

// User is a registered account. PasswordHash is a bcrypt hash, never plaintext.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Session binds an opaque client token (stored only as its SHA-256 hash)
// to a user id.
type Session struct {
	TokenHash  string
	UserID     int64
	CreatedAt  time.Time
	LastSeenAt time.Time
}

// IsIdle reports whether the session has been inactive longer than idle.
func (s *Session) IsIdle(now time.Time, idle time.Duration) bool {
	return now.Sub(s.LastSeenAt) > idle
}
