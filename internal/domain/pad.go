package domain

import "time"

// Pad is a named folder of notes owned by exactly one user.
type Pad struct {
	ID        int64
	UserID    int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
