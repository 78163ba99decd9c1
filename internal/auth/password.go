package auth

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes and verifies passwords with bcrypt.
type PasswordHasher struct {
	cost int

	dummyOnce sync.Once
	dummyHash []byte
}

// NewPasswordHasher creates a hasher using the given bcrypt cost.
func NewPasswordHasher(cost int) *PasswordHasher {
	return &PasswordHasher{cost: cost}
}

// Hash returns a salted bcrypt hash of raw.
func (h *PasswordHasher) Hash(raw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(raw), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

// Verify reports whether raw matches hash. The comparison is constant-time
// in the password; a malformed hash never matches.
func (h *PasswordHasher) Verify(raw, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw))
	return err == nil
}

// VerifyDummy burns the same bcrypt work as Verify against a throwaway hash
// and always reports false. Callers use it when no stored hash exists so the
// response time does not reveal that fact.
func (h *PasswordHasher) VerifyDummy(raw string) bool {
	h.dummyOnce.Do(func() {
		b, err := bcrypt.GenerateFromPassword([]byte("notejam-dummy-password"), h.cost)
		if err != nil {
			b = nil
		}
		h.dummyHash = b
	})
	_ = bcrypt.CompareHashAndPassword(h.dummyHash, []byte(raw))
	return false
}
