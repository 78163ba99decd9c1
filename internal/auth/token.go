package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// GenerateSessionToken creates a cryptographically random session token.
// Returns both the raw token (to send to the client) and its SHA-256 hash
// (to store in the database).
func GenerateSessionToken() (raw string, hash string, err error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", "", fmt.Errorf("generate random bytes: %w", err)
	}

	raw = base64.RawURLEncoding.EncodeToString(b)
	hash = HashToken(raw)

	return raw, hash, nil
}

// HashToken computes the SHA-256 hash of a token and returns it as a hex string.
func HashToken(raw string) string {
	h := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(h[:])
}

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GeneratePassword returns a random password of n characters drawn from
// [a-z0-9], used for forgotten-password resets.
func GeneratePassword(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}
	// 256 is not a multiple of 36; reject the top bytes to avoid bias.
	const limit = 256 - 256%len(passwordAlphabet)
	out := make([]byte, 0, n)
	for len(out) < n {
		for _, c := range b {
			if int(c) >= limit {
				continue
			}
			out = append(out, passwordAlphabet[int(c)%len(passwordAlphabet)])
			if len(out) == n {
				break
			}
		}
		if len(out) < n {
			if _, err := rand.Read(b); err != nil {
				return "", fmt.Errorf("generate random bytes: %w", err)
			}
		}
	}
	return string(out), nil
}
